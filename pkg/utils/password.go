package utils

import (
	"crypto/rand"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

func HashPassword(pw string) string {
	b, _ := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(b)
}

func CheckPassword(pw, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pw)) == nil
}

// 去掉易混字符 0/O/1/l/o
const passwordChars = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789!@#$%"

// GeneratePassword 生成随机密码（管理员重置密码用）
func GeneratePassword(n int) string {
	if n <= 0 {
		n = 12
	}
	out := make([]byte, n)
	m := big.NewInt(int64(len(passwordChars)))
	for i := range out {
		idx, err := rand.Int(rand.Reader, m)
		if err != nil {
			panic(err)
		}
		out[i] = passwordChars[idx.Int64()]
	}
	return string(out)
}
