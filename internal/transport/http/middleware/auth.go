package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"bluenote/internal/domain"
	resp "bluenote/internal/transport/http/response"
)

const keyCurrentUser = "currentUser"

// UserResolver token → 活跃用户（软删用户视同 token 无效）
type UserResolver interface {
	Resolve(ctx context.Context, token string) (*domain.User, error)
}

// Auth 校验 Bearer token 并加载当前用户。缺失 / 无效 / 过期 /
// 用户已不存在，一律同一个 401。
func Auth(r UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			resp.Err(c, domain.ErrUnauthenticated)
			c.Abort()
			return
		}
		u, err := r.Resolve(c.Request.Context(), strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			resp.Err(c, err)
			c.Abort()
			return
		}
		c.Set(keyCurrentUser, u)
		c.Next()
	}
}

// AdminOnly 挂在 Auth 之后，非管理员一律 403
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		u := CurrentUser(c)
		if u == nil {
			resp.Err(c, domain.ErrUnauthenticated)
			c.Abort()
			return
		}
		if !u.IsAdmin {
			resp.Err(c, domain.ErrForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}

func CurrentUser(c *gin.Context) *domain.User {
	v, ok := c.Get(keyCurrentUser)
	if !ok {
		return nil
	}
	u, _ := v.(*domain.User)
	return u
}
