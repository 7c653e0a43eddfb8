package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"bluenote/internal/core/auth"
	"bluenote/internal/domain"
	"bluenote/internal/repo"
	"bluenote/pkg/utils"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Blog{},
		&domain.Photo{},
		&domain.Contact{},
	))
	return db
}

func newUserService(t *testing.T) *UserService {
	t.Helper()
	jwter := &auth.JWTer{Secret: []byte("test-secret"), Issuer: "bluenote", TTL: time.Hour}
	return NewUserService(repo.NewUserRepo(testDB(t)), jwter, zap.NewNop())
}

func TestRegisterAndLogin(t *testing.T) {
	s := newUserService(t)
	ctx := context.Background()

	u, err := s.Register(ctx, RegisterInput{Username: "kai", Password: "secret123", FullName: "Kai"})
	require.NoError(t, err)
	require.NotZero(t, u.ID)
	require.False(t, u.IsAdmin)

	token, got, err := s.Login(ctx, "kai", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, u.ID, got.ID)
}

func TestLoginBadCredentials(t *testing.T) {
	s := newUserService(t)
	ctx := context.Background()

	_, err := s.Register(ctx, RegisterInput{Username: "kai", Password: "secret123"})
	require.NoError(t, err)

	// 密码错误和用户不存在是同一个错误，不泄露账号是否存在
	_, _, err = s.Login(ctx, "kai", "wrong")
	require.True(t, errors.Is(err, domain.ErrUnauthenticated))
	_, _, err2 := s.Login(ctx, "ghost", "wrong")
	require.True(t, errors.Is(err2, domain.ErrUnauthenticated))
	require.Equal(t, err.Error(), err2.Error())
}

func TestRegisterDuplicate(t *testing.T) {
	s := newUserService(t)
	ctx := context.Background()

	_, err := s.Register(ctx, RegisterInput{Username: "kai", Password: "secret123"})
	require.NoError(t, err)
	_, err = s.Register(ctx, RegisterInput{Username: "kai", Password: "other456"})
	require.True(t, errors.Is(err, domain.ErrAlreadyExists))
}

func TestResolveToken(t *testing.T) {
	s := newUserService(t)
	ctx := context.Background()

	u, err := s.Register(ctx, RegisterInput{Username: "kai", Password: "secret123"})
	require.NoError(t, err)
	token, _, err := s.Login(ctx, "kai", "secret123")
	require.NoError(t, err)

	got, err := s.Resolve(ctx, token)
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)

	_, err = s.Resolve(ctx, "not-a-token")
	require.True(t, errors.Is(err, domain.ErrUnauthenticated))
}

func TestResolveAfterDelete(t *testing.T) {
	s := newUserService(t)
	ctx := context.Background()

	u, err := s.Register(ctx, RegisterInput{Username: "kai", Password: "secret123"})
	require.NoError(t, err)
	token, _, err := s.Login(ctx, "kai", "secret123")
	require.NoError(t, err)
	require.NoError(t, s.DeleteMe(ctx, u))

	// token 本身仍然有效，但主体已软删，同样折叠成 401
	_, err = s.Resolve(ctx, token)
	require.True(t, errors.Is(err, domain.ErrUnauthenticated))

	// 同名可以重新注册
	_, err = s.Register(ctx, RegisterInput{Username: "kai", Password: "fresh456"})
	require.NoError(t, err)
}

func TestChangePassword(t *testing.T) {
	s := newUserService(t)
	ctx := context.Background()

	u, err := s.Register(ctx, RegisterInput{Username: "kai", Password: "secret123"})
	require.NoError(t, err)

	err = s.ChangePassword(ctx, u, "wrong", "newpass456")
	require.True(t, errors.Is(err, domain.ErrInvalid))

	require.NoError(t, s.ChangePassword(ctx, u, "secret123", "newpass456"))
	_, _, err = s.Login(ctx, "kai", "newpass456")
	require.NoError(t, err)
	_, _, err = s.Login(ctx, "kai", "secret123")
	require.True(t, errors.Is(err, domain.ErrUnauthenticated))
}

func TestUpdateMe(t *testing.T) {
	s := newUserService(t)
	ctx := context.Background()

	u, err := s.Register(ctx, RegisterInput{Username: "kai", Password: "secret123"})
	require.NoError(t, err)
	_, err = s.Register(ctx, RegisterInput{Username: "taken", Password: "secret123"})
	require.NoError(t, err)

	name := "Kai Wan"
	got, err := s.UpdateMe(ctx, u, domain.UserUpdate{FullName: &name})
	require.NoError(t, err)
	require.Equal(t, "Kai Wan", got.FullName)

	// 改名撞车
	taken := "taken"
	_, err = s.UpdateMe(ctx, u, domain.UserUpdate{Username: &taken})
	require.True(t, errors.Is(err, domain.ErrAlreadyExists))

	// 非管理员路径忽略 is_admin
	yes := true
	got, err = s.UpdateMe(ctx, u, domain.UserUpdate{IsAdmin: &yes})
	require.NoError(t, err)
	require.False(t, got.IsAdmin)
}

func TestAdminUpdateSetsAdminFlag(t *testing.T) {
	s := newUserService(t)
	ctx := context.Background()

	u, err := s.Register(ctx, RegisterInput{Username: "kai", Password: "secret123"})
	require.NoError(t, err)

	yes := true
	got, err := s.AdminUpdate(ctx, u.ID, domain.UserUpdate{IsAdmin: &yes})
	require.NoError(t, err)
	require.True(t, got.IsAdmin)
}

func TestAdminDeleteSelf(t *testing.T) {
	s := newUserService(t)
	ctx := context.Background()

	require.NoError(t, s.EnsureAdmin(ctx, "admin", "Admin123456!"))
	admin, err := s.users.FindByUsername(ctx, "admin")
	require.NoError(t, err)

	err = s.AdminDelete(ctx, admin, admin.ID)
	require.True(t, errors.Is(err, domain.ErrForbidden))

	u, err := s.Register(ctx, RegisterInput{Username: "kai", Password: "secret123"})
	require.NoError(t, err)
	require.NoError(t, s.AdminDelete(ctx, admin, u.ID))

	err = s.AdminDelete(ctx, admin, u.ID)
	require.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestResetPassword(t *testing.T) {
	s := newUserService(t)
	ctx := context.Background()

	u, err := s.Register(ctx, RegisterInput{Username: "kai", Password: "secret123"})
	require.NoError(t, err)

	newPassword, err := s.ResetPassword(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, newPassword, 12)

	_, got, err := s.Login(ctx, "kai", newPassword)
	require.NoError(t, err)
	require.True(t, got.RequirePasswordChange)

	// 修改密码后清除强制标记
	require.NoError(t, s.ChangePassword(ctx, got, newPassword, "chosen789"))
	require.False(t, got.RequirePasswordChange)
}

func TestEnsureAdminIdempotent(t *testing.T) {
	s := newUserService(t)
	ctx := context.Background()

	require.NoError(t, s.EnsureAdmin(ctx, "admin", "Admin123456!"))
	first, err := s.users.FindByUsername(ctx, "admin")
	require.NoError(t, err)
	require.True(t, first.IsAdmin)

	// 二次启动不重置已有账号的密码
	require.NoError(t, s.EnsureAdmin(ctx, "admin", "Different!"))
	again, err := s.users.FindByUsername(ctx, "admin")
	require.NoError(t, err)
	require.Equal(t, first.PasswordHash, again.PasswordHash)
	require.True(t, utils.CheckPassword("Admin123456!", again.PasswordHash))

	// 只应有一个 admin 行
	list, total, err := s.List(ctx, repo.ListParams{Page: 1, PerPage: 100})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Len(t, list, 1)
}
