package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"bluenote/internal/core/auth"
	"bluenote/internal/domain"
	"bluenote/internal/repo"
	"bluenote/pkg/utils"
)

type UserService struct {
	users *repo.UserRepo
	jwter *auth.JWTer
	log   *zap.Logger
}

func NewUserService(users *repo.UserRepo, jwter *auth.JWTer, log *zap.Logger) *UserService {
	return &UserService{users: users, jwter: jwter, log: log}
}

type RegisterInput struct {
	Username string
	Password string
	FullName string
}

// Register 预检 + 建表唯一索引双保险：并发注册同名用户时
// 输掉提交的一方拿到 AlreadyExists，不会漏出原始约束错误。
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	existing, err := s.users.FindByUsername(ctx, in.Username)
	if err != nil {
		return nil, fmt.Errorf("lookup username: %w", err)
	}
	if existing != nil {
		return nil, domain.E(domain.ErrAlreadyExists, "Username already registered")
	}

	u := &domain.User{
		Username:     in.Username,
		PasswordHash: utils.HashPassword(in.Password),
		FullName:     in.FullName,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.E(domain.ErrAlreadyExists, "Username already exists")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// Login 用户名不存在和密码错误返回同一个 401，不泄露账号是否存在
func (s *UserService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, fmt.Errorf("lookup username: %w", err)
	}
	if u == nil || !utils.CheckPassword(password, u.PasswordHash) {
		return "", nil, domain.E(domain.ErrUnauthenticated, "Incorrect username or password")
	}
	token, err := s.jwter.Issue(u.Username)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return token, u, nil
}

// Resolve token → 活跃用户。token 无效和 subject 已不存在（或已软删）
// 都折叠成同一个 401。
func (s *UserService) Resolve(ctx context.Context, token string) (*domain.User, error) {
	username, err := s.jwter.Parse(token)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}
	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("resolve user: %w", err)
	}
	if u == nil {
		return nil, domain.ErrUnauthenticated
	}
	return u, nil
}

func (s *UserService) UpdateMe(ctx context.Context, u *domain.User, upd domain.UserUpdate) (*domain.User, error) {
	return s.applyUpdate(ctx, u, upd, false)
}

func (s *UserService) ChangePassword(ctx context.Context, u *domain.User, current, newPassword string) error {
	if !utils.CheckPassword(current, u.PasswordHash) {
		return domain.E(domain.ErrInvalid, "Current password is incorrect")
	}
	u.PasswordHash = utils.HashPassword(newPassword)
	u.RequirePasswordChange = false
	if err := s.users.Update(ctx, u); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

func (s *UserService) DeleteMe(ctx context.Context, u *domain.User) error {
	if err := s.users.SoftDelete(ctx, u.ID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// ---- 管理员操作 ----

func (s *UserService) List(ctx context.Context, p repo.ListParams) ([]domain.User, int64, error) {
	return s.users.List(ctx, p)
}

func (s *UserService) Get(ctx context.Context, id uint) (*domain.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.E(domain.ErrNotFound, "User not found")
	}
	return u, nil
}

func (s *UserService) AdminUpdate(ctx context.Context, id uint, upd domain.UserUpdate) (*domain.User, error) {
	u, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.applyUpdate(ctx, u, upd, true)
}

// AdminDelete 管理员不能删除自己
func (s *UserService) AdminDelete(ctx context.Context, actor *domain.User, id uint) error {
	u, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if u.ID == actor.ID {
		return domain.E(domain.ErrForbidden, "Cannot delete yourself")
	}
	if err := s.users.SoftDelete(ctx, u.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.E(domain.ErrNotFound, "User not found")
		}
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// ResetPassword 生成一次性随机密码，强制下次登录修改
func (s *UserService) ResetPassword(ctx context.Context, id uint) (string, error) {
	u, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	newPassword := utils.GeneratePassword(12)
	u.PasswordHash = utils.HashPassword(newPassword)
	u.RequirePasswordChange = true
	if err := s.users.Update(ctx, u); err != nil {
		return "", fmt.Errorf("reset password: %w", err)
	}
	return newPassword, nil
}

// EnsureAdmin 启动时幂等创建初始管理员；已存在则不动（不重置密码）
func (s *UserService) EnsureAdmin(ctx context.Context, username, password string) error {
	existing, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("lookup admin: %w", err)
	}
	if existing != nil {
		s.log.Info("admin account exists", zap.String("username", username))
		return nil
	}
	admin := &domain.User{
		Username:     username,
		PasswordHash: utils.HashPassword(password),
		FullName:     "Administrator",
		IsAdmin:      true,
	}
	if err := s.users.Create(ctx, admin); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	s.log.Info("admin account created", zap.String("username", username))
	return nil
}

func (s *UserService) applyUpdate(ctx context.Context, u *domain.User, upd domain.UserUpdate, allowAdminFlag bool) (*domain.User, error) {
	if upd.Username != nil && *upd.Username != u.Username {
		existing, err := s.users.FindByUsername(ctx, *upd.Username)
		if err != nil {
			return nil, fmt.Errorf("lookup username: %w", err)
		}
		if existing != nil && existing.ID != u.ID {
			return nil, domain.E(domain.ErrAlreadyExists, "Username already exists")
		}
		u.Username = *upd.Username
	}
	if upd.FullName != nil {
		u.FullName = *upd.FullName
	}
	if upd.Password != nil && *upd.Password != "" {
		u.PasswordHash = utils.HashPassword(*upd.Password)
	}
	if allowAdminFlag && upd.IsAdmin != nil {
		u.IsAdmin = *upd.IsAdmin
	}
	if err := s.users.Update(ctx, u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.E(domain.ErrAlreadyExists, "Username already exists")
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return u, nil
}
