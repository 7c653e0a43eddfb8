package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"bluenote/internal/core/cache"
	"bluenote/internal/domain"
	"bluenote/internal/repo"
)

const statsTTL = 30 * time.Second

type BlogService struct {
	blogs *repo.BlogRepo
	cache *cache.Cache // 可选，nil 时直查库
	log   *zap.Logger
}

func NewBlogService(blogs *repo.BlogRepo, c *cache.Cache, log *zap.Logger) *BlogService {
	return &BlogService{blogs: blogs, cache: c, log: log}
}

func (s *BlogService) Create(ctx context.Context, b *domain.Blog) (*domain.Blog, error) {
	if strings.TrimSpace(b.Title) == "" {
		return nil, domain.E(domain.ErrInvalid, "Blog title cannot be empty")
	}
	if strings.TrimSpace(b.Content) == "" {
		return nil, domain.E(domain.ErrInvalid, "Blog content cannot be empty")
	}
	existing, err := s.blogs.FindByTitle(ctx, b.Title)
	if err != nil {
		return nil, fmt.Errorf("lookup title: %w", err)
	}
	if existing != nil {
		return nil, domain.E(domain.ErrAlreadyExists, fmt.Sprintf("Blog %s already exists", b.Title))
	}
	if err := s.blogs.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("create blog: %w", err)
	}
	return b, nil
}

func (s *BlogService) List(ctx context.Context, search, category string, p repo.ListParams) ([]domain.Blog, int64, error) {
	return s.blogs.List(ctx, search, category, p)
}

// Get 读取时浏览数 +1，失败只记日志，不影响读请求
func (s *BlogService) Get(ctx context.Context, id uint) (*domain.Blog, error) {
	b, err := s.blogs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.E(domain.ErrNotFound, fmt.Sprintf("Blog with id %d not found", id))
	}
	if err := s.blogs.IncrementView(ctx, id); err != nil {
		s.log.Warn("increment blog view failed", zap.Uint("id", id), zap.Error(err))
	} else {
		b.ViewCount++
	}
	return b, nil
}

func (s *BlogService) Update(ctx context.Context, id uint, upd domain.BlogUpdate) (*domain.Blog, error) {
	b, err := s.blogs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.E(domain.ErrNotFound, fmt.Sprintf("Blog with id %d not found", id))
	}
	upd.Apply(b)
	if err := s.blogs.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("update blog: %w", err)
	}
	return b, nil
}

func (s *BlogService) Delete(ctx context.Context, id uint) error {
	b, err := s.blogs.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if b == nil {
		return domain.E(domain.ErrNotFound, fmt.Sprintf("Blog with id %d not found", id))
	}
	if err := s.blogs.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("delete blog: %w", err)
	}
	return nil
}

func (s *BlogService) Stats(ctx context.Context) (*repo.BlogStats, error) {
	if s.cache == nil {
		return s.blogs.Stats(ctx)
	}
	return cache.GetOrLoadJSON(s.cache, ctx, "stats:blogs", statsTTL, func(ctx context.Context) (*repo.BlogStats, error) {
		return s.blogs.Stats(ctx)
	})
}
