package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"bluenote/internal/core/cache"
	"bluenote/internal/domain"
	"bluenote/internal/repo"
)

type PhotoService struct {
	photos *repo.PhotoRepo
	cache  *cache.Cache
	log    *zap.Logger
}

func NewPhotoService(photos *repo.PhotoRepo, c *cache.Cache, log *zap.Logger) *PhotoService {
	return &PhotoService{photos: photos, cache: c, log: log}
}

func (s *PhotoService) Create(ctx context.Context, p *domain.Photo) (*domain.Photo, error) {
	if len(p.URLList) == 0 {
		return nil, domain.E(domain.ErrInvalid, "Photo url_list cannot be empty")
	}
	if err := s.photos.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create photo: %w", err)
	}
	return p, nil
}

func (s *PhotoService) List(ctx context.Context, search, category string, p repo.ListParams) ([]domain.Photo, int64, error) {
	return s.photos.List(ctx, search, category, p)
}

func (s *PhotoService) Get(ctx context.Context, id uint) (*domain.Photo, error) {
	p, err := s.photos.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.E(domain.ErrNotFound, fmt.Sprintf("Photo with id %d not found", id))
	}
	if err := s.photos.IncrementView(ctx, id); err != nil {
		s.log.Warn("increment photo view failed", zap.Uint("id", id), zap.Error(err))
	} else {
		p.ViewCount++
	}
	return p, nil
}

func (s *PhotoService) Update(ctx context.Context, id uint, upd domain.PhotoUpdate) (*domain.Photo, error) {
	p, err := s.photos.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.E(domain.ErrNotFound, fmt.Sprintf("Photo with id %d not found", id))
	}
	upd.Apply(p)
	if err := s.photos.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("update photo: %w", err)
	}
	return p, nil
}

func (s *PhotoService) Delete(ctx context.Context, id uint) error {
	p, err := s.photos.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.E(domain.ErrNotFound, fmt.Sprintf("Photo with id %d not found", id))
	}
	if err := s.photos.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("delete photo: %w", err)
	}
	return nil
}

func (s *PhotoService) Stats(ctx context.Context) (*repo.PhotoStats, error) {
	if s.cache == nil {
		return s.photos.Stats(ctx)
	}
	return cache.GetOrLoadJSON(s.cache, ctx, "stats:photos", statsTTL, func(ctx context.Context) (*repo.PhotoStats, error) {
		return s.photos.Stats(ctx)
	})
}
