package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"bluenote/internal/core/cache"
	"bluenote/internal/domain"
	"bluenote/internal/repo"
)

type ContactService struct {
	contacts *repo.ContactRepo
	cache    *cache.Cache
	log      *zap.Logger
}

func NewContactService(contacts *repo.ContactRepo, c *cache.Cache, log *zap.Logger) *ContactService {
	return &ContactService{contacts: contacts, cache: c, log: log}
}

func (s *ContactService) Create(ctx context.Context, c *domain.Contact) (*domain.Contact, error) {
	if err := s.contacts.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}
	return c, nil
}

func (s *ContactService) List(ctx context.Context, search string, p repo.ListParams) ([]domain.Contact, int64, error) {
	return s.contacts.List(ctx, search, p)
}

func (s *ContactService) Get(ctx context.Context, id uint) (*domain.Contact, error) {
	c, err := s.contacts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.E(domain.ErrNotFound, fmt.Sprintf("Contact with id %d not found", id))
	}
	return c, nil
}

func (s *ContactService) Delete(ctx context.Context, id uint) error {
	c, err := s.contacts.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.E(domain.ErrNotFound, fmt.Sprintf("Contact with id %d not found", id))
	}
	if err := s.contacts.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	return nil
}

func (s *ContactService) Stats(ctx context.Context) (*repo.ContactStats, error) {
	if s.cache == nil {
		return s.contacts.Stats(ctx)
	}
	return cache.GetOrLoadJSON(s.cache, ctx, "stats:contacts", statsTTL, func(ctx context.Context) (*repo.ContactStats, error) {
		return s.contacts.Stats(ctx)
	})
}
