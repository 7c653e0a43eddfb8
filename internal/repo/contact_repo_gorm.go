package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"bluenote/internal/domain"
)

type ContactRepo struct{ db *gorm.DB }

func NewContactRepo(db *gorm.DB) *ContactRepo { return &ContactRepo{db: db} }

func (r *ContactRepo) Create(ctx context.Context, c *domain.Contact) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ContactRepo) FindByID(ctx context.Context, id uint) (*domain.Contact, error) {
	var c domain.Contact
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List search 同时模糊匹配 name/email/theme/context（OR）
func (r *ContactRepo) List(ctx context.Context, search string, p ListParams) ([]domain.Contact, int64, error) {
	q := Query{}
	if search != "" {
		q.Fuzzy = map[string]string{
			"name":    search,
			"email":   search,
			"theme":   search,
			"context": search,
		}
	}
	return Paginate[domain.Contact](ctx, r.db, q, p)
}

func (r *ContactRepo) SoftDelete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Contact{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

type ContactStats struct {
	TotalContacts int64 `json:"total_contacts"`
}

func (r *ContactRepo) Stats(ctx context.Context) (*ContactStats, error) {
	var s ContactStats
	if err := r.db.WithContext(ctx).Model(&domain.Contact{}).Count(&s.TotalContacts).Error; err != nil {
		return nil, err
	}
	return &s, nil
}
