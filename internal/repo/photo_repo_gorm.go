package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"bluenote/internal/domain"
)

type PhotoRepo struct{ db *gorm.DB }

func NewPhotoRepo(db *gorm.DB) *PhotoRepo { return &PhotoRepo{db: db} }

func (r *PhotoRepo) Create(ctx context.Context, p *domain.Photo) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PhotoRepo) FindByID(ctx context.Context, id uint) (*domain.Photo, error) {
	var p domain.Photo
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PhotoRepo) List(ctx context.Context, search, category string, p ListParams) ([]domain.Photo, int64, error) {
	q := Query{}
	if search != "" {
		q.Fuzzy = map[string]string{"title": search}
	}
	if category != "" {
		q.Exact = map[string]any{"category": category}
	}
	return Paginate[domain.Photo](ctx, r.db, q, p)
}

func (r *PhotoRepo) Update(ctx context.Context, p *domain.Photo) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PhotoRepo) SoftDelete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Photo{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PhotoRepo) IncrementView(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&domain.Photo{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

type PhotoStats struct {
	TotalPhotos     int64 `json:"total_photos"`
	PublishedPhotos int64 `json:"published_photos"`
	DraftPhotos     int64 `json:"draft_photos"`
	PrivatePhotos   int64 `json:"private_photos"`
	TotalLikes      int64 `json:"total_likes"`
	TotalViews      int64 `json:"total_views"`
	TotalComments   int64 `json:"total_comments"`
}

func (r *PhotoRepo) Stats(ctx context.Context) (*PhotoStats, error) {
	var s PhotoStats
	if err := r.db.WithContext(ctx).Model(&domain.Photo{}).Count(&s.TotalPhotos).Error; err != nil {
		return nil, err
	}
	counts := map[domain.ContentStatus]*int64{
		domain.StatusPublished: &s.PublishedPhotos,
		domain.StatusDraft:     &s.DraftPhotos,
		domain.StatusPrivate:   &s.PrivatePhotos,
	}
	for status, dst := range counts {
		if err := r.db.WithContext(ctx).Model(&domain.Photo{}).
			Where("status = ?", status).Count(dst).Error; err != nil {
			return nil, err
		}
	}
	sums := struct{ Likes, Views, Comments int64 }{}
	if err := r.db.WithContext(ctx).Model(&domain.Photo{}).
		Select("COALESCE(SUM(like_count),0) AS likes, COALESCE(SUM(view_count),0) AS views, COALESCE(SUM(comment_count),0) AS comments").
		Scan(&sums).Error; err != nil {
		return nil, err
	}
	s.TotalLikes, s.TotalViews, s.TotalComments = sums.Likes, sums.Views, sums.Comments
	return &s, nil
}
