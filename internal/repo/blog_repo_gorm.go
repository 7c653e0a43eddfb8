package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"bluenote/internal/domain"
)

type BlogRepo struct{ db *gorm.DB }

func NewBlogRepo(db *gorm.DB) *BlogRepo { return &BlogRepo{db: db} }

func (r *BlogRepo) Create(ctx context.Context, b *domain.Blog) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BlogRepo) FindByID(ctx context.Context, id uint) (*domain.Blog, error) {
	var b domain.Blog
	err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BlogRepo) FindByTitle(ctx context.Context, title string) (*domain.Blog, error) {
	var b domain.Blog
	err := r.db.WithContext(ctx).First(&b, "title = ?", title).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// List search 模糊匹配标题，category 精确匹配
func (r *BlogRepo) List(ctx context.Context, search, category string, p ListParams) ([]domain.Blog, int64, error) {
	q := Query{}
	if search != "" {
		q.Fuzzy = map[string]string{"title": search}
	}
	if category != "" {
		q.Exact = map[string]any{"category": category}
	}
	return Paginate[domain.Blog](ctx, r.db, q, p)
}

func (r *BlogRepo) Update(ctx context.Context, b *domain.Blog) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BlogRepo) SoftDelete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Blog{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IncrementView 单语句自增，避免读-改-写竞态
func (r *BlogRepo) IncrementView(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&domain.Blog{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

type BlogStats struct {
	TotalBlogs     int64 `json:"total_blogs"`
	PublishedBlogs int64 `json:"published_blogs"`
	DraftBlogs     int64 `json:"draft_blogs"`
	PrivateBlogs   int64 `json:"private_blogs"`
	TotalLikes     int64 `json:"total_likes"`
	TotalViews     int64 `json:"total_views"`
	TotalComments  int64 `json:"total_comments"`
}

func (r *BlogRepo) Stats(ctx context.Context) (*BlogStats, error) {
	var s BlogStats
	tx := r.db.WithContext(ctx).Model(&domain.Blog{})
	if err := tx.Count(&s.TotalBlogs).Error; err != nil {
		return nil, err
	}
	counts := map[domain.ContentStatus]*int64{
		domain.StatusPublished: &s.PublishedBlogs,
		domain.StatusDraft:     &s.DraftBlogs,
		domain.StatusPrivate:   &s.PrivateBlogs,
	}
	for status, dst := range counts {
		if err := r.db.WithContext(ctx).Model(&domain.Blog{}).
			Where("status = ?", status).Count(dst).Error; err != nil {
			return nil, err
		}
	}
	sums := struct{ Likes, Views, Comments int64 }{}
	if err := r.db.WithContext(ctx).Model(&domain.Blog{}).
		Select("COALESCE(SUM(like_count),0) AS likes, COALESCE(SUM(view_count),0) AS views, COALESCE(SUM(comment_count),0) AS comments").
		Scan(&sums).Error; err != nil {
		return nil, err
	}
	s.TotalLikes, s.TotalViews, s.TotalComments = sums.Likes, sums.Views, sums.Comments
	return &s, nil
}
