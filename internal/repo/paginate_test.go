package repo

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"bluenote/internal/domain"
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

func seedBlogs(t *testing.T, db *gorm.DB, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		require.NoError(t, db.Create(&domain.Blog{
			Title:    fmt.Sprintf("post %03d", i),
			Content:  "content",
			Status:   domain.StatusPublished,
			Category: domain.BlogTech,
		}).Error)
	}
}

func TestPaginatePages(t *testing.T) {
	db := testDB(t)
	seedBlogs(t, db, 250)
	ctx := context.Background()

	items, total, err := Paginate[domain.Blog](ctx, db, Query{}, ListParams{Page: 1, PerPage: 100})
	require.NoError(t, err)
	require.Len(t, items, 100)
	require.EqualValues(t, 250, total)

	items, total, err = Paginate[domain.Blog](ctx, db, Query{}, ListParams{Page: 3, PerPage: 100})
	require.NoError(t, err)
	require.Len(t, items, 50)
	require.EqualValues(t, 250, total)

	// 超出数据范围：items 空，total 不变
	items, total, err = Paginate[domain.Blog](ctx, db, Query{}, ListParams{Page: 4, PerPage: 100})
	require.NoError(t, err)
	require.Empty(t, items)
	require.EqualValues(t, 250, total)
}

func TestPaginateStableOrder(t *testing.T) {
	db := testDB(t)
	seedBlogs(t, db, 25)
	ctx := context.Background()

	p1, _, err := Paginate[domain.Blog](ctx, db, Query{}, ListParams{Page: 1, PerPage: 10})
	require.NoError(t, err)
	p2, _, err := Paginate[domain.Blog](ctx, db, Query{}, ListParams{Page: 2, PerPage: 10})
	require.NoError(t, err)

	// id 升序，跨页不重叠
	require.EqualValues(t, 10, p1[9].ID)
	require.EqualValues(t, 11, p2[0].ID)
}

func TestPaginateNormalize(t *testing.T) {
	db := testDB(t)
	seedBlogs(t, db, 5)
	ctx := context.Background()

	// page/perPage 越界被钳位，不会崩
	items, total, err := Paginate[domain.Blog](ctx, db, Query{}, ListParams{Page: 0, PerPage: 100000})
	require.NoError(t, err)
	require.Len(t, items, 5)
	require.EqualValues(t, 5, total)
}

func TestPaginateExactAndFuzzy(t *testing.T) {
	db := testDB(t)
	require.NoError(t, db.Create(&domain.Blog{Title: "Go basics", Content: "x", Category: domain.BlogTech}).Error)
	require.NoError(t, db.Create(&domain.Blog{Title: "Go advanced", Content: "x", Category: domain.BlogLife}).Error)
	ctx := context.Background()

	items, total, err := Paginate[domain.Blog](ctx, db, Query{
		Exact: map[string]any{"category": "TECH"},
		Fuzzy: map[string]string{"title": "Go"},
	}, ListParams{Page: 1, PerPage: 100})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Len(t, items, 1)
	require.Equal(t, "Go basics", items[0].Title)
}

func TestPaginateFuzzyOrAcrossFields(t *testing.T) {
	db := testDB(t)
	require.NoError(t, db.Create(&domain.Contact{Name: "Alice", Email: "a@example.com", Theme: "hello", Context: "hi"}).Error)
	require.NoError(t, db.Create(&domain.Contact{Name: "Bob", Email: "bob@alice.dev", Theme: "other", Context: "hi"}).Error)
	require.NoError(t, db.Create(&domain.Contact{Name: "Carol", Email: "c@example.com", Theme: "greeting", Context: "hi"}).Error)
	ctx := context.Background()

	// "alice" 命中第一条的 name 和第二条的 email（OR 语义）
	items, total, err := Paginate[domain.Contact](ctx, db, Query{
		Fuzzy: map[string]string{"name": "lice", "email": "lice"},
	}, ListParams{Page: 1, PerPage: 100})
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	require.Len(t, items, 2)
}

func TestPaginateExcludesSoftDeleted(t *testing.T) {
	db := testDB(t)
	seedBlogs(t, db, 3)
	require.NoError(t, db.Delete(&domain.Blog{}, 2).Error)
	ctx := context.Background()

	items, total, err := Paginate[domain.Blog](ctx, db, Query{}, ListParams{Page: 1, PerPage: 100})
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	for _, b := range items {
		require.NotEqualValues(t, 2, b.ID)
	}
}

func TestTotalPages(t *testing.T) {
	require.Equal(t, 3, TotalPages(250, 100))
	require.Equal(t, 1, TotalPages(1, 100))
	require.Equal(t, 0, TotalPages(0, 100))
}
