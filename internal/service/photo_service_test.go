package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bluenote/internal/domain"
	"bluenote/internal/repo"
)

func newPhotoService(t *testing.T) *PhotoService {
	t.Helper()
	return NewPhotoService(repo.NewPhotoRepo(testDB(t)), nil, zap.NewNop())
}

func TestPhotoCreateRequiresURLs(t *testing.T) {
	s := newPhotoService(t)
	ctx := context.Background()

	_, err := s.Create(ctx, &domain.Photo{Title: "sunset"})
	require.True(t, errors.Is(err, domain.ErrInvalid))

	p, err := s.Create(ctx, &domain.Photo{
		Title:   "sunset",
		URLList: domain.StringList{"https://cdn.example.com/1.jpg", "https://cdn.example.com/2.jpg"},
	})
	require.NoError(t, err)
	require.NotZero(t, p.ID)

	// url_list 落库后原样读回
	got, err := s.Get(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, p.URLList, got.URLList)
	require.Equal(t, 1, got.ViewCount)
}

func TestPhotoPartialUpdate(t *testing.T) {
	s := newPhotoService(t)
	ctx := context.Background()

	p, err := s.Create(ctx, &domain.Photo{
		Title:    "sunset",
		URLList:  domain.StringList{"https://cdn.example.com/1.jpg"},
		Category: domain.PhotoLandscape,
	})
	require.NoError(t, err)

	loc := "Hangzhou"
	got, err := s.Update(ctx, p.ID, domain.PhotoUpdate{LocationName: &loc})
	require.NoError(t, err)
	require.Equal(t, "Hangzhou", got.LocationName)
	require.Equal(t, "sunset", got.Title)
	require.Equal(t, domain.PhotoLandscape, got.Category)
}

func TestPhotoDelete(t *testing.T) {
	s := newPhotoService(t)
	ctx := context.Background()

	p, err := s.Create(ctx, &domain.Photo{URLList: domain.StringList{"u"}})
	require.NoError(t, err)
	require.NoError(t, s.Delete(ctx, p.ID))
	_, err = s.Get(ctx, p.ID)
	require.True(t, errors.Is(err, domain.ErrNotFound))
}
