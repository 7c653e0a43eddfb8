package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"bluenote/internal/domain"
)

type stubResolver struct {
	users map[string]*domain.User
}

func (s *stubResolver) Resolve(_ context.Context, token string) (*domain.User, error) {
	u, ok := s.users[token]
	if !ok {
		return nil, domain.ErrUnauthenticated
	}
	return u, nil
}

func newAuthEngine(r UserResolver) *gin.Engine {
	gin.SetMode(gin.TestMode)
	e := gin.New()
	e.GET("/me", Auth(r), func(c *gin.Context) {
		c.JSON(http.StatusOK, CurrentUser(c))
	})
	e.GET("/admin", Auth(r), AdminOnly(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return e
}

func do(e *gin.Engine, path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	return w
}

func TestAuthMissingHeader(t *testing.T) {
	e := newAuthEngine(&stubResolver{})

	w := do(e, "/me", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Contains(t, body, "detail")
}

func TestAuthBadScheme(t *testing.T) {
	e := newAuthEngine(&stubResolver{})
	w := do(e, "/me", "Basic dXNlcjpwYXNz")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthInvalidToken(t *testing.T) {
	e := newAuthEngine(&stubResolver{users: map[string]*domain.User{}})
	w := do(e, "/me", "Bearer nope")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthSetsCurrentUser(t *testing.T) {
	e := newAuthEngine(&stubResolver{users: map[string]*domain.User{
		"tok": {ID: 7, Username: "kai"},
	}})
	w := do(e, "/me", "Bearer tok")
	require.Equal(t, http.StatusOK, w.Code)

	var u domain.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &u))
	require.EqualValues(t, 7, u.ID)
	require.Equal(t, "kai", u.Username)
}

func TestAdminOnly(t *testing.T) {
	e := newAuthEngine(&stubResolver{users: map[string]*domain.User{
		"user":  {ID: 1, Username: "kai"},
		"admin": {ID: 2, Username: "root", IsAdmin: true},
	}})

	w := do(e, "/admin", "Bearer user")
	require.Equal(t, http.StatusForbidden, w.Code)

	w = do(e, "/admin", "Bearer admin")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(e, "/admin", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
