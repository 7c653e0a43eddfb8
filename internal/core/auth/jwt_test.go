package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newJWTer(ttl time.Duration) *JWTer {
	return &JWTer{Secret: []byte("test-secret"), Issuer: "bluenote", TTL: ttl}
}

func TestIssueAndParse(t *testing.T) {
	j := newJWTer(2 * time.Hour)

	tok, err := j.Issue("alice")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	sub, err := j.Parse(tok)
	require.NoError(t, err)
	require.Equal(t, "alice", sub)
}

func TestParseExpired(t *testing.T) {
	// TTL 为负：签出即过期
	j := newJWTer(-time.Minute)
	tok, err := j.Issue("alice")
	require.NoError(t, err)

	_, err = j.Parse(tok)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseWrongSecret(t *testing.T) {
	j := newJWTer(time.Hour)
	tok, err := j.Issue("alice")
	require.NoError(t, err)

	other := &JWTer{Secret: []byte("other-secret"), Issuer: "bluenote", TTL: time.Hour}
	_, err = other.Parse(tok)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseGarbage(t *testing.T) {
	j := newJWTer(time.Hour)
	for _, s := range []string{"", "abc", "a.b.c"} {
		_, err := j.Parse(s)
		require.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestParseWrongIssuer(t *testing.T) {
	j := &JWTer{Secret: []byte("test-secret"), Issuer: "someone-else", TTL: time.Hour}
	tok, err := j.Issue("alice")
	require.NoError(t, err)

	_, err = newJWTer(time.Hour).Parse(tok)
	require.ErrorIs(t, err, ErrInvalidToken)
}
