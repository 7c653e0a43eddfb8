package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bluenote/internal/core/config"
	"bluenote/internal/domain"
)

// 最小的 OpenAI 兼容桩服务：非流式返回固定应答，
// 流式按 SSE 逐 chunk 吐。
func stubOpenAI(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/chat/completions", r.URL.Path)
		var req struct {
			Stream bool `json:"stream"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		if !req.Stream {
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"choices":[{"message":{"role":"assistant","content":"pong"}}]}`)
			return
		}
		w.Header().Set("Content-Type", "text/event-stream")
		for _, chunk := range []string{"po", "ng"} {
			fmt.Fprintf(w, "data: {\"choices\":[{\"delta\":{\"content\":%q}}]}\n\n", chunk)
		}
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
}

func newChatService(t *testing.T, baseURL string) *ChatService {
	t.Helper()
	return NewChatService(config.OpenAI{
		APIKey:       "test-key",
		BaseURL:      baseURL + "/v1",
		DefaultModel: "gpt-4o-mini",
		TimeoutSec:   5,
	}, zap.NewNop())
}

func TestChat(t *testing.T) {
	srv := stubOpenAI(t)
	defer srv.Close()
	s := newChatService(t, srv.URL)

	out, err := s.Chat(context.Background(), "ping", "")
	require.NoError(t, err)
	require.Equal(t, "pong", out)
}

func TestChatEmptyMessage(t *testing.T) {
	s := newChatService(t, "http://127.0.0.1:0")

	_, err := s.Chat(context.Background(), "   ", "")
	require.True(t, errors.Is(err, domain.ErrInvalid))

	_, err = s.ChatWithHistory(context.Background(), nil, "")
	require.True(t, errors.Is(err, domain.ErrInvalid))
}

func TestChatStream(t *testing.T) {
	srv := stubOpenAI(t)
	defer srv.Close()
	s := newChatService(t, srv.URL)

	var chunks []string
	err := s.ChatStream(context.Background(), "ping", "", func(chunk string) error {
		chunks = append(chunks, chunk)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []string{"po", "ng"}, chunks)
}

func TestChatStreamEmitAborts(t *testing.T) {
	srv := stubOpenAI(t)
	defer srv.Close()
	s := newChatService(t, srv.URL)

	sentinel := errors.New("client gone")
	err := s.ChatStream(context.Background(), "ping", "", func(string) error {
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)
}

func TestChatWithHistory(t *testing.T) {
	srv := stubOpenAI(t)
	defer srv.Close()
	s := newChatService(t, srv.URL)

	out, err := s.ChatWithHistory(context.Background(), []ChatMessage{
		{Role: "system", Content: "be brief"},
		{Role: "user", Content: "ping"},
	}, "gpt-4o")
	require.NoError(t, err)
	require.Equal(t, "pong", out)
}
