package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"bluenote/internal/core/config"
	"bluenote/internal/domain"
)

type ChatMessage struct {
	Role    string `json:"role" binding:"required"`
	Content string `json:"content"`
}

// ChatService 透传到 OpenAI 兼容的对话接口
type ChatService struct {
	client       *openai.Client
	defaultModel string
	maxTokens    int
	temperature  float32
	log          *zap.Logger
}

func NewChatService(cfg config.OpenAI, log *zap.Logger) *ChatService {
	c := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		c.BaseURL = cfg.BaseURL
	}
	// 上游唯一的超时控制，按配置固定
	c.HTTPClient = &http.Client{Timeout: time.Duration(cfg.TimeoutSec) * time.Second}
	return &ChatService{
		client:       openai.NewClientWithConfig(c),
		defaultModel: cfg.DefaultModel,
		maxTokens:    cfg.MaxTokens,
		temperature:  cfg.Temperature,
		log:          log,
	}
}

func (s *ChatService) DefaultModel() string { return s.defaultModel }

func (s *ChatService) Chat(ctx context.Context, message, model string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", domain.E(domain.ErrInvalid, "Message cannot be empty")
	}
	return s.complete(ctx, []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleUser, Content: message},
	}, model)
}

func (s *ChatService) ChatWithHistory(ctx context.Context, messages []ChatMessage, model string) (string, error) {
	if len(messages) == 0 {
		return "", domain.E(domain.ErrInvalid, "Message history cannot be empty")
	}
	return s.complete(ctx, toOpenAIMessages(messages), model)
}

// ChatStream 每个增量 chunk 调一次 emit；emit 返回错误即中止
func (s *ChatService) ChatStream(ctx context.Context, message, model string, emit func(chunk string) error) error {
	if strings.TrimSpace(message) == "" {
		return domain.E(domain.ErrInvalid, "Message cannot be empty")
	}
	return s.stream(ctx, []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleUser, Content: message},
	}, model, emit)
}

func (s *ChatService) ChatWithHistoryStream(ctx context.Context, messages []ChatMessage, model string, emit func(chunk string) error) error {
	if len(messages) == 0 {
		return domain.E(domain.ErrInvalid, "Message history cannot be empty")
	}
	return s.stream(ctx, toOpenAIMessages(messages), model, emit)
}

func (s *ChatService) complete(ctx context.Context, messages []openai.ChatCompletionMessage, model string) (string, error) {
	if model == "" {
		model = s.defaultModel
	}
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		MaxTokens:   s.maxTokens,
		Temperature: s.temperature,
	})
	if err != nil {
		s.log.Error("chat completion failed", zap.String("model", model), zap.Error(err))
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion: empty response")
	}
	return resp.Choices[0].Message.Content, nil
}

func (s *ChatService) stream(ctx context.Context, messages []openai.ChatCompletionMessage, model string, emit func(string) error) error {
	if model == "" {
		model = s.defaultModel
	}
	stream, err := s.client.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		MaxTokens:   s.maxTokens,
		Temperature: s.temperature,
	})
	if err != nil {
		s.log.Error("chat stream failed", zap.String("model", model), zap.Error(err))
		return fmt.Errorf("chat stream: %w", err)
	}
	defer stream.Close()

	for {
		r, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("chat stream recv: %w", err)
		}
		if len(r.Choices) == 0 {
			continue
		}
		if chunk := r.Choices[0].Delta.Content; chunk != "" {
			if err := emit(chunk); err != nil {
				return err
			}
		}
	}
}

func toOpenAIMessages(in []ChatMessage) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(in))
	for _, m := range in {
		out = append(out, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}
	return out
}
