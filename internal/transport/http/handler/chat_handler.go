package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"bluenote/internal/service"
	resp "bluenote/internal/transport/http/response"
)

type ChatHandler struct {
	chat *service.ChatService
}

func NewChatHandler(chat *service.ChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

type chatIn struct {
	Message string `json:"message" binding:"required"`
	Model   string `json:"model"`
}

type chatHistoryIn struct {
	Messages []service.ChatMessage `json:"messages" binding:"required"`
	Model    string                `json:"model"`
}

func (h *ChatHandler) Chat(c *gin.Context) {
	var in chatIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Detail(c, http.StatusBadRequest, err.Error())
		return
	}
	out, err := h.chat.Chat(c.Request.Context(), in.Message, in.Model)
	if err != nil {
		resp.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"response": out, "success": true})
}

func (h *ChatHandler) ChatWithHistory(c *gin.Context) {
	var in chatHistoryIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Detail(c, http.StatusBadRequest, err.Error())
		return
	}
	out, err := h.chat.ChatWithHistory(c.Request.Context(), in.Messages, in.Model)
	if err != nil {
		resp.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"response": out, "success": true})
}

func (h *ChatHandler) ChatStream(c *gin.Context) {
	var in chatIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Detail(c, http.StatusBadRequest, err.Error())
		return
	}
	h.streamSSE(c, func(emit func(string) error) error {
		return h.chat.ChatStream(c.Request.Context(), in.Message, in.Model, emit)
	})
}

func (h *ChatHandler) ChatWithHistoryStream(c *gin.Context) {
	var in chatHistoryIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Detail(c, http.StatusBadRequest, err.Error())
		return
	}
	h.streamSSE(c, func(emit func(string) error) error {
		return h.chat.ChatWithHistoryStream(c.Request.Context(), in.Messages, in.Model, emit)
	})
}

func (h *ChatHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "chat"})
}

// streamSSE 每个 chunk 一个 data: 事件；出错时因为响应头已发出，
// 只能带内送 {"error":..., "done":true}，最后统一补终止事件。
func (h *ChatHandler) streamSSE(c *gin.Context, run func(emit func(string) error) error) {
	c.Header("Content-Type", "text/plain; charset=utf-8")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	write := func(v any) {
		b, _ := json.Marshal(v)
		fmt.Fprintf(c.Writer, "data: %s\n\n", b)
		c.Writer.Flush()
	}

	err := run(func(chunk string) error {
		write(gin.H{"content": chunk, "done": false})
		return nil
	})
	if err != nil {
		write(gin.H{"error": err.Error(), "done": true})
		return
	}
	write(gin.H{"content": "", "done": true})
}
