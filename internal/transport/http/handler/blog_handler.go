package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"bluenote/internal/domain"
	"bluenote/internal/repo"
	"bluenote/internal/service"
	resp "bluenote/internal/transport/http/response"
)

type BlogHandler struct {
	blogs *service.BlogService
}

func NewBlogHandler(blogs *service.BlogService) *BlogHandler {
	return &BlogHandler{blogs: blogs}
}

type blogCreateIn struct {
	Title      string               `json:"title" binding:"required"`
	Content    string               `json:"content" binding:"required"`
	Summary    string               `json:"summary" binding:"omitempty,max=500"`
	Status     domain.ContentStatus `json:"status"`
	Visibility domain.Visibility    `json:"visibility"`
	Tags       domain.StringList    `json:"tags"`
	Category   domain.BlogCategory  `json:"category"`
}

func (h *BlogHandler) Create(c *gin.Context) {
	var in blogCreateIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Detail(c, http.StatusBadRequest, err.Error())
		return
	}
	b := &domain.Blog{
		Title:      in.Title,
		Content:    in.Content,
		Summary:    in.Summary,
		Status:     in.Status,
		Visibility: in.Visibility,
		Tags:       in.Tags,
		Category:   in.Category,
	}
	if b.Status == "" {
		b.Status = domain.StatusDraft
	}
	if b.Visibility == "" {
		b.Visibility = domain.VisibilityPublic
	}
	out, err := h.blogs.Create(c.Request.Context(), b)
	if err != nil {
		resp.Err(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

type blogListQ struct {
	repo.ListParams
	Search   string `form:"search"`
	Category string `form:"category"`
}

func (h *BlogHandler) List(c *gin.Context) {
	var q blogListQ
	if err := c.ShouldBindQuery(&q); err != nil {
		resp.Detail(c, http.StatusBadRequest, err.Error())
		return
	}
	items, total, err := h.blogs.List(c.Request.Context(), q.Search, q.Category, q.ListParams)
	if err != nil {
		resp.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.NewPage(items, q.ListParams, total))
}

func (h *BlogHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	b, err := h.blogs.Get(c.Request.Context(), id)
	if err != nil {
		resp.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BlogHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var upd domain.BlogUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		resp.Detail(c, http.StatusBadRequest, err.Error())
		return
	}
	b, err := h.blogs.Update(c.Request.Context(), id, upd)
	if err != nil {
		resp.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BlogHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.blogs.Delete(c.Request.Context(), id); err != nil {
		resp.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Blog %d deleted successfully", id)})
}

func (h *BlogHandler) Stats(c *gin.Context) {
	s, err := h.blogs.Stats(c.Request.Context())
	if err != nil {
		resp.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}
