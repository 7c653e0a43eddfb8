package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bluenote/internal/domain"
	"bluenote/internal/repo"
	"bluenote/internal/service"
	resp "bluenote/internal/transport/http/response"
)

type PhotoHandler struct {
	photos *service.PhotoService
}

func NewPhotoHandler(photos *service.PhotoService) *PhotoHandler {
	return &PhotoHandler{photos: photos}
}

type photoCreateIn struct {
	Title        string               `json:"title" binding:"omitempty,max=100"`
	Description  string               `json:"description"`
	URLList      domain.StringList    `json:"url_list" binding:"required"`
	LocationName string               `json:"location_name" binding:"omitempty,max=200"`
	Status       domain.ContentStatus `json:"status"`
	Visibility   domain.Visibility    `json:"visibility"`
	Tags         domain.StringList    `json:"tags"`
	Category     domain.PhotoCategory `json:"category"`
	TakenAt      *time.Time           `json:"taken_at"`
}

func (h *PhotoHandler) Create(c *gin.Context) {
	var in photoCreateIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Detail(c, http.StatusBadRequest, err.Error())
		return
	}
	p := &domain.Photo{
		Title:        in.Title,
		Description:  in.Description,
		URLList:      in.URLList,
		LocationName: in.LocationName,
		Status:       in.Status,
		Visibility:   in.Visibility,
		Tags:         in.Tags,
		Category:     in.Category,
		TakenAt:      in.TakenAt,
	}
	if p.Status == "" {
		p.Status = domain.StatusDraft
	}
	if p.Visibility == "" {
		p.Visibility = domain.VisibilityPublic
	}
	out, err := h.photos.Create(c.Request.Context(), p)
	if err != nil {
		resp.Err(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

type photoListQ struct {
	repo.ListParams
	Search   string `form:"search"`
	Category string `form:"category"`
}

func (h *PhotoHandler) List(c *gin.Context) {
	var q photoListQ
	if err := c.ShouldBindQuery(&q); err != nil {
		resp.Detail(c, http.StatusBadRequest, err.Error())
		return
	}
	items, total, err := h.photos.List(c.Request.Context(), q.Search, q.Category, q.ListParams)
	if err != nil {
		resp.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.NewPage(items, q.ListParams, total))
}

func (h *PhotoHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	p, err := h.photos.Get(c.Request.Context(), id)
	if err != nil {
		resp.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PhotoHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var upd domain.PhotoUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		resp.Detail(c, http.StatusBadRequest, err.Error())
		return
	}
	p, err := h.photos.Update(c.Request.Context(), id, upd)
	if err != nil {
		resp.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PhotoHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.photos.Delete(c.Request.Context(), id); err != nil {
		resp.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Photo %d deleted successfully", id)})
}

func (h *PhotoHandler) Stats(c *gin.Context) {
	s, err := h.photos.Stats(c.Request.Context())
	if err != nil {
		resp.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}
