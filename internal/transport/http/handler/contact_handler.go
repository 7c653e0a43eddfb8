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

type ContactHandler struct {
	contacts *service.ContactService
}

func NewContactHandler(contacts *service.ContactService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

type contactCreateIn struct {
	Name    string `json:"name" binding:"required,max=100"`
	Email   string `json:"email" binding:"required,email,max=255"`
	Theme   string `json:"theme" binding:"required,max=200"`
	Context string `json:"context" binding:"required"`
}

func (h *ContactHandler) Create(c *gin.Context) {
	var in contactCreateIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Detail(c, http.StatusBadRequest, err.Error())
		return
	}
	out, err := h.contacts.Create(c.Request.Context(), &domain.Contact{
		Name:    in.Name,
		Email:   in.Email,
		Theme:   in.Theme,
		Context: in.Context,
	})
	if err != nil {
		resp.Err(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

type contactListQ struct {
	repo.ListParams
	Search string `form:"search"`
}

func (h *ContactHandler) List(c *gin.Context) {
	var q contactListQ
	if err := c.ShouldBindQuery(&q); err != nil {
		resp.Detail(c, http.StatusBadRequest, err.Error())
		return
	}
	items, total, err := h.contacts.List(c.Request.Context(), q.Search, q.ListParams)
	if err != nil {
		resp.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.NewPage(items, q.ListParams, total))
}

func (h *ContactHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	out, err := h.contacts.Get(c.Request.Context(), id)
	if err != nil {
		resp.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *ContactHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.contacts.Delete(c.Request.Context(), id); err != nil {
		resp.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Contact %d deleted successfully", id)})
}

func (h *ContactHandler) Stats(c *gin.Context) {
	s, err := h.contacts.Stats(c.Request.Context())
	if err != nil {
		resp.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}
