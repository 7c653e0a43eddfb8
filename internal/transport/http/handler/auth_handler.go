package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bluenote/internal/domain"
	"bluenote/internal/repo"
	"bluenote/internal/service"
	"bluenote/internal/transport/http/middleware"
	resp "bluenote/internal/transport/http/response"
)

type AuthHandler struct {
	users *service.UserService
}

func NewAuthHandler(users *service.UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.Detail(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return uint(id), true
}

type registerIn struct {
	Username string `json:"username" binding:"required,min=1,max=64"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"omitempty,max=64"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var in registerIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Detail(c, http.StatusBadRequest, err.Error())
		return
	}
	u, err := h.users.Register(c.Request.Context(), service.RegisterInput{
		Username: in.Username,
		Password: in.Password,
		FullName: in.FullName,
	})
	if err != nil {
		resp.Err(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

type loginIn struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var in loginIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Detail(c, http.StatusBadRequest, err.Error())
		return
	}
	token, u, err := h.users.Login(c.Request.Context(), in.Username, in.Password)
	if err != nil {
		resp.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
		"user":         u,
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, middleware.CurrentUser(c))
}

func (h *AuthHandler) UpdateMe(c *gin.Context) {
	var upd domain.UserUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		resp.Detail(c, http.StatusBadRequest, err.Error())
		return
	}
	u, err := h.users.UpdateMe(c.Request.Context(), middleware.CurrentUser(c), upd)
	if err != nil {
		resp.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

type changePasswordIn struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var in changePasswordIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Detail(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.users.ChangePassword(c.Request.Context(), middleware.CurrentUser(c), in.CurrentPassword, in.NewPassword); err != nil {
		resp.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}

func (h *AuthHandler) DeleteMe(c *gin.Context) {
	if err := h.users.DeleteMe(c.Request.Context(), middleware.CurrentUser(c)); err != nil {
		resp.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

// ---- 管理员接口 ----

func (h *AuthHandler) ListUsers(c *gin.Context) {
	var p repo.ListParams
	if err := c.ShouldBindQuery(&p); err != nil {
		resp.Detail(c, http.StatusBadRequest, err.Error())
		return
	}
	items, total, err := h.users.List(c.Request.Context(), p)
	if err != nil {
		resp.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.NewPage(items, p, total))
}

func (h *AuthHandler) GetUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	u, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		resp.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *AuthHandler) UpdateUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var upd domain.UserUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		resp.Detail(c, http.StatusBadRequest, err.Error())
		return
	}
	u, err := h.users.AdminUpdate(c.Request.Context(), id, upd)
	if err != nil {
		resp.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *AuthHandler) DeleteUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.users.AdminDelete(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		resp.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	newPassword, err := h.users.ResetPassword(c.Request.Context(), id)
	if err != nil {
		resp.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      "Password reset successfully",
		"new_password": newPassword,
		"note":         "User must change password on next login",
	})
}
