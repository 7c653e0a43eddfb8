package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bluenote/internal/domain"
	"bluenote/internal/repo"
)

// Detail 统一错误包体 {"detail": "..."}，状态码即语义
func Detail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"detail": msg})
}

// Err 业务错误 → HTTP 状态码。未识别的错误按 500 返回，
// 上游错误信息包进 detail，不静默吞掉。
func Err(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		c.Header("WWW-Authenticate", "Bearer")
		Detail(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		Detail(c, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		Detail(c, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrInvalid):
		Detail(c, http.StatusBadRequest, err.Error())
	default:
		Detail(c, http.StatusInternalServerError, err.Error())
	}
}

type Pagination struct {
	Page      int   `json:"page"`
	PerPage   int   `json:"perPage"`
	Total     int64 `json:"total"`
	TotalPage int   `json:"totalPage"`
}

type Page struct {
	Items      any        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

func NewPage(items any, p repo.ListParams, total int64) Page {
	p = p.Normalize()
	return Page{
		Items: items,
		Pagination: Pagination{
			Page:      p.Page,
			PerPage:   p.PerPage,
			Total:     total,
			TotalPage: repo.TotalPages(total, p.PerPage),
		},
	}
}
