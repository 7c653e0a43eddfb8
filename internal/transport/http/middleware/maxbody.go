package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	resp "bluenote/internal/transport/http/response"
)

func MaxBodyBytes(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		c.Next()
		if c.Err() != nil && !c.Writer.Written() {
			resp.Detail(c, http.StatusRequestEntityTooLarge, "Request body too large")
		}
	}
}
