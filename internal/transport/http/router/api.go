package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"bluenote/internal/transport/http/handler"
	mdw "bluenote/internal/transport/http/middleware"
)

type Handlers struct {
	Auth    *handler.AuthHandler
	Blog    *handler.BlogHandler
	Photo   *handler.PhotoHandler
	Contact *handler.ContactHandler
	Chat    *handler.ChatHandler
}

func NewAPIEngine(l *zap.Logger, resolver mdw.UserResolver, h Handlers) *gin.Engine {
	r := gin.New()

	r.Use(
		ginzap.RecoveryWithZap(l, true), // 兜底：下层中间件自身 panic 也能接住
		mdw.RequestID(),
		cors.Default(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Recovery(l),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// chat 是长连接流式响应，不挂请求超时；其余 /v1 统一 10s
	v1 := r.Group("/v1", mdw.Timeout(10*time.Second))

	// 认证
	v1.POST("/auth/register", h.Auth.Register)
	v1.POST("/auth/login", h.Auth.Login)

	me := v1.Group("/auth", mdw.Auth(resolver))
	{
		me.GET("/me", h.Auth.Me)
		me.PUT("/me", h.Auth.UpdateMe)
		me.PUT("/me/password", h.Auth.ChangePassword)
		me.DELETE("/me", h.Auth.DeleteMe)
	}

	admin := v1.Group("/auth/users", mdw.Auth(resolver), mdw.AdminOnly())
	{
		admin.GET("", h.Auth.ListUsers)
		admin.GET("/:id", h.Auth.GetUser)
		admin.PUT("/:id", h.Auth.UpdateUser)
		admin.DELETE("/:id", h.Auth.DeleteUser)
		admin.POST("/:id/reset-password", h.Auth.ResetPassword)
	}

	// 内容
	blogs := v1.Group("/blogs")
	{
		blogs.POST("", h.Blog.Create)
		blogs.GET("", h.Blog.List)
		blogs.GET("/stats", h.Blog.Stats)
		blogs.GET("/:id", h.Blog.Get)
		blogs.PUT("/:id", h.Blog.Update)
		blogs.DELETE("/:id", h.Blog.Delete)
	}

	photos := v1.Group("/photos")
	{
		photos.POST("", h.Photo.Create)
		photos.GET("", h.Photo.List)
		photos.GET("/stats", h.Photo.Stats)
		photos.GET("/:id", h.Photo.Get)
		photos.PUT("/:id", h.Photo.Update)
		photos.DELETE("/:id", h.Photo.Delete)
	}

	contacts := v1.Group("/contacts")
	{
		contacts.POST("", h.Contact.Create)
		contacts.GET("", h.Contact.List)
		contacts.GET("/stats", h.Contact.Stats)
		contacts.GET("/:id", h.Contact.Get)
		contacts.DELETE("/:id", h.Contact.Delete)
	}

	chat := r.Group("/v1/chat")
	{
		chat.POST("", h.Chat.Chat)
		chat.POST("/stream", h.Chat.ChatStream)
		chat.POST("/history", h.Chat.ChatWithHistory)
		chat.POST("/history/stream", h.Chat.ChatWithHistoryStream)
		chat.GET("/health", h.Chat.Health)
	}

	return r
}
