package router

import (
	"time"

	"github.com/creatorpage/internal/handler"
	"github.com/creatorpage/internal/middleware"
	"github.com/creatorpage/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// contactWindow 是联系表单限流的固定窗口
const contactWindow = time.Hour

// Options 汇总构造路由所需的依赖
type Options struct {
	Directory      *service.Directory
	Logger         *zap.Logger
	AllowedOrigins []string
	// RateCounter 为空时不限制联系表单提交
	RateCounter      middleware.Counter
	ContactRateLimit int
}

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(opts Options) *gin.Engine {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(cors.New(corsConfig(opts.AllowedOrigins)))

	api := handler.NewAPI(opts.Directory, log)

	r.GET("/healthcheck", api.Healthcheck)

	group := r.Group("/api")
	{
		group.GET("/profile", api.GetProfile)

		group.GET("/social-links", api.ListSocialLinks)
		group.POST("/social-links", api.CreateSocialLink)
		group.PATCH("/social-links/:id", api.UpdateSocialLink)

		group.GET("/brands", api.ListBrands)
		group.POST("/brands", api.CreateBrand)
		group.PATCH("/brands/:id", api.UpdateBrand)

		group.GET("/site-content", api.ListSiteContent)
		group.POST("/site-content", api.CreateSiteContent)
		group.PATCH("/site-content/:id", api.UpdateSiteContent)

		submit := []gin.HandlerFunc{api.SubmitContact}
		if opts.RateCounter != nil && opts.ContactRateLimit > 0 {
			limiter := middleware.RateLimit(opts.RateCounter, "contact", int64(opts.ContactRateLimit), contactWindow, log)
			submit = append([]gin.HandlerFunc{limiter}, submit...)
		}
		group.POST("/contact-submissions", submit...)
		group.GET("/contact-submissions", api.ListContacts)
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	for _, origin := range origins {
		if origin == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}
