package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"happybrother-backend/internal/shared/middleware"
	"happybrother-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupPostRoutes(v1, c)
		setupAdminRoutes(v1, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", c.AuthHandler.Login)
		auth.POST("/logout", middleware.AuthMiddleware(c.JWTManager), c.AuthHandler.Logout)
	}
}

// ========================================
// PUBLIC POST ROUTES
// ========================================
// The marketing site consumes these without credentials. Drafts are
// excluded by the published/featured queries.
func setupPostRoutes(v1 *gin.RouterGroup, c *container.Container) {
	posts := v1.Group("/posts")
	{
		posts.GET("", c.PostHandler.ListPublished)
		posts.GET("/featured", c.PostHandler.ListFeatured)
		posts.GET("/:id", c.PostHandler.GetByID)
	}
}

// ========================================
// ADMIN ROUTES (session gate)
// ========================================
// Every admin operation is verified server-side: bearer token plus
// admin role claim.
func setupAdminRoutes(v1 *gin.RouterGroup, c *container.Container) {
	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(c.JWTManager), middleware.AdminMiddleware())
	{
		admin.GET("/posts", c.PostHandler.ListAll)
		admin.GET("/posts/:id", c.PostHandler.GetByID)
		admin.PUT("/posts/:id/draft", c.PostHandler.SaveDraft)
		admin.PUT("/posts/:id/publish", c.PostHandler.Publish)
		admin.DELETE("/posts/:id", c.PostHandler.Delete)
		admin.GET("/stats", c.PostHandler.Stats)
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		dbStatus := "ok"
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			dbStatus = "down"
		}

		cacheStatus := "ok"
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			cacheStatus = "down"
		}

		status := http.StatusOK
		if dbStatus != "ok" {
			status = http.StatusServiceUnavailable
		}

		ctx.JSON(status, gin.H{
			"status":   dbStatus,
			"database": dbStatus,
			"cache":    cacheStatus,
			"version":  c.Config.App.Version,
		})
	}
}
