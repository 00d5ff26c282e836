package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"dev-orbit.backend/internal/interfaces/http/handlers"
	"dev-orbit.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler         *handlers.AuthHandler
	verificationHandler *handlers.VerificationHandler
	postHandler         *handlers.PostHandler
	userHandler         *handlers.UserHandler
	authMiddleware      gin.HandlerFunc
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "dev-orbit-backend",
			"version": "1.0.0",
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" {
			origin = "*"
		}
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/refresh", d.authHandler.RefreshToken)
			auth.POST("/logout", d.authHandler.Logout)
			auth.GET("/me", d.authMiddleware, middleware.RequireScopes(middleware.ScopeMe), d.authHandler.Me)
		}

		// Email verification routes
		verify := v1.Group("/verify")
		{
			verify.POST("/request-code", d.authMiddleware, middleware.RequireScopes(middleware.ScopeEmailSend), d.verificationHandler.RequestCode)
			verify.POST("/confirm", d.verificationHandler.ConfirmCode)
		}

		// Public feed
		v1.GET("/feed", d.postHandler.GetFeed)

		// Post routes (verified writers only)
		posts := v1.Group("/posts")
		posts.Use(d.authMiddleware, middleware.RequireScopes(middleware.ScopeUserWrite), middleware.RequireActiveUser())
		{
			posts.POST("", d.postHandler.CreatePost)
			posts.PATCH("/:id", d.postHandler.UpdatePost)
			posts.DELETE("/:id", d.postHandler.DeletePost)
			posts.POST("/:id/like", d.postHandler.LikePost)
			posts.DELETE("/:id/like", d.postHandler.UnlikePost)
		}

		// User routes
		users := v1.Group("/users")
		{
			users.PATCH("/me", d.authMiddleware, middleware.RequireScopes(middleware.ScopeUserWrite), middleware.RequireActiveUser(), d.userHandler.UpdateProfile)
			users.GET("/:username", d.userHandler.GetPublicProfile)
		}

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireScopes(middleware.ScopeAdmin))
		{
			admin.GET("/users", d.userHandler.ListUsers)
			admin.DELETE("/users/:id", d.userHandler.DeleteUser)
		}
	}
}
