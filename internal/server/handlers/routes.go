package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/webimagedrive/gallery/internal/auth"
	"github.com/webimagedrive/gallery/internal/server"
	"github.com/webimagedrive/gallery/internal/server/middleware"
	"github.com/webimagedrive/gallery/internal/user"
)

// RegisterRoutes mounts all API routes on the engine.
func RegisterRoutes(engine *gin.Engine, gateway *auth.Gateway, users user.Store) {
	authHandler := NewAuthHandler(gateway)
	userHandler := NewUserHandler(users)

	engine.GET("/", func(c *gin.Context) {
		server.RespondOK(c, gin.H{"status": "ok", "message": "gallery API"})
	})

	api := engine.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.POST("/refresh", authHandler.Refresh)
	authGroup.POST("/logout", authHandler.Logout)

	userGroup := api.Group("/users")
	userGroup.GET("/me", middleware.RequireAuth(gateway, ""), userHandler.Me)
}
