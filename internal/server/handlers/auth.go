// Package handlers wires the auth gateway to the HTTP routes. Handlers stay
// thin: bind, call the gateway, respond with the standard envelope.
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/webimagedrive/gallery/internal/auth"
	"github.com/webimagedrive/gallery/internal/server"
)

// AuthHandler serves the /api/auth routes.
type AuthHandler struct {
	gateway *auth.Gateway
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(gateway *auth.Gateway) *AuthHandler {
	return &AuthHandler{gateway: gateway}
}

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := bindJSON(c, &req); err != nil {
		server.RespondError(c, err)
		return
	}

	p, err := h.gateway.Register(c.Request.Context(), req.Username, req.Password, req.Role)
	if err != nil {
		server.RespondError(c, err)
		return
	}
	server.RespondCreated(c, gin.H{
		"id":       p.ID,
		"username": req.Username,
		"role":     p.Role,
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := bindJSON(c, &req); err != nil {
		server.RespondError(c, err)
		return
	}

	pair, err := h.gateway.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		server.RespondError(c, err)
		return
	}
	server.RespondOK(c, pair)
}

// Refresh handles POST /api/auth/refresh.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := bindJSON(c, &req); err != nil {
		server.RespondError(c, err)
		return
	}

	access, err := h.gateway.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		server.RespondError(c, err)
		return
	}
	server.RespondOK(c, gin.H{"access_token": access})
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	var req refreshRequest
	if err := bindJSON(c, &req); err != nil {
		server.RespondError(c, err)
		return
	}

	if err := h.gateway.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		server.RespondError(c, err)
		return
	}
	server.RespondOK(c, gin.H{"revoked": true})
}
