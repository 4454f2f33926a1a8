package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/webimagedrive/gallery/internal/apperr"
	"github.com/webimagedrive/gallery/internal/auth/authctx"
	"github.com/webimagedrive/gallery/internal/server"
	"github.com/webimagedrive/gallery/internal/user"
)

// UserHandler serves the /api/users routes.
type UserHandler struct {
	users user.Store
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(users user.Store) *UserHandler {
	return &UserHandler{users: users}
}

// Me handles GET /api/users/me. Runs behind RequireAuth, so a principal is
// always present in the request context.
func (h *UserHandler) Me(c *gin.Context) {
	p := authctx.MustFromContext(c.Request.Context())

	u, err := h.users.FindByID(c.Request.Context(), p.ID)
	if err != nil {
		server.RespondError(c, apperr.StoreUnavailable("user", err))
		return
	}
	if u == nil {
		// Valid token for a user record that no longer exists.
		server.RespondError(c, apperr.InvalidToken())
		return
	}
	server.RespondOK(c, gin.H{
		"id":         u.ID,
		"username":   u.Username,
		"role":       u.Role,
		"created_at": u.CreatedAt,
	})
}
