package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/webimagedrive/gallery/internal/apperr"
	"github.com/webimagedrive/gallery/internal/logger"
)

// RespondOK sends a 200 success envelope wrapping data.
func RespondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, apperr.OK(data))
}

// RespondCreated sends a 201 success envelope wrapping data.
func RespondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, apperr.OK(data))
}

// RespondError inspects err: if it is an *apperr.Error the status and
// structured body are derived from it; anything else becomes a generic 500.
// Causes are logged server-side and never sent to clients.
func RespondError(c *gin.Context, err error) {
	appErr, ok := apperr.As(err)
	if !ok {
		appErr = apperr.Internal(err)
	}
	if appErr.Cause != nil {
		fields := logger.ErrorFields(c.Request.Method+" "+c.Request.URL.Path, appErr.Cause)
		if id := c.GetString(logger.FieldRequestID); id != "" {
			fields[logger.FieldRequestID] = id
		}
		logger.WithComponent("http").Error(appErr.Message, fields)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToResponse())
}
