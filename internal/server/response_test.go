package server

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/webimagedrive/gallery/internal/apperr"
	"github.com/webimagedrive/gallery/internal/logger"
)

// captureLog swaps the global logger for one writing into a buffer.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	prev := logger.GetGlobalLogger()
	t.Cleanup(func() { logger.SetGlobalLogger(prev) })

	var buf bytes.Buffer
	logger.SetGlobalLogger(logger.NewWithWriter(&buf, "test"))
	return &buf
}

func newErrorContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/auth/register", nil)
	return c, w
}

func TestRespondError_LogsCauseButNeverSendsIt(t *testing.T) {
	buf := captureLog(t)
	c, w := newErrorContext(t)

	cause := errors.New("sqlite disk I/O failure")
	RespondError(c, apperr.StoreUnavailable("user", cause))

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "disk I/O") {
		t.Error("cause leaked into the response body")
	}
	logged := buf.String()
	if !strings.Contains(logged, "disk I/O failure") {
		t.Errorf("expected cause in server log, got: %s", logged)
	}
	if !strings.Contains(logged, "POST /api/auth/register") {
		t.Errorf("expected operation in server log, got: %s", logged)
	}
}

func TestRespondError_PlainErrorBecomesLoggedInternal(t *testing.T) {
	buf := captureLog(t)
	c, w := newErrorContext(t)

	RespondError(c, errors.New("nil pointer in handler"))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "nil pointer") {
		t.Error("cause leaked into the response body")
	}
	if !strings.Contains(buf.String(), "nil pointer in handler") {
		t.Errorf("expected cause in server log, got: %s", buf.String())
	}
}

func TestRespondError_CauselessErrorLogsNothing(t *testing.T) {
	buf := captureLog(t)
	c, w := newErrorContext(t)

	RespondError(c, apperr.InvalidCredentials())

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no log output for a causeless client error, got: %s", buf.String())
	}
}
