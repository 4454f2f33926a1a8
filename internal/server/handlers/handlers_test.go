package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/webimagedrive/gallery/internal/apperr"
	"github.com/webimagedrive/gallery/internal/auth"
	"github.com/webimagedrive/gallery/internal/auth/password"
	"github.com/webimagedrive/gallery/internal/auth/revocation"
	"github.com/webimagedrive/gallery/internal/auth/token"
	"github.com/webimagedrive/gallery/internal/user"
)

type envelope struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data"`
	Error   *struct {
		Code    int                    `json:"code"`
		Message string                 `json:"message"`
		Details map[string]interface{} `json:"details"`
	} `json:"error"`
}

func testEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	codec, err := token.NewCodec(token.Config{Secret: "handlers-test-secret"})
	if err != nil {
		t.Fatal(err)
	}
	users := user.NewMemoryStore()
	hasher := password.NewPBKDF2Hasher(password.WithIterations(1000))
	gateway := auth.NewGateway(users, hasher, codec, revocation.NewMemoryStore(), nil)

	engine := gin.New()
	RegisterRoutes(engine, gateway, users)
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body any, headers map[string]string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			t.Fatalf("%s %s: invalid envelope %q: %v", method, path, w.Body.String(), err)
		}
	}
	return w, env
}

func TestAuthFlow_EndToEnd(t *testing.T) {
	engine := testEngine(t)

	// register
	w, env := doJSON(t, engine, http.MethodPost, "/api/auth/register",
		map[string]string{"username": "alice", "password": "secret"}, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d (%s)", w.Code, w.Body.String())
	}
	if env.Data["username"] != "alice" || env.Data["role"] != "user" {
		t.Errorf("register data: %+v", env.Data)
	}

	// login
	w, env = doJSON(t, engine, http.MethodPost, "/api/auth/login",
		map[string]string{"username": "alice", "password": "secret"}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	access, _ := env.Data["access_token"].(string)
	refresh, _ := env.Data["refresh_token"].(string)
	if access == "" || refresh == "" {
		t.Fatalf("login must return both tokens: %+v", env.Data)
	}

	// protected endpoint without a header
	w, env = doJSON(t, engine, http.MethodGet, "/api/users/me", nil, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("me without header: expected 401, got %d", w.Code)
	}
	if env.Error == nil || env.Error.Code != int(apperr.CodeMissingToken) {
		t.Errorf("expected missing-token error, got %+v", env.Error)
	}

	// protected endpoint with bearer
	w, env = doJSON(t, engine, http.MethodGet, "/api/users/me", nil,
		map[string]string{"Authorization": "Bearer " + access})
	if w.Code != http.StatusOK {
		t.Fatalf("me with bearer: expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if env.Data["username"] != "alice" {
		t.Errorf("me data: %+v", env.Data)
	}

	// refresh mints a new access token
	w, env = doJSON(t, engine, http.MethodPost, "/api/auth/refresh",
		map[string]string{"refresh_token": refresh}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("refresh: expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	newAccess, _ := env.Data["access_token"].(string)
	if newAccess == "" || newAccess == access {
		t.Error("refresh must mint a fresh access token")
	}

	// logout revokes the refresh token
	w, env = doJSON(t, engine, http.MethodPost, "/api/auth/logout",
		map[string]string{"refresh_token": refresh}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("logout: expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if env.Data["revoked"] != true {
		t.Errorf("logout data: %+v", env.Data)
	}

	// refresh after logout fails
	w, env = doJSON(t, engine, http.MethodPost, "/api/auth/refresh",
		map[string]string{"refresh_token": refresh}, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("refresh after logout: expected 401, got %d", w.Code)
	}
	if env.Error == nil || env.Error.Code != int(apperr.CodeRevokedToken) {
		t.Errorf("expected revoked-token error, got %+v", env.Error)
	}
}

func TestRegister_MissingFields(t *testing.T) {
	engine := testEngine(t)

	w, env := doJSON(t, engine, http.MethodPost, "/api/auth/register",
		map[string]string{"username": "alice"}, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if env.Error == nil || env.Error.Code != int(apperr.CodeMissingField) {
		t.Errorf("expected missing-field error, got %+v", env.Error)
	}
	if env.Success {
		t.Error("failure envelope must have success=false")
	}
}

func TestRegister_Duplicate(t *testing.T) {
	engine := testEngine(t)

	body := map[string]string{"username": "alice", "password": "secret"}
	if w, _ := doJSON(t, engine, http.MethodPost, "/api/auth/register", body, nil); w.Code != http.StatusCreated {
		t.Fatalf("first register failed: %d", w.Code)
	}
	w, env := doJSON(t, engine, http.MethodPost, "/api/auth/register", body, nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
	if env.Error == nil || env.Error.Code != int(apperr.CodeDuplicateUser) {
		t.Errorf("expected duplicate-user error, got %+v", env.Error)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	engine := testEngine(t)

	doJSON(t, engine, http.MethodPost, "/api/auth/register",
		map[string]string{"username": "bob", "password": "pw"}, nil)
	w, env := doJSON(t, engine, http.MethodPost, "/api/auth/login",
		map[string]string{"username": "bob", "password": "wrong"}, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if env.Error == nil || env.Error.Code != int(apperr.CodeInvalidCredentials) {
		t.Errorf("expected invalid-credentials error, got %+v", env.Error)
	}
}

func TestMe_RefreshTokenAsBearerRejected(t *testing.T) {
	engine := testEngine(t)

	doJSON(t, engine, http.MethodPost, "/api/auth/register",
		map[string]string{"username": "alice", "password": "secret"}, nil)
	_, env := doJSON(t, engine, http.MethodPost, "/api/auth/login",
		map[string]string{"username": "alice", "password": "secret"}, nil)
	refresh, _ := env.Data["refresh_token"].(string)

	w, env := doJSON(t, engine, http.MethodGet, "/api/users/me", nil,
		map[string]string{"Authorization": "Bearer " + refresh})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for refresh-as-bearer, got %d", w.Code)
	}
	if env.Error == nil || env.Error.Code != int(apperr.CodeInvalidToken) {
		t.Errorf("expected invalid-token error, got %+v", env.Error)
	}
}

func TestRefresh_MissingToken(t *testing.T) {
	engine := testEngine(t)

	w, env := doJSON(t, engine, http.MethodPost, "/api/auth/refresh",
		map[string]string{}, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if env.Error == nil || env.Error.Code != int(apperr.CodeMissingField) {
		t.Errorf("expected missing-field error, got %+v", env.Error)
	}
	if env.Error != nil && env.Error.Details["field"] != "refresh_token" {
		t.Errorf("expected refresh_token field detail, got %+v", env.Error.Details)
	}
}
