package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"careerscope/internal/repository"
	"careerscope/internal/service"
)

// setupTestRouter arma la app completa contra stores en memoria, igual
// que el modo demo de cmd/api.
func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()

	userRepo := repository.NewMemoryUserRepository()
	profileRepo := repository.NewMemoryProfileRepository()
	careerRepo := repository.NewMemoryCareerRepository(repository.SeedCareers())
	simRepo := repository.NewMemorySimulationRepository()

	jwtSvc := service.NewJWTServiceWithStore("test-secret", 15*time.Minute, 30*time.Minute, service.NewMemoryRefreshTokenStore())
	userSvc := service.NewUserService(logger, userRepo)
	profileSvc := service.NewProfileService(logger, profileRepo)
	matchSvc := service.NewMatchService(logger, careerRepo, nil)
	compareSvc := service.NewComparisonService(logger, careerRepo, matchSvc)
	simSvc := service.NewSimulationService(logger, careerRepo, simRepo)

	userH := NewUserHandler(logger, userSvc, jwtSvc)
	profileH := NewProfileHandler(logger, profileSvc)
	careerH := NewCareerHandler(logger, careerRepo, matchSvc, compareSvc, profileSvc)
	simH := NewSimulationHandler(logger, simSvc)

	return NewRouter(logger, nil, jwtSvc, userH, profileH, careerH, simH)
}

func performRequest(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	return performAuthRequest(r, method, path, body, "")
}

func performAuthRequest(r http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	var payload []byte
	if body != nil {
		payload, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v (%s)", err, rec.Body.String())
	}
	return out
}

// guestToken crea una sesion guest y devuelve su access token.
func guestToken(t *testing.T, r http.Handler) string {
	t.Helper()
	rec := performRequest(r, http.MethodPost, "/auth/guest", nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("guest session failed with status %d", rec.Code)
	}
	body := decodeBody(t, rec)
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatalf("expected guest token, got %v", body)
	}
	return token
}

func TestRouter_JSONContentType(t *testing.T) {
	r := setupTestRouter()

	rec := performRequest(r, http.MethodGet, "/api/careers", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected json content type, got %q", ct)
	}
}

func TestRouter_UnknownRoute(t *testing.T) {
	r := setupTestRouter()

	rec := performRequest(r, http.MethodGet, "/api/unknown", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}
