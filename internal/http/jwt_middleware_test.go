package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"careerscope/internal/domain"
	"careerscope/internal/service"
)

func newTestJWTService() *service.JWTService {
	return service.NewJWTServiceWithStore("test-secret", 15*time.Minute, 30*time.Minute, service.NewMemoryRefreshTokenStore())
}

func claimsEcho() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetAuthClaims(c)
		if !ok {
			c.JSON(http.StatusOK, gin.H{"user_id": ""})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": claims.UserID})
	}
}

func TestJWTAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwtSvc := newTestJWTService()
	r := gin.New()
	r.GET("/private", JWTAuthMiddleware(jwtSvc), claimsEcho())

	rec := performRequest(r, http.MethodGet, "/private", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without token, got %d", rec.Code)
	}

	rec = performAuthRequest(r, http.MethodGet, "/private", nil, "garbage")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 for invalid token, got %d", rec.Code)
	}

	pair, err := jwtSvc.GeneratePair(domain.User{ID: "u1", Role: domain.RoleMember})
	if err != nil {
		t.Fatalf("generate pair: %v", err)
	}
	rec = performAuthRequest(r, http.MethodGet, "/private", nil, pair.AccessToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["user_id"] != "u1" {
		t.Fatalf("expected claims in context, got %v", body)
	}

	// Un refresh token no sirve como access token.
	rec = performAuthRequest(r, http.MethodGet, "/private", nil, pair.RefreshToken)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 for refresh token, got %d", rec.Code)
	}
}

func TestOptionalJWTMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwtSvc := newTestJWTService()
	r := gin.New()
	r.GET("/public", OptionalJWTMiddleware(jwtSvc), claimsEcho())

	rec := performRequest(r, http.MethodGet, "/public", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 without token, got %d", rec.Code)
	}

	// Token invalido tampoco corta la solicitud.
	rec = performAuthRequest(r, http.MethodGet, "/public", nil, "garbage")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 with invalid token, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["user_id"] != "" {
		t.Fatalf("expected no claims for invalid token, got %v", body)
	}

	pair, err := jwtSvc.GeneratePair(domain.User{ID: "u1"})
	if err != nil {
		t.Fatalf("generate pair: %v", err)
	}
	rec = performAuthRequest(r, http.MethodGet, "/public", nil, pair.AccessToken)
	body = decodeBody(t, rec)
	if body["user_id"] != "u1" {
		t.Fatalf("expected claims with valid token, got %v", body)
	}
}
