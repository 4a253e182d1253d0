package http

import (
	"net/http"
	"testing"
)

func TestProfileHandler_RequiresToken(t *testing.T) {
	r := setupTestRouter()

	rec := performRequest(r, http.MethodGet, "/api/profile", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
	rec = performAuthRequest(r, http.MethodGet, "/api/profile", nil, "not-a-jwt")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 for garbage token, got %d", rec.Code)
	}
}

func TestProfileHandler_NotFoundBeforeIntake(t *testing.T) {
	r := setupTestRouter()
	token := guestToken(t, r)

	rec := performAuthRequest(r, http.MethodGet, "/api/profile", nil, token)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestProfileHandler_StepwiseIntake(t *testing.T) {
	r := setupTestRouter()
	token := guestToken(t, r)

	rec := performAuthRequest(r, http.MethodPut, "/api/profile/education", map[string]string{
		"level": "Undergraduate", "field": "Physics",
	}, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	rec = performAuthRequest(r, http.MethodPost, "/api/profile/continue", nil, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["step"] != "skills" {
		t.Fatalf("expected skills step, got %v", body["step"])
	}

	// Avanzar sin skills devuelve 422 con el detalle.
	rec = performAuthRequest(r, http.MethodPost, "/api/profile/continue", nil, token)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", rec.Code)
	}

	rec = performAuthRequest(r, http.MethodPost, "/api/profile/skills", map[string]any{
		"domain": "Technology", "name": "Python", "proficiency": 4, "interest": 80,
	}, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	rec = performAuthRequest(r, http.MethodPost, "/api/profile/back", nil, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	body = decodeBody(t, rec)
	if body["step"] != "education" {
		t.Fatalf("expected education step after back, got %v", body["step"])
	}
}

func TestProfileHandler_SkillValidation(t *testing.T) {
	r := setupTestRouter()
	token := guestToken(t, r)

	rec := performAuthRequest(r, http.MethodPost, "/api/profile/skills", map[string]any{
		"name": "Python", "proficiency": 9, "interest": 80,
	}, token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestProfileHandler_RemoveSkill(t *testing.T) {
	r := setupTestRouter()
	token := guestToken(t, r)

	performAuthRequest(r, http.MethodPost, "/api/profile/skills", map[string]any{
		"name": "Python", "proficiency": 4, "interest": 80,
	}, token)

	rec := performAuthRequest(r, http.MethodDelete, "/api/profile/skills/Python", nil, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	rec = performAuthRequest(r, http.MethodDelete, "/api/profile/skills/Python", nil, token)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for absent skill, got %d", rec.Code)
	}
}

func TestProfileHandler_SnapshotAndClear(t *testing.T) {
	r := setupTestRouter()
	token := guestToken(t, r)

	rec := performAuthRequest(r, http.MethodPost, "/api/user-profile", map[string]any{
		"education": map[string]string{"level": "Undergraduate"},
		"skills": []map[string]any{
			{"domain": "Technology", "name": "Python", "proficiency": 4, "interest": 80},
		},
		"interests":  []string{"Technology"},
		"behavioral": map[string]any{"pace": "Balanced", "risk": "Moderate"},
	}, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	if body["step"] != "complete" {
		t.Fatalf("expected complete step, got %v", body["step"])
	}

	rec = performAuthRequest(r, http.MethodDelete, "/api/profile", nil, token)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", rec.Code)
	}
	rec = performAuthRequest(r, http.MethodGet, "/api/profile", nil, token)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 after clear, got %d", rec.Code)
	}
}

func TestProfileHandler_PutInterests(t *testing.T) {
	r := setupTestRouter()
	token := guestToken(t, r)

	rec := performAuthRequest(r, http.MethodPut, "/api/profile/interests", map[string]any{
		"interests": []string{"Technology", "Design"},
	}, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	interests, ok := body["interests"].([]any)
	if !ok || len(interests) != 2 {
		t.Fatalf("expected 2 interests, got %v", body["interests"])
	}
}
