package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"careerscope/internal/domain"
	"careerscope/internal/repository"
	"careerscope/internal/service"
)

// CareerHandler sirve el catalogo y los endpoints de matching y
// comparacion que operan sobre el.
type CareerHandler struct {
	logger      *zap.Logger
	careers     repository.CareerRepository
	matchServ   *service.MatchService
	compareServ *service.ComparisonService
	profileServ *service.ProfileService
}

// NewCareerHandler crea una instancia de CareerHandler.
func NewCareerHandler(
	logger *zap.Logger,
	careers repository.CareerRepository,
	matchServ *service.MatchService,
	compareServ *service.ComparisonService,
	profileServ *service.ProfileService,
) *CareerHandler {
	return &CareerHandler{
		logger:      logger,
		careers:     careers,
		matchServ:   matchServ,
		compareServ: compareServ,
		profileServ: profileServ,
	}
}

const defaultSimilarLimit = 3

// ListCareers maneja GET /api/careers.
func (h *CareerHandler) ListCareers(c *gin.Context) {
	careers, err := h.careers.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list careers failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "store unavailable"})
		return
	}
	if careers == nil {
		careers = []domain.Career{}
	}
	c.JSON(http.StatusOK, careers)
}

// GetCareer maneja GET /api/careers/:id.
func (h *CareerHandler) GetCareer(c *gin.Context) {
	id, ok := careerID(c)
	if !ok {
		return
	}
	career, err := h.careers.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "career not found"})
			return
		}
		h.logger.Error("get career failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "store unavailable"})
		return
	}
	c.JSON(http.StatusOK, career)
}

// SimilarCareers maneja GET /api/careers/:id/similar: vecinos por
// distancia sobre el vector de atributos, para las aristas del grafo.
func (h *CareerHandler) SimilarCareers(c *gin.Context) {
	id, ok := careerID(c)
	if !ok {
		return
	}
	limit := defaultSimilarLimit
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	similar, err := h.careers.Similar(c.Request.Context(), id, limit)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "career not found"})
			return
		}
		h.logger.Error("similar careers failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "store unavailable"})
		return
	}
	if similar == nil {
		similar = []domain.Career{}
	}
	c.JSON(http.StatusOK, similar)
}

// JobMatch maneja POST /api/job-match: rankea el catalogo completo
// contra el perfil del body o, si no viene uno usable, el almacenado.
func (h *CareerHandler) JobMatch(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	// Body opcional: sin body se usa el perfil almacenado.
	var req service.ProfileSnapshot
	if c.Request.Body != nil && c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Warn("invalid job match request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}
	}

	profile, err := h.resolveProfile(c, claims.UserID, req)
	if err != nil {
		respondServiceError(c, h.logger, err, "could not load profile")
		return
	}

	matches, err := h.matchServ.Rank(c.Request.Context(), profile)
	if err != nil {
		respondServiceError(c, h.logger, err, "could not rank careers")
		return
	}
	c.JSON(http.StatusOK, matches)
}

// Compare maneja POST /api/compare-careers. Con token valido las filas
// incluyen match score; sin token los scores quedan en cero.
func (h *CareerHandler) Compare(c *gin.Context) {
	var req struct {
		JobIDs []int `json:"job_ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid compare request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	var profile *domain.Profile
	if claims, ok := GetAuthClaims(c); ok {
		if stored, err := h.profileServ.Get(c.Request.Context(), claims.UserID); err == nil {
			profile = &stored
		}
	}

	comparison, err := h.compareServ.Compare(c.Request.Context(), profile, req.JobIDs)
	if err != nil {
		respondServiceError(c, h.logger, err, "could not compare careers")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"rows":     comparison.Rows,
		"insights": comparison.Insights,
	})
}

// resolveProfile prefiere un snapshot completo del body; si no, carga
// el perfil persistido del usuario.
func (h *CareerHandler) resolveProfile(c *gin.Context, userID string, snapshot service.ProfileSnapshot) (domain.Profile, error) {
	if snapshot.Education != nil && len(snapshot.Skills) > 0 && snapshot.Behavioral != nil {
		return domain.Profile{
			UserID:     userID,
			Education:  snapshot.Education,
			Skills:     snapshot.Skills,
			Interests:  snapshot.Interests,
			Behavioral: snapshot.Behavioral,
			Step:       domain.StepComplete,
		}, nil
	}
	return h.profileServ.Get(c.Request.Context(), userID)
}

func careerID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid career id"})
		return 0, false
	}
	return id, true
}
