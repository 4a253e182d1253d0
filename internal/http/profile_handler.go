package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"careerscope/internal/domain"
	"careerscope/internal/service"
)

// ProfileHandler mantiene dependencias para los endpoints del perfil.
// Todas las rutas exigen token: el user id sale de los claims.
type ProfileHandler struct {
	logger      *zap.Logger
	profileServ *service.ProfileService
}

// NewProfileHandler crea una instancia de ProfileHandler.
func NewProfileHandler(logger *zap.Logger, profileServ *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		logger:      logger,
		profileServ: profileServ,
	}
}

// GetProfile maneja GET /api/profile.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}
	profile, err := h.profileServ.Get(c.Request.Context(), claims.UserID)
	if err != nil {
		respondServiceError(c, h.logger, err, "could not load profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// DeleteProfile maneja DELETE /api/profile.
func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}
	if err := h.profileServ.Clear(c.Request.Context(), claims.UserID); err != nil {
		respondServiceError(c, h.logger, err, "could not clear profile")
		return
	}
	c.Status(http.StatusNoContent)
}

// SaveSnapshot maneja POST /api/user-profile: sync del perfil completo.
func (h *ProfileHandler) SaveSnapshot(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}
	var req service.ProfileSnapshot
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid profile snapshot", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	profile, err := h.profileServ.SaveSnapshot(c.Request.Context(), claims.UserID, req)
	if err != nil {
		respondServiceError(c, h.logger, err, "could not save profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// PutEducation maneja PUT /api/profile/education.
func (h *ProfileHandler) PutEducation(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}
	var req domain.Education
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid education payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	profile, err := h.profileServ.SaveEducation(c.Request.Context(), claims.UserID, req)
	if err != nil {
		respondServiceError(c, h.logger, err, "could not save education")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// PutBehavioral maneja PUT /api/profile/behavioral.
func (h *ProfileHandler) PutBehavioral(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}
	var req domain.Behavioral
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid behavioral payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	profile, err := h.profileServ.SaveBehavioral(c.Request.Context(), claims.UserID, req)
	if err != nil {
		respondServiceError(c, h.logger, err, "could not save preferences")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// PutInterests maneja PUT /api/profile/interests.
func (h *ProfileHandler) PutInterests(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}
	var req struct {
		Interests []string `json:"interests"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid interests payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	profile, err := h.profileServ.SaveInterests(c.Request.Context(), claims.UserID, req.Interests)
	if err != nil {
		respondServiceError(c, h.logger, err, "could not save interests")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// AddSkill maneja POST /api/profile/skills.
func (h *ProfileHandler) AddSkill(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}
	var req domain.Skill
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid skill payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	profile, err := h.profileServ.AddSkill(c.Request.Context(), claims.UserID, req)
	if err != nil {
		respondServiceError(c, h.logger, err, "could not add skill")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// RemoveSkill maneja DELETE /api/profile/skills/:name.
func (h *ProfileHandler) RemoveSkill(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}
	profile, err := h.profileServ.RemoveSkill(c.Request.Context(), claims.UserID, c.Param("name"))
	if err != nil {
		respondServiceError(c, h.logger, err, "could not remove skill")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Continue maneja POST /api/profile/continue: avanza el onboarding.
func (h *ProfileHandler) Continue(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}
	profile, err := h.profileServ.Advance(c.Request.Context(), claims.UserID)
	if err != nil {
		respondServiceError(c, h.logger, err, "could not advance onboarding")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Back maneja POST /api/profile/back: retrocede el onboarding.
func (h *ProfileHandler) Back(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}
	profile, err := h.profileServ.Back(c.Request.Context(), claims.UserID)
	if err != nil {
		respondServiceError(c, h.logger, err, "could not step back")
		return
	}
	c.JSON(http.StatusOK, profile)
}
