package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"careerscope/internal/service"
)

// SimulationHandler sirve el cuestionario situacional y su historial.
type SimulationHandler struct {
	logger  *zap.Logger
	simServ *service.SimulationService
}

// NewSimulationHandler crea una instancia de SimulationHandler.
func NewSimulationHandler(logger *zap.Logger, simServ *service.SimulationService) *SimulationHandler {
	return &SimulationHandler{
		logger:  logger,
		simServ: simServ,
	}
}

// Questions maneja GET /simulation/questions/:jobId.
func (h *SimulationHandler) Questions(c *gin.Context) {
	jobID, err := strconv.Atoi(c.Param("jobId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid job id"})
		return
	}
	questions, err := h.simServ.Questions(c.Request.Context(), jobID)
	if err != nil {
		respondServiceError(c, h.logger, err, "could not load questions")
		return
	}
	c.JSON(http.StatusOK, questions)
}

// Submit maneja POST /simulation/submit. Con token valido el resultado
// ademas se persiste como historial del usuario.
func (h *SimulationHandler) Submit(c *gin.Context) {
	var req struct {
		JobID   int            `json:"jobId" binding:"required"`
		Answers map[string]any `json:"answers" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid simulation submit", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	userID := ""
	if claims, ok := GetAuthClaims(c); ok {
		userID = claims.UserID
	}

	result, err := h.simServ.Submit(c.Request.Context(), userID, req.JobID, req.Answers)
	if err != nil {
		respondServiceError(c, h.logger, err, "could not run simulation")
		return
	}
	c.JSON(http.StatusOK, result)
}

// History maneja GET /simulation/history.
func (h *SimulationHandler) History(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}
	records, err := h.simServ.History(c.Request.Context(), claims.UserID)
	if err != nil {
		respondServiceError(c, h.logger, err, "could not load history")
		return
	}
	c.JSON(http.StatusOK, records)
}
