package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"careerscope/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	corsOrigins []string,
	jwtSvc *service.JWTService,
	userH *UserHandler,
	profileH *ProfileHandler,
	careerH *CareerHandler,
	simH *SimulationHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery, CORS y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), corsMiddleware(corsOrigins), jsonContentTypeMiddleware())

	auth := r.Group("/auth")
	auth.POST("/register", userH.Register)
	auth.POST("/login", userH.Login)
	auth.POST("/guest", userH.Guest)
	auth.POST("/refresh", userH.RefreshToken)
	auth.POST("/logout", userH.Logout)

	api := r.Group("/api")
	api.GET("/careers", careerH.ListCareers)
	api.GET("/careers/:id", careerH.GetCareer)
	api.GET("/careers/:id/similar", careerH.SimilarCareers)
	api.POST("/compare-careers", OptionalJWTMiddleware(jwtSvc), careerH.Compare)

	protected := api.Group("", JWTAuthMiddleware(jwtSvc))
	protected.POST("/user-profile", profileH.SaveSnapshot)
	protected.GET("/profile", profileH.GetProfile)
	protected.DELETE("/profile", profileH.DeleteProfile)
	protected.PUT("/profile/education", profileH.PutEducation)
	protected.PUT("/profile/behavioral", profileH.PutBehavioral)
	protected.PUT("/profile/interests", profileH.PutInterests)
	protected.POST("/profile/skills", profileH.AddSkill)
	protected.DELETE("/profile/skills/:name", profileH.RemoveSkill)
	protected.POST("/profile/continue", profileH.Continue)
	protected.POST("/profile/back", profileH.Back)
	protected.POST("/job-match", careerH.JobMatch)

	sim := r.Group("/simulation")
	sim.GET("/questions/:jobId", simH.Questions)
	sim.POST("/submit", OptionalJWTMiddleware(jwtSvc), simH.Submit)
	sim.GET("/history", JWTAuthMiddleware(jwtSvc), simH.History)

	return r
}

// corsMiddleware habilita CORS para el frontend en otro origen.
func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		cfg.AllowOrigins = nil
		cfg.AllowCredentials = false
	}
	return cors.New(cfg)
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
