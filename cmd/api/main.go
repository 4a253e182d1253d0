package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"careerscope/internal/config"
	"careerscope/internal/db"
	apihttp "careerscope/internal/http"
	"careerscope/internal/repository"
	"careerscope/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	var (
		userRepo    repository.UserRepository
		profileRepo repository.ProfileRepository
		careerRepo  repository.CareerRepository
		simRepo     repository.SimulationRepository
	)
	if cfg.DemoMode {
		// Composicion explicita para demos: stores en memoria con el
		// catalogo sembrado. Nunca un fallback ante fallas de conexion.
		logger.Info("demo mode: using seeded in-memory stores")
		userRepo = repository.NewMemoryUserRepository()
		profileRepo = repository.NewMemoryProfileRepository()
		careerRepo = repository.NewMemoryCareerRepository(repository.SeedCareers())
		simRepo = repository.NewMemorySimulationRepository()
	} else {
		pool, err := db.NewPool(ctx, cfg)
		if err != nil {
			logger.Fatal("db connect", zap.Error(err))
		}
		defer pool.Close()

		userRepo = repository.NewPgUserRepository(pool)
		profileRepo = repository.NewPgProfileRepository(pool)
		simRepo = repository.NewPgSimulationRepository(pool)

		// El catalogo es inmutable en runtime: se carga completo al
		// arrancar y se sirve desde memoria.
		cached := repository.NewCachedCareerRepository(repository.NewPgCareerRepository(pool))
		if err := cached.Reload(ctx); err != nil {
			logger.Fatal("career catalog load", zap.Error(err))
		}
		careerRepo = cached
	}

	var (
		tokenStore service.RefreshTokenStore
		matchCache service.MatchCache
	)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			tokenStore = service.NewRedisRefreshTokenStore(redisClient)
			matchCache = service.NewRedisMatchCache(redisClient, 0)
		}
		cancel()
	}

	jwtSvc := service.NewJWTServiceWithStore(
		cfg.JWTSecret,
		time.Duration(cfg.JWTAccessTTLMinutes)*time.Minute,
		time.Duration(cfg.JWTRefreshTTLMinutes)*time.Minute,
		tokenStore,
	)
	if cfg.JWTSecret == "" {
		logger.Warn("jwt secret not configured")
	}

	userSvc := service.NewUserService(logger, userRepo)
	profileSvc := service.NewProfileService(logger, profileRepo)
	matchSvc := service.NewMatchService(logger, careerRepo, matchCache)
	compareSvc := service.NewComparisonService(logger, careerRepo, matchSvc)
	simSvc := service.NewSimulationService(logger, careerRepo, simRepo)

	userHandler := apihttp.NewUserHandler(logger, userSvc, jwtSvc)
	profileHandler := apihttp.NewProfileHandler(logger, profileSvc)
	careerHandler := apihttp.NewCareerHandler(logger, careerRepo, matchSvc, compareSvc, profileSvc)
	simHandler := apihttp.NewSimulationHandler(logger, simSvc)
	router := apihttp.NewRouter(logger, cfg.CORSOrigins, jwtSvc, userHandler, profileHandler, careerHandler, simHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
