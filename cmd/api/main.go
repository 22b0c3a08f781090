package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"portfolio-api/internal/config"
	"portfolio-api/internal/db"
	apihttp "portfolio-api/internal/http"
	"portfolio-api/internal/repository"
	"portfolio-api/internal/service"

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

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	userRepo := repository.NewPgUserRepository(pool)
	projectRepo := repository.NewPgProjectRepository(pool)

	var (
		loginLimiter service.LoginRateLimiter
		tokenStore   service.RefreshTokenStore
		redisClient  *redis.Client
	)
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			loginLimiter = service.NewRedisLoginRateLimiter(redisClient, time.Minute, 10)
			tokenStore = service.NewRedisRefreshTokenStore(redisClient)
		}
		cancel()
	}
	if loginLimiter == nil {
		loginLimiter = service.NewLoginRateLimiter(time.Minute, 10)
	}

	jwtSvc := service.NewJWTServiceWithStore(
		cfg.JWTSecret,
		time.Duration(cfg.JWTTTLSeconds)*time.Second,
		time.Duration(cfg.JWTRefreshTTLMinutes)*time.Minute,
		tokenStore,
	)

	hasher := service.NewPasswordHasher(cfg.BcryptCost)
	userSvc := service.NewUserService(logger, userRepo, hasher, loginLimiter)
	projectSvc := service.NewProjectService(logger, projectRepo)

	authHandler := apihttp.NewAuthHandler(logger, userSvc, jwtSvc)
	projectHandler := apihttp.NewProjectHandler(logger, projectSvc)
	router := apihttp.NewRouter(logger, authHandler, projectHandler, apihttp.JWTAuthMiddleware(jwtSvc), pool)

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
