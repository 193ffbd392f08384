package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	docs "main/docs"
	appauth "main/internal/application/service/auth"
	appcatalog "main/internal/application/service/catalog"
	appportfolio "main/internal/application/service/portfolio"
	apptransactions "main/internal/application/service/transactions"
	appusers "main/internal/application/service/users"
	"main/internal/config"
	infraaccounts "main/internal/infrastructure/accounts"
	"main/internal/infrastructure/broker"
	infracatalog "main/internal/infrastructure/catalog"
	infraportfolio "main/internal/infrastructure/portfolio"
	infrahttp "main/internal/interfaces/http"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	docs.SwaggerInfo.BasePath = "/api/v1"
	docs.SwaggerInfo.Host = cfg.HTTP.Addr()

	accountsRepo, err := infraaccounts.NewRepository(ctx, cfg.Postgres.DSN)
	if err != nil {
		logger.Fatalf("failed to init accounts repo: %v", err)
	}
	defer accountsRepo.Close()

	catalogRepo, err := infracatalog.NewRepository(ctx, cfg.Postgres.DSN)
	if err != nil {
		logger.Fatalf("failed to init catalog repo: %v", err)
	}
	defer catalogRepo.Close()

	portfolioRepo, err := infraportfolio.NewRepository(ctx, cfg.Postgres.DSN)
	if err != nil {
		logger.Fatalf("failed to init portfolio repo: %v", err)
	}
	defer portfolioRepo.Close()

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Fatalf("failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
	}

	var publisher *broker.Publisher
	if cfg.RabbitMQ.URL != "" {
		publisher, err = broker.NewPublisher(cfg.RabbitMQ, logger)
		if err != nil {
			logger.Fatalf("failed to init rabbitmq publisher: %v", err)
		}
		if err := publisher.Start(); err != nil {
			logger.Fatalf("failed to start rabbitmq publisher: %v", err)
		}
		defer publisher.Close()
	}

	authService := appauth.NewService(accountsRepo, cfg.Auth)
	usersService := appusers.NewService(accountsRepo, catalogRepo, portfolioRepo)
	catalogService := appcatalog.NewService(catalogRepo)
	portfolioService := appportfolio.NewService(accountsRepo, catalogRepo, portfolioRepo, portfolioRepo)
	transactionsService := apptransactions.NewService(portfolioRepo, publisher, logger)

	cacheTTL := time.Duration(cfg.Cache.TTLSeconds) * time.Second
	handler := infrahttp.NewHandler(authService, usersService, catalogService, portfolioService, transactionsService, redisClient, cacheTTL)

	server := &http.Server{
		Addr:    cfg.HTTP.Addr(),
		Handler: handler,
	}

	go func() {
		logger.Infof("HTTP server listening on %s", cfg.HTTP.Addr())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("http server error: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Infof("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("server shutdown error: %v", err)
	}
	logger.Info("server stopped")
}
