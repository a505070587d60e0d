package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v8"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/avdeev-m/finance-tracker/internal/config"
	"github.com/avdeev-m/finance-tracker/internal/handler"
	"github.com/avdeev-m/finance-tracker/internal/repository"
	"github.com/avdeev-m/finance-tracker/internal/service"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found")
	}

	cfg := config.Config{}
	if err := env.Parse(&cfg); err != nil {
		logrus.Fatalf("couldn't parse config: %v", err)
	}

	mongoCli, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoEndpoint))
	if err != nil {
		logrus.Fatalf("couldn't connect to mongo: %v", err)
	}
	defer func() {
		if err = mongoCli.Disconnect(context.Background()); err != nil {
			logrus.Errorf("couldn't disconnect mongo client: %v", err)
		}
	}()

	if err = repository.RunMigrations(cfg.PostgresEndpoint); err != nil {
		logrus.Fatalf("couldn't run migrations: %v", err)
	}

	postgresPool, err := pgxpool.Connect(ctx, cfg.PostgresEndpoint)
	if err != nil {
		logrus.Fatalf("couldn't connect to postgres: %v", err)
	}
	defer postgresPool.Close()

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisEndpoint})

	if err = os.MkdirAll(cfg.UploadsDir, 0o755); err != nil {
		logrus.Fatalf("couldn't create uploads dir: %v", err)
	}

	transactionsRepo := repository.NewMongo(mongoCli)
	usersRepo := repository.NewPostgres(postgresPool)
	userCache := repository.NewRedisUserCache(rdb, cfg.UserCacheTTL)

	authService := service.NewAuth(usersRepo, userCache, cfg.JWTSecret, cfg.TokenTTL)
	transactionsService := service.NewTransactions(transactionsRepo)
	dashboardService := service.NewDashboard(transactionsRepo)

	h := handler.New(authService, transactionsService, dashboardService, cfg.UploadsDir)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: h.Router(),
	}

	go func() {
		logrus.Infof("server started on port %d", cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, os.Interrupt)
	<-quit
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("server shutdown error: %v", err)
	}
}
