package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/mcastros/clothing_store/internal/config"
	"github.com/mcastros/clothing_store/internal/db"
	"github.com/mcastros/clothing_store/internal/es"
	"github.com/mcastros/clothing_store/internal/httpserver"
	"github.com/mcastros/clothing_store/internal/logging"
	"github.com/mcastros/clothing_store/internal/middleware"
	"github.com/mcastros/clothing_store/internal/mykafka"
	"github.com/mcastros/clothing_store/internal/repo"
	"github.com/mcastros/clothing_store/internal/service"
	"github.com/mcastros/clothing_store/internal/tokens"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(cfg.LogLevel)

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	database, err := db.Open(initCtx, cfg.DBURL)
	cancel()
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	tokenManager, err := tokens.NewManager(cfg.SecretKey, cfg.Algorithm)
	if err != nil {
		log.Fatal(err)
	}

	producer := mykafka.NewProducer(cfg.KafkaBrokers)

	searchHandler := httpserver.SearchHTTP{Index: cfg.ESIndex}
	if cfg.ESURL != "" {
		esClient, err := es.NewClient(cfg)
		if err != nil {
			log.Fatalf("elasticsearch init error: %v", err)
		}
		searchHandler.ES = esClient
	}

	gormRepo := &repo.GormRepo{DB: database}

	deps := httpserver.Deps{
		Meta: httpserver.APIMeta{
			Title:       cfg.APITitle,
			Description: cfg.APIDescription,
			Version:     cfg.APIVersion,
		},
		Auth: middleware.NewBearerAuth(tokenManager),
		UserHandler: &httpserver.UserHTTP{
			Svc: &service.UserService{Repo: gormRepo, Tokens: tokenManager, Producer: producer},
		},
		ProductHandler: &httpserver.ProductHTTP{
			Svc: &service.ProductService{Repo: gormRepo, Producer: producer},
		},
		SearchHandler: &searchHandler,
	}

	e := echo.New()
	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.Recover(), echomw.RequestID(), middleware.RequestLogger(logger))

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server error: %v", err)
		}
	}()
	logger.Info("server started", "addr", cfg.Addr(), "title", cfg.APITitle, "version", cfg.APIVersion)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if sqlDB, err := database.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Error("db close error", "error", err)
		}
	}

	if err := producer.Close(); err != nil {
		logger.Error("kafka close error", "error", err)
	}

	logger.Info("shutdown complete")
}
