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
	"github.com/labstack/echo/v4/middleware"

	"github.com/THANH290803/companyName/internal/auth"
	"github.com/THANH290803/companyName/internal/config"
	"github.com/THANH290803/companyName/internal/es"
	"github.com/THANH290803/companyName/internal/handlers"
	"github.com/THANH290803/companyName/internal/logging"
	mwauth "github.com/THANH290803/companyName/internal/middleware/auth"
	loggingmw "github.com/THANH290803/companyName/internal/middleware/logging"
	"github.com/THANH290803/companyName/internal/mykafka"
	httpserver "github.com/THANH290803/companyName/internal/transport/http"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	config.MustNonEmpty(configuration.JWT_SECRET, "JWT_SECRET")

	logger := logging.New(configuration.LOG_LEVEL)

	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	var producer *mykafka.Producer
	if configuration.KAFKA_ADDRESS != "" {
		producer = mykafka.NewProducer([]string{configuration.KAFKA_ADDRESS})
	}

	var searchHandler *handlers.SearchHandler
	if configuration.ES_URL != "" {
		esClient, err := es.NewClient(configuration)
		if err != nil {
			log.Fatalf("elasticsearch init error: %v", err)
		}
		searchHandler = handlers.NewSearchHandler(esClient, "task")
	}

	tokens := &auth.TokenService{
		Secret: []byte(configuration.JWT_SECRET),
		TTL:    configuration.TOKEN_TTL,
	}
	store := &auth.Store{DB: db}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(loggingmw.RequestLogger(logger))

	deps := httpserver.Deps{
		DB:   db,
		Gate: mwauth.NewGate(tokens),

		AuthHandler:           &handlers.AuthHandler{DB: db, Store: store, Tokens: tokens, Producer: producer},
		UserHandler:           &handlers.UserHandler{DB: db},
		RoleHandler:           &handlers.RoleHandler{DB: db},
		CompanyHandler:        &handlers.CompanyHandler{DB: db},
		DepartmentHandler:     &handlers.DepartmentHandler{DB: db},
		TeamHandler:           &handlers.TeamHandler{DB: db},
		ProjectHandler:        &handlers.ProjectHandler{DB: db},
		TaskStatusHandler:     &handlers.TaskStatusHandler{DB: db},
		ApprovalStatusHandler: &handlers.ApprovalStatusHandler{DB: db},
		TaskStageHandler:      &handlers.TaskStageHandler{DB: db},
		TaskHandler:           &handlers.TaskHandler{DB: db, Producer: producer},
		TaskPermissionHandler: &handlers.TaskPermissionHandler{DB: db},
		TaskMessageHandler:    &handlers.TaskMessageHandler{DB: db},
		SearchHandler:         searchHandler,
	}

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         ":" + configuration.PORT,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()
	logger.Info("server started", "port", configuration.PORT)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Error("db close error", "error", err)
		}
	} else {
		logger.Error("db() error", "error", err)
	}

	if producer != nil {
		if err := producer.Close(); err != nil {
			logger.Error("kafka close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
