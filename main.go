// File: rockgrip/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rockgrip/config"
	"rockgrip/cron"
	"rockgrip/database"
	leadRepo "rockgrip/database/repository/lead"
	"rockgrip/handlers"
	"rockgrip/middleware"
	"rockgrip/routes"
	"rockgrip/services/captcha"
	"rockgrip/services/careers"
	"rockgrip/services/catalog"
	"rockgrip/services/lead"
	"rockgrip/services/location"
	"rockgrip/services/notification"
	"rockgrip/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	if err := config.Validate(); err != nil {
		logger.Sugar().Fatalf("main: invalid configuration: %v", err)
	}

	dataset, err := location.Load()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to load location dataset: %v", err)
	}

	// Lead store.
	var repo leadRepo.LeadRepository
	switch config.AppConfig.StoreBackend {
	case "mongo":
		database.InitDB()
		repo = leadRepo.NewMongoLeadRepo()
	default:
		database.InitFirestore()
		repo = leadRepo.NewFirestoreLeadRepo()
	}

	utils.InitLockCache()

	queueClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer queueClient.Close()

	// services.
	leadService := &lead.DefaultLeadService{
		Repo:     repo,
		Verifier: captcha.NewGoogleVerifier(),
		Locker: &lead.RedisSubmissionLocker{
			Client: utils.GetLockClient(),
			TTL:    time.Duration(config.AppConfig.SubmissionLockTTLSec) * time.Second,
		},
		Queue:          queueClient,
		AllowedCities:  func() []string { return dataset.AllowedCities },
		Dataset:        dataset,
		CaptchaTimeout: time.Duration(config.AppConfig.CaptchaTimeoutSec) * time.Second,
		StoreTimeout:   time.Duration(config.AppConfig.StoreTimeoutSec) * time.Second,
	}

	salesService, err := notification.NewDefaultSalesAlertService(repo)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize sales alert service: %v", err)
	}
	cron.InitLeadNotifyWorker(salesService)

	utils.StartHealthMonitor([]*redis.Client{utils.GetLockClient()}, repo.Ping)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	handlerBundle := &routes.HandlerBundle{
		Lead:      handlers.NewLeadHandler(leadService),
		Locations: handlers.NewLocationsHandler(dataset),
		Catalog:   handlers.NewCatalogHandler(catalog.NewJSONDataService()),
		Careers:   handlers.NewCareersHandler(careers.NewJSONService()),
		Admin:     handlers.NewAdminHandler(repo),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
