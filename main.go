// File: evermore/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"evermore/config"
	reminderWorker "evermore/cron"
	"evermore/database"
	anniversaryRepoPkg "evermore/database/repository/anniversary"
	memoryRepoPkg "evermore/database/repository/memory"
	userRepoPkg "evermore/database/repository/user"
	"evermore/handlers"
	"evermore/middleware"
	"evermore/routes"
	"evermore/services/anniversary"
	"evermore/services/memory"
	"evermore/services/reminder"
	"evermore/services/storage"
	"evermore/services/user"
	"evermore/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()

	// Email provider: absence of any credential is a startup error, never a
	// mid-send discovery.
	emailClient, err := reminder.NewEmailJSClient(reminder.EmailJSConfig{
		BaseURL:    config.AppConfig.EmailJSBaseURL,
		ServiceID:  config.AppConfig.EmailJSServiceID,
		PublicKey:  config.AppConfig.EmailJSPublicKey,
		PrivateKey: config.AppConfig.EmailJSPrivateKey,
	})
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize email provider: %v", err)
	}
	dispatcher, err := reminder.NewDispatcher(reminder.DispatcherConfig{
		Sender:             emailClient,
		ReminderTemplateID: config.AppConfig.EmailJSReminderTmplID,
		TodayTemplateID:    config.AppConfig.EmailJSTodayTmplID,
		Pacing:             time.Duration(config.AppConfig.EmailPacingSeconds) * time.Second,
	})
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize dispatcher: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	anniversaryRepo := anniversaryRepoPkg.NewMongoAnniversaryRepo()
	memoryRepo := memoryRepoPkg.NewMongoMemoryRepo()
	imageStore := storage.NewGridFSImageStore()

	// services.
	userService := &user.DefaultUserService{Repo: userRepo}
	anniversaryService := &anniversary.DefaultAnniversaryService{Repo: anniversaryRepo}
	memoryService := &memory.DefaultMemoryService{Repo: memoryRepo, Images: imageStore}
	reminderService := &reminder.DefaultReminderService{
		Anniversaries: anniversaryRepo,
		Recipients:    userRepo,
		Dispatcher:    dispatcher,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Auth:          handlers.NewAuthHandler(userService),
		User:          handlers.NewUserHandler(userService),
		Anniversaries: handlers.NewAnniversaryHandler(anniversaryService),
		Memories:      handlers.NewMemoryHandler(memoryService),
		Storage:       handlers.NewStorageHandler(imageStore),
		Reminders:     handlers.NewReminderHandler(reminderService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the in-process daily reminder schedule.
	scheduler := reminderWorker.InitReminderWorker(reminderService)

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

	scheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
