// File: linkup/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"linkup/config"
	"linkup/database"
	commentRepoPkg "linkup/database/repository/comment"
	notifRepoPkg "linkup/database/repository/notification"
	userRepoPkg "linkup/database/repository/user"
	"linkup/handlers"
	"linkup/middleware"
	"linkup/routes"
	"linkup/services/notification"
	"linkup/services/user"
	"linkup/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	zap.ReplaceGlobals(logger)

	database.InitDB()
	utils.InitCache()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	routes.SetupCORS(router)

	// Repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	commentRepo := commentRepoPkg.NewMongoCommentRepo()
	notifRepo := notifRepoPkg.NewMongoNotificationRepo(utils.GetCacheClient())

	// Services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}
	notificationService := &notification.DefaultNotificationService{
		Users:    userRepo,
		Comments: commentRepo,
		Records:  notifRepo,
		Push:     notification.NewFCMSender(utils.FCMClient),
	}

	// Handlers.
	notificationHandler := handlers.NewNotificationHandler(notifRepo)
	preferenceHandler := handlers.NewPreferenceHandler(userService)
	dispatchHandler := handlers.NewDispatchHandler(notificationService)

	routes.RegisterNotificationRoutes(router, notificationHandler, preferenceHandler)
	routes.RegisterDeviceRoutes(router, preferenceHandler)
	routes.RegisterInternalRoutes(router, dispatchHandler)
	routes.RegisterHealthRoute(router)

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("linkup notification service listening on :%s", config.AppConfig.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("forced shutdown: %v", err)
	}
	if err := database.MongoClient.Disconnect(ctx); err != nil {
		logger.Sugar().Errorf("error closing MongoDB connection: %v", err)
	}
	logger.Info("Server exited")
}
