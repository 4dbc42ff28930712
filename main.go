// File: kycdesk/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kycdesk/config"
	"kycdesk/cron"
	"kycdesk/database"
	clientRepoPkg "kycdesk/database/repository/client"
	documentRepoPkg "kycdesk/database/repository/document"
	staffRepoPkg "kycdesk/database/repository/staff"
	"kycdesk/handlers"
	"kycdesk/middleware"
	"kycdesk/routes"
	clientSvc "kycdesk/services/client"
	documentSvc "kycdesk/services/document"
	notificationSvc "kycdesk/services/notification"
	sessionSvc "kycdesk/services/session"
	staffSvc "kycdesk/services/staff"
	"kycdesk/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	clientRepo := clientRepoPkg.NewMongoClientRepo()
	documentRepo := documentRepoPkg.NewMongoDocumentRepo()
	staffRepo := staffRepoPkg.NewMongoStaffRepo()

	// services.
	clientService := &clientSvc.DefaultClientService{Repo: clientRepo}
	sessionService := &sessionSvc.DefaultKYCSessionService{}
	documentService := &documentSvc.DefaultDocumentService{Repo: documentRepo}
	staffService := &staffSvc.DefaultStaffService{Repo: staffRepo}
	notificationService := &notificationSvc.DefaultNotificationService{Staff: staffRepo}

	// handlers.
	sessionHandler := handlers.NewSessionHandler(clientService, sessionService, logger)
	submissionHandler := handlers.NewSubmissionHandler(sessionService, documentService, logger)
	reviewHandler := handlers.NewReviewHandler(documentService, logger)
	dashboardHandler := handlers.NewDashboardHandler(documentService, logger)
	authHandler := handlers.NewAuthHandler(staffService, logger)
	adminHandler := handlers.NewAdminHandler(clientService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Client-facing flow.
		ValidateClient: sessionHandler.ValidateClientHandler,
		StartSession:   sessionHandler.StartSessionHandler,
		GetSession:     sessionHandler.GetSessionHandler,
		CancelSession:  sessionHandler.CancelSessionHandler,
		SubmitNatural:  submissionHandler.NaturalSubmissionHandler,
		SubmitLegal:    submissionHandler.LegalSubmissionHandler,

		// Staff auth.
		Login:  authHandler.LoginHandler,
		Logout: authHandler.LogoutHandler,

		// Staff review workflow.
		Dashboard:    dashboardHandler.KanbanHandler,
		Expiring:     dashboardHandler.ExpiringDocumentsHandler,
		ViewDocument: reviewHandler.ViewDocumentHandler,
		ResolveRoute: reviewHandler.ResolveRouteHandler,
		ReviewAction: reviewHandler.ReviewActionHandler,

		// Admin client management.
		CreateClient: adminHandler.CreateClientHandler,
		ListClients:  adminHandler.ListClientsHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Daily expiry scan worker.
	cron.InitExpiryWorker(documentService, documentRepo, notificationService)

	// Background health monitor for /health.
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetAuthCacheClient(), utils.GetSessionCacheClient()},
		database.MongoClient,
	)

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
