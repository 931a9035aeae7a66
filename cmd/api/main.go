package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ai-marketing-backend/config"
	_ "ai-marketing-backend/docs" // Important for Swagger
	v1 "ai-marketing-backend/internal/delivery/http/v1"
	"ai-marketing-backend/internal/domain"
	"ai-marketing-backend/internal/usecase"
	"ai-marketing-backend/pkg/email"
	"ai-marketing-backend/pkg/logger"
	"ai-marketing-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

// @title           AI Marketing Partners Site API
// @version         1.0
// @description     Contact form backend for the AI Marketing Partners website.
// @host            localhost:8080
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.InitWithLevel(cfg.LogLevel)
	logger.Log.Info("Starting site backend", "port", cfg.Port, "email_provider", cfg.EmailProvider)
	gin.SetMode(cfg.GinMode)

	// 3. Setup Email Sender
	sender := newSender(cfg)
	composer := email.NewComposer(email.ComposerConfig{
		From:       cfg.ContactFromEmail,
		OperatorTo: cfg.ContactEmailTo,
		SiteName:   cfg.SiteName,
		SiteURL:    cfg.SiteURL,
	})

	// 4. Setup UseCases
	contactUC := usecase.NewContactUsecase(sender, composer, validation.New())
	healthUC := usecase.NewHealthUsecase(sender)

	// 5. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		HealthUC:  healthUC,
		Config:    cfg,
	})

	// 6. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

func newSender(cfg *config.Config) domain.MessageSender {
	switch cfg.EmailProvider {
	case config.ProviderResend:
		return email.NewResendSender(cfg.ResendAPIKey)
	case config.ProviderSMTP:
		return email.NewSMTPSender(email.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
		})
	default:
		logger.Log.Warn("Email provider not configured - contact submissions will only be logged")
		return email.NewLogSender()
	}
}
