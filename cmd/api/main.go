package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	badgerdb "github.com/dgraph-io/badger/v4"

	"arogyaai/config"
	_ "arogyaai/docs" // Swagger docs
	"arogyaai/internal/classifier"
	"arogyaai/internal/httpserver"
	"arogyaai/internal/middleware"
	triageHTTP "arogyaai/internal/triage/delivery/http"
	triageRepo "arogyaai/internal/triage/repository/badger"
	triageUC "arogyaai/internal/triage/usecase"
	userHTTP "arogyaai/internal/user/delivery/http"
	userRepo "arogyaai/internal/user/repository/badger"
	userUC "arogyaai/internal/user/usecase"
	"arogyaai/pkg/groq"
	"arogyaai/pkg/log"
	"arogyaai/pkg/token"
)

// @title       ArogyaAI Triage API
// @description Health-triage assistant: symptom text and skin-lesion photos in, issue plus first-aid guidance out.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in          header
// @name        Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting ArogyaAI...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Model artifact: %s", cfg.Model.Path)

	// 3. Storage
	db, err := badgerdb.Open(badgerdb.DefaultOptions(cfg.Storage.Path))
	if err != nil {
		logger.Error(ctx, "Failed to open storage: ", err)
		return
	}
	defer db.Close()

	// 4. Auth
	tokens := token.NewManager(cfg.Auth.Secret, cfg.Auth.TokenExpiry)

	uRepo, err := userRepo.New(db, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize user repository: ", err)
		return
	}
	defer uRepo.Close()

	userHandler := userHTTP.New(logger, userUC.New(logger, uRepo, tokens))

	// 5. Triage pipeline
	cls := classifier.New(classifier.Config{
		ModelPath:     cfg.Model.Path,
		LibraryPath:   cfg.Model.LibraryPath,
		FailureWindow: cfg.Model.FailureWindow,
	}, logger)
	defer cls.Close()

	// A missing credential is valid configuration: guidance degrades to
	// the static advisory instead of calling out.
	var llm groq.IGroq
	if cfg.Groq.APIKey != "" {
		client, gErr := groq.New(groq.Config{
			APIKey:  cfg.Groq.APIKey,
			Model:   cfg.Groq.Model,
			BaseURL: cfg.Groq.BaseURL,
		})
		if gErr != nil {
			logger.Error(ctx, "Failed to initialize Groq client: ", gErr)
			return
		}
		llm = client
		logger.Infof(ctx, "Groq client initialized (model %s)", client.Model())
	} else {
		logger.Warn(ctx, "GROQ_API_KEY not set: guidance will use the static advisory")
	}

	tRepo := triageRepo.New(db, logger)
	chatHandler := triageHTTP.New(logger, triageUC.New(logger, cls, llm, tRepo))

	// 6. HTTP server
	mw := middleware.New(logger, tokens, cfg.Auth.RateLimitPerMin)

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  mw,
		UserHandler: userHandler,
		ChatHandler: chatHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
