// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"go_flashcard_keep/internal/config"
	"go_flashcard_keep/internal/handlers"
	"go_flashcard_keep/internal/middleware"
	"go_flashcard_keep/internal/repository"
	"go_flashcard_keep/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func newLogger(level string) *slog.Logger {
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
	}
	return slog.New(handler)
}

func main() {
	// 設定ファイル読み込み用の一時的なロガー
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := config.LoadConfig("../configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}
	cfg := config.Cfg

	logger := newLogger(cfg.Log.Level)
	slog.SetDefault(logger)
	slog.Info("Application starting...", slog.String("APP_ENV", os.Getenv("APP_ENV")))

	// 1. DB接続
	db, err := repository.NewDB(cfg.Database, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	// 2. AI補完クライアント
	completer, closeCompleter, err := service.NewCompleter(context.Background(), cfg.AI)
	if err != nil {
		slog.Error("Error initializing completion client", slog.Any("error", err))
		os.Exit(1)
	}
	defer closeCompleter()

	// 3. 依存関係の組み立て
	deckRepo := repository.NewGormDeckRepository()
	cardRepo := repository.NewGormFlashcardRepository()
	genRepo := repository.NewGormGenerationRepository()

	h := handlers.Handlers{
		Deck:       handlers.NewDeckHandler(service.NewDeckService(db, deckRepo), logger),
		Flashcard:  handlers.NewFlashcardHandler(service.NewFlashcardService(db, cardRepo, deckRepo, genRepo), logger),
		Generation: handlers.NewGenerationHandler(service.NewGenerationService(db, genRepo, completer, &cfg), logger),
		Learn:      handlers.NewLearnHandler(service.NewLearnService(db, deckRepo, cardRepo, &cfg), cfg.Learn.DefaultLimit, logger),
	}

	// 4. ルーター
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
		Debug:            false,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(cfg.Server.RequestTimeout))

	r.Route("/api", func(r chi.Router) {
		if cfg.Auth.Enabled {
			slog.Info("Applying JWT authentication middleware")
			r.Use(middleware.JWTAuthMiddleware(cfg.JWT))
		} else {
			slog.Warn("Authentication is disabled, using X-User-ID header")
			r.Use(middleware.DevUserContextMiddleware)
		}
		handlers.RegisterRoutes(r, h)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// 5. サーバー起動
	server := &http.Server{
		Addr:        cfg.Server.Port,
		Handler:     r,
		ReadTimeout: 5 * time.Second,
		// AI生成を待つため、リクエストタイムアウトより長くする
		WriteTimeout: cfg.Server.RequestTimeout + 5*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
