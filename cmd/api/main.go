// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"time"

	"github.com/openorg/orgfeed/internal/audit"
	"github.com/openorg/orgfeed/internal/auth"
	"github.com/openorg/orgfeed/internal/config"
	"github.com/openorg/orgfeed/internal/email"
	"github.com/openorg/orgfeed/internal/email/mailer"
	"github.com/openorg/orgfeed/internal/filestore"
	"github.com/openorg/orgfeed/internal/handler"
	"github.com/openorg/orgfeed/internal/middleware"
	"github.com/openorg/orgfeed/internal/repository"
	"github.com/openorg/orgfeed/internal/service"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := setupDatabase(cfg)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}

	// Initialize repositories
	postRepo := repository.NewPostRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	subunitRepo := repository.NewSubunitRepository(db)
	attachmentRepo := repository.NewAttachmentRepository(db)

	// Initialize auth services
	passwordHasher := auth.NewPasswordHasher()
	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod, cfg.JWT.RefreshPeriod)

	// Initialize email service
	emailService, err := email.NewEmailService(cfg, email.ProviderSendgrid)
	if err != nil {
		return fmt.Errorf("initializing email service: %w", err)
	}
	decisionMailer := mailer.NewDecisionMailer(emailService, cfg.BaseURL)

	// Initialize attachment storage
	fileStore, err := filestore.NewDiskStore(cfg.Uploads.Dir)
	if err != nil {
		return fmt.Errorf("initializing file store: %w", err)
	}

	// Initialize audit logging
	var auditLogger audit.Logger = audit.NoOpLogger{}
	if cfg.AuditDatabaseURL != "" {
		pool, err := pgxpool.New(context.Background(), cfg.AuditDatabaseURL)
		if err != nil {
			return fmt.Errorf("connecting to audit database: %w", err)
		}
		defer pool.Close()

		postAudit := audit.NewPostAuditLogger(pool)
		if err := postAudit.EnsureSchema(context.Background()); err != nil {
			return fmt.Errorf("preparing audit schema: %w", err)
		}
		auditLogger = postAudit
	}

	// Initialize services
	postService := service.NewPostService(postRepo, employeeRepo, attachmentRepo, fileStore, decisionMailer, auditLogger)
	feedService := service.NewFeedService(postRepo, employeeRepo, fileStore)
	statsService := service.NewStatsService(postRepo, subunitRepo)
	attachmentService := service.NewAttachmentService(attachmentRepo, employeeRepo, fileStore)
	employeeService := service.NewEmployeeService(employeeRepo, subunitRepo, passwordHasher, tokenManager)
	subunitService := service.NewSubunitService(subunitRepo, employeeRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(employeeService, tokenManager)
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	subunitHandler := handler.NewSubunitHandler(subunitService, employeeService)
	postHandler := handler.NewPostHandler(postService)
	feedHandler := handler.NewFeedHandler(feedService)
	statsHandler := handler.NewStatsHandler(statsService)
	attachmentHandler := handler.NewAttachmentHandler(attachmentService)

	// Start archival sweeper
	sweepCtx, stopSweeper := context.WithCancel(context.Background())
	defer stopSweeper()
	go service.NewSweeper(postService, cfg.Sweep.Interval).Start(sweepCtx)

	// Create router
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(loggingMiddleware(logger))
	r.Use(recoveryMiddleware(logger))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Route("/auth", func(r chi.Router) {
			r.Use(chimw.AllowContentType("application/json"))

			r.Post("/login", authHandler.LoginHandler)
			r.Post("/refresh", authHandler.RefreshHandler)
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(tokenManager))

			r.Route("/employees", func(r chi.Router) {
				r.Post("/", employeeHandler.RegisterHandler)
				r.Get("/", employeeHandler.ListHandler)
				r.Get("/{id}", employeeHandler.GetHandler)
				r.Patch("/{id}", employeeHandler.EditHandler)
			})

			r.Route("/subunits", func(r chi.Router) {
				r.Get("/", subunitHandler.ListHandler)
				r.Post("/", subunitHandler.CreateHandler)
				r.Get("/{id}", subunitHandler.GetHandler)
				r.Patch("/{id}", subunitHandler.EditHandler)
				r.Get("/{id}/fired-moderators", subunitHandler.FiredModeratorsHandler)
			})

			r.Route("/posts", func(r chi.Router) {
				r.Post("/", postHandler.CreateHandler)
				r.Get("/feed", feedHandler.GetFeedHandler)
				r.Get("/archive", feedHandler.GetArchiveHandler)
				r.Get("/biggest", feedHandler.GetBiggestHandler)
				r.Get("/mine", feedHandler.GetMyPostsHandler)
				r.Get("/moderation", feedHandler.GetModerationQueueHandler)
				r.Get("/statistics", statsHandler.GetStatisticsHandler)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", postHandler.GetHandler)
					r.Patch("/", postHandler.EditHandler)
					r.Delete("/", postHandler.DeleteHandler)
					r.Post("/approve", postHandler.ApproveHandler)
					r.Post("/reject", postHandler.RejectHandler)
					r.Post("/return", postHandler.ReturnHandler)
					r.Post("/archive", postHandler.ArchiveHandler)
					r.Post("/unarchive", postHandler.UnarchiveHandler)
				})
			})

			r.Route("/attachments", func(r chi.Router) {
				r.Post("/", attachmentHandler.UploadHandler)
				r.Get("/mine", attachmentHandler.ListMineHandler)
				r.Get("/{id}", attachmentHandler.GetHandler)
				r.Get("/{id}/download", attachmentHandler.DownloadHandler)
				r.Delete("/{id}", attachmentHandler.DeleteHandler)
			})
		})
	})

	// Create server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Server error channel
	serverErrors := make(chan error, 1)

	// Start server
	go func() {
		logger.Info("server starting", "port", cfg.Server.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Shutdown channel
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt)

	// Wait for shutdown or error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info("shutdown started", "signal", sig)
		stopSweeper()

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Gracefully shutdown the server
		if err := srv.Shutdown(ctx); err != nil {
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func setupDatabase(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
		cfg.Database.SearchPath,
	)

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database instance: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

func loggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				logger.Info("request completed",
					"method", r.Method,
					"path", r.URL.Path,
					"duration", time.Since(start),
					"status", ww.Status(),
					"size", ww.BytesWritten(),
					"requestID", chimw.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

func recoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					err := errors.New("panic recovered")
					logger.Error("panic recovered",
						"error", err,
						"panic", rvr,
						"stack", string(debug.Stack()),
						"requestID", chimw.GetReqID(r.Context()),
					)

					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte(`{"error":"error encountered"}`))
					return
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
