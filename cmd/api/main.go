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

	"github.com/AbuAli85/contract-management-backend/internal/auth"
	"github.com/AbuAli85/contract-management-backend/internal/config"
	"github.com/AbuAli85/contract-management-backend/internal/handler"
	"github.com/AbuAli85/contract-management-backend/internal/middleware"
	"github.com/AbuAli85/contract-management-backend/internal/repository"
	"github.com/AbuAli85/contract-management-backend/internal/service"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
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

	// Initialize database. All report reads go through this service-role
	// connection; per-user authorization is the session check only.
	db, err := setupDatabase(cfg)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}

	// Initialize repositories
	companyRepo := repository.NewCompanyRepository(db)
	partyRepo := repository.NewPartyRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	workforceRepo := repository.NewWorkforceRepository(db)
	hrRepo := repository.NewHRRepository(db)
	contractRepo := repository.NewContractRepository(db)
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)

	// Initialize auth services
	passwordHasher := auth.NewPasswordHasher()
	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod)

	// Initialize services
	tenantFilter := service.NewTenantFilter(cfg.Tenants.DenyExact, cfg.Tenants.DenySubstring, cfg.Tenants.AllowExact)
	reportService := service.NewReportService(companyRepo, partyRepo, groupRepo, workforceRepo, hrRepo, contractRepo, profileRepo, tenantFilter)
	userService := service.NewUserService(userRepo, profileRepo, passwordHasher, tokenManager)
	companyService := service.NewCompanyService(companyRepo)
	partyService := service.NewPartyService(partyRepo)
	promoterService := service.NewPromoterService(workforceRepo, partyRepo)
	contractService := service.NewContractService(contractRepo)
	dashboardService := service.NewDashboardService(dashboardRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(userService, tokenManager)
	profileHandler := handler.NewProfileHandler(userService)
	reportHandler := handler.NewReportHandler(reportService)
	companyHandler := handler.NewCompanyHandler(companyService)
	partyHandler := handler.NewPartyHandler(partyService)
	promoterHandler := handler.NewPromoterHandler(promoterService)
	contractHandler := handler.NewContractHandler(contractService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	// Create router
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(loggingMiddleware(logger))
	r.Use(recoveryMiddleware(logger))
	r.Use(middleware.Metrics)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
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
	r.Handle("/metrics", promhttp.Handler())

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Route("/auth", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(chimw.AllowContentType("application/json"))
				r.Post("/login", authHandler.LoginHandler)
			})
			r.Post("/logout", authHandler.LogoutHandler)

			r.Group(func(r chi.Router) {
				r.Use(middleware.AuthMiddleware(tokenManager))
				r.Get("/me", authHandler.MeHandler)
			})
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(tokenManager))

			r.Get("/company/cross-company-report", reportHandler.CrossCompanyReport)

			r.Route("/companies", func(r chi.Router) {
				r.Get("/", companyHandler.List)
				r.Post("/", companyHandler.Create)
				r.Get("/{id}", companyHandler.Get)
				r.Put("/{id}", companyHandler.Update)
				r.Delete("/{id}", companyHandler.Delete)
			})

			r.Route("/parties", func(r chi.Router) {
				r.Get("/", partyHandler.List)
				r.Post("/", partyHandler.Create)
				r.Get("/{id}", partyHandler.Get)
				r.Put("/{id}", partyHandler.Update)
			})

			r.Route("/promoters", func(r chi.Router) {
				r.Get("/", promoterHandler.List)
				r.Post("/", promoterHandler.Create)
				r.Get("/{id}", promoterHandler.Get)
				r.Put("/{id}", promoterHandler.Update)
			})

			r.Route("/contracts", func(r chi.Router) {
				r.Get("/", contractHandler.List)
				r.Post("/", contractHandler.Create)
				r.Get("/{id}", contractHandler.Get)
				r.Put("/{id}", contractHandler.Update)
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/layout", dashboardHandler.GetLayout)
				r.Put("/layout", dashboardHandler.SaveLayout)
			})

			r.Route("/profile", func(r chi.Router) {
				r.Get("/", profileHandler.GetProfile)
				r.Put("/", profileHandler.SaveProfile)
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

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Gracefully shutdown the server
		if err := srv.Shutdown(ctx); err != nil {
			// If shutdown times out, forcefully close
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
		Logger: logger.Default.LogMode(logger.Warn),
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

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte(`{"error":"error encountered"}`))
					return
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
