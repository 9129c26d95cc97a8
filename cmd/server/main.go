// Package main is the entry point for the workforce staffing simulator API.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/JoakoBallesteros/workforce-staffing/internal/auth"
	"github.com/JoakoBallesteros/workforce-staffing/internal/config"
	"github.com/JoakoBallesteros/workforce-staffing/internal/handler"
	"github.com/JoakoBallesteros/workforce-staffing/internal/middleware"
	"github.com/JoakoBallesteros/workforce-staffing/internal/model"
	"github.com/JoakoBallesteros/workforce-staffing/internal/repository"
	"github.com/JoakoBallesteros/workforce-staffing/internal/service"
)

// artifactTTL bounds how long a completed run's rendered files stay
// downloadable; after it ArtifactStore.Get no longer returns them.
const artifactTTL = 30 * time.Minute

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	cfg := config.Load()

	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	authConfig := &auth.Config{
		DevMode:      cfg.IsDevelopment(),
		JWTSecret:    []byte(cfg.JWT.Secret),
		JWTExpiry:    cfg.JWT.Expiry,
		JWTIssuer:    "workforce-staffing-api",
		CookieSecure: cfg.IsProduction(),
		FrontendURL:  cfg.FrontendURL,
	}

	jwtManager := auth.NewJWTManager([]byte(cfg.JWT.Secret), "workforce-staffing-api", cfg.JWT.Expiry)

	if authConfig.IsDevMode() {
		log.Info().Msg("Running in dev mode - use /api/v1/auth/dev/login?role=admin|user")
	}

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	if err := db.GORM.AutoMigrate(&model.SimulationRun{}); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}

	runRepo := repository.NewSimulationRunRepository(db)
	runService := service.NewSimulationRunService(runRepo)
	artifactStore := service.NewArtifactStore(artifactTTL)
	staffingService := service.NewStaffingService(runService, artifactStore)

	authHandler := handler.NewAuthHandler(authConfig, jwtManager)
	servicesHandler := handler.NewServicesHandler()
	staffingHandler := handler.NewStaffingHandler(staffingService, runService)

	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL, "http://localhost:3000", "http://localhost:3001"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Content-Disposition", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(120 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"healthy"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {
		handler.RegisterAuthRoutes(r, authHandler, authConfig.IsDevMode())
		handler.RegisterServicesRoutes(r, servicesHandler)

		var requireAuth func(http.Handler) http.Handler
		if !authConfig.IsDevMode() {
			requireAuth = middleware.AuthMiddleware(jwtManager)
		}
		handler.RegisterStaffingRoutes(r, staffingHandler, requireAuth)

		r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"message":"Workforce Staffing Simulator API v1"}`))
		})
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}
}
