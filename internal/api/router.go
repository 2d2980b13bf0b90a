package api

import (
	"net/http"

	"github.com/Dharamchandpatle/RefineryIQ/internal/api/handler"
	customMiddleware "github.com/Dharamchandpatle/RefineryIQ/internal/api/middleware"
	"github.com/Dharamchandpatle/RefineryIQ/internal/config"
	"github.com/Dharamchandpatle/RefineryIQ/internal/llm"
	"github.com/Dharamchandpatle/RefineryIQ/internal/llm/gemini"
	"github.com/Dharamchandpatle/RefineryIQ/internal/repository/mongo"
	"github.com/Dharamchandpatle/RefineryIQ/internal/repository/redis"
	"github.com/Dharamchandpatle/RefineryIQ/internal/security"
	"github.com/Dharamchandpatle/RefineryIQ/internal/service"
	"github.com/Dharamchandpatle/RefineryIQ/internal/tabular"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
)

// NewRouter creates and configures the HTTP router
func NewRouter(cfg *config.Config, db *mongo.DB, redisClient *redis.Client) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(customMiddleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.Server.RequestTimeout))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.CORS.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Security components
	jwtManager := security.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	// Repositories
	userRepo := mongo.NewUserRepository(db)
	snapshotRepo := mongo.NewSnapshotRepository(db)
	chatLogRepo := mongo.NewChatLogRepository(db)

	// CSV exports are read fresh per request; no cache layer.
	loader := tabular.NewLoader(cfg.Data.Dir)

	// External generation boundary
	var generator llm.Generator
	if cfg.Gemini.APIKey != "" {
		log.Info().Str("model", cfg.Gemini.Model).Msg("Gemini generation enabled")
		generator = gemini.NewProvider(cfg.Gemini)
	} else {
		log.Warn().Msg("Gemini API key is empty, chatbot will use the fallback reply")
	}

	// Services
	authService := service.NewAuthService(userRepo, jwtManager)
	kpiService := service.NewKPIService(snapshotRepo, loader)
	anomalyService := service.NewAnomalyService(loader)
	forecastService := service.NewForecastService(loader)
	recommendationService := service.NewRecommendationService(loader)
	chatService := service.NewChatService(generator, chatLogRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	kpiHandler := handler.NewKPIHandler(kpiService)
	anomalyHandler := handler.NewAnomalyHandler(anomalyService)
	forecastHandler := handler.NewForecastHandler(forecastService)
	recommendationHandler := handler.NewRecommendationHandler(recommendationService)
	chatbotHandler := handler.NewChatbotHandler(chatService)

	// Middleware
	authMiddleware := customMiddleware.NewAuthMiddleware(jwtManager)

	var rateLimiter *redis.RateLimiter
	if redisClient != nil {
		rateLimiter = redis.NewRateLimiter(
			redisClient,
			cfg.RateLimit.RequestsPerMinute,
			cfg.RateLimit.Burst,
		)
	}
	rateLimitMiddleware := customMiddleware.NewRateLimitMiddleware(rateLimiter)

	// Probes
	r.Get("/health", handler.HealthCheck)
	r.Get("/ready", handler.ReadyCheck(db))

	// Auth
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Get("/me", authHandler.Me)
		})
	})

	// KPIs
	r.Route("/kpis", func(r chi.Router) {
		r.Get("/summary", kpiHandler.Summary)
		r.Get("/snapshots", kpiHandler.Snapshots)
	})

	// Anomalies
	r.Route("/anomalies", func(r chi.Router) {
		r.Get("/", anomalyHandler.List)
		r.Get("/alerts", anomalyHandler.Alerts)
	})

	// Forecasts and recommendations
	r.Get("/forecasts", forecastHandler.List)
	r.Get("/recommendations", recommendationHandler.List)

	// Chatbot
	r.Group(func(r chi.Router) {
		r.Use(rateLimitMiddleware.Limit)
		r.Post("/chatbot", chatbotHandler.Chat)
	})

	return r
}
