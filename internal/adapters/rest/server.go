package rest

import (
	"net/http"

	"suburb-analyzer-service/internal/configs"
	"suburb-analyzer-service/internal/core/port"
	"suburb-analyzer-service/internal/core/port/usecases"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewServer создает и настраивает главный роутер и HTTP-сервер.
func NewServer(cfg *configs.AppConfig, analyzeUC usecases.AnalyzeSuburbUseCase, baseLogger port.LoggerPort) *http.Server {
	r := chi.NewRouter()

	// Стандартные middleware
	r.Use(middleware.RealIP, LoggerMiddleware(baseLogger), middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		// UI отдается с этого же сервера, но API дергают и с dev-серверов фронтенда
		AllowedOrigins: cfg.AllowedOrigins,

		// Сервис read-only, поэтому только GET (+ preflight)
		AllowedMethods: []string{"GET", "OPTIONS"},

		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},

		// На сколько секунд браузер может кэшировать результат preflight-запроса
		MaxAge: 300,
	}))

	handlers := NewAnalyzeHandlers(analyzeUC)

	r.Get("/", handlers.Home)
	r.Get("/test", handlers.Test)
	r.Get("/api/analyze", handlers.AnalyzeSuburb)

	return &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}
}
