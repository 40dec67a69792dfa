// @title           ViralGenix API
// @version         1.0
// @description     Backend for the ViralGenix content-generation web app.
// @host            localhost
// @schemes         http https
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"log"
	"net/http"
	"viralgenix/internal/api"
	"viralgenix/internal/config"
	"viralgenix/internal/database"
	"viralgenix/internal/generator"
	"viralgenix/internal/websocket"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "viralgenix/docs"

	httpSwagger "github.com/swaggo/http-swagger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Cannot load configuration: %v", err)
	}

	dbpool, err := pgxpool.New(context.Background(), cfg.DB.Source)
	if err != nil {
		log.Fatalf("Cannot connect to the database: %v", err)
	}
	defer dbpool.Close()

	if err := dbpool.Ping(context.Background()); err != nil {
		log.Fatalf("Cannot ping the database: %v", err)
	}
	log.Println("Connected to the database")

	if cfg.Gemini.APIKey == "" {
		log.Println("WARN: gemini.api_key is empty, generation requests will fail upstream")
	}

	wsHub := websocket.NewHub()
	go wsHub.Run()

	store := database.NewStore(dbpool, wsHub)
	gemini := generator.NewGeminiClient(cfg.Gemini.APIKey, cfg.Gemini.Model)
	genService := generator.NewService(store, gemini, cfg.Gemini.Timeout)
	server := api.NewServer(cfg, store, genService, wsHub)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(api.MetricsMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("https://localhost/swagger/doc.json"),
	))

	r.Get("/ws", server.ServeWsHandler)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ViralGenix API is running. Documentation available at /swagger/index.html"))
	})

	r.Post("/api/v1/auth/register", server.RegisterHandler)
	r.Post("/api/v1/auth/login", server.LoginHandler)
	r.Post("/api/v1/auth/refresh", server.RefreshTokenHandler)

	r.Get("/health", server.HealthCheckHandler)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(server.AuthMiddleware)
		r.Get("/me", server.GetCurrentUserHandler)
		r.Post("/auth/logout", server.LogoutHandler)
		r.Post("/contents", server.GenerateContentHandler)
		r.Get("/contents", server.ListContentsHandler)
		r.Get("/contents/{contentId}", server.GetContentHandler)
		r.Get("/contents/{contentId}/export", server.ExportContentHandler)
		r.Post("/insights", server.CreateInsightHandler)
		r.Get("/insights", server.ListInsightsHandler)
		r.Get("/sessions", server.ListSessionsHandler)
		r.Delete("/sessions/{sessionId}", server.DeleteSessionHandler)
		r.Post("/sessions/terminate_all", server.TerminateAllSessionsHandler)
		r.Get("/events", server.GetEventsHandler)
	})

	log.Println("Starting server on port :8080")
	if err := http.ListenAndServe(":8080", r); err != nil {
		log.Fatalf("Cannot start server: %v", err)
	}
}
