package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/DADDY2260/AI-UNITY-GENERATOR/internal/api"
	"github.com/DADDY2260/AI-UNITY-GENERATOR/internal/api/handlers"
	"github.com/DADDY2260/AI-UNITY-GENERATOR/internal/api/middleware"
)

type RouterConfig struct {
	RAGHandler      *handlers.RAGHandler
	EnhanceHandler  *handlers.EnhanceHandler
	GenerateHandler *handlers.GenerateHandler
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	const maxBodyBytes int64 = 1 * 1024 * 1024

	r.Use(middleware.RequestID)
	r.Use(middleware.SentryMiddleware)
	r.Use(middleware.AccessLog)
	r.Use(middleware.MaxBodyBytes(maxBodyBytes))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		api.Success(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/rag", func(r chi.Router) {
		r.Post("/add-knowledge", cfg.RAGHandler.AddKnowledge)
		r.Get("/search", cfg.RAGHandler.Search)
		r.Post("/augment", cfg.RAGHandler.Augment)
		r.Get("/stats", cfg.RAGHandler.Stats)
	})

	r.Post("/enhance-idea", cfg.EnhanceHandler.EnhanceIdea)
	r.Post("/generate-project", cfg.GenerateHandler.GenerateProject)
	r.Get("/download/{filename}", cfg.GenerateHandler.Download)

	return r
}
