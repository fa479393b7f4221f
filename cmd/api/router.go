package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/pixfeed/service/internal/comment"
	"github.com/pixfeed/service/internal/media"
	appmiddleware "github.com/pixfeed/service/internal/middleware"
	"github.com/pixfeed/service/internal/response"
	"github.com/pixfeed/service/internal/storage"
)

// apiRoutes are the endpoints that answer CORS preflight with 204.
var apiRoutes = []string{
	"/upload_media",
	"/list_media",
	"/search_media",
	"/like_media",
	"/delete_media",
	"/ai_caption",
	"/add_comment",
	"/get_comments",
}

// newRouter assembles the HTTP surface on top of the given storage backend.
func newRouter(store storage.Storage, presignTTL time.Duration) http.Handler {
	mediaHandler := media.NewHandler(media.NewService(store, presignTTL))
	commentHandler := comment.NewHandler(comment.NewService(store))

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(appmiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(appmiddleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		// pass OPTIONS through so the explicit handlers below answer 204
		OptionsPassthrough: true,
		MaxAge:             300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Prometheus scrape endpoint
	r.Handle("/metrics", promhttp.Handler())

	// Swagger UI — available at http://localhost:8080/swagger/
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Post("/upload_media", mediaHandler.Upload)
	r.Get("/list_media", mediaHandler.List)
	r.Get("/search_media", mediaHandler.Search)
	r.Post("/like_media", mediaHandler.Like)
	r.Delete("/delete_media", mediaHandler.Delete)
	r.Get("/ai_caption", mediaHandler.AICaption)
	r.Post("/add_comment", commentHandler.Add)
	r.Get("/get_comments", commentHandler.List)

	for _, route := range apiRoutes {
		r.Options(route, func(w http.ResponseWriter, r *http.Request) {
			response.NoContent(w)
		})
	}

	return r
}
