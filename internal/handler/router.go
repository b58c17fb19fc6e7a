package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"resume-analyzer/internal/config"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(container *config.Container) http.Handler {
	router := mux.NewRouter()

	// API prefix
	api := router.PathPrefix("/api/v1").Subrouter()

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"resume-analyzer"}`))
	}).Methods("GET")

	// Initialize handlers
	documentHandler := NewDocumentHandler(container.Pipeline, container.Detector, container.Logger)
	analysisHandler := NewAnalysisHandler(container.Pipeline, container.AnalysisService, container.Logger)

	api.Use(RequestLogging(container.Logger))

	// Document routes
	api.HandleFunc("/documents/extract", documentHandler.Extract).Methods("POST")
	api.HandleFunc("/documents/extract/stream", documentHandler.ExtractStream).Methods("POST")
	api.HandleFunc("/documents/detect-scanned", documentHandler.DetectScanned).Methods("POST")

	// Analysis routes
	api.HandleFunc("/analysis", analysisHandler.Analyze).Methods("POST")

	// Configure CORS for the browser front end
	c := cors.New(cors.Options{
		AllowedOrigins: []string{
			"http://localhost:5173", // Vite dev server
			"http://localhost:4173", // Vite preview
			"http://localhost:3000", // Alternative dev port
		},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
		},
		MaxAge: 300,
	})

	return c.Handler(router)
}
