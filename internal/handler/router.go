package handler

import (
	"net/http"

	"document-scanner/internal/domain"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(
	scannerHandler *ScannerHandler,
	apiHandler *APIHandler,
	sessionMiddleware func(http.Handler) http.Handler,
	logger domain.Logger,
	allowedOrigins []string,
) http.Handler {
	router := mux.NewRouter()
	router.Use(RequestLogger(logger))

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "document-scanner"})
	}).Methods("GET")

	// API prefix (stateless, no session)
	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/extract", apiHandler.Extract).Methods("POST")

	// Page routes (session required)
	withSession := func(fn http.HandlerFunc) http.Handler {
		return sessionMiddleware(fn)
	}
	router.Handle("/", withSession(scannerHandler.Index)).Methods("GET")
	router.Handle("/upload", withSession(scannerHandler.UploadDocument)).Methods("POST")
	router.Handle("/preview", withSession(scannerHandler.Preview)).Methods("GET")
	router.Handle("/extract", withSession(scannerHandler.Extract)).Methods("POST")
	router.Handle("/theme", withSession(scannerHandler.ToggleTheme)).Methods("POST")
	router.Handle("/result.xlsx", withSession(scannerHandler.ExportResult)).Methods("GET")

	// Configure CORS
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
		},
		MaxAge: 300, // Maximum value not ignored by any of major browsers
	})

	return c.Handler(router)
}
