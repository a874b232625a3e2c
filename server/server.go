// Package server publishes Tiled project and world data as JSON alongside
// the viewer's static files.
package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/milk9111/poimap/config"
)

// Routes configures all routes and returns the router.
func Routes(cfg config.Server, bundles *BundleService) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	r.Get("/map", func(w http.ResponseWriter, r *http.Request) {
		b, err := bundles.Get()
		if err != nil {
			log.Printf("server: build map bundle: %v", err)
			respondError(w, http.StatusInternalServerError, err.Error())
			return
		}
		respondJSON(w, http.StatusOK, b)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	images := http.FileServer(http.Dir(cfg.ImagesDir))
	r.Handle("/images/*", http.StripPrefix("/images", images))

	r.Handle("/*", http.FileServer(http.Dir(cfg.StaticDir)))

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("server: encode JSON: %v", err)
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
