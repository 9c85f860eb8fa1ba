package main

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/spf13/pflag"
)

// collect-stub is a local collection endpoint for developing against the
// drift emitter. Batches are validated, logged and discarded; responses are
// hardcoded. It is NOT a collection server.
func main() {
	addr := pflag.String("addr", ":3001", "listen address")
	verbose := pflag.BoolP("verbose", "v", false, "log full batch bodies")
	pflag.Parse()

	log.Println("collect-stub: STUB collection endpoint for local testing ONLY")
	log.Println("collect-stub: batches are logged and discarded")

	allowed := []string{"http://localhost:3000"}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		allowed = strings.Split(v, ",")
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowed,
		AllowedMethods: []string{"POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy","service":"collect-stub","warning":"THIS IS A STUB"}`))
	})

	r.Post("/api/collect", func(w http.ResponseWriter, req *http.Request) {
		body, err := io.ReadAll(req.Body)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		var batch []map[string]any
		if err := json.Unmarshal(body, &batch); err != nil {
			log.Printf("collect-stub: rejected non-array body: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		log.Printf("collect-stub: received batch of %d events", len(batch))
		if *verbose {
			log.Printf("collect-stub: %s", body)
		}
		w.WriteHeader(http.StatusAccepted)
	})

	log.Printf("collect-stub: listening on %s (allowed origins: %s)", *addr, strings.Join(allowed, ", "))
	if err := http.ListenAndServe(*addr, r); err != nil {
		log.Fatalf("collect-stub: %v", err)
	}
}
