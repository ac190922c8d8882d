package api

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/theoremus-urban-solutions/erp-rates/config"
	"github.com/theoremus-urban-solutions/erp-rates/interval"
)

// Server exposes a Store over HTTP.
type Server struct {
	store    *Store
	view     interval.View
	timezone string
	srv      *http.Server
}

// NewServer builds a server for cfg; call Start to listen.
func NewServer(cfg config.AppConfig, store *Store) *Server {
	view, err := interval.ParseView(cfg.Display.ViewType)
	if err != nil {
		view = interval.ViewMinimal
	}
	s := &Server{store: store, view: view, timezone: cfg.Display.Timezone}
	s.srv = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

// Router returns the bare route table.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/api/gantries", s.handleGantries).Methods(http.MethodGet)
	r.HandleFunc("/api/gantries/{id}", s.handleGantry).Methods(http.MethodGet)
	r.HandleFunc("/api/gantries/{id}/rates", s.handleRates).Methods(http.MethodGet)
	r.HandleFunc("/api/layers/active", s.handleActiveLayer).Methods(http.MethodGet)
	r.HandleFunc("/api/status", s.handleStatus).Methods(http.MethodGet)
	return r
}

// Handler wraps the router with access logging and panic recovery.
func (s *Server) Handler() http.Handler {
	logged := handlers.CombinedLoggingHandler(os.Stdout, s.Router())
	return handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))(logged)
}

// Start listens in the background.
func (s *Server) Start() {
	go func() {
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()
	log.Printf("server listening on %s", s.srv.Addr)
}

// Shutdown stops accepting requests and waits for in-flight ones.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
