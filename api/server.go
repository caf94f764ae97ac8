package api

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// Server is the local HTTP surface that stands in for the original
// extension's message-passing context.
type Server struct {
	handlers *Handlers
	port     int
	logger   *zap.Logger
}

func NewServer(handlers *Handlers, port int, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		handlers: handlers,
		port:     port,
		logger:   logger,
	}
}

func (s *Server) Start() error {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/convert", s.handlers.Convert)
	mux.HandleFunc("/api/history", s.handlers.History)

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	s.logger.Info("starting API server", zap.Int("port", s.port))
	return http.ListenAndServe(fmt.Sprintf(":%d", s.port), mux)
}
