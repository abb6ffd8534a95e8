package server

import (
	"fmt"
	"net/http"

	"francoggm/emipay-gateway-go/internal/app/directory"
	"francoggm/emipay-gateway-go/internal/app/server/handlers"
	"francoggm/emipay-gateway-go/internal/app/workflow"
	"francoggm/emipay-gateway-go/internal/config"
	"francoggm/emipay-gateway-go/internal/logger"

	"github.com/go-chi/chi/v5"
)

type Server struct {
	cfg      *config.Config
	router   *chi.Mux
	handlers *handlers.Handlers
}

func NewServer(cfg *config.Config, directory *directory.ViewModel, machine *workflow.Machine, ledger handlers.Pinger, log *logger.Logger) *Server {
	srv := &Server{
		cfg:      cfg,
		router:   chi.NewRouter(),
		handlers: handlers.NewHandlers(cfg, directory, machine, ledger, log),
	}

	srv.registerRoutes()
	return srv
}

func (s *Server) registerRoutes() {
	s.router.Get("/healthz", s.handlers.Healthz)
	s.router.Get("/loans", s.handlers.GetLoans)
	s.router.Post("/payments/attempt", s.handlers.StartAttempt)
	s.router.Get("/payments/attempt", s.handlers.AttemptStatus)
	s.router.Post("/payments/confirm", s.handlers.ConfirmAttempt)
	s.router.Post("/payments/cancel", s.handlers.CancelAttempt)
	s.router.Post("/payments/ack", s.handlers.AcknowledgeAttempt)
}

// Handler exposes the router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Run() error {
	return http.ListenAndServe(fmt.Sprintf(":%s", s.cfg.Server.Port), s.router)
}
