package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// UpdateDispatcher accepts decoded Telegram updates for asynchronous
// handling. The telegram adapter implements it.
type UpdateDispatcher interface {
	Dispatch(up tgbotapi.Update)
}

// Server exposes the operational endpoints and, in webhook mode, the
// Telegram update webhook. Health and metrics are served in both modes.
type Server struct {
	port       int
	dispatcher UpdateDispatcher
	webhook    bool
	log        *zerolog.Logger
	server     *http.Server
}

func NewServer(port int, dispatcher UpdateDispatcher, webhook bool, log *zerolog.Logger) *Server {
	return &Server{port: port, dispatcher: dispatcher, webhook: webhook, log: log}
}

func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", s.port),
		Handler: s.Routes(),
	}

	s.log.Info().Int("port", s.port).Bool("webhook", s.webhook).Msg("http server listening")
	return s.server.ListenAndServe()
}

// Routes builds the router; split out so tests can drive it directly.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())
	if s.webhook {
		r.Post("/webhook", s.handleWebhook)
	}
	return r
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "OK")
}

// handleWebhook decodes one Telegram update envelope and queues it. Telegram
// requires a 200 with body "OK"; anything else triggers redelivery.
func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "read body", http.StatusBadRequest)
		return
	}
	var up tgbotapi.Update
	if err := json.Unmarshal(body, &up); err != nil {
		s.log.Warn().Err(err).Msg("malformed webhook envelope")
		http.Error(w, "malformed update", http.StatusBadRequest)
		return
	}
	s.dispatcher.Dispatch(up)
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "OK")
}
