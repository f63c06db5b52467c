package v1

import (
	"context"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/voicecare/voicemail_triage/internal/config"
	"github.com/voicecare/voicemail_triage/internal/metrics"
)

type Server struct {
	httpServer *http.Server
}

type Handlers struct {
	Ingest     *IngestHandler
	Voicemails *VoicemailsHandler
	Digest     *DigestHandler
}

func NewServer(log *slog.Logger, cfg config.HTTP, handlers Handlers, m *metrics.Metrics, gatherer prometheus.Gatherer) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
			Handler:      NewRouter(handlers, m, gatherer),
			ErrorLog:     slog.NewLogLogger(log.Handler(), slog.LevelError),
		},
	}
}

func NewRouter(handlers Handlers, m *metrics.Metrics, gatherer prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(instrument(m))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/ingest/email", handlers.Ingest.IngestEmail)
		r.Post("/ingest/upload", handlers.Ingest.IngestUpload)
		r.Post("/ingest/raw-email", handlers.Ingest.IngestRawEmail)

		r.Get("/voicemails/{id}", handlers.Voicemails.GetVoicemail)
		r.Get("/clinics/{clinic_id}/voicemails", handlers.Voicemails.GetClinicVoicemails)
		r.Get("/clinics/{clinic_id}/triage-cards.csv", handlers.Voicemails.ExportTriageCards)
		r.Post("/clinics/{clinic_id}/digest", handlers.Digest.SendDigest)
	})

	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	return r
}

func (s *Server) Addr() string {
	return s.httpServer.Addr
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
