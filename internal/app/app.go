package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/voicecare/voicemail_triage/internal/capability"
	"github.com/voicecare/voicemail_triage/internal/config"
	v1 "github.com/voicecare/voicemail_triage/internal/controller/http/v1"
	"github.com/voicecare/voicemail_triage/internal/digest"
	"github.com/voicecare/voicemail_triage/internal/infrastructure/anthropic"
	"github.com/voicecare/voicemail_triage/internal/infrastructure/deepgram"
	"github.com/voicecare/voicemail_triage/internal/infrastructure/report_generator"
	"github.com/voicecare/voicemail_triage/internal/infrastructure/sendgrid"
	"github.com/voicecare/voicemail_triage/internal/infrastructure/storage"
	"github.com/voicecare/voicemail_triage/internal/metrics"
	"github.com/voicecare/voicemail_triage/internal/pipeline"
	"github.com/voicecare/voicemail_triage/internal/repository/postgresql"
	"github.com/voicecare/voicemail_triage/internal/statemachine"
	"github.com/voicecare/voicemail_triage/internal/triage"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	log *slog.Logger
	cfg *config.Config
}

func New(log *slog.Logger, cfg *config.Config) *App {
	return &App{
		log: log,
		cfg: cfg,
	}
}

type repositories struct {
	voicemails  *postgresql.VoicemailsRepository
	cards       *postgresql.TriageCardsRepository
	digestLogs  *postgresql.DigestLogsRepository
	clinics     *postgresql.ClinicsRepository
	transitions *postgresql.TransitionsRepository
	tx          *postgresql.TxManager
}

func (a *App) Run(ctx context.Context) error {
	a.log.InfoContext(ctx, "starting app",
		slog.String("worker_id", a.cfg.App.WorkerID),
		slog.Duration("poll_interval", a.cfg.Pipeline.PollInterval),
		slog.Duration("stale_after", a.cfg.Pipeline.StaleAfter),
		slog.String("digest_schedule", a.cfg.Digest.Schedule),
		slog.String("digest_timezone", a.cfg.Digest.Timezone),
	)

	location, err := time.LoadLocation(a.cfg.Digest.Timezone)
	if err != nil {
		return fmt.Errorf("failed to load digest timezone: %w", err)
	}

	a.log.InfoContext(ctx, "establishing postgresql connection",
		slog.String("postgresql_host", a.cfg.PostgreSQL.Host),
		slog.String("postgresql_port", a.cfg.PostgreSQL.Port),
		slog.String("postgresql_dbname", a.cfg.PostgreSQL.DBName),
	)

	pool, err := postgresql.NewConnection(ctx, a.log, a.cfg.PostgreSQL)
	if err != nil {
		return fmt.Errorf("failed to create db connection: %w", err)
	}
	defer pool.Close()

	repos := repositories{
		voicemails:  postgresql.NewVoicemailsRepository(pool),
		cards:       postgresql.NewTriageCardsRepository(pool),
		digestLogs:  postgresql.NewDigestLogsRepository(pool),
		clinics:     postgresql.NewClinicsRepository(pool),
		transitions: postgresql.NewTransitionsRepository(pool),
		tx:          postgresql.NewTxManager(pool),
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return a.startPipeline(ctx, repos, location, registry, metrics.New(registry))
}

func (a *App) startPipeline(
	ctx context.Context,
	repos repositories,
	location *time.Location,
	registry *prometheus.Registry,
	m *metrics.Metrics,
) error {
	audio := storage.NewLocalStore(a.cfg.Storage.AudioDirectory, a.cfg.Storage.AudioBaseURL)
	transcriber := deepgram.New(a.log, a.cfg.AI.DeepgramURL, a.cfg.AI.DeepgramAPIKey, a.cfg.AI.DeepgramModel)
	llm := anthropic.New(a.log, a.cfg.AI.AnthropicAPIKey, a.cfg.AI.AnthropicModel)
	notifier := sendgrid.New(a.log, a.cfg.Notify.SendGridURL, a.cfg.Notify.SendGridAPIKey, a.cfg.Notify.FromEmail)

	var limiter *rate.Limiter
	if rps := a.cfg.AI.RequestsPerSecond; rps > 0 {
		limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}

	stages := capability.NewAdapter(a.log, limiter, audio, transcriber, llm, llm)
	classifier := triage.NewClassifier(llm)

	machine := statemachine.NewMachine(a.log, repos.voicemails, repos.transitions, repos.tx, m, a.cfg.App.WorkerID)
	retrier := statemachine.NewRetrier(a.log, m, statemachine.RetryPolicy{
		Attempts:  a.cfg.Pipeline.StageAttempts,
		BaseDelay: a.cfg.Pipeline.RetryBaseDelay,
		MaxDelay:  a.cfg.Pipeline.RetryMaxDelay,
	})

	processor := pipeline.NewProcessor(
		a.log,
		machine,
		stages,
		classifier,
		repos.cards,
		retrier,
		m,
		a.cfg.Pipeline.ConfidenceThreshold,
	)
	dispatcher := pipeline.NewDispatcher(a.log, a.cfg.Pipeline.PollInterval, machine, processor)
	reclaimer := pipeline.NewStaleReclaimer(a.log, a.cfg.Pipeline.ReclaimInterval, a.cfg.Pipeline.StaleAfter, machine, dispatcher.Wake)
	sweeper := pipeline.NewTriageSweeper(a.log, a.cfg.Pipeline.SweepInterval, repos.voicemails, classifier, repos.cards, m)

	batcher := digest.NewBatcher(
		a.log,
		repos.cards,
		repos.digestLogs,
		repos.clinics,
		notifier,
		repos.tx,
		report_generator.New(),
		a.cfg.Digest.ReportsDirectory,
		location,
		m,
	)

	scheduler, err := digest.NewScheduler(a.log, a.cfg.Digest.Schedule, location, batcher)
	if err != nil {
		return err
	}

	server := v1.NewServer(a.log, a.cfg.HTTP, v1.Handlers{
		Ingest:     v1.NewIngestHandler(a.log, repos.clinics, repos.voicemails, audio, dispatcher, a.cfg.HTTP.MaxUploadBytes),
		Voicemails: v1.NewVoicemailsHandler(repos.voicemails, repos.transitions, repos.cards),
		Digest:     v1.NewDigestHandler(a.log, batcher),
	}, m, registry)

	erg, ctx := errgroup.WithContext(ctx)

	erg.Go(func() error {
		a.log.InfoContext(ctx, "dispatcher started")
		return dispatcher.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "stale reclaimer started")
		return reclaimer.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "triage sweeper started")
		return sweeper.Run(ctx)
	})

	erg.Go(func() error {
		return scheduler.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "starting http server", slog.String("addr", server.Addr()))

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}

		return nil
	})

	erg.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	a.log.InfoContext(ctx, "all components started")

	if err := erg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		a.log.ErrorContext(ctx, "pipeline stopped with error", slog.String("err", err.Error()))

		return err
	}

	a.log.InfoContext(ctx, "pipeline stopped gracefully")

	return nil
}
