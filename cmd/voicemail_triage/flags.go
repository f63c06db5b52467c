package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
	"github.com/voicecare/voicemail_triage/internal/infrastructure/anthropic"
	"github.com/voicecare/voicemail_triage/internal/infrastructure/deepgram"
	"github.com/voicecare/voicemail_triage/internal/infrastructure/sendgrid"
	"github.com/voicecare/voicemail_triage/internal/pipeline"
)

func flags() []cli.Flag {
	var config string

	source := func(key string) cli.ValueSourceChain {
		return cli.NewValueSourceChain(yaml.YAML(key, altsrc.NewStringPtrSourcer(&config)))
	}

	hostname, _ := os.Hostname()
	if hostname == "" {
		hostname = "worker"
	}

	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Validator:   validateConfig,
			Usage:       "Load configuration from `FILE`",
			Destination: &config,
		},
		&cli.StringFlag{
			Name:    "worker-id",
			Usage:   "Set the worker identity recorded on claimed voicemails",
			Value:   hostname,
			Sources: source("app.worker_id"),
		},
		&cli.DurationFlag{
			Name:    "poll-interval",
			Usage:   "Set how long the dispatcher sleeps when no voicemail is waiting",
			Value:   2 * time.Second,
			Sources: source("pipeline.poll_interval"),
		},
		&cli.DurationFlag{
			Name:    "reclaim-interval",
			Usage:   "Set how often stale in-progress voicemails are reclaimed",
			Value:   time.Minute,
			Sources: source("pipeline.reclaim_interval"),
		},
		&cli.DurationFlag{
			Name:    "stale-after",
			Usage:   "Set how long a voicemail may stay in an in-progress status before it is reclaimed",
			Value:   15 * time.Minute,
			Sources: source("pipeline.stale_after"),
		},
		&cli.DurationFlag{
			Name:    "sweep-interval",
			Usage:   "Set how often finished voicemails without a triage card are classified",
			Value:   5 * time.Minute,
			Sources: source("pipeline.sweep_interval"),
		},
		&cli.IntFlag{
			Name:    "stage-attempts",
			Usage:   "Set the number of attempts per AI stage",
			Value:   3,
			Sources: source("pipeline.stage_attempts"),
			Validator: func(v int) error {
				if v < 1 {
					return fmt.Errorf("stage-attempts must be at least 1, got %d", v)
				}
				return nil
			},
		},
		&cli.DurationFlag{
			Name:    "retry-base-delay",
			Usage:   "Set the first backoff delay after a transient stage failure",
			Value:   time.Second,
			Sources: source("pipeline.retry_base_delay"),
		},
		&cli.DurationFlag{
			Name:    "retry-max-delay",
			Usage:   "Set the backoff delay cap",
			Value:   10 * time.Second,
			Sources: source("pipeline.retry_max_delay"),
		},
		&cli.FloatFlag{
			Name:    "confidence-threshold",
			Usage:   "Set the transcription confidence below which a voicemail needs review",
			Value:   pipeline.DefaultConfidenceThreshold,
			Sources: source("pipeline.confidence_threshold"),
			Validator: func(v float64) error {
				if v < 0 || v > 1 {
					return fmt.Errorf("confidence-threshold must be in [0;1], got %v", v)
				}
				return nil
			},
		},
		&cli.StringFlag{
			Name:      "digest-schedule",
			Usage:     "Set the daily digest cron spec (with seconds)",
			Value:     "0 45 16 * * *",
			Sources:   source("digest.schedule"),
			Validator: validateSchedule,
		},
		&cli.StringFlag{
			Name:      "digest-timezone",
			Usage:     "Set the timezone of the digest schedule and day boundary",
			Value:     "UTC",
			Sources:   source("digest.timezone"),
			Validator: validateTimezone,
		},
		&cli.StringFlag{
			Name:      "reports-dir",
			Aliases:   []string{"r"},
			Usage:     "Set directory to archive digest reports to",
			Value:     "reports",
			Sources:   source("digest.reports_dir"),
			Required:  true,
			Validator: validateDirectory,
		},
		&cli.StringFlag{
			Name:     "deepgram-api-key",
			Usage:    "Set Deepgram API key",
			Sources:  source("ai.deepgram_api_key"),
			Required: true,
		},
		&cli.StringFlag{
			Name:    "deepgram-model",
			Usage:   "Set Deepgram transcription model",
			Value:   deepgram.DefaultModel,
			Sources: source("ai.deepgram_model"),
		},
		&cli.StringFlag{
			Name:    "deepgram-url",
			Usage:   "Set Deepgram API base URL",
			Value:   deepgram.DefaultURL,
			Sources: source("ai.deepgram_url"),
		},
		&cli.StringFlag{
			Name:     "anthropic-api-key",
			Usage:    "Set Anthropic API key",
			Sources:  source("ai.anthropic_api_key"),
			Required: true,
		},
		&cli.StringFlag{
			Name:    "anthropic-model",
			Usage:   "Set Anthropic model",
			Value:   anthropic.DefaultModel,
			Sources: source("ai.anthropic_model"),
		},
		&cli.FloatFlag{
			Name:    "ai-requests-per-second",
			Usage:   "Set the outbound AI request rate, 0 disables pacing",
			Value:   2,
			Sources: source("ai.requests_per_second"),
		},
		&cli.StringFlag{
			Name:    "sendgrid-api-key",
			Usage:   "Set SendGrid API key",
			Sources: source("notify.sendgrid_api_key"),
		},
		&cli.StringFlag{
			Name:    "sendgrid-url",
			Usage:   "Set SendGrid API base URL",
			Value:   sendgrid.DefaultURL,
			Sources: source("notify.sendgrid_url"),
		},
		&cli.StringFlag{
			Name:    "from-email",
			Usage:   "Set the sender address of digest emails",
			Sources: source("notify.from_email"),
		},
		&cli.StringFlag{
			Name:      "audio-dir",
			Aliases:   []string{"a"},
			Usage:     "Set directory to store ingested audio in",
			Value:     "audio",
			Sources:   source("storage.audio_dir"),
			Required:  true,
			Validator: validateDirectory,
		},
		&cli.StringFlag{
			Name:     "audio-base-url",
			Usage:    "Set the public base URL the audio directory is served from",
			Sources:  source("storage.audio_base_url"),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-host",
			Usage:    "Set PostgreSQL host",
			Value:    "localhost",
			Sources:  source("postgresql.host"),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-port",
			Usage:    "Set PostgreSQL port",
			Value:    "5432",
			Sources:  source("postgresql.port"),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-username",
			Usage:    "Set PostgreSQL username",
			Sources:  source("postgresql.username"),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-password",
			Usage:    "Set PostgreSQL password",
			Sources:  source("postgresql.password"),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-dbname",
			Usage:    "Set PostgreSQL database name",
			Value:    "voicemail_triage",
			Sources:  source("postgresql.dbname"),
			Required: true,
		},
		&cli.IntFlag{
			Name:    "pg-max-conns",
			Usage:   "Set PostgreSQL pool size",
			Value:   10,
			Sources: source("postgresql.max_conns"),
		},
		&cli.StringFlag{
			Name:    "http-host",
			Usage:   "Set HTTP server host",
			Value:   "localhost",
			Sources: source("http.host"),
		},
		&cli.StringFlag{
			Name:    "http-port",
			Usage:   "Set HTTP server port",
			Value:   "8080",
			Sources: source("http.port"),
		},
		&cli.DurationFlag{
			Name:    "http-idle-timeout",
			Usage:   "Set HTTP server idle timeout",
			Value:   1 * time.Minute,
			Sources: source("http.idle_timeout"),
		},
		&cli.DurationFlag{
			Name:    "http-read-timeout",
			Usage:   "Set HTTP server read timeout",
			Value:   15 * time.Second,
			Sources: source("http.read_timeout"),
		},
		&cli.DurationFlag{
			Name:    "http-write-timeout",
			Usage:   "Set HTTP server write timeout",
			Value:   15 * time.Second,
			Sources: source("http.write_timeout"),
		},
		&cli.IntFlag{
			Name:    "http-max-upload-bytes",
			Usage:   "Set the maximum accepted audio upload size",
			Value:   32 << 20,
			Sources: source("http.max_upload_bytes"),
		},
	}
}

func validateDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", dir)
		}
		return fmt.Errorf("failed to stat %q: %w", dir, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%q is not a directory", dir)
	}

	return nil
}

func validateConfig(config string) error {
	info, err := os.Stat(config)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", config)
		}
		return fmt.Errorf("failed to stat %q: %w", config, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%q is a directory, not a file", config)
	}

	ext := filepath.Ext(info.Name())
	if ext != ".yml" && ext != ".yaml" {
		return fmt.Errorf("invalid extension %q", config)
	}

	return nil
}

func validateSchedule(spec string) error {
	if _, err := cron.Parse(spec); err != nil {
		return fmt.Errorf("invalid cron spec %q: %w", spec, err)
	}
	return nil
}

func validateTimezone(name string) error {
	if _, err := time.LoadLocation(name); err != nil {
		return fmt.Errorf("unknown timezone %q: %w", name, err)
	}
	return nil
}
