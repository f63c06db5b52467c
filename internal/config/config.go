package config

import (
	"time"

	"github.com/urfave/cli/v3"
)

type Config struct {
	App
	Pipeline
	Digest
	AI
	Notify
	Storage
	PostgreSQL
	HTTP
}

type App struct {
	WorkerID string
}

type Pipeline struct {
	PollInterval        time.Duration
	ReclaimInterval     time.Duration
	StaleAfter          time.Duration
	SweepInterval       time.Duration
	StageAttempts       int
	RetryBaseDelay      time.Duration
	RetryMaxDelay       time.Duration
	ConfidenceThreshold float64
}

type Digest struct {
	Schedule         string
	Timezone         string
	ReportsDirectory string
}

type AI struct {
	DeepgramAPIKey    string
	DeepgramModel     string
	DeepgramURL       string
	AnthropicAPIKey   string
	AnthropicModel    string
	RequestsPerSecond float64
}

type Notify struct {
	SendGridAPIKey string
	SendGridURL    string
	FromEmail      string
}

type Storage struct {
	AudioDirectory string
	AudioBaseURL   string
}

type PostgreSQL struct {
	Host     string
	Port     string
	Username string
	Password string
	DBName   string
	MaxConns int32
}

type HTTP struct {
	Host           string
	Port           string
	IdleTimeout    time.Duration
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	MaxUploadBytes int64
}

func Load(cmd *cli.Command) *Config {
	return &Config{
		App: App{
			WorkerID: cmd.String("worker-id"),
		},
		Pipeline: Pipeline{
			PollInterval:        cmd.Duration("poll-interval"),
			ReclaimInterval:     cmd.Duration("reclaim-interval"),
			StaleAfter:          cmd.Duration("stale-after"),
			SweepInterval:       cmd.Duration("sweep-interval"),
			StageAttempts:       int(cmd.Int("stage-attempts")),
			RetryBaseDelay:      cmd.Duration("retry-base-delay"),
			RetryMaxDelay:       cmd.Duration("retry-max-delay"),
			ConfidenceThreshold: cmd.Float("confidence-threshold"),
		},
		Digest: Digest{
			Schedule:         cmd.String("digest-schedule"),
			Timezone:         cmd.String("digest-timezone"),
			ReportsDirectory: cmd.String("reports-dir"),
		},
		AI: AI{
			DeepgramAPIKey:    cmd.String("deepgram-api-key"),
			DeepgramModel:     cmd.String("deepgram-model"),
			DeepgramURL:       cmd.String("deepgram-url"),
			AnthropicAPIKey:   cmd.String("anthropic-api-key"),
			AnthropicModel:    cmd.String("anthropic-model"),
			RequestsPerSecond: cmd.Float("ai-requests-per-second"),
		},
		Notify: Notify{
			SendGridAPIKey: cmd.String("sendgrid-api-key"),
			SendGridURL:    cmd.String("sendgrid-url"),
			FromEmail:      cmd.String("from-email"),
		},
		Storage: Storage{
			AudioDirectory: cmd.String("audio-dir"),
			AudioBaseURL:   cmd.String("audio-base-url"),
		},
		PostgreSQL: PostgreSQL{
			Host:     cmd.String("pg-host"),
			Port:     cmd.String("pg-port"),
			Username: cmd.String("pg-username"),
			Password: cmd.String("pg-password"),
			DBName:   cmd.String("pg-dbname"),
			MaxConns: int32(cmd.Int("pg-max-conns")),
		},
		HTTP: HTTP{
			Host:           cmd.String("http-host"),
			Port:           cmd.String("http-port"),
			IdleTimeout:    cmd.Duration("http-idle-timeout"),
			ReadTimeout:    cmd.Duration("http-read-timeout"),
			WriteTimeout:   cmd.Duration("http-write-timeout"),
			MaxUploadBytes: int64(cmd.Int("http-max-upload-bytes")),
		},
	}
}
