package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/preston-bernstein/mlbcal/internal/config"
	"github.com/preston-bernstein/mlbcal/internal/logging"
	"github.com/preston-bernstein/mlbcal/internal/metrics"
)

// Version is reported in structured logs.
var Version = "dev"

var (
	loadConfig   = config.Load
	metricsSetup = metrics.Setup
)

// session bundles the ambient pieces every command needs.
type session struct {
	cfg      config.Config
	logger   *slog.Logger
	metrics  *metrics.Recorder
	shutdown func(context.Context) error
}

func newSession(ctx context.Context, service string, verbose bool, stderr io.Writer) (context.Context, *session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return ctx, nil, err
	}

	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	logger := logging.NewLogger(logging.Config{
		Level:   level,
		Format:  cfg.Log.Format,
		Service: service,
		Version: Version,
		Output:  stderr,
	})
	ctx, _ = logging.WithRunID(ctx, logger)

	rec, shutdown, err := metricsSetup(ctx, metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Textfile:     cfg.Metrics.Textfile,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	})
	if err != nil {
		return ctx, nil, err
	}

	return ctx, &session{
		cfg:      cfg,
		logger:   logging.FromContext(ctx, logger),
		metrics:  rec,
		shutdown: shutdown,
	}, nil
}

// close flushes telemetry; failures are logged, never fatal.
func (r *session) close(ctx context.Context) {
	if r == nil || r.shutdown == nil {
		return
	}
	if err := r.shutdown(context.WithoutCancel(ctx)); err != nil {
		logging.Warn(r.logger, "metrics shutdown failed", "err", err)
	}
}
