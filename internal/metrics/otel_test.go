package metrics

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

func TestSetupDisabledReturnsInMemoryRecorder(t *testing.T) {
	rec, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled:  false,
		Textfile: filepath.Join(t.TempDir(), "unused.prom"),
	})
	if err != nil {
		t.Fatalf("expected no error when disabled, got %v", err)
	}
	if rec == nil || rec.otel != nil {
		t.Fatalf("expected plain recorder")
	}
	if shutdown == nil {
		t.Fatalf("expected shutdown function")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("expected no-op shutdown, got %v", err)
	}
}

func TestSetupEnabledWritesTextfileOnShutdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mlbcal.prom")
	rec, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled:     true,
		ServiceName: "mlbcal-test",
		Textfile:    path,
		// No OTLP endpoint; uses Prometheus exporter only.
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec == nil || rec.otel == nil {
		t.Fatalf("expected otel-backed recorder")
	}

	rec.RecordProviderAttempt("statsapi", time.Millisecond, nil)
	rec.RecordProviderAttempt("statsapi", time.Millisecond, errors.New("boom"))
	rec.RecordRetry("statsapi")
	rec.RecordNormalized(162)
	rec.RecordRun(time.Millisecond, nil)

	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected textfile, got %v", err)
	}
	body := string(data)
	for _, want := range []string{"provider_attempts_total", "games_normalized_total", "runs_total"} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %s in textfile:\n%s", want, body)
		}
	}
}

func TestSetupSurfacesPrometheusFactoryError(t *testing.T) {
	orig := promReaderFactory
	t.Cleanup(func() { promReaderFactory = orig })
	promReaderFactory = func() (sdkmetric.Reader, *prometheus.Registry, error) {
		return nil, nil, errors.New("registry failure")
	}

	if _, _, err := Setup(context.Background(), TelemetryConfig{Enabled: true}); err == nil {
		t.Fatal("expected factory error")
	}
}

func TestSetupSurfacesOTLPFactoryError(t *testing.T) {
	orig := otlpReaderFactory
	t.Cleanup(func() { otlpReaderFactory = orig })
	otlpReaderFactory = func(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
		return nil, errors.New("otlp failure")
	}

	_, _, err := Setup(context.Background(), TelemetryConfig{Enabled: true, OtlpEndpoint: "collector:4318"})
	if err == nil {
		t.Fatal("expected otlp error")
	}
}

func TestShutdownReportsTextfileError(t *testing.T) {
	orig := writeTextfile
	t.Cleanup(func() { writeTextfile = orig })
	writeTextfile = func(string, prometheus.Gatherer) error { return errors.New("disk full") }

	_, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: true, Textfile: "ignored.prom"})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if err := shutdown(context.Background()); err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("expected textfile error, got %v", err)
	}
}

func TestOtelInstrumentsNilSafe(t *testing.T) {
	var o *otelInstruments
	o.recordProviderAttempt("p", time.Millisecond, nil)
	o.recordRetry("p")
	o.recordNormalized(1)
	o.recordRun(time.Millisecond, errors.New("boom"))
}
