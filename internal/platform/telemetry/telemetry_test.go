package telemetry_test

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/jsamuelsen11/domainversion/internal/platform/telemetry"
)

// Tests that install global providers do not run in parallel.

func TestInitTracer(t *testing.T) {
	tests := []struct {
		name     string
		exporter string
		endpoint string
		wantErr  bool
	}{
		{name: "stdout", exporter: telemetry.ExporterStdout},
		{name: "otlp url", exporter: telemetry.ExporterOTLP, endpoint: "http://localhost:4318"},
		{name: "otlp host port", exporter: telemetry.ExporterOTLP, endpoint: "localhost:4318"},
		{name: "otlp without endpoint", exporter: telemetry.ExporterOTLP, wantErr: true},
		{name: "unknown exporter", exporter: "zipkin", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()

			tp, err := telemetry.InitTracer(ctx, "domainversion-test", tt.exporter, tt.endpoint)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("InitTracer(%q, %q) error = nil, want error", tt.exporter, tt.endpoint)
				}
				return
			}
			if err != nil {
				t.Fatalf("InitTracer(%q, %q) error = %v", tt.exporter, tt.endpoint, err)
			}
			// No collector runs during tests, so OTLP shutdown may fail.
			t.Cleanup(func() { _ = tp.Shutdown(ctx) })

			if fields := otel.GetTextMapPropagator().Fields(); len(fields) == 0 {
				t.Error("global propagator has no fields, want trace context and baggage")
			}
		})
	}
}

func TestInitMeter(t *testing.T) {
	tests := []struct {
		name     string
		exporter string
		endpoint string
		wantErr  bool
	}{
		{name: "stdout", exporter: telemetry.ExporterStdout},
		{name: "otlp https", exporter: telemetry.ExporterOTLP, endpoint: "https://collector.example.com:4318"},
		{name: "otlp without endpoint", exporter: telemetry.ExporterOTLP, wantErr: true},
		{name: "unknown exporter", exporter: "prometheus", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()

			mp, err := telemetry.InitMeter(ctx, "domainversion-test", tt.exporter, tt.endpoint)
			if (err != nil) != tt.wantErr {
				t.Fatalf("InitMeter(%q, %q) error = %v, wantErr %v", tt.exporter, tt.endpoint, err, tt.wantErr)
			}
			if mp != nil {
				t.Cleanup(func() { _ = mp.Shutdown(ctx) })
			}
		})
	}
}

func TestNewMetrics(t *testing.T) {
	t.Parallel()

	m, err := telemetry.NewMetrics(noop.NewMeterProvider())
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	instruments := map[string]any{
		"ServerRequestDuration": m.ServerRequestDuration,
		"ServerRequestTotal":    m.ServerRequestTotal,
		"ResolveDuration":       m.ResolveDuration,
		"ResolveTotal":          m.ResolveTotal,
		"MemoLookups":           m.MemoLookups,
	}
	for name, inst := range instruments {
		if inst == nil {
			t.Errorf("%s is nil", name)
		}
	}

	// Recording on a noop provider must not panic.
	m.MemoLookups.Add(context.Background(), 1)
	m.ResolveDuration.Record(context.Background(), 0.012)
}

func TestTracer(t *testing.T) {
	t.Parallel()

	_, span := telemetry.Tracer().Start(context.Background(), "VersionService.resolve")
	defer span.End()

	if span == nil {
		t.Fatal("Tracer().Start returned nil span")
	}
}

func TestStart(t *testing.T) {
	ctx := context.Background()

	p, err := telemetry.Start(ctx, "domainversion-test", telemetry.ExporterStdout, "")
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if p.Metrics == nil {
		t.Fatal("Start() Metrics = nil, want registered instruments")
	}
	if err := p.Shutdown(ctx); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
	if err := p.Shutdown(ctx); err != nil {
		t.Errorf("second Shutdown() error = %v, want nil", err)
	}
}

func TestStart_RejectsUnknownExporter(t *testing.T) {
	if _, err := telemetry.Start(context.Background(), "domainversion-test", "zipkin", ""); err == nil {
		t.Fatal("Start() error = nil, want unsupported exporter error")
	}
}

func TestProviders_ZeroValueIsDisabled(t *testing.T) {
	t.Parallel()

	var p telemetry.Providers
	if p.Metrics != nil {
		t.Error("zero Providers has Metrics, want nil")
	}
	if err := p.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() error = %v, want nil", err)
	}
}
