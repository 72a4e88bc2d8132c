// Package telemetry installs the OpenTelemetry SDK for domainversion and
// defines the instruments recorded by resolution and the HTTP API. Exporters
// are "stdout", which writes to stderr so that stdout stays reserved for the
// resolved version, and "otlp" for a CI collector over OTLP/HTTP.
//
//	p, err := telemetry.Start(ctx, "domainversion", telemetry.ExporterOTLP, "http://otel-collector:4318")
//	if err != nil {
//		return err
//	}
//	defer p.Shutdown(ctx)
//	p.Metrics.ResolveTotal.Add(ctx, 1)
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

// Supported exporter names.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// instrumentationScope is the meter and tracer name used across the module.
const instrumentationScope = "github.com/jsamuelsen11/domainversion"

// Attribute keys for metric labels.
var (
	AttrHTTPMethod = attribute.Key("http.method")
	AttrHTTPStatus = attribute.Key("http.status_code")
	AttrHTTPRoute  = attribute.Key("http.route")
	AttrDomain     = attribute.Key("domain.name")
	AttrResult     = attribute.Key("result")
)

// Metrics are the instruments registered by NewMetrics.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ResolveDuration       metric.Float64Histogram
	ResolveTotal          metric.Int64Counter
	MemoLookups           metric.Int64Counter
}

// InitTracer registers a global TracerProvider exporting to exporter ("otlp"
// or "stdout") and installs the W3C trace context and baggage propagators.
// Spans are batched; the caller must Shutdown the provider to flush them.
func InitTracer(ctx context.Context, serviceName, exporter, endpoint string) (*sdktrace.TracerProvider, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, err
	}

	var exp sdktrace.SpanExporter
	switch exporter {
	case ExporterStdout:
		// Stderr keeps stdout free for the resolved version.
		exp, err = stdouttrace.New(stdouttrace.WithWriter(os.Stderr), stdouttrace.WithPrettyPrint())
	case ExporterOTLP:
		var target collector
		if target, err = parseCollector(endpoint); err == nil {
			exp, err = otlptracehttp.New(ctx, target.traceOptions()...)
		}
	default:
		err = fmt.Errorf("unsupported trace exporter %q", exporter)
	}
	if err != nil {
		return nil, fmt.Errorf("creating span exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exp), sdktrace.WithResource(res))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return tp, nil
}

// InitMeter registers a global MeterProvider with a periodic reader exporting
// to exporter ("otlp" or "stdout"). The caller must Shutdown the provider.
func InitMeter(ctx context.Context, serviceName, exporter, endpoint string) (*sdkmetric.MeterProvider, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, err
	}

	var exp sdkmetric.Exporter
	switch exporter {
	case ExporterStdout:
		exp, err = stdoutmetric.New(stdoutmetric.WithWriter(os.Stderr))
	case ExporterOTLP:
		var target collector
		if target, err = parseCollector(endpoint); err == nil {
			exp, err = otlpmetrichttp.New(ctx, target.metricOptions()...)
		}
	default:
		err = fmt.Errorf("unsupported metric exporter %q", exporter)
	}
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)
	return mp, nil
}

// NewMetrics registers the module's instruments on mp.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	meter := mp.Meter(instrumentationScope)
	m := &Metrics{}

	var errs []error
	histogram := func(name, desc string) metric.Float64Histogram {
		h, err := meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit("s"))
		if err != nil {
			errs = append(errs, fmt.Errorf("creating %s: %w", name, err))
		}
		return h
	}
	counter := func(name, desc, unit string) metric.Int64Counter {
		c, err := meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
		if err != nil {
			errs = append(errs, fmt.Errorf("creating %s: %w", name, err))
		}
		return c
	}

	m.ServerRequestDuration = histogram("http.server.request.duration", "Duration of incoming HTTP requests")
	m.ServerRequestTotal = counter("http.server.request.total", "Incoming HTTP requests", "{request}")
	m.ResolveDuration = histogram("domainversion.resolve.duration", "Duration of domain version resolutions")
	m.ResolveTotal = counter("domainversion.resolve.total", "Domain version resolutions by result", "{resolution}")
	m.MemoLookups = counter("domainversion.memo.lookups", "History memo lookups by result (hit or miss)", "{lookup}")

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return m, nil
}

// Providers owns the SDK providers installed by Start. The zero value is
// valid and stands for disabled telemetry: Metrics is nil and Shutdown is a
// no-op.
type Providers struct {
	Metrics *Metrics

	closers []func(context.Context) error
}

// Start installs the global tracer and meter providers for serviceName and
// registers the module's instruments. On failure, whatever was already
// installed is shut down again.
func Start(ctx context.Context, serviceName, exporter, endpoint string) (*Providers, error) {
	p := &Providers{}

	tp, err := InitTracer(ctx, serviceName, exporter, endpoint)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}
	p.closers = append(p.closers, tp.Shutdown)

	mp, err := InitMeter(ctx, serviceName, exporter, endpoint)
	if err != nil {
		_ = p.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}
	p.closers = append(p.closers, mp.Shutdown)

	if p.Metrics, err = NewMetrics(mp); err != nil {
		_ = p.Shutdown(ctx)
		return nil, fmt.Errorf("registering instruments: %w", err)
	}
	return p, nil
}

// Shutdown flushes and stops the providers in reverse start order.
func (p *Providers) Shutdown(ctx context.Context) error {
	var errs []error
	for i := len(p.closers) - 1; i >= 0; i-- {
		if err := p.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	p.closers = nil
	return errors.Join(errs...)
}

// Tracer returns the tracer used for resolution spans. It reads the global
// provider, which is a no-op until InitTracer runs.
func Tracer() trace.Tracer {
	return otel.Tracer(instrumentationScope)
}

func newResource(serviceName string) (*resource.Resource, error) {
	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(semconv.SchemaURL, semconv.ServiceName(serviceName)),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}
	return res, nil
}

var errEmptyEndpoint = errors.New("otlp exporter requires an endpoint")

// collector is a parsed OTLP/HTTP endpoint such as "http://otel-collector:4318".
type collector struct {
	host     string
	insecure bool
}

func parseCollector(endpoint string) (collector, error) {
	if endpoint == "" {
		return collector{}, errEmptyEndpoint
	}
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		// Bare host:port.
		return collector{host: endpoint, insecure: true}, nil
	}
	return collector{host: u.Host, insecure: u.Scheme != "https"}, nil
}

func (c collector) traceOptions() []otlptracehttp.Option {
	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(c.host)}
	if c.insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	return opts
}

func (c collector) metricOptions() []otlpmetrichttp.Option {
	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(c.host)}
	if c.insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}
	return opts
}
