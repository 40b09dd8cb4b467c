// Package telemetry sets up OpenTelemetry tracing for the controller.
package telemetry

import (
	"context"
	"os"
	"strings"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Environment variables read by ConfigFromEnv. Export is enabled only when
// EndpointEnv is set.
const (
	EndpointEnv    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	ServiceNameEnv = "OTEL_SERVICE_NAME"
	InsecureEnv    = "OTEL_EXPORTER_OTLP_INSECURE"
)

// DefaultServiceName is reported when OTEL_SERVICE_NAME is unset.
const DefaultServiceName = "shaktichain"

const instrumentationName = "shaktichain/app"

// Provider hands out the tracer used by the controller.
type Provider struct {
	provider *sdktrace.TracerProvider // nil when disabled
	tracer   oteltrace.Tracer
}

// Config selects the exporter endpoint. Endpoint is either host:port or a
// full URL; with a URL the scheme decides TLS and Insecure is ignored.
type Config struct {
	Endpoint    string
	ServiceName string
	Insecure    bool
}

// ConfigFromEnv reads the OTEL_* environment variables.
func ConfigFromEnv() Config {
	// Plain HTTP unless OTEL_EXPORTER_OTLP_INSECURE=false, for local
	// collectors. The OTel SDK defaults the other way.
	return Config{
		Endpoint:    os.Getenv(EndpointEnv),
		ServiceName: os.Getenv(ServiceNameEnv),
		Insecure:    os.Getenv(InsecureEnv) != "false",
	}
}

// Setup creates an OTLP/HTTP exporter when an endpoint is configured.
// Without one the returned Provider is a no-op.
func Setup(ctx context.Context, cfg Config) (*Provider, error) {
	if cfg.Endpoint == "" {
		return &Provider{tracer: noop.NewTracerProvider().Tracer(instrumentationName)}, nil
	}

	var opts []otlptracehttp.Option
	switch {
	case strings.Contains(cfg.Endpoint, "://"):
		opts = append(opts, otlptracehttp.WithEndpointURL(cfg.Endpoint))
	case cfg.Insecure:
		opts = append(opts, otlptracehttp.WithEndpoint(cfg.Endpoint), otlptracehttp.WithInsecure())
	default:
		opts = append(opts, otlptracehttp.WithEndpoint(cfg.Endpoint))
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, err
	}

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = DefaultServiceName
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	return newProvider(sdktrace.WithBatcher(exporter), sdktrace.WithResource(res)), nil
}

func newProvider(opts ...sdktrace.TracerProviderOption) *Provider {
	tp := sdktrace.NewTracerProvider(opts...)
	return &Provider{
		provider: tp,
		tracer:   tp.Tracer(instrumentationName),
	}
}

// Enabled reports whether spans are exported.
func (p *Provider) Enabled() bool {
	return p != nil && p.provider != nil
}

// Tracer returns the application tracer. Safe on a nil Provider.
func (p *Provider) Tracer() oteltrace.Tracer {
	if p == nil {
		return noop.NewTracerProvider().Tracer(instrumentationName)
	}
	return p.tracer
}

// Shutdown flushes and closes the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	if !p.Enabled() {
		return nil
	}
	return p.provider.Shutdown(ctx)
}
