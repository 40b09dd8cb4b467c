package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestSetup_DisabledWithoutEndpoint(t *testing.T) {
	p, err := Setup(context.Background(), Config{})
	require.NoError(t, err)
	assert.False(t, p.Enabled())
	require.NotNil(t, p.Tracer())

	_, span := p.Tracer().Start(context.Background(), "noop")
	span.End()
	assert.False(t, span.SpanContext().IsValid(), "noop tracer produces invalid span contexts")
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestSetup_EnabledWithEndpoint(t *testing.T) {
	// The exporter connects lazily, so no collector is needed here.
	p, err := Setup(context.Background(), Config{Endpoint: "localhost:4318", Insecure: true})
	require.NoError(t, err)
	assert.True(t, p.Enabled())
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestSetup_EndpointURL(t *testing.T) {
	p, err := Setup(context.Background(), Config{Endpoint: "https://collector.example:4318"})
	require.NoError(t, err)
	assert.True(t, p.Enabled())
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv(EndpointEnv, "collector:4318")
	t.Setenv(ServiceNameEnv, "feedback-kiosk")
	t.Setenv(InsecureEnv, "")
	cfg := ConfigFromEnv()
	assert.Equal(t, "collector:4318", cfg.Endpoint)
	assert.Equal(t, "feedback-kiosk", cfg.ServiceName)
	assert.True(t, cfg.Insecure, "plain HTTP unless disabled")

	t.Setenv(InsecureEnv, "false")
	assert.False(t, ConfigFromEnv().Insecure)
}

func TestProvider_RecordsSpans(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	p := newProvider(sdktrace.WithSpanProcessor(rec))

	_, span := p.Tracer().Start(context.Background(), "app.dispatch")
	span.End()

	require.Len(t, rec.Ended(), 1)
	assert.Equal(t, "app.dispatch", rec.Ended()[0].Name())
	assert.Equal(t, instrumentationName, rec.Ended()[0].InstrumentationScope().Name)
	require.NoError(t, p.Shutdown(context.Background()))
}

func TestNilProvider(t *testing.T) {
	var p *Provider
	assert.False(t, p.Enabled())
	assert.NotNil(t, p.Tracer())
	assert.NoError(t, p.Shutdown(context.Background()))
}
