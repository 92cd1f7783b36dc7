package app_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"clothly/internal/app"
	"clothly/internal/logging"
	"clothly/internal/repositories"
	"clothly/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func TestNew_TracesRequests(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	logger := logging.Discard()
	fiberApp := app.New(app.Deps{
		Clothing: services.NewClothingService(repositories.NewMockClothingRepository(), "menclothes", nil, logger),
		Logger:   logger,
	})

	resp, err := fiberApp.Test(httptest.NewRequest(http.MethodGet, "/shop/men", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	var server, list sdktrace.ReadOnlySpan
	for _, span := range recorder.Ended() {
		switch {
		case span.SpanKind() == trace.SpanKindServer:
			server = span
		case span.Name() == "ClothingService.ListClothes":
			list = span
		}
	}
	require.NotNil(t, server, "no server span recorded")
	require.NotNil(t, list, "no service span recorded")

	assert.Equal(t, server.SpanContext().TraceID(), list.SpanContext().TraceID())
	assert.Equal(t, server.SpanContext().SpanID(), list.Parent().SpanID())
}
