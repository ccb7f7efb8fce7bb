package otel_test

import (
	"concierge/infras/otel"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newScope(t *testing.T) (otel.Scope, *tracetest.SpanRecorder) {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("service").Start(context.Background(), "service.Submit")

	return otel.Wrap(span), recorder
}

func submit(scope otel.Scope, fail bool) (err error) {
	defer scope.End()
	defer scope.TraceIfError(&err)

	if fail {
		err = errors.New("room lookup failed")
	}

	return err
}

func TestScope_TraceIfError(t *testing.T) {
	t.Run("records the returned error", func(t *testing.T) {
		scope, recorder := newScope(t)

		require.Error(t, submit(scope, true))

		spans := recorder.Ended()
		require.Len(t, spans, 1)
		assert.Equal(t, codes.Error, spans[0].Status().Code)
		assert.Equal(t, "room lookup failed", spans[0].Status().Description)
	})

	t.Run("leaves successful spans alone", func(t *testing.T) {
		scope, recorder := newScope(t)

		require.NoError(t, submit(scope, false))

		spans := recorder.Ended()
		require.Len(t, spans, 1)
		assert.Equal(t, codes.Unset, spans[0].Status().Code)
	})
}

func TestScope_SetAttributes(t *testing.T) {
	scope, recorder := newScope(t)

	scope.SetAttributes(map[string]any{
		"room_number": "204",
		"party_size":  4,
		"vip":         true,
		"tags":        []string{"spa", "late"},
	})
	scope.End()

	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range recorder.Ended()[0].Attributes() {
		attrs[kv.Key] = kv.Value
	}

	assert.Equal(t, "204", attrs["room_number"].AsString())
	assert.Equal(t, int64(4), attrs["party_size"].AsInt64())
	assert.True(t, attrs["vip"].AsBool())
	assert.Equal(t, []string{"spa", "late"}, attrs["tags"].AsStringSlice())
}

func TestScope_TraceErrorIgnoresNil(t *testing.T) {
	scope, recorder := newScope(t)

	scope.TraceError(nil)
	scope.End()

	assert.Equal(t, codes.Unset, recorder.Ended()[0].Status().Code)
	assert.Empty(t, recorder.Ended()[0].Events())
}
