package tracing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestEndSpanWithErrCheck(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tracer := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)).Tracer("test")

	_, okSpan := tracer.Start(context.Background(), "ok")
	EndSpanWithErrCheck(okSpan, nil)

	_, failedSpan := tracer.Start(context.Background(), "failed")
	EndSpanWithErrCheck(failedSpan, errors.New("boom"))

	ended := recorder.Ended()
	if assert.Len(t, ended, 2) {
		assert.Equal(t, codes.Unset, ended[0].Status().Code)
		assert.Equal(t, codes.Error, ended[1].Status().Code)
		assert.Equal(t, "boom", ended[1].Status().Description)
		assert.Len(t, ended[1].Events(), 1)
	}
}
