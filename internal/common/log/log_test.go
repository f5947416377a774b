package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestCorrelationID(t *testing.T) {
	ctx := WithCorrelationID(context.Background(), "KIOS-123")
	assert.Equal(t, "KIOS-123", CorrelationID(ctx))
	assert.Equal(t, "", CorrelationID(context.Background()))
}

func TestInfo_AddsCorrelationField(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	prev := logger.Load()
	logger.Store(zap.New(core))
	t.Cleanup(func() { logger.Store(prev) })

	ctx := WithCorrelationID(context.Background(), "KIOS-abc")
	Info(ctx, "[TEST]", String("key", "value"))

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		fields := entries[0].ContextMap()
		assert.Equal(t, "value", fields["key"])
		assert.Equal(t, "KIOS-abc", fields["correlationId"])
		assert.Equal(t, "[TEST]", entries[0].Message)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Level
	}{
		{name: "debug", in: "debug", want: DebugLevel},
		{name: "warn", in: "warn", want: WarnLevel},
		{name: "invalid falls back to info", in: "verbose", want: InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}
