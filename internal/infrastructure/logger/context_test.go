package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFromContext(t *testing.T) {
	t.Run("returns the stored logger", func(t *testing.T) {
		log := zap.NewNop()
		ctx := WithContext(context.Background(), log)

		assert.Same(t, log, FromContext(ctx))
	})

	t.Run("falls back to a usable no-op logger", func(t *testing.T) {
		log := FromContext(context.Background())

		assert.NotNil(t, log)
		log.Info("does not panic")
	})
}

func TestWithRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	ctx, log := WithRequestID(context.Background(), zap.New(core), "req-123")
	log.Info("message")

	assert.Equal(t, "req-123", GetRequestID(ctx))
	assert.Equal(t, "req-123", logs.All()[0].ContextMap()["request_id"])

	// The enriched logger is also the one the context hands back.
	assert.Same(t, log, FromContext(ctx))
}

func TestWithUserID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	ctx, log := WithUserID(context.Background(), zap.New(core), "user-42")
	log.Info("message")

	assert.Equal(t, "user-42", logs.All()[0].ContextMap()["user_id"])
	assert.Same(t, log, FromContext(ctx))
}

func TestGetRequestID_Empty(t *testing.T) {
	assert.Empty(t, GetRequestID(context.Background()))
}

func TestEnrichmentChains(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	ctx, log := WithRequestID(context.Background(), zap.New(core), "req-1")
	_, log = WithUserID(ctx, log, "user-1")
	log.Info("message")

	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, "user-1", fields["user_id"])
}
