package logger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	gormlogger "gorm.io/gorm/logger"
)

func newObservedGormLogger(level gormlogger.LogLevel) (*GormLogger, *observer.ObservedLogs) {
	core, recorded := observer.New(zapcore.DebugLevel)
	return NewGormLogger(zap.New(core), level), recorded
}

func queryCallback(sql string, rows int64) func() (string, int64) {
	return func() (string, int64) { return sql, rows }
}

func TestGormLogger_LogMode(t *testing.T) {
	gl, _ := newObservedGormLogger(gormlogger.Info)

	changed := gl.LogMode(gormlogger.Warn)

	assert.Equal(t, gormlogger.Info, gl.level)
	clone, ok := changed.(*GormLogger)
	require.True(t, ok)
	assert.Equal(t, gormlogger.Warn, clone.level)
}

func TestGormLogger_Trace(t *testing.T) {
	ctx := context.Background()

	t.Run("logs queries at debug when level is info", func(t *testing.T) {
		gl, recorded := newObservedGormLogger(gormlogger.Info)

		gl.Trace(ctx, time.Now(), queryCallback("SELECT 1", 1), nil)

		entries := recorded.FilterMessage("query").All()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
		assert.Equal(t, "SELECT 1", entries[0].ContextMap()["sql"])
	})

	t.Run("logs failed queries with the error", func(t *testing.T) {
		gl, recorded := newObservedGormLogger(gormlogger.Error)

		gl.Trace(ctx, time.Now(), queryCallback("SELECT broken", 0), errors.New("syntax error"))

		entries := recorded.FilterMessage("query failed").All()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	})

	t.Run("record not found is not an error", func(t *testing.T) {
		gl, recorded := newObservedGormLogger(gormlogger.Error)

		gl.Trace(ctx, time.Now(), queryCallback("SELECT 1", 0), gormlogger.ErrRecordNotFound)

		assert.Empty(t, recorded.All())
	})

	t.Run("slow queries log at warn", func(t *testing.T) {
		gl, recorded := newObservedGormLogger(gormlogger.Warn)

		begin := time.Now().Add(-2 * slowQueryThreshold)
		gl.Trace(ctx, begin, queryCallback("SELECT pg_sleep(1)", 0), nil)

		entries := recorded.FilterMessage("slow query").All()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	})

	t.Run("silent level logs nothing", func(t *testing.T) {
		gl, recorded := newObservedGormLogger(gormlogger.Silent)

		gl.Trace(ctx, time.Now(), queryCallback("SELECT 1", 1), errors.New("ignored"))

		assert.Empty(t, recorded.All())
	})

	t.Run("includes the request id from context", func(t *testing.T) {
		gl, recorded := newObservedGormLogger(gormlogger.Info)

		reqCtx, _ := WithRequestID(ctx, zap.NewNop(), "req-7")
		gl.Trace(reqCtx, time.Now(), queryCallback("SELECT 1", 1), nil)

		entries := recorded.FilterMessage("query").All()
		require.Len(t, entries, 1)
		assert.Equal(t, "req-7", entries[0].ContextMap()["request_id"])
	})
}

func TestGormLogger_LevelGates(t *testing.T) {
	gl, recorded := newObservedGormLogger(gormlogger.Warn)
	ctx := context.Background()

	gl.Info(ctx, "not logged")
	gl.Warn(ctx, "warned")
	gl.Error(ctx, "errored")

	assert.Empty(t, recorded.FilterMessage("not logged").All())
	assert.Len(t, recorded.FilterMessage("warned").All(), 1)
	assert.Len(t, recorded.FilterMessage("errored").All(), 1)
}

func TestMapGormLogLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Silent, MapGormLogLevel("silent"))
	assert.Equal(t, gormlogger.Error, MapGormLogLevel("error"))
	assert.Equal(t, gormlogger.Warn, MapGormLogLevel("warn"))
	assert.Equal(t, gormlogger.Info, MapGormLogLevel("info"))
	assert.Equal(t, gormlogger.Info, MapGormLogLevel("debug"))
	assert.Equal(t, gormlogger.Warn, MapGormLogLevel("anything"))
}
