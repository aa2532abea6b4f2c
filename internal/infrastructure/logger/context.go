package logger

import (
	"context"

	"go.uber.org/zap"
)

type ctxKey int

const (
	loggerCtxKey ctxKey = iota
	requestIDCtxKey
)

// WithContext stores the logger in the context.
func WithContext(ctx context.Context, log *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey, log)
}

// FromContext returns the logger stored by WithContext, or a no-op
// logger when none is present.
func FromContext(ctx context.Context) *zap.Logger {
	if log, ok := ctx.Value(loggerCtxKey).(*zap.Logger); ok {
		return log
	}
	return zap.NewNop()
}

// WithRequestID records the request id in the context and returns a
// logger carrying it as a field.
func WithRequestID(ctx context.Context, log *zap.Logger, requestID string) (context.Context, *zap.Logger) {
	ctx = context.WithValue(ctx, requestIDCtxKey, requestID)
	log = log.With(zap.String("request_id", requestID))
	return WithContext(ctx, log), log
}

// WithUserID returns a logger carrying the user id as a field and a
// context holding that logger.
func WithUserID(ctx context.Context, log *zap.Logger, userID string) (context.Context, *zap.Logger) {
	log = log.With(zap.String("user_id", userID))
	return WithContext(ctx, log), log
}

// GetRequestID returns the request id recorded by WithRequestID, or "".
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(requestIDCtxKey).(string); ok {
		return requestID
	}
	return ""
}
