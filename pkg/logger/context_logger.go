package logger

import (
	"context"
	"time"

	ctxutil "github.com/campushub/teacher-service/pkg/context"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ContextLogBuilder accumulates fields for a single context-aware log
// entry. Terminal call is Log().
type ContextLogBuilder struct {
	ctx     context.Context
	level   zapcore.Level
	message string
	fields  []zap.Field
}

func newBuilder(ctx context.Context, level zapcore.Level, message string) *ContextLogBuilder {
	return &ContextLogBuilder{
		ctx:     ctx,
		level:   level,
		message: message,
		fields:  make([]zap.Field, 0, 8),
	}
}

// DebugWithContext starts a debug-level log entry enriched with context fields
func DebugWithContext(ctx context.Context, message string) *ContextLogBuilder {
	return newBuilder(ctx, zapcore.DebugLevel, message)
}

// InfoWithContext starts an info-level log entry enriched with context fields
func InfoWithContext(ctx context.Context, message string) *ContextLogBuilder {
	return newBuilder(ctx, zapcore.InfoLevel, message)
}

// WarnWithContext starts a warn-level log entry enriched with context fields
func WarnWithContext(ctx context.Context, message string) *ContextLogBuilder {
	return newBuilder(ctx, zapcore.WarnLevel, message)
}

// ErrorWithContext starts an error-level log entry enriched with context fields
func ErrorWithContext(ctx context.Context, message string) *ContextLogBuilder {
	return newBuilder(ctx, zapcore.ErrorLevel, message)
}

func (b *ContextLogBuilder) String(key, value string) *ContextLogBuilder {
	b.fields = append(b.fields, zap.String(key, value))
	return b
}

func (b *ContextLogBuilder) Int(key string, value int) *ContextLogBuilder {
	b.fields = append(b.fields, zap.Int(key, value))
	return b
}

func (b *ContextLogBuilder) Int64(key string, value int64) *ContextLogBuilder {
	b.fields = append(b.fields, zap.Int64(key, value))
	return b
}

func (b *ContextLogBuilder) Uint(key string, value uint) *ContextLogBuilder {
	b.fields = append(b.fields, zap.Uint(key, value))
	return b
}

func (b *ContextLogBuilder) Bool(key string, value bool) *ContextLogBuilder {
	b.fields = append(b.fields, zap.Bool(key, value))
	return b
}

func (b *ContextLogBuilder) Duration(value time.Duration) *ContextLogBuilder {
	b.fields = append(b.fields, zap.Duration("duration", value))
	return b
}

func (b *ContextLogBuilder) Err(err error) *ContextLogBuilder {
	b.fields = append(b.fields, zap.Error(err))
	return b
}

// Log emits the accumulated entry, appending whatever tracking fields
// the context carries.
func (b *ContextLogBuilder) Log() {
	fields := b.fields

	if b.ctx != nil {
		if requestID := ctxutil.GetRequestID(b.ctx); requestID != "" {
			fields = append(fields, zap.String("request_id", requestID))
		}
		if module := ctxutil.GetModule(b.ctx); module != "" {
			fields = append(fields, zap.String("module", module))
		}
		if function := ctxutil.GetFunction(b.ctx); function != "" {
			fields = append(fields, zap.String("function", function))
		}
		if clientIP := ctxutil.GetClientIP(b.ctx); clientIP != "" {
			fields = append(fields, zap.String("client_ip", clientIP))
		}
		if userID, ok := ctxutil.GetUserID(b.ctx); ok {
			fields = append(fields, zap.Uint("acting_user_id", userID))
		}
	}

	switch b.level {
	case zapcore.DebugLevel:
		GetLogger().Debug(b.message, fields...)
	case zapcore.InfoLevel:
		GetLogger().Info(b.message, fields...)
	case zapcore.WarnLevel:
		GetLogger().Warn(b.message, fields...)
	case zapcore.ErrorLevel:
		GetLogger().Error(b.message, fields...)
	default:
		GetLogger().Info(b.message, fields...)
	}
}
