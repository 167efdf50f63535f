package logging

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rs/zerolog"
)

// NewZerolog returns a Logger that writes through a zerolog.Logger. Arguments
// follow slog conventions: alternating key/value pairs or slog.Attr values.
func NewZerolog(logger zerolog.Logger) Logger {
	return &zeroLogger{logger: logger}
}

type zeroLogger struct {
	logger zerolog.Logger
}

func (l *zeroLogger) Debug(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, l.logger.Debug(), msg, args)
}

func (l *zeroLogger) Info(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, l.logger.Info(), msg, args)
}

func (l *zeroLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, l.logger.Warn(), msg, args)
}

func (l *zeroLogger) Error(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, l.logger.Error(), msg, args)
}

func (l *zeroLogger) With(args ...any) Logger {
	c := l.logger.With()
	for _, kv := range pairs(args) {
		c = c.Interface(kv.key, kv.value)
	}
	return &zeroLogger{logger: c.Logger()}
}

func (l *zeroLogger) emit(ctx context.Context, ev *zerolog.Event, msg string, args []any) {
	// Disabled levels return a nil event.
	if ev == nil {
		return
	}
	if ctx != nil {
		ev = ev.Ctx(ctx)
	}
	for _, kv := range pairs(args) {
		ev = ev.Interface(kv.key, kv.value)
	}
	ev.Msg(msg)
}

type keyValue struct {
	key   string
	value any
}

// pairs flattens slog-style arguments. A trailing key without a value is
// reported under "!BADKEY", as slog does.
func pairs(args []any) []keyValue {
	var out []keyValue
	for i := 0; i < len(args); i++ {
		switch a := args[i].(type) {
		case slog.Attr:
			out = append(out, keyValue{key: a.Key, value: a.Value.Any()})
		case string:
			if i+1 < len(args) {
				out = append(out, keyValue{key: a, value: args[i+1]})
				i++
			} else {
				out = append(out, keyValue{key: "!BADKEY", value: a})
			}
		default:
			out = append(out, keyValue{key: "!BADKEY", value: fmt.Sprint(a)})
		}
	}
	return out
}
