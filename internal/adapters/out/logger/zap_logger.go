package logger

import (
	"time"

	"github.com/suchimauz/slot-appointment-service/internal/config"
	"github.com/suchimauz/slot-appointment-service/internal/core/ports/out"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ZapLogger struct {
	base          *zap.Logger
	defaultFields out.LogFields
	module        string
}

// NewZapLogger: в local - цветной консольный вывод, в остальных окружениях - JSON.
func NewZapLogger(cfg *config.Config) (*ZapLogger, error) {
	var zapConfig zap.Config
	if cfg.IsLocal() {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zapConfig = zap.NewProductionConfig()
	}

	zapConfig.Level = zap.NewAtomicLevelAt(parseLevel(cfg.App.LogLevel))
	zapConfig.EncoderConfig.TimeKey = "time"
	zapConfig.EncoderConfig.EncodeTime = timeEncoder(config.TimeZone)
	zapConfig.DisableStacktrace = true

	base, err := zapConfig.Build(zap.AddCallerSkip(2))
	if err != nil {
		return nil, err
	}

	return newZapLogger(base), nil
}

func NewNopLogger() *ZapLogger {
	return newZapLogger(zap.NewNop())
}

func newZapLogger(base *zap.Logger) *ZapLogger {
	return &ZapLogger{
		base:          base,
		defaultFields: make(out.LogFields),
		module:        "unknown",
	}
}

func parseLevel(level string) zapcore.Level {
	switch out.ParseLogLevel(level) {
	case out.LogLevelDebug:
		return zap.DebugLevel
	case out.LogLevelWarn:
		return zap.WarnLevel
	case out.LogLevelError:
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

func timeEncoder(loc *time.Location) zapcore.TimeEncoder {
	return func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.In(loc).Format("2006-01-02 15:04:05.000"))
	}
}

func (l *ZapLogger) WithFields(fields out.LogFields) out.LoggerPort {
	newLogger := &ZapLogger{
		base:          l.base,
		defaultFields: make(out.LogFields, len(l.defaultFields)+len(fields)),
		module:        l.module,
	}

	for k, v := range l.defaultFields {
		newLogger.defaultFields[k] = v
	}
	for k, v := range fields {
		newLogger.defaultFields[k] = v
	}

	return newLogger
}

func (l *ZapLogger) WithModule(module string) out.LoggerPort {
	return &ZapLogger{
		base:          l.base,
		defaultFields: l.defaultFields,
		module:        module,
	}
}

func (l *ZapLogger) Sync() error {
	return l.base.Sync()
}

func (l *ZapLogger) Debug(event string, fields out.LogFields) {
	l.log(out.LogLevelDebug, event, fields)
}

func (l *ZapLogger) Info(event string, fields out.LogFields) {
	l.log(out.LogLevelInfo, event, fields)
}

func (l *ZapLogger) Warn(event string, fields out.LogFields) {
	l.log(out.LogLevelWarn, event, fields)
}

func (l *ZapLogger) Error(event string, fields out.LogFields) {
	l.log(out.LogLevelError, event, fields)
}

func (l *ZapLogger) log(level out.LogLevel, event string, fields out.LogFields) {
	zapFields := make([]zap.Field, 0, len(l.defaultFields)+len(fields)+1)
	zapFields = append(zapFields, zap.String("module", l.module))

	// Поля вызова перекрывают поля по умолчанию
	for k, v := range l.defaultFields {
		if _, overridden := fields[k]; !overridden {
			zapFields = append(zapFields, zap.Any(k, v))
		}
	}
	for k, v := range fields {
		zapFields = append(zapFields, zap.Any(k, v))
	}

	switch level {
	case out.LogLevelDebug:
		l.base.Debug(event, zapFields...)
	case out.LogLevelInfo:
		l.base.Info(event, zapFields...)
	case out.LogLevelWarn:
		l.base.Warn(event, zapFields...)
	case out.LogLevelError:
		l.base.Error(event, zapFields...)
	}
}
