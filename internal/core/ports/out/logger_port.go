package out

import "strings"

type LogLevel string

const (
	LogLevelDebug LogLevel = "DEBUG"
	LogLevelInfo  LogLevel = "INFO"
	LogLevelWarn  LogLevel = "WARN"
	LogLevelError LogLevel = "ERROR"
)

// ParseLogLevel разбирает уровень из LOG_LEVEL без учета регистра, по умолчанию INFO.
func ParseLogLevel(s string) LogLevel {
	switch level := LogLevel(strings.ToUpper(strings.TrimSpace(s))); level {
	case LogLevelDebug, LogLevelWarn, LogLevelError:
		return level
	default:
		return LogLevelInfo
	}
}

// LogFields - структурные поля события. Ключи в camelCase: weekKey, facilityId.
type LogFields map[string]interface{}

// LoggerPort пишет события с именами вида area.action.result
// (slots.weekly.fetch_failed). Модуль задается через WithModule.
type LoggerPort interface {
	Debug(event string, fields LogFields)
	Info(event string, fields LogFields)
	Warn(event string, fields LogFields)
	Error(event string, fields LogFields)
	WithFields(fields LogFields) LoggerPort
	WithModule(module string) LoggerPort
}
