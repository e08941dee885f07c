package xmladiscover

import (
	"fmt"
	"log"
	"strings"

	"github.com/pkg/errors"
)

type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

var logLevel LogLevel = LogLevelWarn

// SetLogLevel overrides logLevel for xmladiscover library, default is WARN
func SetLogLevel(lv LogLevel) {
	logLevel = lv
}

// ParseLogLevel maps a level name such as "debug" or "WARN" to a LogLevel.
func ParseLogLevel(name string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return LogLevelDebug, nil
	case "info":
		return LogLevelInfo, nil
	case "", "warn", "warning":
		return LogLevelWarn, nil
	case "error":
		return LogLevelError, nil
	}
	return LogLevelWarn, errors.Errorf("unknown log level: %s", name)
}

func LogDebugf(format string, v ...interface{}) {
	if logLevel <= LogLevelDebug {
		format = fmt.Sprintf("xmladiscover.debug: %s", format)
		log.Printf(format, v...)
	}
}

func LogInfof(format string, v ...interface{}) {
	if logLevel <= LogLevelInfo {
		format = fmt.Sprintf("xmladiscover.info: %s", format)
		log.Printf(format, v...)
	}
}

func LogWarnf(format string, v ...interface{}) {
	if logLevel <= LogLevelWarn {
		format = fmt.Sprintf("xmladiscover.warn: %s", format)
		log.Printf(format, v...)
	}
}

func LogErrorf(format string, v ...interface{}) {
	if logLevel <= LogLevelError {
		format = fmt.Sprintf("xmladiscover.error: %s", format)
		log.Printf(format, v...)
	}
}
