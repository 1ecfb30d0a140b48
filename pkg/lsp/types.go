package lsp

import (
	"github.com/rs/zerolog"
	"github.com/walteh/mdwrap/pkg/host"
)

// MessageType is the severity of window/showMessage and window/logMessage.
type MessageType int

const (
	Error   MessageType = 1
	Warning MessageType = 2
	Info    MessageType = 3
	Log     MessageType = 4
	Debug   MessageType = 5
)

func (mt MessageType) String() string {
	switch mt {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	case Log:
		return "log"
	case Debug:
		return "debug"
	default:
		return "unknown"
	}
}

// LogMessageParams is a window/logMessage notification. The extra fields
// carry the structured part of the zerolog event.
type LogMessageParams struct {
	Type         MessageType    `json:"type"`
	Message      string         `json:"message"`
	Source       string         `json:"source,omitempty"`
	Time         string         `json:"time,omitempty"`
	Extra        map[string]any `json:"extra,omitempty"`
	IsDependency bool           `json:"is_dependency,omitempty"`
}

func ParseMessageTypeFromZerolog(level string) MessageType {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return Log
	}
	switch lvl {
	case zerolog.PanicLevel, zerolog.FatalLevel, zerolog.ErrorLevel:
		return Error
	case zerolog.WarnLevel:
		return Warning
	case zerolog.InfoLevel:
		return Info
	case zerolog.DebugLevel, zerolog.TraceLevel:
		return Debug
	default:
		return Log
	}
}

func messageTypeOf(level host.Level) MessageType {
	switch level {
	case host.LevelError:
		return Error
	case host.LevelWarning:
		return Warning
	default:
		return Info
	}
}
