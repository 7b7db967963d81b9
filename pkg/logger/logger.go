// Package logger builds zap loggers from settings, with optional size-based
// file rotation.
package logger

import (
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/hxann/go-toolbox/pkg/settings"
)

const (
	JSONEncoderName    = "json"
	ConsoleEncoderName = "console"
)

var defaultEncoderConfig = zapcore.EncoderConfig{
	TimeKey:        "ts",
	LevelKey:       "level",
	NameKey:        "logger",
	CallerKey:      "caller",
	FunctionKey:    zapcore.OmitKey,
	MessageKey:     "msg",
	StacktraceKey:  "stacktrace",
	LineEnding:     zapcore.DefaultLineEnding,
	EncodeLevel:    zapcore.LowercaseLevelEncoder,
	EncodeTime:     zapcore.RFC3339TimeEncoder,
	EncodeDuration: zapcore.SecondsDurationEncoder,
	EncodeCaller:   zapcore.ShortCallerEncoder,
}

// New builds a logger from cfg. Output always goes to stderr; when
// cfg.FileLogName is set, it is additionally written to that file with
// size-based rotation.
func New(cfg settings.Logger) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", cfg.LogLevel)
	}

	encoder, err := newEncoder(cfg.Encoder)
	if err != nil {
		return nil, err
	}

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), level),
	}

	if cfg.FileLogName != "" {
		fileSink := zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.FileLogName,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		})
		cores = append(cores, zapcore.NewCore(encoder, fileSink, level))
	}

	logger := zap.New(
		zapcore.NewTee(cores...),
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.PanicLevel),
	)

	return logger, nil
}

// Nop returns a logger that discards everything. Library components use it
// as the default when no logger is injected.
func Nop() *zap.Logger {
	return zap.NewNop()
}

func newEncoder(name string) (zapcore.Encoder, error) {
	switch name {
	case JSONEncoderName, "":
		return zapcore.NewJSONEncoder(defaultEncoderConfig), nil
	case ConsoleEncoderName:
		return zapcore.NewConsoleEncoder(defaultEncoderConfig), nil
	default:
		return nil, errors.Errorf("unknown log encoder %q", name)
	}
}
