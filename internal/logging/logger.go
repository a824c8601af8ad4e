package logging

import (
	"alcyxob/athlete-tracker/internal/config"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup configures the process-wide logrus logger from the log and sentry sections.
// Errors, fatals and panics are forwarded to sentry when it is enabled.
func Setup(cfg config.LogConfig, sentryCfg config.SentryConfig, environment, serverName string) error {
	if cfg.JSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	logrus.SetLevel(levelOf(cfg.Level))
	logrus.SetOutput(outputFor(cfg))

	if !sentryCfg.Enabled {
		return nil
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         sentryCfg.DSN,
		Environment: environment,
		ServerName:  serverName,
	})
	if err != nil {
		return fmt.Errorf("sentry init: %w", err)
	}
	logrus.AddHook(NewSentryHook([]logrus.Level{logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel}))
	return nil
}

// levelOf falls back to info for empty or unknown names.
func levelOf(name string) logrus.Level {
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

// outputFor writes to stdout, a rotated file, or both.
func outputFor(cfg config.LogConfig) io.Writer {
	if cfg.File == "" {
		return os.Stdout
	}
	file := &lumberjack.Logger{
		Filename:   logFileName(cfg.File),
		MaxSize:    50, // megabytes
		MaxBackups: 10,
		Compress:   true,
	}
	if !cfg.Stdout {
		return file
	}
	return fanOut{os.Stdout, file}
}

func logFileName(name string) string {
	if filepath.Ext(name) == ".log" {
		return name
	}
	return name + ".log"
}

// fanOut writes to every writer even when some fail; the failures are combined.
type fanOut []io.Writer

func (f fanOut) Write(p []byte) (int, error) {
	var err error
	for _, w := range f {
		if _, werr := w.Write(p); werr != nil {
			err = multierr.Append(err, werr)
		}
	}
	if err != nil {
		return 0, err
	}
	return len(p), nil
}
