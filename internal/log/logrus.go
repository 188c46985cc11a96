package log

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var logger *logrusLogger

type logrusLogger struct {
	log *logrus.Logger
}

func init() {
	logger = &logrusLogger{log: logrus.New()}
}

// GetLogger returns the process-wide logger. Safe to call before Init; the
// logger then runs with logrus defaults.
func GetLogger() Logger {
	return logger
}

// Init configures the global logger from config. Console output is always
// enabled; a rotating file appender is added when configured.
func Init(cfg Config) error {
	level, err := logrus.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	logger.log.SetLevel(level)

	switch strings.ToLower(cfg.Format) {
	case "json":
		logger.log.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		logger.log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return fmt.Errorf("unsupported log format %q (must be json or text)", cfg.Format)
	}

	writers := []io.Writer{os.Stdout}
	if cfg.File.Enabled {
		writers = append(writers, &lumberjack.Logger{
			Filename:   cfg.File.Path,
			MaxSize:    cfg.File.MaxSizeMB,
			MaxBackups: cfg.File.MaxBackups,
			MaxAge:     cfg.File.MaxAgeDays,
			Compress:   cfg.File.Compress,
		})
	}
	logger.log.SetOutput(io.MultiWriter(writers...))

	return nil
}

func (l *logrusLogger) Debug(args ...interface{}) { l.log.Debug(args...) }
func (l *logrusLogger) Debugf(format string, args ...interface{}) {
	l.log.Debugf(format, args...)
}

func (l *logrusLogger) Info(args ...interface{}) { l.log.Info(args...) }
func (l *logrusLogger) Infof(format string, args ...interface{}) {
	l.log.Infof(format, args...)
}

func (l *logrusLogger) Warn(args ...interface{}) { l.log.Warn(args...) }
func (l *logrusLogger) Warnf(format string, args ...interface{}) {
	l.log.Warnf(format, args...)
}

func (l *logrusLogger) Error(args ...interface{}) { l.log.Error(args...) }
func (l *logrusLogger) Errorf(format string, args ...interface{}) {
	l.log.Errorf(format, args...)
}

func (l *logrusLogger) Fatal(args ...interface{}) { l.log.Fatal(args...) }
func (l *logrusLogger) Fatalf(format string, args ...interface{}) {
	l.log.Fatalf(format, args...)
}

func (l *logrusLogger) WithField(field string, value interface{}) Logger {
	return &entryLogger{entry: l.log.WithField(field, value)}
}

func (l *logrusLogger) WithFields(fields map[string]interface{}) Logger {
	return &entryLogger{entry: l.log.WithFields(fields)}
}

func (l *logrusLogger) WithError(err error) Logger {
	return &entryLogger{entry: l.log.WithError(err)}
}

func (l *logrusLogger) IsDebugEnabled() bool {
	return l.log.IsLevelEnabled(logrus.DebugLevel)
}

// entryLogger carries accumulated fields.
type entryLogger struct {
	entry *logrus.Entry
}

func (l *entryLogger) Debug(args ...interface{}) { l.entry.Debug(args...) }
func (l *entryLogger) Debugf(format string, args ...interface{}) {
	l.entry.Debugf(format, args...)
}

func (l *entryLogger) Info(args ...interface{}) { l.entry.Info(args...) }
func (l *entryLogger) Infof(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

func (l *entryLogger) Warn(args ...interface{}) { l.entry.Warn(args...) }
func (l *entryLogger) Warnf(format string, args ...interface{}) {
	l.entry.Warnf(format, args...)
}

func (l *entryLogger) Error(args ...interface{}) { l.entry.Error(args...) }
func (l *entryLogger) Errorf(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}

func (l *entryLogger) Fatal(args ...interface{}) { l.entry.Fatal(args...) }
func (l *entryLogger) Fatalf(format string, args ...interface{}) {
	l.entry.Fatalf(format, args...)
}

func (l *entryLogger) WithField(field string, value interface{}) Logger {
	return &entryLogger{entry: l.entry.WithField(field, value)}
}

func (l *entryLogger) WithFields(fields map[string]interface{}) Logger {
	return &entryLogger{entry: l.entry.WithFields(fields)}
}

func (l *entryLogger) WithError(err error) Logger {
	return &entryLogger{entry: l.entry.WithError(err)}
}

func (l *entryLogger) IsDebugEnabled() bool {
	return l.entry.Logger.IsLevelEnabled(logrus.DebugLevel)
}
