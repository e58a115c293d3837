// Package util provides common utilities including logging helpers,
// file system paths, and small generic helpers.
package util

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	loggerMu sync.Mutex
	logger   = newLogger(io.Discard)
)

func newLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.JSONFormatter{})
	return l
}

// Logger returns the process logger. It discards output until ConfigureLogging
// is called, so a TUI never writes log lines over its own screen.
func Logger() *logrus.Logger {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	return logger
}

// ConfigureLogging sends logs to path at the given level. The returned closer
// releases the file.
func ConfigureLogging(path, level string) (io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, err
	}
	l := newLogger(f)
	if lvl, err := logrus.ParseLevel(level); err == nil {
		l.SetLevel(lvl)
	}
	loggerMu.Lock()
	logger = l
	loggerMu.Unlock()
	return f, nil
}

// SetLogger replaces the process logger.
func SetLogger(l *logrus.Logger) {
	loggerMu.Lock()
	logger = l
	loggerMu.Unlock()
}

// Component returns an entry tagged with the component name.
func Component(name string) *logrus.Entry {
	return Logger().WithField("component", name)
}

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		Logger().WithError(err).Error(context)
	}
}

// MustSucceed logs and exits on error. Use sparingly.
func MustSucceed(context string, err error) {
	if err != nil {
		Logger().WithError(err).Fatal(context)
	}
}
