// Package logging provides the logrus-backed igdb.Logger used by the CLI.
package logging

import (
	"io"

	"github.com/fivetwenty-io/igdb/pkg/igdb"
	"github.com/sirupsen/logrus"
)

// Package-private logger instance, isolated from applications that also use
// logrus. Do not use logrus.StandardLogger() here.
var logger = logrus.New()

// SetLevel controls the logger level.
func SetLevel(level logrus.Level) {
	logger.SetLevel(level)
}

// SetVerbose switches between debug and warn levels.
func SetVerbose(verbose bool) {
	if verbose {
		logger.SetLevel(logrus.DebugLevel)

		return
	}

	logger.SetLevel(logrus.WarnLevel)
}

// SetOutput redirects log output.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// SetFormatter customizes the log formatter.
func SetFormatter(f logrus.Formatter) {
	logger.SetFormatter(f)
}

// Logger exposes the underlying logger for hooks.
func Logger() *logrus.Logger {
	return logger
}

// Adapter implements igdb.Logger on top of a logrus logger.
type Adapter struct {
	entry *logrus.Logger
}

// New returns an adapter over the package logger.
func New() *Adapter {
	return &Adapter{entry: logger}
}

// NewWith returns an adapter over the given logger.
func NewWith(l *logrus.Logger) *Adapter {
	return &Adapter{entry: l}
}

// Debug implements igdb.Logger.
func (a *Adapter) Debug(msg string, fields map[string]interface{}) {
	a.entry.WithFields(fields).Debug(msg)
}

// Info implements igdb.Logger.
func (a *Adapter) Info(msg string, fields map[string]interface{}) {
	a.entry.WithFields(fields).Info(msg)
}

// Warn implements igdb.Logger.
func (a *Adapter) Warn(msg string, fields map[string]interface{}) {
	a.entry.WithFields(fields).Warn(msg)
}

// Error implements igdb.Logger.
func (a *Adapter) Error(msg string, fields map[string]interface{}) {
	a.entry.WithFields(fields).Error(msg)
}

var _ igdb.Logger = (*Adapter)(nil)
