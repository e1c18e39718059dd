package advanced

import (
	"io"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// The package is silent unless a logger is installed. The solvers only ever
// log at Debug level, to trace the decisions behind a classification.
var loggerPtr atomic.Pointer[logrus.Logger]

func init() {
	loggerPtr.Store(newSilentLogger())
}

func newSilentLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}

// SetLogger installs the logger used for debug traces. Pass nil to silence the
// package again. It is safe to call concurrently with any geometry function.
func SetLogger(l *logrus.Logger) {
	if l == nil {
		l = newSilentLogger()
	}
	loggerPtr.Store(l)
}

// trace returns the logger when Debug is enabled, and nil otherwise. Callers
// check for nil before building fields, so the silent path costs one load.
func trace() *logrus.Logger {
	l := loggerPtr.Load()
	if !l.IsLevelEnabled(logrus.DebugLevel) {
		return nil
	}
	return l
}
