package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New builds the process logger: JSON to stdout, level from LOG_LEVEL
// (info when unset or unparsable).
func New() *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetOutput(os.Stdout)
	lvl, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)
	return l
}

// WithModule scopes a logger entry to one view-model / adapter.
func WithModule(l *logrus.Logger, module string) *logrus.Entry {
	return l.WithField("module", module)
}
