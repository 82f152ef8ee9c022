package logger

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	log  *logrus.Logger
	once sync.Once
)

// Init configures the process-wide logger. Unknown levels fall back to info.
func Init(level string) {
	l := GetLogger()

	lvl, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		l.WithField("level", level).Warn("Unknown log level, using info")
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)
}

// GetLogger returns the process-wide logger, creating it on first use
func GetLogger() *logrus.Logger {
	once.Do(func() {
		log = logrus.New()
		log.SetOutput(os.Stdout)
		log.SetFormatter(&logrus.JSONFormatter{})
		log.SetLevel(logrus.InfoLevel)
	})
	return log
}

// SetOutput redirects the process-wide logger, e.g. to stderr for CLI use
func SetOutput(w io.Writer) {
	GetLogger().SetOutput(w)
}
