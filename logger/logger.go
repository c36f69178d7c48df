package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. Init configures it.
var Log = logrus.New()

// Init sets the level and formatter of Log. Unknown levels fall back to info;
// any format other than "json" is the text formatter.
func Init(level, format string) *logrus.Logger {
	return Configure(Log, os.Stdout, level, format)
}

func Configure(l *logrus.Logger, out io.Writer, level, format string) *logrus.Logger {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	if strings.ToLower(format) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}
	l.SetOutput(out)
	return l
}

// Component returns an entry tagged with the subsystem name.
func Component(name string) *logrus.Entry {
	return Log.WithField("component", name)
}
