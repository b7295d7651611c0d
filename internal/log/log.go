// Package log configures logrus from viper and exposes the leveled helpers
// used by the CLI. Logs go to stderr so they never mix with command output.
package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/marcodamonte/typedrills/internal/config"
)

// Setup applies log.level and log.json. An unknown level falls back to warn.
func Setup() {
	SetOutput(os.Stderr)

	if viper.GetBool(config.LogJSON) {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}

	lvl, err := logrus.ParseLevel(viper.GetString(config.LogLevel))
	if err != nil {
		logrus.SetLevel(logrus.WarnLevel)
		logrus.Warnf("unknown log level %q, using warn", viper.GetString(config.LogLevel))
		return
	}
	logrus.SetLevel(lvl)
}

func SetOutput(w io.Writer) { logrus.SetOutput(w) }

// With returns an entry carrying the given fields.
func With(fields logrus.Fields) *logrus.Entry { return logrus.WithFields(fields) }

func Errorf(format string, args ...any) { logrus.Errorf(format, args...) }
func Warnf(format string, args ...any)  { logrus.Warnf(format, args...) }
func Infof(format string, args ...any)  { logrus.Infof(format, args...) }
func Debugf(format string, args ...any) { logrus.Debugf(format, args...) }
