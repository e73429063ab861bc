// Package logger holds the process-wide structured logger.
// Init must be called once at startup before any other package logs.
package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the shared logger instance for the whole game.
var Log = logrus.New()

// Init configures the shared logger from the environment.
// LOG_LEVEL selects the verbosity (default "info"), LOG_FORMAT selects
// "json" or "text" output (default "text").
func Init() {
	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	Log.SetOutput(os.Stdout)
}
