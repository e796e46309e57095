package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var log zerolog.Logger

func init() {
	Init(os.Getenv("ENVIRONMENT"))
}

// Init configures the process logger. Development gets a human readable console
// writer with debug enabled; every other environment logs JSON at info level.
func Init(environment string) {
	var out io.Writer = os.Stdout
	level := zerolog.InfoLevel

	if environment == "development" {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
		level = zerolog.DebugLevel
	}

	log = zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// SetOutput redirects the logger, mostly for tests.
func SetOutput(w io.Writer) {
	log = log.Output(w)
}

// Get returns the underlying zerolog logger for code that wants structured fields.
func Get() *zerolog.Logger {
	return &log
}

func Info(format string, v ...interface{}) {
	log.Info().CallerSkipFrame(1).Caller().Msgf(format, v...)
}

func Error(format string, v ...interface{}) {
	log.Error().CallerSkipFrame(1).Caller().Msgf(format, v...)
}

func Debug(format string, v ...interface{}) {
	log.Debug().CallerSkipFrame(1).Caller().Msgf(format, v...)
}

func Warn(format string, v ...interface{}) {
	log.Warn().CallerSkipFrame(1).Caller().Msgf(format, v...)
}

// LogPhotoError records a failed photo operation without interrupting the caller.
func LogPhotoError(photoID, action string, err error) {
	log.Warn().Str("photo_id", photoID).Str("action", action).Err(err).Msg("photo operation failed")
}
