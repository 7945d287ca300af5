// Package logging applies the logging fields of the general settings to the
// process-wide logrus logger.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"sculink/internal/types"
	"sync"

	log "github.com/sirupsen/logrus"
)

var (
	mu   sync.Mutex
	file *os.File
)

// Configure replaces output, level and formatter of the standard logger.
// With logging disabled, or with neither stderr nor file selected, output is
// discarded. The previously opened log file is closed.
func Configure(g types.GeneralConfig) error {
	level, err := log.ParseLevel(g.LogLevel)
	if err != nil {
		return types.Err(types.ErrInvalidLogLevel, err, "log level %q", g.LogLevel)
	}

	mu.Lock()
	defer mu.Unlock()

	var writers []io.Writer
	var next *os.File
	if g.LoggingEnabled {
		if g.LoggingStderr {
			writers = append(writers, os.Stderr)
		}
		if g.LoggingFile {
			next, err = openLogFile(g.LogDir, g.LogAppend)
			if err != nil {
				return err
			}
			writers = append(writers, next)
		}
	}

	switch len(writers) {
	case 0:
		log.SetOutput(io.Discard)
	case 1:
		log.SetOutput(writers[0])
	default:
		log.SetOutput(io.MultiWriter(writers...))
	}
	if file != nil {
		_ = file.Close()
	}
	file = next

	colors := g.LogColors
	if g.LoggingStderr && !g.LoggingFile {
		colors = colors || g.LogStderrColors
	}
	log.SetFormatter(&log.TextFormatter{
		ForceColors:   colors,
		DisableColors: !colors,
		FullTimestamp: g.LogDetails,
	})
	log.SetReportCaller(g.LogDetails)
	log.SetLevel(level)
	return nil
}

// LogFilePath is where the log file for dir is written.
func LogFilePath(dir string) string {
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, types.DefaultLogFileName)
}

func openLogFile(dir string, appendMode bool) (*os.File, error) {
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	flags := os.O_CREATE | os.O_WRONLY
	if appendMode {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	return os.OpenFile(LogFilePath(dir), flags, 0o644)
}
