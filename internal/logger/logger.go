// Package logger initializes the process-wide zerolog logger.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// Options defines logger initialization parameters.
type Options struct {
	Level  string // debug, info, warn, error; default info
	Pretty bool   // human console output instead of JSON
	File   string // optional rotating log file

	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Init sets up the global logger: console output on stderr (stdout carries
// the run summary) plus optional file rotation.
func Init(opts Options) {
	var writers []io.Writer

	if opts.File != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    defaultInt(opts.MaxSizeMB, 20),
			MaxBackups: defaultInt(opts.MaxBackups, 3),
			MaxAge:     defaultInt(opts.MaxAgeDays, 14),
		})
	}

	if opts.Pretty {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		writers = append(writers, os.Stderr)
	}

	level, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
	if err != nil || opts.Level == "" {
		level = zerolog.InfoLevel
	}

	log.Logger = zerolog.New(io.MultiWriter(writers...)).
		Level(level).
		With().Timestamp().
		Logger()
}

func defaultInt(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
