package main

import (
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Log rotation settings.
const (
	logMaxSize    = 10 // megabytes
	logMaxBackups = 5
	logMaxAge     = 30 // days
)

// newLogger returns a logger writing to a rotating file at path, and a
// function that closes the file. With an empty path, logs are discarded
// so nothing ever draws over the interactive browser.
func newLogger(path string, verbose bool) (*slog.Logger, func() error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() error { return nil }
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    logMaxSize,
		MaxBackups: logMaxBackups,
		MaxAge:     logMaxAge,
		Compress:   true,
		LocalTime:  true,
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), w.Close
}
