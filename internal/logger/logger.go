// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logger configures the logrus logger used by the command-line tools.
package logger

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Output formats accepted by New.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// New creates a logger writing to w with the given level and format.
// An unknown level falls back to info; an unknown format is an error.
func New(w io.Writer, level, format string) (*log.Logger, error) {
	l := log.New()
	l.SetOutput(w)
	l.SetLevel(ParseLevel(level))

	switch strings.ToLower(format) {
	case "", FormatText:
		l.SetFormatter(&log.TextFormatter{
			DisableTimestamp: true,
			PadLevelText:     true,
		})
	case FormatJSON:
		l.SetFormatter(&log.JSONFormatter{})
	default:
		return nil, errors.Errorf("unknown log format %q (want %s or %s)", format, FormatText, FormatJSON)
	}
	return l, nil
}

// Default creates a text logger writing to stderr at info level.
func Default() *log.Logger {
	l, _ := New(os.Stderr, "info", FormatText)
	return l
}

// ParseLevel converts a level name to a logrus level, defaulting to info.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

type loggerKey struct{}

// WithContext adds the logger to the context.
func WithContext(ctx context.Context, l log.FieldLogger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// FromContext retrieves a logger from the context.
// If no logger is found, returns a default logger.
func FromContext(ctx context.Context) log.FieldLogger {
	if l, ok := ctx.Value(loggerKey{}).(log.FieldLogger); ok {
		return l
	}
	return Default()
}
