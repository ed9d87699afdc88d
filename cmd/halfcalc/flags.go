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

package main

import (
	"context"
	"io"
	"os"
	"runtime"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"github.com/ajroetker/go-half/internal/logger"
)

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// options holds the global flags, filled in by urfave/cli and then by the
// config file for flags that were not set.
type options struct {
	configPath string
	format     string
	logLevel   string
	logFormat  string
	workers    int
}

func globalFlags(o *options) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "path to config.yaml (default $XDG_CONFIG_HOME/halfcalc/config.yaml)",
			Destination: &o.configPath,
		},
		&cli.StringFlag{
			Name:        "format",
			Aliases:     []string{"o"},
			Usage:       "output format (text, json, yaml)",
			Value:       formatText,
			Destination: &o.format,
		},
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error)",
			Value:       "info",
			Destination: &o.logLevel,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "log format (text, json)",
			Value:       logger.FormatText,
			Destination: &o.logFormat,
		},
		&cli.IntFlag{
			Name:        "workers",
			Aliases:     []string{"j"},
			Usage:       "worker goroutines for verify and table",
			Value:       runtime.NumCPU(),
			Destination: &o.workers,
		},
	}
}

// before runs ahead of every subcommand, once its flags are parsed: it merges
// the config file and installs the logger in the context.
func (o *options) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	path := o.configPath
	if path == "" {
		path = configPath()
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return ctx, err
	}
	applyConfig(cmd, cfg, o)

	switch o.format {
	case formatText, formatJSON, formatYAML:
	default:
		return ctx, errors.Errorf("unknown output format %q", o.format)
	}
	if o.workers < 1 {
		return ctx, errors.Errorf("workers must be positive, got %d", o.workers)
	}

	l, err := logger.New(errWriter(cmd), o.logLevel, o.logFormat)
	if err != nil {
		return ctx, errors.Wrap(err, "configuring logging")
	}
	return logger.WithContext(ctx, l), nil
}

func outWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func errWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}
	return os.Stderr
}
