// Copyright 2026 PingCAP, Inc.
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

package config

import (
	"github.com/BurntSushi/toml"
	"github.com/pingcap/errors"
	"github.com/vexdb/vexcast/pkg/util/logutil"
)

const (
	// DefMaxChunkSize is the default upper bound of rows in one batch.
	DefMaxChunkSize = 1024
	// MaxChunkSizeUpperBound is the largest max-chunk-size accepted.
	MaxChunkSizeUpperBound = 1 << 20
)

// Config contains configuration options.
type Config struct {
	Log        Log        `toml:"log" json:"log"`
	Evaluation Evaluation `toml:"evaluation" json:"evaluation"`
}

// Log is the log section of config.
type Log struct {
	// Log level.
	Level string `toml:"level" json:"level"`
	// Log format. one of json, text, or console.
	Format string `toml:"format" json:"format"`
	// Disable automatic timestamps in output.
	DisableTimestamp bool `toml:"disable-timestamp" json:"disable-timestamp"`
	// File log config.
	File logutil.FileLogConfig `toml:"file" json:"file"`
}

// Evaluation is the evaluation section of config.
type Evaluation struct {
	// EnableEncodingPeeling lets a cast over a dictionary or constant vector
	// evaluate only the distinct values and rewrap the result.
	EnableEncodingPeeling bool `toml:"enable-encoding-peeling" json:"enable-encoding-peeling"`
	MaxChunkSize          int  `toml:"max-chunk-size" json:"max-chunk-size"`
	TrackMemory           bool `toml:"track-memory" json:"track-memory"`
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		Log: Log{
			Level:  logutil.DefaultLogLevel,
			Format: logutil.DefaultLogFormat,
			File:   logutil.NewFileLogConfig(logutil.DefaultLogMaxSize),
		},
		Evaluation: Evaluation{
			EnableEncodingPeeling: true,
			MaxChunkSize:          DefMaxChunkSize,
		},
	}
}

// Load loads config options from a toml file on top of the defaults.
func Load(confFile string) (*Config, error) {
	c := NewConfig()
	if confFile == "" {
		return c, nil
	}
	metaData, err := toml.DecodeFile(confFile, c)
	if err != nil {
		return nil, errors.Trace(err)
	}
	if undecoded := metaData.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Errorf("config file %s contained invalid configuration options: %v", confFile, undecoded)
	}
	if err := c.Valid(); err != nil {
		return nil, err
	}
	return c, nil
}

// Valid checks if this config is valid.
func (c *Config) Valid() error {
	if c.Evaluation.MaxChunkSize <= 0 || c.Evaluation.MaxChunkSize > MaxChunkSizeUpperBound {
		return errors.Errorf("evaluation.max-chunk-size should be in (0, %d], got %d",
			MaxChunkSizeUpperBound, c.Evaluation.MaxChunkSize)
	}
	switch c.Log.Format {
	case "text", "json", "console":
	default:
		return errors.Errorf("log.format should be one of text, json or console, got %q", c.Log.Format)
	}
	return nil
}

// ToLogConfig converts *Log to *logutil.LogConfig.
func (l *Log) ToLogConfig() *logutil.LogConfig {
	return logutil.NewLogConfig(l.Level, l.Format, l.File, l.DisableTimestamp)
}
