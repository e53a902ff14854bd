// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ava-labs/avalanchego/utils/logging"
	"gopkg.in/yaml.v2"

	"github.com/ava-labs/palletvm/consts"
)

const (
	defaultLogLevel   = "info"
	defaultLogDisplay = "info"
	defaultLogFormat  = "auto"
	defaultLogFolder  = ".pallet-cli"
)

// Config controls the CLI driver. None of it affects runtime semantics.
type Config struct {
	LogLevel        string `yaml:"logLevel"`
	LogDisplayLevel string `yaml:"logDisplayLevel"`
	LogFormat       string `yaml:"logFormat"`
	LogDirectory    string `yaml:"logDirectory"`
	// LogMaxSize is the maximum size of a log file in megabytes before it is
	// rotated.
	LogMaxSize  int  `yaml:"logMaxSize"`
	LogMaxFiles int  `yaml:"logMaxFiles"`
	LogMaxAge   int  `yaml:"logMaxAge"` // days
	LogCompress bool `yaml:"logCompress"`

	// GenesisFile seeds the runtime. The built-in genesis is used when empty.
	GenesisFile string `yaml:"genesisFile"`

	logLevel     logging.Level
	displayLevel logging.Level
	logFormat    logging.Format
}

func NewDefaultConfig() *Config {
	c := &Config{
		LogLevel:        defaultLogLevel,
		LogDisplayLevel: defaultLogDisplay,
		LogFormat:       defaultLogFormat,
		LogDirectory:    filepath.Join(os.TempDir(), defaultLogFolder),
		LogMaxSize:      8,
		LogMaxFiles:     4,
		LogMaxAge:       7,
	}
	// Defaults always parse.
	_ = c.Verify()
	return c
}

// Load overlays the YAML document [b] on the default config.
func Load(b []byte) (*Config, error) {
	c := NewDefaultConfig()
	if len(b) > 0 {
		if err := yaml.UnmarshalStrict(b, c); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}
	if err := c.Verify(); err != nil {
		return nil, err
	}
	return c, nil
}

// Verify parses the log settings. It must be called again after fields are
// modified.
func (c *Config) Verify() error {
	var err error
	c.logLevel, err = logging.ToLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	c.displayLevel, err = logging.ToLevel(c.LogDisplayLevel)
	if err != nil {
		return fmt.Errorf("invalid log display level %q: %w", c.LogDisplayLevel, err)
	}
	c.logFormat, err = logging.ToFormat(c.LogFormat, os.Stderr.Fd())
	if err != nil {
		return fmt.Errorf("invalid log format %q: %w", c.LogFormat, err)
	}
	return nil
}

func (c *Config) GetLogLevel() logging.Level        { return c.logLevel }
func (c *Config) GetLogDisplayLevel() logging.Level { return c.displayLevel }
func (c *Config) GetLogFormat() logging.Format      { return c.logFormat }
func (c *Config) GetGenesisFile() string            { return c.GenesisFile }

// GetLoggingConfig translates the config into the logger factory format.
func (c *Config) GetLoggingConfig() logging.Config {
	return logging.Config{
		RotatingWriterConfig: logging.RotatingWriterConfig{
			MaxSize:   c.LogMaxSize,
			MaxFiles:  c.LogMaxFiles,
			MaxAge:    c.LogMaxAge,
			Directory: c.LogDirectory,
			Compress:  c.LogCompress,
		},
		LogLevel:     c.logLevel,
		DisplayLevel: c.displayLevel,
		LogFormat:    c.logFormat,
		MsgPrefix:    consts.Name,
	}
}
