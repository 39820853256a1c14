// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package common

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/swiss/pkg/swiss"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the user's configuration of swiss.
type Config struct {
	// System is the Swiss system used for snapshots which don't name one.
	System string `yaml:"system"`

	Checklist swiss.Limits `yaml:"checklist"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		System:    swiss.Burstein.String(),
		Checklist: swiss.DefaultLimits,
	}
}

// LoadConfig reads the configuration file at the given path. Settings
// missing from the file, or a missing file, take their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logrus.WithField("file", path).Debug("No configuration file, using defaults")
		return DefaultConfig(), nil
	}

	if err != nil {
		return nil, err
	}

	config, err := DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logrus.WithFields(logrus.Fields{
		"file":      path,
		"system":    config.System,
		"max-bytes": config.Checklist.MaxBytes,
	}).Debug("Loaded configuration")

	return config, nil
}

// DecodeConfig decodes a yaml configuration on top of the defaults.
func DecodeConfig(r io.Reader) (*Config, error) {
	config := DefaultConfig()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(config); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if _, err := swiss.ParseSystem(config.System); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if config.Checklist.MaxBytes < 0 {
		return nil, fmt.Errorf("%w: negative checklist byte limit %d", ErrInvalidConfig, config.Checklist.MaxBytes)
	}

	return config, nil
}

// SwissSystem returns the configured default Swiss system.
func (config *Config) SwissSystem() swiss.System {
	system, err := swiss.ParseSystem(config.System)
	if err != nil {
		// Configurations are validated when decoded.
		panic(err)
	}

	return system
}
