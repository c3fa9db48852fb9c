// Copyright 2025 Naren Yellavula
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
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/cybrota/wordtree/tokenize"
)

const (
	configFileName = ".wordtree.yaml"
	envPrefix      = "WORDTREE"
)

type TokensConfig struct {
	Strategy string `yaml:"strategy" mapstructure:"strategy"`
	Case     string `yaml:"case" mapstructure:"case"`
}

type IngestConfig struct {
	Progress          bool    `yaml:"progress" mapstructure:"progress"`
	ExpectedWords     uint    `yaml:"expected_words" mapstructure:"expected_words"`
	FalsePositiveRate float64 `yaml:"false_positive_rate" mapstructure:"false_positive_rate"`
}

type OutputConfig struct {
	Format    string `yaml:"format" mapstructure:"format"`
	WordWidth int    `yaml:"word_width" mapstructure:"word_width"`
}

type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level"`
}

type Config struct {
	Tokens TokensConfig `yaml:"tokens" mapstructure:"tokens"`
	Ingest IngestConfig `yaml:"ingest" mapstructure:"ingest"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

var defaultConfig = Config{
	Tokens: TokensConfig{
		Strategy: tokenize.DefaultStrategy,
		Case:     string(tokenize.CaseUpper),
	},
	Ingest: IngestConfig{
		Progress:          false,
		ExpectedWords:     10000,
		FalsePositiveRate: 0.01,
	},
	Output: OutputConfig{
		Format:    string(FormatPlain),
		WordWidth: 30,
	},
	Log: LogConfig{
		Level: "info",
	},
}

// flagKeys maps config keys to the command line flags that override them
var flagKeys = map[string]string{
	"tokens.strategy": "strategy",
	"tokens.case":     "case",
	"ingest.progress": "progress",
	"output.format":   "format",
	"log.level":       "log-level",
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// LoadConfig merges, from lowest to highest priority, the built-in
// defaults, the YAML file at path, WORDTREE_* environment variables and the
// flags that were set on the command line. An empty path selects
// ~/.wordtree.yaml. A missing or unreadable file is not an error: the
// remaining sources still apply.
func LoadConfig(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		if p, err := getConfigPath(); err == nil {
			path = p
		}
	}
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				log.Warn().Err(err).Str("path", path).Msg("failed to read configuration, using defaults")
			}
		}
	}

	if flags != nil {
		for key, name := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %q: %w", name, err)
				}
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("tokens.strategy", defaultConfig.Tokens.Strategy)
	v.SetDefault("tokens.case", defaultConfig.Tokens.Case)
	v.SetDefault("ingest.progress", defaultConfig.Ingest.Progress)
	v.SetDefault("ingest.expected_words", defaultConfig.Ingest.ExpectedWords)
	v.SetDefault("ingest.false_positive_rate", defaultConfig.Ingest.FalsePositiveRate)
	v.SetDefault("output.format", defaultConfig.Output.Format)
	v.SetDefault("output.word_width", defaultConfig.Output.WordWidth)
	v.SetDefault("log.level", defaultConfig.Log.Level)
}

// Validate rejects values no command could work with
func (c *Config) Validate() error {
	if _, err := tokenize.NewStrategyManager().Get(c.Tokens.Strategy); err != nil {
		return fmt.Errorf("tokens.strategy: %w", err)
	}
	if _, err := tokenize.ParseCaseMode(c.Tokens.Case); err != nil {
		return fmt.Errorf("tokens.case: %w", err)
	}
	if _, err := ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level)); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if c.Output.WordWidth <= 0 {
		c.Output.WordWidth = defaultConfig.Output.WordWidth
	}
	return nil
}

func createDefaultConfigFile(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// displaySettings prints the effective configuration, creating the default
// file first when there is none.
func displaySettings(w io.Writer, configPath string, config *Config) error {
	if configPath == "" {
		p, err := getConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
		configPath = p
	}

	note := ""
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := createDefaultConfigFile(configPath); err != nil {
			return err
		}
		note = Warning + " (newly created)" + Reset
	}

	fmt.Fprintf(w, "🔧 wordtree Configuration Settings\n")
	fmt.Fprintf(w, "═══════════════════════════════════\n\n")
	fmt.Fprintf(w, "📍 Config file: %s%s\n\n", configPath, note)

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	fmt.Fprintf(w, "📊 Effective settings (file < %s_* env < flags):\n\n", envPrefix)
	for _, line := range strings.Split(strings.TrimRight(string(data), "\n"), "\n") {
		fmt.Fprintf(w, "  %s\n", line)
	}
	fmt.Fprintf(w, "\n💡 Token strategies: %s%s%s\n", Info, strings.Join(tokenize.NewStrategyManager().Names(), ", "), Reset)
	return nil
}
