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
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), configFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")

	config, err := LoadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig, *config)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfig(t, `
tokens:
  strategy: words
  case: lower
ingest:
  expected_words: 500
output:
  format: markdown
  word_width: 12
`)

	config, err := LoadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "words", config.Tokens.Strategy)
	assert.Equal(t, "lower", config.Tokens.Case)
	assert.Equal(t, uint(500), config.Ingest.ExpectedWords)
	assert.Equal(t, defaultConfig.Ingest.FalsePositiveRate, config.Ingest.FalsePositiveRate)
	assert.Equal(t, "markdown", config.Output.Format)
	assert.Equal(t, 12, config.Output.WordWidth)
	assert.Equal(t, defaultConfig.Log.Level, config.Log.Level)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "tokens:\n  strategy: words\n")
	t.Setenv("WORDTREE_TOKENS_STRATEGY", "shell")
	t.Setenv("WORDTREE_INGEST_PROGRESS", "true")

	config, err := LoadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "shell", config.Tokens.Strategy)
	assert.True(t, config.Ingest.Progress)
}

func TestLoadConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv("WORDTREE_TOKENS_CASE", "lower")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("case", defaultConfig.Tokens.Case, "")
	flags.String("strategy", defaultConfig.Tokens.Strategy, "")
	require.NoError(t, flags.Parse([]string{"--case", "preserve"}))

	config, err := LoadConfig(filepath.Join(t.TempDir(), "none.yaml"), flags)
	require.NoError(t, err)
	assert.Equal(t, "preserve", config.Tokens.Case)
	// an unset flag does not shadow the default
	assert.Equal(t, defaultConfig.Tokens.Strategy, config.Tokens.Strategy)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"strategy", "tokens:\n  strategy: morse\n", "tokens.strategy"},
		{"case", "tokens:\n  case: title\n", "tokens.case"},
		{"format", "output:\n  format: html\n", "output.format"},
		{"log level", "log:\n  level: loud\n", "log.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content), nil)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestValidateRestoresWordWidth(t *testing.T) {
	config := defaultConfig
	config.Output.WordWidth = 0
	require.NoError(t, config.Validate())
	assert.Equal(t, defaultConfig.Output.WordWidth, config.Output.WordWidth)
}

func TestDisplaySettingsCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	config := defaultConfig

	var out bytes.Buffer
	require.NoError(t, displaySettings(&out, path, &config))
	assert.Contains(t, out.String(), "(newly created)")
	assert.Contains(t, out.String(), "strategy: whitespace")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var written Config
	require.NoError(t, yaml.Unmarshal(data, &written))
	assert.Equal(t, defaultConfig, written)

	out.Reset()
	require.NoError(t, displaySettings(&out, path, &config))
	assert.NotContains(t, out.String(), "(newly created)")
}

func TestDisplaySettingsColorsNotes(t *testing.T) {
	setTestColors(t)
	path := filepath.Join(t.TempDir(), configFileName)
	config := defaultConfig

	var out bytes.Buffer
	require.NoError(t, displaySettings(&out, path, &config))
	assert.Contains(t, out.String(), "<warning> (newly created)</>")
	assert.Contains(t, out.String(), "Token strategies: <info>shell, whitespace, words</>")
}
