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
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"

	"github.com/cybrota/wordtree/tokenize"
)

// Tokenizer turns raw lines into normalized words
type Tokenizer struct {
	Strategy tokenize.Strategy
	Case     tokenize.CaseMode
}

// NewTokenizer resolves the configured strategy and case mode
func NewTokenizer(config *Config) (*Tokenizer, error) {
	strategy, err := tokenize.NewStrategyManager().Get(config.Tokens.Strategy)
	if err != nil {
		return nil, err
	}
	mode, err := tokenize.ParseCaseMode(config.Tokens.Case)
	if err != nil {
		return nil, err
	}
	return &Tokenizer{Strategy: strategy, Case: mode}, nil
}

// ReadTokens scans r line by line and calls fn once per normalized token,
// in input order.
func (tk *Tokenizer) ReadTokens(r io.Reader, fn func(word string)) error {
	scanner := bufio.NewScanner(r)
	// Increase buffer size for long lines (whole paragraphs on one line)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		tokens, err := tk.Strategy.Split(scanner.Text())
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		for _, token := range tokens {
			if word := tk.Case.Normalize(token); word != "" {
				fn(word)
			}
		}
	}

	return scanner.Err()
}

// ingestFile reads path into a new Comparison. With showProgress a byte
// based progress bar is drawn on stderr.
func ingestFile(path string, config *Config, showProgress bool) (*Comparison, error) {
	tk, err := NewTokenizer(config)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("input file %s not found", path)
		}
		return nil, err
	}
	defer file.Close()

	var r io.Reader = file
	var bar *progressbar.ProgressBar
	if showProgress {
		size := int64(-1)
		if stat, err := file.Stat(); err == nil {
			size = stat.Size()
		}
		bar = progressbar.NewOptions64(size,
			progressbar.OptionSetDescription(fmt.Sprintf("📖 Reading %s", filepath.Base(path))),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowBytes(true),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(os.Stderr)
			}),
		)
		r = io.TeeReader(file, bar)
	}

	c := NewComparison(path, config.Ingest.ExpectedWords, config.Ingest.FalsePositiveRate)
	if err := tk.ReadTokens(r, c.Add); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if bar != nil {
		_ = bar.Finish()
	}

	log.Debug().
		Str("file", path).
		Str("strategy", tk.Strategy.Name()).
		Int("tokens", c.Tokens()).
		Int("distinct", c.Tree(KindAVL).Size()).
		Int("bloom_skips", c.BloomSkips()).
		Msg("ingested tokens")
	return c, nil
}
