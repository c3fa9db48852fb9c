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
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/cybrota/wordtree/tokenize"
)

func testConfig(strategy, caseMode string) *Config {
	config := defaultConfig
	config.Tokens.Strategy = strategy
	config.Tokens.Case = caseMode
	return &config
}

func TestReadTokens(t *testing.T) {
	tests := []struct {
		name     string
		strategy string
		caseMode string
		input    string
		want     []string
	}{
		{
			name:     "whitespace upper",
			strategy: "whitespace",
			caseMode: "upper",
			input:    "the cat\n\tsat on  the mat\n",
			want:     []string{"THE", "CAT", "SAT", "ON", "THE", "MAT"},
		},
		{
			name:     "punctuation is kept by whitespace strategy",
			strategy: "whitespace",
			caseMode: "preserve",
			input:    "Hello, world!",
			want:     []string{"Hello,", "world!"},
		},
		{
			name:     "words strategy lower",
			strategy: "words",
			caseMode: "lower",
			input:    "Hello, World! It's fine.",
			want:     []string{"hello", "world", "it's", "fine"},
		},
		{
			name:     "shell strategy keeps quoted phrases",
			strategy: "shell",
			caseMode: "upper",
			input:    `say "hello there" now`,
			want:     []string{"SAY", "HELLO THERE", "NOW"},
		},
		{
			name:     "empty input",
			strategy: "whitespace",
			caseMode: "upper",
			input:    "",
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk, err := NewTokenizer(testConfig(tt.strategy, tt.caseMode))
			if err != nil {
				t.Fatal(err)
			}
			var got []string
			if err := tk.ReadTokens(strings.NewReader(tt.input), func(w string) { got = append(got, w) }); err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("tokens = %q; want %q", got, tt.want)
			}
		})
	}
}

type failOnStrategy struct{ word string }

func (failOnStrategy) Name() string { return "fail" }

func (f failOnStrategy) Split(line string) ([]string, error) {
	if strings.Contains(line, f.word) {
		return nil, errors.New("cannot split")
	}
	return strings.Fields(line), nil
}

func TestReadTokensReportsLine(t *testing.T) {
	tk := &Tokenizer{Strategy: failOnStrategy{word: "broken"}, Case: tokenize.CaseUpper}
	err := tk.ReadTokens(strings.NewReader("fine line\nbroken line\n"), func(string) {})
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error = %v; want it to name line 2", err)
	}
}

func TestReadTokensShellEnglishText(t *testing.T) {
	tk, err := NewTokenizer(testConfig("shell", "upper"))
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	input := "Don't stop now.\nThe dogs' bones.\n\"she said\" it\n"
	if err := tk.ReadTokens(strings.NewReader(input), func(w string) { got = append(got, w) }); err != nil {
		t.Fatal(err)
	}
	want := []string{"DON'T", "STOP", "NOW.", "THE", "DOGS'", "BONES.", "SHE SAID", "IT"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tokens = %q; want %q", got, want)
	}
}

func TestNewTokenizerRejectsUnknownStrategy(t *testing.T) {
	if _, err := NewTokenizer(testConfig("morse", "upper")); err == nil {
		t.Error("expected an error for an unknown strategy")
	}
}

func TestIngestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("b a c\na b\nb\n"), 0644); err != nil {
		t.Fatal(err)
	}

	comp, err := ingestFile(path, testConfig("whitespace", "upper"), false)
	if err != nil {
		t.Fatal(err)
	}
	if comp.Source != path {
		t.Errorf("Source = %q; want %q", comp.Source, path)
	}
	if comp.Tokens() != 6 {
		t.Errorf("Tokens() = %d; want 6", comp.Tokens())
	}

	want := map[string]int{"A": 2, "B": 3, "C": 1}
	for word, freq := range want {
		result, err := comp.Lookup(word)
		if err != nil {
			t.Fatal(err)
		}
		if !result.Found || result.Frequency != freq {
			t.Errorf("Lookup(%s) = %+v; want frequency %d", word, result, freq)
		}
	}
}

func TestIngestFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.txt")
	_, err := ingestFile(path, testConfig("whitespace", "upper"), false)
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("error = %v; want a not found error", err)
	}
}
