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

package tokenize

import (
	"strings"
	"unicode"

	"github.com/mattn/go-shellwords"
)

// WhitespaceStrategy splits on runs of white space, punctuation stays
// attached to the word.
type WhitespaceStrategy struct{}

func (WhitespaceStrategy) Name() string { return "whitespace" }

func (WhitespaceStrategy) Split(line string) ([]string, error) {
	return strings.Fields(line), nil
}

// ShellStrategy honours shell quoting, so "new york" is a single token.
type ShellStrategy struct {
	parser *shellwords.Parser
}

func NewShellStrategy() *ShellStrategy {
	parser := shellwords.NewParser()
	parser.ParseEnv = false
	parser.ParseBacktick = false
	return &ShellStrategy{parser: parser}
}

func (s *ShellStrategy) Name() string { return "shell" }

// Split keeps going past unquoted shell operators (; & | < >), which
// stop a single Parse call. Parser.Position counts runes. An apostrophe
// between two letters is a contraction, not a quote. Text the parser
// still rejects, such as a stray quote, is split on white space.
func (s *ShellStrategy) Split(line string) ([]string, error) {
	var tokens []string
	rest := []rune(escapeContractions(line))
	for {
		parsed, err := s.parser.Parse(string(rest))
		if err != nil {
			return append(tokens, strings.Fields(unescapeContractions(string(rest)))...), nil
		}
		tokens = append(tokens, parsed...)
		if s.parser.Position < 0 || s.parser.Position >= len(rest) {
			return tokens, nil
		}
		rest = rest[s.parser.Position+1:]
	}
}

func escapeContractions(line string) string {
	runes := []rune(line)
	var b strings.Builder
	for i, r := range runes {
		if r == '\'' && i > 0 && i+1 < len(runes) && unicode.IsLetter(runes[i-1]) && unicode.IsLetter(runes[i+1]) {
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func unescapeContractions(s string) string {
	return strings.ReplaceAll(s, `\'`, "'")
}

// WordsStrategy keeps letters, digits and inner apostrophes; everything
// else separates words.
type WordsStrategy struct{}

func (WordsStrategy) Name() string { return "words" }

func (WordsStrategy) Split(line string) ([]string, error) {
	var tokens []string
	var current strings.Builder
	runes := []rune(line)

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for i, r := range runes {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			current.WriteRune(r)
		case r == '\'' && current.Len() > 0 && i+1 < len(runes) && unicode.IsLetter(runes[i+1]):
			current.WriteRune(r)
		default:
			flush()
		}
	}
	flush()
	return tokens, nil
}
