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
	"fmt"
	"strings"
)

// Strategy splits one line of input into tokens
type Strategy interface {
	Name() string
	Split(line string) ([]string, error)
}

// CaseMode decides how tokens are normalized before counting
type CaseMode string

const (
	CaseUpper    CaseMode = "upper"
	CaseLower    CaseMode = "lower"
	CasePreserve CaseMode = "preserve"
)

// ParseCaseMode validates a configured case mode. The empty string means
// upper case.
func ParseCaseMode(s string) (CaseMode, error) {
	switch m := CaseMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return CaseUpper, nil
	case CaseUpper, CaseLower, CasePreserve:
		return m, nil
	default:
		return "", fmt.Errorf("unknown case mode %q (want upper, lower or preserve)", s)
	}
}

// Normalize applies the case mode to token
func (m CaseMode) Normalize(token string) string {
	switch m {
	case CaseLower:
		return strings.ToLower(token)
	case CasePreserve:
		return token
	default:
		return strings.ToUpper(token)
	}
}
