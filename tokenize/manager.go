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
	"sort"
	"strings"
)

// DefaultStrategy matches a plain whitespace scanner.
const DefaultStrategy = "whitespace"

// StrategyManager resolves strategies by name
type StrategyManager struct {
	strategies map[string]Strategy
}

// NewStrategyManager creates a manager with every built-in strategy
// registered
func NewStrategyManager() *StrategyManager {
	manager := &StrategyManager{strategies: make(map[string]Strategy)}

	manager.RegisterStrategy(WhitespaceStrategy{})
	manager.RegisterStrategy(NewShellStrategy())
	manager.RegisterStrategy(WordsStrategy{})

	return manager
}

// RegisterStrategy registers a strategy, replacing any with the same name
func (sm *StrategyManager) RegisterStrategy(strategy Strategy) {
	sm.strategies[strategy.Name()] = strategy
}

// Get returns the named strategy. An empty name selects DefaultStrategy.
func (sm *StrategyManager) Get(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = DefaultStrategy
	}
	strategy, ok := sm.strategies[name]
	if !ok {
		return nil, fmt.Errorf("unknown token strategy %q (available: %s)", name, strings.Join(sm.Names(), ", "))
	}
	return strategy, nil
}

// Names lists the registered strategies in alphabetical order
func (sm *StrategyManager) Names() []string {
	names := make([]string, 0, len(sm.strategies))
	for name := range sm.strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
