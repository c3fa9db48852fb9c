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
	"strings"
	"testing"
	"time"

	"github.com/patrickmn/go-cache"
)

func TestCacheLookupAndGetLookup(t *testing.T) {
	c := NewLookupCache()
	word := "TREE"
	detail := "TREE: frequency 2, BST depth 0, AVL depth 0"

	// Initially, GetLookup should return an empty string for a missing word.
	if got := GetLookup(c, word); got != "" {
		t.Errorf("GetLookup(%q) = %q; want empty string", word, got)
	}

	CacheLookup(c, word, detail)

	if got := GetLookup(c, word); got != detail {
		t.Errorf("GetLookup(%q) = %q; want %q", word, got, detail)
	}
}

func TestCacheExpiration(t *testing.T) {
	c := cache.New(100*time.Millisecond, 50*time.Millisecond)
	word := "EPHEMERAL"

	CacheLookup(c, word, "EPHEMERAL: not found")
	if got := GetLookup(c, word); got == "" {
		t.Fatalf("GetLookup(%q) returned nothing right after caching", word)
	}

	time.Sleep(150 * time.Millisecond)

	if got := GetLookup(c, word); got != "" {
		t.Errorf("After expiration, GetLookup(%q) = %q; want empty string", word, got)
	}
}

func TestGetOrFillLookup(t *testing.T) {
	comp := newTestComparison("A", "B", "A")
	c := NewLookupCache()

	want := "A: frequency 2, BST depth 0, AVL depth 0"
	if got := GetOrFillLookup(c, comp, "A"); got != want {
		t.Errorf("GetOrFillLookup(A) = %q; want %q", got, want)
	}
	if got := GetLookup(c, "A"); got != want {
		t.Errorf("detail was not cached: %q", got)
	}

	// A cached detail is served even though the trees could answer differently.
	CacheLookup(c, "B", "stale")
	if got := GetOrFillLookup(c, comp, "B"); got != "stale" {
		t.Errorf("GetOrFillLookup(B) = %q; want cached value", got)
	}

	if got := GetOrFillLookup(c, comp, "Z"); got != "Z: not found" {
		t.Errorf("GetOrFillLookup(Z) = %q; want not found", got)
	}
}

// setTestColors replaces the ANSI colours with readable markers for the
// duration of a test.
func setTestColors(t *testing.T) {
	t.Helper()
	green, info, warning, errColor, reset := Green, Info, Warning, Error, Reset
	Green, Info, Warning, Error, Reset = "<green>", "<info>", "<warning>", "<error>", "</>"
	t.Cleanup(func() {
		Green, Info, Warning, Error, Reset = green, info, warning, errColor, reset
	})
}

func TestPaintLookup(t *testing.T) {
	setTestColors(t)
	comp := newTestComparison("A")

	found, _ := comp.Lookup("A")
	if got := paintLookup(found, "A: frequency 1"); got != "<info>A: frequency 1</>" {
		t.Errorf("paintLookup(found) = %q", got)
	}

	missing, _ := comp.Lookup("Z")
	if got := paintLookup(missing, "Z: not found"); got != "<error>Z: not found</>" {
		t.Errorf("paintLookup(missing) = %q", got)
	}
}

func TestPaintLookupWithoutColors(t *testing.T) {
	InitializeColors(new(strings.Builder))
	missing := WordLookup{Word: "Z"}
	if got := paintLookup(missing, "Z: not found"); got != "Z: not found" {
		t.Errorf("paintLookup without a terminal = %q", got)
	}
}
