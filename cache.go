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
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// The trees never change once ingestion is done, so entries only expire
	// to bound memory during long browsing sessions.
	lookupCacheExpiration = 30 * time.Minute
	lookupCacheCleanup    = 5 * time.Minute
)

// NewLookupCache creates a cache for rendered word details
func NewLookupCache() *cache.Cache {
	return cache.New(lookupCacheExpiration, lookupCacheCleanup)
}

func CacheLookup(c *cache.Cache, word string, detail string) {
	c.Set(word, detail, cache.DefaultExpiration)
}

func GetLookup(c *cache.Cache, word string) string {
	val, ok := c.Get(word)
	if !ok {
		return ""
	}
	return val.(string)
}

// GetOrFillLookup returns the rendered detail for word, querying both trees
// only on a cache miss.
func GetOrFillLookup(c *cache.Cache, comp *Comparison, word string) string {
	if detail := GetLookup(c, word); detail != "" {
		return detail
	}

	result, err := comp.Lookup(word)
	if err != nil {
		return fmt.Sprintf("Lookup of %q failed: %v", word, err)
	}
	detail := describeLookup(result, comp.Kinds())
	CacheLookup(c, word, detail)
	return detail
}

// describeLookup formats a lookup as the lines printed by the lookup
// command and shown by the browser.
func describeLookup(result WordLookup, kinds []TreeKind) string {
	if !result.Found {
		return fmt.Sprintf("%s: not found", result.Word)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s: frequency %d", result.Word, result.Frequency)
	for _, kind := range kinds {
		fmt.Fprintf(&b, ", %s depth %d", kind, result.Depths[kind])
	}
	return b.String()
}

// paintLookup colours a describeLookup line for terminal output: found
// words in the info colour, missing ones in the error colour.
func paintLookup(result WordLookup, line string) string {
	if !result.Found {
		return Error + line + Reset
	}
	return Info + line + Reset
}
