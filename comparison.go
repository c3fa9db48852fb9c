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
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/willf/bloom"

	"github.com/cybrota/wordtree/tree"
	"github.com/cybrota/wordtree/tree/avl"
	"github.com/cybrota/wordtree/tree/bst"
)

// Comparison feeds one token stream to a BST and an AVL tree. Both trees
// store the very same *WordStat per word, so a count update through one
// tree is seen by the other.
type Comparison struct {
	Source string
	trees  [2]WordTree

	seen       *bloom.BloomFilter
	tokens     int
	bloomSkips int
}

// NewComparison sizes the bloom pre-filter for expectedWords distinct words
// at the given false positive rate.
func NewComparison(source string, expectedWords uint, falsePositiveRate float64) *Comparison {
	if expectedWords == 0 {
		expectedWords = defaultConfig.Ingest.ExpectedWords
	}
	if falsePositiveRate <= 0 || falsePositiveRate >= 1 {
		falsePositiveRate = defaultConfig.Ingest.FalsePositiveRate
	}
	return &Comparison{
		Source: source,
		trees: [2]WordTree{
			KindBST: bst.New[string, *WordStat](),
			KindAVL: avl.New[string, *WordStat](),
		},
		seen: bloom.NewWithEstimates(expectedWords, falsePositiveRate),
	}
}

// Tree returns the tree of the given kind
func (c *Comparison) Tree(kind TreeKind) WordTree {
	return c.trees[kind]
}

// Kinds lists the compared trees in report order
func (c *Comparison) Kinds() []TreeKind {
	return []TreeKind{KindBST, KindAVL}
}

// Add counts one occurrence of word. A word the bloom filter has never
// seen is new for sure and skips the tree lookup; otherwise the AVL tree
// decides and its stored element is incremented in place.
func (c *Comparison) Add(word string) {
	c.tokens++
	stat := NewWordStat(word)

	if c.seen.TestAndAddString(word) {
		if existing, err := c.trees[KindAVL].Retrieve(word); err == nil {
			existing.Add(1)
			stat = existing
		}
	} else {
		c.bloomSkips++
	}

	for _, t := range c.trees {
		t.Insert(stat)
	}
}

// Tokens is the number of Add calls so far
func (c *Comparison) Tokens() int {
	return c.tokens
}

// BloomSkips is how many tokens were known to be new without a tree lookup
func (c *Comparison) BloomSkips() int {
	return c.bloomSkips
}

// TreeStats summarises one tree for the report tables
type TreeStats struct {
	Kind  TreeKind
	Nodes int
	// Height in edges, tree.EmptyHeight when nothing was ingested.
	Height int
	// NodesAccessed is the number of nodes a search visits, summed over
	// every ingested token: sum of Frequency * (depth + 1).
	NodesAccessed int
}

// Stats walks each tree and computes its summary
func (c *Comparison) Stats() ([]TreeStats, error) {
	var stats []TreeStats
	for _, kind := range c.Kinds() {
		t := c.trees[kind]
		s := TreeStats{Kind: kind, Nodes: t.Size(), Height: t.Height()}

		var walkErr error
		t.Traverse(func(w *WordStat) {
			if walkErr != nil {
				return
			}
			depth, err := t.Depth(w.Word)
			if err != nil {
				walkErr = err
				return
			}
			s.NodesAccessed += w.Frequency * (depth + 1)
		})
		if walkErr != nil {
			return nil, fmt.Errorf("%s: %w", kind, walkErr)
		}
		stats = append(stats, s)
	}
	log.Debug().Int("tokens", c.tokens).Int("bloom_skips", c.bloomSkips).Msg("computed tree statistics")
	return stats, nil
}

// WordLookup is the answer to a single word query
type WordLookup struct {
	Word      string
	Found     bool
	Frequency int
	Depths    map[TreeKind]int
}

// Lookup queries both trees for word
func (c *Comparison) Lookup(word string) (WordLookup, error) {
	result := WordLookup{Word: word, Depths: make(map[TreeKind]int, len(c.trees))}
	for _, kind := range c.Kinds() {
		t := c.trees[kind]
		stat, err := t.Retrieve(word)
		if errors.Is(err, tree.ErrNotFound) {
			return result, nil
		} else if err != nil {
			return result, err
		}
		depth, err := t.Depth(word)
		if err != nil {
			return result, fmt.Errorf("%s: %w", kind, err)
		}
		result.Frequency = stat.Frequency
		result.Depths[kind] = depth
	}
	result.Found = true
	return result, nil
}
