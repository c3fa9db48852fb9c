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
	"reflect"
	"testing"

	"github.com/cybrota/wordtree/tree"
)

func newTestComparison(words ...string) *Comparison {
	c := NewComparison("test.txt", 100, 0.01)
	for _, w := range words {
		c.Add(w)
	}
	return c
}

func inOrderWords(t WordTree) []string {
	var words []string
	t.Traverse(func(w *WordStat) { words = append(words, w.Word) })
	return words
}

func TestComparisonMergesCounts(t *testing.T) {
	c := newTestComparison("THE", "CAT", "THE", "HAT", "THE", "CAT")

	for _, kind := range c.Kinds() {
		tr := c.Tree(kind)
		if got := tr.Size(); got != 3 {
			t.Errorf("%s size = %d; want 3", kind, got)
		}
		if got := inOrderWords(tr); !reflect.DeepEqual(got, []string{"CAT", "HAT", "THE"}) {
			t.Errorf("%s in-order = %v", kind, got)
		}
		stat, err := tr.Retrieve("THE")
		if err != nil {
			t.Fatalf("%s retrieve THE: %v", kind, err)
		}
		if stat.Frequency != 3 {
			t.Errorf("%s frequency of THE = %d; want 3", kind, stat.Frequency)
		}
	}

	if c.Tokens() != 6 {
		t.Errorf("Tokens() = %d; want 6", c.Tokens())
	}
}

func TestComparisonSharesElements(t *testing.T) {
	c := newTestComparison("ONE", "TWO")

	fromBST, err := c.Tree(KindBST).Retrieve("ONE")
	if err != nil {
		t.Fatal(err)
	}
	fromAVL, err := c.Tree(KindAVL).Retrieve("ONE")
	if err != nil {
		t.Fatal(err)
	}
	if fromBST != fromAVL {
		t.Fatalf("trees hold different elements for ONE")
	}

	c.Add("ONE")
	if fromBST.Frequency != 2 {
		t.Errorf("frequency after second ONE = %d; want 2", fromBST.Frequency)
	}
}

func TestComparisonBloomSkips(t *testing.T) {
	c := newTestComparison("A", "B", "C", "A")

	// every first occurrence is new; the repeated A must reach the tree
	if c.BloomSkips() > 3 {
		t.Errorf("BloomSkips() = %d; want at most 3", c.BloomSkips())
	}
	stat, err := c.Tree(KindAVL).Retrieve("A")
	if err != nil {
		t.Fatal(err)
	}
	if stat.Frequency != 2 {
		t.Errorf("frequency of A = %d; want 2", stat.Frequency)
	}
}

func TestComparisonTinyBloomFilterStaysCorrect(t *testing.T) {
	// A one word filter saturates fast; false positives must only cost a
	// lookup, never a lost word.
	c := NewComparison("tiny", 1, 0.5)
	words := []string{"K", "J", "I", "H", "G", "F", "E", "D", "C", "B", "A"}
	for _, w := range words {
		c.Add(w)
	}
	if got := c.Tree(KindBST).Size(); got != len(words) {
		t.Errorf("BST size = %d; want %d", got, len(words))
	}
	if got := c.Tree(KindAVL).Size(); got != len(words) {
		t.Errorf("AVL size = %d; want %d", got, len(words))
	}
}

func TestComparisonStats(t *testing.T) {
	// Sorted input: the BST degenerates into a chain, the AVL tree stays
	// perfectly balanced.
	c := newTestComparison("A", "B", "C", "D", "E", "F", "G", "G")

	stats, err := c.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if len(stats) != 2 {
		t.Fatalf("len(stats) = %d; want 2", len(stats))
	}

	bstStats, avlStats := stats[0], stats[1]
	if bstStats.Kind != KindBST || avlStats.Kind != KindAVL {
		t.Fatalf("unexpected order: %v, %v", bstStats.Kind, avlStats.Kind)
	}
	if bstStats.Nodes != 7 || bstStats.Height != 6 {
		t.Errorf("BST nodes/height = %d/%d; want 7/6", bstStats.Nodes, bstStats.Height)
	}
	if avlStats.Nodes != 7 || avlStats.Height != 2 {
		t.Errorf("AVL nodes/height = %d/%d; want 7/2", avlStats.Nodes, avlStats.Height)
	}

	// BST: depths 0..6, G counted twice -> 1+2+3+4+5+6+7 + 7 = 35
	if bstStats.NodesAccessed != 35 {
		t.Errorf("BST nodes accessed = %d; want 35", bstStats.NodesAccessed)
	}
	// AVL: D at 0, B F at 1, A C E G at 2, G counted twice -> 1+2*2+3*4 + 3 = 20
	if avlStats.NodesAccessed != 20 {
		t.Errorf("AVL nodes accessed = %d; want 20", avlStats.NodesAccessed)
	}
}

func TestComparisonStatsEmpty(t *testing.T) {
	stats, err := newTestComparison().Stats()
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range stats {
		if s.Nodes != 0 || s.Height != tree.EmptyHeight || s.NodesAccessed != 0 {
			t.Errorf("%s stats on empty input = %+v", s.Kind, s)
		}
	}
}

func TestComparisonLookup(t *testing.T) {
	c := newTestComparison("M", "C", "X", "C")

	got, err := c.Lookup("C")
	if err != nil {
		t.Fatal(err)
	}
	want := WordLookup{Word: "C", Found: true, Frequency: 2, Depths: map[TreeKind]int{KindBST: 1, KindAVL: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Lookup(C) = %+v; want %+v", got, want)
	}

	missing, err := c.Lookup("Q")
	if err != nil {
		t.Fatal(err)
	}
	if missing.Found {
		t.Errorf("Lookup(Q) reported found")
	}
}
