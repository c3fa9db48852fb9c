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

// Package treetest contains helpers shared by the tests of the tree
// implementations.
package treetest

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cybrota/wordtree/tree"
)

// Item is a minimal tree.Element keyed by an int.
type Item struct {
	K int
	N int
}

func NewItem(k int) *Item {
	return &Item{K: k, N: 1}
}

func (i *Item) Key() int      { return i.K }
func (i *Item) Count() int    { return i.N }
func (i *Item) Add(delta int) { i.N += delta }

// InsertAll inserts one Item per key and returns how many were new.
func InsertAll(tr tree.Tree[int, *Item], keys ...int) int {
	added := 0
	for _, k := range keys {
		if tr.Insert(NewItem(k)) {
			added++
		}
	}
	return added
}

// InOrderKeys collects the keys visited by Traverse.
func InOrderKeys(tr tree.Tree[int, *Item]) []int {
	var keys []int
	tr.Traverse(func(e *Item) { keys = append(keys, e.K) })
	return keys
}

// LevelOrderKeys collects the keys visited by LevelTraverse.
func LevelOrderKeys(tr tree.Tree[int, *Item]) []int {
	var keys []int
	tr.LevelTraverse(func(e *Item) { keys = append(keys, e.K) })
	return keys
}

// RequireOrdered fails the test unless the in-order walk is strictly
// ascending.
func RequireOrdered(t testing.TB, tr tree.Tree[int, *Item]) {
	t.Helper()
	keys := InOrderKeys(tr)
	for i := 1; i < len(keys); i++ {
		require.Less(t, keys[i-1], keys[i], "in-order walk not ascending at index %d", i)
	}
}

// RequireSameElements fails the test unless both walks visit the same
// elements.
func RequireSameElements(t testing.TB, tr tree.Tree[int, *Item]) {
	t.Helper()
	inOrder := InOrderKeys(tr)
	levelOrder := LevelOrderKeys(tr)
	slices.Sort(levelOrder)
	require.Equal(t, inOrder, levelOrder)
}

// RandomKeys returns n keys drawn from [0, limit) with a fixed seed, so
// duplicates are likely when limit is small.
func RandomKeys(seed int64, n, limit int) []int {
	r := rand.New(rand.NewSource(seed))
	keys := make([]int, n)
	for i := range keys {
		keys[i] = r.Intn(limit)
	}
	return keys
}

// Distinct counts the distinct values in keys.
func Distinct(keys []int) int {
	seen := make(map[int]struct{}, len(keys))
	for _, k := range keys {
		seen[k] = struct{}{}
	}
	return len(seen)
}
