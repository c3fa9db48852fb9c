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

// Package tree holds the contract shared by the ordered tree containers in
// the bst and avl sub-packages. Both containers satisfy Tree so a caller can
// swap one for the other without touching the calling code.
package tree

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// EmptyHeight is the height reported by an empty tree. A tree holding a
// single node has height 0, and the root is at depth 0.
const EmptyHeight = -1

// ErrNotFound is returned (wrapped) by Retrieve and Depth when the key is
// not stored in the tree.
var ErrNotFound = errors.New("key not found")

// Element is a value stored in a tree. Key orders and identifies the
// element; the count payload is mutated in place by callers after a
// Retrieve, so implementations are normally pointer types.
type Element[K constraints.Ordered] interface {
	Key() K
	Count() int
	Add(delta int)
}

// Tree is the public contract of an ordered tree container.
//
// Implementations are not safe for concurrent use. If multiple goroutines
// access a tree and at least one of them inserts, access must be
// serialised externally.
type Tree[K constraints.Ordered, E Element[K]] interface {
	// Insert stores e unless an element with the same key is present.
	// Returns true when a new node was added. Existing elements are never
	// replaced or merged.
	Insert(e E) bool
	// Contains reports whether key is stored.
	Contains(key K) bool
	// Retrieve returns the stored element for key, or an error wrapping
	// ErrNotFound.
	Retrieve(key K) (E, error)
	// Depth returns the number of edges between the root and the node
	// holding key, or an error wrapping ErrNotFound.
	Depth(key K) (int, error)
	// Size counts the stored elements.
	Size() int
	// Height returns the number of edges on the longest root to leaf
	// path, EmptyHeight for an empty tree.
	Height() int
	// Traverse visits every element in ascending key order.
	Traverse(visit func(E))
	// LevelTraverse visits every element breadth first, left to right
	// within a level.
	LevelTraverse(visit func(E))
}
