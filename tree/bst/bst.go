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

// Package bst provides an unbalanced binary search tree.
//
// Insertion order alone decides the shape of the tree, so sorted input
// degenerates it into a chain. Every walk is iterative for that reason.
package bst

import (
	"fmt"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"golang.org/x/exp/constraints"

	"github.com/cybrota/wordtree/tree"
)

// Node represents an individual element within the tree.
type Node[K constraints.Ordered, E tree.Element[K]] struct {
	elem        E
	left, right *Node[K, E]
}

// Tree is a binary search tree without any balancing.
//
// This implementation is not safe for concurrent use by multiple goroutines.
type Tree[K constraints.Ordered, E tree.Element[K]] struct {
	root *Node[K, E]
}

var _ tree.Tree[string, tree.Element[string]] = (*Tree[string, tree.Element[string]])(nil)

// New returns an empty tree.
func New[K constraints.Ordered, E tree.Element[K]]() *Tree[K, E] {
	return &Tree[K, E]{root: nil}
}

// Insert attaches e as a new leaf. An element whose key is already stored
// is ignored and Insert returns false.
func (t *Tree[K, E]) Insert(e E) bool {
	newNode := &Node[K, E]{elem: e}
	if t.root == nil {
		t.root = newNode
		return true
	}

	key := e.Key()
	current := t.root
	for {
		switch k := current.elem.Key(); {
		case key < k:
			if current.left == nil {
				current.left = newNode
				return true
			}
			current = current.left
		case key > k:
			if current.right == nil {
				current.right = newNode
				return true
			}
			current = current.right
		default:
			return false
		}
	}
}

// find returns the node holding key and its depth, or nil.
func (t *Tree[K, E]) find(key K) (*Node[K, E], int) {
	depth := 0
	current := t.root
	for current != nil {
		switch k := current.elem.Key(); {
		case key < k:
			current = current.left
		case key > k:
			current = current.right
		default:
			return current, depth
		}
		depth++
	}
	return nil, 0
}

func (t *Tree[K, E]) Contains(key K) bool {
	n, _ := t.find(key)
	return n != nil
}

// Retrieve returns the stored element, not a copy: mutating its count is
// visible to every later lookup.
func (t *Tree[K, E]) Retrieve(key K) (E, error) {
	n, _ := t.find(key)
	if n == nil {
		var zero E
		return zero, fmt.Errorf("retrieve %v: %w", key, tree.ErrNotFound)
	}
	return n.elem, nil
}

func (t *Tree[K, E]) Depth(key K) (int, error) {
	n, depth := t.find(key)
	if n == nil {
		return 0, fmt.Errorf("depth of %v: %w", key, tree.ErrNotFound)
	}
	return depth, nil
}

// Size walks the whole tree.
func (t *Tree[K, E]) Size() int {
	size := 0
	t.LevelTraverse(func(E) { size++ })
	return size
}

// Height counts the levels of a breadth first walk. The empty tree has
// height tree.EmptyHeight.
func (t *Tree[K, E]) Height() int {
	height := tree.EmptyHeight
	t.levels(func(*Node[K, E]) {}, func(level int) { height = level })
	return height
}

// Traverse visits the elements in ascending key order using an explicit
// stack.
func (t *Tree[K, E]) Traverse(visit func(E)) {
	var stack []*Node[K, E]
	current := t.root
	for current != nil || len(stack) > 0 {
		for current != nil {
			stack = append(stack, current)
			current = current.left
		}
		current = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visit(current.elem)
		current = current.right
	}
}

// LevelTraverse visits the elements level by level, left to right.
func (t *Tree[K, E]) LevelTraverse(visit func(E)) {
	t.levels(func(n *Node[K, E]) { visit(n.elem) }, nil)
}

type queued[K constraints.Ordered, E tree.Element[K]] struct {
	node  *Node[K, E]
	level int
}

// levels runs a breadth first walk. onNode is called per node; onLevel,
// when set, is called once each time the walk enters a new level.
func (t *Tree[K, E]) levels(onNode func(*Node[K, E]), onLevel func(int)) {
	if t.root == nil {
		return
	}
	queue := linkedlistqueue.New()
	queue.Enqueue(queued[K, E]{node: t.root})
	lastLevel := -1
	for !queue.Empty() {
		v, _ := queue.Dequeue()
		item := v.(queued[K, E])
		if item.level != lastLevel {
			lastLevel = item.level
			if onLevel != nil {
				onLevel(item.level)
			}
		}
		onNode(item.node)
		if item.node.left != nil {
			queue.Enqueue(queued[K, E]{node: item.node.left, level: item.level + 1})
		}
		if item.node.right != nil {
			queue.Enqueue(queued[K, E]{node: item.node.right, level: item.level + 1})
		}
	}
}
