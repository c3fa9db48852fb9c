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

// Package avl provides a height balanced binary search tree.
package avl

import (
	"fmt"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"golang.org/x/exp/constraints"

	"github.com/cybrota/wordtree/tree"
)

// Node holds one element and the height of its subtree, 1 for a leaf.
type Node[K constraints.Ordered, E tree.Element[K]] struct {
	elem   E
	height int
	left   *Node[K, E]
	right  *Node[K, E]
}

// Tree represents an AVL tree. After every insertion the heights of the
// two subtrees of any node differ by at most one.
//
// This implementation is not safe for concurrent use by multiple goroutines.
// If multiple goroutines access a tree concurrently, and at least one of
// them inserts, it must be synchronized externally.
type Tree[K constraints.Ordered, E tree.Element[K]] struct {
	root *Node[K, E]
}

var _ tree.Tree[string, tree.Element[string]] = (*Tree[string, tree.Element[string]])(nil)

func New[K constraints.Ordered, E tree.Element[K]]() *Tree[K, E] {
	return &Tree[K, E]{}
}

func (t *Tree[K, E]) getHeight(node *Node[K, E]) int {
	if node == nil {
		return 0
	}
	return node.height
}

func (t *Tree[K, E]) updateHeight(node *Node[K, E]) {
	node.height = max(t.getHeight(node.left), t.getHeight(node.right)) + 1
}

func (t *Tree[K, E]) getBalanceFactor(node *Node[K, E]) int {
	if node == nil {
		return 0
	}
	return t.getHeight(node.left) - t.getHeight(node.right)
}

func (t *Tree[K, E]) rotateLeft(node *Node[K, E]) *Node[K, E] {
	pivot := node.right

	node.right = pivot.left
	pivot.left = node

	// demoted node first, it is now a child of pivot
	t.updateHeight(node)
	t.updateHeight(pivot)

	return pivot
}

func (t *Tree[K, E]) rotateRight(node *Node[K, E]) *Node[K, E] {
	pivot := node.left

	node.left = pivot.right
	pivot.right = node

	t.updateHeight(node)
	t.updateHeight(pivot)

	return pivot
}

// Insert adds e and restores the balance of every ancestor of the new
// node. Returns false, leaving the tree untouched, when the key is
// already stored.
func (t *Tree[K, E]) Insert(e E) bool {
	var inserted bool
	t.root = t.insertRecursive(t.root, e, &inserted)
	return inserted
}

func (t *Tree[K, E]) insertRecursive(node *Node[K, E], e E, inserted *bool) *Node[K, E] {
	if node == nil {
		*inserted = true
		return &Node[K, E]{elem: e, height: 1}
	}

	key := e.Key()
	if key < node.elem.Key() {
		node.left = t.insertRecursive(node.left, e, inserted)
	} else if key > node.elem.Key() {
		node.right = t.insertRecursive(node.right, e, inserted)
	} else {
		return node
	}

	if !*inserted {
		return node
	}

	t.updateHeight(node)
	return t.rebalance(node)
}

// rebalance applies at most one single or double rotation at node and
// returns the root of the resulting subtree.
func (t *Tree[K, E]) rebalance(node *Node[K, E]) *Node[K, E] {
	balanceFactor := t.getBalanceFactor(node)

	// Left-heavy
	if balanceFactor > 1 {
		if t.getBalanceFactor(node.left) >= 0 {
			return t.rotateRight(node)
		}
		node.left = t.rotateLeft(node.left)
		return t.rotateRight(node)
	}

	// Right-heavy
	if balanceFactor < -1 {
		if t.getBalanceFactor(node.right) <= 0 {
			return t.rotateLeft(node)
		}
		node.right = t.rotateRight(node.right)
		return t.rotateLeft(node)
	}

	return node
}

// search descends from the root and returns the node holding key with its
// depth.
func (t *Tree[K, E]) search(key K) (*Node[K, E], int) {
	return searchNode(t.root, key, 0)
}

func searchNode[K constraints.Ordered, E tree.Element[K]](node *Node[K, E], key K, depth int) (*Node[K, E], int) {
	if node == nil {
		return nil, 0
	}

	if key < node.elem.Key() {
		return searchNode(node.left, key, depth+1)
	} else if key > node.elem.Key() {
		return searchNode(node.right, key, depth+1)
	}
	return node, depth
}

func (t *Tree[K, E]) Contains(key K) bool {
	node, _ := t.search(key)
	return node != nil
}

// Retrieve returns the stored element so that its payload can be updated
// in place.
func (t *Tree[K, E]) Retrieve(key K) (E, error) {
	node, _ := t.search(key)
	if node == nil {
		var zero E
		return zero, fmt.Errorf("retrieve %v: %w", key, tree.ErrNotFound)
	}
	return node.elem, nil
}

// Depth returns the number of edges from the root to key. The root is at
// depth 0.
func (t *Tree[K, E]) Depth(key K) (int, error) {
	node, depth := t.search(key)
	if node == nil {
		return 0, fmt.Errorf("depth of %v: %w", key, tree.ErrNotFound)
	}
	return depth, nil
}

func (t *Tree[K, E]) Size() int {
	return countNodes(t.root)
}

func countNodes[K constraints.Ordered, E tree.Element[K]](node *Node[K, E]) int {
	if node == nil {
		return 0
	}
	return countNodes(node.left) + countNodes(node.right) + 1
}

// Height measures the longest root to leaf path in edges by walking the
// tree, tree.EmptyHeight when there is no root.
func (t *Tree[K, E]) Height() int {
	return measure(t.root)
}

func measure[K constraints.Ordered, E tree.Element[K]](node *Node[K, E]) int {
	if node == nil {
		return tree.EmptyHeight
	}
	return max(measure(node.left), measure(node.right)) + 1
}

// Traverse walks the tree in order: left subtree, node, right subtree.
func (t *Tree[K, E]) Traverse(visit func(E)) {
	inOrderTraversal(t.root, visit)
}

func inOrderTraversal[K constraints.Ordered, E tree.Element[K]](node *Node[K, E], visit func(E)) {
	if node == nil {
		return
	}
	inOrderTraversal(node.left, visit)
	visit(node.elem)
	inOrderTraversal(node.right, visit)
}

// LevelTraverse walks the tree breadth first.
func (t *Tree[K, E]) LevelTraverse(visit func(E)) {
	if t.root == nil {
		return
	}
	queue := linkedlistqueue.New()
	queue.Enqueue(t.root)
	for !queue.Empty() {
		v, _ := queue.Dequeue()
		node := v.(*Node[K, E])
		visit(node.elem)
		if node.left != nil {
			queue.Enqueue(node.left)
		}
		if node.right != nil {
			queue.Enqueue(node.right)
		}
	}
}
