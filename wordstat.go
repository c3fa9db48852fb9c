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

	"github.com/cybrota/wordtree/tree"
)

// WordStat is a word and the number of times it was seen
type WordStat struct {
	Word      string
	Frequency int // Incremented on each occurrence
}

func NewWordStat(word string) *WordStat {
	return &WordStat{Word: word, Frequency: 1}
}

func (w *WordStat) Key() string   { return w.Word }
func (w *WordStat) Count() int    { return w.Frequency }
func (w *WordStat) Add(delta int) { w.Frequency += delta }

// WordTree is the tree contract instantiated for word statistics
type WordTree = tree.Tree[string, *WordStat]

// TreeKind names one of the compared tree implementations
type TreeKind int

const (
	KindBST TreeKind = iota
	KindAVL
)

func (k TreeKind) String() string {
	switch k {
	case KindBST:
		return "BST"
	case KindAVL:
		return "AVL"
	default:
		return fmt.Sprintf("TreeKind(%d)", int(k))
	}
}

// Title is the long name printed in report headings
func (k TreeKind) Title() string {
	if k == KindAVL {
		return "AVL Tree"
	}
	return "Binary Search Tree"
}
