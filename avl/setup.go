// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// Statistics - number of each kind of rotation performed
type Statistics struct {
	LL uint64 `json:"ll"`
	RR uint64 `json:"rr"`
	LR uint64 `json:"lr"`
	RL uint64 `json:"rl"`
}

// Tree - type to hold the root node of a tree
type Tree[T cmp.Ordered] struct {
	root      *node[T]
	count     int
	rotations Statistics
}

// New - create an initially empty tree
func New[T cmp.Ordered]() *Tree[T] {
	return &Tree[T]{
		root:  nil,
		count: 0,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[T]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[T]) Count() int {
	return tree.count
}

// Height - height of the root node, -1 for an empty tree
func (tree *Tree[T]) Height() int {
	return tree.root.subtreeHeight()
}

// Rotations - counts of rotations since creation or the last Clear
func (tree *Tree[T]) Rotations() Statistics {
	return tree.rotations
}

// Clear - remove every node leaving an empty tree
//
// calling Clear on an empty tree does nothing
func (tree *Tree[T]) Clear() {
	teardown(tree.root)
	tree.root = nil
	tree.count = 0
	tree.rotations = Statistics{}
}

// internal: release a sub-tree children first
func teardown[T cmp.Ordered](p *node[T]) {
	if nil == p {
		return
	}
	teardown(p.left)
	teardown(p.right)
	p.left = nil
	p.right = nil
}
