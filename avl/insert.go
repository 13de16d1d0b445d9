// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new value into the tree
// returns false if the value was already present
func (tree *Tree[T]) Insert(value T) bool {
	added := false
	tree.root, added = tree.insert(value, tree.root)
	if added {
		tree.count += 1
	}
	return added
}

// internal routine for insert
// returns the possibly updated root of the sub-tree
func (tree *Tree[T]) insert(value T, p *node[T]) (*node[T], bool) {
	if nil == p { // insert new node
		return &node[T]{value: value}, true
	}
	added := false
	if value < p.value {
		p.left, added = tree.insert(value, p.left)
	} else if value > p.value {
		p.right, added = tree.insert(value, p.right)
	} else {
		return p, false // already present
	}
	return tree.fixUp(p), added
}
