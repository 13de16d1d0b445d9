// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// Remove - removes a specific value from the tree
// returns false if the value was not present
func (tree *Tree[T]) Remove(value T) bool {
	removed := false
	tree.root, removed = tree.remove(value, tree.root)
	if removed {
		tree.count -= 1
	}
	return removed
}

// internal delete routine
// returns the possibly updated root of the sub-tree
func (tree *Tree[T]) remove(value T, p *node[T]) (*node[T], bool) {
	if nil == p { // value not in tree
		return nil, false
	}
	removed := false
	if value < p.value {
		p.left, removed = tree.remove(value, p.left)
	} else if value > p.value {
		p.right, removed = tree.remove(value, p.right)
	} else {
		// found: delete p
		if nil == p.left && nil == p.right {
			return nil, true
		} else if nil == p.left {
			q := p.right
			p.right = nil
			return q, true
		} else if nil == p.right {
			q := p.left
			p.left = nil
			return q, true
		}

		// two children: promote the predecessor, which has no
		// right child so its own removal cannot reach this point
		value = predecessor(p)
		p.value = value
		p.left, removed = tree.remove(value, p.left)
	}
	return tree.fixUp(p), removed
}

// internal: largest value in the left sub-tree of p
func predecessor[T cmp.Ordered](p *node[T]) T {
	t := p.left
	for nil != t.right {
		t = t.right
	}
	return t.value
}
