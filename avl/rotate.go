// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"

	"github.com/bitmark-inc/avltree/fault"
)

// internal: restore the balance of p after one of its sub-trees
// changed height, returns the possibly new root of the sub-tree
//
// the height of p must already be current
func (tree *Tree[T]) rebalance(p *node[T]) *node[T] {
	if nil == p.left && nil == p.right {
		fault.Panicf("avl: rebalance of childless node: %v", p.value)
	}

	bf := p.balanceFactor()
	if bf < -1 {
		// an even right child only occurs after a delete
		if p.right.balanceFactor() <= 0 {
			tree.rotations.RR += 1
			return rrRotate(p)
		}
		tree.rotations.RL += 1
		return rlRotate(p)
	} else if bf > 1 {
		if p.left.balanceFactor() >= 0 {
			tree.rotations.LL += 1
			return llRotate(p)
		}
		tree.rotations.LR += 1
		return lrRotate(p)
	}
	return p
}

// internal: bottom-up step run on every node of a search path after
// the recursive call below it returns
func (tree *Tree[T]) fixUp(p *node[T]) *node[T] {
	p.fixHeight()

	// a node whose only child was just removed is a balanced leaf
	if nil == p.left && nil == p.right {
		return p
	}

	q := tree.rebalance(p)
	if q != p {
		q.fixHeight() // rotations leave the new root stale
	}
	return q
}

// single LL rotation, the left child becomes the root:
//
//	      p          t
//	     / \        / \
//	    t   c  ->  a   p
//	   / \            / \
//	  a   b          b   c
func llRotate[T cmp.Ordered](p *node[T]) *node[T] {
	t := p.left
	p.left = t.right
	t.right = p
	p.fixHeight()
	return t
}

// single RR rotation, mirror of llRotate
func rrRotate[T cmp.Ordered](p *node[T]) *node[T] {
	t := p.right
	p.right = t.left
	t.left = p
	p.fixHeight()
	return t
}

// double LR rotation, the right child of the left child becomes the root
func lrRotate[T cmp.Ordered](p *node[T]) *node[T] {
	p.left = rrRotate(p.left)
	p.left.fixHeight()
	return llRotate(p)
}

// double RL rotation, mirror of lrRotate
func rlRotate[T cmp.Ordered](p *node[T]) *node[T] {
	p.right = llRotate(p.right)
	p.right.fixHeight()
	return rrRotate(p)
}
