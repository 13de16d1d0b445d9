// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// a node in the tree
type node[T cmp.Ordered] struct {
	left   *node[T] // left sub-tree
	right  *node[T] // right sub-tree
	value  T        // only overwritten by predecessor promotion
	height int      // 0 for a leaf
}

// internal: height of a possibly empty sub-tree
func (p *node[T]) subtreeHeight() int {
	if nil == p {
		return -1
	}
	return p.height
}

// internal: recompute the height of a node from its children
//
// the children must already have the correct height
func (p *node[T]) fixHeight() {
	if nil != p.left && nil != p.right {
		p.height = 1 + max(p.left.height, p.right.height)
	} else if nil != p.left {
		p.height = 1 + p.left.height
	} else if nil != p.right {
		p.height = 1 + p.right.height
	} else {
		p.height = 0
	}
}

// internal: left height minus right height, empty side counts as -1
func (p *node[T]) balanceFactor() int {
	return p.left.subtreeHeight() - p.right.subtreeHeight()
}
