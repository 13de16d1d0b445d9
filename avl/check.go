// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"

	"github.com/bitmark-inc/avltree/fault"
)

// Check - verify ordering, heights, balance and node count
func (tree *Tree[T]) Check() error {
	n, err := check(tree.root, nil, nil)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fault.ErrCountMismatch
	}
	return nil
}

// internal: consistency checker, values of p must lie strictly
// between low and high when those are present
// returns the number of nodes in the sub-tree
func check[T cmp.Ordered](p *node[T], low *T, high *T) (int, error) {
	if nil == p {
		return 0, nil
	}
	if nil != low && !(*low < p.value) {
		return 0, fault.ErrOrderViolation
	}
	if nil != high && !(p.value < *high) {
		return 0, fault.ErrOrderViolation
	}

	nl, err := check(p.left, low, &p.value)
	if nil != err {
		return 0, err
	}
	nr, err := check(p.right, &p.value, high)
	if nil != err {
		return 0, err
	}

	if p.height != 1+max(p.left.subtreeHeight(), p.right.subtreeHeight()) {
		return 0, fault.ErrHeightMismatch
	}
	if bf := p.balanceFactor(); bf < -1 || bf > 1 {
		return 0, fault.ErrUnbalanced
	}
	return 1 + nl + nr, nil
}
