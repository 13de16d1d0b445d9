// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Has - true if the value is in the tree
func (tree *Tree[T]) Has(value T) bool {
	p := tree.root
	for nil != p {
		if value < p.value {
			p = p.left
		} else if value > p.value {
			p = p.right
		} else {
			return true
		}
	}
	return false
}
