// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
	"fmt"
	"strings"
)

// Serialize - pre-order text dump of the tree
//
// each node writes its value then its left and right sub-trees, an
// empty child is written as "/". An empty tree gives "" and not "/".
func (tree *Tree[T]) Serialize() string {
	if nil == tree.root {
		return ""
	}
	s := strings.Builder{}
	serialize(tree.root, &s)
	return s.String()
}

func serialize[T cmp.Ordered](p *node[T], s *strings.Builder) {
	if nil == p {
		s.WriteString("/")
		return
	}
	fmt.Fprint(s, p.value)
	serialize(p.left, s)
	serialize(p.right, s)
}
