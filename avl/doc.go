// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree of unique ordered values
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node stores its height (a leaf is zero, an empty sub-tree
// counts as -1) and the tree is rebalanced bottom-up after every
// insert or remove using the four classic rotations LL, RR, LR and RL.
//
// Removing a node with two children copies the value of its
// predecessor (the largest value of the left sub-tree) into the node
// and then removes the predecessor from the left sub-tree.
//
// The only dump of the structure is Serialize, a pre-order encoding
// where an empty child is written as "/", e.g. a root 5 with leaves 3
// and 8 gives "53//8//".
package avl
