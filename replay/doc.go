// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package replay - apply a script of operations to a tree
//
// tokens:
//	add=N    insert integer N
//	del=N    remove integer N
//	clear    remove everything
//	dump     write the pre-order serialization
//	print    write an ASCII picture of the tree
//	check    verify the tree invariants, stops the script on failure
package replay
