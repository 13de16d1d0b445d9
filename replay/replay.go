// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package replay

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/logger"
)

//go:generate mockgen -destination=mocks/tree.go -package=mocks github.com/bitmark-inc/avltree/replay Tree

// Tree - the tree operations a script can use
type Tree interface {
	Insert(int64) bool
	Remove(int64) bool
	Clear()
	Serialize() string
	Check() error
	Print(io.Writer) int
}

// Result - summary of a completed run
type Result struct {
	Added   int `json:"added"`
	Removed int `json:"removed"`
	Ignored int `json:"ignored"` // duplicate inserts and absent removes
	Cleared int `json:"cleared"`
}

// Run - apply operations in order
//
// dump and print output goes to w, a failing check stops the run and
// returns its error along with the counts so far
func Run(tree Tree, operations []Operation, w io.Writer, log *logger.L) (Result, error) {
	result := Result{}

	for i, op := range operations {
		switch op.Kind {
		case Insert:
			if tree.Insert(op.Value) {
				result.Added += 1
			} else {
				result.Ignored += 1
			}
			log.Debugf("[%d] %s", i, op)

		case Remove:
			if tree.Remove(op.Value) {
				result.Removed += 1
			} else {
				result.Ignored += 1
			}
			log.Debugf("[%d] %s", i, op)

		case Clear:
			tree.Clear()
			result.Cleared += 1
			log.Debugf("[%d] %s", i, op)

		case Dump:
			s := tree.Serialize()
			log.Infof("[%d] dump: %q", i, s)
			if _, err := fmt.Fprintln(w, s); nil != err {
				return result, err
			}

		case Print:
			depth := tree.Print(w)
			log.Infof("[%d] print depth: %d", i, depth)

		case Check:
			if err := tree.Check(); nil != err {
				log.Errorf("[%d] check failed: %s", i, err)
				return result, err
			}
			log.Debugf("[%d] check ok", i)

		default:
			log.Warnf("[%d] unknown operation kind: %d", i, op.Kind)
		}
	}

	log.Infof("added: %d  removed: %d  ignored: %d  cleared: %d", result.Added, result.Removed, result.Ignored, result.Cleared)
	return result, nil
}

// WithChecks - insert a check after every insert, remove and clear
func WithChecks(operations []Operation) []Operation {
	checked := make([]Operation, 0, 2*len(operations))
	for _, op := range operations {
		checked = append(checked, op)
		switch op.Kind {
		case Insert, Remove, Clear:
			checked = append(checked, Operation{Kind: Check})
		}
	}
	return checked
}
