// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package replay

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bitmark-inc/avltree/fault"
)

// Kind - type of a single operation
type Kind int

// operation kinds
const (
	Insert Kind = iota
	Remove Kind = iota
	Clear  Kind = iota
	Dump   Kind = iota
	Print  Kind = iota
	Check  Kind = iota
)

// token names, index by Kind
var names = []string{
	Insert: "add",
	Remove: "del",
	Clear:  "clear",
	Dump:   "dump",
	Print:  "print",
	Check:  "check",
}

// Operation - one step of a script
type Operation struct {
	Kind  Kind
	Value int64 // only for Insert and Remove
}

// String - the token form of an operation
func (op Operation) String() string {
	if op.hasValue() {
		return fmt.Sprintf("%s=%d", names[op.Kind], op.Value)
	}
	return names[op.Kind]
}

func (op Operation) hasValue() bool {
	return Insert == op.Kind || Remove == op.Kind
}

// Parse - convert a single token to an operation
func Parse(token string) (Operation, error) {
	name, value, hasValue := strings.Cut(strings.TrimSpace(token), "=")

	op := Operation{Kind: -1}
	for k, n := range names {
		if n == strings.ToLower(name) {
			op.Kind = Kind(k)
		}
	}
	if op.Kind < 0 {
		return Operation{}, fault.ErrInvalidOperation
	}

	if !op.hasValue() {
		if hasValue {
			return Operation{}, fault.ErrUnexpectedValue
		}
		return op, nil
	}

	if !hasValue || "" == value {
		return Operation{}, fault.ErrMissingValue
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if nil != err {
		return Operation{}, fault.ErrInvalidValue
	}
	op.Value = n
	return op, nil
}

// ParseAll - convert a list of tokens, stops at the first error
func ParseAll(tokens []string) ([]Operation, error) {
	operations := make([]Operation, 0, len(tokens))
	for i, token := range tokens {
		op, err := Parse(token)
		if nil != err {
			return nil, fmt.Errorf("token[%d]: %q: %w", i, token, err)
		}
		operations = append(operations, op)
	}
	return operations, nil
}
