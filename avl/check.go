// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/avlset/fault"
)

// Check - verify every structural invariant of the tree
//
// parent pointers, key order, balance factors against measured
// heights and the key count; returns the first violation found
func (tree *Tree[K]) Check() error {
	if nil != tree.root && nil != tree.root.up {
		return fault.ProcessError(fmt.Sprintf("root: %v has parent: %v", tree.root.key, tree.root.up.key))
	}
	count, _, err := check(tree.root, nil)
	if nil != err {
		return err
	}
	if count != tree.count {
		return fault.ProcessError(fmt.Sprintf("count: %d but found: %d nodes", tree.count, count))
	}

	// strictly ascending in-order sequence
	var previous *node[K]
	for p := tree.root.first(); nil != p; p = p.next() {
		if nil != previous && tree.compare(previous.key, p.key) >= 0 {
			return fault.ProcessError(fmt.Sprintf("order: %v is not less than: %v", previous.key, p.key))
		}
		previous = p
	}
	return nil
}

// internal: consistency checker, returns node count and height of
// the sub-tree
func check[K any](p *node[K], up *node[K]) (int, int, error) {
	if nil == p {
		return 0, 0, nil
	}
	if p.up != up {
		return 0, 0, fault.ProcessError(fmt.Sprintf("node: %v has wrong parent", p.key))
	}
	lc, lh, err := check(p.left, p)
	if nil != err {
		return 0, 0, err
	}
	rc, rh, err := check(p.right, p)
	if nil != err {
		return 0, 0, err
	}
	if p.balance < -1 || p.balance > +1 {
		return 0, 0, fault.ProcessError(fmt.Sprintf("node: %v balance: %+d out of range", p.key, p.balance))
	}
	if int(p.balance) != lh-rh {
		return 0, 0, fault.ProcessError(fmt.Sprintf("node: %v balance: %+d  heights: %d/%d", p.key, p.balance, lh, rh))
	}
	return 1 + lc + rc, 1 + max(lh, rh), nil
}

// only active with the avldebug build tag
func (tree *Tree[K]) debugCheck(operation string) {
	if !debugChecks {
		return
	}
	if err := tree.Check(); nil != err {
		fault.Panicf("avl: %s: %s", operation, err)
	}
}
