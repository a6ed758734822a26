// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"

	"github.com/bitmark-inc/avlset/fault"
)

// Tree - type to hold the root node of a tree
type Tree[K any] struct {
	root    *node[K]
	count   int
	compare func(K, K) int
}

// New - create an initially empty tree of naturally ordered keys
func New[K cmp.Ordered]() *Tree[K] {
	return NewFunc[K](cmp.Compare[K])
}

// NewFunc - create an initially empty tree ordered by compare
//
// compare(a, b) must return a negative number when a < b, zero when
// a == b and a positive number when a > b, and must be a total order
func NewFunc[K any](compare func(a, b K) int) *Tree[K] {
	if nil == compare {
		fault.Panicf("avl: %s", fault.ErrNilComparator)
	}
	return &Tree[K]{
		root:    nil,
		count:   0,
		compare: compare,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of keys currently in the tree
func (tree *Tree[K]) Count() int {
	return tree.count
}

// Clear - remove all keys
//
// any existing iterators on nodes become invalid
func (tree *Tree[K]) Clear() {
	tree.root = nil
	tree.count = 0
}

// Clone - an independent copy of the tree with the same shape
//
// uses an explicit stack so that no recursion is needed
func (tree *Tree[K]) Clone() *Tree[K] {
	c := &Tree[K]{
		count:   tree.count,
		compare: tree.compare,
	}
	if nil == tree.root {
		return c
	}

	type pair struct {
		from *node[K]
		to   *node[K]
	}

	c.root = &node[K]{balance: tree.root.balance, key: tree.root.key}
	stack := []pair{{tree.root, c.root}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if l := p.from.left; nil != l {
			n := &node[K]{balance: l.balance, key: l.key}
			p.to.setLeft(n)
			stack = append(stack, pair{l, n})
		}
		if r := p.from.right; nil != r {
			n := &node[K]{balance: r.balance, key: r.key}
			p.to.setRight(n)
			stack = append(stack, pair{r, n})
		}
	}
	return c
}

// internal: replace the child link of up that refers to old with n
// when up is nil, n becomes the root
func (tree *Tree[K]) replaceChild(up *node[K], old *node[K], n *node[K]) {
	if nil == up {
		tree.root = n
	} else if up.left == old {
		up.left = n
	} else {
		up.right = n
	}
	if nil != n {
		n.up = up
	}
}
