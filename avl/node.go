// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// a node in the tree
type node[K any] struct {
	left    *node[K] // left sub-tree
	right   *node[K] // right sub-tree
	up      *node[K] // points to parent node, nil for root
	balance int8     // height(left) - height(right): -1, 0, +1
	key     K        // key part for ordering
}

// create a detached node, only called from the insert path
func newNode[K any](up *node[K], key K) *node[K] {
	return &node[K]{
		up:      up,
		balance: 0,
		key:     key,
	}
}

// internal: lowest node in a sub-tree
func (p *node[K]) first() *node[K] {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// internal: highest node in a sub-tree
func (p *node[K]) last() *node[K] {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}

// internal: in-order successor or nil if p is the highest node
func (p *node[K]) next() *node[K] {
	if nil != p.right {
		return p.right.first()
	}
	for nil != p.up {
		if p.up.left == p {
			return p.up
		}
		p = p.up
	}
	return nil
}

// internal: in-order predecessor or nil if p is the lowest node
func (p *node[K]) prev() *node[K] {
	if nil != p.left {
		return p.left.last()
	}
	for nil != p.up {
		if p.up.right == p {
			return p.up
		}
		p = p.up
	}
	return nil
}

// internal: the top of the tree containing p
func (p *node[K]) top() *node[K] {
	for nil != p.up {
		p = p.up
	}
	return p
}

// make child the left sub-tree of p
func (p *node[K]) setLeft(child *node[K]) {
	p.left = child
	if nil != child {
		child.up = p
	}
}

// make child the right sub-tree of p
func (p *node[K]) setRight(child *node[K]) {
	p.right = child
	if nil != child {
		child.up = p
	}
}
