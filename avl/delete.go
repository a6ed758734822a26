// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlset/fault"
)

// Erase - removes the key at a position
//
// returns the position of the next higher key (or End()); the erased
// position becomes invalid, all other positions remain valid
func (tree *Tree[K]) Erase(it Iterator[K]) (Iterator[K], error) {
	if it.tree != tree {
		return tree.End(), fault.ErrForeignIterator
	}
	switch it.pos {
	case atNode:
	case beforeBegin, end:
		return tree.End(), fault.ErrEraseSentinel
	default:
		return tree.End(), fault.ErrForeignIterator
	}

	// an erased node is detached, so its top is no longer the root
	if nil == tree.root || it.n.top() != tree.root {
		return tree.End(), fault.ErrForeignIterator
	}

	// nodes are moved, not keys, so the successor node stays valid
	next := it.n.next()
	tree.remove(it.n)
	tree.debugCheck("erase")

	if nil == next {
		return tree.End(), nil
	}
	return tree.at(next), nil
}

// EraseKey - removes a specific key from the tree
//
// returns the number of keys removed: 0 or 1
func (tree *Tree[K]) EraseKey(key K) int {
	e := tree.search(key)
	if nil == e {
		return 0
	}
	tree.remove(e)
	tree.debugCheck("erase")
	return 1
}

// internal delete routine
func (tree *Tree[K]) remove(e *node[K]) {

	// move e down until it is a leaf, each step takes the place of
	// its in-order neighbour which has at most one child
	for nil != e.left || nil != e.right {
		var r *node[K]
		if nil != e.left {
			r = e.left.last()
		} else {
			r = e.right.first()
		}
		tree.exchange(e, r)
	}

	up := e.up
	fromLeft := nil != up && up.left == e
	tree.replaceChild(up, e, nil)
	e.up = nil
	tree.count -= 1

	tree.deleteRebalance(up, fromLeft)
}

// internal: walk up from the parent of a removed leaf; fromLeft tells
// which branch of p has shrunk
//
// stops when a node that was level tilts (its height is unchanged) or
// when a rotation leaves its new top leaning (the single rotation
// about a level child); otherwise the height has dropped and the walk
// continues, possibly rotating at every level up to the root
func (tree *Tree[K]) deleteRebalance(p *node[K], fromLeft bool) {
	for nil != p {
		if fromLeft {
			// left branch has shrunk
			switch p.balance {
			case +1:
				p.balance = 0
			case 0:
				p.balance = -1
				return
			default: // balance = -1, rebalance
				p = tree.rightBalance(p.right)
				if 0 != p.balance {
					return
				}
			}
		} else {
			// right branch has shrunk
			switch p.balance {
			case -1:
				p.balance = 0
			case 0:
				p.balance = +1
				return
			default: // balance = +1, rebalance
				p = tree.leftBalance(p.left)
				if 0 != p.balance {
					return
				}
			}
		}

		up := p.up
		if nil != up {
			fromLeft = up.left == p
		}
		p = up
	}
}

// internal: swap the tree positions of node a and its descendant b,
// including balance factors; keys stay on their own nodes
func (tree *Tree[K]) exchange(a *node[K], b *node[K]) {
	aUp, aLeft, aRight := a.up, a.left, a.right
	bUp, bLeft, bRight := b.up, b.left, b.right

	tree.replaceChild(aUp, a, b)
	if bUp == a {
		if aLeft == b {
			b.setLeft(a)
			b.setRight(aRight)
		} else {
			b.setRight(a)
			b.setLeft(aLeft)
		}
	} else {
		b.setLeft(aLeft)
		b.setRight(aRight)
		if bUp.left == b {
			bUp.setLeft(a)
		} else {
			bUp.setRight(a)
		}
	}
	a.setLeft(bLeft)
	a.setRight(bRight)

	a.balance, b.balance = b.balance, a.balance
}
