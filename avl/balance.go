// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlset/fault"
)

// rotateLeft - single rotation for a sub-tree whose right branch is
// two levels higher than its left branch
//
//	    a                b
//	   / \              / \
//	  x   b     →      a   z
//	     / \          / \
//	    y   z        x   y
//
// returns the new top of the sub-tree
func (tree *Tree[K]) rotateLeft(a *node[K]) *node[K] {
	b := a.right

	var ab, bb int8
	switch b.balance {
	case -1: // insert, or delete with a right leaning b
		ab, bb = 0, 0
	case 0: // delete only: height does not change
		ab, bb = -1, +1
	default:
		fault.Panicf("avl: rotate left: right child balance: %+d", b.balance)
	}

	tree.replaceChild(a.up, a, b)
	a.setRight(b.left)
	b.setLeft(a)

	a.balance = ab
	b.balance = bb
	return b
}

// rotateRight - mirror image of rotateLeft
//
//	      a            b
//	     / \          / \
//	    b   z   →    x   a
//	   / \              / \
//	  x   y            y   z
func (tree *Tree[K]) rotateRight(a *node[K]) *node[K] {
	b := a.left

	var ab, bb int8
	switch b.balance {
	case +1:
		ab, bb = 0, 0
	case 0:
		ab, bb = +1, -1
	default:
		fault.Panicf("avl: rotate right: left child balance: %+d", b.balance)
	}

	tree.replaceChild(a.up, a, b)
	a.setLeft(b.right)
	b.setRight(a)

	a.balance = ab
	b.balance = bb
	return b
}

// bigRotateLeft - double (right-left) rotation for a sub-tree whose
// right branch is two levels higher and leans to the left
//
//	    a                 c
//	   / \              /   \
//	  w   b            a     b
//	     / \     →    / \   / \
//	    c   z        w   x y   z
//	   / \
//	  x   y
func (tree *Tree[K]) bigRotateLeft(a *node[K]) *node[K] {
	b := a.right
	c := b.left

	var ab, bb int8
	switch c.balance {
	case -1:
		ab, bb = +1, 0
	case 0:
		ab, bb = 0, 0
	case +1:
		ab, bb = 0, -1
	default:
		fault.Panicf("avl: big rotate left: balance: %+d", c.balance)
	}

	tree.replaceChild(a.up, a, c)
	a.setRight(c.left)
	b.setLeft(c.right)
	c.setLeft(a)
	c.setRight(b)

	a.balance = ab
	b.balance = bb
	c.balance = 0
	return c
}

// bigRotateRight - mirror image of bigRotateLeft
func (tree *Tree[K]) bigRotateRight(a *node[K]) *node[K] {
	b := a.left
	c := b.right

	var ab, bb int8
	switch c.balance {
	case +1:
		ab, bb = -1, 0
	case 0:
		ab, bb = 0, 0
	case -1:
		ab, bb = 0, +1
	default:
		fault.Panicf("avl: big rotate right: balance: %+d", c.balance)
	}

	tree.replaceChild(a.up, a, c)
	a.setLeft(c.right)
	b.setRight(c.left)
	c.setLeft(b)
	c.setRight(a)

	a.balance = ab
	b.balance = bb
	c.balance = 0
	return c
}

// leftBalance - restore a parent that is two levels higher on its left
// side; child is that left sub-tree
//
// a double rotation is needed only when child leans the other way
func (tree *Tree[K]) leftBalance(child *node[K]) *node[K] {
	parent := child.up
	if nil == parent || parent.left != child {
		fault.Panicf("avl: left balance: node is not a left child")
	}
	if -1 == child.balance {
		return tree.bigRotateRight(parent)
	}
	return tree.rotateRight(parent)
}

// rightBalance - mirror image of leftBalance
func (tree *Tree[K]) rightBalance(child *node[K]) *node[K] {
	parent := child.up
	if nil == parent || parent.right != child {
		fault.Panicf("avl: right balance: node is not a right child")
	}
	if +1 == child.balance {
		return tree.bigRotateLeft(parent)
	}
	return tree.rotateLeft(parent)
}
