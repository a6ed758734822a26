// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new key into the tree
//
// returns the position of the new key and true, or if an equal key is
// already present its position and false with the tree unchanged
func (tree *Tree[K]) Insert(key K) (Iterator[K], bool) {
	if nil == tree.root {
		tree.root = newNode[K](nil, key)
		tree.count += 1
		tree.debugCheck("insert")
		return tree.at(tree.root), true
	}

	p := tree.root
	n := (*node[K])(nil)
descend:
	for {
		c := tree.compare(key, p.key)
		switch {
		case c < 0: // key < p.key
			if nil == p.left {
				n = newNode(p, key)
				p.left = n
				break descend
			}
			p = p.left
		case c > 0: // key > p.key
			if nil == p.right {
				n = newNode(p, key)
				p.right = n
				break descend
			}
			p = p.right
		default:
			return tree.at(p), false
		}
	}
	tree.count += 1

	tree.insertRebalance(n)
	tree.debugCheck("insert")
	return tree.at(n), true
}

// internal: walk up from a newly attached leaf adjusting balance
// factors; stops when a sub-tree height is unchanged or after one
// rotation, which always restores the height from before the insert
func (tree *Tree[K]) insertRebalance(child *node[K]) {
	for p := child.up; nil != p; child, p = p, p.up {
		if p.left == child {
			// left branch has grown
			switch p.balance {
			case -1:
				p.balance = 0
				return
			case 0:
				p.balance = +1
			default:
				tree.leftBalance(child)
				return
			}
		} else {
			// right branch has grown
			switch p.balance {
			case +1:
				p.balance = 0
				return
			case 0:
				p.balance = -1
			default:
				tree.rightBalance(child)
				return
			}
		}
	}
}
