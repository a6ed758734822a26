// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Find - position of a specific key, or End() if it is not present
func (tree *Tree[K]) Find(key K) Iterator[K] {
	if p := tree.search(key); nil != p {
		return tree.at(p)
	}
	return tree.End()
}

// Contains - true if the key is present
func (tree *Tree[K]) Contains(key K) bool {
	return nil != tree.search(key)
}

func (tree *Tree[K]) search(key K) *node[K] {
	p := tree.root
	for nil != p {
		c := tree.compare(key, p.key)
		switch {
		case c < 0: // key < p.key
			p = p.left
		case c > 0: // key > p.key
			p = p.right
		default:
			return p
		}
	}
	return nil
}
