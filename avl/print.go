// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - write an ASCII graphic representation of the tree, right
// branches above left ones
//
// returns the maximum depth of the tree
func (tree *Tree[K]) Print(w io.Writer) int {
	return printTree(w, tree.root, "", root)
}

// internal print - returns the maximum depth of the sub-tree
func printTree[K any](w io.Writer, p *node[K], prefix string, br branch) int {
	if nil == p {
		return 0
	}
	rd := 0
	ld := 0
	if nil != p.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(w, p.right, prefix+t, right)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	if nil != p.up {
		fmt.Fprintf(w, "%v ^%v %+d\n", p.key, p.up.key, p.balance)
	} else {
		fmt.Fprintf(w, "%v ^- %+d\n", p.key, p.balance)
	}
	if nil != p.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(w, p.left, prefix+t, left)
	}
	return 1 + max(ld, rd)
}

// LevelOrder - all keys in breadth first order starting from the root
func (tree *Tree[K]) LevelOrder() []K {
	keys := make([]K, 0, tree.count)
	if nil == tree.root {
		return keys
	}
	queue := []*node[K]{tree.root}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		keys = append(keys, p.key)
		if nil != p.left {
			queue = append(queue, p.left)
		}
		if nil != p.right {
			queue = append(queue, p.right)
		}
	}
	return keys
}

// Height - number of levels in the tree, 0 when empty
func (tree *Tree[K]) Height() int {
	return height(tree.root)
}

func height[K any](p *node[K]) int {
	if nil == p {
		return 0
	}
	return 1 + max(height(p.left), height(p.right))
}
