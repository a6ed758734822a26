// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"iter"

	"github.com/bitmark-inc/avlset/fault"
)

// the kind of place an iterator refers to
type position int

const (
	invalid     position = iota // zero value iterator
	atNode      position = iota
	beforeBegin position = iota
	end         position = iota
)

// Iterator - a position in the ordered sequence of a tree: either a
// key or one of the sentinels "before-begin" and "end"
//
// sentinels are never dereferenceable
type Iterator[K any] struct {
	tree *Tree[K]
	n    *node[K]
	pos  position
}

func (tree *Tree[K]) at(n *node[K]) Iterator[K] {
	return Iterator[K]{tree: tree, n: n, pos: atNode}
}

// Begin - position of the lowest key, End() when empty
func (tree *Tree[K]) Begin() Iterator[K] {
	if nil == tree.root {
		return tree.End()
	}
	return tree.at(tree.root.first())
}

// End - the position after the highest key
func (tree *Tree[K]) End() Iterator[K] {
	return Iterator[K]{tree: tree, pos: end}
}

// BeforeBegin - the position before the lowest key
func (tree *Tree[K]) BeforeBegin() Iterator[K] {
	return Iterator[K]{tree: tree, pos: beforeBegin}
}

// RBegin - position of the highest key, BeforeBegin() when empty;
// the start of a reverse traversal
func (tree *Tree[K]) RBegin() Iterator[K] {
	if nil == tree.root {
		return tree.BeforeBegin()
	}
	return tree.at(tree.root.last())
}

// REnd - the end of a reverse traversal, same as BeforeBegin()
func (tree *Tree[K]) REnd() Iterator[K] {
	return tree.BeforeBegin()
}

// First - same as Begin()
func (tree *Tree[K]) First() Iterator[K] {
	return tree.Begin()
}

// Last - same as RBegin()
func (tree *Tree[K]) Last() Iterator[K] {
	return tree.RBegin()
}

// Key - read the key at the position
func (it Iterator[K]) Key() (K, error) {
	if atNode != it.pos {
		var zero K
		return zero, fault.ErrInvalidDereference
	}
	return it.n.key, nil
}

// Next - advance to the next higher key or to End()
func (it *Iterator[K]) Next() error {
	switch it.pos {
	case beforeBegin:
		*it = it.tree.Begin()
	case atNode:
		if n := it.n.next(); nil != n {
			it.n = n
		} else {
			*it = it.tree.End()
		}
	case end:
		return fault.ErrStepPastEnd
	default:
		return fault.ErrForeignIterator
	}
	return nil
}

// Prev - retreat to the next lower key or to BeforeBegin()
func (it *Iterator[K]) Prev() error {
	switch it.pos {
	case end:
		*it = it.tree.RBegin()
	case atNode:
		if n := it.n.prev(); nil != n {
			it.n = n
		} else {
			*it = it.tree.BeforeBegin()
		}
	case beforeBegin:
		return fault.ErrStepBeforeBegin
	default:
		return fault.ErrForeignIterator
	}
	return nil
}

// Equal - true if both refer to the same node or the same sentinel
// of the same tree
func (it Iterator[K]) Equal(other Iterator[K]) bool {
	return it.tree == other.tree && it.pos == other.pos && it.n == other.n
}

// Valid - true if the position can be dereferenced
func (it Iterator[K]) Valid() bool {
	return atNode == it.pos
}

// IsEnd - true at the position after the highest key
func (it Iterator[K]) IsEnd() bool {
	return end == it.pos
}

// IsBeforeBegin - true at the position before the lowest key
func (it Iterator[K]) IsBeforeBegin() bool {
	return beforeBegin == it.pos
}

// All - keys in ascending order
//
// the key just returned may be erased during the loop
func (tree *Tree[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for p := tree.root.first(); nil != p; {
			next := p.next()
			if !yield(p.key) {
				return
			}
			p = next
		}
	}
}

// Backward - keys in descending order
//
// the key just returned may be erased during the loop
func (tree *Tree[K]) Backward() iter.Seq[K] {
	return func(yield func(K) bool) {
		for p := tree.root.last(); nil != p; {
			prev := p.prev()
			if !yield(p.key) {
				return
			}
			p = prev
		}
	}
}
