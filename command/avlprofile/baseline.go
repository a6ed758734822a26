// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"

	"github.com/bitmark-inc/avlset/avl"
)

// names of the sets that can be profiled
const (
	avlSet        = "avl"
	btreeBaseline = "btree"
	godsBaseline  = "gods"
	llrbBaseline  = "llrb"
)

// degree of the B-tree baseline
const btreeDegree = 32

// OrderedSet - the operations common to all profiled sets
type OrderedSet interface {
	Insert(key int) bool // true if the key was added
	Has(key int) bool
	Delete(key int) bool // true if the key was present
	Len() int
}

// checker - a set that can verify its own structure
type checker interface {
	Check() error
}

// map of all available sets
var baselines = map[string]func() OrderedSet{
	avlSet:        newAVLSet,
	btreeBaseline: newBTreeSet,
	godsBaseline:  newGodsSet,
	llrbBaseline:  newLLRBSet,
}

// the set under test
type avlAdapter struct {
	tree *avl.Tree[int]
}

func newAVLSet() OrderedSet {
	return &avlAdapter{tree: avl.New[int]()}
}

func (a *avlAdapter) Insert(key int) bool {
	_, added := a.tree.Insert(key)
	return added
}

// found only if the position dereferences to the same key
func (a *avlAdapter) Has(key int) bool {
	k, err := a.tree.Find(key).Key()
	return nil == err && k == key
}

func (a *avlAdapter) Delete(key int) bool {
	return 1 == a.tree.EraseKey(key)
}

func (a *avlAdapter) Len() int {
	return a.tree.Count()
}

func (a *avlAdapter) Check() error {
	return a.tree.Check()
}

type btreeAdapter struct {
	tree *btree.BTreeG[int]
}

func newBTreeSet() OrderedSet {
	return &btreeAdapter{tree: btree.NewOrderedG[int](btreeDegree)}
}

func (b *btreeAdapter) Insert(key int) bool {
	_, replaced := b.tree.ReplaceOrInsert(key)
	return !replaced
}

func (b *btreeAdapter) Has(key int) bool {
	return b.tree.Has(key)
}

func (b *btreeAdapter) Delete(key int) bool {
	_, found := b.tree.Delete(key)
	return found
}

func (b *btreeAdapter) Len() int {
	return b.tree.Len()
}

// red-black tree from gods
type godsAdapter struct {
	set *treeset.Set
}

func newGodsSet() OrderedSet {
	return &godsAdapter{set: treeset.NewWith(utils.IntComparator)}
}

func (g *godsAdapter) Insert(key int) bool {
	if g.set.Contains(key) {
		return false
	}
	g.set.Add(key)
	return true
}

func (g *godsAdapter) Has(key int) bool {
	return g.set.Contains(key)
}

func (g *godsAdapter) Delete(key int) bool {
	if !g.set.Contains(key) {
		return false
	}
	g.set.Remove(key)
	return true
}

func (g *godsAdapter) Len() int {
	return g.set.Size()
}

// left leaning red-black tree
type llrbAdapter struct {
	tree *llrb.LLRB
}

func newLLRBSet() OrderedSet {
	return &llrbAdapter{tree: llrb.New()}
}

func (l *llrbAdapter) Insert(key int) bool {
	return nil == l.tree.ReplaceOrInsert(llrb.Int(key))
}

func (l *llrbAdapter) Has(key int) bool {
	return l.tree.Has(llrb.Int(key))
}

func (l *llrbAdapter) Delete(key int) bool {
	return nil != l.tree.Delete(llrb.Int(key))
}

func (l *llrbAdapter) Len() int {
	return l.tree.Len()
}
