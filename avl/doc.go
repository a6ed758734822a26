// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced ordered set of unique keys with
// parent pointers to allow bidirectional iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.  Concurrent read-only traversal is safe while no
//       mutation is in progress.
//
// The balance factor of a node is height(left) - height(right) and is
// maintained incrementally by insert and erase, never recomputed from
// subtree heights.
//
// Iterators are positions: a node or one of the two sentinels
// "before-begin" and "end".  Erase moves nodes rather than keys, so an
// iterator stays valid until the node it refers to is itself erased.
package avl
