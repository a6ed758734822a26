// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/bitmark-inc/avlset/avl"
)

func newStringTree() *avl.Tree[string] {
	return avl.NewFunc(strings.Compare)
}

// fail with a picture of the tree if any invariant is broken
func checkTree(t *testing.T, tree *avl.Tree[string], stage string) {
	t.Helper()
	if err := tree.Check(); nil != err {
		b := strings.Builder{}
		depth := tree.Print(&b)
		t.Logf("depth: %d\n%s", depth, b.String())
		t.Fatalf("%s: inconsistent tree: %s", stage, err)
	}
}

func TestListShort(t *testing.T) {
	addList := []string{
		"4201", "1254", "8608", "1639", "8950", "6740",
	}
	doList(t, addList)
	doTraverse(t, addList)
}

// to make sure that lots of duplicates do not increment the node
// count incorrectly
func TestListDuplicates(t *testing.T) {
	addList := []string{
		"1720", "0506", "8382", "6774", "1247", "1250", "1264", "1258",
		"1255", "2247", "2004", "2194", "2644", "2169", "8133", "2136",
		"9651", "4079", "1042", "3579", "3630", "1427", "5843", "9549",
		"5433", "1274", "9034", "4724", "6179", "5072", "9272", "4030",
		"4205", "3363", "8582", "1720", "0506", "8382", "6774", "1042",
		"1042", "1042", "1042", "1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042",
	}
	doList(t, addList)
	doTraverse(t, addList)
}

func TestListLong(t *testing.T) {
	addList := []string{
		"8133", "2136", "9651", "4079", "1042", "3579", "3630", "1427",
		"5843", "9549", "5433", "1274", "9034", "4724", "6179", "5072",
		"9272", "4030", "4205", "3363", "8582", "1720", "0506", "8382",
		"6774", "3088", "2329", "9039", "6703", "1027", "7297", "6063",
		"4156", "1005", "0982", "3065", "2553", "0795", "8426", "2377",
		"0877", "9085", "5918", "2581", "7797", "3028", "5880", "3061",
		"5212", "6539", "1320", "3581", "3334", "4348", "2934", "8342",
		"8814", "8736", "1353", "3082", "9620", "0056", "5063", "1245",
		"7066", "7435", "2999", "7803", "1303", "1697", "0017", "4314",
		"9926", "7587", "2531", "8123", "5693", "7495", "9975", "5465",
		"4342", "7958", "7138", "9382", "0672", "5402", "0204", "2397",
		"2712", "0938", "9610", "3611", "2140", "4289", "9271", "4786",
		"4145", "1066", "4366", "6716", "8579", "1012", "5935", "8278",
		"5761", "1871", "6257", "2649", "8643", "1239", "3416", "6146",
		"7127", "9517", "5788", "9025", "6880", "9064", "4849", "4503",
		"4898", "6815", "8811", "6745", "6907", "7503", "9869", "5491",
		"9940", "5955", "3764", "3254", "8048", "5339", "2406", "3137",
		"0251", "0486", "4202", "1844", "1741", "7154", "4286", "5160",
		"9472", "2998", "1935", "4758", "6478", "9572", "9254", "6848",
		"3126", "1848", "7692", "2791", "1504", "3469", "9701", "5077",
		"7928", "7978", "5383", "4319", "8197", "9227", "1166", "4216",
		"0866", "1791", "5395", "4310", "4452", "6140", "1494", "8859",
		"3394", "5507", "7295", "5408", "7789", "8237", "6990", "6882",
		"8243", "8894", "4352", "6727", "7019", "3126", "3102", "2948",
		"8242", "5027", "8892", "3492", "1323", "1101", "4526", "5177",
		"6175", "6664", "2742", "6094", "9877", "2534", "2105", "6588",
		"9982", "3696", "3480", "2244", "7487", "2844", "3199", "5829",
		"6952", "6915", "0905", "7615",
	}
	doList(t, addList)
	doTraverse(t, addList)
}

func doList(t *testing.T, addList []string) {

	for i := 0; i < len(addList)+1; i += 1 {

		alreadyDeleted := make(map[string]struct{})

		tree := newStringTree()
		for _, key := range addList {
			tree.Insert(key)
		}
		checkTree(t, tree, "add")

	delete_items:
		for _, key := range addList[:i] {
			if _, ok := alreadyDeleted[key]; ok {
				if n := tree.EraseKey(key); 0 != n {
					t.Fatalf("second erase of: %q returned: %d", key, n)
				}
				continue delete_items
			}
			alreadyDeleted[key] = struct{}{}
			if n := tree.EraseKey(key); 1 != n {
				t.Fatalf("erase: %q returned: %d  expected: 1", key, n)
			}
		}
		checkTree(t, tree, "delete")

	delete_remainder:
		for _, key := range addList[i:] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_remainder
			}
			alreadyDeleted[key] = struct{}{}
			if n := tree.EraseKey(key); 1 != n {
				t.Fatalf("erase: %q returned: %d  expected: 1", key, n)
			}
		}
		checkTree(t, tree, "remainder")
		if !tree.IsEmpty() {
			t.Fatalf("remainder: %d remaining nodes", tree.Count())
		}
	}
}

// traverse the tree forwards and backwards to check iterators
func doTraverse(t *testing.T, addList []string) {

	unique := make(map[string]struct{})
	tree := newStringTree()
	for _, key := range addList {
		unique[key] = struct{}{}
		tree.Insert(key)
	}

	expected := make([]string, 0, len(unique))
	for key := range unique {
		expected = append(expected, key)
	}
	sort.Strings(expected)

	p := tree.Begin()
	if !p.Valid() {
		t.Fatalf("no first item")
	}

	n := 0
	for i := 0; !p.IsEnd(); i += 1 {
		key, err := p.Key()
		if nil != err {
			t.Fatalf("next item: error: %s", err)
		}
		if key != expected[i] {
			t.Fatalf("next item: actual: %q  expected: %q", key, expected[i])
		}
		n += 1
		if err := p.Next(); nil != err {
			t.Fatalf("next: error: %s", err)
		}
	}

	if n != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", n, len(expected))
	}

	p = tree.RBegin()
	if !p.Valid() {
		t.Fatalf("no last item")
	}

	n = 0
	for i := len(expected) - 1; !p.IsBeforeBegin(); i -= 1 {
		key, err := p.Key()
		if nil != err {
			t.Fatalf("prev item: error: %s", err)
		}
		if key != expected[i] {
			t.Fatalf("prev item: actual: %q  expected: %q", key, expected[i])
		}
		n += 1
		if err := p.Prev(); nil != err {
			t.Fatalf("prev: error: %s", err)
		}
	}

	if n != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", n, len(expected))
	}
	if n != tree.Count() {
		t.Fatalf("tree count: actual: %d  expected: %d", tree.Count(), n)
	}

	// erase everything through positions, each erase must return
	// the position of the next key
	p = tree.Begin()
	for i := 0; !p.IsEnd(); i += 1 {
		var err error
		p, err = tree.Erase(p)
		if nil != err {
			t.Fatalf("erase: %q  error: %s", expected[i], err)
		}
		if i+1 < len(expected) {
			key, _ := p.Key()
			if key != expected[i+1] {
				t.Fatalf("erase: %q returned: %q  expected: %q", expected[i], key, expected[i+1])
			}
		}
	}
	checkTree(t, tree, "erase all")

	if !tree.IsEmpty() {
		t.Fatalf("remainder: remaining nodes")
	}
	if 0 != tree.Count() {
		t.Fatalf("remaining count not zero: %d", tree.Count())
	}
}

func makeKey() string {

	b := make([]byte, 4)
	_, err := rand.Read(b)
	if nil != err {
		panic("rand failed")
	}
	n := int(binary.BigEndian.Uint32(b))
	return fmt.Sprintf("%04d", n%10000)
}

func TestRandomTree(t *testing.T) {

	randomTree(t, 2200, 2000)
	randomTree(t, 3400, 2760)
	randomTree(t, 5467, 1234)

	for i := 0; i < 5; i += 1 {
		randomTree(t, 2100, 2000)
	}
}

func randomTree(t *testing.T, total int, toDelete int) {

	if toDelete > total {
		t.Fatalf("failed: total: %d  < deletions: %d", total, toDelete)
	}

	tree := newStringTree()
	d := make([]string, toDelete)

	for i := 0; i < total; i += 1 {
		key := makeKey()
		if i < len(d) {
			d[i] = key
		}
		tree.Insert(key)
	}
	checkTree(t, tree, "add")

	for _, key := range d {
		tree.EraseKey(key)
		checkTree(t, tree, "delete")
	}

	// add back the test value
	const testKey = "500"
	tree.Insert(testKey)
	checkTree(t, tree, "add test key")

	doTraverse(t, d)

	// check that test value is searchable
	tv := tree.Find(testKey)
	if tv.IsEnd() {
		t.Fatalf("could not find test key: %q", testKey)
	}
	if key, _ := tv.Key(); testKey != key {
		t.Fatalf("test key mismatch: actual: %q  expected: %q", key, testKey)
	}

	// check iterators
	n := tv
	p := tv
	if err := n.Next(); nil != err {
		t.Fatalf("next: error: %s", err)
	}
	if err := p.Prev(); nil != err {
		t.Fatalf("prev: error: %s", err)
	}
	if n.Equal(tv) || p.Equal(tv) {
		t.Fatal("iterator did not move")
	}

	// delete the test value, and check it is no longer in the tree
	if 1 != tree.EraseKey(testKey) {
		t.Fatalf("could not erase test key: %q", testKey)
	}
	if tv = tree.Find(testKey); !tv.IsEnd() {
		key, _ := tv.Key()
		t.Fatalf("test key not deleted and contains: %q", key)
	}
}

// check that nodes keep constant position when the tree is
// re-balanced or other keys are erased
func TestNodeStability(t *testing.T) {
	addList := []string{
		"01", "02", "03", "04", "05",
		"06", "07", "08", "09", "10",
	}

	tree := newStringTree()
	for _, key := range addList {
		tree.Insert(key)
	}
	checkTree(t, tree, "add")

	// a duplicate insert reports the existing node
	oKey := "05"
	node1, added := tree.Insert(oKey)
	if added {
		t.Fatalf("duplicate key: %q was added", oKey)
	}

	// erase every other key; the iterator must stay on its key
	for _, dKey := range addList {
		if oKey == dKey {
			continue
		}
		tree.EraseKey(dKey)
		checkTree(t, tree, "delete")

		node2 := tree.Find(oKey)
		if !node1.Equal(node2) {
			t.Fatalf("after erase: %q node moved", dKey)
		}
		if key, err := node1.Key(); nil != err || oKey != key {
			t.Fatalf("after erase: %q key: %q  error: %v", dKey, key, err)
		}
	}
	if 1 != tree.Count() {
		t.Fatalf("count: %d  expected: 1", tree.Count())
	}
}
