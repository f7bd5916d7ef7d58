package Trees

import (
	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/emirpasic/gods/utils"
)

// Heapify rebuilds a binary tree into the shape of an array backed binary heap. The
// nodes are collected breadth-first, built into a binary heap on their keys and drained
// into ascending order; node i of that order then gets nodes 2i+1 and 2i+2 as its
// children. The minimum becomes the root, every parent's key is <= its children's keys,
// and reading the result breadth-first gives the keys in ascending order.
//
// This is a one-shot rebuild: later attaches don't maintain the heap shape. Heapify
// counts as a structural mutation, so earlier traversals become stale. Trees with k!=2
// get InvalidArityError and are left untouched. An empty tree is left empty.
func (u *Tree[T]) Heapify() error {
	if u.k != 2 {
		return &InvalidArityError{"heapify", u.k}
	}
	if u.root == nil {
		return nil
	}
	flat := breadthFirst(u.root, make([]*Node[T], 0, u.size), u.q)
	sortNodes(flat, u.comparator())
	for i, n := range flat {
		if l, r := 2*i+1, 2*i+2; r < len(flat) {
			n.relink(flat[l], flat[r])
		} else if l < len(flat) {
			n.relink(flat[l])
		} else {
			n.relink()
		}
	}
	u.root = flat[0]
	u.gen++
	return nil
}

// comparator adapts cmp to the untyped comparator gods containers take.
func (u *Tree[T]) comparator() utils.Comparator {
	return func(a, b interface{}) int {
		return u.cmp(a.(*Node[T]).key, b.(*Node[T]).key)
	}
}

// sortNodes orders ns ascending by building a binary heap over all of them at once and
// popping it empty.
func sortNodes[T any](ns []*Node[T], c utils.Comparator) {
	h := binaryheap.NewWith(c)
	vs := make([]interface{}, len(ns))
	for i, n := range ns {
		vs[i] = n
	}
	h.Push(vs...)
	for i := range ns {
		v, _ := h.Pop()
		ns[i] = v.(*Node[T])
	}
}
