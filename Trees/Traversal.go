package Trees

import "slices"

// Traversal is a forward-only cursor over the nodes one traversal produced, in visiting
// order. It owns its sequence, so later traversals of the same tree don't disturb it.
// The nodes themselves are shared with the tree: after a structural mutation the cursor
// still walks the old order, which no longer describes the tree. Stale reports that.
//
//	tr, _ := tree.PreOrder()
//	for tr.Next() {
//		use(tr.Node())
//	}
type Traversal[T any] struct {
	tree  *Tree[T]
	nodes []*Node[T]
	order Order
	gen   uint64
	pos   int
}

func newTraversal[T any](tree *Tree[T], o Order, nodes []*Node[T]) *Traversal[T] {
	return &Traversal[T]{tree: tree, nodes: slices.Clone(nodes), order: o, gen: tree.gen, pos: -1}
}

// Next advances the cursor. It returns false once the sequence is exhausted and keeps
// returning false after that.
func (u *Traversal[T]) Next() bool {
	if u.pos+1 < len(u.nodes) {
		u.pos++
		return true
	}
	u.pos = len(u.nodes)
	return false
}

// Node under the cursor; nil before the first Next and after exhaustion.
func (u *Traversal[T]) Node() *Node[T] {
	if u.pos < 0 || u.pos >= len(u.nodes) {
		return nil
	}
	return u.nodes[u.pos]
}

// Reset rewinds the cursor to before the first node.
func (u *Traversal[T]) Reset() {
	u.pos = -1
}

func (u *Traversal[T]) Len() int {
	return len(u.nodes)
}

func (u *Traversal[T]) Order() Order {
	return u.order
}

// Stale reports whether the tree was structurally mutated after this traversal was taken.
func (u *Traversal[T]) Stale() bool {
	return u.tree.gen != u.gen
}

// Nodes returns a copy of the whole sequence regardless of the cursor.
func (u *Traversal[T]) Nodes() []*Node[T] {
	return slices.Clone(u.nodes)
}

// Keys of the whole sequence regardless of the cursor.
func (u *Traversal[T]) Keys() []T {
	ks := make([]T, len(u.nodes))
	for i, n := range u.nodes {
		ks[i] = n.key
	}
	return ks
}

// Func returns a closure iterating the sequence independently of the cursor. Calling it
// is like calling Next and Node at once: n is meaningful only when valid is true, and
// valid can't turn true after it first became false.
func (u *Traversal[T]) Func() func() (n *Node[T], valid bool) {
	i := 0
	return func() (n *Node[T], valid bool) {
		if i < len(u.nodes) {
			n, valid = u.nodes[i], true
			i++
		}
		return
	}
}
