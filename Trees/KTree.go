package Trees

import (
	"cmp"
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/g-m-twostay/karytree/Queues"
	"golang.org/x/exp/constraints"
)

// Tree is a K-ary tree: every node holds at most k children. Nodes are only ever
// appended under an existing parent, so the structure stays a single acyclic tree
// reachable from the root; Heapify is the one operation that relinks nodes, and it
// relinks all of them at once.
//
// Keys are compared with cmp; two keys are equal when cmp returns 0. Equal keys are
// allowed, AttachChild then uses the first match in breadth-first order.
//
// Each traversal order has its own cache that is refilled on every call of that
// traversal. Every structural mutation bumps a generation counter, which is how
// Cached and Traversal.Stale tell whether a traversal result still describes the tree.
// A Tree is not safe for concurrent use.
type Tree[T any] struct {
	root    *Node[T]
	k, size uint
	gen     uint64
	cmp     func(a, b T) int
	caches  [numOrders]cache[T]
	q       Queues.ArrayQueue[*Node[T]] // breadth-first frontier, reused across walks.
	st      *arraystack.Stack           // depth-first frontier, reused across walks.
}

type cache[T any] struct {
	nodes []*Node[T]
	gen   uint64
	ok    bool
}

// New creates an empty tree of arity k for naturally ordered keys.
func New[T constraints.Ordered](k uint) *Tree[T] {
	return NewFunc(k, cmp.Compare[T])
}

// NewBinary is New with the default arity 2.
func NewBinary[T constraints.Ordered]() *Tree[T] {
	return New[T](2)
}

// NewFunc creates an empty tree of arity k whose keys are ordered by compare, which
// returns a negative number, zero or a positive number like cmp.Compare.
func NewFunc[T any](k uint, compare func(a, b T) int) *Tree[T] {
	return &Tree[T]{k: k, cmp: compare, q: Queues.MakeArrayQueue[*Node[T]](8), st: arraystack.New()}
}

func (u *Tree[T]) Root() *Node[T] {
	return u.root
}

func (u *Tree[T]) K() uint {
	return u.k
}

// IsBinary reports k==2, the arity in-order traversal and Heapify require.
func (u *Tree[T]) IsBinary() bool {
	return u.k == 2
}

func (u *Tree[T]) Size() uint {
	return u.size
}

func (u *Tree[T]) Empty() bool {
	return u.root == nil
}

// AttachRoot creates the root holding key. A tree has at most one root; a second call
// fails with DuplicateRootError and leaves the existing root alone.
func (u *Tree[T]) AttachRoot(key T) error {
	if u.root != nil {
		return &DuplicateRootError{fmt.Sprint(u.root.key)}
	}
	u.root, u.size = newNode(key), 1
	u.gen++
	return nil
}

// AttachChild appends a node holding child under the first node, in breadth-first order,
// whose key equals parent. Nothing is modified unless the call succeeds.
func (u *Tree[T]) AttachChild(parent, child T) error {
	if u.root == nil {
		return &MissingRootError{"attach child"}
	}
	p := u.Find(parent)
	if p == nil {
		return &ParentNotFoundError{fmt.Sprint(parent)}
	}
	if uint(len(p.children)) >= u.k {
		return &CapacityExceededError{fmt.Sprint(parent), u.k}
	}
	p.addChild(newNode(child))
	u.size++
	u.gen++
	return nil
}

// Find the shallowest, leftmost node whose key equals key. nil if there's none.
func (u *Tree[T]) Find(key T) (found *Node[T]) {
	if u.root == nil {
		return nil
	}
	for u.q.Push(u.root); !u.q.Empty(); {
		cur, _ := u.q.Pop()
		if u.cmp(cur.key, key) == 0 {
			found = cur
			break
		}
		for _, c := range cur.children {
			u.q.Push(c)
		}
	}
	u.q.Clear()
	return
}

// Height is the number of nodes on the longest root to leaf path, 0 for an empty tree. Recursive.
func (u *Tree[T]) Height() int {
	return height(u.root)
}

func height[T any](n *Node[T]) (h int) {
	if n == nil {
		return 0
	}
	for _, c := range n.children {
		h = max(h, height(c))
	}
	return h + 1
}
