package Trees

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/g-m-twostay/karytree/Queues"
)

// PreOrder visits a node, then each child subtree left to right. Recursive.
func (u *Tree[T]) PreOrder() (*Traversal[T], error) {
	if u.root == nil {
		return nil, &MissingRootError{PreOrderKind.String()}
	}
	return u.fill(PreOrderKind, u.root), nil
}

// PostOrder visits each child subtree left to right, then the node. Recursive.
func (u *Tree[T]) PostOrder() (*Traversal[T], error) {
	if u.root == nil {
		return nil, &MissingRootError{PostOrderKind.String()}
	}
	return u.fill(PostOrderKind, u.root), nil
}

// InOrder visits the first child subtree, the node, then the second child subtree.
// Only binary trees have an in-order; other arities get InvalidArityError. Recursive.
func (u *Tree[T]) InOrder() (*Traversal[T], error) {
	if u.k != 2 {
		return nil, &InvalidArityError{InOrderKind.String(), u.k}
	}
	if u.root == nil {
		return nil, &MissingRootError{InOrderKind.String()}
	}
	return u.fill(InOrderKind, u.root), nil
}

// BreadthFirst visits the tree level by level from the root, each level left to right.
func (u *Tree[T]) BreadthFirst() (*Traversal[T], error) {
	if u.root == nil {
		return nil, &MissingRootError{BreadthFirstKind.String()}
	}
	return u.fill(BreadthFirstKind, u.root), nil
}

// BreadthFirstFrom is BreadthFirst over the subtree rooted at n, which should belong to u.
// A nil n gives an empty traversal.
func (u *Tree[T]) BreadthFirstFrom(n *Node[T]) *Traversal[T] {
	return u.fill(BreadthFirstKind, n)
}

// DepthFirst walks the tree with an explicit stack, pushing children in reverse so the
// leftmost child is popped next. A node is always visited before any of its descendants,
// and siblings are visited left to right.
func (u *Tree[T]) DepthFirst() (*Traversal[T], error) {
	if u.root == nil {
		return nil, &MissingRootError{DepthFirstKind.String()}
	}
	return u.fill(DepthFirstKind, u.root), nil
}

// DepthFirstFrom is DepthFirst over the subtree rooted at n. A nil n gives an empty traversal.
func (u *Tree[T]) DepthFirstFrom(n *Node[T]) *Traversal[T] {
	return u.fill(DepthFirstKind, n)
}

// Traverse runs the traversal named by o.
func (u *Tree[T]) Traverse(o Order) (*Traversal[T], error) {
	switch o {
	case PreOrderKind:
		return u.PreOrder()
	case PostOrderKind:
		return u.PostOrder()
	case InOrderKind:
		return u.InOrder()
	case BreadthFirstKind:
		return u.BreadthFirst()
	case DepthFirstKind:
		return u.DepthFirst()
	}
	return nil, &InvalidOrderError{o}
}

// Cached returns the last result of traversal o, as long as the tree hasn't been mutated
// since it was computed. For breadth-first and depth-first that's the last call of either
// the root or the From variant.
func (u *Tree[T]) Cached(o Order) (*Traversal[T], bool) {
	if o >= numOrders {
		return nil, false
	}
	if c := &u.caches[o]; c.ok && c.gen == u.gen {
		return newTraversal(u, o, c.nodes), true
	}
	return nil, false
}

// fill clears the cache of o, walks from n into it and returns a snapshot.
func (u *Tree[T]) fill(o Order, n *Node[T]) *Traversal[T] {
	c := &u.caches[o]
	clear(c.nodes)
	c.nodes = c.nodes[:0]
	if n != nil {
		switch o {
		case PreOrderKind:
			c.nodes = preOrder(n, c.nodes)
		case PostOrderKind:
			c.nodes = postOrder(n, c.nodes)
		case InOrderKind:
			c.nodes = inOrder(n, c.nodes)
		case BreadthFirstKind:
			c.nodes = breadthFirst(n, c.nodes, u.q)
		case DepthFirstKind:
			c.nodes = depthFirst(n, c.nodes, u.st)
		}
	}
	c.gen, c.ok = u.gen, true
	return newTraversal(u, o, c.nodes)
}

func preOrder[T any](n *Node[T], s []*Node[T]) []*Node[T] {
	s = append(s, n)
	for _, c := range n.children {
		s = preOrder(c, s)
	}
	return s
}

func postOrder[T any](n *Node[T], s []*Node[T]) []*Node[T] {
	for _, c := range n.children {
		s = postOrder(c, s)
	}
	return append(s, n)
}

// inOrder only looks at the first two children.
func inOrder[T any](n *Node[T], s []*Node[T]) []*Node[T] {
	if len(n.children) > 0 {
		s = inOrder(n.children[0], s)
	}
	s = append(s, n)
	if len(n.children) > 1 {
		s = inOrder(n.children[1], s)
	}
	return s
}

// breadthFirst appends the level order of n to s. q is left empty.
func breadthFirst[T any](n *Node[T], s []*Node[T], q Queues.ArrayQueue[*Node[T]]) []*Node[T] {
	for q.Push(n); !q.Empty(); {
		cur, _ := q.Pop()
		s = append(s, cur)
		for _, c := range cur.children {
			q.Push(c)
		}
	}
	return s
}

// depthFirst appends the stack order of n to s. st is left empty.
func depthFirst[T any](n *Node[T], s []*Node[T], st *arraystack.Stack) []*Node[T] {
	for st.Push(n); !st.Empty(); {
		v, _ := st.Pop()
		cur := v.(*Node[T])
		s = append(s, cur)
		for i := len(cur.children) - 1; i > -1; i-- {
			st.Push(cur.children[i])
		}
	}
	return s
}
