package Trees

import (
	"fmt"
	"slices"
)

// Node in a Tree. The key never changes after construction. A node exclusively owns its
// children, kept in insertion order, which is also the order every traversal visits them.
// Arity isn't checked here; Tree does that.
type Node[T any] struct {
	key      T
	children []*Node[T]
}

func newNode[T any](key T) *Node[T] {
	return &Node[T]{key: key}
}

func (u *Node[T]) Key() T {
	return u.key
}

func (u *Node[T]) Degree() int {
	return len(u.children)
}

// Child i, nil if i is out of range.
func (u *Node[T]) Child(i int) *Node[T] {
	if i < 0 || i >= len(u.children) {
		return nil
	}
	return u.children[i]
}

func (u *Node[T]) ChildView(i int) View[T] {
	if c := u.Child(i); c != nil {
		return c
	}
	return nil
}

// Children returns a copy of the child list.
func (u *Node[T]) Children() []*Node[T] {
	return slices.Clone(u.children)
}

func (u *Node[T]) String() string {
	return fmt.Sprint(u.key)
}

func (u *Node[T]) addChild(c *Node[T]) {
	u.children = append(u.children, c)
}

// relink drops the current children and adopts cs.
func (u *Node[T]) relink(cs ...*Node[T]) {
	clear(u.children)
	u.children = append(u.children[:0], cs...)
}
