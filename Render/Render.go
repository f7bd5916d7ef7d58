// Package Render draws trees as text diagrams. It only reads trees through Trees.View,
// so rendering can be repeated between mutations without side effects.
package Render

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"github.com/g-m-twostay/karytree/Trees"
)

// Style of a diagram. Zero styles render plain text.
type Style struct {
	Root, Item, Enumerator lipgloss.Style
	//Enum draws the branch in front of each child. nil means tree.DefaultEnumerator.
	Enum tree.Enumerator
}

// DefaultStyle is a coloured style for terminals.
func DefaultStyle() Style {
	return Style{
		Root:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4589ff")),
		Item:       lipgloss.NewStyle().Foreground(lipgloss.Color("#3ddbd9")),
		Enumerator: lipgloss.NewStyle().Foreground(lipgloss.Color("#8d8d8d")).PaddingRight(1),
		Enum:       tree.RoundedEnumerator,
	}
}

// String renders root and everything below it with the lipgloss defaults, one node per
// line in pre-order. Keys are printed with fmt.Sprint. A nil root renders as "".
func String[T any](root Trees.View[T]) string {
	if root == nil {
		return ""
	}
	return build(root, nil).String()
}

// Styled is String with s applied.
func Styled[T any](root Trees.View[T], s Style) string {
	if root == nil {
		return ""
	}
	return build(root, &s).String()
}

// Tree renders the whole of t; an empty tree renders as "".
func Tree[T any](t *Trees.Tree[T], s *Style) string {
	if t.Empty() {
		return ""
	}
	return build[T](t.Root(), s).String()
}

// build the lipgloss tree of n. Recursive.
func build[T any](n Trees.View[T], s *Style) *tree.Tree {
	t := tree.Root(fmt.Sprint(n.Key()))
	if s != nil {
		enum := s.Enum
		if enum == nil {
			enum = tree.DefaultEnumerator
		}
		t = t.RootStyle(s.Root).ItemStyle(s.Item).EnumeratorStyle(s.Enumerator).Enumerator(enum)
	}
	for i := 0; i < n.Degree(); i++ {
		c := n.ChildView(i)
		if c.Degree() == 0 {
			t = t.Child(fmt.Sprint(c.Key()))
		} else {
			t = t.Child(build(c, s))
		}
	}
	return t
}
