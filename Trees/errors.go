package Trees

import (
	"errors"
	"strconv"
)

// ErrStructure is matched by every error a Tree reports, so errors.Is(err, ErrStructure)
// tells tree usage errors apart from anything else. None of them are worth retrying.
var ErrStructure = errors.New("tree structure error")

// DuplicateRootError is returned by AttachRoot when the tree already has a root. Key is
// the existing root's key.
type DuplicateRootError struct {
	Key string
}

func (e *DuplicateRootError) Error() string {
	return "root exists: " + e.Key
}

func (e *DuplicateRootError) Is(target error) bool {
	return target == ErrStructure
}

// MissingRootError is returned by operations that need a root on an empty tree.
type MissingRootError struct {
	Op string
}

func (e *MissingRootError) Error() string {
	return e.Op + ": no root"
}

func (e *MissingRootError) Is(target error) bool {
	return target == ErrStructure
}

type ParentNotFoundError struct {
	Parent string
}

func (e *ParentNotFoundError) Error() string {
	return "parent not found: " + e.Parent
}

func (e *ParentNotFoundError) Is(target error) bool {
	return target == ErrStructure
}

type CapacityExceededError struct {
	Parent string
	K      uint
}

func (e *CapacityExceededError) Error() string {
	return "max children reached: " + e.Parent + " already has " + strconv.FormatUint(uint64(e.K), 10) + " children"
}

func (e *CapacityExceededError) Is(target error) bool {
	return target == ErrStructure
}

// InvalidArityError is returned by in-order traversal and Heapify, which are only defined
// for binary trees.
type InvalidArityError struct {
	Op string
	K  uint
}

func (e *InvalidArityError) Error() string {
	return e.Op + " requires k=2, tree has k=" + strconv.FormatUint(uint64(e.K), 10)
}

func (e *InvalidArityError) Is(target error) bool {
	return target == ErrStructure
}

// InvalidOrderError is returned by Traverse for an Order it doesn't know.
type InvalidOrderError struct {
	Order Order
}

func (e *InvalidOrderError) Error() string {
	return "unknown traversal order " + strconv.Itoa(int(e.Order))
}

func (e *InvalidOrderError) Is(target error) bool {
	return target == ErrStructure
}
