package entity

import (
	"errors"
	"fmt"
)

// ErrStructuralViolation marks an operation that would break a pane tree
// invariant, or a tree found to be broken.
var ErrStructuralViolation = errors.New("pane tree structural violation")

var (
	// ErrStaleLeaf is returned when a pane reference no longer belongs to the tree.
	ErrStaleLeaf = fmt.Errorf("%w: pane is not part of the tree", ErrStructuralViolation)
	// ErrNotLeaf is returned when a leaf operation targets a split.
	ErrNotLeaf = fmt.Errorf("%w: node is not a leaf", ErrStructuralViolation)
)

// ErrInvalidPalette rejects themes whose palette is not exactly 16 colors.
var ErrInvalidPalette = errors.New("theme palette must contain exactly 16 colors")
