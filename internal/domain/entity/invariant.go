package entity

import "fmt"

// CheckInvariants validates t after a mutation. Builds with the
// tesseradebug tag panic on a violation; every build returns it.
func CheckInvariants(t *PaneTree) error {
	err := t.Validate()
	if err != nil && StrictInvariants {
		panic(err)
	}
	return err
}

// StaleReference reports a pane handle used with a tree it is not linked
// into. Like CheckInvariants it panics under the tesseradebug tag.
func StaleReference(op string, ref any) error {
	err := fmt.Errorf("%s %v: %w", op, ref, ErrStaleLeaf)
	if StrictInvariants {
		panic(err)
	}
	return err
}
