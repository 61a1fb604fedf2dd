//go:build !tesseradebug

package entity

// StrictInvariants makes contract violations panic.
const StrictInvariants = false
