package commands

import "fmt"

// Index addresses an element of a displayed list. Users type 1-based
// positions; slices are 0-based.
type Index struct {
	zero int
}

// FromOneBased returns the Index for a user-typed position. n must be positive.
func FromOneBased(n int) Index {
	if n < 1 {
		panic(fmt.Sprintf("commands: one-based index %d out of domain", n))
	}
	return Index{zero: n - 1}
}

// FromZeroBased returns the Index for a slice position. n must not be negative.
func FromZeroBased(n int) Index {
	if n < 0 {
		panic(fmt.Sprintf("commands: zero-based index %d out of domain", n))
	}
	return Index{zero: n}
}

// ZeroBased returns the slice position.
func (i Index) ZeroBased() int { return i.zero }

// OneBased returns the user-facing position.
func (i Index) OneBased() int { return i.zero + 1 }

// In reports whether the index addresses an element of a list of length n.
func (i Index) In(n int) bool { return i.zero < n }

func (i Index) String() string {
	return fmt.Sprint(i.OneBased())
}
