// Package unique provides an ordered collection that rejects identity
// duplicates on insert and update, while removal matches on full equality.
package unique

import "errors"

var (
	// ErrDuplicateEntity is returned when an insert or update would leave two
	// elements with the same identity.
	ErrDuplicateEntity = errors.New("duplicate entity")
	// ErrNotFound is returned when an update target or removal candidate is absent.
	ErrNotFound = errors.New("entity not found")
)

// List is an ordered sequence of T. Identity (same) guards Add, Set and
// ReplaceAll; structural equality (equal) guards Remove.
//
// List is not safe for concurrent use.
type List[T any] struct {
	items []T
	same  func(a, b T) bool
	equal func(a, b T) bool
}

// New returns an empty List using the given identity and equality predicates.
func New[T any](same, equal func(a, b T) bool) *List[T] {
	if same == nil || equal == nil {
		panic("unique: nil predicate")
	}
	return &List[T]{same: same, equal: equal}
}

// Contains reports whether an element with the same identity as item exists.
func (l *List[T]) Contains(item T) bool {
	return l.indexOfSame(item) >= 0
}

// Add appends item unless an element with the same identity already exists.
func (l *List[T]) Add(item T) error {
	if l.Contains(item) {
		return ErrDuplicateEntity
	}
	l.items = append(l.items, item)
	return nil
}

// Set replaces target with replacement at target's position. The target is
// located by identity. If replacement has a different identity it must not
// collide with any other element.
func (l *List[T]) Set(target, replacement T) error {
	idx := l.indexOfSame(target)
	if idx < 0 {
		return ErrNotFound
	}
	if !l.same(target, replacement) && l.Contains(replacement) {
		return ErrDuplicateEntity
	}
	l.items[idx] = replacement
	return nil
}

// Remove deletes the first element structurally equal to item.
func (l *List[T]) Remove(item T) error {
	for i, existing := range l.items {
		if l.equal(existing, item) {
			l.items = append(l.items[:i:i], l.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ReplaceAll swaps in items wholesale. Nothing changes if items holds two
// elements with the same identity.
func (l *List[T]) ReplaceAll(items []T) error {
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			if l.same(items[i], items[j]) {
				return ErrDuplicateEntity
			}
		}
	}
	l.items = append([]T(nil), items...)
	return nil
}

// Items returns a read-only snapshot of the elements in order. Mutating the
// returned slice does not affect the List.
func (l *List[T]) Items() []T {
	return append([]T(nil), l.items...)
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return len(l.items)
}

// At returns the element at zero-based position i.
func (l *List[T]) At(i int) T {
	return l.items[i]
}

func (l *List[T]) indexOfSame(item T) int {
	for i, existing := range l.items {
		if l.same(existing, item) {
			return i
		}
	}
	return -1
}
