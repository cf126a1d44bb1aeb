// Package clone defines the copy capability used whenever a template value
// is placed into an output slice or grid.
//
// Placement never aliases the template:
//
//   - if T implements Cloner[T], Of returns v.Clone();
//   - otherwise Of returns v itself, which Go copies by value on assignment
//     (a shallow copy for structs, arrays and scalars).
//
// Pointer, slice and map element types that must not share state SHOULD
// implement Cloner[T]; without it every placement refers to the same target.
package clone

// Cloner is implemented by template types that produce their own copies.
// Clone must return a value that shares no mutable state with the receiver
// at the top level (a shallow copy is sufficient).
type Cloner[T any] interface {
	Clone() T
}

// Of returns a fresh copy of v suitable for placing into a container.
// Complexity: O(1) plus the cost of v.Clone() when implemented.
func Of[T any](v T) T {
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}

	return v
}

// N returns n independent copies of v. n <= 0 yields an empty, non-nil slice.
func N[T any](v T, n int) []T {
	if n < 0 {
		n = 0
	}
	out := make([]T, n)
	for i := range out {
		out[i] = Of(v)
	}

	return out
}
