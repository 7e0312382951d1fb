// Copyright (c) 2026 Caboomlog. All rights reserved.

// Package pointer has generic helpers for optional values such as a category's parent ID.
package pointer

// To returns a pointer to v.
func To[T any](v T) *T {
	return &v
}

// Val dereferences p, returning the zero value if p is nil.
func Val[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// Equal reports whether a and b are both nil or point to equal values.
func Equal[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
