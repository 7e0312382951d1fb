// Copyright (c) 2026 Caboomlog. All rights reserved.

/*
Package slice complements the standard [slices] package with Map.
*/
package slice

// Map applies transform to every element of input.
func Map[T any, U any](input []T, transform func(T) U) []U {
	if input == nil {
		return nil
	}

	result := make([]U, len(input))
	for i, v := range input {
		result[i] = transform(v)
	}

	return result
}
