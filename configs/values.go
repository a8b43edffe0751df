package configs

import (
	"fmt"
	"iter"
)

// All decodes path from every file that sets it, the nearest first.
// Iteration stops at the first error.
func All[T any](loader Loader, path string) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for value, err := range loader.IterCueValues(path) {
			var v T
			if err == nil {
				err = value.Decode(&v)
			}
			if err != nil {
				yield(v, fmt.Errorf("config %s: %w", path, err))
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}

// First returns the nearest value of path, or the zero value if no file sets it.
// Broken config files panic, they are not recoverable at startup.
func First[T any](loader Loader, path string) T {
	for v, err := range All[T](loader, path) {
		if err != nil {
			panic(err)
		}
		return v
	}
	var zero T
	return zero
}
