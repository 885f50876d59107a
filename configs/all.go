package configs

import (
	"fmt"
	"iter"
)

// All decodes path from every file that defines it, in lookup order.
// Loading and decoding errors panic.
func All[T any](loader Loader, path string) iter.Seq[T] {
	return func(yield func(T) bool) {
		for value, err := range loader.IterCueValues(path) {
			if err != nil {
				panic(err)
			}
			var v T
			if err := value.Decode(&v); err != nil {
				panic(wrap(fmt.Errorf("decode %s: %w", path, err)))
			}
			if !yield(v) {
				break
			}
		}
	}
}
