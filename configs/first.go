package configs

import (
	"errors"
)

// First decodes path from the first file that defines it. A missing value
// gives the zero T; other errors panic.
func First[T any](loader Loader, path string) T {
	var value T
	if err := loader.AssignFirst(path, &value); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return value
		}
		panic(err)
	}
	return value
}
