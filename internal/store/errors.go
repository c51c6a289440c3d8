package store

import "fmt"

// UnknownBackendError indicates a backend name with no registered implementation
type UnknownBackendError struct {
	Name string
}

func (e *UnknownBackendError) Error() string {
	return fmt.Sprintf("unknown cache backend %q (expected file, bolt or sqlite)", e.Name)
}
