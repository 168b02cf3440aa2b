package engine

import "errors"

var (
	// ErrUnknownAlgorithm indicates an algorithm id not present in the registry.
	ErrUnknownAlgorithm = errors.New("engine: unknown algorithm")
)
