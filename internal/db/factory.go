package db

import (
	"fmt"

	"xbench/internal/benchmark"
)

// NewStore creates a run history store for the configured backend.
// Supported backends are "json" (the default) and "sqlite".
func NewStore(backend, path string) (benchmark.Store, error) {
	switch backend {
	case "", "json":
		return benchmark.NewFileStore(path)
	case "sqlite":
		return NewSQLiteStore(path)
	default:
		return nil, fmt.Errorf("unknown history backend %q (supported: json, sqlite)", backend)
	}
}
