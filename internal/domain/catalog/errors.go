package catalog

import "errors"

// ErrNotFound lo devuelven los adapters de storage cuando el pet no existe.
var ErrNotFound = errors.New("pet not found")
