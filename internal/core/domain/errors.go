// internal/core/domain/errors.go
package domain

import "errors"

// Errores de dominio comunes.
var (
	// Artifact errors
	ErrEmptyArtifact = errors.New("artifact value cannot be empty")
	ErrInvalidKind   = errors.New("invalid artifact kind")
	ErrKindMismatch  = errors.New("value does not match artifact kind")

	// Pass errors
	ErrUnknownPass = errors.New("unknown pass")

	// Inspector errors
	ErrInspectorNotFound = errors.New("no inspector registered for kind")

	// Configuration errors
	ErrInvalidConfig     = errors.New("invalid configuration")
	ErrConfigLoadFailed  = errors.New("failed to load configuration")
	ErrConfigParseFailed = errors.New("failed to parse configuration")
)
