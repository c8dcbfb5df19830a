package domain

import "errors"

// ─── Sentinel Errors ────────────────────────────────────────────────────────
// Domain errors are pure — no infrastructure dependency.

var (
	// Catalog errors
	ErrDuplicateKey = errors.New("duplicate output key in task catalog")

	// Render errors — local to one task, converted to an error Result
	ErrMissingParam     = errors.New("missing template parameter")
	ErrUnknownBlockType = errors.New("unknown block type")

	// Client errors
	ErrNoAPIKey = errors.New("no API key configured")

	// Document errors
	ErrUnknownBucket = errors.New("unknown bucket")
)
