package engine

import "errors"

// Sentinel errors for the engine's failure taxonomy. Callers branch with
// errors.Is.
var (
	// ErrBlocked means a hard environmental restriction stopped the
	// action before any cost was charged.
	ErrBlocked = errors.New("action blocked")

	// ErrUnlucky means the action went ahead and its cost was charged,
	// but a forced-failure effect produced no catch.
	ErrUnlucky = errors.New("unlucky draw")

	// ErrInsufficientFunds means the account cannot cover a bonus
	// action's cost.
	ErrInsufficientFunds = errors.New("insufficient karma")

	// ErrNotFound means a referenced account or catalog id is absent.
	ErrNotFound = errors.New("not found")
)
