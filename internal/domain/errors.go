package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")

	// ErrNotAuthenticated means no usable bearer token could be obtained;
	// callers must short-circuit instead of calling the backend.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrEmptyCart rejects a checkout before any network call is made.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrCheckoutInFlight refuses a second submission while one is pending.
	ErrCheckoutInFlight = errors.New("checkout already in flight")

	// ErrCartCorrupt reports an unreadable persisted cart. Recovery is an
	// empty cart; the condition is logged, never surfaced to the shopper.
	ErrCartCorrupt = errors.New("persisted cart is corrupt")
)
