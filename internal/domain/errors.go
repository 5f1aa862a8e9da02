package domain

import "errors"

// Sentinel errors shared across services and repositories. Controllers map
// these to HTTP status codes; everything else is treated as internal.
var (
	// ErrNotFound is returned when a referenced entity does not resolve.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized is returned when no valid caller identity is present.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is returned when the caller is not the owning profile of
	// the entity being mutated.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidInput is returned when a required input field is missing or
	// malformed.
	ErrInvalidInput = errors.New("invalid input")

	// ErrAlreadyExists is returned by repositories on a unique-constraint
	// violation (duplicate email, duplicate session name, ...).
	ErrAlreadyExists = errors.New("already exists")

	// ErrAlreadyRegistered is returned when registering for a conference the
	// profile already attends.
	ErrAlreadyRegistered = errors.New("already registered for this conference")

	// ErrNoSeatsAvailable is returned when registering for a conference with
	// no seats left.
	ErrNoSeatsAvailable = errors.New("no seats available")

	// ErrInvalidFilter is returned when a query filter names an unknown field
	// or operator, or carries a non-numeric value for a numeric field.
	ErrInvalidFilter = errors.New("invalid filter")

	// ErrMultipleInequalityFields is returned when a filter set applies
	// inequality operators to more than one distinct field.
	ErrMultipleInequalityFields = errors.New("inequality filter is allowed on only one field")
)
