package intercept

import "errors"

var (
	// ErrInvalidOwner is returned when the owner is not a non-nil pointer
	// to a struct.
	ErrInvalidOwner = errors.New("owner must be a non-nil pointer to a struct")

	// ErrUnknownMember is returned when the named member does not exist on
	// the owner or cannot be replaced.
	ErrUnknownMember = errors.New("member does not exist or is not settable")

	// ErrNotCallable is returned when the member is neither a non-nil
	// function nor an accessor pair with at least one accessor.
	ErrNotCallable = errors.New("member is not callable or an accessor pair")

	// ErrAlreadyWrapped signals a duplicate interception: the member is
	// already backed by a substitute and must be restored before it can be
	// wrapped again.
	ErrAlreadyWrapped = errors.New("member is already wrapped")

	// ErrInvalidTarget is returned when a function interception target is
	// not a non-nil pointer to a function variable.
	ErrInvalidTarget = errors.New("target must be a non-nil pointer to a function variable")
)
