package verushash

import "errors"

var (
	// ErrInvalidArgument caller supplied something that is not hashable, such as an unknown variant
	ErrInvalidArgument = errors.New("verushash: invalid argument")

	// ErrInternalInvariant the hasher reached a state that should be impossible; the call is aborted
	ErrInternalInvariant = errors.New("verushash: internal invariant violated")
)
