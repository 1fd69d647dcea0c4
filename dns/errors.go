package dns

import "errors"

var (
	// ErrInvalidType reports a numeric type code outside [0, 65535].
	// Wrap this with fmt.Errorf("context: %w", ErrInvalidType) to add context.
	ErrInvalidType = errors.New("invalid dns type")

	// ErrAmbiguousMnemonic reports a registration whose mnemonic is already
	// bound to a different type code. The registry rejects such calls
	// without changing state.
	ErrAmbiguousMnemonic = errors.New("ambiguous dns type mnemonic")
)
