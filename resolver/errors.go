package resolver

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument reports a configuration value outside its
	// protocol-defined range. The setter rejects the call and leaves the
	// prior configuration untouched.
	ErrInvalidArgument = errors.New("invalid resolver argument")

	// ErrTransport is the unified failure kind for anything that goes
	// wrong inside an exchange. Send wraps the underlying cause with it
	// exactly once, so callers match one error kind regardless of which
	// transport failed or how deeply the cause was nested.
	ErrTransport = errors.New("dns transport error")

	// ErrTimeout reports that a blocking Send exceeded its configured
	// wait bound. Timeout failures are transport failures: errors.Is
	// matches both ErrTimeout and ErrTransport.
	ErrTimeout = fmt.Errorf("%w: query timed out", ErrTransport)
)
