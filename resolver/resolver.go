// Package resolver defines the contract every DNS transport
// implementation satisfies: the per-instance configuration surface, the
// mandatory asynchronous send primitive, and the blocking Send bridge
// with its timeout and error semantics.
//
// The package contains no network I/O. Transports (UDP, TCP, DNS over
// TLS, failover composites) live in higher layers and plug in through the
// Resolver interface; this package pins down the blocking/non-blocking
// boundary, the timeout policy, and the error taxonomy they must share.
//
// Exchange lifecycle:
//
//	created → dispatched → {responded, timed-out, cancelled, failed}
//
// SendAsync moves an exchange to dispatched; the four terminal states are
// mutually exclusive and sticky. No exchange is reused or retried here —
// retry and failover belong to composite resolvers built on top.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jroosing/dnscore/dns"
)

// builtinTypes renders diagnostic type text when a resolver carries no
// registry of its own.
var builtinTypes = dns.NewRegistry()

// Resolver is an entity able to dispatch a DNS query and produce a
// response, parameterized by transport, timeout, and protocol extensions
// (EDNS, TSIG). Implementations embed a Config for the configuration
// surface and do their wire-level work on goroutines scheduled by the
// supplied Executor.
//
// SendAsync must be safe to call from any goroutine; completion runs on
// executor-supplied goroutines. No ordering is guaranteed between
// concurrently outstanding exchanges of one instance.
type Resolver interface {
	// SendAsync dispatches query and returns the exchange handle
	// observing it, without blocking the caller. A nil exec selects the
	// shared DefaultExecutor.
	SendAsync(query dns.Message, exec Executor) *Exchange

	// Timeout reports the wait bound the blocking Send applies.
	Timeout() time.Duration
}

// registryProvider is satisfied by resolvers embedding Config, giving
// Send a registry for diagnostic type text.
type registryProvider interface {
	Registry() *dns.Registry
}

// Send dispatches query through r on the shared default executor and
// blocks the calling goroutine until the transport completes, r's timeout
// expires, or ctx is cancelled.
//
// Never call Send from a goroutine that is itself running on the shared
// DefaultExecutor: the blocked wait can exhaust the pool servicing the
// asynchronous continuation and deadlock. Use SendAsync directly from
// such code, or a dedicated executor.
//
// Failure mapping:
//   - a failed exchange surfaces as a single ErrTransport-wrapped error
//     preserving the original cause chain, never double-wrapped;
//   - an expired timeout surfaces as ErrTimeout naming the queried name,
//     the query type, and the transaction id;
//   - cancellation of ctx surfaces as an ErrTransport error wrapping
//     ctx.Err, so errors.Is(err, context.Canceled) still holds for the
//     caller's own cancellation handling.
func Send(ctx context.Context, r Resolver, query dns.Message) (dns.Message, error) {
	ex := r.SendAsync(query, nil)

	timer := time.NewTimer(r.Timeout())
	defer timer.Stop()

	select {
	case <-ex.Done():
		resp, err := ex.Result()
		if err == nil {
			return resp, nil
		}
		if errors.Is(err, ErrTransport) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)

	case <-timer.C:
		err := fmt.Errorf("%w resolving %s/%s, id=%d",
			ErrTimeout, query.QuestionName(), typeString(r, query.QuestionType()), query.ID())
		ex.markTimedOut(err)
		return nil, err

	case <-ctx.Done():
		err := fmt.Errorf("%w: %w", ErrTransport, ctx.Err())
		ex.markCancelled(err)
		return nil, err
	}
}

// typeString renders a query type for diagnostics through the resolver's
// registry when it has one.
func typeString(r Resolver, qtype uint16) string {
	types := builtinTypes
	if rp, ok := r.(registryProvider); ok && rp.Registry() != nil {
		types = rp.Registry()
	}
	// A uint16 code is always in range, so String cannot fail here.
	s, _ := types.String(int(qtype))
	return s
}
