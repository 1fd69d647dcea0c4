package resolver

import (
	"sync"

	"github.com/jroosing/dnscore/dns"
)

// State identifies where an exchange is in its lifecycle.
type State int

const (
	// StateCreated: the exchange exists but has not been dispatched.
	StateCreated State = iota
	// StateDispatched: SendAsync handed the exchange to a transport.
	StateDispatched
	// StateResponded: the transport completed with a response.
	StateResponded
	// StateTimedOut: the blocking waiter gave up after its timeout.
	StateTimedOut
	// StateCancelled: the blocking waiter was cancelled externally.
	StateCancelled
	// StateFailed: the transport completed with an error.
	StateFailed
)

// Terminal reports whether s is one of the four terminal states.
func (s State) Terminal() bool {
	switch s {
	case StateResponded, StateTimedOut, StateCancelled, StateFailed:
		return true
	default:
		return false
	}
}

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateDispatched:
		return "dispatched"
	case StateResponded:
		return "responded"
	case StateTimedOut:
		return "timed-out"
	case StateCancelled:
		return "cancelled"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Exchange is the future-like handle for one query/response round.
//
// A transport completes an exchange at most once, through Complete or
// Fail. Callers observe it without blocking via Done and Result, or
// through the blocking Send helper. The first terminal transition wins
// and is sticky; exchanges are single-use and never retried — retry and
// failover belong to higher-layer composite resolvers.
//
// An abandoned exchange holds no caller-side resources beyond its own
// allocation; a transport completing it later is a no-op for the caller.
type Exchange struct {
	query dns.Message
	done  chan struct{}

	mu    sync.Mutex
	state State
	resp  dns.Message
	err   error
}

// NewExchange returns an exchange for query in StateCreated. Transports
// create one inside SendAsync and call Dispatch before starting work.
func NewExchange(query dns.Message) *Exchange {
	return &Exchange{query: query, done: make(chan struct{})}
}

// Query returns the query this exchange was created for.
func (e *Exchange) Query() dns.Message { return e.query }

// Dispatch marks the exchange as handed to a transport.
func (e *Exchange) Dispatch() {
	e.mu.Lock()
	if e.state == StateCreated {
		e.state = StateDispatched
	}
	e.mu.Unlock()
}

// Complete resolves the exchange with a response. It is a no-op if the
// exchange already reached a terminal state.
func (e *Exchange) Complete(resp dns.Message) {
	e.finish(StateResponded, resp, nil)
}

// Fail resolves the exchange with err, which must be non-nil. It is a
// no-op if the exchange already reached a terminal state.
func (e *Exchange) Fail(err error) {
	e.finish(StateFailed, nil, err)
}

// markTimedOut records that the blocking waiter gave up, unless the
// transport already completed the exchange.
func (e *Exchange) markTimedOut(err error) {
	e.finish(StateTimedOut, nil, err)
}

// markCancelled records that the blocking waiter was cancelled, unless
// the transport already completed the exchange.
func (e *Exchange) markCancelled(err error) {
	e.finish(StateCancelled, nil, err)
}

// finish performs the single terminal transition. Later calls lose.
func (e *Exchange) finish(state State, resp dns.Message, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state.Terminal() {
		return
	}
	e.state = state
	e.resp = resp
	e.err = err
	close(e.done)
}

// Done returns a channel closed when the exchange reaches a terminal
// state.
func (e *Exchange) Done() <-chan struct{} { return e.done }

// Result returns the exchange's outcome. Before Done is closed both
// results are nil.
func (e *Exchange) Result() (dns.Message, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.resp, e.err
}

// State returns the exchange's current lifecycle state.
func (e *Exchange) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}
