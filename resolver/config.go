package resolver

import (
	"fmt"
	"math"
	"time"

	"github.com/jroosing/dnscore/dns"
)

// Resolver configuration defaults.
const (
	DefaultPort    = 53
	DefaultTimeout = 10 * time.Second

	// DefaultEDNSPayloadSize is applied when SetEDNS is given payload
	// size 0.
	DefaultEDNSPayloadSize = dns.EDNSDefaultUDPPayloadSize

	// EDNSDisabled is the version value marking EDNS as off.
	EDNSDisabled = -1
)

const maxEDNSFlags = 0xFFFF // extended flags occupy 16 bits of the OPT TTL

// Config is the per-instance configuration surface shared by resolver
// implementations, normally embedded in the implementing struct.
//
// A Config is owned by exactly one resolver instance. Setters are plain
// mutations with no I/O side effect and are not synchronized against
// in-flight sends; treat a resolver's configuration as fixed once
// exchanges are outstanding.
//
// The zero value is not ready for use; NewConfig applies the protocol
// defaults.
type Config struct {
	port             uint16
	useTCP           bool
	ignoreTruncation bool
	ednsVersion      int
	ednsPayloadSize  uint16
	ednsFlags        uint32
	ednsOptions      []dns.EDNSOption
	tsigKey          *dns.TSIGKey
	timeout          time.Duration
	registry         *dns.Registry
}

// NewConfig returns a Config with protocol defaults: port 53, UDP,
// truncation honored, EDNS disabled, no TSIG key, 10 second timeout.
func NewConfig() *Config {
	return &Config{
		port:        DefaultPort,
		ednsVersion: EDNSDisabled,
		timeout:     DefaultTimeout,
	}
}

// SetPort sets the server port queries are sent to.
func (c *Config) SetPort(port uint16) { c.port = port }

// Port returns the server port queries are sent to.
func (c *Config) Port() uint16 { return c.port }

// SetTCP sets whether TCP connections are used by default.
func (c *Config) SetTCP(flag bool) { c.useTCP = flag }

// TCP reports whether TCP connections are used by default.
func (c *Config) TCP() bool { return c.useTCP }

// SetIgnoreTruncation sets whether truncated responses are ignored.
// When false, a truncated response over UDP causes a retransmission
// over TCP.
func (c *Config) SetIgnoreTruncation(flag bool) { c.ignoreTruncation = flag }

// IgnoreTruncation reports whether truncated responses are ignored.
func (c *Config) IgnoreTruncation() bool { return c.ignoreTruncation }

// SetEDNS configures the EDNS information on outgoing messages.
//
// version 0 selects EDNS0; EDNSDisabled (-1) turns EDNS off. payloadSize
// is the maximum packet size this host can receive over UDP, 0 selecting
// DefaultEDNSPayloadSize. flags are the extended flags placed in the OPT
// record; options are carried to the transport unchanged.
//
// An out-of-range argument fails with ErrInvalidArgument and leaves the
// prior configuration untouched.
func (c *Config) SetEDNS(version, payloadSize int, flags uint32, options ...dns.EDNSOption) error {
	if version < EDNSDisabled || version > dns.EDNSMaxVersion {
		return fmt.Errorf("%w: EDNS version %d out of range [-1, %d]",
			ErrInvalidArgument, version, dns.EDNSMaxVersion)
	}
	if payloadSize != 0 && (payloadSize < dns.EDNSMinUDPPayloadSize || payloadSize > math.MaxUint16) {
		return fmt.Errorf("%w: EDNS payload size %d out of range [%d, %d]",
			ErrInvalidArgument, payloadSize, dns.EDNSMinUDPPayloadSize, math.MaxUint16)
	}
	if flags > maxEDNSFlags {
		return fmt.Errorf("%w: EDNS flags %#x exceed 16 bits", ErrInvalidArgument, flags)
	}

	if payloadSize == 0 {
		payloadSize = DefaultEDNSPayloadSize
	}
	c.ednsVersion = version
	c.ednsPayloadSize = uint16(payloadSize)
	c.ednsFlags = flags
	c.ednsOptions = append([]dns.EDNSOption(nil), options...)
	return nil
}

// EDNSVersion returns the configured EDNS version, EDNSDisabled when EDNS
// is off.
func (c *Config) EDNSVersion() int { return c.ednsVersion }

// EDNSPayloadSize returns the advertised UDP payload size.
func (c *Config) EDNSPayloadSize() uint16 { return c.ednsPayloadSize }

// EDNSFlags returns the extended flags placed in the OPT record.
func (c *Config) EDNSFlags() uint32 { return c.ednsFlags }

// EDNSOptions returns a copy of the configured EDNS options.
func (c *Config) EDNSOptions() []dns.EDNSOption {
	return append([]dns.EDNSOption(nil), c.ednsOptions...)
}

// SetTSIGKey specifies the key outgoing messages are signed with. nil
// disables signing.
func (c *Config) SetTSIGKey(key *dns.TSIGKey) { c.tsigKey = key }

// TSIGKey returns the configured signing key, nil when signing is off.
func (c *Config) TSIGKey() *dns.TSIGKey { return c.tsigKey }

// SetTimeout sets how long the blocking Send waits for a response before
// giving up. Non-positive durations reset to DefaultTimeout.
func (c *Config) SetTimeout(timeout time.Duration) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c.timeout = timeout
}

// Timeout returns the wait bound applied by the blocking Send.
func (c *Config) Timeout() time.Duration { return c.timeout }

// SetRegistry sets the type registry used to render query types in
// diagnostic text. nil selects a shared registry seeded with the
// well-known types.
func (c *Config) SetRegistry(reg *dns.Registry) { c.registry = reg }

// Registry returns the type registry used for diagnostics.
func (c *Config) Registry() *dns.Registry {
	if c.registry == nil {
		return builtinTypes
	}
	return c.registry
}
