// Package dns provides the type registry and boundary contracts shared by
// the record, codec, and resolver layers of dnscore.
//
// The package has two halves:
//
//   - The Registry: a bidirectional mapping between numeric DNS type codes,
//     their canonical textual mnemonics, and the factories that construct
//     typed record instances. The registry is the extension point for
//     adding or overriding record-type implementations at runtime.
//
//   - Boundary types: the minimal Record, Message, EDNSOption, and TSIGKey
//     contracts through which the external wire codec, concrete record
//     implementations, and transport resolvers talk to this core. No wire
//     encoding or decoding happens here.
package dns

// RecordType represents DNS resource record types (RFC 1035 and friends).
type RecordType uint16

const (
	TypeA        RecordType = 1   // IPv4 address
	TypeNS       RecordType = 2   // Authoritative name server
	TypeCNAME    RecordType = 5   // Canonical name (alias)
	TypeSOA      RecordType = 6   // Start of Authority
	TypePTR      RecordType = 12  // Domain name pointer (reverse DNS)
	TypeMX       RecordType = 15  // Mail exchange
	TypeTXT      RecordType = 16  // Text strings
	TypeISDN     RecordType = 20  // ISDN calling address
	TypeSIG      RecordType = 24  // Signature
	TypeKEY      RecordType = 25  // Key
	TypeAAAA     RecordType = 28  // IPv6 address (RFC 3596)
	TypeNIMLOC   RecordType = 32  // Nimrod locator
	TypeSRV      RecordType = 33  // Server selection
	TypeA6       RecordType = 38  // IPv6 address (historic)
	TypeDNAME    RecordType = 39  // Non-terminal name redirection
	TypeOPT      RecordType = 41  // EDNS pseudo-record (RFC 6891)
	TypeDS       RecordType = 43  // Delegation signer
	TypeIPSECKEY RecordType = 45  // IPSEC key
	TypeRRSIG    RecordType = 46  // Resource record signature
	TypeNSEC     RecordType = 47  // Next secure name
	TypeDNSKEY   RecordType = 48  // DNSSEC key
	TypeNSEC3    RecordType = 50  // Next secure, 3rd edition
	TypeTSIG     RecordType = 250 // Transaction signature
	TypeIXFR     RecordType = 251 // Incremental zone transfer
	TypeAXFR     RecordType = 252 // Full zone transfer
	TypeANY      RecordType = 255 // Matches any type
)

// TypePrefix is the reserved prefix of the numeric-fallback mnemonic form
// (e.g. "TYPE65280") synthesized for in-range values with no registered
// mnemonic.
const TypePrefix = "TYPE"

// MaxType is the largest valid DNS type code.
const MaxType = 0xFFFF

// isMetaType reports whether val denotes a protocol operation or wildcard
// match rather than a storable record. The set is protocol-fixed and is
// not affected by runtime type registration.
func isMetaType(val uint16) bool {
	switch RecordType(val) {
	case TypeOPT, TypeTSIG, TypeIXFR, TypeAXFR, TypeANY:
		return true
	default:
		return false
	}
}
