package dns

// EDNS UDP payload-size bounds per RFC 6891.
const (
	EDNSMinUDPPayloadSize     = 512  // Traditional DNS UDP limit (RFC 1035)
	EDNSDefaultUDPPayloadSize = 1232 // Safe EDNS size avoiding fragmentation
	EDNSMaxUDPPayloadSize     = 4096 // Maximum practical EDNS UDP size
)

// EDNSMaxVersion is the largest EDNS version that fits the OPT record's
// version field.
const EDNSMaxVersion = 255

// EDNSOption is one option carried in an OPT pseudo-record. This core
// stores options in resolver configuration and hands them to transports
// unchanged; it never interprets them.
type EDNSOption struct {
	Code uint16 // Option code
	Data []byte // Option data
}
