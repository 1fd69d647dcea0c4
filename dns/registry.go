package dns

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
)

// entry is one mnemonic binding: canonical text plus the optional record
// factory. A nil factory means records of the type fall back to
// UnknownRecord.
type entry struct {
	text    string
	factory RecordFactory
}

// Registry maps numeric DNS type codes to canonical textual mnemonics and
// to the factories that construct typed record instances. It is the single
// source of truth for type-code validity, translation, and classification.
//
// A Registry is safe for concurrent use. Read operations take a shared
// lock; Register takes the exclusive lock across the whole replace, so
// concurrent readers never observe a partially updated entry. Registration
// is a rare, administrative operation, typically performed at package init
// of a record implementation.
type Registry struct {
	mu      sync.RWMutex
	byValue map[uint16]entry
	byText  map[string]uint16
}

// NewRegistry returns a registry seeded with the well-known IANA-assigned
// types. Seeded entries carry no factory: concrete record implementations
// install theirs through Register, which is also how a built-in type's
// implementation is overridden.
func NewRegistry() *Registry {
	r := &Registry{
		byValue: make(map[uint16]entry, 32),
		byText:  make(map[string]uint16, 32),
	}
	for _, s := range []struct {
		val  RecordType
		text string
	}{
		{TypeA, "A"},
		{TypeNS, "NS"},
		{TypeCNAME, "CNAME"},
		{TypeSOA, "SOA"},
		{TypePTR, "PTR"},
		{TypeMX, "MX"},
		{TypeTXT, "TXT"},
		{TypeSIG, "SIG"},
		{TypeKEY, "KEY"},
		{TypeAAAA, "AAAA"},
		{TypeSRV, "SRV"},
		{TypeA6, "A6"},
		{TypeDNAME, "DNAME"},
		{TypeOPT, "OPT"},
		{TypeDS, "DS"},
		{TypeRRSIG, "RRSIG"},
		{TypeNSEC, "NSEC"},
		{TypeDNSKEY, "DNSKEY"},
		{TypeNSEC3, "NSEC3"},
		{TypeTSIG, "TSIG"},
		{TypeIXFR, "IXFR"},
		{TypeAXFR, "AXFR"},
		{TypeANY, "ANY"},
	} {
		r.byValue[uint16(s.val)] = entry{text: s.text}
		r.byText[s.text] = uint16(s.val)
	}
	return r
}

// Check validates that val is a usable DNS type code. Every registry
// operation that accepts a numeric type code performs this check first.
func (r *Registry) Check(val int) error {
	if val < 0 || val > MaxType {
		return fmt.Errorf("%w: %d out of range [0, %d]", ErrInvalidType, val, MaxType)
	}
	return nil
}

// Register installs a mnemonic and optional record factory for val.
//
// If text is already bound to a different value the call fails with
// ErrAmbiguousMnemonic and nothing changes. If text is bound to the same
// value, the prior entry and its factory are replaced in one step; this is
// the sanctioned way to override a built-in type's implementation or to
// add a previously unsupported type. Mnemonics in the reserved TYPE<n>
// fallback form are rejected unless n equals val, so the synthesized
// namespace can never be made ambiguous.
//
// A nil factory means records of this type are represented by
// UnknownRecord.
func (r *Registry) Register(val int, text string, factory RecordFactory) error {
	if err := r.Check(val); err != nil {
		return err
	}
	canon := strings.ToUpper(strings.TrimSpace(text))
	if canon == "" {
		return fmt.Errorf("%w: empty mnemonic for type %d", ErrAmbiguousMnemonic, val)
	}
	if n, ok := parseTypeFallback(canon); ok && int(n) != val {
		return fmt.Errorf("%w: %q is reserved for type %d", ErrAmbiguousMnemonic, canon, n)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if prior, ok := r.byText[canon]; ok && int(prior) != val {
		return fmt.Errorf("%w: %q already used by type %d", ErrAmbiguousMnemonic, canon, prior)
	}
	if old, ok := r.byValue[uint16(val)]; ok {
		delete(r.byText, old.text)
		slog.Debug("dns type binding replaced", "type", val, "old", old.text, "new", canon)
	}
	r.byValue[uint16(val)] = entry{text: canon, factory: factory}
	r.byText[canon] = uint16(val)
	return nil
}

// String returns the canonical mnemonic for val. An in-range value with no
// registered mnemonic yields the synthesized TYPE<n> fallback form rather
// than an error.
func (r *Registry) String(val int) (string, error) {
	if err := r.Check(val); err != nil {
		return "", err
	}
	r.mu.RLock()
	e, ok := r.byValue[uint16(val)]
	r.mu.RUnlock()
	if !ok {
		return TypePrefix + strconv.Itoa(val), nil
	}
	return e.text, nil
}

// Value resolves a mnemonic to its type code. The lookup is
// case-insensitive against the canonical uppercase form. A miss is a
// sentinel (ok == false), not an error.
//
// When numberOK is set and the plain lookup misses, the reserved TYPE<n>
// fallback form is accepted for any in-range n. This lets callers accept
// text that was only ever synthesized by String; a bare number is still
// rejected.
func (r *Registry) Value(text string, numberOK bool) (uint16, bool) {
	canon := strings.ToUpper(strings.TrimSpace(text))

	r.mu.RLock()
	val, ok := r.byText[canon]
	r.mu.RUnlock()
	if ok {
		return val, true
	}
	if !numberOK {
		return 0, false
	}
	return parseTypeFallback(canon)
}

// Factory returns the record factory registered for val. ok reports
// whether one exists; record-construction code represents types without a
// factory as UnknownRecord.
func (r *Registry) Factory(val int) (factory RecordFactory, ok bool, err error) {
	if err := r.Check(val); err != nil {
		return nil, false, err
	}
	r.mu.RLock()
	e, present := r.byValue[uint16(val)]
	r.mu.RUnlock()
	if !present || e.factory == nil {
		return nil, false, nil
	}
	return e.factory, true, nil
}

// IsRecordType reports whether val may label a stored resource record.
// The meta types (OPT, TSIG, IXFR, AXFR, ANY) denote protocol operations
// or wildcard matches and are excluded; every other valid value is an
// ordinary record type, registered or not.
func (r *Registry) IsRecordType(val int) (bool, error) {
	if err := r.Check(val); err != nil {
		return false, err
	}
	return !isMetaType(uint16(val)), nil
}

// parseTypeFallback parses the reserved TYPE<n> mnemonic form. It only
// matches when the remainder is a decimal number fitting a type code.
func parseTypeFallback(text string) (uint16, bool) {
	rest, found := strings.CutPrefix(text, TypePrefix)
	if !found || rest == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(rest, 10, 16)
	if err != nil {
		return 0, false
	}
	return uint16(n), true
}
