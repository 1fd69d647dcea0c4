package dns

import "fmt"

// Record is the contract concrete resource records satisfy for the
// registry and resolver layers. Factories produce empty, default
// instances; the external wire codec owns parsing and populates them.
type Record interface {
	// Type returns the record's DNS type code.
	Type() uint16
}

// RecordFactory constructs an empty, default instance of one record type.
type RecordFactory func() Record

// UnknownRecord is the generic fallback for types with no registered
// implementation. It carries the raw RDATA bytes untouched so unknown
// types survive a decode/encode round trip.
type UnknownRecord struct {
	TypeCode uint16
	Data     []byte
}

// Type returns the record's DNS type code.
func (r *UnknownRecord) Type() uint16 { return r.TypeCode }

// String renders the RDATA in RFC 3597 unknown-record presentation form.
func (r *UnknownRecord) String() string {
	if len(r.Data) == 0 {
		return `\# 0`
	}
	return fmt.Sprintf(`\# %d %x`, len(r.Data), r.Data)
}

// NewRecord constructs a default record instance for val, using the
// factory registered in reg or falling back to UnknownRecord when the
// type has none.
func NewRecord(reg *Registry, val int) (Record, error) {
	factory, ok, err := reg.Factory(val)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &UnknownRecord{TypeCode: uint16(val)}, nil
	}
	return factory(), nil
}
