package dns_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jroosing/dnscore/dns"
)

func TestCheckRange(t *testing.T) {
	reg := dns.NewRegistry()

	for _, val := range []int{0, 1, 255, 65280, 65535} {
		t.Run(fmt.Sprintf("valid_%d", val), func(t *testing.T) {
			assert.NoError(t, reg.Check(val))
		})
	}
	for _, val := range []int{-1, -65536, 65536, 100000} {
		t.Run(fmt.Sprintf("invalid_%d", val), func(t *testing.T) {
			assert.ErrorIs(t, reg.Check(val), dns.ErrInvalidType)
		})
	}
}

func TestSeededMnemonics(t *testing.T) {
	reg := dns.NewRegistry()

	tests := []struct {
		val  int
		text string
	}{
		{1, "A"},
		{2, "NS"},
		{6, "SOA"},
		{15, "MX"},
		{28, "AAAA"},
		{41, "OPT"},
		{250, "TSIG"},
		{252, "AXFR"},
		{255, "ANY"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			s, err := reg.String(tt.val)
			require.NoError(t, err)
			assert.Equal(t, tt.text, s)

			val, ok := reg.Value(tt.text, false)
			require.True(t, ok)
			assert.Equal(t, tt.val, int(val))
		})
	}
}

func TestValueCaseInsensitive(t *testing.T) {
	reg := dns.NewRegistry()

	for _, text := range []string{"mx", "Mx", "MX", " mx "} {
		val, ok := reg.Value(text, false)
		require.True(t, ok, "lookup %q", text)
		assert.Equal(t, uint16(15), val)
	}
}

func TestValueMissIsSentinel(t *testing.T) {
	reg := dns.NewRegistry()

	_, ok := reg.Value("NOPE", false)
	assert.False(t, ok)
	_, ok = reg.Value("NOPE", true)
	assert.False(t, ok)
}

func TestNumericFallbackRoundTrip(t *testing.T) {
	reg := dns.NewRegistry()

	s, err := reg.String(65280)
	require.NoError(t, err)
	assert.Equal(t, "TYPE65280", s)

	val, ok := reg.Value(s, true)
	require.True(t, ok)
	assert.Equal(t, uint16(65280), val)

	// Without the numeric fallback the synthesized form is just a miss.
	_, ok = reg.Value(s, false)
	assert.False(t, ok)

	// Bare numbers are never accepted.
	_, ok = reg.Value("65280", true)
	assert.False(t, ok)
}

func TestStringInvalidType(t *testing.T) {
	reg := dns.NewRegistry()

	_, err := reg.String(-1)
	assert.ErrorIs(t, err, dns.ErrInvalidType)
	_, err = reg.String(65536)
	assert.ErrorIs(t, err, dns.ErrInvalidType)
}

func TestRegisterPrivateType(t *testing.T) {
	reg := dns.NewRegistry()

	require.NoError(t, reg.Register(65280, "PRIVATE1", nil))

	s, err := reg.String(65280)
	require.NoError(t, err)
	assert.Equal(t, "PRIVATE1", s)

	_, ok, err := reg.Factory(65280)
	require.NoError(t, err)
	assert.False(t, ok)

	rr, err := reg.IsRecordType(65280)
	require.NoError(t, err)
	assert.True(t, rr)
}

func TestRegisterCanonicalizesCase(t *testing.T) {
	reg := dns.NewRegistry()

	require.NoError(t, reg.Register(65281, "private2", nil))

	s, err := reg.String(65281)
	require.NoError(t, err)
	assert.Equal(t, "PRIVATE2", s)

	val, ok := reg.Value("Private2", false)
	require.True(t, ok)
	assert.Equal(t, uint16(65281), val)
}

func TestRegisterSameValueReplaces(t *testing.T) {
	reg := dns.NewRegistry()

	// Overriding a built-in with a factory keeps the mnemonic.
	factory := func() dns.Record { return &dns.UnknownRecord{TypeCode: 1} }
	require.NoError(t, reg.Register(1, "A", factory))

	f, ok, err := reg.Factory(1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, uint16(1), f().Type())

	// Re-registering the same value under new text drops the old binding
	// and the old factory in one step.
	require.NoError(t, reg.Register(1, "ADDR", nil))

	s, err := reg.String(1)
	require.NoError(t, err)
	assert.Equal(t, "ADDR", s)

	_, ok = reg.Value("A", false)
	assert.False(t, ok, "old mnemonic must no longer resolve")

	_, ok, err = reg.Factory(1)
	require.NoError(t, err)
	assert.False(t, ok, "old factory must be gone")
}

func TestRegisterAmbiguousMnemonic(t *testing.T) {
	reg := dns.NewRegistry()

	mxFactory := func() dns.Record { return &dns.UnknownRecord{TypeCode: 15} }
	require.NoError(t, reg.Register(15, "MX", mxFactory))

	err := reg.Register(9999, "MX", func() dns.Record { return &dns.UnknownRecord{TypeCode: 9999} })
	require.ErrorIs(t, err, dns.ErrAmbiguousMnemonic)

	// Both sides are untouched.
	val, ok := reg.Value("MX", false)
	require.True(t, ok)
	assert.Equal(t, uint16(15), val)

	f, ok, err := reg.Factory(15)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, uint16(15), f().Type())

	s, err := reg.String(9999)
	require.NoError(t, err)
	assert.Equal(t, "TYPE9999", s)
}

func TestRegisterReservedFallbackForm(t *testing.T) {
	reg := dns.NewRegistry()

	err := reg.Register(2000, "TYPE3000", nil)
	assert.ErrorIs(t, err, dns.ErrAmbiguousMnemonic)

	// Matching number is harmless.
	assert.NoError(t, reg.Register(3000, "TYPE3000", nil))
}

func TestRegisterRejectsEmptyMnemonic(t *testing.T) {
	reg := dns.NewRegistry()

	assert.ErrorIs(t, reg.Register(65282, "", nil), dns.ErrAmbiguousMnemonic)
	assert.ErrorIs(t, reg.Register(65282, "   ", nil), dns.ErrAmbiguousMnemonic)
}

func TestRegisterInvalidValue(t *testing.T) {
	reg := dns.NewRegistry()

	assert.ErrorIs(t, reg.Register(-1, "NEG", nil), dns.ErrInvalidType)
	assert.ErrorIs(t, reg.Register(70000, "BIG", nil), dns.ErrInvalidType)
}

func TestIsRecordType(t *testing.T) {
	reg := dns.NewRegistry()

	meta := []int{41, 250, 251, 252, 255}
	for _, val := range meta {
		rr, err := reg.IsRecordType(val)
		require.NoError(t, err)
		assert.False(t, rr, "type %d is a meta type", val)
	}

	for _, val := range []int{1, 15, 28, 50, 65280} {
		rr, err := reg.IsRecordType(val)
		require.NoError(t, err)
		assert.True(t, rr, "type %d is an ordinary record type", val)
	}

	_, err := reg.IsRecordType(-5)
	assert.ErrorIs(t, err, dns.ErrInvalidType)
}

func TestConcurrentReadsDuringReplace(t *testing.T) {
	reg := dns.NewRegistry()

	var wg sync.WaitGroup
	stop := make(chan struct{})

	// Readers must always observe a consistent entry for value 15:
	// either the seeded "MX" or one of the replacements, never a
	// half-updated state.
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				s, err := reg.String(15)
				assert.NoError(t, err)
				assert.NotEmpty(t, s)
				if val, ok := reg.Value(s, false); ok {
					assert.Equal(t, uint16(15), val)
				}
			}
		}()
	}

	for i := 0; i < 200; i++ {
		text := "MX"
		if i%2 == 1 {
			text = "MAILX"
		}
		require.NoError(t, reg.Register(15, text, nil))
	}
	close(stop)
	wg.Wait()
}
