package dns

// Message is the subset of the codec's query/response type this core
// reads. The resolver layer only consumes it to build diagnostic text;
// construction, encoding, and section access belong to the codec layer.
type Message interface {
	// ID returns the transaction identifier.
	ID() uint16

	// QuestionName returns the name of the message's question.
	QuestionName() string

	// QuestionType returns the type code of the message's question.
	QuestionType() uint16
}

// TSIGKey is a shared transaction-signature key (RFC 8945). This core
// carries it in resolver configuration only; signing and verification
// happen in the transport layer.
type TSIGKey struct {
	Name      string
	Algorithm string
	Secret    []byte
}
