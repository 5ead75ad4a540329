package domain

// LocalDevAddress is the base address of the local development user service. Transports bound to
// it use the text encoding; every other address uses the binary encoding.
const LocalDevAddress = "http://localhost:8080"

// Encoding names the wire encoding of a transport. The values are gRPC codec names (content-subtypes).
type Encoding string

const (
	EncodingBinary Encoding = "proto"
	EncodingText   Encoding = "json"
)

// Transport is a bound network endpoint and wire encoding. BaseAddress is the address the transport
// was built from; Target is the host:port dialed by gRPC; Secure is true for https addresses;
// UseBinaryFormat selects the protobuf binary encoding instead of the protojson text encoding.
// Transport is a comparable value and is never mutated after service.BuildTransport returns it.
type Transport struct {
	BaseAddress     string
	Target          string
	Secure          bool
	UseBinaryFormat bool
}

// Encoding returns EncodingBinary when UseBinaryFormat is set, EncodingText otherwise.
func (t Transport) Encoding() Encoding {
	if t.UseBinaryFormat {
		return EncodingBinary
	}
	return EncodingText
}

// IsZero reports whether t was never built (no target).
func (t Transport) IsZero() bool {
	return t.Target == ""
}
