// Package codec registers the text wire encoding used by transports bound to the local
// development address: protobuf messages carried as protojson under the gRPC content-subtype
// "json" (Content-Type application/grpc+json). The binary encoding is gRPC's built-in "proto" codec.
package codec

import (
	"fmt"

	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// Name is the gRPC codec name and content-subtype of the text encoding.
const Name = "json"

func init() {
	encoding.RegisterCodec(JSON{})
}

// JSON implements encoding.Codec with protojson. Unknown fields are discarded on unmarshal.
type JSON struct{}

// Marshal encodes v (must be a proto.Message, e.g. *dynamicpb.Message) as protojson.
//
// Returns: (bytes, nil) on success; (nil, error) when v is not a proto.Message or protojson fails.
//
// Called by gRPC when sending a message with content-subtype "json".
func (JSON) Marshal(v any) ([]byte, error) {
	m, ok := v.(proto.Message)
	if !ok {
		return nil, fmt.Errorf("codec.json: cannot marshal %T: not a proto.Message", v)
	}
	return protojson.Marshal(m)
}

// Unmarshal decodes protojson data into v (must be a proto.Message).
//
// Returns: nil on success; error when v is not a proto.Message or data is not valid protojson for v's type.
//
// Called by gRPC when receiving a message with content-subtype "json".
func (JSON) Unmarshal(data []byte, v any) error {
	m, ok := v.(proto.Message)
	if !ok {
		return fmt.Errorf("codec.json: cannot unmarshal into %T: not a proto.Message", v)
	}
	return protojson.UnmarshalOptions{DiscardUnknown: true}.Unmarshal(data, m)
}

// Name returns the codec name "json".
func (JSON) Name() string {
	return Name
}
