package grpc

import (
	"encoding/json"
	"fmt"

	"google.golang.org/grpc/encoding"
)

// codecName is the content-subtype clients request ("application/grpc+json").
const codecName = "json"

func init() {
	encoding.RegisterCodec(financeCodec{})
}

// financeCodec marshals the finance API's wire messages as JSON. It backs
// the hand-rolled service descriptor until buf-generated protobuf bindings
// replace it.
type financeCodec struct{}

func (financeCodec) Marshal(v interface{}) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("json codec: marshal %T: %w", v, err)
	}
	return data, nil
}

func (financeCodec) Unmarshal(data []byte, v interface{}) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("json codec: unmarshal into %T: %w", v, err)
	}
	return nil
}

func (financeCodec) Name() string {
	return codecName
}
