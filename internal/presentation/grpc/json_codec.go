package grpc

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// The service messages are plain structs rather than generated proto types,
// so callers must use the json content subtype. Registering the codec here
// lets the server decode those requests.
func init() {
	encoding.RegisterCodec(jsonCodec{})
}

type jsonCodec struct{}

func (jsonCodec) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return "json"
}
