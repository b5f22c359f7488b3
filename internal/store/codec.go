package store

import "encoding/json"

// Codec encodes and decodes persisted payloads. Stores treat a decode failure
// as absence (session) or as the seed set (tickets); substituting a stricter
// codec is the hook for surfacing corrupt state instead of masking it.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// JSONCodec is the default payload codec.
type JSONCodec struct{}

func (JSONCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (JSONCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
