//go:build purego

package utils

import (
	"encoding/json" //nolint:depguard
	"io"
)

type JSONEncoder = json.Encoder

func MarshalJSON(val any) ([]byte, error) {
	return json.Marshal(val)
}

func UnmarshalJSON(data []byte, val any) error {
	return json.Unmarshal(data, val)
}

// NewJSONEncoder returns an encoder writing one JSON document per line
func NewJSONEncoder(writer io.Writer) *JSONEncoder {
	enc := json.NewEncoder(writer)
	enc.SetEscapeHTML(false)
	return enc
}
