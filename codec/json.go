package codec

import (
	"encoding/json"
	"io"

	gojson "github.com/goccy/go-json"
)

// UseGoJSON controls whether to use go-json for marshal/unmarshal operations.
// Default is true; set to false to fall back to encoding/json.
var UseGoJSON = true

// JSONMarshal encodes v into JSON.
func JSONMarshal(v any) ([]byte, error) {
	if UseGoJSON {
		return gojson.Marshal(v)
	}
	return json.Marshal(v)
}

// JSONMarshalIndent encodes v into indented JSON.
func JSONMarshalIndent(v any, prefix, indent string) ([]byte, error) {
	if UseGoJSON {
		return gojson.MarshalIndent(v, prefix, indent)
	}
	return json.MarshalIndent(v, prefix, indent)
}

// JSONUnmarshal decodes JSON data into v.
func JSONUnmarshal(data []byte, v any) error {
	if UseGoJSON {
		return gojson.Unmarshal(data, v)
	}
	return json.Unmarshal(data, v)
}

// JSONMarshalWrite encodes v as indented JSON directly to an io.Writer.
func JSONMarshalWrite(w io.Writer, v any) error {
	if UseGoJSON {
		enc := gojson.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
