package trace

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Encode writes t as YAML.
func Encode(w io.Writer, t *Trace) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return fmt.Errorf("trace: encode: %w", err)
	}
	return enc.Close()
}

// Decode reads a YAML trace. Unknown fields are rejected.
func Decode(r io.Reader) (*Trace, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var t Trace
	if err := dec.Decode(&t); err != nil {
		return nil, fmt.Errorf("trace: decode: %w", err)
	}
	if t.Rows <= 0 {
		return nil, fmt.Errorf("trace: decode: rows must be positive, got %d", t.Rows)
	}
	return &t, nil
}
