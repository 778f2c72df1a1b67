package json

import "github.com/radhikaj/mystikos/marshaler"

// Marshaler is the pluggable encoding function the facade delegates to.
type Marshaler = marshaler.Marshaler

// SetMarshaler replaces the encoder used by Marshal.
func SetMarshaler(m Marshaler) {
	marshaler.SetMarshaler(m)
}
