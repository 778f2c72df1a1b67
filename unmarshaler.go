package json

import "github.com/radhikaj/mystikos/unmarshaler"

// Unmarshaler is the pluggable decoding function the facade delegates to.
type Unmarshaler = unmarshaler.Unmarshaler

// SetUnmarshaler replaces the decoder used by Unmarshal.
func SetUnmarshaler(m Unmarshaler) {
	unmarshaler.SetUnmarshaler(m)
}
