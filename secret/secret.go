// Package secret holds sensitive strings that must never end up in logs or
// serialized payloads.
package secret

import (
	"fmt"
	"io"
)

const redacted = "[REDACTED]"

// Value wraps a sensitive string. Formatting and marshalling always yield
// a redacted placeholder; use [Value.Reveal] or [Value.Bytes] to read it.
type Value string

// New wraps s.
func New(s string) Value {
	return Value(s)
}

// Reveal returns the underlying string.
func (v Value) Reveal() string {
	return string(v)
}

// Bytes returns the underlying string as a fresh byte slice.
func (v Value) Bytes() []byte {
	return []byte(v)
}

// IsZero reports whether no secret is set.
func (v Value) IsZero() bool {
	return v == ""
}

func (v Value) String() string {
	return redacted
}

func (v Value) GoString() string {
	return "secret.Value(" + redacted + ")"
}

// Format implements fmt.Formatter so every verb prints the placeholder.
func (v Value) Format(f fmt.State, verb rune) {
	if verb == 'v' && f.Flag('#') {
		_, _ = io.WriteString(f, v.GoString())
		return
	}
	_, _ = io.WriteString(f, redacted)
}

func (v Value) MarshalJSON() ([]byte, error) {
	return []byte(`"` + redacted + `"`), nil
}

func (v Value) MarshalText() ([]byte, error) {
	return []byte(redacted), nil
}
