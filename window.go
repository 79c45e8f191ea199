package paymentwindow

import (
	"maps"
	"strconv"

	canonicaljson "github.com/gibson042/canonicaljson-go"

	"github.com/onpay/paymentwindow/signature"
)

// Builder accumulates the fields of an outgoing payment window request.
// It is not safe for concurrent use; call [Builder.Build] to obtain an
// immutable [FieldSet].
type Builder struct {
	values map[Field]string
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{values: make(map[Field]string)}
}

// Set assigns value to f. Fields outside the vocabulary are ignored.
func (b *Builder) Set(f Field, value string) *Builder {
	if !f.Known() {
		return b
	}
	if b.values == nil {
		b.values = make(map[Field]string)
	}
	b.values[f] = value
	return b
}

// Unset removes f.
func (b *Builder) Unset(f Field) *Builder {
	delete(b.values, f)
	return b
}

func (b *Builder) GatewayID(id string) *Builder { return b.Set(FieldGatewayID, id) }

// Currency sets the ISO 4217 currency code, e.g. "DKK".
func (b *Builder) Currency(code string) *Builder { return b.Set(FieldCurrency, code) }

// Amount sets the amount in minor units.
func (b *Builder) Amount(minor int64) *Builder {
	return b.Set(FieldAmount, strconv.FormatInt(minor, 10))
}

// AmountString sets the amount verbatim. See [FieldSet.Validate] for the accepted format.
func (b *Builder) AmountString(minor string) *Builder { return b.Set(FieldAmount, minor) }

func (b *Builder) Reference(ref string) *Builder { return b.Set(FieldReference, ref) }
func (b *Builder) AcceptURL(u string) *Builder { return b.Set(FieldAcceptURL, u) }
func (b *Builder) DeclineURL(u string) *Builder { return b.Set(FieldDeclineURL, u) }
func (b *Builder) CallbackURL(u string) *Builder { return b.Set(FieldCallbackURL, u) }
func (b *Builder) Type(t string) *Builder { return b.Set(FieldType, t) }
func (b *Builder) Method(m Method) *Builder { return b.Set(FieldMethod, string(m)) }
func (b *Builder) Language(lang string) *Builder { return b.Set(FieldLanguage, lang) }
func (b *Builder) Design(design string) *Builder { return b.Set(FieldDesign, design) }

// ThreeDSecure forces 3-D Secure when enabled and removes the flag otherwise.
func (b *Builder) ThreeDSecure(enabled bool) *Builder {
	if enabled {
		return b.Set(FieldThreeDSecure, ThreeDSecureForced)
	}
	return b.Unset(FieldThreeDSecure)
}

// TestMode marks the request as a test payment when enabled.
func (b *Builder) TestMode(enabled bool) *Builder {
	if enabled {
		return b.Set(FieldTestMode, "1")
	}
	return b.Unset(FieldTestMode)
}

// Build snapshots the current fields.
func (b *Builder) Build() FieldSet {
	return FieldSet{values: maps.Clone(b.values)}
}

// FieldSet is an immutable set of present fields. The zero value is empty.
type FieldSet struct {
	values map[Field]string
}

// Get returns the value of f and whether it is present.
func (fs FieldSet) Get(f Field) (string, bool) {
	v, ok := fs.values[f]
	return v, ok
}

// Has reports whether f is present.
func (fs FieldSet) Has(f Field) bool {
	_, ok := fs.values[f]
	return ok
}

// Len returns the number of present fields.
func (fs FieldSet) Len() int {
	return len(fs.values)
}

// Is3DSecure reports whether 3-D Secure is forced.
func (fs FieldSet) Is3DSecure() bool {
	v, _ := fs.Get(FieldThreeDSecure)
	return v == ThreeDSecureForced
}

// Values returns a fresh map of transmission key to value.
func (fs FieldSet) Values() map[string]string {
	out := make(map[string]string, len(fs.values))
	for f, v := range fs.values {
		out[f.Key()] = v
	}
	return out
}

// Canonical returns the string that is signed for this set.
func (fs FieldSet) Canonical() (string, error) {
	canonical, err := signature.Canonicalize(fs.Values(), signature.Lower)
	if err != nil {
		return "", err
	}
	return string(canonical), nil
}

// MarshalJSON renders the transmission fields as canonical JSON.
func (fs FieldSet) MarshalJSON() ([]byte, error) {
	return canonicaljson.Marshal(fs.Values())
}

// Canonicalize returns the signing string for fields keyed by field name.
// Names outside the vocabulary are ignored.
func Canonicalize(fields map[Field]string) (string, error) {
	b := NewBuilder()
	for f, v := range fields {
		b.Set(f, v)
	}
	return b.Build().Canonical()
}
