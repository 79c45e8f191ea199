package signature

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"unicode/utf8"
)

const (
	// Namespace marks the parameters that take part in the protocol.
	Namespace = "onpay"
	// KeyPrefix is prepended to every transmission key.
	KeyPrefix = Namespace + "_"
	// SignatureField carries the hex HMAC digest next to the signed fields.
	SignatureField = KeyPrefix + "hmac_sha1"
)

var (
	ErrEmptyKey         = errors.New("signature: HMAC key must not be empty")
	ErrMissingSignature = errors.New("signature: " + SignatureField + " is missing")
	ErrInvalidSignature = errors.New("signature: invalid signature")
	ErrMalformedValue   = errors.New("signature: field is not valid UTF-8")
)

// Case selects whether the encoded query string is lower-cased before hashing.
type Case int

const (
	// Lower lower-cases the whole encoded string. Outgoing requests are always signed this way.
	Lower Case = iota
	// Preserve hashes the encoded string as-is.
	Preserve
)

// Canonicalize renders fields as a query string sorted by key. Keys and
// values are encoded the way PHP's urlencode does it (space becomes '+',
// every byte outside [A-Za-z0-9._-] is percent-encoded), so the result
// matches what the processor computes byte for byte.
func Canonicalize(fields map[string]string, c Case) ([]byte, error) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var buf bytes.Buffer
	for i, k := range keys {
		v := fields[k]
		if !utf8.ValidString(k) || !utf8.ValidString(v) {
			return nil, fmt.Errorf("%w: %q", ErrMalformedValue, k)
		}
		if i > 0 {
			buf.WriteByte('&')
		}
		buf.WriteString(formEscape(k))
		buf.WriteByte('=')
		buf.WriteString(formEscape(v))
	}
	if c == Lower {
		return bytes.ToLower(buf.Bytes()), nil
	}
	return buf.Bytes(), nil
}

// Sign returns the lower-case hex HMAC-SHA1 of canonical under key.
func Sign(key, canonical []byte) string {
	mac := hmac.New(sha1.New, key)
	_, _ = mac.Write(canonical)
	return hex.EncodeToString(mac.Sum(nil))
}

// Filter returns a copy of fields holding only the keys that contain [Namespace].
func Filter(fields map[string]string) map[string]string {
	out := make(map[string]string, len(fields))
	for k, v := range fields {
		if strings.Contains(k, Namespace) {
			out[k] = v
		}
	}
	return out
}

// Verifier validates the signed fields returned by the processor.
type Verifier interface {
	Verify(ctx context.Context, fields map[string]string) error
}

// VerifierFunc lifts bare functions into [Verifier].
type VerifierFunc func(ctx context.Context, fields map[string]string) error

// Verify delegates to the wrapped function.
func (f VerifierFunc) Verify(ctx context.Context, fields map[string]string) error {
	return f(ctx, fields)
}

// HMACVerifier recomputes the HMAC-SHA1 over the namespaced fields and
// compares it with the value of [SignatureField].
type HMACVerifier struct {
	Key  []byte
	Case Case
}

// Verify implements [Verifier]. The input map is never modified.
func (v HMACVerifier) Verify(_ context.Context, fields map[string]string) error {
	if len(v.Key) == 0 {
		return ErrEmptyKey
	}
	signed := Filter(fields)
	got, ok := signed[SignatureField]
	if !ok {
		return ErrMissingSignature
	}
	delete(signed, SignatureField)

	canonical, err := Canonicalize(signed, v.Case)
	if err != nil {
		return fmt.Errorf("signature: canonicalize: %w", err)
	}
	expected := Sign(v.Key, canonical)
	if !hmac.Equal([]byte(expected), []byte(got)) {
		return ErrInvalidSignature
	}
	return nil
}

// FirstValues flattens url.Values to one value per key.
func FirstValues(values url.Values) map[string]string {
	out := make(map[string]string, len(values))
	for k, v := range values {
		if len(v) == 0 {
			continue
		}
		out[k] = v[0]
	}
	return out
}

func formEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "~", "%7E")
}
