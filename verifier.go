package paymentwindow

import (
	"context"
	"net/url"

	"github.com/onpay/paymentwindow/secret"
	"github.com/onpay/paymentwindow/signature"
)

// Verifier checks the signed fields the processor sends back to the accept,
// decline and callback URLs. It is safe for concurrent use.
type Verifier struct {
	key  secret.Value
	hmac signature.HMACVerifier
}

// NewVerifier returns a Verifier keyed with the shared secret.
func NewVerifier(key secret.Value, opts ...Option) *Verifier {
	cfg := newConfig(opts)
	return &Verifier{
		key: key,
		hmac: signature.HMACVerifier{
			Key:  key.Bytes(),
			Case: cfg.verifyCase,
		},
	}
}

// Verify reports whether fields carry a valid signature. Parameters outside
// the protocol namespace are ignored.
func (v *Verifier) Verify(fields map[string]string) bool {
	return v.Check(context.Background(), fields) == nil
}

// VerifyValues is [Verifier.Verify] for parsed query strings and forms.
// Only the first value of each key is considered.
func (v *Verifier) VerifyValues(values url.Values) bool {
	return v.Verify(signature.FirstValues(values))
}

// Check is [Verifier.Verify] with the reason for rejection: [ErrMissingSecret],
// [ErrMissingSignature], [ErrInvalidSignature] or a wrapped [ErrMalformedValue].
func (v *Verifier) Check(ctx context.Context, fields map[string]string) error {
	if v.key.IsZero() {
		return ErrMissingSecret
	}
	return v.hmac.Verify(ctx, fields)
}
