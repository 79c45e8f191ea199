package paymentwindow

import (
	"fmt"

	"github.com/onpay/paymentwindow/secret"
	"github.com/onpay/paymentwindow/signature"
)

// Signer signs outgoing field sets with the merchant's shared secret.
// It holds no mutable state and is safe for concurrent use.
type Signer struct {
	key secret.Value
	cfg config
}

// NewSigner returns a Signer keyed with the shared secret. An empty secret
// is accepted here and reported by every signing call.
func NewSigner(key secret.Value, opts ...Option) *Signer {
	return &Signer{
		key: key,
		cfg: newConfig(opts),
	}
}

// ActionURL returns the endpoint the signed fields are submitted to.
func (s *Signer) ActionURL() string {
	return s.cfg.actionURL
}

// Sign returns the hex HMAC-SHA1 of the canonical form of fs.
func (s *Signer) Sign(fs FieldSet) (string, error) {
	if s.key.IsZero() {
		return "", ErrMissingSecret
	}
	if id, ok := fs.Get(FieldGatewayID); !ok || id == "" {
		return "", ErrMissingGatewayID
	}
	canonical, err := fs.Canonical()
	if err != nil {
		return "", fmt.Errorf("paymentwindow: sign: %w", err)
	}
	return signature.Sign(s.key.Bytes(), []byte(canonical)), nil
}

// FormFields returns the transmission fields of fs together with the
// signature field, ready to be posted to [Signer.ActionURL].
func (s *Signer) FormFields(fs FieldSet) (map[string]string, error) {
	sig, err := s.Sign(fs)
	if err != nil {
		return nil, err
	}
	fields := fs.Values()
	fields[signature.SignatureField] = sig
	return fields, nil
}
