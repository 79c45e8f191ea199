package paymentwindow

import (
	"fmt"
	"maps"
	"net/url"

	"github.com/oapi-codegen/runtime"

	"github.com/onpay/paymentwindow/signature"
)

// Callback is the verified outcome the processor reports for a payment.
type Callback struct {
	// Transaction UUID assigned by the processor.
	UUID string
	// Human-readable transaction number.
	Number string
	// Merchant reference from the original request.
	Reference string
	// Amount in minor units.
	Amount int64
	// Currency as sent by the processor, numeric or alphabetic ISO 4217.
	Currency string
	// Payment method used, e.g. "card".
	Method Method
	// Masked card number for card payments.
	CardMask string
	// Non-empty and non-zero when the payment was declined.
	ErrorCode string
	// All verified namespaced fields, signature excluded.
	Fields map[string]string
}

// Accepted reports whether the processor accepted the payment.
func (c *Callback) Accepted() bool {
	return c.ErrorCode == "" || c.ErrorCode == "0"
}

// ParseCallback binds the namespaced fields into a [Callback]. It does not
// verify the signature; use [Verifier.Check] or [CallbackHandler] first.
func ParseCallback(fields map[string]string) (*Callback, error) {
	signed := signature.Filter(fields)
	delete(signed, signature.SignatureField)

	query := make(url.Values, len(signed))
	for k, v := range signed {
		query.Set(k, v)
	}

	cb := &Callback{Fields: maps.Clone(signed)}
	var method string
	bindings := []struct {
		name string
		dest any
	}{
		{signature.KeyPrefix + "uuid", &cb.UUID},
		{signature.KeyPrefix + "number", &cb.Number},
		{FieldReference.Key(), &cb.Reference},
		{FieldAmount.Key(), &cb.Amount},
		{FieldCurrency.Key(), &cb.Currency},
		{FieldMethod.Key(), &method},
		{signature.KeyPrefix + "cardmask", &cb.CardMask},
		{signature.KeyPrefix + "errorcode", &cb.ErrorCode},
	}
	for _, b := range bindings {
		if _, ok := query[b.name]; !ok {
			continue
		}
		if err := runtime.BindQueryParameter("form", true, true, b.name, query, b.dest); err != nil {
			return nil, &bindError{param: b.name, err: err}
		}
	}
	cb.Method = Method(method)
	return cb, nil
}

type bindError struct {
	param string
	err   error
}

func (e *bindError) Error() string {
	return fmt.Sprintf("paymentwindow: invalid %s: %v", e.param, e.err)
}

func (e *bindError) Unwrap() error {
	return e.err
}
