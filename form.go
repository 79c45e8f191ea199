package paymentwindow

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// RedirectURL returns the action URL carrying the signed fields as query
// string, for hosts that redirect the browser instead of posting a form.
func (s *Signer) RedirectURL(fs FieldSet) (string, error) {
	fields, err := s.FormFields(fs)
	if err != nil {
		return "", err
	}
	u, err := url.Parse(s.cfg.actionURL)
	if err != nil {
		return "", fmt.Errorf("paymentwindow: parse action URL: %w", err)
	}
	u.RawQuery = encodeForm(fields)
	return u.String(), nil
}

// NewFormRequest builds the form POST of the signed fields to the action
// URL. Sending it is left to the caller's HTTP client.
func (s *Signer) NewFormRequest(ctx context.Context, fs FieldSet) (*http.Request, error) {
	fields, err := s.FormFields(fs)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.actionURL, strings.NewReader(encodeForm(fields)))
	if err != nil {
		return nil, fmt.Errorf("paymentwindow: build form request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req, nil
}

func encodeForm(fields map[string]string) string {
	values := make(url.Values, len(fields))
	for k, v := range fields {
		values.Set(k, v)
	}
	return values.Encode()
}
