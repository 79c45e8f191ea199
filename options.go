package paymentwindow

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/onpay/paymentwindow/signature"
)

type config struct {
	actionURL    string
	verifyCase   signature.Case
	callbackPath string
	middleware   []Middleware
}

func newConfig(opts []Option) config {
	cfg := config{
		actionURL:    ActionURL,
		verifyCase:   signature.Lower,
		callbackPath: "/callback",
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}

// Middleware wraps the callback handler. It runs after the signature check.
type Middleware func(http.HandlerFunc) http.HandlerFunc

func applyMiddleware(h http.HandlerFunc, middleware ...Middleware) http.HandlerFunc {
	for _, m := range middleware {
		h = m(h)
	}
	return h
}

// Option customizes a [Signer], [Verifier] or [CallbackHandler]. Options
// that do not concern the object they are passed to are ignored.
type Option func(*config)

// WithActionURL overrides the payment window endpoint, e.g. for a staging
// environment. The URL must be absolute.
func WithActionURL(actionURL string) Option {
	u, err := url.Parse(actionURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		panic("paymentwindow: action URL must be an absolute URL")
	}
	return func(cfg *config) {
		cfg.actionURL = actionURL
	}
}

// WithCaseSensitiveVerification hashes returned fields without lower-casing
// the canonical string first. Outgoing requests are always signed over the
// lower-cased string.
func WithCaseSensitiveVerification() Option {
	return func(cfg *config) {
		cfg.verifyCase = signature.Preserve
	}
}

// WithCallbackPath sets the path the [CallbackHandler] serves. Defaults to /callback.
func WithCallbackPath(path string) Option {
	if !strings.HasPrefix(path, "/") {
		panic("paymentwindow: callback path must start with /")
	}
	return func(cfg *config) {
		cfg.callbackPath = path
	}
}

// WithMiddleware appends custom middleware in the order provided.
func WithMiddleware(mw ...Middleware) Option {
	return func(cfg *config) {
		for _, m := range mw {
			if m == nil {
				continue
			}
			cfg.middleware = append(cfg.middleware, m)
		}
	}
}
