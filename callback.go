package paymentwindow

import (
	"context"
	"errors"
	"net/http"

	"github.com/onpay/paymentwindow/signature"
)

// CallbackProvider is implemented by the merchant's order logic. It only
// ever sees callbacks whose signature has been verified.
type CallbackProvider interface {
	HandleCallback(ctx context.Context, cb *Callback) error
}

// CallbackProviderFunc lifts bare functions into [CallbackProvider].
type CallbackProviderFunc func(ctx context.Context, cb *Callback) error

// HandleCallback delegates to the wrapped function.
func (f CallbackProviderFunc) HandleCallback(ctx context.Context, cb *Callback) error {
	return f(ctx, cb)
}

// CallbackHandler receives the processor's return trip on the accept,
// decline and callback URLs, verifies it and hands it to a [CallbackProvider].
type CallbackHandler struct {
	provider CallbackProvider
	verifier *Verifier
	mux      *http.ServeMux
	cfg      config
}

// NewCallbackHandler builds a [CallbackHandler] backed by net/http's ServeMux.
func NewCallbackHandler(provider CallbackProvider, verifier *Verifier, opts ...Option) *CallbackHandler {
	if provider == nil {
		panic("paymentwindow: callback provider is required")
	}
	if verifier == nil {
		panic("paymentwindow: verifier is required")
	}
	cfg := newConfig(opts)
	h := &CallbackHandler{
		provider: provider,
		verifier: verifier,
		mux:      http.NewServeMux(),
		cfg:      cfg,
	}
	// applyMiddleware wraps in order, so the signature check ends up outermost.
	middleware := append([]Middleware(nil), cfg.middleware...)
	middleware = append(middleware, newSignatureMiddleware(verifier))
	h.registerRoutes(middleware...)
	return h
}

// ServeHTTP satisfies http.Handler.
func (h *CallbackHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *CallbackHandler) registerRoutes(middleware ...Middleware) {
	h.mux.HandleFunc("GET "+h.cfg.callbackPath, applyMiddleware(h.handleCallback, middleware...))
	h.mux.HandleFunc("POST "+h.cfg.callbackPath, applyMiddleware(h.handleCallback, middleware...))
}

func (h *CallbackHandler) handleCallback(w http.ResponseWriter, r *http.Request) {
	cb := CallbackFromContext(r.Context())
	if cb == nil {
		writeJSONError(w, NewProcessingError("callback was not verified"))
		return
	}
	if err := h.provider.HandleCallback(r.Context(), cb); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, callbackResponse{Status: "ok", Reference: cb.Reference})
}

type callbackResponse struct {
	Status    string `json:"status"`
	Reference string `json:"reference,omitempty"`
}

// newSignatureMiddleware verifies the namespaced parameters of the query
// string and form body, then stores the parsed [Callback] in the context.
func newSignatureMiddleware(verifier *Verifier) Middleware {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if err := r.ParseForm(); err != nil {
				writeJSONError(w, NewInvalidRequestError("unable to parse callback parameters"))
				return
			}
			fields := signature.FirstValues(r.Form)
			if err := verifier.Check(r.Context(), fields); err != nil {
				writeJSONError(w, signatureError(err))
				return
			}
			cb, err := ParseCallback(fields)
			if err != nil {
				var be *bindError
				if errors.As(err, &be) {
					writeJSONError(w, NewHTTPError(http.StatusBadRequest, InvalidRequest, MalformedCallback, err.Error(), WithOffendingParam(be.param)))
					return
				}
				writeJSONError(w, NewInvalidRequestError(err.Error()))
				return
			}
			next(w, r.WithContext(contextWithCallback(r.Context(), cb)))
		}
	}
}

func signatureError(err error) *Error {
	switch {
	case errors.Is(err, ErrMissingSignature):
		return NewHTTPError(http.StatusBadRequest, InvalidRequest, SignatureRequired, "callback is not signed")
	case errors.Is(err, ErrMalformedValue):
		return NewHTTPError(http.StatusBadRequest, InvalidRequest, MalformedCallback, "callback parameters are not valid UTF-8")
	case errors.Is(err, ErrMissingSecret):
		return NewProcessingError("shared secret is not configured")
	default:
		return NewHTTPError(http.StatusForbidden, InvalidRequest, InvalidSignature, "signature verification failed")
	}
}
