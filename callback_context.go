package paymentwindow

import "context"

type callbackContextKey struct{}

func contextWithCallback(ctx context.Context, cb *Callback) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if cb == nil {
		return ctx
	}
	return context.WithValue(ctx, callbackContextKey{}, cb)
}

// CallbackFromContext returns the verified callback stored by [CallbackHandler],
// for use in middleware added with [WithMiddleware].
func CallbackFromContext(ctx context.Context) *Callback {
	if ctx == nil {
		return nil
	}
	if cb, ok := ctx.Value(callbackContextKey{}).(*Callback); ok {
		return cb
	}
	return nil
}
