// Package paymentwindow builds and verifies signed requests for the OnPay
// hosted payment window. A merchant collects the request fields, signs them
// with the shared secret and posts them to the window; the processor sends
// the outcome back to the merchant's URLs with its own signature.
//
// # Building a request
//
// Use [NewBuilder] to collect fields from the closed vocabulary in
// [Fields]. [FieldSet.IsValid] checks that every required field is present
// and [FieldSet.Validate] additionally checks formats such as the ISO 4217
// currency code and the minor-unit amount.
//
//	fs := paymentwindow.NewBuilder().
//		GatewayID("1").
//		Currency("DKK").
//		Amount(1000).
//		Reference("order-1").
//		AcceptURL("https://shop.test/ok").
//		Build()
//
// # Signing
//
// [Signer.FormFields] returns the transmission keys and values plus the
// onpay_hmac_sha1 signature, ready to render as hidden form inputs.
// [Signer.RedirectURL] and [Signer.NewFormRequest] produce a GET link and a
// POST request instead. The signature is the hex HMAC-SHA1 of the canonical
// string: keys sorted, pairs form-encoded and the whole string lower-cased.
// Package [github.com/onpay/paymentwindow/signature] holds the primitives.
//
// # Verifying the return trip
//
// [Verifier.Verify] checks the parameters the processor appends to the
// accept, decline and callback URLs. Parameters outside the onpay namespace
// are ignored. [NewCallbackHandler] wraps the verifier in an http.Handler
// that hands a parsed [Callback] to your [CallbackProvider].
package paymentwindow
