package paymentwindow

import (
	"errors"
	"strings"
	"testing"
)

func TestIsValid(t *testing.T) {
	t.Parallel()

	if !sampleBuilder().Build().IsValid() {
		t.Fatal("expected required fields alone to be valid")
	}
	for _, f := range RequiredFields() {
		t.Run(string(f), func(t *testing.T) {
			t.Parallel()

			fs := sampleBuilder().Unset(f).Build()
			if fs.IsValid() {
				t.Fatalf("set without %s reported valid", f)
			}
			missing := fs.Missing()
			if len(missing) != 1 || missing[0] != f {
				t.Fatalf("Missing() = %v", missing)
			}
			err := fs.RequireValid()
			if !errors.Is(err, ErrIncompleteRequest) || !strings.Contains(err.Error(), string(f)) {
				t.Fatalf("RequireValid() = %v", err)
			}
		})
	}
}

func TestIsValidIgnoresFormat(t *testing.T) {
	t.Parallel()

	fs := sampleBuilder().AmountString("ten").Currency("kroner").Build()
	if !fs.IsValid() {
		t.Fatal("IsValid must only check presence")
	}
	if err := fs.RequireValid(); err != nil {
		t.Fatalf("RequireValid() error = %v", err)
	}
}

func TestMissingOrder(t *testing.T) {
	t.Parallel()

	missing := FieldSet{}.Missing()
	want := RequiredFields()
	if len(missing) != len(want) {
		t.Fatalf("Missing() = %v", missing)
	}
	for i := range want {
		if missing[i] != want[i] {
			t.Fatalf("Missing() = %v, want %v", missing, want)
		}
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		build   func(*Builder)
		wantErr string
	}{
		{name: "valid", build: func(*Builder) {}},
		{
			name: "valid with optional fields",
			build: func(b *Builder) {
				b.Method(MethodViaBill).ThreeDSecure(true).TestMode(true).Language("da").
					DeclineURL("https://shop.test/decline").CallbackURL("https://shop.test/callback")
			},
		},
		{name: "missing gateway", build: func(b *Builder) { b.Unset(FieldGatewayID) }, wantErr: "gatewayId is required"},
		{name: "lowercase currency", build: func(b *Builder) { b.Currency("dkk") }, wantErr: "currency must be an ISO 4217 currency code"},
		{name: "decimal amount", build: func(b *Builder) { b.AmountString("10.00") }, wantErr: "amount must be a whole number of minor units"},
		{name: "negative amount", build: func(b *Builder) { b.Amount(-5) }, wantErr: "amount must be a whole number of minor units"},
		{name: "relative accept url", build: func(b *Builder) { b.AcceptURL("/ok") }, wantErr: "acceptUrl must be an absolute URL"},
		{name: "bad decline url", build: func(b *Builder) { b.DeclineURL("nope") }, wantErr: "declineUrl must be an absolute URL"},
		{name: "unknown method", build: func(b *Builder) { b.Method(Method("cash")) }, wantErr: "method must be a known payment method"},
		{name: "bad 3ds flag", build: func(b *Builder) { b.Set(FieldThreeDSecure, "yes") }, wantErr: "threeDSecure must equal forced"},
		{name: "bad test mode", build: func(b *Builder) { b.Set(FieldTestMode, "true") }, wantErr: "testMode must be one of [0, 1]"},
		{name: "bad language", build: func(b *Builder) { b.Language("dan") }, wantErr: "language must be exactly 2 characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := sampleBuilder()
			tt.build(b)
			err := b.Build().Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}
			if err == nil || err.Error() != tt.wantErr {
				t.Fatalf("Validate() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}
