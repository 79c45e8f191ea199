package paymentwindow

import (
	"strings"
	"testing"

	"github.com/onpay/paymentwindow/signature"
)

func TestFieldKeys(t *testing.T) {
	t.Parallel()

	for _, f := range Fields() {
		want := signature.KeyPrefix + strings.ToLower(string(f))
		if f == FieldThreeDSecure {
			want = "onpay_3dsecure"
		}
		if got := f.Key(); got != want {
			t.Fatalf("%s.Key() = %q, want %q", f, got, want)
		}
		back, ok := FieldForKey(f.Key())
		if !ok || back != f {
			t.Fatalf("FieldForKey(%q) = %q, %v", f.Key(), back, ok)
		}
	}
}

func TestFieldsVocabulary(t *testing.T) {
	t.Parallel()

	if got := len(Fields()); got != 13 {
		t.Fatalf("expected 13 fields got %d", got)
	}
	if Field("secret").Known() {
		t.Fatal("unexpected field in vocabulary")
	}
	if Field("secret").Key() != "" {
		t.Fatal("unknown field must not have a transmission key")
	}
	if _, ok := FieldForKey(signature.SignatureField); ok {
		t.Fatal("signature field must not be part of the vocabulary")
	}
}

func TestRequiredFieldsIsACopy(t *testing.T) {
	t.Parallel()

	fields := RequiredFields()
	want := []Field{FieldGatewayID, FieldCurrency, FieldAmount, FieldReference, FieldAcceptURL}
	if len(fields) != len(want) {
		t.Fatalf("unexpected required fields %v", fields)
	}
	for i := range want {
		if fields[i] != want[i] {
			t.Fatalf("unexpected required fields %v", fields)
		}
	}
	fields[0] = FieldDesign
	if RequiredFields()[0] != FieldGatewayID {
		t.Fatal("RequiredFields exposed the policy slice")
	}
}
