package paymentwindow

import "github.com/onpay/paymentwindow/signature"

// Field names one attribute of a payment window request.
type Field string

const (
	FieldGatewayID    Field = "gatewayId"
	FieldCurrency     Field = "currency"
	FieldAmount       Field = "amount"
	FieldReference    Field = "reference"
	FieldAcceptURL    Field = "acceptUrl"
	FieldType         Field = "type"
	FieldThreeDSecure Field = "threeDSecure"
	FieldLanguage     Field = "language"
	FieldDeclineURL   Field = "declineUrl"
	FieldCallbackURL  Field = "callbackUrl"
	FieldDesign       Field = "design"
	FieldTestMode     Field = "testMode"
	FieldMethod       Field = "method"
)

// Method is a payment method accepted by the window.
type Method string

const (
	MethodCard      Method = "card"
	MethodMobilePay Method = "mobilepay"
	MethodViaBill   Method = "viabill"
)

// ThreeDSecureForced is the only value the 3-D Secure flag carries when set.
const ThreeDSecureForced = "forced"

// ActionURL is the payment window endpoint the signed fields are posted to.
const ActionURL = "https://onpay.io/window/v3/"

type fieldSpec struct {
	field  Field
	suffix string
}

// schema is the closed vocabulary in declaration order. The suffix is the
// lower-cased field name, except for the 3-D Secure flag.
var schema = []fieldSpec{
	{FieldGatewayID, "gatewayid"},
	{FieldCurrency, "currency"},
	{FieldAmount, "amount"},
	{FieldReference, "reference"},
	{FieldAcceptURL, "accepturl"},
	{FieldType, "type"},
	{FieldThreeDSecure, "3dsecure"},
	{FieldLanguage, "language"},
	{FieldDeclineURL, "declineurl"},
	{FieldCallbackURL, "callbackurl"},
	{FieldDesign, "design"},
	{FieldTestMode, "testmode"},
	{FieldMethod, "method"},
}

var requiredFields = []Field{
	FieldGatewayID,
	FieldCurrency,
	FieldAmount,
	FieldReference,
	FieldAcceptURL,
}

var (
	keyByField = make(map[Field]string, len(schema))
	fieldByKey = make(map[string]Field, len(schema))
)

func init() {
	for _, s := range schema {
		key := signature.KeyPrefix + s.suffix
		keyByField[s.field] = key
		fieldByKey[key] = s.field
	}
}

// Fields returns the vocabulary in declaration order.
func Fields() []Field {
	out := make([]Field, len(schema))
	for i, s := range schema {
		out[i] = s.field
	}
	return out
}

// RequiredFields returns the fields every outgoing request must carry.
func RequiredFields() []Field {
	return append([]Field(nil), requiredFields...)
}

// Known reports whether f belongs to the vocabulary.
func (f Field) Known() bool {
	_, ok := keyByField[f]
	return ok
}

// Key returns the transmission key of f, or "" when f is not in the vocabulary.
func (f Field) Key() string {
	return keyByField[f]
}

// FieldForKey maps a transmission key back to its field.
func FieldForKey(key string) (Field, bool) {
	f, ok := fieldByKey[key]
	return f, ok
}
