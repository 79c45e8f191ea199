package paymentwindow

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	minorUnitsPattern = regexp.MustCompile(`^[0-9]+$`)
	knownMethods      = map[Method]struct{}{
		MethodCard:      {},
		MethodMobilePay: {},
		MethodViaBill:   {},
	}
	validate = newValidator()
)

// IsValid reports whether every required field is present. Values are not
// inspected; see [FieldSet.Validate] for format checks.
func (fs FieldSet) IsValid() bool {
	for _, f := range requiredFields {
		if !fs.Has(f) {
			return false
		}
	}
	return true
}

// Missing returns the required fields that are absent, in policy order.
func (fs FieldSet) Missing() []Field {
	var missing []Field
	for _, f := range requiredFields {
		if !fs.Has(f) {
			missing = append(missing, f)
		}
	}
	return missing
}

// RequireValid is [FieldSet.IsValid] as an error wrapping [ErrIncompleteRequest].
func (fs FieldSet) RequireValid() error {
	missing := fs.Missing()
	if len(missing) == 0 {
		return nil
	}
	names := make([]string, len(missing))
	for i, f := range missing {
		names[i] = string(f)
	}
	return fmt.Errorf("%w: %s", ErrIncompleteRequest, strings.Join(names, ", "))
}

// formatRules mirrors the field set for go-playground/validator.
type formatRules struct {
	GatewayID    string `json:"gatewayId" validate:"required"`
	Currency     string `json:"currency" validate:"required,iso4217"`
	Amount       string `json:"amount" validate:"required,minor_units"`
	Reference    string `json:"reference" validate:"required"`
	AcceptURL    string `json:"acceptUrl" validate:"required,url"`
	DeclineURL   string `json:"declineUrl" validate:"omitempty,url"`
	CallbackURL  string `json:"callbackUrl" validate:"omitempty,url"`
	Method       string `json:"method" validate:"omitempty,payment_method"`
	ThreeDSecure string `json:"threeDSecure" validate:"omitempty,eq=forced"`
	TestMode     string `json:"testMode" validate:"omitempty,oneof=0 1"`
	Language     string `json:"language" validate:"omitempty,alpha,len=2"`
}

// Validate checks presence and format of the fields: currency must be an
// ISO 4217 code, amount a non-negative integer in minor units, the URLs
// absolute, and method one of the known payment methods.
func (fs FieldSet) Validate() error {
	get := func(f Field) string {
		v, _ := fs.Get(f)
		return v
	}
	rules := formatRules{
		GatewayID:    get(FieldGatewayID),
		Currency:     get(FieldCurrency),
		Amount:       get(FieldAmount),
		Reference:    get(FieldReference),
		AcceptURL:    get(FieldAcceptURL),
		DeclineURL:   get(FieldDeclineURL),
		CallbackURL:  get(FieldCallbackURL),
		Method:       get(FieldMethod),
		ThreeDSecure: get(FieldThreeDSecure),
		TestMode:     get(FieldTestMode),
		Language:     get(FieldLanguage),
	}
	if err := validate.Struct(rules); err != nil {
		return normalizeValidationError(err)
	}
	return nil
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.Split(field.Tag.Get("json"), ",")[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})

	if err := v.RegisterValidation("minor_units", func(fl validator.FieldLevel) bool {
		return minorUnitsPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	if err := v.RegisterValidation("payment_method", func(fl validator.FieldLevel) bool {
		_, ok := knownMethods[Method(fl.Field().String())]
		return ok
	}); err != nil {
		panic(err)
	}

	return v
}

func normalizeValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}
	first := validationErrs[0]
	return fmt.Errorf("%s %s", first.Field(), validationMessage(first))
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "iso4217":
		return "must be an ISO 4217 currency code"
	case "minor_units":
		return "must be a whole number of minor units"
	case "url":
		return "must be an absolute URL"
	case "payment_method":
		return "must be a known payment method"
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "alpha":
		return "must contain letters only"
	case "eq":
		return fmt.Sprintf("must equal %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("failed validation: %s", fe.Tag())
	}
}
