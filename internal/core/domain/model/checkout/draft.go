package checkout

import (
	"fmt"
	"strings"

	"pratofit/internal/pkg/errs"
)

// PaymentMethod is the customer's chosen way to pay, relayed to the human
// operator inside the order message.
type PaymentMethod int

const (
	// PaymentUnknown represents an invalid or undefined method.
	PaymentUnknown PaymentMethod = iota

	// PaymentPix pays via PIX transfer.
	PaymentPix

	// PaymentLink asks the operator for a payment link.
	PaymentLink
)

// ParsePaymentMethod converts a wire value ("pix" | "link") to a
// PaymentMethod.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch s {
	case "pix":
		return PaymentPix, nil
	case "link":
		return PaymentLink, nil
	default:
		return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause("payment method",
			fmt.Errorf("%q is not a valid payment method", s))
	}
}

// String returns the wire name of the payment method.
func (p PaymentMethod) String() string {
	switch p {
	case PaymentPix:
		return "pix"
	case PaymentLink:
		return "link"
	default:
		return "unknown"
	}
}

// Field names a fulfillment-form field that failed validation.
type Field string

// Form fields reported by Draft.Validate.
const (
	FieldName         Field = "name"
	FieldStreet       Field = "street"
	FieldNumber       Field = "number"
	FieldNeighborhood Field = "neighborhood"
	FieldPostalCode   Field = "postalCode"
	FieldPickupTime   Field = "pickupTime"
)

// Draft is the transient fulfillment form: it exists only for the duration
// of the checkout and is discarded after submission or cancellation. The
// resolved neighborhood is not part of the draft; it lives on the Checkout
// and is passed to Validate separately.
type Draft struct {
	Name        string
	Street      string
	Number      string
	PostalCode  string
	PickupTime  string
	Observation string
	Payment     PaymentMethod
}

// Validate checks the draft against the fulfillment mode and returns every
// violated field at once; submission is blocked while any violation
// remains. Rules:
//
//   - name: required, at least two whitespace-separated tokens
//   - delivery: street, house number and resolved neighborhood required,
//     postal code must normalize to exactly eight digits
//   - pickup: a requested time is required
func (d Draft) Validate(mode Mode, neighborhood string) []Field {
	var violations []Field

	if len(strings.Fields(d.Name)) < 2 {
		violations = append(violations, FieldName)
	}

	switch mode {
	case ModeDelivery:
		if strings.TrimSpace(d.Street) == "" {
			violations = append(violations, FieldStreet)
		}
		if strings.TrimSpace(d.Number) == "" {
			violations = append(violations, FieldNumber)
		}
		if neighborhood == "" {
			violations = append(violations, FieldNeighborhood)
		}
		if !IsValidPostalCode(d.PostalCode) {
			violations = append(violations, FieldPostalCode)
		}
	case ModePickup:
		if strings.TrimSpace(d.PickupTime) == "" {
			violations = append(violations, FieldPickupTime)
		}
	}

	return violations
}
