package zone

import (
	"errors"

	"pratofit/internal/core/domain/model/kernel"
	"pratofit/internal/pkg/errs"
	"pratofit/internal/pkg/guard"
)

// ErrZoneIsNotConstructed is returned when a Zone instance was not created
// through the NewZone factory method.
var ErrZoneIsNotConstructed = errors.New("Zone must be created via NewZone constructor")

// Zone is a named shipping-fee tier covering a fixed set of neighborhoods.
// Static and read-only for the session.
type Zone struct {
	fee           kernel.Money
	label         string
	neighborhoods []string

	guard guard.ConstructorGuard
}

// NewZone creates a validated Zone. The fee must be positive, the label
// non-empty and the neighborhood set non-empty.
func NewZone(fee kernel.Money, label string, neighborhoods []string) (Zone, error) {
	z := Zone{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		z.setFee(fee),
		z.setLabel(label),
		z.setNeighborhoods(neighborhoods),
	); err != nil {
		return Zone{}, err
	}

	return z, nil
}

// Validate ensures the zone was created through NewZone.
func (z Zone) Validate() error {
	return z.guard.Validate(ErrZoneIsNotConstructed)
}

// Fee returns the delivery fee for this tier.
func (z Zone) Fee() kernel.Money { return z.fee }

// Label returns the tier's display label.
func (z Zone) Label() string { return z.label }

// Neighborhoods returns a copy of the neighborhood names in this tier.
func (z Zone) Neighborhoods() []string {
	return append([]string(nil), z.neighborhoods...)
}

func (z *Zone) setFee(fee kernel.Money) error {
	if !fee.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("zone fee",
			errors.New("fee must be greater than 0"))
	}
	z.fee = fee
	return nil
}

func (z *Zone) setLabel(label string) error {
	if label == "" {
		return errs.NewValueIsRequiredError("zone label")
	}
	z.label = label
	return nil
}

func (z *Zone) setNeighborhoods(neighborhoods []string) error {
	if len(neighborhoods) == 0 {
		return errs.NewValueIsRequiredError("zone neighborhoods")
	}
	for _, name := range neighborhoods {
		if name == "" {
			return errs.NewValueIsRequiredError("zone neighborhood name")
		}
	}
	z.neighborhoods = append([]string(nil), neighborhoods...)
	return nil
}
