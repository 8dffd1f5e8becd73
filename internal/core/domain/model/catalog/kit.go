package catalog

import (
	"errors"
	"fmt"

	"pratofit/internal/core/domain/model/kernel"
	"pratofit/internal/pkg/errs"
	"pratofit/internal/pkg/guard"
)

// ErrKitIsNotConstructed is returned when a Kit instance was not created
// through the NewKit factory method.
var ErrKitIsNotConstructed = errors.New("Kit must be created via NewKit constructor")

// Kit is a fixed-price bundle entitling the customer to a fixed count of
// meal units. It is an immutable value object sourced from static
// configuration; totalMeals is the capacity ceiling the cart enforces.
type Kit struct {
	id           string
	name         string
	totalMeals   int
	price        kernel.Money
	pricePerMeal kernel.Money
	description  string
	highlight    bool

	guard guard.ConstructorGuard
}

// NewKit creates a validated Kit. The identifier and name must be non-empty,
// totalMeals must be positive and the price must be greater than zero.
// pricePerMeal is display-only and is not cross-checked against the price.
func NewKit(
	id string,
	name string,
	totalMeals int,
	price kernel.Money,
	pricePerMeal kernel.Money,
	description string,
	highlight bool,
) (Kit, error) {
	kit := Kit{
		description: description,
		highlight:   highlight,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		kit.setID(id),
		kit.setName(name),
		kit.setTotalMeals(totalMeals),
		kit.setPrice(price),
		kit.setPricePerMeal(pricePerMeal),
	); err != nil {
		return Kit{}, err
	}

	return kit, nil
}

// Validate ensures the kit was created through NewKit.
func (k Kit) Validate() error {
	return k.guard.Validate(ErrKitIsNotConstructed)
}

// ID returns the kit identifier.
func (k Kit) ID() string { return k.id }

// Name returns the display name.
func (k Kit) Name() string { return k.name }

// TotalMeals returns the bundle capacity in meal units.
func (k Kit) TotalMeals() int { return k.totalMeals }

// Price returns the bundled price.
func (k Kit) Price() kernel.Money { return k.price }

// PricePerMeal returns the derived per-meal price used for display.
func (k Kit) PricePerMeal() kernel.Money { return k.pricePerMeal }

// Description returns the optional marketing description.
func (k Kit) Description() string { return k.description }

// Highlight reports whether the kit is visually highlighted.
func (k Kit) Highlight() bool { return k.highlight }

// IsEqual compares kits by identifier.
func (k Kit) IsEqual(other Kit) bool {
	return k.id == other.id
}

func (k *Kit) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("kit id")
	}
	k.id = id
	return nil
}

func (k *Kit) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("kit name")
	}
	k.name = name
	return nil
}

func (k *Kit) setTotalMeals(totalMeals int) error {
	if totalMeals <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("totalMeals",
			fmt.Errorf("%d is not greater than 0", totalMeals))
	}
	k.totalMeals = totalMeals
	return nil
}

func (k *Kit) setPrice(price kernel.Money) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("kit price",
			errors.New("price must be greater than 0"))
	}
	k.price = price
	return nil
}

func (k *Kit) setPricePerMeal(pricePerMeal kernel.Money) error {
	if !pricePerMeal.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("kit pricePerMeal",
			errors.New("pricePerMeal must be greater than 0"))
	}
	k.pricePerMeal = pricePerMeal
	return nil
}
