package catalog

import (
	"errors"

	"pratofit/internal/pkg/errs"
	"pratofit/internal/pkg/guard"
)

// ErrMenuItemIsNotConstructed is returned when a MenuItem instance was not
// created through the NewMenuItem factory method.
var ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")

// MenuItem is a single dish the customer can place into a kit. Immutable,
// sourced from static configuration. Items carry no price of their own; the
// kit price covers them.
type MenuItem struct {
	id          string
	title       string
	description string
	serving     string
	imageURL    string
	category    string
	tags        []string

	guard guard.ConstructorGuard
}

// NewMenuItem creates a validated MenuItem. Identifier, title and category
// are required; the rest is display data.
func NewMenuItem(
	id string,
	title string,
	description string,
	serving string,
	imageURL string,
	category string,
	tags []string,
) (MenuItem, error) {
	item := MenuItem{
		description: description,
		serving:     serving,
		imageURL:    imageURL,
		tags:        append([]string(nil), tags...),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setTitle(title),
		item.setCategory(category),
	); err != nil {
		return MenuItem{}, err
	}

	return item, nil
}

// Validate ensures the item was created through NewMenuItem.
func (m MenuItem) Validate() error {
	return m.guard.Validate(ErrMenuItemIsNotConstructed)
}

// ID returns the item identifier.
func (m MenuItem) ID() string { return m.id }

// Title returns the dish title.
func (m MenuItem) Title() string { return m.title }

// Description returns the dish description.
func (m MenuItem) Description() string { return m.description }

// Serving returns the serving-size text.
func (m MenuItem) Serving() string { return m.serving }

// ImageURL returns the image reference.
func (m MenuItem) ImageURL() string { return m.imageURL }

// Category returns the grouping key.
func (m MenuItem) Category() string { return m.category }

// Tags returns a copy of the optional tag set.
func (m MenuItem) Tags() []string {
	return append([]string(nil), m.tags...)
}

// IsEqual compares items by identifier.
func (m MenuItem) IsEqual(other MenuItem) bool {
	return m.id == other.id
}

func (m *MenuItem) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("item id")
	}
	m.id = id
	return nil
}

func (m *MenuItem) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("item title")
	}
	m.title = title
	return nil
}

func (m *MenuItem) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("item category")
	}
	m.category = category
	return nil
}
