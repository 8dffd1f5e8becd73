// Package catalog provides the static menu domain: kits (fixed-price
// bundles with a meal-unit capacity) and the menu items that fill them.
//
// The package includes:
//   - Kit: A value object describing a bundle, its capacity and its price
//   - MenuItem: A value object describing a dish and its display data
//   - Catalog: The read-only collection with lookups, grouping and search
//
// Everything here is immutable and sourced from static configuration at
// process start; prices live on kits, never on individual items.
package catalog
