// Package whatsapp builds the deep links that hand a finished order to the
// store's WhatsApp number.
package whatsapp

import (
	"net/url"
	"strings"
)

// LinkBuilder produces wa.me links for a configured phone number.
type LinkBuilder struct {
	phone string
}

// NewLinkBuilder creates a link builder for a phone number in international
// format without the plus sign, e.g. "5583999999999".
func NewLinkBuilder(phone string) LinkBuilder {
	return LinkBuilder{phone: phone}
}

// OrderLink returns the wa.me URL that opens a chat with the store and the
// order message prefilled. Spaces are escaped as %20, not "+": WhatsApp
// renders "+" literally in the prefilled text.
func (b LinkBuilder) OrderLink(message string) string {
	escaped := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return "https://wa.me/" + b.phone + "?text=" + escaped
}
