// Package sanitize strips markup from catalog text before it is stored.
package sanitize

import (
	"html"
	"strings"

	"marketplace/internal/domain/service"

	"github.com/microcosm-cc/bluemonday"
)

type plainText struct {
	policy *bluemonday.Policy
}

var _ service.TextSanitizer = (*plainText)(nil)

// NewPlainText removes every HTML element. Text inside script and style
// elements is dropped, text inside any other element is kept.
func NewPlainText() service.TextSanitizer {
	return &plainText{policy: bluemonday.StrictPolicy()}
}

// PlainText returns s without markup and surrounding whitespace. Entities
// are decoded again so "Salt & Pepper" round-trips unchanged; the API
// serves JSON, not HTML.
func (p *plainText) PlainText(s string) string {
	return strings.TrimSpace(html.UnescapeString(p.policy.Sanitize(s)))
}
