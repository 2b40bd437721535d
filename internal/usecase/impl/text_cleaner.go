package impl

import (
	"strings"

	"marketplace/internal/domain/service"
)

// textCleaner normalizes free-text fields. Without a sanitizer it only trims.
type textCleaner struct {
	sanitizer service.TextSanitizer
}

func (c textCleaner) clean(s string) string {
	if c.sanitizer == nil {
		return strings.TrimSpace(s)
	}

	return c.sanitizer.PlainText(s)
}

func (c textCleaner) cleanPtr(s *string) *string {
	if s == nil {
		return nil
	}
	cleaned := c.clean(*s)

	return &cleaned
}
