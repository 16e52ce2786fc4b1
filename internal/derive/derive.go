// Package derive computes the write-time synthetic fields: URL slugs,
// order numbers and record timestamps.
package derive

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"
	"time"
)

var (
	slugStrip    = regexp.MustCompile(`[^\w\s-]`)
	slugCollapse = regexp.MustCompile(`[\s_-]+`)
	slugTrim     = regexp.MustCompile(`^-+|-+$`)
)

// Slug generates a URL-friendly slug from text: lowercased, characters
// outside [a-z0-9_\s-] stripped, whitespace/underscore runs collapsed to a
// single hyphen, leading and trailing hyphens trimmed.
func Slug(text string) string {
	text = strings.ToLower(text)
	text = slugStrip.ReplaceAllString(text, "")
	text = slugCollapse.ReplaceAllString(text, "-")
	return slugTrim.ReplaceAllString(text, "")
}

const orderNumberAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// OrderNumber generates a display order number of the form
// ORD-YYYYMMDD-XXXXXX with six random uppercase alphanumerics. Uniqueness
// is probabilistic (36^6 combinations per day) and is not verified against
// existing orders.
func OrderNumber() string {
	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = orderNumberAlphabet[rand.IntN(len(orderNumberAlphabet))]
	}
	return fmt.Sprintf("ORD-%s-%s", time.Now().UTC().Format("20060102"), suffix)
}

// Timestamp returns the current UTC time in ISO-8601 form, the format every
// record's created_at/updated_at properties are stored in.
func Timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
