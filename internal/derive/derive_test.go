package derive

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "Wireless Earbuds", "wireless-earbuds"},
		{"punctuation and padding", "  Caps & Spaces!! ", "caps-spaces"},
		{"underscores collapse", "snake_case_name", "snake-case-name"},
		{"already clean", "clean-slug", "clean-slug"},
		{"digits kept", "Item 42", "item-42"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slug(tt.input))
		})
	}
}

func TestOrderNumberFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^ORD-\d{8}-[A-Z0-9]{6}$`)

	for i := 0; i < 100; i++ {
		number := OrderNumber()
		assert.Regexp(t, pattern, number)
		assert.Contains(t, number, time.Now().UTC().Format("20060102"))
	}
}

func TestTimestampIsUTCRFC3339(t *testing.T) {
	ts := Timestamp()
	parsed, err := time.Parse(time.RFC3339, ts)
	assert.NoError(t, err)
	assert.Equal(t, time.UTC, parsed.Location())
	assert.WithinDuration(t, time.Now().UTC(), parsed, 5*time.Second)
}
