package storage

import (
	"encoding/json"
	"fmt"
)

// Typed accessors for property bags. Adapters hand back values as the store's
// wire encoding produced them (GraphQL numbers arrive as float64, keys may
// arrive as richer objects), so every read coerces to the canonical domain
// type. Absent keys and nulls read as zero values.

// String returns the property as a string, coercing key-like objects to
// their canonical string form.
func (p Properties) String(key string) string {
	switch v := p[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Bool returns the property as a bool.
func (p Properties) Bool(key string) bool {
	b, _ := p[key].(bool)
	return b
}

// Int returns the property as an int, accepting the numeric encodings the
// store wire formats produce.
func (p Properties) Int(key string) int {
	switch v := p[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case json.Number:
		n, _ := v.Int64()
		return int(n)
	default:
		return 0
	}
}

// Float returns the property as a float64.
func (p Properties) Float(key string) float64 {
	switch v := p[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		f, _ := v.Float64()
		return f
	default:
		return 0
	}
}

// Has reports whether the property is present and non-null.
func (p Properties) Has(key string) bool {
	v, ok := p[key]
	return ok && v != nil
}

// Clone returns a shallow copy of the bag. Property values are scalars, so a
// shallow copy is an independent record.
func (p Properties) Clone() Properties {
	out := make(Properties, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}
