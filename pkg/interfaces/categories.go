package interfaces

import (
	"bytes"
	"encoding/json"
)

// Categories is the ordered tag sequence used to select processors. Callers
// may supply a single tag or a list at the boundary; NormalizeCategories turns
// either form into a sequence so matching never deals with scalars.
type Categories []string

// NormalizeCategories accepts nil, a string, a slice of strings or a slice of
// arbitrary values. Non-string elements and unsupported shapes are dropped
// rather than rejected. The result is never nil.
func NormalizeCategories(raw any) Categories {
	switch value := raw.(type) {
	case nil:
		return Categories{}
	case string:
		return Categories{value}
	case *string:
		if value == nil {
			return Categories{}
		}
		return Categories{*value}
	case Categories:
		return append(Categories{}, value...)
	case []string:
		return append(Categories{}, value...)
	case []any:
		out := make(Categories, 0, len(value))
		for _, item := range value {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return Categories{}
	}
}

// Contains reports whether category is present, compared by exact value.
func (c Categories) Contains(category string) bool {
	for _, candidate := range c {
		if candidate == category {
			return true
		}
	}
	return false
}

// Intersects reports whether any entry of c equals any entry of other. Empty
// on either side never matches.
func (c Categories) Intersects(other Categories) bool {
	for _, category := range c {
		if other.Contains(category) {
			return true
		}
	}
	return false
}

// Clone returns an independent copy.
func (c Categories) Clone() Categories {
	return append(Categories{}, c...)
}

// UnmarshalJSON accepts null, a string or an array.
func (c *Categories) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*c = Categories{}
		return nil
	}

	var raw any
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return err
	}
	*c = NormalizeCategories(raw)
	return nil
}
