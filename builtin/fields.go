package builtin

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-contextprocessor/pkg/interfaces"
)

func configString(config map[string]any, key, fallback string) string {
	if value, ok := config[key].(string); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func configBool(config map[string]any, key string) bool {
	value, _ := config[key].(bool)
	return value
}

// configStrings reads []string or the []any shape produced by decoded JSON/YAML.
func configStrings(config map[string]any, key string) []string {
	switch value := config[key].(type) {
	case []string:
		return append([]string(nil), value...)
	case []any:
		out := make([]string, 0, len(value))
		for _, item := range value {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		return []string{value}
	default:
		return nil
	}
}

// modelText returns the text stored at key. Missing or nil entries report
// ok=false; values that are neither string nor []byte are an error.
func modelText(model interfaces.ContentModel, key string) (string, bool, error) {
	raw, exists := model[key]
	if !exists || raw == nil {
		return "", false, nil
	}
	switch value := raw.(type) {
	case string:
		return value, true, nil
	case []byte:
		return string(value), true, nil
	default:
		return "", false, fmt.Errorf("field %q must be string or []byte, got %T", key, raw)
	}
}
