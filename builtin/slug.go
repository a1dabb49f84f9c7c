package builtin

import (
	"context"
	"fmt"

	"github.com/goliatone/go-slug"

	"github.com/goliatone/go-contextprocessor/internal/processor"
	"github.com/goliatone/go-contextprocessor/pkg/interfaces"
)

const (
	SlugName     = "Slug ContextProcessor"
	SlugCategory = "slug"
	SlugPriority = 20
)

// Slug derives "target_field" (default "slug") from "source_field" (default
// "title"). An existing slug is kept unless "overwrite" is true.
func Slug(base *processor.Definition) *processor.Definition {
	return base.Extend(processor.Overrides{}.
		WithName(SlugName).
		WithPriority(SlugPriority).
		WithCategories([]string{SlugCategory}).
		WithConfig(map[string]any{
			"source_field": "title",
			"target_field": "slug",
			"overwrite":    false,
		}).
		WithProcess(processor.Sync(deriveSlug)))
}

func deriveSlug(_ context.Context, def *processor.Definition, _ interfaces.ExecutionContext, model interfaces.ContentModel) error {
	config := def.Config()
	target := configString(config, "target_field", "slug")

	if current, _, _ := modelText(model, target); current != "" && !configBool(config, "overwrite") {
		return nil
	}

	source, ok, err := modelText(model, configString(config, "source_field", "title"))
	if err != nil {
		return fmt.Errorf("slug: %w", err)
	}
	if !ok || source == "" {
		return nil
	}

	normalized, err := slug.Normalize(source)
	if err != nil {
		return fmt.Errorf("slug: normalize %q: %w", source, err)
	}
	model[target] = normalized
	return nil
}
