package builtin

import (
	"context"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/goliatone/go-contextprocessor/internal/processor"
	"github.com/goliatone/go-contextprocessor/pkg/interfaces"
)

const (
	FrontMatterName     = "FrontMatter ContextProcessor"
	FrontMatterCategory = "frontmatter"
	FrontMatterPriority = 80
)

// FrontMatter splits "source" into metadata, stored under "frontmatter", and
// the remaining body, stored under "body". Keys listed in "promote" are copied
// to the top level of the model unless already set there.
func FrontMatter(base *processor.Definition) *processor.Definition {
	return base.Extend(processor.Overrides{}.
		WithName(FrontMatterName).
		WithPriority(FrontMatterPriority).
		WithCategories([]string{MarkdownCategory, FrontMatterCategory}).
		WithConfig(map[string]any{
			"source_field": "source",
			"promote":      []string{"title", "slug"},
		}).
		WithProcess(processor.Sync(extractFrontMatter)))
}

func extractFrontMatter(_ context.Context, def *processor.Definition, _ interfaces.ExecutionContext, model interfaces.ContentModel) error {
	config := def.Config()
	source, ok, err := modelText(model, configString(config, "source_field", "source"))
	if err != nil {
		return fmt.Errorf("frontmatter: %w", err)
	}
	if !ok {
		return nil
	}

	meta := map[string]any{}
	body, err := frontmatter.Parse(strings.NewReader(source), &meta)
	if err != nil {
		return fmt.Errorf("frontmatter: parse: %w", err)
	}

	model["frontmatter"] = meta
	model["body"] = string(body)

	for _, key := range configStrings(config, "promote") {
		value, found := meta[key]
		if !found {
			continue
		}
		if existing, set := model[key]; set && existing != nil && existing != "" {
			continue
		}
		model[key] = value
	}
	return nil
}
