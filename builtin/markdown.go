package builtin

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/goliatone/go-contextprocessor/internal/processor"
	"github.com/goliatone/go-contextprocessor/pkg/interfaces"
)

const (
	MarkdownName     = "Markdown ContextProcessor"
	MarkdownCategory = "markdown"
	MarkdownPriority = 50
)

// Markdown renders config "source_field" (default "body") to HTML and stores
// it under "target_field" (default "body_html"). Config also accepts
// "extensions", "hard_wraps" and "unsafe".
func Markdown(base *processor.Definition) *processor.Definition {
	return base.Extend(processor.Overrides{}.
		WithName(MarkdownName).
		WithPriority(MarkdownPriority).
		WithCategories([]string{MarkdownCategory}).
		WithConfig(map[string]any{
			"source_field": "body",
			"target_field": "body_html",
			"extensions":   []string{"gfm", "linkify", "tasklist"},
			"hard_wraps":   false,
			"unsafe":       false,
		}).
		WithProcess(processor.Sync(renderMarkdown)))
}

func renderMarkdown(_ context.Context, def *processor.Definition, _ interfaces.ExecutionContext, model interfaces.ContentModel) error {
	config := def.Config()
	source := configString(config, "source_field", "body")
	target := configString(config, "target_field", "body_html")

	body, ok, err := modelText(model, source)
	if err != nil {
		return fmt.Errorf("markdown: %w", err)
	}
	if !ok {
		return nil
	}

	var buf bytes.Buffer
	if err := newMarkdownEngine(config).Convert([]byte(body), &buf); err != nil {
		return fmt.Errorf("markdown: convert: %w", err)
	}
	model[target] = buf.String()
	return nil
}

func newMarkdownEngine(config map[string]any) goldmark.Markdown {
	rendererOptions := []renderer.Option{}
	if configBool(config, "hard_wraps") {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}
	if configBool(config, "unsafe") {
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}

	options := []goldmark.Option{
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	}
	if len(rendererOptions) > 0 {
		options = append(options, goldmark.WithRendererOptions(rendererOptions...))
	}
	if exts := collectExtensions(configStrings(config, "extensions")); len(exts) > 0 {
		options = append(options, goldmark.WithExtensions(exts...))
	}
	return goldmark.New(options...)
}

var markdownExtensions = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"tasklist":      extension.TaskList,
	"definition":    extension.DefinitionList,
	"footnote":      extension.Footnote,
	"typographer":   extension.Typographer,
}

// collectExtensions skips unknown and duplicate names.
func collectExtensions(names []string) []goldmark.Extender {
	var extenders []goldmark.Extender
	seen := map[string]struct{}{}
	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, dup := seen[key]; dup {
			continue
		}
		if ext, ok := markdownExtensions[key]; ok {
			extenders = append(extenders, ext)
			seen[key] = struct{}{}
		}
	}
	return extenders
}
