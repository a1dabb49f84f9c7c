package logging

import (
	"context"
	"testing"

	"github.com/goliatone/go-contextprocessor/pkg/interfaces"
)

type recordingLogger struct {
	fields   []map[string]any
	contexts []context.Context
}

func (r *recordingLogger) Trace(string, ...any) {}
func (r *recordingLogger) Debug(string, ...any) {}
func (r *recordingLogger) Info(string, ...any)  {}
func (r *recordingLogger) Warn(string, ...any)  {}
func (r *recordingLogger) Error(string, ...any) {}
func (r *recordingLogger) Fatal(string, ...any) {}

func (r *recordingLogger) WithFields(fields map[string]any) interfaces.Logger {
	copied := make(map[string]any, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	r.fields = append(r.fields, copied)
	return r
}

func (r *recordingLogger) WithContext(ctx context.Context) interfaces.Logger {
	r.contexts = append(r.contexts, ctx)
	return r
}

type stubProvider struct {
	requested []string
	logger    interfaces.Logger
}

func (s *stubProvider) GetLogger(name string) interfaces.Logger {
	s.requested = append(s.requested, name)
	return s.logger
}

func TestModuleLoggerFallsBackToNoOp(t *testing.T) {
	logger := ModuleLogger(nil, "contextprocessor.test")
	if _, ok := logger.(noopLogger); !ok {
		t.Fatalf("expected noopLogger fallback, got %T", logger)
	}
	logger = logger.WithContext(context.Background())
	logger.Debug("noop")
}

func TestModuleLoggerUsesProviderAndAnnotatesFields(t *testing.T) {
	rec := &recordingLogger{}
	provider := &stubProvider{logger: rec}

	logger := ProcessorLogger(provider)

	if len(provider.requested) != 1 || provider.requested[0] != processorModule {
		t.Fatalf("expected module %s, got %v", processorModule, provider.requested)
	}
	if len(rec.fields) != 1 {
		t.Fatalf("expected module fields to be applied once, got %d", len(rec.fields))
	}
	if got := rec.fields[0]["module"]; got != processorModule {
		t.Fatalf("expected module field %s, got %v", processorModule, got)
	}

	logger.Info("with provider")
}

func TestModuleLoggerDefaultsToRootModule(t *testing.T) {
	rec := &recordingLogger{}
	provider := &stubProvider{logger: rec}

	_ = ModuleLogger(provider, "")

	if len(provider.requested) != 1 || provider.requested[0] != rootModule {
		t.Fatalf("expected default module %s, got %v", rootModule, provider.requested)
	}
	if rec.fields[0]["module"] != rootModule {
		t.Fatalf("expected module field %s, got %v", rootModule, rec.fields[0]["module"])
	}
}

func TestModuleLoggerIgnoresNilProviderLogger(t *testing.T) {
	provider := &stubProvider{}
	if _, ok := ModuleLogger(provider, "x").(noopLogger); !ok {
		t.Fatal("expected noop fallback when provider returns nil")
	}
}

func TestWithProcessorContextSkipsBlankValues(t *testing.T) {
	rec := &recordingLogger{}

	WithProcessorContext(rec, "  Markdown  ", "", 50, []string{"markdown", "frontmatter"})

	if len(rec.fields) != 1 {
		t.Fatalf("expected one WithFields call, got %d", len(rec.fields))
	}
	fields := rec.fields[0]
	if fields[fieldProcessorName] != "Markdown" {
		t.Fatalf("expected trimmed processor name, got %v", fields[fieldProcessorName])
	}
	if _, ok := fields[fieldProcessorID]; ok {
		t.Fatal("expected blank id to be skipped")
	}
	if fields[fieldProcessorCategories] != "markdown,frontmatter" {
		t.Fatalf("unexpected categories field %v", fields[fieldProcessorCategories])
	}
	if fields[fieldProcessorPriority] != 50 {
		t.Fatalf("unexpected priority field %v", fields[fieldProcessorPriority])
	}
}

func TestWithFieldsCopiesInputAndHandlesNil(t *testing.T) {
	if _, ok := WithFields(nil, map[string]any{"a": 1}).(noopLogger); !ok {
		t.Fatal("expected nil logger to become noop")
	}

	rec := &recordingLogger{}
	fields := map[string]any{"a": 1}
	WithFields(rec, fields)
	fields["a"] = 2

	if rec.fields[0]["a"] != 1 {
		t.Fatalf("expected fields to be copied, got %v", rec.fields[0]["a"])
	}
}
