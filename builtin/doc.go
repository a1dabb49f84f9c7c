// Package builtin ships ready-made processor definitions for CMS content:
// front matter extraction, Markdown rendering and slug derivation. Each
// constructor extends a caller-supplied base so hosts keep control over
// logging and shared configuration.
package builtin
