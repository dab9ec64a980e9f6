// Package template implements Stencil's conditional-section templates.
//
// A template source is literal text interleaved with tags:
//
//	{{name}}    placeholder, replaced by the context value "name"
//	{{#pred}}   opens a conditional on the context flag "pred"
//	{{^pred}}   switches an open "pred" conditional to its false branch, or
//	            opens an inverted conditional when none is open
//	{{/pred}}   closes the innermost conditional, which must be on "pred"
//
// Parse turns source text into an immutable Segment tree; Render walks that
// tree against a Context. Only the branch selected by each predicate is
// visited, so names that appear solely in a dead branch do not need to be
// present in the Context.
//
// Text between and around tags is kept byte-for-byte in whichever branch it
// falls into. Nothing is trimmed.
//
// Usage:
//
//	tmpl, err := template.Parse("greeting", "Hello {{#formal}}Dr. {{/formal}}{{name}}")
//	ctx, err := template.NewContext(
//		map[string]string{"name": "Ada"},
//		map[string]bool{"formal": true},
//	)
//	out, err := template.Render(tmpl, ctx) // "Hello Dr. Ada"
package template
