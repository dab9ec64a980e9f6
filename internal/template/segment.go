package template

import "sort"

// Segment is one unit of a parsed template: a Literal, a Placeholder or a
// *Conditional. The set of implementations is closed.
type Segment interface {
	segment()
}

// Literal is text emitted verbatim.
type Literal struct {
	Text string
}

// Placeholder is replaced by the context value registered under Name.
type Placeholder struct {
	Name string
}

// Conditional selects Then when the context flag Predicate is true and Else
// otherwise. Else is empty when the source has no negation tag.
type Conditional struct {
	Predicate string
	Then      []Segment
	Else      []Segment
}

func (Literal) segment()      {}
func (Placeholder) segment()  {}
func (*Conditional) segment() {}

// Template is a parsed template. It is never mutated after Parse returns and
// may be shared read-only between goroutines.
type Template struct {
	// Name identifies the template source (resource name or file path).
	Name string
	// Segments holds the top-level segments in source order.
	Segments []Segment
}

// Placeholders returns the sorted set of placeholder names referenced
// anywhere in the template, including inside every branch.
func (t *Template) Placeholders() []string {
	names := make(map[string]struct{})
	walk(t.Segments, func(seg Segment) {
		if p, ok := seg.(Placeholder); ok {
			names[p.Name] = struct{}{}
		}
	})
	return sortedKeys(names)
}

// Predicates returns the sorted set of predicate names referenced anywhere in
// the template.
func (t *Template) Predicates() []string {
	names := make(map[string]struct{})
	walk(t.Segments, func(seg Segment) {
		if c, ok := seg.(*Conditional); ok {
			names[c.Predicate] = struct{}{}
		}
	})
	return sortedKeys(names)
}

// walk visits every segment depth-first, including both branches of each
// conditional.
func walk(segs []Segment, visit func(Segment)) {
	for _, seg := range segs {
		visit(seg)
		if c, ok := seg.(*Conditional); ok {
			walk(c.Then, visit)
			walk(c.Else, visit)
		}
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
