package template

import (
	"errors"
	"fmt"
	"strings"
)

// Render walks t depth-first against c and returns the produced text.
//
// Placeholders are substituted verbatim without escaping. For each
// Conditional exactly one branch is visited; the other is skipped without
// being checked against c. The first missing name aborts rendering and no
// partial output is returned.
func Render(t *Template, c Context) (string, error) {
	if t == nil {
		return "", errors.New("rendering: template is nil")
	}
	r := renderer{name: t.Name, ctx: c}
	if err := r.segments(t.Segments); err != nil {
		return "", err
	}
	return r.out.String(), nil
}

type renderer struct {
	name string
	ctx  Context
	out  strings.Builder
}

func (r *renderer) segments(segs []Segment) error {
	for _, seg := range segs {
		switch s := seg.(type) {
		case Literal:
			r.out.WriteString(s.Text)
		case Placeholder:
			v, ok := r.ctx.Value(s.Name)
			if !ok {
				return &MissingValueError{Template: r.name, Name: s.Name}
			}
			r.out.WriteString(v)
		case *Conditional:
			on, ok := r.ctx.Flag(s.Predicate)
			if !ok {
				return &MissingPredicateError{Template: r.name, Predicate: s.Predicate}
			}
			branch := s.Else
			if on {
				branch = s.Then
			}
			if err := r.segments(branch); err != nil {
				return err
			}
		default:
			return fmt.Errorf("rendering %s: unsupported segment %T", r.name, seg)
		}
	}
	return nil
}
