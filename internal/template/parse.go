package template

import "strings"

const (
	openDelim  = "{{"
	closeDelim = "}}"
)

// openSection is a conditional that has been opened but not yet closed.
type openSection struct {
	cond    *Conditional
	negated bool // collecting the false branch
	line    int
	col     int
}

type parser struct {
	name  string
	src   string
	root  []Segment
	stack []*openSection

	// Incremental position tracking; mark is the offset already counted.
	mark      int
	line      int
	lineStart int
}

// Parse builds a Template from source in a single pass. It returns a
// *StructuralError when conditional tags do not balance or a tag is malformed.
func Parse(name, source string) (*Template, error) {
	p := &parser{name: name, src: source, line: 1}
	return p.parse()
}

func (p *parser) parse() (*Template, error) {
	pos := 0
	for pos < len(p.src) {
		rel := strings.Index(p.src[pos:], openDelim)
		if rel < 0 {
			p.emit(Literal{Text: p.src[pos:]})
			break
		}
		start := pos + rel
		if start > pos {
			p.emit(Literal{Text: p.src[pos:start]})
		}

		line, col := p.position(start)
		bodyStart := start + len(openDelim)
		rel = strings.Index(p.src[bodyStart:], closeDelim)
		if rel < 0 {
			return nil, &StructuralError{Template: p.name, Kind: MalformedTag, Line: line, Column: col}
		}
		end := bodyStart + rel

		if err := p.tag(p.src[bodyStart:end], line, col); err != nil {
			return nil, err
		}
		pos = end + len(closeDelim)
	}

	if n := len(p.stack); n > 0 {
		top := p.stack[n-1]
		return nil, &StructuralError{
			Template:  p.name,
			Kind:      UnclosedSection,
			Predicate: top.cond.Predicate,
			Line:      top.line,
			Column:    top.col,
		}
	}

	return &Template{Name: p.name, Segments: p.root}, nil
}

// tag handles the text between one pair of delimiters.
func (p *parser) tag(body string, line, col int) error {
	body = strings.TrimSpace(body)
	sigil := byte(0)
	if body != "" && strings.IndexByte("#^/", body[0]) >= 0 {
		sigil = body[0]
		body = strings.TrimSpace(body[1:])
	}
	if !validName(body) {
		return &StructuralError{Template: p.name, Kind: MalformedTag, Predicate: body, Line: line, Column: col}
	}

	switch sigil {
	case '#':
		p.open(body, false, line, col)
	case '^':
		top := p.top()
		if top != nil && top.cond.Predicate == body {
			if top.negated {
				return &StructuralError{Template: p.name, Kind: DanglingNegation, Predicate: body, Line: line, Column: col}
			}
			top.negated = true
			return nil
		}
		p.open(body, true, line, col)
	case '/':
		top := p.top()
		if top == nil {
			return &StructuralError{Template: p.name, Kind: UnmatchedClose, Predicate: body, Line: line, Column: col}
		}
		if top.cond.Predicate != body {
			return &StructuralError{
				Template:  p.name,
				Kind:      MismatchedClose,
				Predicate: body,
				Expected:  top.cond.Predicate,
				Line:      line,
				Column:    col,
			}
		}
		p.stack = p.stack[:len(p.stack)-1]
	default:
		p.emit(Placeholder{Name: body})
	}
	return nil
}

// open appends a new conditional to the current branch and pushes it.
func (p *parser) open(predicate string, negated bool, line, col int) {
	cond := &Conditional{Predicate: predicate}
	p.emit(cond)
	p.stack = append(p.stack, &openSection{cond: cond, negated: negated, line: line, col: col})
}

func (p *parser) top() *openSection {
	if len(p.stack) == 0 {
		return nil
	}
	return p.stack[len(p.stack)-1]
}

// emit appends seg to the branch currently being collected.
func (p *parser) emit(seg Segment) {
	top := p.top()
	switch {
	case top == nil:
		p.root = append(p.root, seg)
	case top.negated:
		top.cond.Else = append(top.cond.Else, seg)
	default:
		top.cond.Then = append(top.cond.Then, seg)
	}
}

// position returns the 1-based line and byte column of offset. Offsets must
// be requested in non-decreasing order.
func (p *parser) position(offset int) (int, int) {
	for i := p.mark; i < offset; i++ {
		if p.src[i] == '\n' {
			p.line++
			p.lineStart = i + 1
		}
	}
	p.mark = offset
	return p.line, offset - p.lineStart + 1
}

// validName reports whether name can be used as a placeholder or predicate.
func validName(name string) bool {
	if name == "" {
		return false
	}
	return !strings.ContainsAny(name, " \t\r\n{}#^/")
}
