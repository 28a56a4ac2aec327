package router

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrBadPattern is returned by NewTable for malformed or conflicting
// patterns.
var ErrBadPattern = errors.New("bad route pattern")

const placeholder = ":id"

// Entry pairs a kind with its path pattern, e.g. "/tenders/:id/edit".
type Entry struct {
	Kind    Kind
	Pattern string
}

// Pattern is a compiled Entry.
type Pattern struct {
	Kind     Kind
	Segments []string
	param    int
}

// HasID reports whether the pattern binds an identifier.
func (p Pattern) HasID() bool { return p.param >= 0 }

// String renders the pattern with its placeholder as {id}.
func (p Pattern) String() string {
	if len(p.Segments) == 0 {
		return "/"
	}
	parts := make([]string, len(p.Segments))
	for i, s := range p.Segments {
		if i == p.param {
			s = "{id}"
		}
		parts[i] = s
	}
	return "/" + strings.Join(parts, "/")
}

func (p Pattern) match(tokens []string) (Route, bool) {
	if len(tokens) != len(p.Segments) {
		return Route{}, false
	}
	r := Route{Kind: p.Kind}
	for i, seg := range p.Segments {
		if i == p.param {
			r.ID = unescapeSegment(tokens[i])
			continue
		}
		if tokens[i] != seg {
			return Route{}, false
		}
	}
	return r, true
}

func (p Pattern) path(id string) string {
	if len(p.Segments) == 0 {
		return "/"
	}
	var b strings.Builder
	for i, seg := range p.Segments {
		b.WriteByte('/')
		if i == p.param {
			b.WriteString(url.PathEscape(id))
			continue
		}
		b.WriteString(seg)
	}
	return b.String()
}

// overlaps reports whether some token sequence is accepted by both p and q.
// A placeholder accepts any segment.
func (p Pattern) overlaps(q Pattern) bool {
	if len(p.Segments) != len(q.Segments) {
		return false
	}
	for i := range p.Segments {
		if i == p.param || i == q.param {
			continue
		}
		if p.Segments[i] != q.Segments[i] {
			return false
		}
	}
	return true
}

// Table is an ordered list of patterns. It is built once and never mutated.
type Table struct {
	patterns []Pattern
	byKind   map[Kind]Pattern
}

// NewTable compiles entries in order. Each kind may appear once, each
// pattern may hold at most one placeholder, and no path may be accepted by
// two patterns, so a literal segment never shadows an id.
func NewTable(entries ...Entry) (*Table, error) {
	t := &Table{byKind: make(map[Kind]Pattern, len(entries))}
	for _, e := range entries {
		p, err := compilePattern(e)
		if err != nil {
			return nil, err
		}
		if _, dup := t.byKind[e.Kind]; dup {
			return nil, fmt.Errorf("%w: kind %s listed twice", ErrBadPattern, e.Kind)
		}
		for _, q := range t.patterns {
			if p.overlaps(q) {
				return nil, fmt.Errorf("%w: %q overlaps %s %s", ErrBadPattern, e.Pattern, q.Kind, q)
			}
		}
		t.byKind[e.Kind] = p
		t.patterns = append(t.patterns, p)
	}
	return t, nil
}

func compilePattern(e Entry) (Pattern, error) {
	p := Pattern{Kind: e.Kind, Segments: tokenize(e.Pattern), param: -1}
	for i, seg := range p.Segments {
		if seg != placeholder {
			if strings.HasPrefix(seg, ":") {
				return Pattern{}, fmt.Errorf("%w: %q: unknown placeholder %s", ErrBadPattern, e.Pattern, seg)
			}
			continue
		}
		if p.param >= 0 {
			return Pattern{}, fmt.Errorf("%w: %q: more than one placeholder", ErrBadPattern, e.Pattern)
		}
		p.param = i
	}
	return p, nil
}

func mustTable(entries ...Entry) *Table {
	t, err := NewTable(entries...)
	if err != nil {
		panic(err)
	}
	return t
}

func defaultEntries() []Entry {
	out := make([]Entry, 0, kindCount)
	for _, k := range Kinds() {
		out = append(out, Entry{Kind: k, Pattern: kindInfo[k].pattern})
	}
	return out
}

// DefaultTable maps every Kind to its canonical path.
var DefaultTable = mustTable(defaultEntries()...)

// Routes returns the compiled patterns in match order.
func (t *Table) Routes() []Pattern {
	out := make([]Pattern, len(t.patterns))
	copy(out, t.patterns)
	return out
}

// Match returns the route of the first pattern that accepts tokens.
func (t *Table) Match(tokens []string) (Route, bool) {
	for _, p := range t.patterns {
		if r, ok := p.match(tokens); ok {
			return r, true
		}
	}
	return Route{}, false
}

// ToPath returns the canonical path of r. Invalid routes render as the
// Dashboard path; kinds the table does not hold map to "/".
func (t *Table) ToPath(r Route) string {
	if !r.Valid() {
		r = To(Dashboard)
	}
	p, ok := t.byKind[r.Kind]
	if !ok {
		return "/"
	}
	return p.path(r.ID)
}

// FromPath parses a path. Empty segments are dropped, so leading and
// trailing slashes do not matter. Paths no pattern accepts yield the
// Dashboard route.
func (t *Table) FromPath(path string) Route {
	r, ok := t.Match(tokenize(path))
	if !ok {
		return To(Dashboard)
	}
	return r
}

// ToPath renders r with DefaultTable.
func ToPath(r Route) string { return DefaultTable.ToPath(r) }

// FromPath parses path with DefaultTable.
func FromPath(path string) Route { return DefaultTable.FromPath(path) }

func tokenize(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool { return r == '/' })
}

func unescapeSegment(seg string) string {
	s, err := url.PathUnescape(seg)
	if err != nil {
		return seg
	}
	return s
}
