package route

import "strings"

// Wildcard is the catch-all pattern. It carries no path constraints
// and consumes exactly one location segment when matched.
const Wildcard = "*"

// SegmentKind distinguishes literal and capture segments.
type SegmentKind int

const (
	// KindLiteral requires the location segment at Index to equal Value.
	KindLiteral SegmentKind = iota

	// KindParam captures the location segment at Index under Value.
	KindParam
)

// String returns the kind name for diagnostics.
func (k SegmentKind) String() string {
	if k == KindParam {
		return "param"
	}
	return "literal"
}

// Segment is one compiled pattern segment.
type Segment struct {
	// Index is the segment's position in the split pattern.
	Index int

	// Kind says whether Value is literal text or a capture name.
	Kind SegmentKind

	// Value is the literal text for KindLiteral, the capture name
	// for KindParam.
	Value string
}

// Pattern is a compiled route pattern. Immutable once built.
type Pattern struct {
	// Raw is the pattern string the Pattern was compiled from.
	Raw string

	// Segments are the compiled segments in position order. Empty for
	// the wildcard pattern, which constrains nothing.
	Segments []Segment

	// Length is the number of location segments the pattern consumes
	// on a match. Equal to len(Segments) except for the wildcard,
	// which has no segments but still consumes one.
	Length int
}

// Compile turns a route pattern string into a Pattern. It is pure and
// total: every string compiles. The empty string compiles to a single
// empty-literal segment, matching only the root location.
func Compile(pattern string) *Pattern {
	if pattern == Wildcard {
		return &Pattern{Raw: pattern, Length: 1}
	}

	parts := strings.Split(pattern, "/")
	p := &Pattern{
		Raw:      pattern,
		Segments: make([]Segment, 0, len(parts)),
		Length:   len(parts),
	}

	for i, part := range parts {
		if strings.HasPrefix(part, ":") {
			p.Segments = append(p.Segments, Segment{Index: i, Kind: KindParam, Value: part[1:]})
		} else {
			p.Segments = append(p.Segments, Segment{Index: i, Kind: KindLiteral, Value: part})
		}
	}

	return p
}

// IsWildcard reports whether this is the compiled catch-all pattern.
func (p *Pattern) IsWildcard() bool {
	return p.Raw == Wildcard
}

// compatible reports whether every literal constraint is satisfied by
// the split location. A literal beyond the location's end fails, so
// short locations never falsely match long patterns. Param segments
// and positions past the pattern's own length constrain nothing.
func (p *Pattern) compatible(parts []string) bool {
	for _, seg := range p.Segments {
		if seg.Kind != KindLiteral {
			continue
		}
		if seg.Index >= len(parts) || parts[seg.Index] != seg.Value {
			return false
		}
	}
	return true
}

// bindParams extracts the named captures from the split location.
// A capture beyond the location's end binds the empty string.
func (p *Pattern) bindParams(parts []string) Params {
	params := make(Params)
	for _, seg := range p.Segments {
		if seg.Kind != KindParam {
			continue
		}
		if seg.Index < len(parts) {
			params[seg.Value] = parts[seg.Index]
		} else {
			params[seg.Value] = ""
		}
	}
	return params
}

// rankAt scores the constraint this pattern places on location
// position i: literal 2, in-range param 1, anything else 0.
func (p *Pattern) rankAt(i, locationLen int) int {
	if i < len(p.Segments) {
		if p.Segments[i].Kind == KindLiteral {
			return 2
		}
		if i < locationLen {
			return 1
		}
	}
	return 0
}

// shapeKey reduces the pattern to its matching shape: capture names
// do not affect matching, so "/u/:id" and "/u/:uid" collide.
func (p *Pattern) shapeKey() string {
	if p.IsWildcard() {
		return Wildcard
	}
	keys := make([]string, len(p.Segments))
	for i, seg := range p.Segments {
		if seg.Kind == KindParam {
			keys[i] = ":"
		} else {
			keys[i] = seg.Value
		}
	}
	return strings.Join(keys, "\x00")
}

// splitLocation splits a location on "/". The leading "/" of a rooted
// path yields an empty first part, which lines up with the empty first
// segment of a rooted pattern.
func splitLocation(location string) []string {
	return strings.Split(location, "/")
}
