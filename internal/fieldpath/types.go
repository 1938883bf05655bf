// internal/fieldpath/types.go
package fieldpath

// Segment is a single component of a path, e.g. `networks[1]`.
type Segment struct {
	Name  string
	Index int // -1 indicates no index is present.
}

// NewSegment creates a segment without an index.
func NewSegment(name string) Segment {
	return Segment{Name: name, Index: -1}
}

// NewSegmentWithIndex creates a segment that includes an index.
func NewSegmentWithIndex(name string, index int) Segment {
	return Segment{Name: name, Index: index}
}

// HasIndex returns true if the segment has an explicit index.
func (s Segment) HasIndex() bool {
	return s.Index != -1
}

// Path is the structured location of a field. The zero value is the
// document root.
type Path struct {
	Segments []Segment
}

// Root returns the empty path.
func Root() Path {
	return Path{}
}

// Field returns a new path with a named segment appended. The receiver is
// never modified, so sibling fields can share a parent path.
func (p Path) Field(name string) Path {
	segs := make([]Segment, len(p.Segments), len(p.Segments)+1)
	copy(segs, p.Segments)
	return Path{Segments: append(segs, NewSegment(name))}
}

// Index returns a new path whose last segment carries the given list index.
// Indexing the root produces a nameless segment rendered as `[i]`.
func (p Path) Index(i int) Path {
	segs := make([]Segment, len(p.Segments))
	copy(segs, p.Segments)
	if len(segs) == 0 || segs[len(segs)-1].HasIndex() {
		return Path{Segments: append(segs, NewSegmentWithIndex("", i))}
	}
	segs[len(segs)-1].Index = i
	return Path{Segments: segs}
}

// IsRoot reports whether the path has no segments.
func (p Path) IsRoot() bool {
	return len(p.Segments) == 0
}

// Last returns the name of the final segment, or "" for the root.
func (p Path) Last() string {
	if p.IsRoot() {
		return ""
	}
	return p.Segments[len(p.Segments)-1].Name
}
