package validify

import (
	"strconv"
	"strings"
)

// segment is one step of a location path: a field name, a collection index,
// or a name followed by an index. An index of -1 means the segment carries
// no index.
type segment struct {
	name  string
	index int
}

func fieldSegment(name string) segment { return segment{name: name, index: -1} }

func indexSegment(i int) segment { return segment{index: i} }

// Location identifies a field's position within a possibly nested,
// possibly collection-valued record. The zero value is the record root.
// Locations are immutable; Field and Index return extended copies.
type Location struct {
	segs []segment
}

// Field returns a copy of the location extended by a field name segment.
func (l Location) Field(name string) Location {
	return l.extend(fieldSegment(name))
}

// Index returns a copy of the location extended by a collection index segment.
func (l Location) Index(i int) Location {
	return l.extend(indexSegment(i))
}

func (l Location) extend(seg segment) Location {
	segs := make([]segment, len(l.segs), len(l.segs)+1)
	copy(segs, l.segs)
	return Location{segs: append(segs, seg)}
}

// prefix returns a copy of the location with seg pushed in front of the
// existing segments. The walker uses it to extend error locations by the
// enclosing field name and element index while recursion unwinds.
func (l Location) prefix(seg segment) Location {
	segs := make([]segment, 0, len(l.segs)+1)
	segs = append(segs, seg)
	segs = append(segs, l.segs...)
	return Location{segs: segs}
}

// IsRoot reports whether the location points at the record root.
func (l Location) IsRoot() bool {
	return len(l.segs) == 0
}

// Equal reports whether two locations have identical segment sequences.
func (l Location) Equal(other Location) bool {
	if len(l.segs) != len(other.segs) {
		return false
	}
	for i, seg := range l.segs {
		if seg != other.segs[i] {
			return false
		}
	}
	return true
}

// String renders the location as a JSON-Pointer-like path, for example
// /parents/1/name. The root renders as /.
func (l Location) String() string {
	if len(l.segs) == 0 {
		return "/"
	}

	var b strings.Builder
	for _, seg := range l.segs {
		if seg.name != "" {
			b.WriteByte('/')
			b.WriteString(seg.name)
		}
		if seg.index >= 0 {
			b.WriteByte('/')
			b.WriteString(strconv.Itoa(seg.index))
		}
	}
	return b.String()
}
