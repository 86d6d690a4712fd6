package stdschema

import (
	"strconv"
	"strings"
)

// Segment is one step of an issue Path: a Key (object field), an Index
// (sequence position) or a *Symbol (opaque identity-based key).
type Segment interface {
	String() string
	segment()
}

// Key addresses an object field.
type Key string

func (k Key) String() string { return string(k) }
func (Key) segment()         {}

// Index addresses a sequence element.
type Index int

func (i Index) String() string { return strconv.Itoa(int(i)) }
func (Index) segment()         {}

// Symbol is a path segment compared by identity rather than by name. Two
// symbols created with the same name are distinct.
type Symbol struct{ name string }

// NewSymbol returns a fresh symbol with a descriptive name.
func NewSymbol(name string) *Symbol { return &Symbol{name: name} }

func (s *Symbol) String() string { return "@" + s.name }
func (*Symbol) segment()         {}

// Path is an ordered sequence of segments from the root to the offending value.
type Path []Segment

// Pointer renders the path as a JSON Pointer (RFC 6901). The empty path is "/".
func (p Path) Pointer() string {
	if len(p) == 0 {
		return "/"
	}
	b := &strings.Builder{}
	for _, seg := range p {
		b.WriteByte('/')
		// escape '~' -> '~0', '/' -> '~1' per RFC6901
		b.WriteString(strings.ReplaceAll(strings.ReplaceAll(seg.String(), "~", "~0"), "/", "~1"))
	}
	return b.String()
}

func (p Path) String() string { return p.Pointer() }

// Prepend returns a copy of it whose path starts with seg. The input issue is
// left untouched, including its path backing array.
func Prepend(seg Segment, it Issue) Issue {
	path := make(Path, 0, len(it.Path)+1)
	path = append(path, seg)
	path = append(path, it.Path...)
	it.Path = path
	return it
}

// PrependAll applies Prepend to every issue.
func PrependAll(seg Segment, iss Issues) Issues {
	out := make(Issues, 0, len(iss))
	for _, it := range iss {
		out = append(out, Prepend(seg, it))
	}
	return out
}
