package types

import (
	"fmt"
	"sort"
)

// Annotation marks a labeled byte range of the dumped buffer.
type Annotation struct {
	Offset int   `json:"offset"`
	Length int   `json:"length"`
	Label  Label `json:"label"`
	Kind   Kind  `json:"kind"`
}

// NewAnnotation creates a normal annotation with a free-form label.
func NewAnnotation(offset, length int, text string) Annotation {
	return Annotation{Offset: offset, Length: length, Label: TextLabel(text)}
}

// NewField creates a normal annotation for a decoded field.
func NewField(offset, length int, name, value string) Annotation {
	return Annotation{
		Offset: offset,
		Length: length,
		Label:  Label{Name: name, Value: value},
	}
}

// NewError creates an error annotation for a field that could not be decoded.
func NewError(offset, length int, name, detail string) Annotation {
	return Annotation{
		Offset: offset,
		Length: length,
		Label:  Label{Name: name, Value: detail},
		Kind:   KindError,
	}
}

// End returns the offset one past the last annotated byte.
func (a Annotation) End() int {
	return a.Offset + a.Length
}

// Span returns the annotated range.
func (a Annotation) Span() OffsetSpan {
	return OffsetSpan{Start: a.Offset, End: a.End()}
}

// Covers reports whether pos falls inside the annotation.
func (a Annotation) Covers(pos int) bool {
	return pos >= a.Offset && pos < a.End()
}

// Overlaps reports whether the annotation shares a byte with [start, end).
// Zero-length annotations never overlap anything.
func (a Annotation) Overlaps(start, end int) bool {
	return a.Span().Overlaps(start, end)
}

func (a Annotation) String() string {
	return fmt.Sprintf("%s[%d:%d] %s", a.Kind, a.Offset, a.End(), a.Label)
}

// SortByOffset orders annotations by offset, keeping input order for ties.
func SortByOffset(annotations []Annotation) {
	sort.SliceStable(annotations, func(i, j int) bool {
		return annotations[i].Offset < annotations[j].Offset
	})
}
