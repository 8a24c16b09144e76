package types

// OffsetSpan is byte range [Start, End) - half-open interval.
type OffsetSpan struct {
	Start int
	End   int
}

// Len returns the number of bytes in the span.
func (s OffsetSpan) Len() int {
	if s.End < s.Start {
		return 0
	}
	return s.End - s.Start
}

// Empty reports whether the span covers no bytes.
func (s OffsetSpan) Empty() bool {
	return s.Len() == 0
}

// Clip returns the part of the span that lies inside [0, limit).
// The result is empty when the span starts at or beyond limit.
func (s OffsetSpan) Clip(limit int) OffsetSpan {
	start, end := max(s.Start, 0), min(s.End, limit)
	if start >= end {
		return OffsetSpan{Start: start, End: start}
	}
	return OffsetSpan{Start: start, End: end}
}

// Overlaps reports whether the span shares at least one byte with [start, end).
func (s OffsetSpan) Overlaps(start, end int) bool {
	return !s.Empty() && s.Start < end && s.End > start
}
