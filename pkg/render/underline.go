package render

import "strings"

const (
	// RowSize is the number of bytes shown per row.
	RowSize = 16

	// LabelColumn is the display column where every label starts.
	LabelColumn = 60

	// underlineIndent puts an opening corner one column left of the first
	// hex digit of its byte.
	underlineIndent = 9

	// gapAfter is the last position before the mid-row gap.
	gapAfter = 7
)

const (
	glyphOpen  = "└──"
	glyphRun   = "───"
	glyphClose = "┘  "
	glyphBlank = "   "
	glyphLine  = "─"
	glyphEnd   = "┘"
)

type cellState int

const (
	stateBefore cellState = iota
	stateOpening
	stateInside
	stateClosing
	stateAfter
)

func stateAt(pos, start, end int) cellState {
	switch {
	case pos < start:
		return stateBefore
	case pos == start:
		return stateOpening
	case pos < end:
		return stateInside
	case pos == end:
		return stateClosing
	default:
		return stateAfter
	}
}

// underline draws the box line for the annotated positions [start, end) of
// one row. fromPrev replaces the opening corner with a plain run and toNext
// drops the closing corner.
func underline(start, end int, fromPrev, toNext bool) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", underlineIndent))

	for pos := 0; pos < RowSize; pos++ {
		if pos == gapAfter+1 {
			switch {
			case start <= gapAfter && end > gapAfter+1:
				b.WriteString(glyphLine)
			case end == gapAfter+1:
				// the closing corner takes the gap column
			default:
				b.WriteString(" ")
			}
		}

		switch stateAt(pos, start, end) {
		case stateOpening:
			if fromPrev {
				b.WriteString(glyphRun)
			} else {
				b.WriteString(glyphOpen)
			}
		case stateInside:
			b.WriteString(glyphRun)
		case stateClosing:
			if toNext {
				b.WriteString(glyphBlank)
			} else {
				b.WriteString(glyphClose)
			}
		default:
			b.WriteString(glyphBlank)
		}
	}

	// No cell follows position 15, so its closing corner is appended here.
	if end == RowSize && !toNext {
		b.WriteString(glyphEnd)
	}
	return b.String()
}
