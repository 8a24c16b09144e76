// Package render draws annotated hexdumps.
//
// Every row shows an address and up to 16 hex bytes. Each annotation that
// touches the row gets its own underline beneath it, and the label is written
// at a fixed column on the row where the annotation starts.
package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"go.uber.org/zap"

	"github.com/praetorian-inc/anno/pkg/logging"
	"github.com/praetorian-inc/anno/pkg/style"
	"github.com/praetorian-inc/anno/pkg/types"
)

// Dumper renders a buffer with its annotations.
type Dumper struct {
	palette     style.Palette
	annotations []types.Annotation
	width       *runewidth.Condition
}

// Option configures a Dumper.
type Option func(*Dumper)

// WithPalette sets the palette. The default is style.Plain().
func WithPalette(p style.Palette) Option {
	return func(d *Dumper) {
		if p != nil {
			d.palette = p
		}
	}
}

// WithAnnotations adds annotations to the dump.
func WithAnnotations(annotations ...types.Annotation) Option {
	return func(d *Dumper) {
		d.annotations = append(d.annotations, annotations...)
	}
}

// New creates a Dumper.
func New(opts ...Option) *Dumper {
	d := &Dumper{
		palette: style.Plain(),
		// Box drawing glyphs are ambiguous width; measure them as one
		// column whatever the locale says.
		width: &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Add appends annotations.
func (d *Dumper) Add(annotations ...types.Annotation) {
	d.annotations = append(d.annotations, annotations...)
}

// Annotations returns a copy of the annotations in insertion order.
func (d *Dumper) Annotations() []types.Annotation {
	out := make([]types.Annotation, len(d.annotations))
	copy(out, d.annotations)
	return out
}

// Dump writes the annotated hexdump of data to w. Only write errors are
// returned; annotations outside data are clipped or ignored.
func (d *Dumper) Dump(w io.Writer, data []byte) error {
	bw := bufio.NewWriter(w)
	annotations := d.clip(len(data))

	for rowStart := 0; rowStart < len(data); rowStart += RowSize {
		rowEnd := min(rowStart+RowSize, len(data))
		d.writeRow(bw, data, rowStart, rowEnd, annotations)

		for _, a := range annotations {
			if !a.Overlaps(rowStart, rowEnd) {
				continue
			}
			d.writeUnderline(bw, a, rowStart, rowEnd)
		}
	}

	fmt.Fprintln(bw, d.palette.Address(fmt.Sprintf("%08x", len(data))))
	return bw.Flush()
}

// clip trims annotations to the buffer, drops the ones left empty and sorts
// the rest by offset.
func (d *Dumper) clip(size int) []types.Annotation {
	out := make([]types.Annotation, 0, len(d.annotations))
	for _, a := range d.annotations {
		span := a.Span().Clip(size)
		if span.Empty() {
			logging.Logger().Debug("skipping annotation outside buffer",
				zap.Stringer("annotation", a),
				zap.Int("size", size))
			continue
		}
		if span.Start != a.Offset || span.End != a.End() {
			logging.Logger().Debug("clipping annotation to buffer",
				zap.Stringer("annotation", a),
				zap.Int("size", size))
		}
		a.Offset, a.Length = span.Start, span.Len()
		out = append(out, a)
	}
	types.SortByOffset(out)
	return out
}

func (d *Dumper) writeRow(w io.Writer, data []byte, rowStart, rowEnd int, annotations []types.Annotation) {
	var b strings.Builder
	b.WriteString(d.palette.Address(fmt.Sprintf("%08x", rowStart)))
	b.WriteString("  ")

	for i := 0; i < RowSize; i++ {
		pos := rowStart + i
		if pos < rowEnd {
			hex := fmt.Sprintf("%02x", data[pos])
			switch kind, ok := kindAt(annotations, pos); {
			case !ok:
				b.WriteString(hex)
			case kind == types.KindError:
				b.WriteString(d.palette.ErrorByte(hex))
			default:
				b.WriteString(d.palette.AnnotatedByte(hex))
			}
			b.WriteString(" ")
		} else {
			b.WriteString(glyphBlank)
		}
		if i == gapAfter {
			b.WriteString(" ")
		}
	}

	fmt.Fprintln(w, b.String())
}

func (d *Dumper) writeUnderline(w io.Writer, a types.Annotation, rowStart, rowEnd int) {
	fromPrev := a.Offset < rowStart
	toNext := a.End() > rowEnd

	start := 0
	if !fromPrev {
		start = a.Offset - rowStart
	}
	end := RowSize
	if !toNext {
		end = a.End() - rowStart
	}

	line := d.width.FillRight(underline(start, end, fromPrev, toNext), LabelColumn-1)
	if fromPrev {
		fmt.Fprintln(w, line)
		return
	}

	label := d.palette.NormalLabel(a.Label)
	if a.Kind == types.KindError {
		label = d.palette.ErrorLabel(a.Label)
	}
	fmt.Fprintln(w, line+" "+label)
}

// kindAt reports the style of the byte at pos. Error wins over Normal.
func kindAt(annotations []types.Annotation, pos int) (types.Kind, bool) {
	found := false
	for _, a := range annotations {
		if !a.Covers(pos) {
			continue
		}
		if a.Kind == types.KindError {
			return types.KindError, true
		}
		found = true
	}
	return types.KindNormal, found
}
