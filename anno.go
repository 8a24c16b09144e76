// Package anno renders byte buffers as annotated hexdumps.
//
// Fields are declared with a compact list of tokens: a scalar type
// ("u8" .. "u64", "i8" .. "i64", "f32", "f64"), optionally named with
// ":name", or a skip directive such as ".32" that advances the cursor by a
// number of bits.
//
// # Basic Usage
//
//	err := anno.Dump(os.Stdout, []byte{0x34, 0x12}, []string{"u16:apid"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// prints
//
//	00000000  34 12
//	         └─────┘                                            apid: 4660
//	00000002
//
// # Without Rendering
//
//	annotations, err := anno.Annotate(data, []string{"u32:magic", ".32", "f64"},
//	    anno.WithByteOrder(anno.BigEndian))
//	for _, a := range annotations {
//	    fmt.Printf("%d+%d %s\n", a.Offset, a.Length, a.Label)
//	}
package anno

import (
	"errors"
	"io"

	"github.com/praetorian-inc/anno/pkg/codec"
	"github.com/praetorian-inc/anno/pkg/config"
	"github.com/praetorian-inc/anno/pkg/render"
	"github.com/praetorian-inc/anno/pkg/style"
	"github.com/praetorian-inc/anno/pkg/types"
	"github.com/praetorian-inc/anno/pkg/typespec"
)

// Re-export commonly used types for convenience.
type (
	// Annotation marks a labeled byte range.
	Annotation = types.Annotation

	// Label is the name and value shown next to an annotation.
	Label = types.Label

	// ByteOrder selects how multi-byte values are decoded.
	ByteOrder = codec.ByteOrder

	// Palette styles the parts of a dump.
	Palette = style.Palette
)

// Re-export byte order constants.
const (
	LittleEndian = codec.LittleEndian
	BigEndian    = codec.BigEndian
)

// ErrInsufficientData matches errors caused by a buffer that is too short
// for the requested fields.
var ErrInsufficientData = typespec.ErrInsufficientData

type options struct {
	order       codec.ByteOrder
	palette     style.Palette
	annotations []types.Annotation
}

// Option configures Annotate and Dump.
type Option func(*options)

// WithByteOrder sets the byte order for multi-byte fields. The default is
// little endian.
func WithByteOrder(order ByteOrder) Option {
	return func(o *options) {
		o.order = order
	}
}

// WithPalette colors the dump. The default leaves the output plain.
func WithPalette(p Palette) Option {
	return func(o *options) {
		o.palette = p
	}
}

// WithAnnotations adds annotations that are drawn next to the decoded ones.
func WithAnnotations(annotations ...Annotation) Option {
	return func(o *options) {
		o.annotations = append(o.annotations, annotations...)
	}
}

func newOptions(opts []Option) *options {
	o := &options{order: codec.LittleEndian, palette: style.Plain()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Annotate decodes data according to tokens.
//
// Invalid tokens fail before any data is read. When the data runs out, the
// annotations decoded so far are returned with the error; the last one is an
// error annotation for the truncated field.
func Annotate(data []byte, tokens []string, opts ...Option) ([]Annotation, error) {
	o := newOptions(opts)
	return typespec.Compile(tokens, o.order, data)
}

// Dump decodes data according to tokens and writes the annotated hexdump to w.
//
// Invalid tokens fail without output. When the data runs out, the dump is
// still written with everything decoded so far and the error is returned
// afterwards.
func Dump(w io.Writer, data []byte, tokens []string, opts ...Option) error {
	o := newOptions(opts)

	annotations, err := typespec.Compile(tokens, o.order, data)
	if err != nil && !errors.Is(err, typespec.ErrInsufficientData) {
		return err
	}

	d := render.New(render.WithPalette(o.palette), render.WithAnnotations(o.annotations...))
	d.Add(annotations...)
	if werr := d.Dump(w, data); werr != nil {
		return werr
	}
	return err
}

// LoadLayout returns the tokens of a named layout from a configuration file.
func LoadLayout(path, name string) ([]string, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return cfg.Layout(name)
}
