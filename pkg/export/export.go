// Package export writes compiled annotations as a JSON or CBOR document.
package export

import (
	"encoding/hex"
	"encoding/json"
	"io"
	"path/filepath"
	"strings"

	"github.com/fxamacker/cbor/v2"

	"github.com/praetorian-inc/anno/pkg/codec"
	"github.com/praetorian-inc/anno/pkg/types"
)

// Format constants
const (
	FormatVersion = "1"
	ToolName      = "anno"
)

// Document is the top-level JSON export.
type Document struct {
	Version     string  `json:"version"`
	Tool        string  `json:"tool"`
	Source      string  `json:"source,omitempty"`
	Size        int     `json:"size"`
	ByteOrder   string  `json:"byte_order"`
	Annotations []Entry `json:"annotations"`
	Error       string  `json:"error,omitempty"`
}

// Entry is one annotation together with the bytes it covers.
type Entry struct {
	Offset int        `json:"offset"`
	Length int        `json:"length"`
	Kind   types.Kind `json:"kind"`
	Name   string     `json:"name,omitempty"`
	Value  string     `json:"value,omitempty"`
	Bytes  string     `json:"bytes"`
}

// NewDocument creates an empty document for a buffer.
func NewDocument(source string, size int, order codec.ByteOrder) *Document {
	return &Document{
		Version:     FormatVersion,
		Tool:        ToolName,
		Source:      formatSourceURI(source),
		Size:        size,
		ByteOrder:   order.String(),
		Annotations: []Entry{},
	}
}

// Add appends an annotation. Bytes holds the hex of the part of data the
// annotation covers, which is shorter than Length for a truncated field.
func (d *Document) Add(a types.Annotation, data []byte) {
	entry := Entry{
		Offset: a.Offset,
		Length: a.Length,
		Kind:   a.Kind,
		Name:   a.Label.Name,
		Value:  a.Label.Value,
	}
	if span := a.Span().Clip(len(data)); !span.Empty() {
		entry.Bytes = hex.EncodeToString(data[span.Start:span.End])
	}
	d.Annotations = append(d.Annotations, entry)
}

// SetError records the error that stopped compilation.
func (d *Document) SetError(err error) {
	if err != nil {
		d.Error = err.Error()
	}
}

// Build creates a document from a compiled buffer.
func Build(source string, data []byte, order codec.ByteOrder, annotations []types.Annotation, err error) *Document {
	doc := NewDocument(source, len(data), order)
	for _, a := range annotations {
		doc.Add(a, data)
	}
	doc.SetError(err)
	return doc
}

// ToJSON serializes the document to indented JSON bytes.
func (d *Document) ToJSON() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// Write encodes the document to w.
func Write(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// WriteCBOR encodes the document to w as CBOR. Map keys match the JSON
// field names; Kind is encoded as its integer value.
func WriteCBOR(w io.Writer, doc *Document) error {
	return cbor.NewEncoder(w).Encode(doc)
}

// ReadCBOR decodes a document written by WriteCBOR.
func ReadCBOR(data []byte) (*Document, error) {
	var doc Document
	if err := cbor.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// formatSourceURI converts a file path to URI form.
// Absolute paths get a file:// prefix, relative paths stay as-is.
func formatSourceURI(path string) string {
	if path == "" || path == "-" {
		return ""
	}
	if filepath.IsAbs(path) {
		path = filepath.ToSlash(path)
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		return "file://" + path
	}
	return filepath.ToSlash(path)
}
