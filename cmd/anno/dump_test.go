package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praetorian-inc/anno/pkg/codec"
	"github.com/praetorian-inc/anno/pkg/export"
	"github.com/praetorian-inc/anno/pkg/style"
	"github.com/praetorian-inc/anno/pkg/typespec"
)

// resetDumpFlags restores flag defaults between tests.
func resetDumpFlags(t *testing.T) {
	t.Helper()
	inputFile = ""
	byteOrderName = "little"
	colorMode = "never"
	dumpFormat = "hex"
	configPath = ""
	layoutName = ""
}

func newTestCommand(stdin []byte) (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	cmd.SetIn(bytes.NewReader(stdin))
	return cmd, &buf
}

func outputLines(buf *bytes.Buffer) []string {
	return strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
}

func TestRunDump_Stdin(t *testing.T) {
	resetDumpFlags(t)
	cmd, buf := newTestCommand([]byte{0x34, 0x12})

	err := runDump(cmd, []string{"u16:apid"})
	require.NoError(t, err)

	lines := outputLines(buf)
	require.Len(t, lines, 3)
	assert.Equal(t, "00000000  34 12", strings.TrimRight(lines[0], " "))
	assert.True(t, strings.HasSuffix(lines[1], " apid: 4660"))
	assert.Equal(t, "00000002", lines[2])
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestRunDump_File(t *testing.T) {
	resetDumpFlags(t)
	inputFile = filepath.Join(t.TempDir(), "packet.bin")
	require.NoError(t, os.WriteFile(inputFile, []byte{0x12, 0x34}, 0o644))
	byteOrderName = "big"

	cmd, buf := newTestCommand(nil)
	require.NoError(t, runDump(cmd, []string{"u16"}))
	assert.Contains(t, buf.String(), "u16: 4660")
}

func TestRunDump_MissingFile(t *testing.T) {
	resetDumpFlags(t)
	inputFile = filepath.Join(t.TempDir(), "missing.bin")

	cmd, buf := newTestCommand(nil)
	err := runDump(cmd, nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Empty(t, buf.String())
}

func TestRunDump_NoTypes(t *testing.T) {
	resetDumpFlags(t)
	cmd, buf := newTestCommand([]byte("hello"))

	require.NoError(t, runDump(cmd, nil))
	lines := outputLines(buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "00000000  68 65 6c 6c 6f", strings.TrimRight(lines[0], " "))
	assert.Equal(t, "00000005", lines[1])
}

func TestRunDump_ParseErrorPrintsNothing(t *testing.T) {
	resetDumpFlags(t)
	cmd, buf := newTestCommand([]byte{0x01})

	err := runDump(cmd, []string{"u8", ".7"})
	assert.ErrorIs(t, err, typespec.ErrSkipAlignment)
	assert.Empty(t, buf.String())
}

func TestRunDump_InsufficientData(t *testing.T) {
	resetDumpFlags(t)
	cmd, buf := newTestCommand([]byte{0x01, 0x02, 0x03})

	err := runDump(cmd, []string{"u32"})

	var dataErr *typespec.InsufficientDataError
	require.ErrorAs(t, err, &dataErr)
	assert.Equal(t, 4, dataErr.Expected)
	assert.Equal(t, 3, dataErr.Available)

	out := buf.String()
	assert.Contains(t, out, "u32: expected 4 bytes, only 3 available")
	assert.Contains(t, out, "00000003")
}

func TestRunDump_SkipPastEnd(t *testing.T) {
	resetDumpFlags(t)
	cmd, buf := newTestCommand([]byte{0x01, 0x02})

	err := runDump(cmd, []string{".8", ".16"})
	assert.ErrorIs(t, err, typespec.ErrInsufficientData)
	assert.Contains(t, buf.String(), "00000000  01 02")
	assert.NotContains(t, buf.String(), "└")
}

func TestRunDump_ColorAlways(t *testing.T) {
	resetDumpFlags(t)
	colorMode = "always"
	cmd, buf := newTestCommand([]byte{0x01})

	require.NoError(t, runDump(cmd, []string{"u8"}))
	assert.Contains(t, buf.String(), "\x1b[")
}

func TestRunDump_ColorAutoOnBuffer(t *testing.T) {
	resetDumpFlags(t)
	colorMode = "auto"
	cmd, buf := newTestCommand([]byte{0x01})

	require.NoError(t, runDump(cmd, []string{"u8"}))
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestRunDump_InvalidFlags(t *testing.T) {
	tests := []struct {
		name    string
		setup   func()
		args    []string
		wantErr error
	}{
		{name: "byte order", setup: func() { byteOrderName = "middle" }, args: []string{"u8"}, wantErr: codec.ErrInvalidByteOrder},
		{name: "color", setup: func() { colorMode = "rainbow" }, args: []string{"u8"}, wantErr: style.ErrInvalidMode},
		{name: "unknown type", setup: func() {}, args: []string{"u12"}, wantErr: codec.ErrUnknownType},
		{name: "empty field", setup: func() {}, args: []string{"u8:"}, wantErr: typespec.ErrEmptyFieldName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetDumpFlags(t)
			tt.setup()
			cmd, buf := newTestCommand([]byte{0x01})

			assert.ErrorIs(t, runDump(cmd, tt.args), tt.wantErr)
			assert.Empty(t, buf.String())
		})
	}
}

func TestRunDump_UnknownFormat(t *testing.T) {
	resetDumpFlags(t)
	dumpFormat = "xml"
	cmd, _ := newTestCommand(nil)
	assert.ErrorContains(t, runDump(cmd, nil), "unknown output format")
}

func TestRunDump_JSON(t *testing.T) {
	resetDumpFlags(t)
	dumpFormat = "json"
	cmd, buf := newTestCommand([]byte{0x34, 0x12, 0x01})

	err := runDump(cmd, []string{"u16:apid", "u16"})
	assert.ErrorIs(t, err, typespec.ErrInsufficientData)

	var doc struct {
		Size        int    `json:"size"`
		ByteOrder   string `json:"byte_order"`
		Error       string `json:"error"`
		Annotations []struct {
			Offset int    `json:"offset"`
			Kind   string `json:"kind"`
			Name   string `json:"name"`
			Value  string `json:"value"`
			Bytes  string `json:"bytes"`
		} `json:"annotations"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, 3, doc.Size)
	assert.Equal(t, "little", doc.ByteOrder)
	assert.Contains(t, doc.Error, "not enough data")
	require.Len(t, doc.Annotations, 2)
	assert.Equal(t, "apid", doc.Annotations[0].Name)
	assert.Equal(t, "4660", doc.Annotations[0].Value)
	assert.Equal(t, "3412", doc.Annotations[0].Bytes)
	assert.Equal(t, "error", doc.Annotations[1].Kind)
	assert.Equal(t, "01", doc.Annotations[1].Bytes)
}

func TestRunDump_CBOR(t *testing.T) {
	resetDumpFlags(t)
	dumpFormat = "cbor"
	cmd, buf := newTestCommand([]byte{0x34, 0x12})

	require.NoError(t, runDump(cmd, []string{"u16:apid"}))

	doc, err := export.ReadCBOR(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, 2, doc.Size)
	require.Len(t, doc.Annotations, 1)
	assert.Equal(t, "4660", doc.Annotations[0].Value)
}

func TestRunDump_ConfigLayout(t *testing.T) {
	resetDumpFlags(t)
	byteOrderName = ""
	colorMode = ""
	configPath = filepath.Join(t.TempDir(), "anno.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(`byte_order: big
color: never
layouts:
  header:
    - u16:apid
`), 0o644))
	layoutName = "header"

	cmd, buf := newTestCommand([]byte{0x12, 0x34, 0x07})
	require.NoError(t, runDump(cmd, []string{"u8:flags"}))

	out := buf.String()
	assert.Contains(t, out, "apid: 4660")
	assert.Contains(t, out, "flags: 7")
	assert.Less(t, strings.Index(out, "apid"), strings.Index(out, "flags"))
}

func TestRunDump_FlagOverridesConfig(t *testing.T) {
	resetDumpFlags(t)
	configPath = filepath.Join(t.TempDir(), "anno.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("byte_order: big\n"), 0o644))

	cmd, buf := newTestCommand([]byte{0x34, 0x12})
	require.NoError(t, runDump(cmd, []string{"u16"}))
	assert.Contains(t, buf.String(), "u16: 4660")
}

func TestRunDump_UnknownLayout(t *testing.T) {
	resetDumpFlags(t)
	layoutName = "missing"

	cmd, _ := newTestCommand(nil)
	assert.Error(t, runDump(cmd, nil))
}

func TestReadInput(t *testing.T) {
	data, err := readInput(strings.NewReader("abc"), "-")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), data)

	data, err = readInput(strings.NewReader(""), "")
	require.NoError(t, err)
	assert.Empty(t, data)
}
