//go:build wasm

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"syscall/js"

	"github.com/praetorian-inc/anno/pkg/codec"
	"github.com/praetorian-inc/anno/pkg/export"
	"github.com/praetorian-inc/anno/pkg/render"
	"github.com/praetorian-inc/anno/pkg/typespec"
)

// request holds the arguments shared by AnnoAnnotate and AnnoDump:
// (data Uint8Array, typesJSON string, byteOrder string).
type request struct {
	data  []byte
	order codec.ByteOrder
	types []string
}

func parseArgs(args []js.Value) (request, error) {
	var req request
	if len(args) < 2 {
		return req, errors.New("data and typesJSON arguments required")
	}

	req.data = make([]byte, args[0].Length())
	js.CopyBytesToGo(req.data, args[0])

	if err := json.Unmarshal([]byte(args[1].String()), &req.types); err != nil {
		return req, errors.New("failed to parse types JSON: " + err.Error())
	}

	req.order = codec.LittleEndian
	if len(args) > 2 && args[2].String() != "" {
		order, err := codec.ParseByteOrder(args[2].String())
		if err != nil {
			return req, err
		}
		req.order = order
	}
	return req, nil
}

// annotate decodes a buffer.
// JS: AnnoAnnotate(data, typesJSON, byteOrder) -> JSON document or error
func annotate(this js.Value, args []js.Value) interface{} {
	req, err := parseArgs(args)
	if err != nil {
		return map[string]interface{}{"error": err.Error()}
	}

	annotations, walkErr := typespec.Compile(req.types, req.order, req.data)
	if walkErr != nil && !errors.Is(walkErr, typespec.ErrInsufficientData) {
		return map[string]interface{}{"error": walkErr.Error()}
	}

	jsonBytes, err := export.Build("", req.data, req.order, annotations, walkErr).ToJSON()
	if err != nil {
		return map[string]interface{}{"error": "failed to marshal document: " + err.Error()}
	}
	return string(jsonBytes)
}

// dump renders a buffer as an annotated hexdump.
// JS: AnnoDump(data, typesJSON, byteOrder) -> {text, error}
func dump(this js.Value, args []js.Value) interface{} {
	req, err := parseArgs(args)
	if err != nil {
		return map[string]interface{}{"error": err.Error()}
	}

	annotations, walkErr := typespec.Compile(req.types, req.order, req.data)
	if walkErr != nil && !errors.Is(walkErr, typespec.ErrInsufficientData) {
		return map[string]interface{}{"error": walkErr.Error()}
	}

	var buf bytes.Buffer
	if err := render.New(render.WithAnnotations(annotations...)).Dump(&buf, req.data); err != nil {
		return map[string]interface{}{"error": err.Error()}
	}

	result := map[string]interface{}{"text": buf.String()}
	if walkErr != nil {
		result["error"] = walkErr.Error()
	}
	return result
}

// listTypes returns the supported type names.
// JS: AnnoTypes() -> JSON array of names
func listTypes(this js.Value, args []js.Value) interface{} {
	var names []string
	for _, dt := range codec.DataTypes() {
		names = append(names, dt.Name())
	}

	jsonBytes, err := json.Marshal(names)
	if err != nil {
		return map[string]interface{}{"error": "failed to marshal types: " + err.Error()}
	}
	return string(jsonBytes)
}
