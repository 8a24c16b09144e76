package serve

import (
	"encoding/json"
)

// Request represents an incoming NDJSON request
type Request struct {
	Type    string          `json:"type"` // "annotate" | "dump" | "close"
	Payload json.RawMessage `json:"payload"`
}

// AnnotatePayload is the payload for "annotate" and "dump" requests.
// Data is base64 encoded on the wire.
type AnnotatePayload struct {
	Data      []byte   `json:"data"`
	Types     []string `json:"types"`
	ByteOrder string   `json:"byte_order,omitempty"`
	Source    string   `json:"source,omitempty"`
}

// Response represents an outgoing NDJSON response
type Response struct {
	Success bool            `json:"success"`
	Type    string          `json:"type"` // "ready" | "annotate" | "dump" | "error"
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// ReadyData is the data field for "ready" responses
type ReadyData struct {
	Version string `json:"version"`
}

// DumpData is the data field for "dump" responses. Error is set when the
// data ran out; Text still holds the dump of what was decoded.
type DumpData struct {
	Text  string `json:"text"`
	Error string `json:"error,omitempty"`
}
