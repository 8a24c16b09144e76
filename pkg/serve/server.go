// Package serve runs anno as a long-lived NDJSON server on stdin/stdout.
package serve

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"

	"go.uber.org/zap"

	"github.com/praetorian-inc/anno/pkg/codec"
	"github.com/praetorian-inc/anno/pkg/export"
	"github.com/praetorian-inc/anno/pkg/logging"
	"github.com/praetorian-inc/anno/pkg/render"
	"github.com/praetorian-inc/anno/pkg/style"
	"github.com/praetorian-inc/anno/pkg/typespec"
)

// Version is the server protocol version
const Version = "1.0.0"

// Server answers annotate and dump requests.
type Server struct {
	order   codec.ByteOrder
	encoder *json.Encoder
	decoder *json.Decoder
}

// NewServer creates a new streaming server. order is used for requests that
// do not name a byte order.
func NewServer(order codec.ByteOrder, in io.Reader, out io.Writer) *Server {
	return &Server{
		order:   order,
		encoder: json.NewEncoder(out),
		decoder: json.NewDecoder(bufio.NewReader(in)),
	}
}

// Run starts the server main loop
func (s *Server) Run(ctx context.Context) error {
	s.sendReady()

	reqChan := make(chan Request, 1)
	errChan := make(chan error, 1)

	go func() {
		for {
			var req Request
			if err := s.decoder.Decode(&req); err != nil {
				errChan <- err
				return
			}
			select {
			case reqChan <- req:
			case <-ctx.Done():
				return
			}
		}
	}()

	// Process requests until stdin closes or context cancels
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-errChan:
			// Drain any pending requests before handling EOF
			for {
				select {
				case req := <-reqChan:
					if s.processRequest(req) {
						return nil
					}
				default:
					if err == io.EOF {
						return nil
					}
					s.sendError("decode", err.Error())
					return nil
				}
			}
		case req := <-reqChan:
			if s.processRequest(req) {
				return nil
			}
		}
	}
}

// processRequest handles a single request and returns true if the server should exit
func (s *Server) processRequest(req Request) bool {
	logging.Logger().Debug("request", zap.String("type", req.Type))

	switch req.Type {
	case "annotate":
		s.handleAnnotate(req.Payload)
	case "dump":
		s.handleDump(req.Payload)
	case "close":
		return true
	default:
		s.sendError("unknown", "unknown request type: "+req.Type)
	}
	return false
}

func (s *Server) sendReady() {
	data, _ := json.Marshal(ReadyData{Version: Version})
	s.encoder.Encode(Response{
		Success: true,
		Type:    "ready",
		Data:    data,
	})
}

// decodePayload parses the payload and its byte order.
func (s *Server) decodePayload(payload json.RawMessage) (AnnotatePayload, codec.ByteOrder, error) {
	var p AnnotatePayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return p, 0, err
	}
	if p.ByteOrder == "" {
		return p, s.order, nil
	}
	order, err := codec.ParseByteOrder(p.ByteOrder)
	return p, order, err
}

func (s *Server) handleAnnotate(payload json.RawMessage) {
	p, order, err := s.decodePayload(payload)
	if err != nil {
		s.sendError("annotate", err.Error())
		return
	}

	annotations, err := typespec.Compile(p.Types, order, p.Data)
	if err != nil && !errors.Is(err, typespec.ErrInsufficientData) {
		s.sendError("annotate", err.Error())
		return
	}

	data, _ := json.Marshal(export.Build(p.Source, p.Data, order, annotations, err))
	s.encoder.Encode(Response{
		Success: true,
		Type:    "annotate",
		Data:    data,
	})
}

func (s *Server) handleDump(payload json.RawMessage) {
	p, order, err := s.decodePayload(payload)
	if err != nil {
		s.sendError("dump", err.Error())
		return
	}

	annotations, walkErr := typespec.Compile(p.Types, order, p.Data)
	if walkErr != nil && !errors.Is(walkErr, typespec.ErrInsufficientData) {
		s.sendError("dump", walkErr.Error())
		return
	}

	var buf bytes.Buffer
	d := render.New(render.WithPalette(style.Plain()), render.WithAnnotations(annotations...))
	if err := d.Dump(&buf, p.Data); err != nil {
		s.sendError("dump", err.Error())
		return
	}

	result := DumpData{Text: buf.String()}
	if walkErr != nil {
		result.Error = walkErr.Error()
	}
	data, _ := json.Marshal(result)
	s.encoder.Encode(Response{
		Success: true,
		Type:    "dump",
		Data:    data,
	})
}

func (s *Server) sendError(reqType, msg string) {
	s.encoder.Encode(Response{
		Success: false,
		Type:    reqType,
		Error:   msg,
	})
}
