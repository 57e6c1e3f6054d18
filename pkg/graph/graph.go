package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// =============================================================================
// Payload Serialization API
// =============================================================================

// MarshalPayload converts a payload to indented JSON bytes.
// Node keys keep first-appearance order.
func MarshalPayload(p *Payload) ([]byte, error) {
	var buf bytes.Buffer
	if err := writePayloadTo(p, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WritePayloadFile writes a payload to a JSON file.
// The file is created with 0644 permissions.
func WritePayloadFile(p *Payload, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writePayloadTo(p, f)
}

// WritePayload writes a payload as JSON to an io.Writer.
// Use MarshalPayload for in-memory serialization or WritePayloadFile for files.
func WritePayload(p *Payload, w io.Writer) error {
	return writePayloadTo(p, w)
}

// ReadPayloadFile reads a JSON file and returns the decoded payload.
func ReadPayloadFile(path string) (*Payload, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return readPayloadFrom(f)
}

// ReadPayload decodes a JSON payload from an io.Reader.
func ReadPayload(r io.Reader) (*Payload, error) {
	return readPayloadFrom(r)
}

// =============================================================================
// Internal Implementation
// =============================================================================

func writePayloadTo(p *Payload, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func readPayloadFrom(r io.Reader) (*Payload, error) {
	p := NewPayload("")
	if err := json.NewDecoder(r).Decode(p); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if p.Edges == nil {
		p.Edges = []Edge{}
	}
	if p.Views.ContainerViews == nil {
		p.Views.ContainerViews = []ContainerView{}
	}
	if p.Views.ComponentViews == nil {
		p.Views.ComponentViews = []ComponentView{}
	}
	return p, nil
}
