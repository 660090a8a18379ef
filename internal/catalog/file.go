package catalog

import (
	"bufio"
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema/catalog.schema.json
var schemaJSON string

var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// maxDocumentBytes caps a decoded catalog, compressed input included.
var maxDocumentBytes int64 = 64 << 20

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func catalogSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = jsonschema.CompileString("catalog.schema.json", schemaJSON)
	})
	return schema, schemaErr
}

// File is an offline catalog: a product listing saved for browsing without
// a backend.
type File struct {
	SavedAt    string     `json:"saved_at,omitempty"`
	Source     string     `json:"source,omitempty"`
	Categories []Category `json:"categories,omitempty"`
	Products   []Product  `json:"products"`
}

// Decode reads a catalog document, validating it before decoding.
// Compressed and plain JSON input are both accepted.
func Decode(r io.Reader) (File, error) {
	var file File

	br := bufio.NewReader(r)
	if magic, _ := br.Peek(len(zstdMagic)); bytes.Equal(magic, zstdMagic) {
		dec, err := zstd.NewReader(br)
		if err != nil {
			return file, fmt.Errorf("catalog: open zstd stream: %w", err)
		}
		defer dec.Close()
		r = dec
	} else {
		r = br
	}

	data, err := io.ReadAll(io.LimitReader(r, maxDocumentBytes+1))
	if err != nil {
		return file, fmt.Errorf("catalog: read: %w", err)
	}
	if int64(len(data)) > maxDocumentBytes {
		return file, fmt.Errorf("catalog: document exceeds %d bytes", maxDocumentBytes)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return file, fmt.Errorf("catalog: parse: %w", err)
	}
	sch, err := catalogSchema()
	if err != nil {
		return file, fmt.Errorf("catalog: compile schema: %w", err)
	}
	if err := sch.Validate(doc); err != nil {
		return file, fmt.Errorf("catalog: invalid document: %w", err)
	}

	if err := json.Unmarshal(data, &file); err != nil {
		return file, fmt.Errorf("catalog: decode: %w", err)
	}
	return file, nil
}

// LoadFile reads an offline catalog from disk.
func LoadFile(path string) (File, error) {
	f, err := os.Open(path)
	if err != nil {
		return File{}, fmt.Errorf("catalog: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// WriteSnapshot writes file to path as zstd-compressed JSON, creating parent
// directories as needed. SavedAt is filled in when empty.
func WriteSnapshot(path string, file File) error {
	if file.SavedAt == "" {
		file.SavedAt = time.Now().UTC().Format(time.RFC3339)
	}
	if file.Products == nil {
		file.Products = []Product{}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("catalog: create directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("catalog: create snapshot: %w", err)
	}
	defer f.Close()

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return fmt.Errorf("catalog: zstd writer: %w", err)
	}
	if err := json.NewEncoder(enc).Encode(file); err != nil {
		enc.Close()
		return fmt.Errorf("catalog: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("catalog: flush: %w", err)
	}
	return f.Close()
}
