// Package storage persists the patient list to a single JSON or YAML file.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"noknock/internal/model/person"
)

// ErrInvalidData is returned when a data file decodes but holds values that
// fail validation.
var ErrInvalidData = errors.New("invalid data file")

// codec encodes and decodes a document.
type codec interface {
	marshal(doc document) ([]byte, error)
	unmarshal(data []byte, doc *document) error
}

type jsonCodec struct{}

func (jsonCodec) marshal(doc document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func (jsonCodec) unmarshal(data []byte, doc *document) error {
	return json.Unmarshal(data, doc)
}

type yamlCodec struct{}

func (yamlCodec) marshal(doc document) ([]byte, error) {
	return yaml.Marshal(doc)
}

func (yamlCodec) unmarshal(data []byte, doc *document) error {
	return yaml.Unmarshal(data, doc)
}

// FileStore reads and writes the patient list at Path. The codec follows the
// extension: .yaml and .yml use YAML, anything else JSON.
type FileStore struct {
	Path string
}

// NewFileStore returns a store for path.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Location returns the data file path.
func (s *FileStore) Location() string {
	return s.Path
}

func (s *FileStore) codec() codec {
	switch strings.ToLower(filepath.Ext(s.Path)) {
	case ".yaml", ".yml":
		return yamlCodec{}
	default:
		return jsonCodec{}
	}
}

// Load reads every stored patient. A missing file yields an empty list.
func (s *FileStore) Load() ([]person.Patient, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read data file %s: %w", s.Path, err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return nil, nil
	}

	var doc document
	if err := s.codec().unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidData, s.Path, err)
	}
	if doc.Version > formatVersion {
		return nil, fmt.Errorf("%w: %s: unsupported format version %d", ErrInvalidData, s.Path, doc.Version)
	}
	return doc.toPatients()
}

// Save writes patients, replacing the file atomically.
func (s *FileStore) Save(patients []person.Patient) error {
	data, err := s.codec().marshal(fromPatients(patients))
	if err != nil {
		return fmt.Errorf("failed to encode patients: %w", err)
	}

	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.Path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write data file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write data file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		return fmt.Errorf("failed to replace data file %s: %w", s.Path, err)
	}
	return nil
}
