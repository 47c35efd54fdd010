package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/julianstephens/recoverwise/internal/constants"
)

// File is the on-disk layout of a JSONStore.
type File struct {
	Version     int                        `json:"version"`
	Collections map[string]json.RawMessage `json:"collections"`
}

// JSONStore keeps every collection in one JSON file, rewritten on each write.
type JSONStore struct {
	path string
	file *File
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.file = &File{
		Version:     1,
		Collections: make(map[string]json.RawMessage),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run '%s init' first", constants.AppName)
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.file = &File{}
	if err := json.Unmarshal(data, s.file); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	// Ensure maps are initialized
	if s.file.Collections == nil {
		s.file.Collections = make(map[string]json.RawMessage)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) Read(key string) ([]byte, error) {
	if s.file == nil {
		return nil, ErrNotLoaded
	}
	raw, ok := s.file.Collections[key]
	if !ok {
		return nil, nil
	}
	// The file is indented on save; hand back the compact form.
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return buf.Bytes(), nil
}

func (s *JSONStore) Write(key string, data []byte) error {
	if s.file == nil {
		return ErrNotLoaded
	}
	if !json.Valid(data) {
		return fmt.Errorf("refusing to store invalid JSON under %s", key)
	}
	s.file.Collections[key] = json.RawMessage(slices.Clone(data))
	return s.save()
}

func (s *JSONStore) Delete(key string) error {
	if s.file == nil {
		return ErrNotLoaded
	}
	if _, ok := s.file.Collections[key]; !ok {
		return nil
	}
	delete(s.file.Collections, key)
	return s.save()
}

func (s *JSONStore) Keys() ([]string, error) {
	if s.file == nil {
		return nil, ErrNotLoaded
	}
	keys := make([]string, 0, len(s.file.Collections))
	for k := range s.file.Collections {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys, nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
