package project

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/myluxcars/fleetcast/pkg/models/store"
)

// Store reads and writes the persisted project document. It has no domain
// knowledge; callers map the wire types through the adapters package.
type Store interface {
	Load(path string) (*store.Project, error)
	Save(path string, p *store.Project) error
	Read(r io.Reader) (*store.Project, error)
	Write(w io.Writer, p *store.Project) error
}

type fileStore struct{}

func NewStore() Store {
	return &fileStore{}
}

func (s *fileStore) Load(path string) (*store.Project, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open project file %q: %w", path, err)
	}
	defer f.Close()

	return s.Read(f)
}

func (s *fileStore) Save(path string, p *store.Project) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode project: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write project file %q: %w", path, err)
	}
	return nil
}

func (s *fileStore) Read(r io.Reader) (*store.Project, error) {
	var p store.Project
	dec := json.NewDecoder(r)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("invalid project document: %w", err)
	}
	return &p, nil
}

func (s *fileStore) Write(w io.Writer, p *store.Project) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("failed to encode project: %w", err)
	}
	return nil
}
