package store

import (
	"context"
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/matzehuels/mandala/pkg/errors"
	mio "github.com/matzehuels/mandala/pkg/io"
	"github.com/matzehuels/mandala/pkg/mandala"
)

// FileStore keeps each mandala as <dir>/<id>.json.
type FileStore struct {
	mu  sync.RWMutex
	dir string
}

// NewFileStore creates a file store rooted at dir. If dir is empty it
// defaults to ~/.config/mandala/documents.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeStorage, err, "locate config dir")
		}
		dir = filepath.Join(base, "mandala", "documents")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "create store dir")
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the store root.
func (s *FileStore) Dir() string { return s.dir }

func (s *FileStore) path(id string) string {
	return filepath.Join(s.dir, id+".json")
}

// Load reads the document with the given id.
func (s *FileStore) Load(ctx context.Context, id string) (*mandala.Mandala, error) {
	if err := errors.ValidateID(id); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.load(id)
}

func (s *FileStore) load(id string) (*mandala.Mandala, error) {
	m, err := mio.ImportJSON(s.path(id))
	if errors.Is(err, errors.ErrCodeFileNotFound) {
		return nil, errors.Wrap(errors.ErrCodeNotFound, err, "mandala %s not found", id)
	}
	return m, err
}

// Save writes m, replacing any stored version.
func (s *FileStore) Save(ctx context.Context, m *mandala.Mandala) error {
	if err := errors.ValidateID(m.ID); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(m)
}

func (s *FileStore) save(m *mandala.Mandala) error {
	tmp := s.path(m.ID) + ".tmp"
	if err := mio.ExportJSON(m, tmp); err != nil {
		return err
	}
	if err := os.Rename(tmp, s.path(m.ID)); err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "replace %s", m.ID)
	}
	return nil
}

// WritePosition applies a position update to the stored document.
func (s *FileStore) WritePosition(ctx context.Context, upd mandala.PositionUpdate) error {
	return s.update(upd.MandalaID, func(m *mandala.Mandala) bool { return m.Apply(upd) }, upd.ItemID)
}

// WriteContent applies a content update to the stored document.
func (s *FileStore) WriteContent(ctx context.Context, upd mandala.ContentUpdate) error {
	return s.update(upd.MandalaID, func(m *mandala.Mandala) bool { return m.ApplyContent(upd) }, upd.ItemID)
}

func (s *FileStore) update(id string, apply func(*mandala.Mandala) bool, itemID string) error {
	if err := errors.ValidateID(id); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.load(id)
	if err != nil {
		return err
	}
	if !apply(m) {
		return errors.New(errors.ErrCodeItemNotFound, "item %s not found in %s", itemID, id)
	}
	return s.save(m)
}

// List returns the ids of all stored documents.
func (s *FileStore) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "read store dir")
	}
	var ids []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		ids = append(ids, e.Name()[:len(e.Name())-len(".json")])
	}
	return ids, nil
}

// Close does nothing for the file store.
func (s *FileStore) Close() error { return nil }

var _ Store = (*FileStore)(nil)
