package snapshots

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Store defines how persisted source records are loaded.
type Store interface {
	LoadRecords(source string, payload any) error
}

// FSStore loads raw source records from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadRecords reads the persisted records for one source from disk.
// Files live at {basePath}/records/{source}.json.
func (s *FSStore) LoadRecords(source string, payload any) error {
	if s == nil {
		return errors.New("snapshot store not configured")
	}
	if source == "" {
		return errors.New("snapshot source required")
	}

	f, err := os.Open(RecordsPath(s.basePath, source))
	if err != nil {
		return err
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(payload); err != nil {
		return fmt.Errorf("decode %s records: %w", source, err)
	}
	return nil
}

// RecordsPath builds the path to one source's records file.
func RecordsPath(basePath, source string) string {
	return filepath.Join(basePath, "records", fmt.Sprintf("%s.json", source))
}
