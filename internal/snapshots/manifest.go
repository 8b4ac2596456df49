package snapshots

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Manifest tracks when each source's records were last refreshed.
type Manifest struct {
	Version     int                  `json:"version"`
	GeneratedAt time.Time            `json:"generatedAt"`
	Records     map[string]time.Time `json:"records"`
}

func defaultManifest() Manifest {
	return Manifest{
		Version: 1,
		Records: map[string]time.Time{},
	}
}

func (w *Writer) updateManifest(source string) error {
	path := filepath.Join(w.basePath, "manifest.json")
	m, _ := readManifest(path)
	if m.Records == nil {
		m.Records = map[string]time.Time{}
	}
	m.Records[source] = time.Now().UTC()
	return writeManifest(w.basePath, m)
}

func readManifest(path string) (Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return defaultManifest(), err
	}
	defer f.Close()
	var m Manifest
	if err := json.NewDecoder(f).Decode(&m); err != nil {
		return defaultManifest(), err
	}
	return m, nil
}

func writeManifest(basePath string, m Manifest) error {
	m.GeneratedAt = time.Now().UTC()
	path := filepath.Join(basePath, "manifest.json")
	tmp := path + ".tmp"
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// LastRefreshed reports when a source's records were last written, reading
// the manifest under basePath. Zero time when unknown.
func LastRefreshed(basePath, source string) time.Time {
	m, err := readManifest(filepath.Join(basePath, "manifest.json"))
	if err != nil {
		return time.Time{}
	}
	return m.Records[source]
}
