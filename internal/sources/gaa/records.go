package gaa

import (
	"context"
	"errors"
	"io/fs"
)

// SourceID is the registry identifier for the GAA source.
const SourceID = "gaa"

// RawRecord is one node scanned from the fixtures page, in document order.
// A record is either a competition section header (Section set) or a match.
type RawRecord struct {
	Section string `json:"section,omitempty"`
	Home    string `json:"home,omitempty"`
	Away    string `json:"away,omitempty"`
	Time    string `json:"time,omitempty"`
	Venue   string `json:"venue,omitempty"`
	Date    string `json:"date,omitempty"`
	Channel string `json:"channel,omitempty"`
}

// IsSection reports whether the record is a section header.
func (r RawRecord) IsSection() bool {
	return r.Section != ""
}

// RecordSource supplies the raw backing records for one extraction run.
// Implementations: live page rendering and the on-disk snapshot.
type RecordSource interface {
	Records(ctx context.Context) ([]RawRecord, error)
}

// RecordLoader reads a source's persisted records; satisfied by the
// snapshots store.
type RecordLoader interface {
	LoadRecords(source string, payload any) error
}

// SnapshotSource reads raw records from the snapshot written by the admin
// refresh. A missing snapshot yields no records, which the extractor reports
// as missing backing data.
type SnapshotSource struct {
	loader RecordLoader
}

// NewSnapshotSource constructs a snapshot-backed record source.
func NewSnapshotSource(loader RecordLoader) *SnapshotSource {
	return &SnapshotSource{loader: loader}
}

// Records loads the persisted raw records.
func (s *SnapshotSource) Records(ctx context.Context) ([]RawRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var records []RawRecord
	if err := s.loader.LoadRecords(SourceID, &records); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return records, nil
}
