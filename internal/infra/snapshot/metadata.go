package snapshot

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"time"

	"glpmap/internal/domain/entity"
	"glpmap/internal/util"

	"github.com/pkg/errors"
)

// MetadataFile is the name of the descriptor expected in a snapshot directory.
const MetadataFile = "metadata.json"

// Metadata describes a snapshot directory exported by the planner.
type Metadata struct {
	Version     string               `json:"version"`
	Name        string               `json:"name"`
	GeneratedAt time.Time            `json:"generated_at"`
	Grid        entity.GridSpec      `json:"grid"`
	Counts      Counts               `json:"counts"`
	Files       map[string]*FileInfo `json:"files,omitempty"`
}

// Counts holds the expected number of rows per file.
type Counts struct {
	Warehouses int `json:"warehouses"`
	Orders     int `json:"orders"`
	Blockages  int `json:"blockages"`
	Vehicles   int `json:"vehicles"`
	Waypoints  int `json:"waypoints"`
}

// FileInfo contains checksum information for a single file
type FileInfo struct {
	SizeBytes int64  `json:"size_bytes"`
	SHA256    string `json:"sha256,omitempty"`
}

// LoadMetadata loads and parses the metadata.json file from the given directory
func LoadMetadata(dataDir string) (*Metadata, error) {
	metadataPath := filepath.Join(dataDir, MetadataFile)

	data, err := os.ReadFile(metadataPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(err, "metadata.json not found in snapshot directory")
		}

		return nil, errors.Wrap(err, "failed to read metadata.json")
	}

	var metadata Metadata
	if err := json.Unmarshal(data, &metadata); err != nil {
		return nil, errors.Wrap(err, "failed to parse metadata.json")
	}

	return &metadata, nil
}

// Validate checks if the metadata is complete
func (m *Metadata) Validate() error {
	if m.Version == "" {
		return errors.New("metadata version is required")
	}

	if m.Grid.Columns <= 0 || m.Grid.Rows <= 0 {
		return errors.New("grid columns and rows must be positive")
	}

	if m.Grid.CellSizeX <= 0 || m.Grid.CellSizeY <= 0 {
		return errors.New("grid cell sizes must be positive")
	}

	return nil
}

// VerifyFiles compares the size and checksum of every listed file with the directory content.
func (m *Metadata) VerifyFiles(dataDir string) error {
	names := make([]string, 0, len(m.Files))
	for name := range m.Files {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		info := m.Files[name]
		path := filepath.Join(dataDir, name)

		stat, err := os.Stat(path)
		if err != nil {
			return errors.Wrapf(err, "listed file %s", name)
		}
		if info.SizeBytes > 0 && stat.Size() != info.SizeBytes {
			return errors.Errorf("%s: size %d does not match metadata size %d", name, stat.Size(), info.SizeBytes)
		}

		if info.SHA256 == "" {
			continue
		}
		sum, err := util.CalculateFileChecksum(path)
		if err != nil {
			return errors.WithStack(err)
		}
		if sum != info.SHA256 {
			return errors.Errorf("%s: checksum mismatch", name)
		}
	}

	return nil
}

// Summary returns a brief summary of the metadata for logging
func (m *Metadata) Summary() map[string]any {
	return map[string]any{
		"name":         m.Name,
		"version":      m.Version,
		"generated_at": m.GeneratedAt,
		"columns":      m.Grid.Columns,
		"rows":         m.Grid.Rows,
		"orders":       m.Counts.Orders,
		"vehicles":     m.Counts.Vehicles,
	}
}
