package snapshot

import (
	"encoding/json"
	"io"
	"os"

	"glpmap/internal/domain/entity"

	"github.com/pkg/errors"
)

// DecodeJSON reads one snapshot document and validates it.
func DecodeJSON(r io.Reader) (*entity.Snapshot, error) {
	var snapshot entity.Snapshot
	if err := json.NewDecoder(r).Decode(&snapshot); err != nil {
		return nil, errors.Wrap(err, "decode snapshot")
	}

	if err := snapshot.Validate(); err != nil {
		return nil, err
	}

	return &snapshot, nil
}

// ReadJSONFile decodes the snapshot stored at path.
func ReadJSONFile(path string) (*entity.Snapshot, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer file.Close()

	return DecodeJSON(file)
}
