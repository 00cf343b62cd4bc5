package snapshot

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMetadata(t *testing.T) {
	dir := writeSnapshotDir(t, map[string]string{MetadataFile: testMetadata})

	metadata, err := LoadMetadata(dir)
	require.NoError(t, err)
	require.NoError(t, metadata.Validate())

	assert.Equal(t, "week-1", metadata.Name)
	assert.Equal(t, 3, metadata.Counts.Waypoints)
	assert.Equal(t, "week-1", metadata.Summary()["name"])
}

func TestLoadMetadata_Missing(t *testing.T) {
	_, err := LoadMetadata(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "metadata.json not found")
}

func TestMetadata_Validate(t *testing.T) {
	tests := []struct {
		name     string
		metadata Metadata
		wantErr  string
	}{
		{name: "no version", metadata: Metadata{}, wantErr: "version"},
		{name: "empty grid", metadata: Metadata{Version: "1"}, wantErr: "columns and rows"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.metadata.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMetadata_VerifyFiles(t *testing.T) {
	dir := writeSnapshotDir(t, map[string]string{OrdersFile: testOrders})
	sum := fmt.Sprintf("%x", sha256.Sum256([]byte(testOrders)))

	metadata := &Metadata{Files: map[string]*FileInfo{
		OrdersFile: {SizeBytes: int64(len(testOrders)), SHA256: sum},
	}}
	require.NoError(t, metadata.VerifyFiles(dir))

	require.NoError(t, os.WriteFile(filepath.Join(dir, OrdersFile), []byte(testOrders+"O-3,P,c,1,1,0,1,1\n"), 0o644))
	metadata.Files[OrdersFile].SizeBytes = 0
	err := metadata.VerifyFiles(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "checksum mismatch")

	metadata.Files[OrdersFile].SizeBytes = 1
	err = metadata.VerifyFiles(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match metadata size")
}
