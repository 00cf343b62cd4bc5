package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"glpmap/internal/infra/snapshot"
	"glpmap/internal/util"

	"github.com/pkg/errors"
)

func runValidate(w io.Writer, dir string) error {
	fmt.Fprintf(w, "Validating snapshot directory: %s\n", dir)

	if err := validateSnapshotDir(w, dir); err != nil {
		fmt.Fprintf(w, "❌ Validation failed: %v\n", err)

		return err
	}

	fmt.Fprintln(w, "✅ Validation passed!")

	return nil
}

func validateSnapshotDir(w io.Writer, dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return errors.Errorf("directory does not exist: %s", dir)
	}

	fmt.Fprintln(w, "Validating metadata...")
	metadata, err := snapshot.LoadMetadata(dir)
	if err != nil {
		return err
	}
	if err := metadata.Validate(); err != nil {
		return errors.Wrap(err, "invalid metadata")
	}
	fmt.Fprintf(w, "  ✅ Version: %s\n", metadata.Version)
	fmt.Fprintf(w, "  ✅ Grid: %dx%d cells of %gx%g\n",
		metadata.Grid.Columns, metadata.Grid.Rows, metadata.Grid.CellSizeX, metadata.Grid.CellSizeY)
	if !metadata.GeneratedAt.IsZero() {
		fmt.Fprintf(w, "  ✅ Generated: %s\n", metadata.GeneratedAt.Format("2006-01-02 15:04:05"))
	}

	fmt.Fprintln(w, "\nValidating listed files...")
	if err := metadata.VerifyFiles(dir); err != nil {
		return err
	}
	fmt.Fprintf(w, "  ✅ %d files match their size and checksum\n", len(metadata.Files))

	fmt.Fprintln(w, "\nValidating CSV headers...")
	names := make([]string, 0, len(snapshot.Headers))
	for name := range snapshot.Headers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if os.IsNotExist(err) {
			fmt.Fprintf(w, "  ⚠️  %s missing\n", name)

			continue
		}
		if err != nil {
			return errors.WithStack(err)
		}

		header, err := readHeader(path)
		if err != nil {
			return errors.Wrapf(err, "read header of %s", name)
		}
		if err := snapshot.CheckHeader(name, header); err != nil {
			return err
		}
		fmt.Fprintf(w, "  ✅ %s (%s)\n", name, util.FormatBytes(info.Size()))
	}

	fmt.Fprintln(w, "\nLoading snapshot...")
	snap, err := snapshot.NewCSVLoader(dir, false).Load()
	if err != nil {
		return err
	}

	checkCount(w, "Warehouses", metadata.Counts.Warehouses, len(snap.Warehouses))
	checkCount(w, "Orders", metadata.Counts.Orders, len(snap.Orders))
	checkCount(w, "Blockages", metadata.Counts.Blockages, len(snap.Blockages))
	checkCount(w, "Vehicles", metadata.Counts.Vehicles, len(snap.Vehicles))

	return nil
}

// checkCount reports a loaded row count against the count promised by the metadata.
func checkCount(w io.Writer, label string, expected, actual int) {
	if expected != 0 && expected != actual {
		fmt.Fprintf(w, "  ⚠️  %s: loaded %d, metadata says %d\n", label, actual, expected)

		return
	}
	fmt.Fprintf(w, "  ✅ %s: %d\n", label, actual)
}

func readHeader(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer file.Close()

	header, err := csv.NewReader(file).Read()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return header, nil
}
