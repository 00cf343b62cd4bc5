package main

import (
	"encoding/json"
	"io"
	"os"

	"glpmap/internal/domain/constants"
	"glpmap/internal/domain/entity"
	"glpmap/internal/infra/snapshot"
	"glpmap/internal/mapview/scene"
	"glpmap/internal/mapview/viewport"
	"glpmap/internal/util"

	"github.com/pkg/errors"
)

type renderOptions struct {
	dir    string
	file   string
	minute string
	width  float64
	height float64
	format string
	output string
}

func runRender(opts renderOptions) error {
	snap, err := loadSnapshot(opts)
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if opts.output != "" {
		file, err := os.Create(opts.output)
		if err != nil {
			return errors.Wrap(err, "failed to create output file")
		}
		defer file.Close()
		out = file
	}

	return renderSnapshot(out, snap, opts)
}

func loadSnapshot(opts renderOptions) (*entity.Snapshot, error) {
	if opts.dir != "" {
		return snapshot.NewCSVLoader(opts.dir, true).Load()
	}

	return snapshot.ReadJSONFile(opts.file)
}

// renderSnapshot renders the frame of snap at the requested clock and writes it to w.
func renderSnapshot(w io.Writer, snap *entity.Snapshot, opts renderOptions) error {
	minute, err := util.ParseSimClock(opts.minute)
	if err != nil {
		return err
	}

	container := viewport.Size{Width: opts.width, Height: opts.height}
	if container.IsZero() {
		return errors.Errorf("invalid container size %gx%g", opts.width, opts.height)
	}

	world := scene.NewWorld(snap, scene.DefaultConfig())
	_, frame := world.Render(world.InitialState(container), scene.Input{Minute: &minute})

	var doc any
	switch opts.format {
	case "", constants.FrameFormatJSON:
		doc = frame
	case constants.FrameFormatGeoJSON:
		doc = frame.FeatureCollection(world.Mapper())
	default:
		return errors.Errorf("unsupported format %q", opts.format)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return errors.WithStack(enc.Encode(doc))
}
