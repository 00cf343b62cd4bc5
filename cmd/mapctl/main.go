package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - validate: Check a snapshot directory
// - render:   Render one frame of a snapshot to JSON or GeoJSON

func main() {
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)
	renderCmd := flag.NewFlagSet("render", flag.ExitOnError)

	// validate parameters
	validateDir := validateCmd.String("dir", "./data/snapshot", "Snapshot directory to validate")

	// render parameters
	renderDir := renderCmd.String("dir", "", "Snapshot directory (CSV export)")
	renderFile := renderCmd.String("file", "", "Snapshot JSON document, used when -dir is empty")
	renderMinute := renderCmd.String("minute", "0", `Simulation clock: minutes or a stamp such as "D1 09:00"`)
	renderWidth := renderCmd.Float64("width", 1280, "Container width in pixels")
	renderHeight := renderCmd.Float64("height", 720, "Container height in pixels")
	renderFormat := renderCmd.String("format", "json", "Output format (json, geojson)")
	renderOutput := renderCmd.String("output", "", "Output file, stdout when empty")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	flags := mapctlFlags{
		Validate: validateFlags{
			cmd: validateCmd,
			dir: validateDir,
		},
		Render: renderFlags{
			cmd:    renderCmd,
			dir:    renderDir,
			file:   renderFile,
			minute: renderMinute,
			width:  renderWidth,
			height: renderHeight,
			format: renderFormat,
			output: renderOutput,
		},
	}

	if err := runSubcommand(&flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type mapctlFlags struct {
	Validate validateFlags
	Render   renderFlags
}

type validateFlags struct {
	cmd *flag.FlagSet
	dir *string
}

type renderFlags struct {
	cmd    *flag.FlagSet
	dir    *string
	file   *string
	minute *string
	width  *float64
	height *float64
	format *string
	output *string
}

func runSubcommand(flags *mapctlFlags) error {
	switch os.Args[1] {
	case "validate":
		return handleValidate(flags)
	case "render":
		return handleRender(flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleValidate(flags *mapctlFlags) error {
	if err := flags.Validate.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse validate flags")
	}

	return runValidate(os.Stdout, *flags.Validate.dir)
}

func handleRender(flags *mapctlFlags) error {
	if err := flags.Render.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse render flags")
	}

	if *flags.Render.dir == "" && *flags.Render.file == "" {
		return errors.New("--dir or --file flag is required for render command")
	}

	return runRender(renderOptions{
		dir:    *flags.Render.dir,
		file:   *flags.Render.file,
		minute: *flags.Render.minute,
		width:  *flags.Render.width,
		height: *flags.Render.height,
		format: *flags.Render.format,
		output: *flags.Render.output,
	})
}

func printUsage() {
	fmt.Println("Usage: mapctl <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  validate    Validate a snapshot directory")
	fmt.Println("  render      Render one frame of a snapshot")
	fmt.Println("")
	fmt.Println("Use 'mapctl <command> -h' for more information about a command.")
}
