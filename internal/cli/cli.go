// Package cli implements the polyclip command-line interface.
//
// The CLI is built with cobra, logs through charmbracelet/log and styles its
// terminal output with lipgloss.
//
// # Commands
//
//   - generate: Print one or more random clip-path polygons (raw, css or json)
//   - grid: Show the perimeter grid a step size produces
//   - preview: Interactively regenerate polygons in the terminal
//   - completion: Generate shell completion scripts
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/polyclip/pkg/buildinfo"
	"github.com/matzehuels/polyclip/pkg/polygon"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "polyclip"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Polyclip generates random clip-path polygons",
		Long:         `Polyclip generates randomized polygon outlines as CSS percentage coordinates. Every polygon keeps the four corners of its box and adds a random number of slightly jittered vertices along the edges.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.gridCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Generator Factory
// =============================================================================

// gridFlags are the grid options shared by every command that builds a generator.
type gridFlags struct {
	step   int
	strict bool
}

func (f *gridFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.step, "step", polygon.DefaultStepSize, "distance between grid points on a side, in percent (1-100)")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "reject step sizes that do not divide 100")
}

// newGenerator builds a generator from the grid flags and logs its shape.
func (c *CLI) newGenerator(f gridFlags) (*polygon.Generator, error) {
	opts := []polygon.Option{polygon.WithStepSize(f.step)}
	if f.strict {
		opts = append(opts, polygon.WithStrictStep())
	}
	g, err := polygon.New(opts...)
	if err != nil {
		return nil, err
	}
	if 100%g.StepSize() != 0 {
		c.Logger.Warn("step size does not divide 100, last grid cell per side is wider", "step", g.StepSize())
	}
	c.Logger.Debug("grid built", "step", g.StepSize(), "steps_per_side", g.StepsPerSide(), "pool", len(g.Pool()))
	return g, nil
}
