package cli

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/matzehuels/polyclip/pkg/errors"
	"github.com/matzehuels/polyclip/pkg/polygon"
	"github.com/matzehuels/polyclip/pkg/polygon/sink"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	grid     gridFlags
	mean     int    // expected number of extra vertices
	count    int    // number of polygons to print
	seed     uint64 // base seed; polygon i uses seed+i
	seedSet  bool   // whether --seed was given
	format   string // raw, css or json
	property string // CSS property for the css format
}

func (c *CLI) generateCommand() *cobra.Command {
	opts := generateOpts{
		mean:     polygon.DefaultMean,
		count:    1,
		format:   string(sink.FormatRaw),
		property: sink.DefaultProperty,
	}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print random clip-path polygons",
		Long: `Print random clip-path polygons.

Each polygon keeps the four corners and adds on average --mean extra
vertices picked from the perimeter grid. Pass --seed for reproducible
output; polygon i of a run is generated from seed+i.`,
		Example: `  polyclip generate
  polyclip generate --step 10 --mean 8 --count 3
  polyclip generate --format css --seed 42`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.seedSet = cmd.Flags().Changed("seed")
			return c.runGenerate(cmd, opts)
		},
	}

	opts.grid.register(cmd)
	cmd.Flags().IntVarP(&opts.mean, "mean", "m", opts.mean, "expected number of vertices added to the four corners")
	cmd.Flags().IntVarP(&opts.count, "count", "n", opts.count, "number of polygons to generate")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed for reproducible output")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: raw, css, json")
	cmd.Flags().StringVar(&opts.property, "property", opts.property, "CSS property name for the css format")

	return cmd
}

func (c *CLI) runGenerate(cmd *cobra.Command, opts generateOpts) error {
	format, err := sink.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	if opts.count < 1 {
		return errors.New(errors.ErrCodeInvalidInput, "count must be at least 1, got %d", opts.count)
	}
	if err := errors.ValidateMean(opts.mean); err != nil {
		return err
	}

	g, err := c.newGenerator(opts.grid)
	if err != nil {
		return err
	}
	if pool := len(g.Pool()); opts.mean >= pool && pool > 0 {
		printWarning(cmd.ErrOrStderr(), "mean %d reaches the grid size, every polygon uses all %d grid points", opts.mean, pool)
	}

	seed := opts.seed
	if !opts.seedSet {
		seed = rand.Uint64()
	}
	c.Logger.Debug("generating polygons", "mean", opts.mean, "count", opts.count, "seed", seed, "format", format)

	prog := newProgress(c.Logger)
	w := cmd.OutOrStdout()
	for i := range opts.count {
		polySeed := seed + uint64(i)
		p, err := g.Build(polygon.NewSource(polySeed), opts.mean)
		if err != nil {
			return err
		}
		out, err := encode(format, p, polySeed, g.StepSize(), opts.property)
		if err != nil {
			return err
		}
		c.Logger.Debug("polygon generated", "index", i, "seed", polySeed, "vertices", p.Len())
		fmt.Fprintln(w, out)
	}
	prog.done(fmt.Sprintf("Generated %d polygon(s)", opts.count))
	return nil
}

// encode renders p in the requested format.
func encode(format sink.Format, p polygon.Polygon, seed uint64, step int, property string) (string, error) {
	switch format {
	case sink.FormatCSS:
		return sink.CSS(p, sink.WithProperty(property)), nil
	case sink.FormatJSON:
		data, err := sink.JSON(p, sink.WithSeed(seed), sink.WithStepSize(step))
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		return sink.Raw(p), nil
	}
}
