package cli

import (
	"fmt"
	"math/rand/v2"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/polyclip/pkg/polygon"
)

func (c *CLI) previewCommand() *cobra.Command {
	var (
		flags gridFlags
		mean  = polygon.DefaultMean
		seed  uint64
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Interactively regenerate polygons",
		Long: `Interactively regenerate polygons.

Keys: r or space regenerates, + and - change the mean, q quits. The last
polygon shown is printed to stdout on exit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.newGenerator(flags)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("seed") {
				seed = rand.Uint64()
			}
			m := newPreviewModel(g, mean, seed)
			if m.err != nil {
				return m.err
			}

			final, err := tea.NewProgram(m, tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return err
			}
			if pm, ok := final.(previewModel); ok && pm.err == nil {
				fmt.Fprintln(cmd.OutOrStdout(), pm.polygon.String())
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVarP(&mean, "mean", "m", mean, "initial expected number of extra vertices")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "initial random seed")
	return cmd
}

// =============================================================================
// previewModel - Interactive polygon preview
// =============================================================================

type previewModel struct {
	gen     *polygon.Generator
	mean    int
	seed    uint64
	polygon polygon.Polygon
	err     error
	width   int
}

func newPreviewModel(g *polygon.Generator, mean int, seed uint64) previewModel {
	m := previewModel{gen: g, mean: mean, seed: seed, width: 80}
	m.regenerate()
	return m
}

// regenerate builds the polygon for the current seed and mean.
func (m *previewModel) regenerate() {
	m.polygon, m.err = m.gen.Build(polygon.NewSource(m.seed), m.mean)
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r", " ", "space":
			m.seed++
			m.regenerate()
		case "+", "=":
			m.mean++
			m.regenerate()
		case "-", "_":
			if m.mean > 0 {
				m.mean--
				m.regenerate()
			}
		}
	case tea.WindowSizeMsg:
		m.width = max(msg.Width, 20)
	}
	return m, nil
}

func (m previewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Polygon Preview"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("r/space regenerate  +/- mean  q quit"))
	b.WriteString("\n\n")

	stats := []string{
		StyleNumber.Render(fmt.Sprint(m.polygon.Len())) + StyleDim.Render(" vertices"),
		StyleDim.Render("mean ") + StyleNumber.Render(fmt.Sprint(m.mean)),
		StyleDim.Render("step ") + StyleNumber.Render(fmt.Sprint(m.gen.StepSize())),
		StyleDim.Render("seed ") + StyleNumber.Render(fmt.Sprint(m.seed)),
	}
	b.WriteString(strings.Join(stats, StyleDim.Render(" · ")))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(StyleWarning.Render(m.err.Error()))
		b.WriteString("\n")
		return b.String()
	}

	// Break after commas so long polygons wrap on vertex boundaries.
	body := strings.ReplaceAll(m.polygon.String(), ",", ", ")
	b.WriteString(lipgloss.NewStyle().Width(m.width).Render(StyleValue.Render(body)))
	b.WriteString("\n")
	return b.String()
}
