package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/polyclip/pkg/polygon"
)

func (c *CLI) gridCommand() *cobra.Command {
	var flags gridFlags

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Show the perimeter grid for a step size",
		Long: `Show the perimeter grid for a step size.

Lists the four fixed corners and every optional grid point, ordered by
perimeter key, which is the order vertices appear in generated polygons.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.newGenerator(flags)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			printKeyValue(w, "Step size", strconv.Itoa(g.StepSize()))
			printKeyValue(w, "Steps per side", strconv.Itoa(g.StepsPerSide()))
			printKeyValue(w, "Optional points", strconv.Itoa(len(g.Pool())))
			fmt.Fprintln(w)
			fmt.Fprintln(w, renderGrid(g))
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

// gridRow is one line of the grid table.
type gridRow struct {
	vertex polygon.Vertex
	corner bool
}

// gridRows merges corners and pool into key order.
func gridRows(g *polygon.Generator) []gridRow {
	corners, pool := g.Corners(), g.Pool()
	rows := make([]gridRow, 0, len(corners)+len(pool))
	i, j := 0, 0
	for i < len(corners) || j < len(pool) {
		if j >= len(pool) || (i < len(corners) && corners[i].Key < pool[j].Key) {
			rows = append(rows, gridRow{vertex: corners[i], corner: true})
			i++
			continue
		}
		rows = append(rows, gridRow{vertex: pool[j]})
		j++
	}
	return rows
}

// renderGrid renders the grid as a table.
func renderGrid(g *polygon.Generator) string {
	rows := gridRows(g)
	cells := make([][]string, len(rows))
	for i, r := range rows {
		kind := "optional"
		if r.corner {
			kind = "corner"
		}
		cells[i] = []string{
			strconv.Itoa(r.vertex.Key),
			strconv.FormatFloat(r.vertex.X, 'f', -1, 64),
			strconv.FormatFloat(r.vertex.Y, 'f', -1, 64),
			kind,
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Key", "X %", "Y %", "Kind").
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row >= 0 && row < len(rows) && rows[row].corner {
				return styleCorner
			}
			return StyleValue
		}).
		Render()
}
