package main

import (
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/haijima/pairwise/internal/pairs"
	"github.com/haijima/pairwise/internal/render"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewGraphCmd(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "graph"
	cmd.Aliases = []string{"neighbors"}
	cmd.Short = "Show the neighbours of each element, linking the pairs matching the expression"
	cmd.Args = cobra.NoArgs
	cmd.RunE = func(cmd *cobra.Command, _ []string) error { return runGraph(cmd, v, fs) }

	SetInputFlags(cmd)
	cmd.Flags().String("format", "table", "The output format {"+strings.Join(render.Formats, "|")+"}")
	cmd.Flags().Int("min-degree", 0, "Hide elements with fewer than `N` neighbours")

	return cmd
}

func runGraph(cmd *cobra.Command, v *viper.Viper, fs afero.Fs) error {
	format := v.GetString("format")
	if err := render.ValidateFormat(format); err != nil {
		return err
	}
	seq, p, err := loadInput(cmd, v, fs)
	if err != nil {
		return err
	}
	return printGraph(cmd.OutOrStdout(), seq, p, v)
}

func printGraph(w io.Writer, seq []any, p pairs.Predicate, v *viper.Viper) error {
	format := v.GetString("format")
	minDegree := v.GetInt("min-degree")
	if minDegree < 0 {
		return errors.Newf("invalid min-degree: %d", minDegree)
	}

	nodes, err := pairs.Graph(seq, p)
	if err != nil {
		return err
	}
	triangles := pairs.Triangles(nodes)

	t := render.NewTable(w, table.Row{"#", "value", "degree", "triangles", "neighbors"})
	for k, n := range nodes {
		if n.Degree() < minDegree {
			continue
		}
		neighbors := make([]string, 0, len(n.Neighbors))
		for _, m := range n.Neighbors {
			neighbors = append(neighbors, strconv.Itoa(m))
		}
		t.AppendRow(table.Row{n.Index, display(n.Value), n.Degree(), triangles[k], strings.Join(neighbors, " ")})
	}
	render.Render(t, format)
	return nil
}
