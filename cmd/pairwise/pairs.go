package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/haijima/pairwise/internal/pairs"
	"github.com/haijima/pairwise/internal/render"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewPairsCmd(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "pairs"
	cmd.Aliases = []string{"pair"}
	cmd.Short = "List the pairs of elements matching the expression"
	cmd.Args = cobra.NoArgs
	cmd.RunE = func(cmd *cobra.Command, _ []string) error { return runPairs(cmd, v, fs) }

	SetInputFlags(cmd)
	cmd.Flags().String("format", "table", "The output format {"+strings.Join(render.Formats, "|")+"}")
	cmd.Flags().Bool("all", false, "Show every pair together with the result of the expression")
	cmd.Flags().Int("limit", 0, "Stop after `N` rows, 0 for no limit")
	cmd.Flags().Bool("no-header", false, "Hide header")

	return cmd
}

func runPairs(cmd *cobra.Command, v *viper.Viper, fs afero.Fs) error {
	format := v.GetString("format")
	if err := render.ValidateFormat(format); err != nil {
		return err
	}
	seq, p, err := loadInput(cmd, v, fs)
	if err != nil {
		return err
	}
	return printPairs(cmd.OutOrStdout(), seq, p, v)
}

func printPairs(w io.Writer, seq []any, p pairs.Predicate, v *viper.Viper) error {
	format := v.GetString("format")
	all := v.GetBool("all")
	limit := v.GetInt("limit")
	noHeader := v.GetBool("no-header")
	if limit < 0 {
		return errors.Newf("invalid limit: %d", limit)
	}

	matches, err := pairs.Find(seq, p, pairs.Option{All: all, Limit: limit})
	if err != nil {
		return err
	}

	var header table.Row
	if !noHeader {
		header = table.Row{"#", "i", "j", "a", "b"}
		if all {
			header = append(header, "result")
		}
	}
	t := render.NewTable(w, header)
	for k, m := range matches {
		row := table.Row{k + 1, m.I, m.J, display(m.A), display(m.B)}
		if all {
			row = append(row, m.Result)
		}
		t.AppendRow(row)
	}
	render.Render(t, format)
	return nil
}

func display(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
