package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/haijima/pairwise/internal/render"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewReportCmd(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "report"
	cmd.Aliases = []string{"reports"}
	cmd.Short = "Print pairs, graph and clusters at once"
	cmd.Args = cobra.NoArgs
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return RunReport(cmd, v, fs)
	}

	SetInputFlags(cmd)
	cmd.Flags().String("format", "table", "The output format of the tables {"+strings.Join(render.Formats, "|")+"}")

	return cmd
}

// RunReport reads the input once, so it also works when the sequence comes from stdin.
func RunReport(cmd *cobra.Command, v *viper.Viper, fs afero.Fs) error {
	if err := render.ValidateFormat(v.GetString("format")); err != nil {
		return err
	}
	seq, p, err := loadInput(cmd, v, fs)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, color.CyanString("Pairs"))
	if err := printPairs(w, seq, p, v); err != nil {
		return err
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, color.CyanString("Graph"))
	if err := printGraph(w, seq, p, v); err != nil {
		return err
	}
	fmt.Fprintln(w)

	return printClusters(w, seq, p, v)
}
