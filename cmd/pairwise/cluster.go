package main

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/fatih/color"
	"github.com/haijima/pairwise/internal/pairs"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewClusterCmd(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "cluster"
	cmd.Aliases = []string{"clusters"}
	cmd.Short = "Group elements connected through pairs matching the expression"
	cmd.Args = cobra.NoArgs
	cmd.RunE = func(cmd *cobra.Command, _ []string) error { return runCluster(cmd, v, fs) }

	SetInputFlags(cmd)
	cmd.Flags().Bool("summary", false, "Print summary only")

	return cmd
}

func runCluster(cmd *cobra.Command, v *viper.Viper, fs afero.Fs) error {
	seq, p, err := loadInput(cmd, v, fs)
	if err != nil {
		return err
	}
	return printClusters(cmd.OutOrStdout(), seq, p, v)
}

const tmplClusters = `{{title "Summary"}}
  {{key "elements"}}   : {{.elements}}
  {{key "expression"}} : {{.expr}}
  {{key "clusters"}}   : {{len .clusters}}
{{- if not .summary}}
{{- range .clusters}}

{{label .Index}} {{.Size}} element(s)
  {{key "members"}}    : {{.Members}}
  {{- if .Indirect}}
  {{key "indirect"}}   : {{.Indirect}}
  {{- end}}
{{- end}}
{{- end}}
`

type clusterView struct {
	Index    int
	Size     int
	Members  string
	Indirect string
}

func printClusters(w io.Writer, seq []any, p pairs.Predicate, v *viper.Viper) error {
	clusters, err := pairs.Clusters(seq, p)
	if err != nil {
		return err
	}

	views := make([]clusterView, 0, len(clusters))
	for k, c := range clusters {
		members := make([]string, 0, len(c.Members))
		for _, m := range c.Members {
			members = append(members, fmt.Sprintf("%d:%s", m, display(seq[m])))
		}
		indirect := make([]string, 0, len(c.Missing))
		for _, pr := range c.Missing {
			indirect = append(indirect, fmt.Sprintf("(%d,%d)", pr.L, pr.R))
		}
		views = append(views, clusterView{Index: k + 1, Size: len(c.Members), Members: strings.Join(members, ", "), Indirect: strings.Join(indirect, " ")})
	}

	data := make(map[string]any)
	data["elements"] = len(seq)
	data["expr"] = fmt.Sprint(p)
	data["clusters"] = views
	data["summary"] = v.GetBool("summary")

	return templateRender(w, "clusters", tmplClusters, data)
}

var tmplFuncs = map[string]any{
	"label": func(k int) string {
		return color.New(color.FgBlack, color.BgCyan).Sprintf(" #%d ", k)
	},
	"title": color.CyanString,
	"key":   color.MagentaString,
}

func templateRender(w io.Writer, name string, tmpl string, data map[string]any) error {
	t, err := template.New(name).Funcs(tmplFuncs).Parse(tmpl)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err = t.Execute(&buf, data); err != nil {
		return err
	}
	_, err = buf.WriteTo(w)
	return err
}
