package main

import (
	"log/slog"
	"strings"

	"github.com/haijima/pairwise/cache"
	"github.com/haijima/pairwise/internal/expr"
	"github.com/haijima/pairwise/internal/input"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Compiled predicates, shared by the subcommands of one invocation.
var predicates = cache.NewCache(expr.Compile)

func SetInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("file", "f", "-", "The `path` of the sequence to compare, - for stdin")
	cmd.Flags().String("input-format", "lines", "The input `format` {"+strings.Join(input.Formats, "|")+"}")
	cmd.Flags().StringP("expr", "e", "a == b", "The CEL `expression` deciding whether a pair matches. Variables: a, b (elements), i, j (indices)")
	_ = cmd.MarkFlagFilename("file", "txt", "json", "yaml", "yml")
}

type InputOption struct {
	File   string
	Format input.Format
	Expr   string
}

func InputOptionFromViper(v *viper.Viper) (*InputOption, error) {
	file := v.GetString("file")
	format := v.GetString("input-format")
	src := v.GetString("expr")

	if file == "" {
		file = "-"
	}
	if format == "" {
		format = string(input.Lines)
	}
	if src == "" {
		src = "a == b"
	}
	f, err := input.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	return &InputOption{File: file, Format: f, Expr: src}, nil
}

// loadInput reads the sequence and compiles the predicate named by the input flags.
func loadInput(cmd *cobra.Command, v *viper.Viper, fs afero.Fs) ([]any, *expr.Predicate, error) {
	opt, err := InputOptionFromViper(v)
	if err != nil {
		return nil, nil, err
	}
	p, err := predicates.Get(opt.Expr)
	if err != nil {
		return nil, nil, err
	}
	slog.Debug("predicate ready", "expr", p.String(), "cached", predicates.Len())
	seq, err := input.Load(fs, cmd.InOrStdin(), opt.File, opt.Format)
	if err != nil {
		return nil, nil, err
	}
	return seq, p, nil
}
