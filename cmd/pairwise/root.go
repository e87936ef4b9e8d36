package main

import (
	"github.com/haijima/cobrax"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewRootCmd(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := cobrax.NewRoot(v)
	cmd.Use = "pairwise"
	cmd.Short = "pairwise compares every element of a sequence with every other element"
	cmd.Version = cobrax.VersionFunc(version, commit, date)
	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return cobrax.RootPersistentPreRunE(cmd, v, fs, args)
	}

	cmd.AddCommand(NewPairsCmd(v, fs))
	cmd.AddCommand(NewGraphCmd(v, fs))
	cmd.AddCommand(NewClusterCmd(v, fs))
	cmd.AddCommand(NewReportCmd(v, fs))
	cmd.AddCommand(NewGenConfCmd(v, fs))

	cmd.SetGlobalNormalizationFunc(cobrax.SnakeToKebab)

	return cmd
}
