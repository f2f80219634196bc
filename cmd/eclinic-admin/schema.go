package main

import (
	"github.com/spf13/cobra"
)

func newSchemaCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Initialize the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := newPsqlRunner()
			if err != nil {
				return err
			}
			return runner.RunScript(cmd.Context(), file)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Schema file")
	cobra.CheckErr(cmd.MarkFlagRequired("file"))
	return cmd
}

func newEnumsCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "enums",
		Short: "Initialize the database enums",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := newPsqlRunner()
			if err != nil {
				return err
			}
			return runner.RunScript(cmd.Context(), file)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Enums file")
	cobra.CheckErr(cmd.MarkFlagRequired("file"))
	return cmd
}

func newPsqlCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "psql",
		Short: "Start a psql prompt session",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := newPsqlRunner()
			if err != nil {
				return err
			}
			return runner.Interactive(cmd.Context())
		},
	}
}
