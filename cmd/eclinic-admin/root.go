package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eclinichms/eclinic-admin/internal/config"
	"github.com/eclinichms/eclinic-admin/internal/psql"
	"github.com/eclinichms/eclinic-admin/pkg/logger"
)

var envFile string

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "eclinic-admin",
		Short:         "Seed and bulk-load the eclinichms database",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&envFile, "env", "e", ".env", "dotenv file with pg env vars")

	cmd.AddCommand(newSchemaCmd())
	cmd.AddCommand(newEnumsCmd())
	cmd.AddCommand(newPsqlCmd())
	cmd.AddCommand(newPricelistCmd())
	cmd.AddCommand(newInvoicesCmd())
	cmd.AddCommand(newUsersCmd())
	cmd.AddCommand(newDiagnosesCmd())
	cmd.AddCommand(newSuperuserCmd())
	cmd.AddCommand(newInitCmd())

	return cmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

// newPsqlRunner builds the subprocess collaborator for command paths that
// never open their own database connection.
func newPsqlRunner() (*psql.Runner, error) {
	cfg, err := config.New(envFile)
	if err != nil {
		return nil, err
	}
	return psql.NewRunner(cfg.Database, logger.New(cfg)), nil
}
