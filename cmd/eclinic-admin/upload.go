package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eclinichms/eclinic-admin/factory"
	"github.com/eclinichms/eclinic-admin/internal/config"
	"github.com/eclinichms/eclinic-admin/internal/upload"
)

// runUpload is the shared CSV path: read and shape-check the batch, then
// hand it to the engine and report the applied row count. The file is fully
// validated before a database connection is opened.
func runUpload(cmd *cobra.Command, kind *upload.Kind, file string, rc upload.ReaderConfig) error {
	rows, err := upload.ReadFile(file, rc)
	if err != nil {
		return err
	}
	if err := kind.ValidateShape(rows); err != nil {
		return err
	}

	cfg, err := config.New(envFile)
	if err != nil {
		return err
	}

	f, cleanup, err := factory.New(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	n, err := f.Uploader.Run(cmd.Context(), kind, rows)
	if err != nil {
		return err
	}

	fmt.Printf("Uploaded %d row(s)\n", n)
	return nil
}

func newPricelistCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "pricelist",
		Short: "Upload items to the eclinichms inventory price list",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpload(cmd, upload.InventoryItems, file, upload.ReaderConfig{HasHeader: true, SkipHeader: true})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Price list file")
	cobra.CheckErr(cmd.MarkFlagRequired("file"))
	return cmd
}

func newInvoicesCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "invoices",
		Short: "Upload invoices to eclinichms",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpload(cmd, upload.Invoices, file, upload.ReaderConfig{HasHeader: true, SkipHeader: true})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "csv file for invoices")
	cobra.CheckErr(cmd.MarkFlagRequired("file"))
	return cmd
}

func newUsersCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "users",
		Short: "Upload user accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpload(cmd, upload.UserAccounts, file, upload.ReaderConfig{HasHeader: true, SkipHeader: true})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "user accounts csv")
	cobra.CheckErr(cmd.MarkFlagRequired("file"))
	return cmd
}

func newDiagnosesCmd() *cobra.Command {
	var (
		file        string
		hasHeader   bool
		incremental bool
	)

	cmd := &cobra.Command{
		Use:   "diagnoses",
		Short: "Load diagnosis categories",
		Long: "Load diagnosis categories from a one-column CSV. By default the whole file " +
			"is handed to psql's \\COPY; --incremental inserts row by row so duplicate " +
			"categories from earlier runs are tolerated.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if incremental {
				rc := upload.ReaderConfig{HasHeader: hasHeader, SkipHeader: hasHeader}
				return runUpload(cmd, upload.DiagnosisCategories, file, rc)
			}

			runner, err := newPsqlRunner()
			if err != nil {
				return err
			}
			return runner.CopyCSV(cmd.Context(), "diagnosis_categories", "category", file, hasHeader)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Diagnosis categories file")
	cmd.Flags().BoolVar(&hasHeader, "header", false, "CSV file contains a header")
	cmd.Flags().BoolVarP(&incremental, "incremental", "i", false, "Incremental upload")
	cobra.CheckErr(cmd.MarkFlagRequired("file"))
	return cmd
}
