package export

import (
	"fmt"

	"github.com/spf13/cobra"

	"lucidscript/cmd/lucidscript/cmd/cmdutil"
	"lucidscript/internal/app"
	"lucidscript/internal/app/converter/export"
)

var (
	outputFilePath string
	limit          int
)

func init() {
	Cmd.Flags().StringVarP(&outputFilePath, "output", "o", "history.xlsx", "xlsx file to write")
	Cmd.Flags().IntVarP(&limit, "limit", "n", 1000, "maximum records, newest first")
}

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export document history to Excel",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := cmdutil.LoadSettings()
		if err != nil {
			return err
		}
		db, closeDB, err := app.ProvideExportDAO(cmd.Context(), settings)
		if err != nil {
			return err
		}
		defer closeDB()

		records, err := db.List(cmd.Context(), limit)
		if err != nil {
			return err
		}
		if err := export.ToExcel(records, outputFilePath); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "export finished, %d records written to %s\n", len(records), outputFilePath)
		return nil
	},
}
