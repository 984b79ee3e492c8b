package cli

import (
	"fmt"

	"github.com/isdelr/vocab-trainer/internal/importer"
	"github.com/isdelr/vocab-trainer/internal/services"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	importSheet    string
	importNoHeader bool
)

var importWordsCmd = &cobra.Command{
	Use:   "import-words <file.xlsx|file.csv>",
	Short: "Import words into the catalog",
	Long: `Reads rows of word, translation, level and topic from an Excel or CSV file and adds them to the word catalog.

Rows with a missing field are skipped and reported. Each row is saved as it is read, so if the
database fails part-way the rows before the failing one stay imported; fix the cause and re-run
with the remaining rows.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := setup()
		if err != nil {
			return err
		}
		defer db.Close()

		cfg := importer.DefaultImportConfig()
		cfg.FilePath = args[0]
		cfg.SheetName = importSheet
		cfg.SkipHeader = !importNoHeader

		result, err := importer.ImportWords(cmd.Context(), services.NewWordService(db), cfg)
		if err != nil {
			return err
		}

		for _, msg := range result.Errors {
			log.Warn().Str("file", cfg.FilePath).Msg(msg)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Processed %d rows: %d created, %d skipped\n",
			result.TotalProcessed, result.Created, result.Skipped)
		return nil
	},
}

func init() {
	importWordsCmd.Flags().StringVar(&importSheet, "sheet", "", "Excel sheet to read (default: first sheet)")
	importWordsCmd.Flags().BoolVar(&importNoHeader, "no-header", false, "treat the first row as data")
}
