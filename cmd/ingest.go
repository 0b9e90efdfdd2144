package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tsiemens/embedviz/app"
	"github.com/tsiemens/embedviz/config"
)

var (
	IngestDBOpt      string
	IngestPromptsOpt string
)

func runIngestCmd(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(ConfigFileOpt)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("db") {
		cfg.Extract.Database = IngestDBOpt
	}
	if cmd.Flags().Changed("prompts") {
		cfg.Extract.Prompts = IngestPromptsOpt
	}

	return app.RunIngest(cmd.Context(), cfg.Extract.Database, cfg.Extract.Prompts, os.Stdout)
}

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Load prompt files into the chunk store",
	Long: `Loads markdown prompt files into the sqlite chunk store, one chunk per
file, with the file stem as the chunk's category. 'extract' prefers the chunk
store over re-reading prompt files when it has content.`,
	RunE: runIngestCmd,
	Args: cobra.NoArgs,
}

func init() {
	RootCmd.AddCommand(ingestCmd)

	defaults := config.Default().Extract
	ingestCmd.Flags().StringVar(&IngestDBOpt, "db", defaults.Database,
		"Path to the sqlite chunk store")
	ingestCmd.Flags().StringVar(&IngestPromptsOpt, "prompts", defaults.Prompts,
		"Directory of .md prompt files to ingest")
}
