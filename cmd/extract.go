package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tsiemens/embedviz/app"
	"github.com/tsiemens/embedviz/config"
	"github.com/tsiemens/embedviz/log"
)

var (
	ExtractDBOpt       string
	ExtractPromptsOpt  string
	ExtractOutOpt      string
	ExtractMaxWordsOpt int
	ExtractDimsOpt     int
)

func runExtractCmd(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(ConfigFileOpt)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("db") {
		cfg.Extract.Database = ExtractDBOpt
	}
	if cmd.Flags().Changed("prompts") {
		cfg.Extract.Prompts = ExtractPromptsOpt
	}
	if cmd.Flags().Changed("out") {
		cfg.Extract.Output = ExtractOutOpt
	}
	if cmd.Flags().Changed("max-words") {
		cfg.Extract.MaxWords = ExtractMaxWordsOpt
	}
	if cmd.Flags().Changed("dims") {
		cfg.Extract.Dimensions = ExtractDimsOpt
	}

	opts := app.ExtractOptions{
		DBPath:     cfg.Extract.Database,
		PromptsDir: cfg.Extract.Prompts,
		OutputPath: cfg.Extract.Output,
		MaxWords:   cfg.Extract.MaxWords,
		Dims:       cfg.Extract.Dimensions,
	}
	return app.RunExtract(cmd.Context(), opts, os.Stdout, &log.StderrErrorPrinter{})
}

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Generate embedding-data.json for the viewer",
	Long: `Extracts word-level embeddings for the 3D visualization.

Documents are read from the chunk store if it has content, otherwise from
markdown prompt files. The most frequent words are embedded, projected to 3D
and written with their nearest neighbors to the viewer's data file.`,
	RunE: runExtractCmd,
	Args: cobra.NoArgs,
}

func init() {
	RootCmd.AddCommand(extractCmd)

	defaults := config.Default().Extract
	extractCmd.Flags().StringVar(&ExtractDBOpt, "db", defaults.Database,
		"Path to the sqlite chunk store")
	extractCmd.Flags().StringVar(&ExtractPromptsOpt, "prompts", defaults.Prompts,
		"Directory of .md prompt files, used when the chunk store is empty")
	extractCmd.Flags().StringVarP(&ExtractOutOpt, "out", "o", defaults.Output,
		"Output data file path")
	extractCmd.Flags().IntVar(&ExtractMaxWordsOpt, "max-words", defaults.MaxWords,
		"Maximum number of words to embed")
	extractCmd.Flags().IntVar(&ExtractDimsOpt, "dims", defaults.Dimensions,
		"Embedding vector dimension")
}
