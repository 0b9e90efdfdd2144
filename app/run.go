package app

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/tsiemens/embedviz/log"
	"github.com/tsiemens/embedviz/store"
	"github.com/tsiemens/embedviz/util"
	"github.com/tsiemens/embedviz/words"
)

// ExtractOptions configures one run of the extraction pipeline.
type ExtractOptions struct {
	DBPath     string
	PromptsDir string
	OutputPath string
	MaxWords   int
	Dims       int

	// Neighbors per word in the export.
	TopSimilar int
	// Rows in the printed summary table.
	SummaryRows int
}

func (o *ExtractOptions) applyDefaults() {
	if o.TopSimilar == 0 {
		o.TopSimilar = 5
	}
	if o.SummaryRows == 0 {
		o.SummaryRows = 15
	}
}

// RunExtract builds embedding-data.json from the chunk store if it has
// content, falling back to prompt markdown files. Progress goes to w, and
// recoverable source problems to errPrinter.
func RunExtract(
	ctx context.Context,
	opts ExtractOptions,
	w io.Writer,
	errPrinter log.ErrorPrinter) error {

	opts.applyDefaults()

	docs, sourceDesc, err := loadDocuments(ctx, opts, errPrinter)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Extracting words from %s\n", sourceDesc)

	ext := words.NewExtractor()
	for _, doc := range docs {
		ext.AddDocument(doc)
	}
	if ext.WordCount() == 0 {
		return fmt.Errorf("no words extracted from %s", sourceDesc)
	}
	fmt.Fprintf(w, "Extracted %d unique words\n", ext.WordCount())

	top := ext.TopWords(opts.MaxWords)

	log.Fverbosef(w, "Encoding %d words at %d dimensions...\n", len(top), opts.Dims)
	enc := words.NewEncoder(opts.Dims)
	vecs := enc.EncodeAll(top, ext.CategoriesOf)

	positions, projection := words.ProjectTo3D(vecs)
	log.Fverbosef(w, "Projected to 3D via %s\n", projection)

	neighbors := words.TopNeighbors(top, vecs, opts.TopSimilar)

	data := words.BuildVisualization(ext, top, vecs, positions, neighbors, projection)
	if err := data.WriteFile(opts.OutputPath); err != nil {
		return err
	}
	fmt.Fprintf(w, "Exported %d words to %s\n\n", len(top), opts.OutputPath)

	words.PrintRenderTable("Top words", words.SummaryTableModel(ext, top, opts.SummaryRows), w)
	return nil
}

// RunIngest loads prompt markdown files into the chunk store, one chunk per
// file, category taken from the file stem.
func RunIngest(ctx context.Context, dbPath, promptsDir string, w io.Writer) error {
	docs, err := readPromptFiles(promptsDir)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		return fmt.Errorf("no .md files found under %s", promptsDir)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	for _, doc := range docs {
		if _, err := st.Add(ctx, doc.Category, doc.Text); err != nil {
			return err
		}
		log.Fverbosef(w, "Ingested category %s\n", doc.Category)
	}

	fmt.Fprintf(w, "Ingested %d prompt %s into %s\n",
		len(docs), util.Tern(len(docs) == 1, "file", "files"), dbPath)
	return nil
}

func loadDocuments(
	ctx context.Context,
	opts ExtractOptions,
	errPrinter log.ErrorPrinter) ([]words.Document, string, error) {

	if docs, desc, ok := loadChunks(ctx, opts.DBPath, errPrinter); ok {
		return docs, desc, nil
	}

	docs, err := readPromptFiles(opts.PromptsDir)
	if err != nil {
		return nil, "", err
	}
	if len(docs) == 0 {
		return nil, "", fmt.Errorf(
			"no chunks in %s and no .md files under %s", opts.DBPath, opts.PromptsDir)
	}
	return docs, fmt.Sprintf("prompt files under %s", opts.PromptsDir), nil
}

// loadChunks tries the chunk store. A missing or empty store is not an
// error, just a reason to fall back to prompt files.
func loadChunks(
	ctx context.Context,
	dbPath string,
	errPrinter log.ErrorPrinter) ([]words.Document, string, bool) {

	if _, err := os.Stat(dbPath); err != nil {
		return nil, "", false
	}

	st, err := store.Open(dbPath)
	if err != nil {
		errPrinter.F("Warning: could not open chunk store %s: %v\n", dbPath, err)
		return nil, "", false
	}
	defer st.Close()

	chunks, err := st.All(ctx)
	if err != nil {
		errPrinter.F("Warning: could not read chunk store %s: %v\n", dbPath, err)
		return nil, "", false
	}
	if len(chunks) == 0 {
		return nil, "", false
	}

	docs := make([]words.Document, 0, len(chunks))
	for _, c := range chunks {
		docs = append(docs, words.Document{Category: c.Category, Text: c.Document})
	}
	return docs, fmt.Sprintf("chunk store %s (%d chunks)", dbPath, len(chunks)), true
}

func readPromptFiles(dir string) ([]words.Document, error) {
	var docs []words.Document
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}
		text, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		docs = append(docs, words.Document{
			Category: strings.TrimSuffix(d.Name(), ".md"),
			Text:     string(text),
		})
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return docs, nil
}
