package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tsiemens/embedviz/store"
	"github.com/tsiemens/embedviz/words"
)

type capturedPrinter struct {
	buf bytes.Buffer
}

func (p *capturedPrinter) Ln(v ...interface{}) {
	fmt.Fprintln(&p.buf, v...)
}

func (p *capturedPrinter) F(format string, v ...interface{}) {
	fmt.Fprintf(&p.buf, format, v...)
}

func writePrompts(t *testing.T, dir string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	prompts := map[string]string{
		"media.md":   "Play some music. Pause the music. Switch to radio audio.",
		"climate.md": "Increase the temperature. Decrease fan speed for cooling.",
	}
	for name, text := range prompts {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(text), 0644))
	}
}

func testOpts(t *testing.T) ExtractOptions {
	dir := t.TempDir()
	return ExtractOptions{
		DBPath:     filepath.Join(dir, "chunks.sqlite"),
		PromptsDir: filepath.Join(dir, "prompts"),
		OutputPath: filepath.Join(dir, "embedding-data.json"),
		MaxWords:   50,
		Dims:       32,
	}
}

func readExport(t *testing.T, path string) *words.VisualizationData {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var data words.VisualizationData
	require.NoError(t, json.Unmarshal(raw, &data))
	return &data
}

func TestRunExtractFromPrompts(t *testing.T) {
	rq := require.New(t)
	opts := testOpts(t)
	writePrompts(t, opts.PromptsDir)

	var out bytes.Buffer
	errPrinter := &capturedPrinter{}
	rq.NoError(RunExtract(context.Background(), opts, &out, errPrinter))

	rq.Contains(out.String(), "prompt files under")
	rq.Contains(out.String(), "Top words")
	rq.Empty(errPrinter.buf.String())

	data := readExport(t, opts.OutputPath)
	rq.NotEmpty(data.Words)
	rq.Equal(32, data.Metadata.EmbeddingDimension)
	rq.Equal(len(data.Words), data.Metadata.TotalWords)

	seen := map[string]words.WordEntry{}
	for _, w := range data.Words {
		seen[w.Word] = w
	}
	rq.Contains(seen, "music")
	rq.Equal(2, seen["music"].Frequency)
	rq.Equal([]string{"media"}, seen["music"].Categories)
	rq.Contains(seen, "temperature")
	rq.Equal([]string{"climate"}, seen["temperature"].Categories)
}

func TestRunExtractPrefersChunkStore(t *testing.T) {
	rq := require.New(t)
	opts := testOpts(t)
	writePrompts(t, opts.PromptsDir)

	var ingestOut bytes.Buffer
	rq.NoError(RunIngest(context.Background(), opts.DBPath, opts.PromptsDir, &ingestOut))
	rq.Contains(ingestOut.String(), "Ingested 2 prompt files")

	st, err := store.Open(opts.DBPath)
	rq.NoError(err)
	n, err := st.Count(context.Background())
	rq.NoError(err)
	rq.Equal(2, n)
	rq.NoError(st.Close())

	var out bytes.Buffer
	rq.NoError(RunExtract(context.Background(), opts, &out, &capturedPrinter{}))
	rq.Contains(out.String(), "chunk store")
	rq.Contains(out.String(), "(2 chunks)")
}

func TestRunExtractNoSources(t *testing.T) {
	rq := require.New(t)
	opts := testOpts(t)

	var out bytes.Buffer
	err := RunExtract(context.Background(), opts, &out, &capturedPrinter{})
	rq.Error(err)
	rq.Contains(err.Error(), "no chunks")
}

func TestRunExtractMaxWords(t *testing.T) {
	rq := require.New(t)
	opts := testOpts(t)
	opts.MaxWords = 3
	writePrompts(t, opts.PromptsDir)

	var out bytes.Buffer
	rq.NoError(RunExtract(context.Background(), opts, &out, &capturedPrinter{}))

	data := readExport(t, opts.OutputPath)
	rq.Len(data.Words, 3)
}

func TestRunIngestNoPrompts(t *testing.T) {
	rq := require.New(t)
	opts := testOpts(t)

	var out bytes.Buffer
	err := RunIngest(context.Background(), opts.DBPath, opts.PromptsDir, &out)
	rq.Error(err)
	rq.Contains(err.Error(), "no .md files")
}
