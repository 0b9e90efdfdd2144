package words

import (
	"encoding/json"
	"fmt"
	"os"
)

// ModelName identifies the embedding scheme in the export metadata.
const ModelName = "ngram-hash-v1"

// VisualizationData is the embedding-data.json schema the viewer page loads.
type VisualizationData struct {
	Words    []WordEntry `json:"words"`
	Metadata Metadata    `json:"metadata"`
}

type WordEntry struct {
	Word         string        `json:"word"`
	Position     Position      `json:"position"`
	Frequency    int           `json:"frequency"`
	Categories   []string      `json:"categories"`
	Example      string        `json:"example"`
	SimilarWords []SimilarWord `json:"similar_words"`
	Embedding    []float64     `json:"embedding"`
}

type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type Metadata struct {
	TotalWords         int    `json:"total_words"`
	EmbeddingDimension int    `json:"embedding_dimension"`
	Model              string `json:"model"`
	Projection         string `json:"projection"`
}

// SimilarWord serializes as a ["word", score] pair, the shape the viewer
// expects.
type SimilarWord struct {
	Word  string
	Score float64
}

func (s SimilarWord) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]interface{}{s.Word, s.Score})
}

func (s *SimilarWord) UnmarshalJSON(data []byte) error {
	var pair [2]interface{}
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	word, ok := pair[0].(string)
	if !ok {
		return fmt.Errorf("similar word pair: expected string, got %T", pair[0])
	}
	score, ok := pair[1].(float64)
	if !ok {
		return fmt.Errorf("similar word pair: expected number, got %T", pair[1])
	}
	s.Word = word
	s.Score = score
	return nil
}

// BuildVisualization assembles the export model from the pipeline outputs.
// words, vecs, positions and neighbors are parallel slices.
func BuildVisualization(
	ext *Extractor,
	words []string,
	vecs [][]float64,
	positions [][3]float64,
	neighbors [][]Neighbor,
	projection string) *VisualizationData {

	dim := 0
	if len(vecs) > 0 {
		dim = len(vecs[0])
	}

	data := &VisualizationData{
		Words: make([]WordEntry, 0, len(words)),
		Metadata: Metadata{
			TotalWords:         len(words),
			EmbeddingDimension: dim,
			Model:              ModelName,
			Projection:         projection,
		},
	}

	for i, w := range words {
		ctx := ext.Context(w)

		example := ""
		if len(ctx.Examples) > 0 {
			example = ctx.Examples[0]
		}

		similar := make([]SimilarWord, 0, len(neighbors[i]))
		for _, nb := range neighbors[i] {
			similar = append(similar, SimilarWord{Word: nb.Word, Score: nb.Score})
		}

		data.Words = append(data.Words, WordEntry{
			Word: w,
			Position: Position{
				X: positions[i][0],
				Y: positions[i][1],
				Z: positions[i][2],
			},
			Frequency:    ctx.Count,
			Categories:   ext.CategoriesOf(w),
			Example:      example,
			SimilarWords: similar,
			Embedding:    vecs[i],
		})
	}
	return data
}

// WriteFile writes the export as indented JSON.
func (d *VisualizationData) WriteFile(path string) error {
	out, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal visualization data: %w", err)
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
