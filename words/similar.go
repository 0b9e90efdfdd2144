package words

import (
	"sort"

	"github.com/tsiemens/embedviz/util"
)

// Neighbor is another word and its cosine similarity to the query word.
type Neighbor struct {
	Word  string
	Score float64
}

// TopNeighbors returns, for each word, its k most similar other words by
// cosine similarity. Vectors are assumed normalized, so a dot product
// suffices. Ties break alphabetically for stable output.
func TopNeighbors(words []string, vecs [][]float64, k int) [][]Neighbor {
	n := len(words)
	out := make([][]Neighbor, n)
	for i := 0; i < n; i++ {
		neighbors := make([]Neighbor, 0, n-1)
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			neighbors = append(neighbors, Neighbor{
				Word:  words[j],
				Score: dot(vecs[i], vecs[j]),
			})
		}
		sort.Slice(neighbors, func(a, b int) bool {
			if neighbors[a].Score != neighbors[b].Score {
				return neighbors[a].Score > neighbors[b].Score
			}
			return neighbors[a].Word < neighbors[b].Word
		})
		out[i] = neighbors[:util.MinInt(k, len(neighbors))]
	}
	return out
}
