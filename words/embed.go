package words

import (
	"hash/fnv"
	"math"
	"runtime"

	"github.com/gammazero/workerpool"

	"github.com/tsiemens/embedviz/util"
)

// Encoder produces deterministic fixed-dimension word vectors by feature
// hashing character bigrams and trigrams, blended with the categories the
// word appeared under. Words sharing morphology or categories land near each
// other, which is all the 3D viewer needs.
type Encoder struct {
	Dims int
}

// Category features carry less weight than the word's own shape.
const categoryWeight = 0.5

func NewEncoder(dims int) *Encoder {
	util.Assertf(dims >= 3, "Encoder dims must be at least 3, got %d", dims)
	return &Encoder{Dims: dims}
}

// Encode returns the L2-normalized vector for word.
func (e *Encoder) Encode(word string, categories []string) []float64 {
	vec := make([]float64, e.Dims)

	// Boundary markers let prefixes and suffixes hash distinctly.
	marked := "^" + word + "$"
	for n := 2; n <= 3; n++ {
		for i := 0; i+n <= len(marked); i++ {
			addFeature(vec, marked[i:i+n], 1.0)
		}
	}
	for _, cat := range categories {
		addFeature(vec, "cat:"+cat, categoryWeight)
	}

	normalize(vec)
	return vec
}

// EncodeAll encodes every word on a worker pool, preserving input order.
func (e *Encoder) EncodeAll(words []string, categoriesOf func(word string) []string) [][]float64 {
	out := make([][]float64, len(words))
	wp := workerpool.New(runtime.NumCPU())
	for i, w := range words {
		i, w := i, w
		wp.Submit(func() {
			out[i] = e.Encode(w, categoriesOf(w))
		})
	}
	wp.StopWait()
	return out
}

func addFeature(vec []float64, feature string, weight float64) {
	h := fnv.New64a()
	h.Write([]byte(feature))
	sum := h.Sum64()

	sign := 1.0
	if sum&(1<<63) != 0 {
		sign = -1.0
	}
	vec[sum%uint64(len(vec))] += sign * weight
}

func normalize(vec []float64) {
	norm := math.Sqrt(dot(vec, vec))
	if norm == 0 {
		return
	}
	for i := range vec {
		vec[i] /= norm
	}
}

func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
