package words

import (
	"gonum.org/v1/gonum/mat"

	"github.com/tsiemens/embedviz/util"
)

// Projection method names, recorded in the export metadata.
const (
	ProjectionPCA    = "pca"
	ProjectionDirect = "direct"
)

// Positions are scaled up so the point cloud fills the viewer's scene.
const positionScale = 20.0

// ProjectTo3D reduces the word vectors to 3D scene positions via PCA on the
// mean-centered matrix. Inputs too small to decompose fall back to the
// leading three dimensions, like the original non-t-SNE path.
func ProjectTo3D(vecs [][]float64) ([][3]float64, string) {
	n := len(vecs)
	if n == 0 {
		return nil, ProjectionDirect
	}
	dims := len(vecs[0])

	if n < 4 || dims < 3 {
		return projectDirect(vecs), ProjectionDirect
	}

	data := mat.NewDense(n, dims, nil)
	means := make([]float64, dims)
	for _, vec := range vecs {
		util.Assertf(len(vec) == dims, "ragged vector: %d != %d", len(vec), dims)
		for c, v := range vec {
			means[c] += v
		}
	}
	for c := range means {
		means[c] /= float64(n)
	}
	for r, vec := range vecs {
		for c, v := range vec {
			data.Set(r, c, v-means[c])
		}
	}

	var svd mat.SVD
	if ok := svd.Factorize(data, mat.SVDThin); !ok {
		return projectDirect(vecs), ProjectionDirect
	}

	var u mat.Dense
	svd.UTo(&u)
	sigma := svd.Values(nil)

	// Principal component scores are the left singular vectors scaled by
	// their singular values.
	out := make([][3]float64, n)
	for r := 0; r < n; r++ {
		for c := 0; c < 3; c++ {
			out[r][c] = u.At(r, c) * sigma[c] * positionScale
		}
	}
	return out, ProjectionPCA
}

func projectDirect(vecs [][]float64) [][3]float64 {
	out := make([][3]float64, len(vecs))
	for r, vec := range vecs {
		for c := 0; c < 3 && c < len(vec); c++ {
			out[r][c] = vec[c] * positionScale
		}
	}
	return out
}
