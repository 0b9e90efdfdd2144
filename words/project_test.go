package words

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProjectTo3DSmallInputFallsBack(t *testing.T) {
	rq := require.New(t)

	vecs := [][]float64{
		{0.1, 0.2, 0.3, 0.4},
		{0.5, 0.6, 0.7, 0.8},
	}
	positions, method := ProjectTo3D(vecs)

	rq.Equal(ProjectionDirect, method)
	rq.Len(positions, 2)
	rq.InDelta(0.1*positionScale, positions[0][0], 1e-9)
	rq.InDelta(0.7*positionScale, positions[1][2], 1e-9)

	positions, method = ProjectTo3D(nil)
	rq.Nil(positions)
	rq.Equal(ProjectionDirect, method)
}

func TestProjectTo3DPCA(t *testing.T) {
	rq := require.New(t)

	enc := NewEncoder(16)
	ws := []string{
		"play", "pause", "music", "radio", "audio",
		"route", "map", "traffic", "gps", "navigation",
	}
	vecs := make([][]float64, len(ws))
	for i, w := range ws {
		vecs[i] = enc.Encode(w, nil)
	}

	positions, method := ProjectTo3D(vecs)
	rq.Equal(ProjectionPCA, method)
	rq.Len(positions, len(ws))

	// Scores of mean-centered data are themselves centered, and finite.
	var mean [3]float64
	for _, p := range positions {
		for c := 0; c < 3; c++ {
			rq.False(math.IsNaN(p[c]))
			rq.False(math.IsInf(p[c], 0))
			mean[c] += p[c]
		}
	}
	for c := 0; c < 3; c++ {
		rq.InDelta(0.0, mean[c]/float64(len(ws)), 1e-8)
	}

	// Not all points collapse to the origin.
	var spread float64
	for _, p := range positions {
		spread += p[0]*p[0] + p[1]*p[1] + p[2]*p[2]
	}
	rq.Greater(spread, 0.0)
}
