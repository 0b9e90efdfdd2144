package util

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	rq := require.New(t)

	s := NewSet("a", "b")
	rq.True(s.Has("a"))
	rq.False(s.Has("c"))
	s.Add("c")
	s.Add("c")
	rq.Equal(3, s.Len())

	vals := s.Values()
	sort.Strings(vals)
	rq.Equal([]string{"a", "b", "c"}, vals)
}

func TestDefaultMap(t *testing.T) {
	rq := require.New(t)

	m := NewDefaultMap(func(string) *int { v := 0; return &v })

	_, ok := m.Peek("x")
	rq.False(ok)

	*m.Get("x")++
	*m.Get("x")++
	v, ok := m.Peek("x")
	rq.True(ok)
	rq.Equal(2, *v)
	rq.Equal(1, m.Len())
}

func TestMinInt(t *testing.T) {
	rq := require.New(t)
	rq.Equal(3, MinInt(3))
	rq.Equal(1, MinInt(3, 1, 2))
	rq.Equal(-1, MinInt(0, -1))
}

func TestAssertfPanicsWhenConfigured(t *testing.T) {
	rq := require.New(t)

	AssertsPanic = true
	defer func() { AssertsPanic = false }()

	rq.PanicsWithValue("boom 1", func() { Assertf(false, "boom %d", 1) })
	rq.NotPanics(func() { Assertf(true, "unreached") })
}

func TestTern(t *testing.T) {
	rq := require.New(t)
	rq.Equal("file", Tern(true, "file", "files"))
	rq.Equal("files", Tern(false, "file", "files"))
}
