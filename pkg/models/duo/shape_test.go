package duo

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeIdempotent(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))

	for i := 0; i < 200; i++ {
		s := make(Shape, 0, 5)
		for k, n := 0, 1+rnd.Intn(5); k < n; k++ {
			s = append(s, NewCell(rnd.Intn(40)-20, rnd.Intn(40)-20))
		}

		once := s.Normalize()
		twice := once.Normalize()
		assert.Equal(t, once, twice)
	}
}

func TestNormalizeTouchesOrigin(t *testing.T) {
	s := Shape{{3, 7}, {4, 7}, {4, 8}}.Normalize()

	minR, minC := s[0].R, s[0].C
	for _, c := range s {
		if c.R < minR {
			minR = c.R
		}
		if c.C < minC {
			minC = c.C
		}
	}

	assert.Equal(t, 0, minR)
	assert.Equal(t, 0, minC)
}

func TestRotationClosure(t *testing.T) {
	for _, p := range Pieces {
		base := p.Shape.Normalize()

		cw := base
		for r := 0; r < 4; r++ {
			cw = cw.RotateCW()
		}
		assert.True(t, base.Equal(cw), "piece %s: four clockwise rotations changed the shape", p.Name)

		ccw := base
		for r := 0; r < 4; r++ {
			ccw = ccw.RotateCCW()
		}
		assert.True(t, base.Equal(ccw), "piece %s: four counter-clockwise rotations changed the shape", p.Name)
	}
}

func TestRotationsInvert(t *testing.T) {
	for _, p := range Pieces {
		base := p.Shape.Normalize()
		assert.True(t, base.Equal(base.RotateCW().RotateCCW()), "piece %s", p.Name)
	}
}

func TestReflectionInvolution(t *testing.T) {
	for _, p := range Pieces {
		base := p.Shape.Normalize()
		assert.True(t, base.Equal(base.Reflect().Reflect()), "piece %s: double reflection changed the shape", p.Name)
	}
}

func TestBoundingBox(t *testing.T) {
	rows, cols := Shape{{0, 0}, {0, 1}, {0, 2}, {1, 1}}.BoundingBox()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 3, cols)
}

func TestTranslatePreservesCardinality(t *testing.T) {
	s := Shape{{0, 0}, {0, 1}, {1, 0}}
	moved := s.Translate(3, -2)

	require.Len(t, moved, len(s))
	assert.True(t, moved.Contains(NewCell(3, -2)))
	assert.True(t, moved.Contains(NewCell(3, -1)))
	assert.True(t, moved.Contains(NewCell(4, -2)))
}

func TestShapeEqualIgnoresOrder(t *testing.T) {
	a := Shape{{0, 0}, {0, 1}, {1, 0}}
	b := Shape{{1, 0}, {0, 0}, {0, 1}}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(Shape{{0, 0}, {0, 1}, {1, 1}}))
	assert.False(t, a.Equal(Shape{{0, 0}, {0, 1}}))
}

func TestKeyIsPositional(t *testing.T) {
	s := Shape{{0, 0}, {0, 1}}
	assert.NotEqual(t, s.Key(), s.Translate(1, 0).Key())
	assert.Equal(t, s.Key(), Shape{{0, 1}, {0, 0}}.Key())
}
