package duo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPieceSet(t *testing.T) {
	require.Len(t, Pieces, 21)

	total := 0
	for i, p := range Pieces {
		assert.Equal(t, i, p.ID)
		assert.NotEmpty(t, p.Name)
		assert.True(t, p.Shape.Equal(p.Shape.Normalize()), "piece %s is not normalized", p.Name)
		total += p.Size()
	}

	assert.Equal(t, 89, total)
}

func TestOrientationCounts(t *testing.T) {
	wantCounts := map[string]int{
		"I1": 1,
		"I2": 2,
		"I3": 2,
		"V3": 4,
		"I4": 2,
		"O4": 1,
		"T4": 4,
		"S4": 4,
		"L4": 8,
		"F5": 8,
		"I5": 2,
		"L5": 8,
		"N5": 8,
		"P5": 8,
		"T5": 4,
		"U5": 4,
		"V5": 4,
		"W5": 4,
		"X5": 1,
		"Y5": 8,
		"Z5": 4,
	}

	for _, p := range Pieces {
		assert.Len(t, OrientationsOf(p.ID), wantCounts[p.Name], "piece %s", p.Name)
	}
}

func TestOrientationIndexStability(t *testing.T) {
	for _, p := range Pieces {
		first := OrientationsOf(p.ID)
		second := OrientationsOf(p.ID)

		require.Len(t, second, len(first))
		for i := range first {
			assert.True(t, first[i].Equal(second[i]), "piece %s orientation %d drifted", p.Name, i)
		}
	}
}

func TestOrientationsKeepCardinality(t *testing.T) {
	for _, p := range Pieces {
		for i, orientation := range OrientationsOf(p.ID) {
			assert.Len(t, orientation, p.Size(), "piece %s orientation %d", p.Name, i)
		}
	}
}

func TestPieceByIDPanicsOnUnknown(t *testing.T) {
	assert.Panics(t, func() { PieceByID(-1) })
	assert.Panics(t, func() { PieceByID(21) })
	assert.Equal(t, "I1", PieceByID(0).Name)
}
