package duo

import (
	"sort"
	"strings"
)

// Shape is a set of cells. Normalized shapes touch both zero axes and are
// sorted in reading order, so equal sets compare equal element-wise.
type Shape []Cell

func (s Shape) Normalize() (normalized Shape) {
	if len(s) == 0 {
		return Shape{}
	}

	minR, minC := s[0].R, s[0].C
	for _, c := range s[1:] {
		if c.R < minR {
			minR = c.R
		}
		if c.C < minC {
			minC = c.C
		}
	}

	normalized = s.Translate(-minR, -minC)
	sort.Slice(normalized, func(i, j int) bool {
		if normalized[i].R != normalized[j].R {
			return normalized[i].R < normalized[j].R
		}
		return normalized[i].C < normalized[j].C
	})

	return
}

func (s Shape) Translate(dr, dc int) (translated Shape) {
	translated = make(Shape, 0, len(s))
	for _, c := range s {
		translated = append(translated, c.Translate(dr, dc))
	}
	return
}

// RotateCW maps (r, c) to (c, -r) and normalizes.
func (s Shape) RotateCW() (rotated Shape) {
	rotated = make(Shape, 0, len(s))
	for _, c := range s {
		rotated = append(rotated, NewCell(c.C, -c.R))
	}
	return rotated.Normalize()
}

// RotateCCW maps (r, c) to (-c, r) and normalizes.
func (s Shape) RotateCCW() (rotated Shape) {
	rotated = make(Shape, 0, len(s))
	for _, c := range s {
		rotated = append(rotated, NewCell(-c.C, c.R))
	}
	return rotated.Normalize()
}

// Reflect mirrors horizontally, mapping (r, c) to (r, -c), and normalizes.
func (s Shape) Reflect() (reflected Shape) {
	reflected = make(Shape, 0, len(s))
	for _, c := range s {
		reflected = append(reflected, NewCell(c.R, -c.C))
	}
	return reflected.Normalize()
}

func (s Shape) BoundingBox() (rows, cols int) {
	for _, c := range s {
		if c.R >= rows {
			rows = c.R + 1
		}
		if c.C >= cols {
			cols = c.C + 1
		}
	}
	return
}

func (s Shape) Contains(cell Cell) bool {
	for _, c := range s {
		if c == cell {
			return true
		}
	}
	return false
}

// Equal compares as sets, ignoring order and translation state of neither side.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for _, c := range other {
		if !s.Contains(c) {
			return false
		}
	}
	return true
}

// Key is a canonical string for the cell set, usable for deduplication.
// It is positional: translated copies of the same shape get distinct keys.
func (s Shape) Key() string {
	sorted := make(Shape, len(s))
	copy(sorted, s)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].R != sorted[j].R {
			return sorted[i].R < sorted[j].R
		}
		return sorted[i].C < sorted[j].C
	})

	var builder strings.Builder
	for i, c := range sorted {
		if i > 0 {
			builder.WriteByte(',')
		}
		builder.WriteString(c.String())
	}
	return builder.String()
}

// Orientations enumerates the distinct normalized shapes reachable by
// rotation and reflection: the four rotations first, then the four rotations
// of the mirror image, deduplicated in that order. The order is fixed;
// orientation indices persist across processes.
func (s Shape) Orientations() (orientations []Shape) {
	seen := make(map[string]struct{})

	add := func(candidate Shape) {
		key := candidate.Key()
		if _, c := seen[key]; c {
			return
		}
		seen[key] = struct{}{}
		orientations = append(orientations, candidate)
	}

	current := s.Normalize()
	for i := 0; i < 4; i++ {
		add(current)
		current = current.RotateCW()
	}

	current = s.Reflect()
	for i := 0; i < 4; i++ {
		add(current)
		current = current.RotateCW()
	}

	return
}
