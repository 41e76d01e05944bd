package geo

import (
	"fmt"
	"math"
)

// The world surface is partitioned into a fixed grid of quadrants, indexed
// from the north-west corner: i grows southwards, j grows eastwards.
const (
	TotLatQuadrants  = 180
	TotLongQuadrants = 360

	QuadrantLatSize  = 180.0 / TotLatQuadrants
	QuadrantLongSize = 360.0 / TotLongQuadrants
)

// Quadrant is one cell of the grid, a half-open bounding box owning a
// reference to the raster map tile covering it. The north-west corner is
// part of the cell, the south-east corner belongs to the neighbours.
type Quadrant struct {
	I          int    `json:"i"`
	J          int    `json:"j"`
	NorthWest  Point  `json:"northWest"`
	SouthEast  Point  `json:"southEast"`
	RasterPath string `json:"rasterPath,omitempty"`
}

// PointToIndex maps a point to its grid cell. Points exactly on a grid line
// resolve to the cell toward increasing index, except at the southern and
// eastern extremes of the domain which clamp into the last valid cell.
func PointToIndex(p Point) (int, int) {
	i := int(math.Floor((90.0 - p.Latitude) / QuadrantLatSize))
	j := int(math.Floor((p.Longitude + 180.0) / QuadrantLongSize))

	if i >= TotLatQuadrants {
		i = TotLatQuadrants - 1
	}
	if i < 0 {
		i = 0
	}

	if j >= TotLongQuadrants {
		j = TotLongQuadrants - 1
	}
	if j < 0 {
		j = 0
	}

	return i, j
}

// Bounds returns the bounding box of cell (i, j). The south-east longitude
// wraps at the antimeridian so that it always stays within [-180, 180).
func Bounds(i, j int) (Quadrant, error) {
	if i < 0 || i >= TotLatQuadrants || j < 0 || j >= TotLongQuadrants {
		return Quadrant{}, fmt.Errorf("%w: quadrant index (%d, %d)", ErrInvalidCoordinates, i, j)
	}

	north := 90.0 - float64(i)*QuadrantLatSize
	west := -180.0 + float64(j)*QuadrantLongSize

	east := west + QuadrantLongSize
	if east >= 180.0 {
		east -= 360.0
	}

	return Quadrant{
		I:         i,
		J:         j,
		NorthWest: Point{Latitude: north, Longitude: west},
		SouthEast: Point{Latitude: north - QuadrantLatSize, Longitude: east},
	}, nil
}

// QuadrantAt returns the cell containing p.
func QuadrantAt(p Point) Quadrant {
	i, j := PointToIndex(p)
	q, _ := Bounds(i, j)
	return q
}

// Contains reports whether p resolves to this quadrant's cell. It is defined
// through the index mapping itself, so QuadrantAt(p).Contains(p) holds over
// the whole coordinate domain, grid lines included.
func (q Quadrant) Contains(p Point) bool {
	i, j := PointToIndex(p)
	return i == q.I && j == q.J
}
