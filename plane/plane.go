package plane

// Point is a location in the 2-D voltage plane.
type Point struct {
	X float64
	Y float64
}

// Polygon is a closed region described by its vertices in order; the
// last vertex connects back to the first. Orientation does not matter.
type Polygon []Point

// Contains reports whether (x, y) lies inside the polygon, using
// even-odd ray casting. The boundary is half-open: a point exactly on a
// lower or left edge counts as outside, on an upper or right edge as
// inside, so adjacent polygons tile the plane without double-counting.
// Polygons with fewer than three vertices contain nothing.
// Complexity: O(len(p)).
func (p Polygon) Contains(x, y float64) bool {
	if len(p) < 3 {
		return false
	}

	inside := false
	for i := range p {
		p1, p2 := p[i], p[(i+1)%len(p)]

		// Horizontal edges never pass this window, so the crossing
		// below cannot divide by zero.
		lo, hi := p1.Y, p2.Y
		if lo > hi {
			lo, hi = hi, lo
		}
		if y <= lo || y > hi {
			continue
		}
		if x > p1.X && x > p2.X {
			continue
		}

		xint := (y-p1.Y)*(p2.X-p1.X)/(p2.Y-p1.Y) + p1.X
		if p1.X == p2.X || x <= xint {
			inside = !inside
		}
	}

	return inside
}

// ContainsAll evaluates Contains for every point, aligned by index.
func (p Polygon) ContainsAll(pts []Point) []bool {
	out := make([]bool, len(pts))
	for i, pt := range pts {
		out[i] = p.Contains(pt.X, pt.Y)
	}

	return out
}

// FillMask rasterizes the polygon onto an nx×ny integer lattice:
// mask[y][x] reports whether lattice point (x, y) is inside p. The mask
// is row-major, ny rows of nx cells. Non-positive dimensions yield nil.
// Complexity: O(nx · ny · len(p)).
func FillMask(nx, ny int, p Polygon) [][]bool {
	if nx < 1 || ny < 1 {
		return nil
	}

	mask := make([][]bool, ny)
	for y := range mask {
		row := make([]bool, nx)
		for x := range row {
			row[x] = p.Contains(float64(x), float64(y))
		}
		mask[y] = row
	}

	return mask
}
