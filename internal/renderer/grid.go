package renderer

import "math"

// GridSide returns the edge length of the smallest square canvas that
// holds n cells: the integer ceiling of the square root of n. Zero
// values need no canvas at all.
func GridSide(n int) int {
	if n <= 0 {
		return 0
	}
	side := int(math.Sqrt(float64(n)))
	for side*side < n {
		side++
	}
	return side
}

// CellAt returns the canvas coordinates of the i'th value, filling the
// square row by row from the top left.
func CellAt(i, side int) (x, y int) {
	return i % side, i / side
}
