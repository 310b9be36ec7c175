package core

// The board is drawn with a one-cell border and separators between cells:
//
//	 ___ ___ ___
//	|   |   |   |
//	|___|___|___|
//	|   |   |   |
//	|___|___|___|
//
// A grid cell covers a 3x2 block of surface cells. Horizontally each cell
// advances 4 columns (3 wide plus the separator), vertically 2 rows (the
// second row carries the underline of the next border).
const (
	CellSurfaceW = 3
	CellSurfaceH = 2

	cellPitchX = CellSurfaceW + 1
	cellPitchY = CellSurfaceH
)

// GridToSurface returns the block of surface cells covered by grid cell
// (x, y) when the board's top-left corner sits at (left, top).
func GridToSurface(x, y, left, top int) Rect {
	return Rect{
		X: left + 1 + cellPitchX*x,
		Y: top + 1 + cellPitchY*y,
		W: CellSurfaceW,
		H: CellSurfaceH,
	}
}

// SurfaceToGrid maps a surface point back to grid indices. Callers must not
// pass points left of or above the board's inner corner; the division
// truncates toward zero.
func SurfaceToGrid(px, py, left, top int) (int, int) {
	return (px - left - 1) / cellPitchX, (py - top - 1) / cellPitchY
}

// SurfaceToGridCell is the bounds-checked form of SurfaceToGrid used by
// hosts: points outside a width x height board report ok == false.
func SurfaceToGridCell(px, py, left, top, width, height int) (x, y int, ok bool) {
	inner := NewRect(left+1, top+1, cellPitchX*width, cellPitchY*height)
	if !inner.Contains(px, py) {
		return 0, 0, false
	}
	x, y = SurfaceToGrid(px, py, left, top)
	return x, y, true
}

// BoardSize returns the surface footprint of a width x height board,
// borders included.
func BoardSize(width, height int) (w, h int) {
	return 1 + cellPitchX*width, 1 + cellPitchY*height
}
