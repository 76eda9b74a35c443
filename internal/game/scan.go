package game

// The four line axes. Each axis is scanned once forward and once backward
// from the origin, never as two independent directions, so a run is counted
// exactly once.
var axes = [4][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}

type axisRun struct {
	forward      int
	backward     int
	forwardOpen  bool
	backwardOpen bool
}

func (r axisRun) total() int {
	return r.forward + r.backward + 1
}

func (r axisRun) openEnds() int {
	ends := 0
	if r.forwardOpen {
		ends++
	}
	if r.backwardOpen {
		ends++
	}
	return ends
}

// scanAxis walks from (origin) along (dx,dy) and (-dx,-dy), counting
// contiguous target cells on each side. The origin itself is not counted.
// An end is open when the first cell past the run is in range and empty.
func scanAxis(board Board, origin Move, dx, dy int, target Cell) axisRun {
	run := axisRun{}
	x := origin.X + dx
	y := origin.Y + dy
	for board.InBounds(x, y) && board.At(x, y) == target {
		run.forward++
		x += dx
		y += dy
	}
	run.forwardOpen = board.InBounds(x, y) && board.At(x, y) == CellEmpty

	x = origin.X - dx
	y = origin.Y - dy
	for board.InBounds(x, y) && board.At(x, y) == target {
		run.backward++
		x -= dx
		y -= dy
	}
	run.backwardOpen = board.InBounds(x, y) && board.At(x, y) == CellEmpty
	return run
}

func chebDist(dx, dy int) int {
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dy > dx {
		return dy
	}
	return dx
}

func manhattanDist(dx, dy int) int {
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}
