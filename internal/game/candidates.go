package game

// Candidates returns the empty cells worth considering: every empty cell
// within Chebyshev distance radius of an existing stone. An empty board
// yields only the center cell; a full board yields nothing.
func Candidates(board Board, radius int) []Move {
	size := board.Size()
	if board.CountStones() == 0 {
		center := size / 2
		return []Move{{X: center, Y: center}}
	}
	if radius < 1 {
		radius = 1
	}
	seen := make([]bool, size*size)
	moves := []Move{}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if board.At(x, y) == CellEmpty {
				continue
			}
			for dy := -radius; dy <= radius; dy++ {
				for dx := -radius; dx <= radius; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					if chebDist(dx, dy) > radius {
						continue
					}
					nx := x + dx
					ny := y + dy
					if !board.IsEmpty(nx, ny) {
						continue
					}
					idx := ny*size + nx
					if !seen[idx] {
						seen[idx] = true
						moves = append(moves, Move{X: nx, Y: ny})
					}
				}
			}
		}
	}
	return moves
}
