package game

import "fmt"

type Rules struct {
	settings GameSettings
}

func NewRules(settings GameSettings) Rules {
	return Rules{settings: settings}
}

func (r Rules) IsLegal(state GameState, move Move) (bool, string) {
	if !move.IsValid(r.settings.BoardSize) {
		return false, "out of bounds"
	}
	if !state.Board.IsEmpty(move.X, move.Y) {
		return false, "occupied"
	}
	return true, ""
}

// IsWin checks the four axes through the last committed move. It must be
// called right after the stone is placed; it is not a full-board scan.
func (r Rules) IsWin(board Board, lastMove Move) bool {
	if !lastMove.IsValid(r.settings.BoardSize) {
		return false
	}
	target := board.At(lastMove.X, lastMove.Y)
	if target == CellEmpty {
		return false
	}
	for _, axis := range axes {
		run := scanAxis(board, lastMove, axis[0], axis[1], target)
		if run.total() >= r.settings.WinLength {
			return true
		}
	}
	return false
}

func (r Rules) IsDraw(board Board) bool {
	return board.CountEmpty() == 0
}

// FindAlignmentLine returns the cells of the winning run through lastMove,
// if any, for UI highlighting.
func (r Rules) FindAlignmentLine(board Board, lastMove Move) ([]Move, bool) {
	if !lastMove.IsValid(r.settings.BoardSize) {
		return nil, false
	}
	target := board.At(lastMove.X, lastMove.Y)
	if target == CellEmpty {
		return nil, false
	}
	for _, axis := range axes {
		dx := axis[0]
		dy := axis[1]
		run := scanAxis(board, lastMove, dx, dy, target)
		if run.total() < r.settings.WinLength {
			continue
		}
		line := make([]Move, 0, run.total())
		x := lastMove.X - run.backward*dx
		y := lastMove.Y - run.backward*dy
		for i := 0; i < run.total(); i++ {
			line = append(line, Move{X: x, Y: y})
			x += dx
			y += dy
		}
		return line, true
	}
	return nil, false
}

func (r Rules) WinLength() int {
	return r.settings.WinLength
}

func (r Rules) BoardSize() int {
	return r.settings.BoardSize
}

func (r Rules) String() string {
	return fmt.Sprintf("Rules{size=%d, win=%d}", r.settings.BoardSize, r.settings.WinLength)
}
