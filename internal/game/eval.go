package game

// ScorePoint evaluates a hypothetical stone of cell at move. The cell must be
// empty; it is occupied for the duration of the scan and always restored
// before returning, so the board is unchanged to the caller.
//
// Each of the four axes contributes one tier score keyed on the run length
// through the point and the number of open ends.
func ScorePoint(board *Board, move Move, cell Cell, weights HeuristicConfig) float64 {
	board.Set(move.X, move.Y, cell)
	defer board.Remove(move.X, move.Y)

	score := 0.0
	for _, axis := range axes {
		run := scanAxis(*board, move, axis[0], axis[1], cell)
		score += tierScore(run.total(), run.openEnds(), weights)
	}
	return score
}

func tierScore(count, openEnds int, weights HeuristicConfig) float64 {
	switch {
	case count >= 5:
		return weights.Five
	case count == 4:
		if openEnds == 2 {
			return weights.Open4
		}
		if openEnds == 1 {
			return weights.Closed4
		}
	case count == 3:
		if openEnds == 2 {
			return weights.Open3
		}
		if openEnds == 1 {
			return weights.Closed3
		}
	case count == 2:
		if openEnds == 2 {
			return weights.Open2
		}
		if openEnds == 1 {
			return weights.Closed2
		}
	}
	return 0.0
}
