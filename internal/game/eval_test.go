package game

import "testing"

func TestScorePointLeavesBoardUnchanged(t *testing.T) {
	board := NewBoard(15)
	board.Set(7, 7, CellBlack)
	board.Set(8, 7, CellWhite)
	before := board.Clone()
	weights := DefaultConfig().Heuristics
	for _, move := range []Move{{X: 6, Y: 7}, {X: 0, Y: 0}, {X: 9, Y: 7}} {
		ScorePoint(&board, move, CellBlack, weights)
		ScorePoint(&board, move, CellWhite, weights)
	}
	if !board.Equals(before) {
		t.Fatalf("board mutated by scoring probe")
	}
}

func TestScorePointLiveFour(t *testing.T) {
	// Black at (7,7)..(7,10) horizontally, open at both (6,7) and (11,7):
	// completing at (11,7) makes five, probing next to it sees the run.
	board := NewBoard(15)
	for x := 7; x <= 10; x++ {
		board.Set(x, 7, CellBlack)
	}
	weights := DefaultConfig().Heuristics
	score := ScorePoint(&board, Move{X: 11, Y: 7}, CellBlack, weights)
	if score < weights.Five {
		t.Fatalf("completing a live four must hit the five tier, got %f", score)
	}
}

func TestScorePointOpenEndTiers(t *testing.T) {
	weights := DefaultConfig().Heuristics
	// Open three: probe extends .BB. to .BBB. with both ends open.
	board := NewBoard(15)
	board.Set(7, 7, CellBlack)
	board.Set(8, 7, CellBlack)
	open := ScorePoint(&board, Move{X: 9, Y: 7}, CellBlack, weights)
	if open < weights.Open3 {
		t.Fatalf("open three undervalued: %f", open)
	}

	// Same run, but one end blocked by white.
	board.Set(6, 7, CellWhite)
	closed := ScorePoint(&board, Move{X: 9, Y: 7}, CellBlack, weights)
	if closed >= open {
		t.Fatalf("blocked run must score below open run (%f >= %f)", closed, open)
	}
}

func TestScorePointDeadRunScoresZero(t *testing.T) {
	// White on both sides: OBBBO has no open end, so the axis contributes 0.
	board := NewBoard(15)
	board.Set(5, 5, CellWhite)
	board.Set(6, 5, CellBlack)
	board.Set(7, 5, CellBlack)
	board.Set(9, 5, CellWhite)
	weights := DefaultConfig().Heuristics
	score := ScorePoint(&board, Move{X: 8, Y: 5}, CellBlack, weights)
	// Other axes contribute open-two scores at most for the lone probe.
	if score >= weights.Open3 {
		t.Fatalf("dead three scored as a threat: %f", score)
	}
}

func TestScorePointEdgeRun(t *testing.T) {
	// Run against the board edge has only one possible open end.
	board := NewBoard(15)
	board.Set(0, 0, CellBlack)
	board.Set(1, 0, CellBlack)
	board.Set(2, 0, CellBlack)
	weights := DefaultConfig().Heuristics
	score := ScorePoint(&board, Move{X: 3, Y: 0}, CellBlack, weights)
	if score < weights.Closed4 {
		t.Fatalf("edge four with one open end must reach the closed-four tier, got %f", score)
	}
	if score >= weights.Open4 {
		t.Fatalf("edge four cannot be a live four, got %f", score)
	}
}

func TestTierTable(t *testing.T) {
	w := DefaultConfig().Heuristics
	cases := []struct {
		count, openEnds int
		want            float64
	}{
		{5, 0, w.Five},
		{6, 2, w.Five},
		{4, 2, w.Open4},
		{4, 1, w.Closed4},
		{4, 0, 0},
		{3, 2, w.Open3},
		{3, 1, w.Closed3},
		{3, 0, 0},
		{2, 2, w.Open2},
		{2, 1, w.Closed2},
		{2, 0, 0},
		{1, 2, 0},
	}
	for _, tc := range cases {
		if got := tierScore(tc.count, tc.openEnds, w); got != tc.want {
			t.Fatalf("tierScore(%d,%d) = %f, want %f", tc.count, tc.openEnds, got, tc.want)
		}
	}
}
