package game

import (
	"math/rand"
	"testing"
)

func deterministicConfig() Config {
	config := DefaultConfig()
	config.JitterMax = 0
	return config
}

func TestSelectMoveTakesImmediateWin(t *testing.T) {
	settings := DefaultGameSettings()
	state := DefaultGameState(settings)
	// Black four in a row with one open end; (8,7) completes five.
	for x := 4; x <= 7; x++ {
		state.Board.Set(x, 7, CellBlack)
	}
	state.Board.Set(3, 7, CellWhite)
	// Distraction stones elsewhere.
	state.Board.Set(11, 11, CellWhite)
	state.Board.Set(12, 11, CellWhite)

	rng := rand.New(rand.NewSource(1))
	move, ok := SelectMove(state, PlayerBlack, deterministicConfig(), rng)
	if !ok {
		t.Fatalf("no move selected")
	}
	if !move.Equals(Move{X: 8, Y: 7}) {
		t.Fatalf("expected winning move (8,7), got %v", move)
	}
}

func TestSelectMoveBlocksOpenFour(t *testing.T) {
	settings := DefaultGameSettings()
	state := DefaultGameState(settings)
	// White open four on row 7: blocking cells are (3,7) and (8,7).
	for x := 4; x <= 7; x++ {
		state.Board.Set(x, 7, CellWhite)
	}
	// Black has a live three it might be tempted to extend.
	state.Board.Set(10, 10, CellBlack)
	state.Board.Set(10, 11, CellBlack)
	state.Board.Set(10, 12, CellBlack)

	rng := rand.New(rand.NewSource(7))
	move, ok := SelectMove(state, PlayerBlack, deterministicConfig(), rng)
	if !ok {
		t.Fatalf("no move selected")
	}
	if !move.Equals(Move{X: 3, Y: 7}) && !move.Equals(Move{X: 8, Y: 7}) {
		t.Fatalf("expected a blocking move at (3,7) or (8,7), got %v", move)
	}
}

func TestSelectMoveEmptyBoardPlaysCenter(t *testing.T) {
	state := DefaultGameState(DefaultGameSettings())
	rng := rand.New(rand.NewSource(3))
	move, ok := SelectMove(state, PlayerWhite, deterministicConfig(), rng)
	if !ok {
		t.Fatalf("no move selected")
	}
	if !move.Equals(Move{X: 7, Y: 7}) {
		t.Fatalf("expected center opening, got %v", move)
	}
}

func TestSelectMoveFullBoardSignalsNoMove(t *testing.T) {
	settings := DefaultGameSettings()
	settings.BoardSize = 3
	state := DefaultGameState(settings)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			state.Board.Set(x, y, CellBlack)
		}
	}
	if _, ok := SelectMove(state, PlayerWhite, deterministicConfig(), nil); ok {
		t.Fatalf("full board must signal no legal move")
	}
}

func TestSelectMoveDeterministicWithSeededRng(t *testing.T) {
	settings := DefaultGameSettings()
	config := deterministicConfig()
	first := Move{}
	for i := 0; i < 3; i++ {
		state := DefaultGameState(settings)
		state.Board.Set(7, 7, CellBlack)
		state.Board.Set(8, 8, CellWhite)
		rng := rand.New(rand.NewSource(42))
		move, ok := SelectMove(state, PlayerWhite, config, rng)
		if !ok {
			t.Fatalf("no move selected")
		}
		if i == 0 {
			first = move
		} else if !move.Equals(first) {
			t.Fatalf("seeded selection not reproducible: %v vs %v", first, move)
		}
	}
}

func TestSelectMoveDoesNotMutateBoard(t *testing.T) {
	state := DefaultGameState(DefaultGameSettings())
	state.Board.Set(7, 7, CellBlack)
	before := state.Board.Clone()
	rng := rand.New(rand.NewSource(9))
	if _, ok := SelectMove(state, PlayerWhite, DefaultConfig(), rng); !ok {
		t.Fatalf("no move selected")
	}
	if !state.Board.Equals(before) {
		t.Fatalf("selection mutated the committed board")
	}
}

func TestSelectMovePrefersBlockingOverOwnThree(t *testing.T) {
	// Opponent closed four (one open end) must outweigh extending own three.
	settings := DefaultGameSettings()
	state := DefaultGameState(settings)
	state.Board.Set(3, 7, CellBlack)
	for x := 4; x <= 7; x++ {
		state.Board.Set(x, 7, CellWhite)
	}
	state.Board.Set(10, 10, CellBlack)
	state.Board.Set(10, 11, CellBlack)

	rng := rand.New(rand.NewSource(5))
	move, ok := SelectMove(state, PlayerBlack, deterministicConfig(), rng)
	if !ok {
		t.Fatalf("no move selected")
	}
	if !move.Equals(Move{X: 8, Y: 7}) {
		t.Fatalf("expected block at (8,7), got %v", move)
	}
}
