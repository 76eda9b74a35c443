package game

import "testing"

func TestHashIncrementalMatchesRecompute(t *testing.T) {
	g := NewGame(humanVsHumanSettings())
	g.Start()
	moves := []Move{{X: 7, Y: 7}, {X: 8, Y: 8}, {X: 6, Y: 7}, {X: 9, Y: 9}}
	for _, move := range moves {
		if ok, _ := g.TryApplyMove(move); !ok {
			t.Fatalf("move %v rejected", move)
		}
		state := g.State()
		if state.Hash != ComputeHash(state) {
			t.Fatalf("incremental hash diverged after %v", move)
		}
	}
}

func TestHashDistinguishesSideToMove(t *testing.T) {
	settings := humanVsHumanSettings()
	a := DefaultGameState(settings)
	b := DefaultGameState(settings)
	b.ToMove = PlayerWhite
	if ComputeHash(a) == ComputeHash(b) {
		t.Fatalf("hash must depend on side to move")
	}
}

func TestHashRestoredByUndo(t *testing.T) {
	g := NewGame(humanVsHumanSettings())
	g.Start()
	initial := g.State().Hash
	g.TryApplyMove(Move{X: 7, Y: 7})
	g.TryApplyMove(Move{X: 8, Y: 7})
	g.UndoLast()
	g.UndoLast()
	if g.State().Hash != initial {
		t.Fatalf("hash not restored by undo")
	}
}

func TestHashSamePositionSameHash(t *testing.T) {
	settings := humanVsHumanSettings()
	a := DefaultGameState(settings)
	a.Board.Set(3, 4, CellBlack)
	a.Board.Set(5, 6, CellWhite)
	b := DefaultGameState(settings)
	b.Board.Set(5, 6, CellWhite)
	b.Board.Set(3, 4, CellBlack)
	if ComputeHash(a) != ComputeHash(b) {
		t.Fatalf("identical positions must hash equal")
	}
}
