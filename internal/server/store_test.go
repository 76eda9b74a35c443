package server

import (
	"path/filepath"
	"testing"

	"gobang/internal/game"
)

func finishedController(t *testing.T) *GameController {
	t.Helper()
	settings := game.DefaultGameSettings()
	settings.BlackType = game.PlayerHuman
	settings.WhiteType = game.PlayerHuman
	controller := NewGameController(settings)
	controller.StartGame(settings)
	for i := 0; i < 4; i++ {
		if ok, reason := controller.ApplyHumanMove(game.Move{X: 4 + i, Y: 7}); !ok {
			t.Fatalf("black move rejected: %s", reason)
		}
		if ok, reason := controller.ApplyHumanMove(game.Move{X: i, Y: 0}); !ok {
			t.Fatalf("white move rejected: %s", reason)
		}
	}
	if ok, reason := controller.ApplyHumanMove(game.Move{X: 8, Y: 7}); !ok {
		t.Fatalf("winning move rejected: %s", reason)
	}
	return controller
}

func TestStoreSaveAndList(t *testing.T) {
	store, err := OpenGameStore(filepath.Join(t.TempDir(), "games.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	controller := finishedController(t)
	id, err := store.SaveFinished(controller)
	if err != nil {
		t.Fatalf("save finished: %v", err)
	}
	if id == "" {
		t.Fatalf("empty game id")
	}

	records, err := store.RecentGames(10)
	if err != nil {
		t.Fatalf("recent games: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	record := records[0]
	if record.ID != id {
		t.Fatalf("id mismatch: %s vs %s", record.ID, id)
	}
	if record.Winner != 1 || record.Status != "black_won" {
		t.Fatalf("wrong result: winner=%d status=%s", record.Winner, record.Status)
	}
	if record.MoveCount != 9 || len(record.History) != 9 {
		t.Fatalf("wrong move count: %d/%d", record.MoveCount, len(record.History))
	}
}

func TestStoreRejectsUnfinishedGame(t *testing.T) {
	store, err := OpenGameStore(filepath.Join(t.TempDir(), "games.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	settings := game.DefaultGameSettings()
	controller := NewGameController(settings)
	controller.StartGame(settings)
	if _, err := store.SaveFinished(controller); err == nil {
		t.Fatalf("saving a running game must fail")
	}
}
