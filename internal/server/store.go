package server

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"gobang/internal/game"
)

// GameStore archives finished games so past results survive restarts.
type GameStore struct {
	db *sql.DB
}

type GameRecord struct {
	ID         string            `json:"id"`
	Mode       string            `json:"mode"`
	Winner     int               `json:"winner"`
	Status     string            `json:"status"`
	MoveCount  int               `json:"move_count"`
	BoardHash  string            `json:"board_hash"`
	History    []historyEntryDTO `json:"history"`
	FinishedAt time.Time         `json:"finished_at"`
}

func OpenGameStore(path string) (*GameStore, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS games (
			id TEXT PRIMARY KEY,
			mode TEXT NOT NULL,
			winner INTEGER NOT NULL,
			status TEXT NOT NULL,
			move_count INTEGER NOT NULL,
			board_hash TEXT NOT NULL,
			history TEXT NOT NULL,
			finished_at TIMESTAMP NOT NULL);`)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &GameStore{db: db}, nil
}

func (s *GameStore) Close() error {
	return s.db.Close()
}

// SaveFinished archives a completed game and returns its id.
func (s *GameStore) SaveFinished(controller *GameController) (string, error) {
	state := controller.State()
	if state.Status != game.StatusBlackWon && state.Status != game.StatusWhiteWon && state.Status != game.StatusDraw {
		return "", fmt.Errorf("game not finished")
	}
	history := historyToDTO(controller.History())
	historyJSON, err := json.Marshal(history)
	if err != nil {
		return "", err
	}
	record := GameRecord{
		ID:         uuid.NewString(),
		Mode:       SettingsToDTO(controller.Settings()).Mode,
		Winner:     winnerFromStatus(state.Status),
		Status:     statusToString(state.Status),
		MoveCount:  len(history),
		BoardHash:  fmt.Sprintf("0x%016x", state.Hash),
		FinishedAt: time.Now().UTC(),
	}
	_, err = s.db.Exec(
		`INSERT INTO games(id, mode, winner, status, move_count, board_hash, history, finished_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID, record.Mode, record.Winner, record.Status,
		record.MoveCount, record.BoardHash, string(historyJSON), record.FinishedAt,
	)
	if err != nil {
		return "", err
	}
	return record.ID, nil
}

// RecentGames returns the most recently finished games, newest first.
func (s *GameStore) RecentGames(limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	rows, err := s.db.Query(
		`SELECT id, mode, winner, status, move_count, board_hash, history, finished_at
		 FROM games ORDER BY finished_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []GameRecord{}
	for rows.Next() {
		var record GameRecord
		var historyJSON string
		if err := rows.Scan(&record.ID, &record.Mode, &record.Winner, &record.Status,
			&record.MoveCount, &record.BoardHash, &historyJSON, &record.FinishedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(historyJSON), &record.History); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
