package game

import "errors"

var (
	ErrOutOfRange   = errors.New("coordinates out of range")
	ErrOccupied     = errors.New("cell already occupied")
	ErrNoMove       = errors.New("no legal move")
	ErrEmptyHistory = errors.New("nothing to undo")
)
