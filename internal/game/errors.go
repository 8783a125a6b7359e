package game

import "errors"

var (
	ErrTeamsIncomplete = errors.New("both teams need at least one player")
	ErrWrongState      = errors.New("action not allowed in current game state")
	ErrNotDescriber    = errors.New("only the current describer can start the turn")
	ErrUnknownPlayer   = errors.New("player is not in this room")
	ErrInvalidTeam     = errors.New("team must be A or B")
	ErrUnknownAction   = errors.New("unknown game action")
	ErrEmptyDeck       = errors.New("card deck is empty")
)
