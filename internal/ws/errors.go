package ws

import "errors"

var (
	errAlreadyInRoom  = errors.New("connection is already in a room")
	errNotInRoom      = errors.New("join or create a room first")
	errUnknownCommand = errors.New("unknown command type")
)
