package game

import (
	"time"
)

// Team identifies one of the two fixed team rosters.
type Team string

const (
	TeamA    Team = "A"
	TeamB    Team = "B"
	TeamNone Team = ""
)

// Opposing returns the other team.
func (t Team) Opposing() Team {
	if t == TeamA {
		return TeamB
	}
	return TeamA
}

// Valid reports whether t names an actual roster.
func (t Team) Valid() bool {
	return t == TeamA || t == TeamB
}

// Role is a player's function during the current turn.
type Role string

const (
	RoleDescriber Role = "describer"
	RoleWatcher   Role = "watcher"
	RoleGuesser   Role = "guesser"
	RoleSpectator Role = "spectator"
)

// Player represents a connected participant. The ID is stable only for
// the lifetime of one connection; rejoining with the same ID updates
// the name instead of adding a second entry.
type Player struct {
	ID       string
	Name     string
	Team     Team
	Role     Role
	JoinedAt time.Time
}

// NewPlayer creates a player with no team and the spectator role.
func NewPlayer(id, name string) *Player {
	return &Player{
		ID:       id,
		Name:     name,
		Team:     TeamNone,
		Role:     RoleSpectator,
		JoinedAt: time.Now(),
	}
}
