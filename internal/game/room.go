package game

import (
	"sync"
	"time"
)

// State represents the current phase of a room's session.
type State string

const (
	StateLobby          State = "lobby"
	StateWaitingForTurn State = "waiting_for_turn"
	StateResuming       State = "resuming"
	StatePlaying        State = "playing"
	StateRoundEnded     State = "round_ended"
	StateEnded          State = "ended"
)

// Settings are the host-configurable game parameters.
type Settings struct {
	Rounds       int `json:"rounds"`
	TurnDuration int `json:"turnDuration"` // seconds
}

// Stats track round and turn progress. TargetTurnsPerTeam and
// MaxTeamSize are captured once when the game starts.
type Stats struct {
	CurrentRound       int          `json:"currentRound"`
	TurnsPlayed        map[Team]int `json:"turnsPlayed"`
	TargetTurnsPerTeam int          `json:"targetTurnsPerTeam"`
	MaxTeamSize        int          `json:"maxTeamSize"`
}

// Turn holds the state of the active (or pending) turn. Describer and
// Watcher are fixed when the turn starts and not revalidated mid-turn.
type Turn struct {
	Team               Team   `json:"team"`
	Describer          string `json:"describer"`
	Watcher            string `json:"watcher"`
	Card               *Card  `json:"card"`
	TimeLeft           int    `json:"timeLeft"`
	SkipsUsed          int    `json:"skipsUsed"`
	CountdownRemaining int    `json:"countdownRemaining"`
}

// Room is one isolated game session. The first entry in Players is the
// implicit host. All mutation goes through the Engine, which holds mu
// for the duration of each operation; timer callbacks re-check the
// clock handle under the same lock, so per-room processing is
// serialized.
type Room struct {
	Code       string
	Players    []*Player
	Teams      map[Team][]string
	State      State
	Scores     map[Team]int
	Settings   Settings
	Stats      Stats
	Turn       Turn
	CreatedAt  time.Time
	LastActive time.Time

	clock *clockHandle

	mu sync.Mutex
}

// NewRoom creates a room in lobby state with the given host as its
// first player.
func NewRoom(code string, host *Player, settings Settings) *Room {
	now := time.Now()
	return &Room{
		Code:       code,
		Players:    []*Player{host},
		Teams:      map[Team][]string{TeamA: {}, TeamB: {}},
		State:      StateLobby,
		Scores:     map[Team]int{TeamA: 0, TeamB: 0},
		Settings:   settings,
		Stats:      Stats{CurrentRound: 1, TurnsPlayed: map[Team]int{TeamA: 0, TeamB: 0}},
		CreatedAt:  now,
		LastActive: now,
	}
}

// AddOrUpdatePlayer appends a new spectator, or updates the name if
// the id is already present (reconnection path).
func (r *Room) AddOrUpdatePlayer(id, name string) *Player {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.LastActive = time.Now()
	if p := r.playerLocked(id); p != nil {
		p.Name = name
		return p
	}
	p := NewPlayer(id, name)
	r.Players = append(r.Players, p)
	return p
}

// GetPlayer retrieves a player by id, or nil.
func (r *Room) GetPlayer(id string) *Player {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.playerLocked(id)
}

func (r *Room) playerLocked(id string) *Player {
	for _, p := range r.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Touch records activity for the idle reaper.
func (r *Room) Touch() {
	r.mu.Lock()
	r.LastActive = time.Now()
	r.mu.Unlock()
}

// IdleSince returns the last activity timestamp.
func (r *Room) IdleSince() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.LastActive
}

// StopClock cancels any live per-second clock. Used when a room is
// evicted so orphaned ticks cannot mutate it afterwards.
func (r *Room) StopClock() {
	r.mu.Lock()
	r.stopClockLocked()
	r.mu.Unlock()
}

func (r *Room) stopClockLocked() {
	if r.clock != nil {
		r.clock.cancel()
		r.clock = nil
	}
}

// PlayerSnapshot is the broadcast view of one player.
type PlayerSnapshot struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Team Team   `json:"team"`
	Role Role   `json:"role"`
}

// RoomSnapshot is the versioned broadcast schema consumed by the
// gateway. It is a point-in-time copy and deliberately excludes the
// clock handle.
type RoomSnapshot struct {
	Version  int               `json:"version"`
	Code     string            `json:"code"`
	Players  []PlayerSnapshot  `json:"players"`
	Teams    map[Team][]string `json:"teams"`
	State    State             `json:"state"`
	Scores   map[Team]int      `json:"scores"`
	Settings Settings          `json:"settings"`
	Stats    Stats             `json:"stats"`
	Turn     Turn              `json:"turn"`
}

// SnapshotVersion identifies the RoomSnapshot schema.
const SnapshotVersion = 1

// Snapshot returns a consistent copy of the room for broadcasting.
func (r *Room) Snapshot() RoomSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked()
}

func (r *Room) snapshotLocked() RoomSnapshot {
	players := make([]PlayerSnapshot, 0, len(r.Players))
	for _, p := range r.Players {
		players = append(players, PlayerSnapshot{ID: p.ID, Name: p.Name, Team: p.Team, Role: p.Role})
	}

	teams := make(map[Team][]string, len(r.Teams))
	for t, roster := range r.Teams {
		teams[t] = append([]string(nil), roster...)
	}

	scores := make(map[Team]int, len(r.Scores))
	for t, s := range r.Scores {
		scores[t] = s
	}

	stats := r.Stats
	stats.TurnsPlayed = map[Team]int{
		TeamA: r.Stats.TurnsPlayed[TeamA],
		TeamB: r.Stats.TurnsPlayed[TeamB],
	}

	turn := r.Turn
	if r.Turn.Card != nil {
		card := *r.Turn.Card
		turn.Card = &card
	}

	return RoomSnapshot{
		Version:  SnapshotVersion,
		Code:     r.Code,
		Players:  players,
		Teams:    teams,
		State:    r.State,
		Scores:   scores,
		Settings: r.Settings,
		Stats:    stats,
		Turn:     turn,
	}
}
