package game

import (
	"time"

	"wordrush/internal/events"
)

// Action is one of the three in-turn commands available while playing.
type Action string

const (
	ActionSuccess Action = "success"
	ActionBuzz    Action = "buzz"
	ActionSkip    Action = "skip"
)

// ActionFeedback is the discrete event emitted alongside the snapshot
// for success and buzz, so clients can play transient effects.
type ActionFeedback struct {
	Kind Action `json:"kind"`
}

// Options tune engine behavior. Zero values fall back to defaults.
type Options struct {
	// CountdownSeconds is the pre-turn countdown length (default 5).
	CountdownSeconds int
	// AllowNegativeScores keeps penalties unclamped when true. When
	// false, buzz and paid skips floor the team score at zero.
	AllowNegativeScores bool
	// TickInterval is the clock period, one second in production.
	// Tests shrink it.
	TickInterval time.Duration
}

// Engine drives every room's session state machine. All operations
// take the room lock, mutate, publish, and return; nothing blocks.
// Failures are local to the room they occur in.
type Engine struct {
	deck *Deck
	bus  *events.Bus

	countdownSeconds int
	allowNegative    bool
	tickInterval     time.Duration
}

// NewEngine creates an engine publishing to bus and drawing from deck.
func NewEngine(deck *Deck, bus *events.Bus, opts Options) *Engine {
	if opts.CountdownSeconds <= 0 {
		opts.CountdownSeconds = 5
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = time.Second
	}
	return &Engine{
		deck:             deck,
		bus:              bus,
		countdownSeconds: opts.CountdownSeconds,
		allowNegative:    opts.AllowNegativeScores,
		tickInterval:     opts.TickInterval,
	}
}

// BroadcastRoom publishes the room's current snapshot. Used by the
// gateway after registry operations (create/join) that don't go
// through an engine transition.
func (e *Engine) BroadcastRoom(r *Room) {
	r.mu.Lock()
	e.publishSnapshotLocked(r)
	r.mu.Unlock()
}

// JoinTeam moves a player onto a roster. Allowed in any state; the
// turn-start guard handles rosters emptied mid-game.
func (e *Engine) JoinTeam(r *Room, playerID string, team Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.LastActive = time.Now()

	if !team.Valid() {
		return ErrInvalidTeam
	}
	if r.playerLocked(playerID) == nil {
		return ErrUnknownPlayer
	}
	joinTeamLocked(r, playerID, team)
	e.publishSnapshotLocked(r)
	return nil
}

// ShuffleTeams randomly deals all players into two teams. Lobby only.
func (e *Engine) ShuffleTeams(r *Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.LastActive = time.Now()

	if r.State != StateLobby {
		return ErrWrongState
	}
	shuffleTeamsLocked(r)
	e.publishSnapshotLocked(r)
	return nil
}

// UpdateSettings changes rounds and/or turn duration. Values <= 0
// leave the corresponding setting unchanged. Lobby only.
func (e *Engine) UpdateSettings(r *Room, rounds, turnDuration int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.LastActive = time.Now()

	if r.State != StateLobby {
		return ErrWrongState
	}
	if rounds > 0 {
		r.Settings.Rounds = rounds
	}
	if turnDuration > 0 {
		r.Settings.TurnDuration = turnDuration
	}
	e.publishSnapshotLocked(r)
	return nil
}

// StartGame begins a session: captures the turn targets, points the
// rotation at team A and enters the first turn. Requires both rosters
// non-empty.
func (e *Engine) StartGame(r *Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.LastActive = time.Now()

	if r.State != StateLobby {
		return ErrWrongState
	}
	if len(r.Teams[TeamA]) == 0 || len(r.Teams[TeamB]) == 0 {
		return ErrTeamsIncomplete
	}

	maxTeamSize := max(len(r.Teams[TeamA]), len(r.Teams[TeamB]))
	r.Scores[TeamA] = 0
	r.Scores[TeamB] = 0
	r.Stats = Stats{
		CurrentRound:       1,
		TurnsPlayed:        map[Team]int{TeamA: 0, TeamB: 0},
		TargetTurnsPerTeam: maxTeamSize * r.Settings.Rounds,
		MaxTeamSize:        maxTeamSize,
	}
	r.Turn = Turn{Team: TeamA}

	e.startTurnLocked(r)
	e.publishSnapshotLocked(r)
	return nil
}

// ConfirmStartTurn is the describer's go signal: it moves the room
// into the countdown and arms the countdown clock.
func (e *Engine) ConfirmStartTurn(r *Room, playerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.LastActive = time.Now()

	if r.State != StateWaitingForTurn {
		return ErrWrongState
	}
	if playerID != r.Turn.Describer {
		return ErrNotDescriber
	}

	r.State = StateResuming
	r.Turn.CountdownRemaining = e.countdownSeconds
	e.publishCountdownLocked(r)
	e.publishSnapshotLocked(r)
	e.startClock(r, func() bool { return e.tickCountdownLocked(r) })
	return nil
}

// HandleAction applies one of the in-turn actions. Only valid while
// playing; never changes the game state.
func (e *Engine) HandleAction(r *Room, action Action) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.LastActive = time.Now()

	if r.State != StatePlaying {
		return ErrWrongState
	}

	team := r.Turn.Team
	switch action {
	case ActionSuccess:
		r.Scores[team]++
	case ActionBuzz:
		e.penalizeLocked(r, team)
	case ActionSkip:
		// First skip in a turn is free, the rest cost a point.
		if r.Turn.SkipsUsed > 0 {
			e.penalizeLocked(r, team)
		}
		r.Turn.SkipsUsed++
	default:
		return ErrUnknownAction
	}

	card := e.deck.Draw()
	r.Turn.Card = &card

	e.publishSnapshotLocked(r)
	if action == ActionSuccess || action == ActionBuzz {
		e.bus.Publish(events.Event{
			Type:     events.TypeActionFeedback,
			RoomCode: r.Code,
			Data:     ActionFeedback{Kind: action},
		})
	}
	return nil
}

// StartNextRound leaves the round summary and begins the next round.
// The active team was deliberately left unflipped at round end, so
// flip it here before entering the turn.
func (e *Engine) StartNextRound(r *Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.LastActive = time.Now()

	if r.State != StateRoundEnded {
		return ErrWrongState
	}
	r.Turn.Team = r.Turn.Team.Opposing()
	e.startTurnLocked(r)
	e.publishSnapshotLocked(r)
	return nil
}

// ResetGame returns the room to the lobby from any state: scores and
// stats zeroed, everyone a spectator again, team membership kept, any
// live clock cancelled.
func (e *Engine) ResetGame(r *Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.LastActive = time.Now()

	r.stopClockLocked()
	r.State = StateLobby
	r.Scores[TeamA] = 0
	r.Scores[TeamB] = 0
	r.Stats = Stats{CurrentRound: 1, TurnsPlayed: map[Team]int{TeamA: 0, TeamB: 0}}
	r.Turn = Turn{}
	clearRolesLocked(r)
	e.publishSnapshotLocked(r)
	return nil
}

// startTurnLocked prepares the next turn for the current active team:
// end-of-game check, round-robin describer/watcher selection, fresh
// card, reset clock fields, total role recomputation. Lands in
// waiting_for_turn. Callers must hold r.mu.
func (e *Engine) startTurnLocked(r *Room) {
	target := r.Stats.TargetTurnsPerTeam
	if r.Stats.TurnsPlayed[TeamA] >= target && r.Stats.TurnsPlayed[TeamB] >= target {
		e.endGameLocked(r)
		return
	}

	active := r.Teams[r.Turn.Team]
	opposing := r.Teams[r.Turn.Team.Opposing()]
	if len(active) == 0 || len(opposing) == 0 {
		// A roster emptied after the game started. There is no valid
		// describer/watcher pair, so finish the game instead of
		// indexing into an empty roster.
		e.endGameLocked(r)
		return
	}

	r.Turn.Describer = active[r.Stats.TurnsPlayed[r.Turn.Team]%len(active)]
	r.Turn.Watcher = opposing[r.Stats.TurnsPlayed[r.Turn.Team.Opposing()]%len(opposing)]

	card := e.deck.Draw()
	r.Turn.Card = &card
	r.Turn.TimeLeft = r.Settings.TurnDuration
	r.Turn.SkipsUsed = 0
	r.Turn.CountdownRemaining = 0

	assignRolesLocked(r)
	r.stopClockLocked()
	r.State = StateWaitingForTurn
}

// tickCountdownLocked runs once per second during resuming. At zero it
// hands off to the turn clock.
func (e *Engine) tickCountdownLocked(r *Room) bool {
	r.Turn.CountdownRemaining--
	if r.Turn.CountdownRemaining > 0 {
		e.publishCountdownLocked(r)
		return false
	}

	r.State = StatePlaying
	e.startClock(r, func() bool { return e.tickTurnClockLocked(r) })
	e.publishSnapshotLocked(r)
	return true
}

// tickTurnClockLocked runs once per second during play. At zero the
// turn completes.
func (e *Engine) tickTurnClockLocked(r *Room) bool {
	r.Turn.TimeLeft--
	e.bus.Publish(events.Event{
		Type:     events.TypeTimerTick,
		RoomCode: r.Code,
		Data:     r.Turn.TimeLeft,
	})
	if r.Turn.TimeLeft > 0 {
		return false
	}
	e.completeTurnLocked(r)
	return true
}

// completeTurnLocked credits the finished turn and decides what comes
// next: game over, round summary, or the opposing team's turn.
func (e *Engine) completeTurnLocked(r *Room) {
	finished := r.Turn.Team
	r.Stats.TurnsPlayed[finished]++

	turnsA := r.Stats.TurnsPlayed[TeamA]
	turnsB := r.Stats.TurnsPlayed[TeamB]
	r.Stats.CurrentRound = min(turnsA, turnsB)/r.Stats.MaxTeamSize + 1

	target := r.Stats.TargetTurnsPerTeam
	switch {
	case turnsA >= target && turnsB >= target:
		e.endGameLocked(r)
	case turnsA == turnsB && turnsA > 0 && turnsA%r.Stats.MaxTeamSize == 0:
		// Round boundary. The team pointer stays on the team that
		// just finished so the summary can show who played last;
		// StartNextRound flips it.
		r.stopClockLocked()
		r.Turn.Card = nil
		r.State = StateRoundEnded
	default:
		r.Turn.Team = r.Turn.Team.Opposing()
		e.startTurnLocked(r)
	}
	e.publishSnapshotLocked(r)
}

// endGameLocked moves the room to its terminal state. Callers must
// hold r.mu.
func (e *Engine) endGameLocked(r *Room) {
	r.stopClockLocked()
	r.State = StateEnded
	r.Turn.Card = nil
	r.Turn.Describer = ""
	r.Turn.Watcher = ""
}

// penalizeLocked subtracts a point, clamping at zero unless negative
// scores are allowed.
func (e *Engine) penalizeLocked(r *Room, team Team) {
	r.Scores[team]--
	if !e.allowNegative && r.Scores[team] < 0 {
		r.Scores[team] = 0
	}
}

func (e *Engine) publishSnapshotLocked(r *Room) {
	e.bus.Publish(events.Event{
		Type:     events.TypeRoomSnapshot,
		RoomCode: r.Code,
		Data:     r.snapshotLocked(),
	})
}

func (e *Engine) publishCountdownLocked(r *Room) {
	e.bus.Publish(events.Event{
		Type:     events.TypeCountdownTick,
		RoomCode: r.Code,
		Data:     r.Turn.CountdownRemaining,
	})
}
