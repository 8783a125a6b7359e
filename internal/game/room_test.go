package game

import (
	"testing"
	"time"
)

func TestNewRoom(t *testing.T) {
	r := NewRoom("ABC123", NewPlayer("h1", "Host"), Settings{Rounds: 3, TurnDuration: 60})

	if r.State != StateLobby {
		t.Errorf("state = %s, want %s", r.State, StateLobby)
	}
	if len(r.Players) != 1 || r.Players[0].ID != "h1" {
		t.Errorf("players = %v, want just the host", r.Players)
	}
	if r.Players[0].Role != RoleSpectator {
		t.Errorf("host role = %s, want %s", r.Players[0].Role, RoleSpectator)
	}
	if r.Scores[TeamA] != 0 || r.Scores[TeamB] != 0 {
		t.Errorf("scores = %v, want zeroed", r.Scores)
	}
}

func TestAddOrUpdatePlayer(t *testing.T) {
	r := NewRoom("ABC123", NewPlayer("h1", "Host"), Settings{Rounds: 3, TurnDuration: 60})

	p := r.AddOrUpdatePlayer("p2", "Alice")
	if len(r.Players) != 2 {
		t.Fatalf("players = %d, want 2", len(r.Players))
	}
	if p.Team != TeamNone {
		t.Errorf("new player team = %s, want none", p.Team)
	}

	// Same id again is a reconnect, not a new player
	p2 := r.AddOrUpdatePlayer("p2", "Alicia")
	if len(r.Players) != 2 {
		t.Errorf("players after rejoin = %d, want 2", len(r.Players))
	}
	if p2.Name != "Alicia" {
		t.Errorf("name after rejoin = %s, want Alicia", p2.Name)
	}
	if p2 != p {
		t.Error("rejoin created a distinct player value")
	}
}

func TestSnapshot(t *testing.T) {
	r := NewRoom("ABC123", NewPlayer("h1", "Host"), Settings{Rounds: 3, TurnDuration: 60})
	r.AddOrUpdatePlayer("p2", "Alice")
	joinTeamLocked(r, "h1", TeamA)
	joinTeamLocked(r, "p2", TeamB)
	card := Card{Word: "apple", ForbiddenWords: []string{"fruit"}}
	r.Turn.Card = &card

	snap := r.Snapshot()

	if snap.Version != SnapshotVersion {
		t.Errorf("version = %d, want %d", snap.Version, SnapshotVersion)
	}
	if snap.Code != "ABC123" {
		t.Errorf("code = %s, want ABC123", snap.Code)
	}
	if len(snap.Players) != 2 {
		t.Errorf("players = %d, want 2", len(snap.Players))
	}

	// Mutating the snapshot must not leak back into the room
	snap.Teams[TeamA][0] = "tampered"
	snap.Scores[TeamA] = 99
	snap.Turn.Card.Word = "tampered"
	snap.Stats.TurnsPlayed[TeamA] = 42

	if r.Teams[TeamA][0] != "h1" {
		t.Error("snapshot roster aliases the room roster")
	}
	if r.Scores[TeamA] != 0 {
		t.Error("snapshot scores alias the room scores")
	}
	if r.Turn.Card.Word != "apple" {
		t.Error("snapshot card aliases the room card")
	}
	if r.Stats.TurnsPlayed[TeamA] != 0 {
		t.Error("snapshot stats alias the room stats")
	}
}

func TestIdleTracking(t *testing.T) {
	r := NewRoom("ABC123", NewPlayer("h1", "Host"), Settings{Rounds: 3, TurnDuration: 60})

	before := r.IdleSince()
	time.Sleep(time.Millisecond)
	r.Touch()
	if !r.IdleSince().After(before) {
		t.Error("Touch() did not advance the activity timestamp")
	}
}
