package game

import (
	"math/rand/v2"
	"slices"
)

// joinTeamLocked moves a player onto the requested roster, removing it
// from any prior one. Unknown player ids are a no-op. Callers must
// hold r.mu.
func joinTeamLocked(r *Room, playerID string, team Team) {
	p := r.playerLocked(playerID)
	if p == nil {
		return
	}

	if p.Team.Valid() {
		r.Teams[p.Team] = slices.DeleteFunc(r.Teams[p.Team], func(id string) bool {
			return id == playerID
		})
	}
	p.Team = team
	r.Teams[team] = append(r.Teams[team], playerID)
}

// shuffleTeamsLocked deals the full player list into two teams:
// Fisher-Yates shuffle, then the first half (rounded up) becomes team
// A. Callers must hold r.mu.
func shuffleTeamsLocked(r *Room) {
	shuffled := append([]*Player(nil), r.Players...)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	half := (len(shuffled) + 1) / 2
	r.Teams[TeamA] = make([]string, 0, half)
	r.Teams[TeamB] = make([]string, 0, len(shuffled)-half)

	for i, p := range shuffled {
		if i < half {
			p.Team = TeamA
			r.Teams[TeamA] = append(r.Teams[TeamA], p.ID)
		} else {
			p.Team = TeamB
			r.Teams[TeamB] = append(r.Teams[TeamB], p.ID)
		}
	}
}

// assignRolesLocked recomputes every player's role from the current
// turn: one describer, one watcher, active-team members guess,
// everyone else spectates. The recomputation is total so stale roles
// from previous turns cannot survive. Callers must hold r.mu.
func assignRolesLocked(r *Room) {
	for _, p := range r.Players {
		switch {
		case p.ID == r.Turn.Describer:
			p.Role = RoleDescriber
		case p.ID == r.Turn.Watcher:
			p.Role = RoleWatcher
		case p.Team == r.Turn.Team && p.Team.Valid():
			p.Role = RoleGuesser
		default:
			p.Role = RoleSpectator
		}
	}
}

// clearRolesLocked resets every player to spectator. Callers must hold
// r.mu.
func clearRolesLocked(r *Room) {
	for _, p := range r.Players {
		p.Role = RoleSpectator
	}
}
