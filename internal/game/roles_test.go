package game

import "testing"

func TestTeamOpposing(t *testing.T) {
	if TeamA.Opposing() != TeamB {
		t.Error("A.Opposing() != B")
	}
	if TeamB.Opposing() != TeamA {
		t.Error("B.Opposing() != A")
	}
}

func TestAssignRoles(t *testing.T) {
	r := NewRoom("TEST01", NewPlayer("a1", "A1"), Settings{Rounds: 1, TurnDuration: 10})
	for _, id := range []string{"a2", "b1", "b2", "s1"} {
		r.AddOrUpdatePlayer(id, id)
	}
	joinTeamLocked(r, "a1", TeamA)
	joinTeamLocked(r, "a2", TeamA)
	joinTeamLocked(r, "b1", TeamB)
	joinTeamLocked(r, "b2", TeamB)

	r.Turn = Turn{Team: TeamA, Describer: "a1", Watcher: "b1"}
	assignRolesLocked(r)

	want := map[string]Role{
		"a1": RoleDescriber,
		"a2": RoleGuesser,
		"b1": RoleWatcher,
		"b2": RoleSpectator,
		"s1": RoleSpectator,
	}
	for id, role := range want {
		if got := r.playerLocked(id).Role; got != role {
			t.Errorf("%s role = %s, want %s", id, got, role)
		}
	}

	// Recomputation is total: flipping the turn leaves no stale roles
	r.Turn = Turn{Team: TeamB, Describer: "b2", Watcher: "a2"}
	assignRolesLocked(r)

	want = map[string]Role{
		"a1": RoleSpectator,
		"a2": RoleWatcher,
		"b1": RoleGuesser,
		"b2": RoleDescriber,
		"s1": RoleSpectator,
	}
	for id, role := range want {
		if got := r.playerLocked(id).Role; got != role {
			t.Errorf("after flip, %s role = %s, want %s", id, got, role)
		}
	}
}

func TestClearRoles(t *testing.T) {
	r := NewRoom("TEST01", NewPlayer("a1", "A1"), Settings{Rounds: 1, TurnDuration: 10})
	r.AddOrUpdatePlayer("b1", "B1")
	joinTeamLocked(r, "a1", TeamA)
	joinTeamLocked(r, "b1", TeamB)
	r.Turn = Turn{Team: TeamA, Describer: "a1", Watcher: "b1"}
	assignRolesLocked(r)

	clearRolesLocked(r)
	for _, p := range r.Players {
		if p.Role != RoleSpectator {
			t.Errorf("%s role = %s, want %s", p.ID, p.Role, RoleSpectator)
		}
	}
}

func TestShuffleTeamsPartition(t *testing.T) {
	for _, n := range []int{1, 2, 5, 8} {
		r := NewRoom("TEST01", NewPlayer("p0", "P0"), Settings{Rounds: 1, TurnDuration: 10})
		for i := 1; i < n; i++ {
			r.AddOrUpdatePlayer("p"+string(rune('0'+i)), "P")
		}

		shuffleTeamsLocked(r)

		wantA := (n + 1) / 2
		if len(r.Teams[TeamA]) != wantA || len(r.Teams[TeamB]) != n-wantA {
			t.Errorf("n=%d rosters = %d/%d, want %d/%d",
				n, len(r.Teams[TeamA]), len(r.Teams[TeamB]), wantA, n-wantA)
		}

		seen := make(map[string]bool)
		for _, roster := range [][]string{r.Teams[TeamA], r.Teams[TeamB]} {
			for _, id := range roster {
				if seen[id] {
					t.Errorf("n=%d player %s on both rosters", n, id)
				}
				seen[id] = true
			}
		}
		if len(seen) != n {
			t.Errorf("n=%d players on rosters = %d, want %d", n, len(seen), n)
		}
	}
}
