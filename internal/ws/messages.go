package ws

// Command is one client request. Type selects the operation; the other
// fields are read only by the operations that need them.
type Command struct {
	Type string `json:"type"`

	// create-room / join-room. PlayerID is optional: a client that
	// kept its token from an earlier connection sends it to resume
	// the same player instead of joining as a new one.
	Room     string `json:"room,omitempty"`
	Name     string `json:"name,omitempty"`
	PlayerID string `json:"playerId,omitempty"`

	// join-team
	Team string `json:"team,omitempty"`

	// game-action
	Action string `json:"action,omitempty"`

	// update-settings / create-room; zero means "leave unchanged"
	Rounds       int `json:"rounds,omitempty"`
	TurnDuration int `json:"turnDuration,omitempty"`
}

// Command types accepted over the socket.
const (
	CmdCreateRoom       = "create-room"
	CmdJoinRoom         = "join-room"
	CmdJoinTeam         = "join-team"
	CmdShuffleTeams     = "shuffle-teams"
	CmdUpdateSettings   = "update-settings"
	CmdStartGame        = "start-game"
	CmdConfirmStartTurn = "confirm-start-turn"
	CmdGameAction       = "game-action"
	CmdStartNextRound   = "start-next-round"
	CmdResetGame        = "reset-game"
)

// ServerMessage is one message pushed to a client. Broadcast events are
// forwarded with their bus type; welcome and error are per-client.
type ServerMessage struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

// Welcome is sent once per connection before any command is read.
type Welcome struct {
	PlayerID string `json:"playerId"`
}

// RoomJoined confirms a create-room or join-room command.
type RoomJoined struct {
	Code     string `json:"code"`
	PlayerID string `json:"playerId"`
}

// ErrorData carries a command failure back to the issuing client.
// Failures are never broadcast.
type ErrorData struct {
	Message string `json:"message"`
}
