package ws

import (
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"wordrush/internal/events"
	"wordrush/internal/game"
	"wordrush/internal/store"
)

// Handler owns the websocket gateway: it upgrades connections, assigns
// player ids, routes commands into the engine and forwards room events
// back out.
type Handler struct {
	store  *store.MemoryStore
	engine *game.Engine
	bus    *events.Bus

	upgrader websocket.Upgrader
}

// New creates a websocket handler
func New(s *store.MemoryStore, engine *game.Engine, bus *events.Bus) *Handler {
	return &Handler{
		store:  s,
		engine: engine,
		bus:    bus,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// ServeWS upgrades the connection and runs the command loop until the
// peer disconnects.
func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	playerID := uuid.NewString()
	client := newClient(conn)
	client.configureRead()
	go client.writePump()

	client.enqueue(ServerMessage{Type: "welcome", Data: Welcome{PlayerID: playerID}})

	h.readLoop(client, playerID)
}

// session tracks which room a connection is attached to and which
// player it acts as. A connection attaches at most once; create-room
// and join-room both attach.
type session struct {
	playerID string
	room     *game.Room
	sub      chan events.Event
}

func (h *Handler) readLoop(client *Client, playerID string) {
	sess := session{playerID: playerID}

	defer func() {
		if sess.sub != nil {
			h.bus.Unsubscribe(sess.room.Code, sess.sub)
		}
		client.close()
		client.conn.Close()
	}()

	for {
		cmd, err := client.readCommand()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("websocket read error: %v", err)
			}
			return
		}

		if err := h.dispatch(client, &sess, cmd); err != nil {
			client.enqueue(ServerMessage{Type: "error", Data: ErrorData{Message: err.Error()}})
		}
	}
}

func (h *Handler) dispatch(client *Client, sess *session, cmd Command) error {
	switch cmd.Type {
	case CmdCreateRoom:
		if sess.room != nil {
			return errAlreadyInRoom
		}
		if cmd.PlayerID != "" {
			sess.playerID = cmd.PlayerID
		}
		settings := game.Settings{Rounds: cmd.Rounds, TurnDuration: cmd.TurnDuration}
		room, err := h.store.CreateRoom(sess.playerID, cmd.Name, settings)
		if err != nil {
			return err
		}
		h.attach(client, sess, room)
		client.enqueue(ServerMessage{Type: "room-created", Data: RoomJoined{Code: room.Code, PlayerID: sess.playerID}})
		h.engine.BroadcastRoom(room)
		return nil

	case CmdJoinRoom:
		if sess.room != nil {
			return errAlreadyInRoom
		}
		if cmd.PlayerID != "" {
			// Reconnection path: same token resumes the same player
			sess.playerID = cmd.PlayerID
		}
		room, _, err := h.store.JoinRoom(cmd.Room, sess.playerID, cmd.Name)
		if err != nil {
			return err
		}
		h.attach(client, sess, room)
		client.enqueue(ServerMessage{Type: "room-joined", Data: RoomJoined{Code: room.Code, PlayerID: sess.playerID}})
		h.engine.BroadcastRoom(room)
		return nil
	}

	// Everything below requires an attached room
	if sess.room == nil {
		return errNotInRoom
	}

	switch cmd.Type {
	case CmdJoinTeam:
		return h.engine.JoinTeam(sess.room, sess.playerID, game.Team(cmd.Team))
	case CmdShuffleTeams:
		return h.engine.ShuffleTeams(sess.room)
	case CmdUpdateSettings:
		return h.engine.UpdateSettings(sess.room, cmd.Rounds, cmd.TurnDuration)
	case CmdStartGame:
		return h.engine.StartGame(sess.room)
	case CmdConfirmStartTurn:
		return h.engine.ConfirmStartTurn(sess.room, sess.playerID)
	case CmdGameAction:
		return h.engine.HandleAction(sess.room, game.Action(cmd.Action))
	case CmdStartNextRound:
		return h.engine.StartNextRound(sess.room)
	case CmdResetGame:
		return h.engine.ResetGame(sess.room)
	default:
		return errUnknownCommand
	}
}

// attach subscribes the connection to its room's event stream and
// starts the forwarder.
func (h *Handler) attach(client *Client, sess *session, room *game.Room) {
	sess.room = room
	sess.sub = h.bus.Subscribe(room.Code)
	go forward(client, sess.sub)
}

// forward copies room events onto the client's send queue until the
// subscription is closed.
func forward(client *Client, sub chan events.Event) {
	for ev := range sub {
		client.enqueue(ServerMessage{Type: ev.Type, Data: ev.Data})
	}
}
