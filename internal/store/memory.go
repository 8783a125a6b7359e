package store

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"wordrush/internal/game"
)

// ErrRoomNotFound is returned when a room code does not resolve.
var ErrRoomNotFound = errors.New("room not found")

// MemoryStore holds all game rooms in memory. It owns room lifetimes:
// rooms are created here, resolved here and evicted here.
type MemoryStore struct {
	mu    sync.RWMutex
	rooms map[string]*game.Room

	codeLength  int
	roomTimeout time.Duration
	defaults    game.Settings
}

// NewMemoryStore creates a new in-memory store. codeLength controls
// generated room codes, roomTimeout how long an idle room survives.
func NewMemoryStore(codeLength int, roomTimeout time.Duration, defaults game.Settings) *MemoryStore {
	return &MemoryStore{
		rooms:       make(map[string]*game.Room),
		codeLength:  codeLength,
		roomTimeout: roomTimeout,
		defaults:    defaults,
	}
}

// CreateRoom creates a new game room with the given host. Zero-valued
// settings fields fall back to the store defaults.
func (s *MemoryStore) CreateRoom(hostID, hostName string, settings game.Settings) (*game.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if settings.Rounds <= 0 {
		settings.Rounds = s.defaults.Rounds
	}
	if settings.TurnDuration <= 0 {
		settings.TurnDuration = s.defaults.TurnDuration
	}

	// Generate a unique room code, retrying on collision
	var code string
	for i := 0; ; i++ {
		code = generateRoomCode(s.codeLength)
		if _, exists := s.rooms[code]; !exists {
			break
		}
		if i >= 10 {
			return nil, fmt.Errorf("could not generate unique room code")
		}
	}

	room := game.NewRoom(code, game.NewPlayer(hostID, hostName), settings)
	s.rooms[code] = room
	return room, nil
}

// GetRoom retrieves a room by code
func (s *MemoryStore) GetRoom(code string) (*game.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	room, exists := s.rooms[code]
	if !exists {
		return nil, ErrRoomNotFound
	}

	return room, nil
}

// JoinRoom resolves the room and adds the player to it as a spectator.
// Rejoining with a known id just refreshes the name.
func (s *MemoryStore) JoinRoom(code, playerID, name string) (*game.Room, *game.Player, error) {
	room, err := s.GetRoom(code)
	if err != nil {
		return nil, nil, err
	}
	p := room.AddOrUpdatePlayer(playerID, name)
	return room, p, nil
}

// RemoveRoom evicts a room, cancelling any live clock so orphaned
// ticks cannot run against it.
func (s *MemoryStore) RemoveRoom(code string) {
	s.mu.Lock()
	room, exists := s.rooms[code]
	delete(s.rooms, code)
	s.mu.Unlock()

	if exists {
		room.StopClock()
	}
}

// Count returns the number of live rooms.
func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rooms)
}

// StartReaper periodically evicts rooms idle longer than the store's
// room timeout. Runs until ctx is cancelled.
func (s *MemoryStore) StartReaper(ctx context.Context) {
	interval := s.roomTimeout / 2
	if interval <= 0 {
		interval = time.Minute
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.reap()
			}
		}
	}()
}

func (s *MemoryStore) reap() {
	cutoff := time.Now().Add(-s.roomTimeout)

	s.mu.Lock()
	var stale []*game.Room
	for code, room := range s.rooms {
		if room.IdleSince().Before(cutoff) {
			stale = append(stale, room)
			delete(s.rooms, code)
		}
	}
	s.mu.Unlock()

	for _, room := range stale {
		room.StopClock()
		log.Printf("Reaped idle room %s", room.Code)
	}
}

// generateRoomCode generates an n-character alphanumeric code
func generateRoomCode(n int) string {
	const chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, n)
	rand.Read(b)

	for i := range b {
		b[i] = chars[b[i]%byte(len(chars))]
	}

	return string(b)
}
