package events

import "sync"

// Event types published by the game engine.
const (
	TypeRoomSnapshot   = "room-snapshot"
	TypeCountdownTick  = "countdown-tick"
	TypeTimerTick      = "timer-tick"
	TypeActionFeedback = "action-feedback"
)

// Event is one broadcast item for a room.
type Event struct {
	Type     string
	RoomCode string
	Data     any
}

// Bus fans room events out to subscribers. Sends never block; a
// subscriber that cannot keep up loses events rather than stalling
// the engine.
type Bus struct {
	mu          sync.RWMutex
	subscribers map[string][]chan Event
}

// NewBus creates an empty event bus.
func NewBus() *Bus {
	return &Bus{
		subscribers: make(map[string][]chan Event),
	}
}

// Subscribe returns a buffered channel of events for one room.
func (b *Bus) Subscribe(roomCode string) chan Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event, 32)
	b.subscribers[roomCode] = append(b.subscribers[roomCode], ch)
	return ch
}

// Unsubscribe removes a subscription and closes its channel.
func (b *Bus) Unsubscribe(roomCode string, ch chan Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.subscribers[roomCode]
	for i, sub := range subs {
		if sub == ch {
			b.subscribers[roomCode] = append(subs[:i], subs[i+1:]...)
			close(ch)
			break
		}
	}
}

// Publish delivers an event to all subscribers of its room.
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subscribers[event.RoomCode] {
		select {
		case ch <- event:
		default:
			// Channel full, skip
		}
	}
}
