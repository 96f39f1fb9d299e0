package messaging

import (
	"fmt"
	"strings"
)

// Broker is the subset of the NATS server the publisher needs.
type Broker interface {
	Publish(subject string, data []byte) error
}

// RoomLister provides a snapshot of who is in a room.
type RoomLister interface {
	RoomOccupants(roomId int) []string
}

// PlayerSubject names the per-player output channel each session
// subscribes to.
func PlayerSubject(name string) string {
	return fmt.Sprintf("player-%s", strings.ToLower(name))
}

// Publisher fans messages out to player subjects, either to one player or
// to everyone present in a room.
type Publisher struct {
	broker Broker
	rooms  RoomLister
}

func NewPublisher(broker Broker, rooms RoomLister) *Publisher {
	return &Publisher{broker: broker, rooms: rooms}
}

// PublishToPlayer delivers data to a single player's subject.
func (p *Publisher) PublishToPlayer(name string, data []byte) error {
	return p.broker.Publish(PlayerSubject(name), data)
}

// PublishToRoom delivers data to every occupant of the room except those
// named in exclude. Delivery continues past individual failures; the first
// error is reported.
func (p *Publisher) PublishToRoom(roomId int, exclude []string, data []byte) error {
	excludeSet := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		excludeSet[strings.ToLower(name)] = true
	}

	var firstErr error
	for _, name := range p.rooms.RoomOccupants(roomId) {
		if excludeSet[strings.ToLower(name)] {
			continue
		}
		if err := p.broker.Publish(PlayerSubject(name), data); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
