package session

import (
	"io"
	"sync"

	"github.com/dungeonmerc/go-merc/internal/display"
	"github.com/google/uuid"
)

// State is a session's position in the connection lifecycle. Disconnected is
// terminal and reachable from every other state.
type State int

const (
	StateConnecting State = iota
	StateAuthenticating
	StateAuthenticated
	StatePlaying
	StateDisconnected
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateAuthenticating:
		return "authenticating"
	case StateAuthenticated:
		return "authenticated"
	case StatePlaying:
		return "playing"
	case StateDisconnected:
		return "disconnected"
	default:
		return "unknown"
	}
}

const inputBacklog = 16

// Session is one connection's state machine. It exclusively owns its
// transport handle and input buffer; the bound player is referenced by name
// and owned by the world. Command dispatch only touches sessions that are
// authenticated and playing.
type Session struct {
	id   uuid.UUID
	conn io.ReadWriter

	mu     sync.Mutex
	state  State
	player string

	// input carries complete lines from the reader goroutine to the
	// registry tick; inputEOF closes when the transport stops producing.
	input    chan string
	inputEOF chan struct{}

	// msgs carries outbound text, published messages and tick replies
	// alike, to the lifecycle loop for writing.
	msgs chan []byte
	done chan struct{}

	closeOnce sync.Once
	evictOnce sync.Once

	unsubscribe func()
}

func newSession(conn io.ReadWriter) *Session {
	return &Session{
		id:       uuid.New(),
		conn:     conn,
		state:    StateConnecting,
		input:    make(chan string, inputBacklog),
		inputEOF: make(chan struct{}),
		msgs:     make(chan []byte, 32),
		done:     make(chan struct{}),
	}
}

// Id returns the session's connection handle.
func (s *Session) Id() uuid.UUID {
	return s.id
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Player returns the bound player name, empty until the session is playing.
func (s *Session) Player() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.player
}

// setState advances the lifecycle. A disconnected session stays
// disconnected; the terminal state never rolls back.
func (s *Session) setState(state State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateDisconnected {
		return
	}
	s.state = state
}

// bindPlayer attaches the player and moves the session to playing.
func (s *Session) bindPlayer(name string, unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateDisconnected {
		return
	}
	s.player = name
	s.unsubscribe = unsubscribe
	s.state = StatePlaying
}

// Close moves the session to Disconnected and releases the lifecycle loop.
// It is idempotent; closing twice is a no-op.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.state = StateDisconnected
		s.mu.Unlock()
		close(s.done)
	})
}

// Done returns the channel closed when the session disconnects.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// TryReadLine returns a buffered input line without blocking.
func (s *Session) TryReadLine() (string, bool) {
	select {
	case line := <-s.input:
		return line, true
	default:
		return "", false
	}
}

// Deliver queues output for the lifecycle loop to write. A session that has
// stopped draining loses the message rather than blocking the sender. A nil
// message asks the loop for a fresh prompt.
func (s *Session) Deliver(data []byte) bool {
	select {
	case s.msgs <- data:
		return true
	default:
		return false
	}
}

// WriteLine writes one wrapped output line directly to the transport.
func (s *Session) WriteLine(msg string) error {
	_, err := s.conn.Write([]byte(display.Wrap(msg) + "\n"))
	return err
}

// WritePrompt writes the input prompt without a trailing newline.
func (s *Session) WritePrompt(prompt string) error {
	_, err := s.conn.Write([]byte(prompt))
	return err
}
