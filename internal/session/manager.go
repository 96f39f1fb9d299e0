package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/dungeonmerc/go-merc/internal/auth"
	"github.com/dungeonmerc/go-merc/internal/commands"
	"github.com/dungeonmerc/go-merc/internal/display"
	"github.com/dungeonmerc/go-merc/internal/game"
	"github.com/dungeonmerc/go-merc/internal/messaging"
	"github.com/google/uuid"
)

// maxCommandsPerTick bounds how many lines one session can have dispatched
// per tick, so a paste flood cannot starve other sessions.
const maxCommandsPerTick = 10

// Subscriber provides the ability to subscribe to message subjects.
type Subscriber interface {
	Subscribe(subject string, handler func(data []byte)) (unsubscribe func(), err error)
}

// Manager is the connection registry. It owns every live session, runs each
// connection's lifecycle, and performs one discrete tick of work: dispatch
// pending input for playing sessions, then sweep the disconnected ones,
// evicting their players from the world exactly once.
type Manager struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session

	world     *game.World
	handler   *commands.Handler
	accounts  *auth.Manager
	sub       Subscriber
	startRoom int
	motd      string
}

func NewManager(world *game.World, handler *commands.Handler, accounts *auth.Manager, sub Subscriber, startRoom int, motd string) *Manager {
	return &Manager{
		sessions:  make(map[uuid.UUID]*Session),
		world:     world,
		handler:   handler,
		accounts:  accounts,
		sub:       sub,
		startRoom: startRoom,
		motd:      motd,
	}
}

// AcceptConnection runs one connection's full lifecycle: authenticate, bind
// a player, then relay published output until the session ends. It blocks
// until disconnect, so listeners call it from a per-connection goroutine.
func (m *Manager) AcceptConnection(ctx context.Context, conn io.ReadWriter) error {
	s := newSession(conn)
	m.track(s)
	defer m.evict(s)

	s.setState(StateAuthenticating)
	flow := &loginFlow{accounts: m.accounts}
	username, class, err := flow.Run(conn)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	s.setState(StateAuthenticated)

	name := display.Capitalize(strings.ToLower(username))
	if err := m.enterWorld(s, name, class); err != nil {
		return err
	}

	slog.InfoContext(ctx, "player entered the game", "player", name, "session", s.Id())

	if m.motd != "" {
		if err := s.WriteLine(m.motd); err != nil {
			return err
		}
	}
	if err := s.WriteLine("Type 'help' for available commands."); err != nil {
		return err
	}

	// Show the player their starting room.
	if err := m.handler.Exec(ctx, m.world, s.Player(), "look"); err != nil {
		var userErr *commands.UserError
		if !errors.As(err, &userErr) {
			return fmt.Errorf("initial look: %w", err)
		}
		if werr := s.WriteLine(userErr.Message); werr != nil {
			return werr
		}
	}

	go m.readInput(s)

	return m.relayOutput(ctx, s)
}

// enterWorld creates the player, registers it in the world, and subscribes
// the session to the player's output subject.
func (m *Manager) enterWorld(s *Session, name string, class game.Class) error {
	player := game.NewPlayer(name, class)

	// Everybody starts with one field dressing.
	if err := player.AddItem(&game.Item{Name: "Medkit", Kind: game.ItemConsumable, Value: 25}); err != nil {
		return fmt.Errorf("granting starting loadout: %w", err)
	}

	if err := m.world.AddPlayer(player, m.startRoom); err != nil {
		if errors.Is(err, game.ErrPlayerExists) {
			_ = s.WriteLine("That character is already in the game.")
			return fmt.Errorf("player %q already in game", name)
		}
		return fmt.Errorf("adding player to world: %w", err)
	}

	unsub, err := m.sub.Subscribe(messaging.PlayerSubject(name), func(data []byte) {
		if !s.Deliver(data) {
			slog.Warn("session output backlog full, dropping message", "player", name)
		}
	})
	if err != nil {
		m.world.RemovePlayer(name)
		return fmt.Errorf("subscribing player channel: %w", err)
	}

	s.bindPlayer(name, unsub)
	return nil
}

// readInput feeds complete lines from the transport into the session's
// input buffer until the transport stops producing.
func (m *Manager) readInput(s *Session) {
	scanner := bufio.NewScanner(s.conn)
	for scanner.Scan() {
		select {
		case s.input <- scanner.Text():
		case <-s.done:
			return
		}
	}
	close(s.inputEOF)
}

// relayOutput writes queued messages to the transport until the session
// disconnects or the transport dies. It is the only writer once the session
// is playing; the tick never touches the transport. An empty message is a
// prompt refresh.
func (m *Manager) relayOutput(ctx context.Context, s *Session) error {
	for {
		select {
		case <-ctx.Done():
			s.Close()
			return ctx.Err()

		case <-s.done:
			m.flush(s)
			return nil

		case <-s.inputEOF:
			// Transport lost.
			s.Close()
			return nil

		case msg := <-s.msgs:
			if len(msg) > 0 {
				if err := s.WriteLine("\n" + string(msg)); err != nil {
					s.Close()
					return err
				}
			}
			select {
			case <-s.done:
				// Closing output like the farewell goes out without a
				// trailing prompt.
				m.flush(s)
				return nil
			default:
			}
			if err := s.WritePrompt(m.prompt(s)); err != nil {
				s.Close()
				return err
			}
		}
	}
}

// flush writes whatever output was queued before the session closed.
func (m *Manager) flush(s *Session) {
	for {
		select {
		case msg := <-s.msgs:
			if len(msg) > 0 {
				_ = s.WriteLine("\n" + string(msg))
			}
		default:
			return
		}
	}
}

// Tick performs one registry tick: dispatch buffered input for playing
// sessions and sweep disconnected ones. One session's failure never aborts
// the tick for the rest.
func (m *Manager) Tick(ctx context.Context) error {
	for _, s := range m.snapshot() {
		switch s.State() {
		case StatePlaying:
			m.pump(ctx, s)
		case StateDisconnected:
			m.evict(s)
		}
	}
	return nil
}

// pump dispatches this session's pending input lines. Everything it has to
// say goes through the session's message buffer, never the transport, so a
// client that stopped reading cannot stall the tick.
func (m *Manager) pump(ctx context.Context, s *Session) {
	for i := 0; i < maxCommandsPerTick; i++ {
		line, ok := s.TryReadLine()
		if !ok {
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			s.Deliver(nil)
			continue
		}

		parts := strings.Fields(line)
		err := m.handler.Exec(ctx, m.world, s.Player(), parts[0], parts[1:]...)
		if err != nil {
			var userErr *commands.UserError
			if errors.As(err, &userErr) {
				if !s.Deliver([]byte(userErr.Message)) {
					slog.Warn("session output backlog full, dropping message", "player", s.Player())
				}
			} else {
				// System error - log and disconnect this session only.
				slog.ErrorContext(ctx, "command execution failed", "player", s.Player(), "error", err)
				s.Close()
				return
			}
		}

		if m.world.PlayerQuit(s.Player()) {
			s.Deliver([]byte("Goodbye!"))
			s.Close()
			return
		}
	}
}

func (m *Manager) prompt(s *Session) string {
	if stats, ok := m.world.PlayerStats(s.Player()); ok {
		return fmt.Sprintf("[%d/%dHP] > ", stats.Health, stats.MaxHealth)
	}
	return "> "
}

func (m *Manager) track(s *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.id] = s
}

// evict tears a session down: close, remove its player from the world, and
// drop its subscription. Safe to call any number of times; the world
// eviction happens exactly once.
func (m *Manager) evict(s *Session) {
	s.Close()

	s.evictOnce.Do(func() {
		s.mu.Lock()
		name := s.player
		unsub := s.unsubscribe
		s.mu.Unlock()

		if name != "" {
			m.world.RemovePlayer(name)
		}
		if unsub != nil {
			unsub()
		}
	})

	m.mu.Lock()
	delete(m.sessions, s.id)
	m.mu.Unlock()
}

// SessionCount reports how many sessions are currently tracked.
func (m *Manager) SessionCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *Manager) snapshot() []*Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		out = append(out, s)
	}
	return out
}
