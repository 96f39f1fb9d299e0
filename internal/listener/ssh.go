package listener

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"sync"

	"golang.org/x/crypto/ssh"
)

// SshListener accepts ssh connections and runs each session channel through
// the connection manager. The transport takes anyone; identity is settled by
// the in-game login, not by ssh auth.
type SshListener struct {
	port    uint16
	cm      *ConnectionManager
	hostKey ssh.Signer
}

func NewSshListener(port uint16, cm *ConnectionManager, hostKey ssh.Signer) *SshListener {
	return &SshListener{
		port:    port,
		cm:      cm,
		hostKey: hostKey,
	}
}

func (l *SshListener) Start(ctx context.Context) error {
	config := &ssh.ServerConfig{
		NoClientAuth: true,
	}
	config.AddHostKey(l.hostKey)

	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", l.port))
	if err != nil {
		return fmt.Errorf("listening on port %d: %w", l.port, err)
	}

	slog.InfoContext(ctx, "ssh listener up", "port", l.port)

	connCtx, cancelConns := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	// Unblock Accept when shutdown is requested.
	go func() {
		<-ctx.Done()
		listener.Close()
	}()

	for {
		conn, err := listener.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				cancelConns()
				wg.Wait()
				return nil
			default:
			}
			slog.ErrorContext(ctx, "ssh accept failed", "error", err)
			continue
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			l.handleConnection(connCtx, conn, config)
		}()
	}
}

func (l *SshListener) handleConnection(ctx context.Context, conn net.Conn, config *ssh.ServerConfig) {
	defer conn.Close()

	sshConn, chans, reqs, err := ssh.NewServerConn(conn, config)
	if err != nil {
		slog.ErrorContext(ctx, "ssh handshake failed", "remote", conn.RemoteAddr(), "error", err)
		return
	}
	defer sshConn.Close()

	slog.InfoContext(ctx, "ssh client connected", "remote", conn.RemoteAddr())

	// Tearing down the ssh connection ends the channel loop below, so a
	// shutdown cannot leave this goroutine parked on chans.
	go func() {
		<-ctx.Done()
		sshConn.Close()
	}()

	go ssh.DiscardRequests(reqs)

	for newChan := range chans {
		if newChan.ChannelType() != "session" {
			newChan.Reject(ssh.UnknownChannelType, "only session channels are served")
			continue
		}
		l.serveSession(ctx, newChan)
	}
}

// serveSession accepts one session channel and blocks until the player's
// connection lifecycle finishes.
func (l *SshListener) serveSession(ctx context.Context, newChan ssh.NewChannel) {
	ch, requests, err := newChan.Accept()
	if err != nil {
		slog.ErrorContext(ctx, "ssh channel accept failed", "error", err)
		return
	}
	defer ch.Close()

	// Clients hold input back until the shell request is acknowledged, so
	// wait for it before handing the channel over.
	shellReady := make(chan struct{})
	go answerSessionRequests(requests, shellReady)

	select {
	case <-shellReady:
	case <-ctx.Done():
		return
	}

	l.cm.AcceptConnection(ctx, newCRLFReadWriter(ch))
}

// answerSessionRequests acks the shell request and refuses everything else.
// A pty is refused in particular so the client keeps local echo and line
// buffering.
func answerSessionRequests(in <-chan *ssh.Request, shellReady chan<- struct{}) {
	acked := false
	for req := range in {
		switch req.Type {
		case "shell":
			req.Reply(true, nil)
			if !acked {
				acked = true
				close(shellReady)
			}
		default:
			req.Reply(false, nil)
		}
	}
}
