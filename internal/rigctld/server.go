// Package rigctld serves a rig over the rigctld line protocol. One command
// per line; queries answer with value lines, commands with "RPRT <code>".
// All connections share one rig handle, so concurrent clients are
// serialized by the handle's dispatch queue.
package rigctld

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"net"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/boybook/hamlib-go/pkg/rig"
)

// Config configures a rigctld server.
type Config struct {
	// Address to listen on (e.g., ":4532" or "127.0.0.1:4532").
	Address string

	// Logger for connection diagnostics (optional).
	Logger *slog.Logger
}

// DefaultPort is the conventional rigctld listen port.
const DefaultPort = 4532

// Server accepts rigctld protocol connections and forwards commands to a
// rig handle.
type Server struct {
	cfg Config
	rig *rig.Rig

	listener net.Listener

	running atomic.Bool
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewServer creates a server for the given rig handle. The handle stays
// owned by the caller; the server never destroys it.
func NewServer(r *rig.Rig, cfg Config) *Server {
	if cfg.Address == "" {
		cfg.Address = fmt.Sprintf(":%d", DefaultPort)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	return &Server{cfg: cfg, rig: r}
}

// Start begins accepting connections.
func (s *Server) Start(ctx context.Context) error {
	if s.running.Load() {
		return fmt.Errorf("server already running")
	}

	s.ctx, s.cancel = context.WithCancel(ctx)

	listener, err := net.Listen("tcp", s.cfg.Address)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	s.listener = listener
	s.running.Store(true)

	s.wg.Add(1)
	go s.acceptLoop()

	s.cfg.Logger.Info("rigctld listening", "addr", listener.Addr().String())
	return nil
}

// Stop stops accepting connections and waits for the active ones to end.
func (s *Server) Stop() error {
	if !s.running.Load() {
		return nil
	}
	s.running.Store(false)
	s.cancel()
	if s.listener != nil {
		s.listener.Close()
	}
	s.wg.Wait()
	return nil
}

// Addr returns the server's listen address.
func (s *Server) Addr() net.Addr {
	if s.listener != nil {
		return s.listener.Addr()
	}
	return nil
}

func (s *Server) acceptLoop() {
	defer s.wg.Done()

	for s.running.Load() {
		conn, err := s.listener.Accept()
		if err != nil {
			if s.running.Load() {
				s.cfg.Logger.Warn("accept error", "error", err)
			}
			continue
		}
		s.wg.Add(1)
		go s.handleConnection(conn)
	}
}

// handleConnection reads command lines until the client quits or the
// server stops.
func (s *Server) handleConnection(conn net.Conn) {
	defer s.wg.Done()
	defer conn.Close()

	remote := conn.RemoteAddr().String()
	s.cfg.Logger.Debug("client connected", "remote", remote)
	defer s.cfg.Logger.Debug("client disconnected", "remote", remote)

	// Close the socket when the server stops so the read below unblocks.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-s.ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd := strings.TrimPrefix(fields[0], "\\")
		if cmd == "q" || cmd == "quit" {
			return
		}

		reply := s.dispatch(s.ctx, cmd, fields[1:])
		if _, err := fmt.Fprint(conn, reply); err != nil {
			return
		}
	}
}
