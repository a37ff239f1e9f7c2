package nets

import (
	"bufio"
	"net"
	"sync"

	"github.com/google/uuid"
	"github.com/reusee/taisprite/gameconfigs"
	"github.com/reusee/taisprite/logs"
	"golang.org/x/net/netutil"
)

// LiveServer accepts one TCP session at a time and queues the lines it
// receives. The frame loop drains the queue between frames and feeds the
// lines to the machine, so script updates never race a running frame.
type LiveServer struct {
	logger logs.Logger
	addr   string
	lines  chan string

	mu sync.Mutex
	ln net.Listener
}

const liveQueueSize = 256

func (Module) LiveServer(
	addr gameconfigs.LiveAddr,
	logger logs.Logger,
) *LiveServer {
	return &LiveServer{
		logger: logger,
		addr:   string(addr),
		lines:  make(chan string, liveQueueSize),
	}
}

func (s *LiveServer) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln != nil {
		return s.ln.Addr().String()
	}
	return s.addr
}

func (s *LiveServer) Start() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return wrap(err)
	}
	// one editor session at a time
	ln = netutil.LimitListener(ln, 1)

	s.mu.Lock()
	s.ln = ln
	s.mu.Unlock()

	s.logger.Info("live server",
		"addr", ln.Addr(),
	)

	go s.acceptLoop(ln)
	return nil
}

func (s *LiveServer) acceptLoop(ln net.Listener) {
	for {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		go s.serveConn(conn)
	}
}

func (s *LiveServer) serveConn(conn net.Conn) {
	defer conn.Close()

	session := uuid.NewString()
	s.logger.Info("live session",
		"session", session,
		"remote", conn.RemoteAddr(),
	)
	defer s.logger.Info("live session end",
		"session", session,
	)

	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		select {
		case s.lines <- line:
		default:
			s.logger.Warn("live queue full, dropping line",
				"session", session,
			)
		}
	}
	if err := scanner.Err(); err != nil {
		s.logger.Warn("live session read",
			"session", session,
			"error", err,
		)
	}
}

// Drain returns the lines queued since the last call, without blocking.
func (s *LiveServer) Drain() []string {
	var ret []string
	for {
		select {
		case line := <-s.lines:
			ret = append(ret, line)
		default:
			return ret
		}
	}
}

func (s *LiveServer) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return nil
	}
	err := s.ln.Close()
	s.ln = nil
	return err
}
