package mcp

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bobmcallan/ghl-mcp/internal/common"
)

const (
	// MaxMessageSize caps a POSTed JSON-RPC message.
	MaxMessageSize = 1 << 20

	defaultQueueSize = 64
	defaultKeepAlive = 25 * time.Second
)

// session is one client push channel. A single worker drains queue so replies
// are pushed in the order their messages were accepted.
type session struct {
	id     string
	queue  chan []byte
	events chan []byte
	ctx    context.Context
	cancel context.CancelFunc
}

// SSEServer serves the HTTP + server-sent events transport.
type SSEServer struct {
	engine    *Engine
	logger    *common.Logger
	queueSize int
	keepAlive time.Duration

	mu       sync.RWMutex
	sessions map[string]*session
	closed   bool
}

// SSEOption configures an SSEServer.
type SSEOption func(*SSEServer)

// WithQueueSize bounds the number of accepted but unprocessed messages per session.
func WithQueueSize(n int) SSEOption {
	return func(s *SSEServer) {
		if n > 0 {
			s.queueSize = n
		}
	}
}

// WithKeepAlive sets the comment ping interval. Zero disables pings.
func WithKeepAlive(d time.Duration) SSEOption {
	return func(s *SSEServer) {
		s.keepAlive = d
	}
}

// NewSSEServer creates the SSE transport over engine.
func NewSSEServer(engine *Engine, logger *common.Logger, opts ...SSEOption) *SSEServer {
	s := &SSEServer{
		engine:    engine,
		logger:    logger,
		queueSize: defaultQueueSize,
		keepAlive: defaultKeepAlive,
		sessions:  make(map[string]*session),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SessionCount returns the number of open streams.
func (s *SSEServer) SessionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *SSEServer) open(parent context.Context) (*session, bool) {
	ctx, cancel := context.WithCancel(parent)
	sess := &session{
		id:     uuid.New().String(),
		queue:  make(chan []byte, s.queueSize),
		events: make(chan []byte, s.queueSize),
		ctx:    ctx,
		cancel: cancel,
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		cancel()
		return nil, false
	}
	s.sessions[sess.id] = sess
	return sess, true
}

// Close ends every open stream and refuses new ones. http.Server.Shutdown
// does not cancel active requests, so it must be called on shutdown for
// streams to drain.
func (s *SSEServer) Close() {
	s.mu.Lock()
	s.closed = true
	open := make([]*session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		open = append(open, sess)
	}
	s.mu.Unlock()

	for _, sess := range open {
		sess.cancel()
	}
	if len(open) > 0 {
		s.logger.Info().Int("sessions", len(open)).Msg("sse streams closed for shutdown")
	}
}

func (s *SSEServer) close(sess *session) {
	sess.cancel()
	s.mu.Lock()
	delete(s.sessions, sess.id)
	s.mu.Unlock()
}

func (s *SSEServer) lookup(id string) (*session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	return sess, ok
}

// HandleStream handles GET /sse. It announces the message endpoint, then
// pushes every reply for the session until the client disconnects.
func (s *SSEServer) HandleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	sess, ok := s.open(r.Context())
	if !ok {
		http.Error(w, "server shutting down", http.StatusServiceUnavailable)
		return
	}
	defer s.close(sess)

	logger := s.logger.WithCorrelationId(sess.id)
	logger.Info().Str("remote", r.RemoteAddr).Msg("sse stream opened")

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	if err := writeEvent(w, "endpoint", []byte("/messages?sessionId="+sess.id)); err != nil {
		logger.Warn().Err(err).Msg("sse endpoint write failed")
		return
	}
	flusher.Flush()

	go s.work(sess)

	var ping <-chan time.Time
	if s.keepAlive > 0 {
		ticker := time.NewTicker(s.keepAlive)
		defer ticker.Stop()
		ping = ticker.C
	}

	for {
		select {
		case <-sess.ctx.Done():
			logger.Info().Msg("sse stream closed")
			return
		case data := <-sess.events:
			if err := writeEvent(w, "message", data); err != nil {
				logger.Warn().Err(err).Msg("sse write failed")
				return
			}
			flusher.Flush()
		case <-ping:
			if _, err := io.WriteString(w, ": ping\n\n"); err != nil {
				logger.Warn().Err(err).Msg("sse ping failed")
				return
			}
			flusher.Flush()
		}
	}
}

// work processes the session's messages one at a time.
func (s *SSEServer) work(sess *session) {
	for {
		select {
		case <-sess.ctx.Done():
			return
		case msg := <-sess.queue:
			reply := s.engine.Handle(sess.ctx, msg)
			if reply == nil {
				continue
			}
			select {
			case sess.events <- reply:
			case <-sess.ctx.Done():
				return
			}
		}
	}
}

// HandleMessage handles POST /messages?sessionId=. The reply is pushed on the
// session's stream; the HTTP response only acknowledges receipt.
func (s *SSEServer) HandleMessage(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("sessionId")
	if id == "" {
		http.Error(w, "sessionId is required", http.StatusBadRequest)
		return
	}
	sess, ok := s.lookup(id)
	if !ok {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxMessageSize))
	if err != nil {
		http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
		return
	}
	if len(body) == 0 {
		http.Error(w, "empty message", http.StatusBadRequest)
		return
	}

	select {
	case sess.queue <- body:
	case <-sess.ctx.Done():
		http.Error(w, "session closed", http.StatusNotFound)
		return
	default:
		http.Error(w, "session queue full", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusAccepted)
	_, _ = io.WriteString(w, "Accepted")
}

func writeEvent(w io.Writer, event string, data []byte) error {
	_, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
	return err
}
