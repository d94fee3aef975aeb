// Package stream consumes the candidate-processing websockets. A Stream is
// a scoped resource: the connection is guaranteed to close on every exit
// path - terminal server event, read failure, context cancellation or an
// explicit Close - so an abandoned attempt never leaks a socket.
package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/system"
	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/types"
)

const (
	dialAttempts          = 5
	delayBetweenDials     = 2 * time.Second
	keepAlivePingInterval = 10 * time.Second

	// DefaultIdleTimeout ends an attempt when the backend stops pushing
	// events. Overridable per dialer; zero disables the guard.
	DefaultIdleTimeout = 5 * time.Minute
)

// CandidatePath is the standard processing stream for an uploaded CV.
func CandidatePath(cvID int64) string {
	return fmt.Sprintf("/ws/candidate/%d", cvID)
}

// AnalyzePath is the premium deep-analysis variant of the candidate stream.
func AnalyzePath(cvID int64) string {
	return fmt.Sprintf("/super-advanced/ws/analyze/%d", cvID)
}

// ExplainPath carries the premium AI-insights stream: reasoning deltas
// followed by a terminal insights_complete event.
func ExplainPath(cvID int64) string {
	return fmt.Sprintf("/advanced/ws/explain/%d", cvID)
}

// Dialer opens streams against one backend with one credential set.
type Dialer struct {
	options     system.ClientOptions
	idleTimeout time.Duration
}

func NewDialer(options system.ClientOptions, idleTimeout time.Duration) *Dialer {
	return &Dialer{
		options:     options,
		idleTimeout: idleTimeout,
	}
}

// Dial connects to a websocket path, retrying the initial connect only.
// A connection dropped mid-stream is terminal for the attempt: the
// protocol has no replay or sequence numbers, so reconnecting could not
// resume safely.
func (d *Dialer) Dial(ctx context.Context, path string) (*Stream, error) {
	url := system.WSURL(d.options, path)

	header := http.Header{}
	if d.options.Token != "" {
		header.Set("Authorization", fmt.Sprintf("Bearer %s", d.options.Token))
	}

	var conn *websocket.Conn
	err := retry.Do(
		func() error {
			var err error
			conn, _, err = websocket.DefaultDialer.DialContext(ctx, url, header)
			if err != nil {
				return fmt.Errorf("websocket dial to '%s' failed: %w", url, err)
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(dialAttempts),
		retry.Delay(delayBetweenDials),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect after %d attempts: %w", dialAttempts, err)
	}

	log.Debug().Str("path", path).Msg("websocket connected")

	s := &Stream{
		conn:        conn,
		events:      make(chan types.StreamEvent),
		done:        make(chan struct{}),
		idleTimeout: d.idleTimeout,
	}

	go s.readPump()
	go s.keepAlive(ctx)

	return s, nil
}

// Stream is one open candidate websocket. Events are delivered in arrival
// order on a single channel; there is exactly one reader goroutine, so
// "last message wins" holds by construction.
type Stream struct {
	conn        *websocket.Conn
	events      chan types.StreamEvent
	idleTimeout time.Duration

	writeMu   sync.Mutex
	closeOnce sync.Once
	done      chan struct{}

	errMu sync.Mutex
	err   error
}

// Events yields server push events until a terminal event is delivered or
// the stream fails; the channel is closed afterwards. Callers must check
// Err once the channel closes.
func (s *Stream) Events() <-chan types.StreamEvent {
	return s.events
}

// Send writes one client message, used for the review confirmation.
func (s *Stream) Send(v interface{}) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	select {
	case <-s.done:
		return fmt.Errorf("stream is closed")
	default:
	}

	return s.conn.WriteJSON(v)
}

// Close tears the connection down. Safe to call from any goroutine and on
// every exit path, including after the stream already ended itself.
func (s *Stream) Close() error {
	s.closeOnce.Do(func() {
		close(s.done)

		s.writeMu.Lock()
		// best effort: tell the server we are going away
		_ = s.conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second),
		)
		s.writeMu.Unlock()

		_ = s.conn.Close()
	})
	return nil
}

// Err returns why the stream ended early: nil after a terminal event or a
// local Close, the read failure otherwise. A stalled backend surfaces here
// as an idle-timeout read error instead of hanging forever.
func (s *Stream) Err() error {
	s.errMu.Lock()
	defer s.errMu.Unlock()
	return s.err
}

func (s *Stream) setErr(err error) {
	s.errMu.Lock()
	defer s.errMu.Unlock()
	if s.err == nil {
		s.err = err
	}
}

func (s *Stream) readPump() {
	defer close(s.events)
	defer s.Close()

	for {
		if s.idleTimeout > 0 {
			if err := s.conn.SetReadDeadline(time.Now().Add(s.idleTimeout)); err != nil {
				s.setErr(err)
				return
			}
		}

		_, message, err := s.conn.ReadMessage()
		if err != nil {
			select {
			case <-s.done:
				// closed locally, not an error
			default:
				s.setErr(fmt.Errorf("failed to read websocket message: %w", err))
			}
			return
		}

		var event types.StreamEvent
		if err := json.Unmarshal(message, &event); err != nil {
			log.Warn().Err(err).Str("payload", string(message)).Msg("skipping unparseable stream event")
			continue
		}

		select {
		case s.events <- event:
		case <-s.done:
			return
		}

		if event.Status.Terminal() {
			return
		}
	}
}

func (s *Stream) keepAlive(ctx context.Context) {
	ticker := time.NewTicker(keepAlivePingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.Close()
			return
		case <-s.done:
			return
		case <-ticker.C:
			s.writeMu.Lock()
			err := s.conn.WriteMessage(websocket.PingMessage, []byte{})
			s.writeMu.Unlock()
			if err != nil {
				log.Debug().Err(err).Msg("keepalive ping failed, closing stream")
				s.setErr(fmt.Errorf("failed to send ping: %w", err))
				s.Close()
				return
			}
		}
	}
}
