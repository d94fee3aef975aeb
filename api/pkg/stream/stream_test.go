package stream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/system"
	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/types"
)

var upgrader = websocket.Upgrader{}

// newWSServer runs handler for every websocket connection and returns a
// dialer pointed at the server.
func newWSServer(t *testing.T, idleTimeout time.Duration, handler func(conn *websocket.Conn, r *http.Request)) *Dialer {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		handler(conn, r)
	}))
	t.Cleanup(server.Close)

	return NewDialer(system.ClientOptions{Host: server.URL, Token: "test-token"}, idleTimeout)
}

func TestStreamDeliversEventsAndClosesOnTerminal(t *testing.T) {
	dialer := newWSServer(t, 0, func(conn *websocket.Conn, r *http.Request) {
		assert.Equal(t, "/ws/candidate/42", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		require.NoError(t, conn.WriteJSON(types.StreamEvent{Status: types.StreamEventParsingStarted}))
		require.NoError(t, conn.WriteJSON(types.StreamEvent{
			Status: types.StreamEventParsingComplete,
			Data:   &types.ParsedCV{Basics: types.CVBasics{Name: "Jane Doe"}},
		}))
		require.NoError(t, conn.WriteJSON(types.StreamEvent{
			Status:  types.StreamEventComplete,
			Matches: []*types.Match{{JobID: 1, MatchScore: 0.9}},
		}))

		// hold the connection open; the client owns closing it
		_, _, _ = conn.ReadMessage()
	})

	s, err := dialer.Dial(context.Background(), CandidatePath(42))
	require.NoError(t, err)
	defer s.Close()

	var statuses []types.StreamEventStatus
	for event := range s.Events() {
		statuses = append(statuses, event.Status)
		if event.Status == types.StreamEventParsingComplete {
			assert.Equal(t, "Jane Doe", event.Data.Basics.Name)
		}
	}

	assert.Equal(t, []types.StreamEventStatus{
		types.StreamEventParsingStarted,
		types.StreamEventParsingComplete,
		types.StreamEventComplete,
	}, statuses)

	// terminal event, not a failure
	assert.NoError(t, s.Err())
}

func TestStreamSend(t *testing.T) {
	received := make(chan types.ConfirmMessage, 1)

	dialer := newWSServer(t, 0, func(conn *websocket.Conn, _ *http.Request) {
		var confirm types.ConfirmMessage
		require.NoError(t, conn.ReadJSON(&confirm))
		received <- confirm

		require.NoError(t, conn.WriteJSON(types.StreamEvent{Status: types.StreamEventComplete}))
		_, _, _ = conn.ReadMessage()
	})

	s, err := dialer.Dial(context.Background(), CandidatePath(1))
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Send(&types.ConfirmMessage{
		Action: types.ConfirmAction,
		Data:   &types.ParsedCV{Basics: types.CVBasics{Name: "Jane Doe"}},
	}))

	select {
	case confirm := <-received:
		assert.Equal(t, "confirm", confirm.Action)
		assert.Equal(t, "Jane Doe", confirm.Data.Basics.Name)
	case <-time.After(2 * time.Second):
		t.Fatal("server never received the confirmation")
	}

	for range s.Events() {
	}
}

func TestStreamErrorEventIsTerminal(t *testing.T) {
	dialer := newWSServer(t, 0, func(conn *websocket.Conn, _ *http.Request) {
		require.NoError(t, conn.WriteJSON(types.StreamEvent{
			Status:  types.StreamEventError,
			Message: "parse failed",
		}))
		_, _, _ = conn.ReadMessage()
	})

	s, err := dialer.Dial(context.Background(), CandidatePath(1))
	require.NoError(t, err)
	defer s.Close()

	event, ok := <-s.Events()
	require.True(t, ok)
	assert.Equal(t, types.StreamEventError, event.Status)
	assert.Equal(t, "parse failed", event.Message)

	_, ok = <-s.Events()
	assert.False(t, ok)
	assert.NoError(t, s.Err())
}

func TestStreamIdleTimeout(t *testing.T) {
	// server goes silent after connecting
	dialer := newWSServer(t, 100*time.Millisecond, func(conn *websocket.Conn, _ *http.Request) {
		time.Sleep(2 * time.Second)
	})

	s, err := dialer.Dial(context.Background(), CandidatePath(1))
	require.NoError(t, err)
	defer s.Close()

	select {
	case _, ok := <-s.Events():
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("idle timeout did not fire")
	}

	// a stalled backend surfaces as an error instead of hanging
	require.Error(t, s.Err())
}

func TestStreamContextCancellation(t *testing.T) {
	dialer := newWSServer(t, 0, func(conn *websocket.Conn, _ *http.Request) {
		_, _, _ = conn.ReadMessage()
	})

	ctx, cancel := context.WithCancel(context.Background())
	s, err := dialer.Dial(ctx, CandidatePath(1))
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-s.Events():
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("cancellation did not close the stream")
	}
}

func TestStreamCloseIsIdempotent(t *testing.T) {
	dialer := newWSServer(t, 0, func(conn *websocket.Conn, _ *http.Request) {
		_, _, _ = conn.ReadMessage()
	})

	s, err := dialer.Dial(context.Background(), CandidatePath(1))
	require.NoError(t, err)

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	require.Error(t, s.Send("anything"))
}

func TestStreamSkipsUnparseableEvents(t *testing.T) {
	dialer := newWSServer(t, 0, func(conn *websocket.Conn, _ *http.Request) {
		require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json")))
		require.NoError(t, conn.WriteJSON(types.StreamEvent{Status: types.StreamEventComplete}))
		_, _, _ = conn.ReadMessage()
	})

	s, err := dialer.Dial(context.Background(), CandidatePath(1))
	require.NoError(t, err)
	defer s.Close()

	event, ok := <-s.Events()
	require.True(t, ok)
	assert.Equal(t, types.StreamEventComplete, event.Status)
}

func TestPaths(t *testing.T) {
	assert.Equal(t, "/ws/candidate/42", CandidatePath(42))
	assert.Equal(t, "/super-advanced/ws/analyze/42", AnalyzePath(42))
	assert.Equal(t, "/advanced/ws/explain/42", ExplainPath(42))
}
