// Package session implements the candidate processing flow: one upload
// attempt driven through idle, uploading, parsing, reviewing, matching,
// ai_analyzing and complete by tagged server events. The stream pump is
// the only writer after upload and the last message always wins; there
// are no sequence numbers to reconcile.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/system"
	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/types"
)

// Session is the view state of a single upload attempt.
type Session struct {
	mu    sync.Mutex
	state types.UploadSession
}

func New(premium bool) *Session {
	now := time.Now()
	return &Session{
		state: types.UploadSession{
			ID:      system.GenerateSessionID(),
			Status:  types.SessionStatusIdle,
			Premium: premium,
			Created: now,
			Updated: now,
		},
	}
}

// Snapshot copies the current view state for rendering. Slices and nested
// structs are shared read-only with the caller; the flow never mutates a
// payload after storing it.
func (s *Session) Snapshot() types.UploadSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Status() types.SessionStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Status
}

func (s *Session) setStatus(status types.SessionStatus) {
	s.state.Status = status
	s.state.Updated = time.Now()
}

// Uploading arms the session with the server-assigned CV id once the
// upload call has been accepted.
func (s *Session) Uploading(cvID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Status != types.SessionStatusIdle {
		return fmt.Errorf("cannot start upload from status %s", s.state.Status)
	}
	s.state.CVID = cvID
	s.state.Error = ""
	s.setStatus(types.SessionStatusUploading)
	return nil
}

// Submitted ends a non-premium batch attempt: the CV is queued server side
// and no websocket is opened.
func (s *Session) Submitted() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Status != types.SessionStatusUploading {
		return fmt.Errorf("cannot submit from status %s", s.state.Status)
	}
	s.setStatus(types.SessionStatusSubmitted)
	return nil
}

// ConfirmSent records that the reviewed CV went back to the server,
// moving the session from reviewing to matching.
func (s *Session) ConfirmSent(cv *types.ParsedCV) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Status != types.SessionStatusReviewing {
		return fmt.Errorf("cannot confirm from status %s", s.state.Status)
	}
	s.state.CV = cv
	s.setStatus(types.SessionStatusMatching)
	return nil
}

// Fail drops the session back to idle with the error recorded. Reachable
// from every status: an error event ends the attempt wherever it is.
func (s *Session) Fail(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Error = message
	s.setStatus(types.SessionStatusIdle)
}

// Apply advances the session on one server event, returning the resulting
// status. Events that do not fit the current status are rejected rather
// than silently reordered.
func (s *Session) Apply(event types.StreamEvent) (types.SessionStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch event.Status {
	case types.StreamEventError:
		s.state.Error = event.Message
		s.setStatus(types.SessionStatusIdle)
		return s.state.Status, nil

	case types.StreamEventParsingStarted:
		if s.state.Status != types.SessionStatusUploading {
			return s.state.Status, fmt.Errorf("unexpected parsing_started in status %s", s.state.Status)
		}
		s.setStatus(types.SessionStatusParsing)
		return s.state.Status, nil

	case types.StreamEventParsingComplete:
		if s.state.Status != types.SessionStatusParsing {
			return s.state.Status, fmt.Errorf("unexpected parsing_complete in status %s", s.state.Status)
		}
		// stored verbatim, edited in place during review
		s.state.CV = event.Data
		s.setStatus(types.SessionStatusReviewing)
		return s.state.Status, nil

	case types.StreamEventMatchingStarted:
		if s.state.Status != types.SessionStatusMatching {
			return s.state.Status, fmt.Errorf("unexpected matching_started in status %s", s.state.Status)
		}
		return s.state.Status, nil

	case types.StreamEventComplete:
		if s.state.Status != types.SessionStatusMatching {
			return s.state.Status, fmt.Errorf("unexpected complete in status %s", s.state.Status)
		}
		s.state.Matches = event.Matches
		if s.state.Premium {
			s.setStatus(types.SessionStatusAIAnalyzing)
		} else {
			s.setStatus(types.SessionStatusComplete)
		}
		return s.state.Status, nil

	case types.StreamEventReasoning:
		if s.state.Status != types.SessionStatusAIAnalyzing {
			return s.state.Status, fmt.Errorf("unexpected reasoning in status %s", s.state.Status)
		}
		if s.state.Insights == nil {
			s.state.Insights = &types.AIInsights{}
		}
		s.state.Insights.ChainOfThought += event.Delta
		s.state.Updated = time.Now()
		return s.state.Status, nil

	case types.StreamEventInsightsComplete:
		if s.state.Status != types.SessionStatusAIAnalyzing {
			return s.state.Status, fmt.Errorf("unexpected insights_complete in status %s", s.state.Status)
		}
		if event.Insights != nil {
			// the final payload wins over accumulated deltas, except the
			// chain of thought which only arrives incrementally
			chainOfThought := ""
			if s.state.Insights != nil {
				chainOfThought = s.state.Insights.ChainOfThought
			}
			s.state.Insights = event.Insights
			if s.state.Insights.ChainOfThought == "" {
				s.state.Insights.ChainOfThought = chainOfThought
			}
		}
		s.setStatus(types.SessionStatusComplete)
		return s.state.Status, nil

	default:
		return s.state.Status, fmt.Errorf("unknown stream event status: %s", event.Status)
	}
}
