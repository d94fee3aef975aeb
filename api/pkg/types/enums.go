package types

import (
	"fmt"
)

// SessionStatus is the client-side processing state of an upload session.
// It is driven by tagged server events, not by client guesses: the stream
// is the only writer once the upload has been accepted.
type SessionStatus string

const (
	SessionStatusIdle        SessionStatus = "idle"
	SessionStatusUploading   SessionStatus = "uploading"
	SessionStatusParsing     SessionStatus = "parsing"
	SessionStatusReviewing   SessionStatus = "reviewing"
	SessionStatusMatching    SessionStatus = "matching"
	SessionStatusAIAnalyzing SessionStatus = "ai_analyzing"
	SessionStatusComplete    SessionStatus = "complete"
	SessionStatusSubmitted   SessionStatus = "submitted"
)

// IsTerminal reports whether no further events are expected for the session.
func (s SessionStatus) IsTerminal() bool {
	switch s {
	case SessionStatusComplete, SessionStatusSubmitted:
		return true
	default:
		return false
	}
}

// StreamEventStatus tags a server push message on a candidate websocket.
type StreamEventStatus string

const (
	StreamEventParsingStarted   StreamEventStatus = "parsing_started"
	StreamEventParsingComplete  StreamEventStatus = "parsing_complete"
	StreamEventMatchingStarted  StreamEventStatus = "matching_started"
	StreamEventComplete         StreamEventStatus = "complete"
	StreamEventReasoning        StreamEventStatus = "reasoning"
	StreamEventInsightsComplete StreamEventStatus = "insights_complete"
	StreamEventError            StreamEventStatus = "error"
)

// Terminal reports whether the server sends nothing further on the stream
// after this event. The client owns closing the connection at that point.
func (s StreamEventStatus) Terminal() bool {
	switch s {
	case StreamEventComplete, StreamEventInsightsComplete, StreamEventError:
		return true
	default:
		return false
	}
}

type InteractionAction string

const (
	InteractionActionNone InteractionAction = ""

	// Candidate side actions
	InteractionActionViewed  InteractionAction = "viewed"
	InteractionActionApplied InteractionAction = "applied"
	InteractionActionSaved   InteractionAction = "saved"

	// Hirer side disposition actions
	InteractionActionShortlisted InteractionAction = "shortlisted"
	InteractionActionInterviewed InteractionAction = "interviewed"
	InteractionActionHired       InteractionAction = "hired"
	InteractionActionRejected    InteractionAction = "rejected"
)

func ValidateInteractionAction(action string, acceptEmpty bool) (InteractionAction, error) {
	switch action {
	case string(InteractionActionViewed):
		return InteractionActionViewed, nil
	case string(InteractionActionApplied):
		return InteractionActionApplied, nil
	case string(InteractionActionSaved):
		return InteractionActionSaved, nil
	case string(InteractionActionShortlisted):
		return InteractionActionShortlisted, nil
	case string(InteractionActionInterviewed):
		return InteractionActionInterviewed, nil
	case string(InteractionActionHired):
		return InteractionActionHired, nil
	case string(InteractionActionRejected):
		return InteractionActionRejected, nil
	default:
		if acceptEmpty && action == string(InteractionActionNone) {
			return InteractionActionNone, nil
		}
		return InteractionActionNone, fmt.Errorf("invalid interaction action: %s", action)
	}
}

type ApplicationStatus string

const (
	ApplicationStatusNone        ApplicationStatus = ""
	ApplicationStatusSubmitted   ApplicationStatus = "submitted"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusInterviewed ApplicationStatus = "interviewed"
	ApplicationStatusHired       ApplicationStatus = "hired"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
)

func ValidateApplicationStatus(status string, acceptEmpty bool) (ApplicationStatus, error) {
	switch status {
	case string(ApplicationStatusSubmitted):
		return ApplicationStatusSubmitted, nil
	case string(ApplicationStatusShortlisted):
		return ApplicationStatusShortlisted, nil
	case string(ApplicationStatusInterviewed):
		return ApplicationStatusInterviewed, nil
	case string(ApplicationStatusHired):
		return ApplicationStatusHired, nil
	case string(ApplicationStatusRejected):
		return ApplicationStatusRejected, nil
	default:
		if acceptEmpty && status == string(ApplicationStatusNone) {
			return ApplicationStatusNone, nil
		}
		return ApplicationStatusNone, fmt.Errorf("invalid application status: %s", status)
	}
}

// DispositionAction maps a hirer pipeline transition onto the interaction
// action recorded against the candidate's application.
func (s ApplicationStatus) DispositionAction() (InteractionAction, bool) {
	switch s {
	case ApplicationStatusShortlisted:
		return InteractionActionShortlisted, true
	case ApplicationStatusInterviewed:
		return InteractionActionInterviewed, true
	case ApplicationStatusHired:
		return InteractionActionHired, true
	case ApplicationStatusRejected:
		return InteractionActionRejected, true
	default:
		return InteractionActionNone, false
	}
}

type BatchJobStatus string

const (
	BatchJobStatusQueued    BatchJobStatus = "queued"
	BatchJobStatusRunning   BatchJobStatus = "running"
	BatchJobStatusCompleted BatchJobStatus = "completed"
	BatchJobStatusFailed    BatchJobStatus = "failed"
)

func (s BatchJobStatus) IsTerminal() bool {
	return s == BatchJobStatusCompleted || s == BatchJobStatusFailed
}

type AccountRole string

const (
	AccountRoleCandidate AccountRole = "candidate"
	AccountRoleHirer     AccountRole = "hirer"
	AccountRoleAdmin     AccountRole = "admin"
)

func ValidateAccountRole(role string, acceptEmpty bool) (AccountRole, error) {
	switch role {
	case string(AccountRoleCandidate):
		return AccountRoleCandidate, nil
	case string(AccountRoleHirer):
		return AccountRoleHirer, nil
	case string(AccountRoleAdmin):
		return AccountRoleAdmin, nil
	default:
		if acceptEmpty && role == "" {
			return AccountRoleCandidate, nil
		}
		return "", fmt.Errorf("invalid account role: %s", role)
	}
}
