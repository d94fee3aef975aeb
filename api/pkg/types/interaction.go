package types

import "time"

type InteractionStatus string

const (
	// InteractionStatusLogged means a new audit row was recorded.
	InteractionStatusLogged InteractionStatus = "logged"
	// InteractionStatusAlreadyExists means the (job, action) pair was seen
	// before; the endpoint is idempotent and this is not an error.
	InteractionStatusAlreadyExists InteractionStatus = "already_exists"
)

// InteractionRequest records a single audit event against a job. CVID is
// optional - hirer disposition events carry the application's CV instead.
type InteractionRequest struct {
	JobID    int64             `json:"job_id"`
	CVID     int64             `json:"cv_id,omitempty"`
	Action   InteractionAction `json:"action"`
	ClientID string            `json:"client_id,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

type InteractionResponse struct {
	Status   InteractionStatus `json:"status"`
	LoggedAt time.Time         `json:"logged_at,omitempty"`
}

// Recorded reports whether the event is durably stored, counting the
// idempotent replay answer as success.
func (r *InteractionResponse) Recorded() bool {
	return r != nil && (r.Status == InteractionStatusLogged || r.Status == InteractionStatusAlreadyExists)
}
