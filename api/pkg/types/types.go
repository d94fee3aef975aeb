package types

import (
	"time"
)

// UploadSession is the view state of a single upload attempt. Exactly one
// session is active per runner; its Status decides what the caller renders.
// The websocket stream is the sole writer after upload, last message wins.
type UploadSession struct {
	ID      string        `json:"id"`
	CVID    int64         `json:"cv_id,omitempty"`
	Status  SessionStatus `json:"status"`
	Premium bool          `json:"premium"`

	// Error is set when an attempt fails; the session drops back to idle
	// and the user restarts from upload.
	Error string `json:"error,omitempty"`

	CV       *ParsedCV   `json:"cv,omitempty"`
	Matches  []*Match    `json:"matches,omitempty"`
	Insights *AIInsights `json:"insights,omitempty"`

	Created time.Time `json:"created"`
	Updated time.Time `json:"updated"`
}

// Match is a job-to-candidate pairing computed by the backend. Read-only on
// the client; applied/saved membership is tracked separately.
type Match struct {
	JobID       int64   `json:"job_id"`
	JobTitle    string  `json:"job_title"`
	Company     string  `json:"company"`
	MatchScore  float64 `json:"match_score"` // 0..1, rendered as received
	Explanation string  `json:"explanation,omitempty"`
	Location    string  `json:"location,omitempty"`
	SalaryRange string  `json:"salary_range,omitempty"`
}

// AIInsights is the premium analysis payload. All fields are opaque output
// of the backend's reasoning pipeline and are rendered as-is.
type AIInsights struct {
	QualityScore    float64            `json:"quality_score"`
	ScoreBreakdown  map[string]float64 `json:"score_breakdown,omitempty"`
	Contrastive     string             `json:"contrastive_explanation,omitempty"`
	Counterfactuals []string           `json:"counterfactual_suggestions,omitempty"`
	ChainOfThought  string             `json:"chain_of_thought,omitempty"`
}

// StreamEvent is a tagged message pushed by the backend over a candidate
// websocket. Status selects which payload field carries data.
type StreamEvent struct {
	Status StreamEventStatus `json:"status"`

	Data     *ParsedCV   `json:"data,omitempty"`     // parsing_complete
	Matches  []*Match    `json:"matches,omitempty"`  // complete
	Insights *AIInsights `json:"insights,omitempty"` // insights_complete
	Delta    string      `json:"delta,omitempty"`    // reasoning
	Message  string      `json:"message,omitempty"`  // error
}

const ConfirmAction = "confirm"

// ConfirmMessage is the only client-to-server message on the candidate
// stream: the reviewed CV sent back verbatim.
type ConfirmMessage struct {
	Action string    `json:"action"`
	Data   *ParsedCV `json:"data"`
}

// UploadResponse is returned by both upload endpoints. The backend assigns
// the CV identifier the websocket URL is keyed by.
type UploadResponse struct {
	CVID     int64  `json:"cv_id"`
	Filename string `json:"filename,omitempty"`
}

// RecommendationSet is the stored output of the last matching run plus the
// caller's applied/saved membership, as returned by GET /recommendations.
type RecommendationSet struct {
	PredictionID  string   `json:"prediction_id"`
	Matches       []*Match `json:"matches"`
	AppliedJobIDs []int64  `json:"applied_job_ids"`
	SavedJobIDs   []int64  `json:"saved_job_ids"`
	GeneratedAt   string   `json:"generated_at,omitempty"`
}
