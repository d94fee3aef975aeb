package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateInteractionAction(t *testing.T) {
	tests := []struct {
		name        string
		action      string
		acceptEmpty bool
		expected    InteractionAction
		expectError bool
	}{
		{name: "viewed", action: "viewed", expected: InteractionActionViewed},
		{name: "applied", action: "applied", expected: InteractionActionApplied},
		{name: "saved", action: "saved", expected: InteractionActionSaved},
		{name: "hirer shortlisted", action: "shortlisted", expected: InteractionActionShortlisted},
		{name: "hirer hired", action: "hired", expected: InteractionActionHired},
		{name: "empty rejected by default", action: "", expectError: true},
		{name: "empty accepted when allowed", action: "", acceptEmpty: true, expected: InteractionActionNone},
		{name: "unknown", action: "poked", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, err := ValidateInteractionAction(tt.action, tt.acceptEmpty)
			if tt.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, action)
		})
	}
}

func TestDispositionAction(t *testing.T) {
	action, ok := ApplicationStatusShortlisted.DispositionAction()
	require.True(t, ok)
	assert.Equal(t, InteractionActionShortlisted, action)

	action, ok = ApplicationStatusHired.DispositionAction()
	require.True(t, ok)
	assert.Equal(t, InteractionActionHired, action)

	// submitted is the initial state, not a hirer disposition
	_, ok = ApplicationStatusSubmitted.DispositionAction()
	assert.False(t, ok)
}

func TestSessionStatusIsTerminal(t *testing.T) {
	assert.True(t, SessionStatusComplete.IsTerminal())
	assert.True(t, SessionStatusSubmitted.IsTerminal())
	assert.False(t, SessionStatusIdle.IsTerminal())
	assert.False(t, SessionStatusAIAnalyzing.IsTerminal())
}

func TestStreamEventStatusTerminal(t *testing.T) {
	assert.True(t, StreamEventComplete.Terminal())
	assert.True(t, StreamEventInsightsComplete.Terminal())
	assert.True(t, StreamEventError.Terminal())
	assert.False(t, StreamEventParsingStarted.Terminal())
	assert.False(t, StreamEventReasoning.Terminal())
}

func TestBatchJobStatusIsTerminal(t *testing.T) {
	assert.True(t, BatchJobStatusCompleted.IsTerminal())
	assert.True(t, BatchJobStatusFailed.IsTerminal())
	assert.False(t, BatchJobStatusQueued.IsTerminal())
	assert.False(t, BatchJobStatusRunning.IsTerminal())
}

func TestParsedCVValidate(t *testing.T) {
	var nilCV *ParsedCV
	require.Error(t, nilCV.Validate())

	require.Error(t, (&ParsedCV{}).Validate())
	require.Error(t, (&ParsedCV{Basics: CVBasics{Name: "   "}}).Validate())

	require.NoError(t, (&ParsedCV{Basics: CVBasics{Name: "Jane Doe"}}).Validate())
}
