package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/types"
)

func TestSessionHappyPath(t *testing.T) {
	sess := New(false)
	assert.Equal(t, types.SessionStatusIdle, sess.Status())

	require.NoError(t, sess.Uploading(42))
	assert.Equal(t, types.SessionStatusUploading, sess.Status())
	assert.Equal(t, int64(42), sess.Snapshot().CVID)

	status, err := sess.Apply(types.StreamEvent{Status: types.StreamEventParsingStarted})
	require.NoError(t, err)
	assert.Equal(t, types.SessionStatusParsing, status)

	parsed := &types.ParsedCV{Basics: types.CVBasics{Name: "Jane Doe"}}
	status, err = sess.Apply(types.StreamEvent{Status: types.StreamEventParsingComplete, Data: parsed})
	require.NoError(t, err)
	assert.Equal(t, types.SessionStatusReviewing, status)
	// payload stored verbatim for the review step
	assert.Equal(t, "Jane Doe", sess.Snapshot().CV.Basics.Name)

	require.NoError(t, sess.ConfirmSent(parsed))
	assert.Equal(t, types.SessionStatusMatching, sess.Status())

	matches := []*types.Match{
		{JobID: 1, JobTitle: "Backend Engineer", MatchScore: 0.91},
		{JobID: 2, JobTitle: "Platform Engineer", MatchScore: 0.84},
	}
	status, err = sess.Apply(types.StreamEvent{Status: types.StreamEventComplete, Matches: matches})
	require.NoError(t, err)
	assert.Equal(t, types.SessionStatusComplete, status)
	assert.Len(t, sess.Snapshot().Matches, 2)
}

func TestSessionPremiumFlow(t *testing.T) {
	sess := New(true)
	require.NoError(t, sess.Uploading(7))

	_, err := sess.Apply(types.StreamEvent{Status: types.StreamEventParsingStarted})
	require.NoError(t, err)
	_, err = sess.Apply(types.StreamEvent{Status: types.StreamEventParsingComplete, Data: &types.ParsedCV{Basics: types.CVBasics{Name: "Jane Doe"}}})
	require.NoError(t, err)
	require.NoError(t, sess.ConfirmSent(sess.Snapshot().CV))

	// premium sessions go to ai_analyzing instead of complete
	status, err := sess.Apply(types.StreamEvent{Status: types.StreamEventComplete, Matches: []*types.Match{{JobID: 1}}})
	require.NoError(t, err)
	assert.Equal(t, types.SessionStatusAIAnalyzing, status)

	// reasoning deltas accumulate into the chain of thought
	_, err = sess.Apply(types.StreamEvent{Status: types.StreamEventReasoning, Delta: "Strong backend "})
	require.NoError(t, err)
	_, err = sess.Apply(types.StreamEvent{Status: types.StreamEventReasoning, Delta: "experience."})
	require.NoError(t, err)

	status, err = sess.Apply(types.StreamEvent{
		Status:   types.StreamEventInsightsComplete,
		Insights: &types.AIInsights{QualityScore: 0.8},
	})
	require.NoError(t, err)
	assert.Equal(t, types.SessionStatusComplete, status)

	insights := sess.Snapshot().Insights
	require.NotNil(t, insights)
	assert.Equal(t, 0.8, insights.QualityScore)
	assert.Equal(t, "Strong backend experience.", insights.ChainOfThought)
}

func TestSessionErrorFromAnyState(t *testing.T) {
	arrange := map[string]func(*Session){
		"uploading": func(s *Session) {
			require.NoError(t, s.Uploading(1))
		},
		"parsing": func(s *Session) {
			require.NoError(t, s.Uploading(1))
			_, err := s.Apply(types.StreamEvent{Status: types.StreamEventParsingStarted})
			require.NoError(t, err)
		},
		"matching": func(s *Session) {
			require.NoError(t, s.Uploading(1))
			_, err := s.Apply(types.StreamEvent{Status: types.StreamEventParsingStarted})
			require.NoError(t, err)
			_, err = s.Apply(types.StreamEvent{Status: types.StreamEventParsingComplete, Data: &types.ParsedCV{Basics: types.CVBasics{Name: "x"}}})
			require.NoError(t, err)
			require.NoError(t, s.ConfirmSent(s.Snapshot().CV))
		},
	}

	for name, setup := range arrange {
		t.Run(name, func(t *testing.T) {
			sess := New(false)
			setup(sess)

			status, err := sess.Apply(types.StreamEvent{Status: types.StreamEventError, Message: "parse failed"})
			require.NoError(t, err)
			assert.Equal(t, types.SessionStatusIdle, status)
			assert.Equal(t, "parse failed", sess.Snapshot().Error)
		})
	}
}

func TestSessionRejectsOutOfOrderEvents(t *testing.T) {
	sess := New(false)
	require.NoError(t, sess.Uploading(1))

	// parsing_complete without parsing_started
	_, err := sess.Apply(types.StreamEvent{Status: types.StreamEventParsingComplete, Data: &types.ParsedCV{}})
	require.Error(t, err)
	assert.Equal(t, types.SessionStatusUploading, sess.Status())

	// complete before confirm
	_, err = sess.Apply(types.StreamEvent{Status: types.StreamEventComplete})
	require.Error(t, err)
}

func TestSessionSubmittedFlow(t *testing.T) {
	sess := New(false)
	require.NoError(t, sess.Uploading(5))
	require.NoError(t, sess.Submitted())
	assert.Equal(t, types.SessionStatusSubmitted, sess.Status())
	assert.True(t, sess.Status().IsTerminal())
}

func TestSessionConfirmOnlyFromReviewing(t *testing.T) {
	sess := New(false)
	err := sess.ConfirmSent(&types.ParsedCV{})
	require.Error(t, err)
}
