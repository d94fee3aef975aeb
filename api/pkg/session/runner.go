package session

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"

	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/client"
	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/stream"
	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/system"
	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/types"
)

// API is the slice of the platform client the runner needs.
type API interface {
	UploadCV(ctx context.Context, filename string, file io.Reader, premium bool) (*types.UploadResponse, error)
	LogInteraction(ctx context.Context, req *types.InteractionRequest) (*types.InteractionResponse, error)
}

// EventStream is one open candidate websocket, satisfied by stream.Stream.
type EventStream interface {
	Events() <-chan types.StreamEvent
	Send(v interface{}) error
	Close() error
	Err() error
}

// Dialer opens event streams against the backend.
type Dialer interface {
	Dial(ctx context.Context, path string) (EventStream, error)
}

// ReviewFunc lets the caller edit the parsed CV before it is confirmed.
// A nil ReviewFunc confirms the parsed CV unchanged.
type ReviewFunc func(cv *types.ParsedCV) (*types.ParsedCV, error)

// StageFunc observes status transitions, used by the CLI to print progress.
type StageFunc func(status types.SessionStatus)

const viewedLogConcurrency = 5

// Runner drives one upload attempt at a time through the processing flow.
// Exactly one attempt may be active per runner; this is the CLI analogue
// of one session per browser tab.
type Runner struct {
	api     API
	dialer  Dialer
	onStage StageFunc

	active atomic.Bool
}

func NewRunner(api API, dialer Dialer) *Runner {
	return &Runner{
		api:    api,
		dialer: dialer,
	}
}

// NewRunnerFromClient wires a runner to a real backend using the client's
// host and token for the websocket dials.
func NewRunnerFromClient(c *client.CVMatchClient, idleTimeout time.Duration) *Runner {
	return NewRunner(c, &streamDialer{dialer: stream.NewDialer(c.Options(), idleTimeout)})
}

type streamDialer struct {
	dialer *stream.Dialer
}

func (d *streamDialer) Dial(ctx context.Context, path string) (EventStream, error) {
	return d.dialer.Dial(ctx, path)
}

// OnStage registers a transition observer. Must be set before Submit or
// Process is called.
func (r *Runner) OnStage(fn StageFunc) {
	r.onStage = fn
}

func (r *Runner) stage(status types.SessionStatus) {
	if r.onStage != nil {
		r.onStage(status)
	}
}

func (r *Runner) begin() error {
	if !r.active.CompareAndSwap(false, true) {
		return fmt.Errorf("an upload attempt is already in progress")
	}
	return nil
}

// Submit runs the non-premium batch flow: validate, upload, done. No
// websocket is opened; matching happens server side in the next batch run
// and results land in /recommendations.
func (r *Runner) Submit(ctx context.Context, filename string, file io.Reader) (*Session, error) {
	if err := r.begin(); err != nil {
		return nil, err
	}
	defer r.active.Store(false)

	sess := New(false)

	uploadResp, err := r.api.UploadCV(ctx, filename, file, false)
	if err != nil {
		sess.Fail(err.Error())
		return sess, err
	}
	if err := sess.Uploading(uploadResp.CVID); err != nil {
		return sess, err
	}
	r.stage(types.SessionStatusUploading)

	if err := sess.Submitted(); err != nil {
		return sess, err
	}
	r.stage(types.SessionStatusSubmitted)

	log.Info().
		Str("session_id", sess.Snapshot().ID).
		Int64("cv_id", uploadResp.CVID).
		Msg("cv submitted for batch processing")

	return sess, nil
}

// Process runs the interactive flow: upload, consume the candidate stream,
// review and confirm the parsed CV, collect matches, and for premium
// attempts consume the explain stream for AI insights. Every opened stream
// is closed before Process returns, on success and on every failure path.
func (r *Runner) Process(ctx context.Context, filename string, file io.Reader, premium bool, review ReviewFunc) (*Session, error) {
	if err := r.begin(); err != nil {
		return nil, err
	}
	defer r.active.Store(false)

	sess := New(premium)

	uploadResp, err := r.api.UploadCV(ctx, filename, file, premium)
	if err != nil {
		sess.Fail(err.Error())
		return sess, err
	}
	if err := sess.Uploading(uploadResp.CVID); err != nil {
		return sess, err
	}
	r.stage(types.SessionStatusUploading)

	path := stream.CandidatePath(uploadResp.CVID)
	if premium {
		path = stream.AnalyzePath(uploadResp.CVID)
	}

	s, err := r.dialer.Dial(ctx, path)
	if err != nil {
		sess.Fail(err.Error())
		return sess, err
	}
	defer s.Close()

	if err := r.consume(ctx, sess, s, review); err != nil {
		return sess, err
	}

	// the processing stream ended; premium attempts continue on the
	// explain stream, everything else is complete
	if sess.Status() == types.SessionStatusAIAnalyzing {
		if err := r.explain(ctx, sess, uploadResp.CVID); err != nil {
			return sess, err
		}
	}

	if sess.Status() == types.SessionStatusComplete {
		r.logViewed(ctx, sess)
	}

	return sess, nil
}

// consume pumps one stream's events into the session until a terminal
// event or a stream failure.
func (r *Runner) consume(ctx context.Context, sess *Session, s EventStream, review ReviewFunc) error {
	for {
		select {
		case <-ctx.Done():
			sess.Fail(ctx.Err().Error())
			return ctx.Err()

		case event, ok := <-s.Events():
			if !ok {
				if err := s.Err(); err != nil {
					sess.Fail(err.Error())
					return err
				}
				return nil
			}

			status, err := sess.Apply(event)
			if err != nil {
				log.Warn().Err(err).Str("event", string(event.Status)).Msg("ignoring out-of-order stream event")
				continue
			}
			r.stage(status)

			if event.Status == types.StreamEventError {
				return fmt.Errorf("processing failed: %s", event.Message)
			}

			if status == types.SessionStatusReviewing {
				if err := r.confirm(sess, s, review); err != nil {
					sess.Fail(err.Error())
					return err
				}
				r.stage(types.SessionStatusMatching)
			}
		}
	}
}

func (r *Runner) confirm(sess *Session, s EventStream, review ReviewFunc) error {
	cv := sess.Snapshot().CV

	if review != nil {
		edited, err := review(cv)
		if err != nil {
			return fmt.Errorf("review failed: %w", err)
		}
		cv = edited
	}

	if err := cv.Validate(); err != nil {
		return err
	}

	if err := s.Send(&types.ConfirmMessage{Action: types.ConfirmAction, Data: cv}); err != nil {
		return fmt.Errorf("failed to send confirmation: %w", err)
	}

	return sess.ConfirmSent(cv)
}

// explain consumes the premium insights stream: reasoning deltas
// accumulate into the chain of thought until insights_complete.
func (r *Runner) explain(ctx context.Context, sess *Session, cvID int64) error {
	s, err := r.dialer.Dial(ctx, stream.ExplainPath(cvID))
	if err != nil {
		sess.Fail(err.Error())
		return err
	}
	defer s.Close()

	return r.consume(ctx, sess, s, nil)
}

// logViewed fires one viewed interaction per returned match. Fire and
// forget: failures are logged and never fail the completed session.
func (r *Runner) logViewed(ctx context.Context, sess *Session) {
	snapshot := sess.Snapshot()

	p := pool.New().WithMaxGoroutines(viewedLogConcurrency)
	for _, match := range snapshot.Matches {
		match := match
		p.Go(func() {
			_, err := r.api.LogInteraction(ctx, &types.InteractionRequest{
				JobID:    match.JobID,
				CVID:     snapshot.CVID,
				Action:   types.InteractionActionViewed,
				ClientID: system.GenerateUUID(),
			})
			if err != nil {
				log.Warn().Err(err).Int64("job_id", match.JobID).Msg("failed to log viewed interaction")
			}
		})
	}
	p.Wait()
}
