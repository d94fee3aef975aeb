package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/config"
	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/credstore"
	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/system"
	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/types"
)

type Client interface {
	UploadCV(ctx context.Context, filename string, file io.Reader, premium bool) (*types.UploadResponse, error)

	GetRecommendations(ctx context.Context) (*types.RecommendationSet, error)
	LogInteraction(ctx context.Context, req *types.InteractionRequest) (*types.InteractionResponse, error)

	ListJobs(ctx context.Context, f *JobFilter) ([]*types.Job, error)
	GetJob(ctx context.Context, jobID int64) (*types.Job, error)
	CreateJob(ctx context.Context, req *types.CreateJobRequest) (*types.Job, error)
	ListApplications(ctx context.Context, jobID int64) ([]*types.Application, error)
	UpdateApplicationStatus(ctx context.Context, jobID, applicationID int64, status types.ApplicationStatus) (*types.Application, error)

	Register(ctx context.Context, req *types.RegisterRequest) (*types.RegisterResponse, error)
	Token(ctx context.Context, username, password string) (*types.TokenResponse, error)

	AdminHealth(ctx context.Context) (*types.HealthReport, error)
	AdminEvaluation(ctx context.Context) (*types.EvaluationReport, error)
	AdminPerformance(ctx context.Context) (*types.PerformanceReport, error)
	AdminListBatches(ctx context.Context) ([]*types.BatchJob, error)
	AdminTriggerBatch(ctx context.Context, jobType string) (*types.BatchJob, error)
	AdminCheckBatches(ctx context.Context) (*types.BatchCheckResponse, error)
}

// CVMatchClient is the client for the cvmatch api
type CVMatchClient struct {
	httpClient     *http.Client
	options        system.ClientOptions
	requestTimeout time.Duration
}

const (
	DefaultURL = "http://localhost:8000"

	defaultRequestTimeout = 30 * time.Second
	defaultHTTPRetries    = 3
)

func NewClientFromEnv() (*CVMatchClient, error) {
	cfg, err := config.LoadCliConfig()
	if err != nil {
		return nil, err
	}

	token := cfg.Token
	if token == "" {
		// fall back to the credentials written by `cvmatch login`
		creds, err := credstore.Load()
		if err != nil {
			return nil, err
		}
		token = creds.Token
	}

	c, err := NewClient(cfg.URL, token)
	if err != nil {
		return nil, err
	}
	c.httpClient = system.NewRetryClient(cfg.HTTPRetries, cfg.TLSSkipVerify).StandardClient()
	if cfg.RequestTimeout > 0 {
		c.requestTimeout = cfg.RequestTimeout
	}
	return c, nil
}

func NewClient(url, token string) (*CVMatchClient, error) {
	if url == "" {
		url = DefaultURL
	}

	return &CVMatchClient{
		httpClient:     system.NewRetryClient(defaultHTTPRetries, false).StandardClient(),
		options:        system.ClientOptions{Host: url, Token: token},
		requestTimeout: defaultRequestTimeout,
	}, nil
}

// Options exposes the host/token pair so stream dialers can reuse them.
func (c *CVMatchClient) Options() system.ClientOptions {
	return c.options
}

func (c *CVMatchClient) makeRequest(ctx context.Context, method, path string, body io.Reader, v interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, system.URL(c.options, path), body)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if err := system.AddAuthHeaders(req, c.options.Token); err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		bts, err := io.ReadAll(resp.Body)
		if err != nil {
			return &system.HTTPError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("status code %d", resp.StatusCode)}
		}
		return system.NewHTTPResponseError(resp.StatusCode, bts)
	}

	if v != nil {
		return json.NewDecoder(resp.Body).Decode(v)
	}

	return nil
}

// ErrNotAuthenticated is returned by calls that require a token before any
// request is made.
var ErrNotAuthenticated = errors.New("not authenticated, run `cvmatch login` or set CVMATCH_TOKEN")

func (c *CVMatchClient) requireToken() error {
	if c.options.Token == "" {
		return ErrNotAuthenticated
	}
	return nil
}
