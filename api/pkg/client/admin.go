package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/types"
)

// Admin endpoints are read-only operational dashboards plus the batch
// trigger/check pair. Authorization is enforced server side, the client
// just forwards the bearer token.

func (c *CVMatchClient) AdminHealth(ctx context.Context) (*types.HealthReport, error) {
	if err := c.requireToken(); err != nil {
		return nil, err
	}

	var report types.HealthReport
	err := c.makeRequest(ctx, http.MethodGet, "/admin/health", nil, &report)
	if err != nil {
		return nil, err
	}

	return &report, nil
}

func (c *CVMatchClient) AdminEvaluation(ctx context.Context) (*types.EvaluationReport, error) {
	if err := c.requireToken(); err != nil {
		return nil, err
	}

	var report types.EvaluationReport
	err := c.makeRequest(ctx, http.MethodGet, "/admin/evaluation", nil, &report)
	if err != nil {
		return nil, err
	}

	return &report, nil
}

func (c *CVMatchClient) AdminPerformance(ctx context.Context) (*types.PerformanceReport, error) {
	if err := c.requireToken(); err != nil {
		return nil, err
	}

	var report types.PerformanceReport
	err := c.makeRequest(ctx, http.MethodGet, "/admin/performance", nil, &report)
	if err != nil {
		return nil, err
	}

	return &report, nil
}

func (c *CVMatchClient) AdminListBatches(ctx context.Context) ([]*types.BatchJob, error) {
	if err := c.requireToken(); err != nil {
		return nil, err
	}

	var jobs []*types.BatchJob
	err := c.makeRequest(ctx, http.MethodGet, "/admin/batches", nil, &jobs)
	if err != nil {
		return nil, err
	}

	return jobs, nil
}

// AdminTriggerBatch starts a named batch job (for example "recompute_matches"
// or "refresh_embeddings") and returns it in its queued state.
func (c *CVMatchClient) AdminTriggerBatch(ctx context.Context, jobType string) (*types.BatchJob, error) {
	if err := c.requireToken(); err != nil {
		return nil, err
	}
	if jobType == "" {
		return nil, fmt.Errorf("batch job type is required")
	}

	bts, err := json.Marshal(&types.BatchTriggerRequest{Type: jobType})
	if err != nil {
		return nil, err
	}

	var triggerResp types.BatchTriggerResponse
	err = c.makeRequest(ctx, http.MethodPost, "/admin/batches/trigger", bytes.NewBuffer(bts), &triggerResp)
	if err != nil {
		return nil, err
	}

	return triggerResp.Job, nil
}

// AdminCheckBatches asks the backend to reconcile every non-terminal batch
// job and reports their refreshed statuses.
func (c *CVMatchClient) AdminCheckBatches(ctx context.Context) (*types.BatchCheckResponse, error) {
	if err := c.requireToken(); err != nil {
		return nil, err
	}

	var checkResp types.BatchCheckResponse
	err := c.makeRequest(ctx, http.MethodPost, "/admin/batches/check", nil, &checkResp)
	if err != nil {
		return nil, err
	}

	return &checkResp, nil
}
