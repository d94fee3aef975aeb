package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/types"
)

type JobFilter struct {
	Company  string
	Location string
	Offset   int
	Limit    int
}

func (c *CVMatchClient) ListJobs(ctx context.Context, f *JobFilter) ([]*types.Job, error) {
	path := "/jobs"

	if f != nil {
		query := url.Values{}
		if f.Company != "" {
			query.Add("company", f.Company)
		}
		if f.Location != "" {
			query.Add("location", f.Location)
		}
		if f.Offset > 0 {
			query.Add("offset", strconv.Itoa(f.Offset))
		}
		if f.Limit > 0 {
			query.Add("limit", strconv.Itoa(f.Limit))
		}
		if len(query) > 0 {
			path += "?" + query.Encode()
		}
	}

	var jobs []*types.Job
	err := c.makeRequest(ctx, http.MethodGet, path, nil, &jobs)
	if err != nil {
		return nil, err
	}

	return jobs, nil
}

func (c *CVMatchClient) GetJob(ctx context.Context, jobID int64) (*types.Job, error) {
	var job types.Job

	err := c.makeRequest(ctx, http.MethodGet, fmt.Sprintf("/jobs/%d", jobID), nil, &job)
	if err != nil {
		return nil, err
	}

	return &job, nil
}

func (c *CVMatchClient) CreateJob(ctx context.Context, req *types.CreateJobRequest) (*types.Job, error) {
	if err := c.requireToken(); err != nil {
		return nil, err
	}
	if req.Title == "" {
		return nil, fmt.Errorf("job title is required")
	}

	bts, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	var created types.Job
	err = c.makeRequest(ctx, http.MethodPost, "/jobs", bytes.NewBuffer(bts), &created)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (c *CVMatchClient) ListApplications(ctx context.Context, jobID int64) ([]*types.Application, error) {
	if err := c.requireToken(); err != nil {
		return nil, err
	}

	var applications []*types.Application
	err := c.makeRequest(ctx, http.MethodGet, fmt.Sprintf("/jobs/%d/applications", jobID), nil, &applications)
	if err != nil {
		return nil, err
	}

	return applications, nil
}

// UpdateApplicationStatus moves an applicant through the triage pipeline.
// The matching disposition interaction is logged by the caller, not here -
// the endpoint only owns the status transition.
func (c *CVMatchClient) UpdateApplicationStatus(ctx context.Context, jobID, applicationID int64, status types.ApplicationStatus) (*types.Application, error) {
	if err := c.requireToken(); err != nil {
		return nil, err
	}

	if _, err := types.ValidateApplicationStatus(string(status), false); err != nil {
		return nil, err
	}

	bts, err := json.Marshal(&types.UpdateApplicationStatusRequest{Status: status})
	if err != nil {
		return nil, err
	}

	var updated types.Application
	err = c.makeRequest(ctx, http.MethodPost, fmt.Sprintf("/jobs/%d/applications/%d/status", jobID, applicationID), bytes.NewBuffer(bts), &updated)
	if err != nil {
		return nil, err
	}

	return &updated, nil
}
