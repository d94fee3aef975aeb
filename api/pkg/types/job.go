package types

import "time"

type Job struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title" yaml:"title"`
	Company     string    `json:"company" yaml:"company"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Location    string    `json:"location,omitempty" yaml:"location,omitempty"`
	SalaryRange string    `json:"salary_range,omitempty" yaml:"salary_range,omitempty"`
	Skills      []string  `json:"skills,omitempty" yaml:"skills,omitempty"`
	Owner       string    `json:"owner,omitempty"`
	Created     time.Time `json:"created"`
	Updated     time.Time `json:"updated"`
}

// CreateJobRequest is the hirer-side job posting payload. The same shape is
// accepted from a YAML file by the CLI.
type CreateJobRequest struct {
	Title       string   `json:"title" yaml:"title"`
	Company     string   `json:"company" yaml:"company"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Location    string   `json:"location,omitempty" yaml:"location,omitempty"`
	SalaryRange string   `json:"salary_range,omitempty" yaml:"salary_range,omitempty"`
	Skills      []string `json:"skills,omitempty" yaml:"skills,omitempty"`
}

// Application is one candidate on a job's triage board.
type Application struct {
	ID         int64             `json:"id"`
	JobID      int64             `json:"job_id"`
	CVID       int64             `json:"cv_id"`
	Candidate  string            `json:"candidate"`
	Status     ApplicationStatus `json:"status"`
	MatchScore float64           `json:"match_score,omitempty"`
	Created    time.Time         `json:"created"`
	Updated    time.Time         `json:"updated"`
}

type UpdateApplicationStatusRequest struct {
	Status ApplicationStatus `json:"status"`
}
