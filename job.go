package web2llm

import (
	"context"
	"time"
)

// Batch job statuses.
const (
	JobStatusPending = "pending"
	JobStatusRunning = "running"
	JobStatusDone    = "done"
)

// BatchJob tracks an asynchronous batch run submitted through the API. Large
// batches are processed in the background; clients poll the job by ID.
type BatchJob struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	Total     int       `json:"total"`
	Succeeded int       `json:"success"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Results holds the per-URL outcomes once the job has finished.
	Results []*Result `json:"results,omitempty"`
}

// Validate returns an error if the job contains invalid fields.
func (j *BatchJob) Validate() error {
	if j.Total <= 0 {
		return Errorf(EINVALID, "job requires at least one URL")
	}
	switch j.Status {
	case JobStatusPending, JobStatusRunning, JobStatusDone:
	default:
		return Errorf(EINVALID, "invalid job status %q", j.Status)
	}
	return nil
}

// JobService manages batch job records.
type JobService interface {
	// CreateJob persists a new job. The service assigns ID, CreatedAt and
	// UpdatedAt.
	CreateJob(ctx context.Context, job *BatchJob) error

	// FindJobByID retrieves a job and its attached results.
	// Returns ENOTFOUND if the job does not exist.
	FindJobByID(ctx context.Context, id string) (*BatchJob, error)

	// UpdateJob updates a job's status and progress and replaces its
	// attached results. Returns ENOTFOUND if the job does not exist.
	UpdateJob(ctx context.Context, job *BatchJob) error
}
