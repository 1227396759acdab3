package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	web2llm "github.com/yamasammy/Web2LLM"
)

// Ensure JobService implements web2llm.JobService at compile time.
var _ web2llm.JobService = (*JobService)(nil)

// JobService manages batch job records in SQLite.
type JobService struct {
	db *DB
}

// NewJobService creates a new JobService.
func NewJobService(db *DB) *JobService {
	return &JobService{db: db}
}

// CreateJob persists a new job, assigning its ID and timestamps.
func (s *JobService) CreateJob(ctx context.Context, job *web2llm.BatchJob) error {
	if job.Status == "" {
		job.Status = web2llm.JobStatusPending
	}
	if err := job.Validate(); err != nil {
		return err
	}

	job.ID = uuid.New().String()
	// RFC3339 storage keeps second precision, so truncate up front to make
	// the in-memory job equal to what a later read returns.
	now := time.Now().UTC().Truncate(time.Second)
	job.CreatedAt = now
	job.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO jobs (id, status, total, succeeded, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, job.ID, job.Status, job.Total, job.Succeeded,
		job.CreatedAt.Format(time.RFC3339), job.UpdatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to insert job: %w", err)
	}

	if err := s.replaceResults(ctx, job); err != nil {
		return err
	}

	return nil
}

// FindJobByID retrieves a job and its attached results.
func (s *JobService) FindJobByID(ctx context.Context, id string) (*web2llm.BatchJob, error) {
	var job web2llm.BatchJob
	var createdAt, updatedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, status, total, succeeded, created_at, updated_at
		FROM jobs
		WHERE id = ?
	`, id).Scan(&job.ID, &job.Status, &job.Total, &job.Succeeded, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, web2llm.Errorf(web2llm.ENOTFOUND, "job not found: %s", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query job: %w", err)
	}

	if job.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if job.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("failed to parse updated_at: %w", err)
	}

	if job.Results, err = s.findResults(ctx, job.ID); err != nil {
		return nil, err
	}

	return &job, nil
}

// UpdateJob updates a job's status and progress and replaces its results.
func (s *JobService) UpdateJob(ctx context.Context, job *web2llm.BatchJob) error {
	if err := job.Validate(); err != nil {
		return err
	}

	job.UpdatedAt = time.Now().UTC().Truncate(time.Second)

	res, err := s.db.ExecContext(ctx, `
		UPDATE jobs
		SET status = ?, succeeded = ?, updated_at = ?
		WHERE id = ?
	`, job.Status, job.Succeeded, job.UpdatedAt.Format(time.RFC3339), job.ID)
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return web2llm.Errorf(web2llm.ENOTFOUND, "job not found: %s", job.ID)
	}

	return s.replaceResults(ctx, job)
}

// replaceResults swaps the job's stored results for the ones attached to it.
func (s *JobService) replaceResults(ctx context.Context, job *web2llm.BatchJob) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM job_results WHERE job_id = ?`, job.ID); err != nil {
		return fmt.Errorf("failed to clear job results: %w", err)
	}

	for i, r := range job.Results {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO job_results (job_id, position, url, title, markdown, content_hash, raw_html_retained, success, error)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, job.ID, i, r.URL, r.Title, r.Markdown, r.ContentHash, r.RawHTMLRetained, r.Success, r.Error)
		if err != nil {
			return fmt.Errorf("failed to insert job result: %w", err)
		}
	}

	return nil
}

// findResults loads a job's results ordered by their batch position.
func (s *JobService) findResults(ctx context.Context, jobID string) ([]*web2llm.Result, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT url, title, markdown, content_hash, raw_html_retained, success, error
		FROM job_results
		WHERE job_id = ?
		ORDER BY position
	`, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to query job results: %w", err)
	}
	defer rows.Close()

	var results []*web2llm.Result
	for rows.Next() {
		var r web2llm.Result
		if err := rows.Scan(&r.URL, &r.Title, &r.Markdown, &r.ContentHash, &r.RawHTMLRetained, &r.Success, &r.Error); err != nil {
			return nil, fmt.Errorf("failed to scan job result: %w", err)
		}
		results = append(results, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate job results: %w", err)
	}

	return results, nil
}
