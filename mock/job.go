package mock

import (
	"context"

	web2llm "github.com/yamasammy/Web2LLM"
)

var _ web2llm.JobService = (*JobService)(nil)

// JobService is a mock implementation of web2llm.JobService.
type JobService struct {
	CreateJobFn   func(ctx context.Context, job *web2llm.BatchJob) error
	FindJobByIDFn func(ctx context.Context, id string) (*web2llm.BatchJob, error)
	UpdateJobFn   func(ctx context.Context, job *web2llm.BatchJob) error
}

func (s *JobService) CreateJob(ctx context.Context, job *web2llm.BatchJob) error {
	return s.CreateJobFn(ctx, job)
}

func (s *JobService) FindJobByID(ctx context.Context, id string) (*web2llm.BatchJob, error) {
	return s.FindJobByIDFn(ctx, id)
}

func (s *JobService) UpdateJob(ctx context.Context, job *web2llm.BatchJob) error {
	return s.UpdateJobFn(ctx, job)
}
