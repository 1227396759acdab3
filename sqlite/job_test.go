package sqlite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	web2llm "github.com/yamasammy/Web2LLM"
	"github.com/yamasammy/Web2LLM/sqlite"
)

func newTestDB(t *testing.T) *sqlite.DB {
	t.Helper()

	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func TestJobService_CreateJob(t *testing.T) {
	t.Parallel()

	t.Run("assigns ID and timestamps", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewJobService(newTestDB(t))

		job := &web2llm.BatchJob{Status: web2llm.JobStatusPending, Total: 25}
		require.NoError(t, s.CreateJob(context.Background(), job))

		assert.NotEmpty(t, job.ID)
		assert.False(t, job.CreatedAt.IsZero())
		assert.Equal(t, job.CreatedAt, job.UpdatedAt)
	})

	t.Run("defaults status to pending", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewJobService(newTestDB(t))

		job := &web2llm.BatchJob{Total: 3}
		require.NoError(t, s.CreateJob(context.Background(), job))
		assert.Equal(t, web2llm.JobStatusPending, job.Status)
	})

	t.Run("rejects invalid jobs", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewJobService(newTestDB(t))

		err := s.CreateJob(context.Background(), &web2llm.BatchJob{Status: web2llm.JobStatusPending})
		require.Error(t, err)
		assert.Equal(t, web2llm.EINVALID, web2llm.ErrorCode(err))
	})
}

func TestJobService_FindJobByID(t *testing.T) {
	t.Parallel()

	t.Run("round-trips a job with results", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewJobService(newTestDB(t))
		ctx := context.Background()

		job := &web2llm.BatchJob{
			Status:    web2llm.JobStatusDone,
			Total:     2,
			Succeeded: 1,
			Results: []*web2llm.Result{
				{
					URL:         "https://example.com/a",
					Title:       "First",
					Markdown:    "# First",
					ContentHash: "abc123",
					Success:     true,
				},
				{
					URL:             "https://example.com/b",
					RawHTMLRetained: true,
					Success:         false,
					Error:           "HTTP 404",
				},
			},
		}
		require.NoError(t, s.CreateJob(ctx, job))

		got, err := s.FindJobByID(ctx, job.ID)
		require.NoError(t, err)

		assert.Equal(t, job.ID, got.ID)
		assert.Equal(t, web2llm.JobStatusDone, got.Status)
		assert.Equal(t, 2, got.Total)
		assert.Equal(t, 1, got.Succeeded)
		assert.Equal(t, job.CreatedAt, got.CreatedAt)

		require.Len(t, got.Results, 2)
		assert.Equal(t, "https://example.com/a", got.Results[0].URL)
		assert.Equal(t, "First", got.Results[0].Title)
		assert.Equal(t, "# First", got.Results[0].Markdown)
		assert.Equal(t, "abc123", got.Results[0].ContentHash)
		assert.True(t, got.Results[0].Success)
		assert.Equal(t, "https://example.com/b", got.Results[1].URL)
		assert.True(t, got.Results[1].RawHTMLRetained)
		assert.Equal(t, "HTTP 404", got.Results[1].Error)
	})

	t.Run("returns ENOTFOUND for unknown ID", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewJobService(newTestDB(t))

		_, err := s.FindJobByID(context.Background(), "missing")
		require.Error(t, err)
		assert.Equal(t, web2llm.ENOTFOUND, web2llm.ErrorCode(err))
	})
}

func TestJobService_UpdateJob(t *testing.T) {
	t.Parallel()

	t.Run("updates status, progress and results", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewJobService(newTestDB(t))
		ctx := context.Background()

		job := &web2llm.BatchJob{Status: web2llm.JobStatusPending, Total: 2}
		require.NoError(t, s.CreateJob(ctx, job))

		job.Status = web2llm.JobStatusDone
		job.Succeeded = 2
		job.Results = []*web2llm.Result{
			{URL: "https://example.com/a", Markdown: "a", Success: true},
			{URL: "https://example.com/b", Markdown: "b", Success: true},
		}
		require.NoError(t, s.UpdateJob(ctx, job))
		assert.True(t, job.UpdatedAt.After(job.CreatedAt) || job.UpdatedAt.Equal(job.CreatedAt))

		got, err := s.FindJobByID(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, web2llm.JobStatusDone, got.Status)
		assert.Equal(t, 2, got.Succeeded)
		require.Len(t, got.Results, 2)
		assert.Equal(t, "https://example.com/b", got.Results[1].URL)
	})

	t.Run("replaces previously attached results", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewJobService(newTestDB(t))
		ctx := context.Background()

		job := &web2llm.BatchJob{
			Status: web2llm.JobStatusRunning,
			Total:  1,
			Results: []*web2llm.Result{
				{URL: "https://example.com/old", Error: "pending"},
			},
		}
		require.NoError(t, s.CreateJob(ctx, job))

		job.Status = web2llm.JobStatusDone
		job.Succeeded = 1
		job.Results = []*web2llm.Result{
			{URL: "https://example.com/new", Markdown: "done", Success: true},
		}
		require.NoError(t, s.UpdateJob(ctx, job))

		got, err := s.FindJobByID(ctx, job.ID)
		require.NoError(t, err)
		require.Len(t, got.Results, 1)
		assert.Equal(t, "https://example.com/new", got.Results[0].URL)
	})

	t.Run("returns ENOTFOUND for unknown job", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewJobService(newTestDB(t))

		err := s.UpdateJob(context.Background(), &web2llm.BatchJob{
			ID:     "missing",
			Status: web2llm.JobStatusDone,
			Total:  1,
		})
		require.Error(t, err)
		assert.Equal(t, web2llm.ENOTFOUND, web2llm.ErrorCode(err))
	})
}
