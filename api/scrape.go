package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	web2llm "github.com/yamasammy/Web2LLM"
	"github.com/yamasammy/Web2LLM/scrape"
)

// maxSyncBatch is the largest batch processed synchronously. Bigger batches
// become background jobs the client polls by ID.
const maxSyncBatch = 10

type scrapeRequest struct {
	URL    string `json:"url"`
	Output string `json:"output"`
}

type batchRequest struct {
	URLs []string `json:"urls"`
	Save bool     `json:"save"`
}

// handleScrape handles POST /api/scrape.
func (s *Server) handleScrape(c *gin.Context) {
	var req scrapeRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}
	if req.URL == "" {
		s.error(c, web2llm.Errorf(web2llm.EINVALID, "url is required"))
		return
	}

	result := s.Pipeline.ProcessURL(c.Request.Context(), req.URL, scrape.Options{})
	c.JSON(http.StatusOK, result)
}

// handleScrapeSave handles POST /api/scrape/save.
func (s *Server) handleScrapeSave(c *gin.Context) {
	var req scrapeRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}
	if req.URL == "" {
		s.error(c, web2llm.Errorf(web2llm.EINVALID, "url is required"))
		return
	}

	result := s.Pipeline.ProcessURL(c.Request.Context(), req.URL, scrape.Options{
		Save:       true,
		OutputName: req.Output,
	})
	c.JSON(http.StatusOK, result)
}

// handleScrapeMultiple handles POST /api/scrape/multiple. Small batches are
// processed synchronously; larger ones return a job ID for polling.
func (s *Server) handleScrapeMultiple(c *gin.Context) {
	var req batchRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}
	if len(req.URLs) == 0 {
		s.error(c, web2llm.Errorf(web2llm.EINVALID, "urls is required"))
		return
	}

	opts := scrape.Options{Save: req.Save}

	if len(req.URLs) <= maxSyncBatch {
		batch := s.Pipeline.ProcessBatch(c.Request.Context(), req.URLs, opts)
		c.JSON(http.StatusOK, batch)
		return
	}

	if s.Jobs == nil {
		s.error(c, web2llm.Errorf(web2llm.EUNAVAILABLE, "Background jobs are not configured; submit at most %d URLs.", maxSyncBatch))
		return
	}

	job := &web2llm.BatchJob{
		Status: web2llm.JobStatusPending,
		Total:  len(req.URLs),
	}
	if err := s.Jobs.CreateJob(c.Request.Context(), job); err != nil {
		s.error(c, err)
		return
	}

	go s.runJob(job, req.URLs, opts)

	c.JSON(http.StatusAccepted, gin.H{
		"jobId":  job.ID,
		"status": web2llm.JobStatusPending,
		"total":  len(req.URLs),
	})
}

// runJob processes a large batch in the background, recording progress in the
// job store. It is detached from the request context so the batch outlives
// the HTTP request.
func (s *Server) runJob(job *web2llm.BatchJob, urls []string, opts scrape.Options) {
	ctx := context.Background()

	job.Status = web2llm.JobStatusRunning
	if err := s.Jobs.UpdateJob(ctx, job); err != nil {
		s.Logger.Error("job update failed", "jobId", job.ID, "err", err)
	}

	batch := s.Pipeline.ProcessBatch(ctx, urls, opts)

	job.Status = web2llm.JobStatusDone
	job.Succeeded = batch.Succeeded
	job.Results = batch.Results
	if err := s.Jobs.UpdateJob(ctx, job); err != nil {
		s.Logger.Error("job update failed", "jobId", job.ID, "err", err)
	}
}

// handleJobStatus handles GET /api/jobs/:id.
func (s *Server) handleJobStatus(c *gin.Context) {
	if s.Jobs == nil {
		s.error(c, web2llm.Errorf(web2llm.ENOTFOUND, "Background jobs are not configured."))
		return
	}

	job, err := s.Jobs.FindJobByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.error(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}
