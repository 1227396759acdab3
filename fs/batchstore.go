package fs

import (
	"context"
	"os"
	"path/filepath"

	web2llm "github.com/yamasammy/Web2LLM"
)

// Ensure BatchStore implements web2llm.ResultWriter at compile time.
var _ web2llm.ResultWriter = (*BatchStore)(nil)

// BatchStore writes a batch of results with atomic replace semantics.
// Results are written to a temporary directory and moved into place on
// Commit, so an interrupted batch never leaves a half-written output
// directory behind.
type BatchStore struct {
	baseDir string
	name    string
}

// NewBatchStore creates a new BatchStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewBatchStore(baseDir, name string) *BatchStore {
	return &BatchStore{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *BatchStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *BatchStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes one result into the staging directory. Results flagged with
// RawHTMLRetained also get their cleaned HTML written as a sibling file.
func (s *BatchStore) Save(ctx context.Context, result *web2llm.Result, cleanHTML string) error {
	w := NewWriter(s.tempDir())

	if _, err := w.WriteMarkdown(ctx, result, ""); err != nil {
		return err
	}
	if result.RawHTMLRetained && cleanHTML != "" {
		if _, err := w.WriteHTML(ctx, result, cleanHTML, ""); err != nil {
			return err
		}
	}
	return nil
}

// WriteMarkdown stages the markdown document. Implements web2llm.ResultWriter
// so a pipeline can persist directly into the staging directory.
func (s *BatchStore) WriteMarkdown(ctx context.Context, result *web2llm.Result, name string) (string, error) {
	return NewWriter(s.tempDir()).WriteMarkdown(ctx, result, name)
}

// WriteHTML stages the cleaned HTML sibling.
func (s *BatchStore) WriteHTML(ctx context.Context, result *web2llm.Result, cleanHTML, name string) (string, error) {
	return NewWriter(s.tempDir()).WriteHTML(ctx, result, cleanHTML, name)
}

// Commit atomically replaces the final directory with the staged one.
func (s *BatchStore) Commit() error {
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}
	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards the staged directory.
func (s *BatchStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
