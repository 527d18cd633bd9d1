package worker

import (
	"context"

	"github.com/ppiankov/claimready/internal/model"
)

// Assessor defines the interface for assessing one claim document.
type Assessor interface {
	AssessFile(ctx context.Context, path string) (model.Assessment, error)
}

// AssessJob assesses a single claim document.
type AssessJob struct {
	Path     string
	Assessor Assessor
}

// Execute runs the assessment job.
func (j *AssessJob) Execute(ctx context.Context) Result {
	assessment, err := j.Assessor.AssessFile(ctx, j.Path)
	if err != nil {
		return &AssessResult{Path: j.Path, Error: err}
	}
	return &AssessResult{Path: j.Path, Assessment: &assessment}
}

// AssessResult is the outcome of one assessment job.
type AssessResult struct {
	Path       string
	Assessment *model.Assessment
	Error      error
}

// GetError returns the error from the assessment result.
func (r *AssessResult) GetError() error {
	return r.Error
}

// BatchProcessor assesses multiple claim documents concurrently.
type BatchProcessor struct {
	assessor    Assessor
	concurrency int
}

// NewBatchProcessor creates a new batch processor.
func NewBatchProcessor(assessor Assessor, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		assessor:    assessor,
		concurrency: concurrency,
	}
}

// ProcessFiles assesses the given claim documents concurrently and returns
// one result per input, in completion order.
func (b *BatchProcessor) ProcessFiles(ctx context.Context, paths []string) []*AssessResult {
	if len(paths) == 0 {
		return []*AssessResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			pool.Shutdown()
		case <-done:
		}
	}()

	for _, path := range paths {
		pool.Submit(&AssessJob{Path: path, Assessor: b.assessor})
	}

	var out []*AssessResult
	for _, r := range pool.Wait() {
		if ar, ok := r.(*AssessResult); ok {
			out = append(out, ar)
		}
	}
	return out
}
