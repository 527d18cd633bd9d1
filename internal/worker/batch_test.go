package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ppiankov/claimready/internal/model"
)

// MockAssessor implements Assessor
type MockAssessor struct {
	ShouldError bool
}

func (m *MockAssessor) AssessFile(ctx context.Context, path string) (model.Assessment, error) {
	time.Sleep(10 * time.Millisecond) // Simulate work
	if m.ShouldError {
		return model.Assessment{}, errors.New("assess error")
	}
	return model.Assessment{ClaimID: path}, nil
}

func TestBatchProcessor_ProcessFiles(t *testing.T) {
	assessor := &MockAssessor{}
	processor := NewBatchProcessor(assessor, 2)

	paths := []string{"a.json", "b.json", "c.json"}
	ctx := context.Background()

	results := processor.ProcessFiles(ctx, paths)

	if len(results) != 3 {
		t.Errorf("expected 3 results, got %d", len(results))
	}

	successCount := 0
	for _, res := range results {
		if res.Error == nil {
			successCount++
			if res.Assessment == nil {
				t.Error("expected assessment for successful run")
			}
		} else {
			t.Errorf("unexpected error for %s: %v", res.Path, res.Error)
		}
	}

	if successCount != 3 {
		t.Errorf("expected 3 successes, got %d", successCount)
	}
}

func TestBatchProcessor_ProcessFiles_Error(t *testing.T) {
	assessor := &MockAssessor{ShouldError: true}
	processor := NewBatchProcessor(assessor, 2)

	results := processor.ProcessFiles(context.Background(), []string{"a.json"})

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}

	if results[0].Error == nil {
		t.Error("expected error, got nil")
	}
	if results[0].Assessment != nil {
		t.Error("expected nil assessment on error")
	}
}

func TestBatchProcessor_ProcessFiles_Empty(t *testing.T) {
	assessor := &MockAssessor{}
	processor := NewBatchProcessor(assessor, 2)

	results := processor.ProcessFiles(context.Background(), []string{})
	if len(results) != 0 {
		t.Errorf("expected 0 results, got %d", len(results))
	}
}

func TestAssessResult_GetError(t *testing.T) {
	r1 := &AssessResult{Path: "a.json", Error: nil}
	if r1.GetError() != nil {
		t.Errorf("expected nil error, got %v", r1.GetError())
	}

	expected := errors.New("assess failed")
	r2 := &AssessResult{Path: "a.json", Error: expected}
	if r2.GetError() != expected {
		t.Errorf("expected %v, got %v", expected, r2.GetError())
	}
}
