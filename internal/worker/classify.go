package worker

import (
	"context"

	"github.com/jiancao/corpusclean/internal/model"
)

// Classifier labels a document's dominant language
type Classifier interface {
	Classify(text string) string
}

// ClassifyJob carries one document through the pool, remembering its position
// so the batch can be reassembled in input order.
type ClassifyJob struct {
	Index      int
	Doc        model.Document
	Classifier Classifier
}

// Execute executes the classification job
func (j *ClassifyJob) Execute(ctx context.Context) Result {
	select {
	case <-ctx.Done():
		return &ClassifyResult{Index: j.Index, Code: model.LanguageUnknown, Err: ctx.Err()}
	default:
	}

	return &ClassifyResult{
		Index: j.Index,
		Code:  j.Classifier.Classify(j.Doc.Text),
	}
}

// ClassifyResult represents the result of a classification job
type ClassifyResult struct {
	Index int
	Code  string
	Err   error
}

// GetError returns the error from the classification result
func (r *ClassifyResult) GetError() error {
	return r.Err
}

// ClassifyBatch classifies documents concurrently over a pool.
type ClassifyBatch struct {
	classifier Classifier
	workers    int
}

// NewClassifyBatch creates a batch classifier with the given concurrency.
func NewClassifyBatch(classifier Classifier, workers int) *ClassifyBatch {
	if workers <= 0 {
		workers = 1
	}
	return &ClassifyBatch{classifier: classifier, workers: workers}
}

// Run classifies every document and returns the language codes aligned with
// the input slice, so downstream stages see the exact input order regardless
// of worker scheduling. A cancelled context marks remaining documents unknown.
func (b *ClassifyBatch) Run(ctx context.Context, docs []model.Document) []string {
	codes := make([]string, len(docs))
	if len(docs) == 0 {
		return codes
	}

	pool := NewPool(b.workers)
	pool.Start()

	go func() {
		for i, doc := range docs {
			select {
			case <-ctx.Done():
				return
			default:
			}
			pool.Submit(&ClassifyJob{Index: i, Doc: doc, Classifier: b.classifier})
		}
	}()

	// Submission runs concurrently with collection, so drain by count
	for range docs {
		select {
		case <-ctx.Done():
			pool.Shutdown()
			for i, c := range codes {
				if c == "" {
					codes[i] = model.LanguageUnknown
				}
			}
			return codes
		case result := <-pool.results:
			r := result.(*ClassifyResult)
			codes[r.Index] = r.Code
		}
	}

	pool.Shutdown()
	return codes
}
