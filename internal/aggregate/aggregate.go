// Package aggregate organizes a flat result set into the bucketed report
// document. Every result lands in exactly one bucket; error results are
// counted in the metadata but stored alongside successful content.
package aggregate

import (
	"time"

	"github.com/aaxis-ai/reportrunner/internal/domain"
)

// Organize partitions results into the bucketed document and fills in
// run metadata. Results tagged with a bucket at catalog time go where
// the tag says; untagged results fall back to key-prefix routing.
func Organize(results []domain.Result, runID string, now time.Time) *domain.Document {
	doc := domain.NewDocument()

	var errs, tokens int
	for _, res := range results {
		bucket := res.Bucket
		if bucket == "" {
			bucket = domain.BucketForKey(res.Key)
		}
		if m, ok := doc.BucketMap(bucket); ok {
			m[res.Key] = res.Content
		} else {
			// Unknown tag on a hand-built result; route by key instead.
			m, _ = doc.BucketMap(domain.BucketForKey(res.Key))
			m[res.Key] = res.Content
		}

		if res.IsError {
			errs++
		}
		tokens += res.OutputTokens
	}

	doc.Metadata = domain.Metadata{
		GeneratedAt: now.UTC().Format(time.RFC3339),
		RunID:       runID,
		TotalBlocks: len(results),
		Errors:      errs,
		TotalTokens: tokens,
	}
	return doc
}
