// Package assist defines the optional text-generation capability used to
// annotate clone groups with a one-line human summary.
//
// The concrete implementation (an LLM-backed client) is selected once at
// process start and injected; when none is configured, Noop is used.
// There is no package-level client and no ad-hoc nil checks downstream.
package assist

import (
	"context"

	"github.com/shanmukh-025/AppTrackr-sub003/internal/model"
)

// TextAssistant produces short display strings. Implementations must be
// safe for concurrent use.
type TextAssistant interface {
	// SummarizeGroup returns a one-line explanation of why the members
	// were grouped, or "" when no summary is available.
	SummarizeGroup(ctx context.Context, members []model.JobPosting) (string, error)
}

// Noop is the default TextAssistant: it produces no summaries and never
// fails.
type Noop struct{}

func (Noop) SummarizeGroup(context.Context, []model.JobPosting) (string, error) {
	return "", nil
}
