package queryrunner

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.trai.ch/lithos/internal/core/domain"
)

// watchSlow warns once if the execution has not settled before the
// deadline. It is observational only and never cancels the query; closing
// done suppresses the warning.
func (r *Runner) watchSlow(ctx context.Context, job *domain.Job, done <-chan struct{}) {
	timer := time.NewTimer(r.slowWarning)
	defer timer.Stop()

	select {
	case <-done:
	case <-ctx.Done():
	case <-timer.C:
		r.reporter.Warn(slowQueryMessage(job))
	}
}

// slowQueryMessage builds the diagnostic warning for a long-running query.
func slowQueryMessage(job *domain.Job) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Query takes too long:\nFile path: %s", job.ComponentPath)

	if job.IsPage && job.PageContext != nil {
		fmt.Fprintf(&b, "\nURL path: %s", job.PageContext.Path)
		if len(job.PageContext.Context) > 0 {
			pretty, err := json.MarshalIndent(job.PageContext.Context, "", "  ")
			if err == nil {
				fmt.Fprintf(&b, "\nContext: %s", pretty)
			}
		}
	}
	return b.String()
}
