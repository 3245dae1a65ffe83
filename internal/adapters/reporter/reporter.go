// Package reporter adapts build diagnostics onto the logger.
package reporter

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.trai.ch/lithos/internal/core/domain"
	"go.trai.ch/lithos/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Reporter = (*Reporter)(nil)

// Reporter implements ports.Reporter on top of the application logger.
type Reporter struct {
	logger ports.Logger
}

// New creates a Reporter writing through the given logger.
func New(logger ports.Logger) *Reporter {
	return &Reporter{logger: logger}
}

// Warn emits an advisory warning.
func (r *Reporter) Warn(msg string) {
	r.logger.Warn(msg)
}

// PanicOnBuild renders the error batch as one consolidated report and
// logs it through the fatal path. Halting the build is the caller's job.
func (r *Reporter) PanicOnBuild(errs []domain.EnrichedQueryError) {
	if len(errs) == 0 {
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "failed to run query (%d error(s))", len(errs))
	for _, e := range errs {
		b.WriteString("\n\n")
		b.WriteString(formatError(e))
	}
	r.logger.Error(zerr.New(b.String()))
}

// formatError renders one enriched error with all of its diagnostic
// context.
func formatError(e domain.EnrichedQueryError) string {
	var b strings.Builder
	b.WriteString(e.Message)
	fmt.Fprintf(&b, "\nFile path: %s", e.FilePath)
	if e.URLPath != "" {
		fmt.Fprintf(&b, "\nURL path: %s", e.URLPath)
	}
	if len(e.Context) > 0 {
		if pretty, err := json.MarshalIndent(e.Context, "", "  "); err == nil {
			fmt.Fprintf(&b, "\nContext: %s", pretty)
		}
	}
	fmt.Fprintf(&b, "\nPlugin: %s", e.Plugin)
	if e.CodeFrame != "" {
		fmt.Fprintf(&b, "\n%s", e.CodeFrame)
	}
	return b.String()
}
