package queryrunner

import (
	"fmt"
	"strings"

	"go.trai.ch/lithos/internal/core/domain"
)

// codeFrameUnavailable is reported when an error carries no usable
// source location.
const codeFrameUnavailable = "Query code frame unavailable"

// codeFrameContext is the number of lines shown around the error line.
const codeFrameContext = 2

// renderCodeFrame returns the query source around the error location with
// a column marker. Missing or malformed locations degrade to
// codeFrameUnavailable instead of failing.
func renderCodeFrame(query string, loc *domain.ErrorLocation) string {
	if loc == nil || loc.Line <= 0 {
		return codeFrameUnavailable
	}

	lines := strings.Split(query, "\n")
	if loc.Line > len(lines) {
		return codeFrameUnavailable
	}

	start := loc.Line - 1 - codeFrameContext
	if start < 0 {
		start = 0
	}
	end := loc.Line + codeFrameContext
	if end > len(lines) {
		end = len(lines)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		marker := "  "
		if i == loc.Line-1 {
			marker = "> "
		}
		fmt.Fprintf(&b, "%s%3d | %s\n", marker, i+1, lines[i])
		if i == loc.Line-1 && loc.Column > 0 {
			fmt.Fprintf(&b, "      | %s^\n", strings.Repeat(" ", loc.Column-1))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
