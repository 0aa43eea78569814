// Package formatter rewrites emitted artifacts to a fixed style. Formatting
// is cosmetic only and never fatal: on any failure the artifact passes
// through unchanged. Go artifacts are formatted in-process with gofumpt;
// TypeScript artifacts go through prettier when it is installed.
package formatter

import (
	"bytes"
	"os/exec"
	"strings"

	"go.uber.org/zap"
	"mvdan.cc/gofumpt/format"
)

// lookPath is swappable so tests can simulate a missing prettier binary.
var lookPath = exec.LookPath

// Format returns the styled body for the named artifact. Unknown extensions
// pass through unchanged.
func Format(name string, body []byte, log *zap.SugaredLogger) []byte {
	switch {
	case strings.HasSuffix(name, ".go"):
		return formatGo(body)
	case strings.HasSuffix(name, ".ts"):
		return formatTS(name, body, log)
	default:
		return body
	}
}

func formatGo(body []byte) []byte {
	formatted, err := format.Source(body, format.Options{})
	if err != nil {
		return body // formatting failed — return original
	}
	return formatted
}

// formatTS pipes the buffer through prettier. A missing binary is not an
// error: the unformatted artifact is still correct, just less pretty. The
// external call blocks with no timeout; a hung prettier blocks the run.
func formatTS(name string, body []byte, log *zap.SugaredLogger) []byte {
	prettier, err := lookPath("prettier")
	if err != nil {
		log.Debugw("prettier not found, skipping formatting", "artifact", name)
		return body
	}

	cmd := exec.Command(prettier,
		"--stdin-filepath", name,
		"--single-quote",
		"--trailing-comma", "all")
	cmd.Stdin = bytes.NewReader(body)
	out, err := cmd.Output()
	if err != nil {
		log.Debugw("prettier failed, keeping unformatted artifact", "artifact", name, "error", err)
		return body
	}
	return out
}
