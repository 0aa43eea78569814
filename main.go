package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/MinaFSedrak/RNTranslationGen/cmd"
	"github.com/MinaFSedrak/RNTranslationGen/internal/verify"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		// Drift gets its own exit code so CI can tell "regenerate your
		// artifacts" apart from a broken invocation.
		if errors.Is(err, verify.ErrDriftMismatch) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
