// Package verify implements the no-emit mode: freshly rendered artifacts
// are staged into a scratch directory and byte-compared against the
// committed copies. The real output directory is never written to.
package verify

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/MinaFSedrak/RNTranslationGen/internal/emit"
)

// ErrDriftMismatch means at least one committed artifact differs from what
// the current input would generate, or is missing entirely.
var ErrDriftMismatch = errors.New("generated artifacts are out of date")

// Check stages artifacts into a temporary directory and compares each one
// against its committed counterpart in outputDir. The scratch directory is
// removed on every return path. The returned error names the first
// diverging artifact.
func Check(outputDir string, artifacts []emit.Artifact, log *zap.SugaredLogger) error {
	scratch, err := os.MkdirTemp("", "rntgen-verify-")
	if err != nil {
		return errors.Wrap(err, "create scratch directory")
	}
	defer func() {
		if rmErr := os.RemoveAll(scratch); rmErr != nil {
			log.Warnw("failed to remove scratch directory", "dir", scratch, "error", rmErr)
		}
	}()

	for _, artifact := range artifacts {
		stagedPath := filepath.Join(scratch, artifact.Name)
		if err := os.WriteFile(stagedPath, artifact.Body, 0o644); err != nil {
			return errors.Wrapf(err, "stage %s", artifact.Name)
		}

		committedPath := filepath.Join(outputDir, artifact.Name)
		committed, err := os.ReadFile(committedPath)
		if err != nil {
			return errors.Mark(
				errors.Newf("committed artifact %s is missing; run rntgen to generate it", artifact.Name),
				ErrDriftMismatch)
		}

		staged, err := os.ReadFile(stagedPath)
		if err != nil {
			return errors.Wrapf(err, "read staged %s", artifact.Name)
		}
		if !bytes.Equal(staged, committed) {
			return errors.Mark(
				errors.Newf("%s is out of date; run rntgen to regenerate it", artifact.Name),
				ErrDriftMismatch)
		}
		log.Debugw("artifact matches", "artifact", artifact.Name)
	}
	return nil
}
