package verify

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/MinaFSedrak/RNTranslationGen/internal/emit"
)

func TestCheckMatch(t *testing.T) {
	outputDir := t.TempDir()
	body := []byte("export type TranslationKey = never;\n")
	require.NoError(t, os.WriteFile(filepath.Join(outputDir, "translationKeys.ts"), body, 0o644))

	err := Check(outputDir, []emit.Artifact{{Name: "translationKeys.ts", Body: body}}, zap.NewNop().Sugar())
	assert.NoError(t, err)
}

func TestCheckMismatchNamesArtifact(t *testing.T) {
	outputDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(outputDir, "translationKeys.ts"), []byte("stale"), 0o644))

	err := Check(outputDir, []emit.Artifact{{Name: "translationKeys.ts", Body: []byte("fresh")}}, zap.NewNop().Sugar())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDriftMismatch))
	assert.Contains(t, err.Error(), "translationKeys.ts")
}

func TestCheckMissingCommittedArtifact(t *testing.T) {
	err := Check(t.TempDir(), []emit.Artifact{{Name: "translationKeys.ts", Body: []byte("x")}}, zap.NewNop().Sugar())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDriftMismatch))
	assert.Contains(t, err.Error(), "missing")
}

func TestCheckNeverWritesOutputDir(t *testing.T) {
	outputDir := t.TempDir()

	_ = Check(outputDir, []emit.Artifact{{Name: "translationKeys.ts", Body: []byte("x")}}, zap.NewNop().Sugar())

	entries, err := os.ReadDir(outputDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "verification must not touch the output directory")
}
