package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	return fs
}

func TestResolveFromFlags(t *testing.T) {
	workdir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(workdir, "locales"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(workdir, "gen"), 0o755))

	fs := newFlagSet()
	require.NoError(t, fs.Set("input", "locales"))
	require.NoError(t, fs.Set("output", "gen"))
	require.NoError(t, fs.Set("output-mode", "dual"))
	require.NoError(t, fs.Set("exclude-key", "translation"))

	cfg, err := Resolve(workdir, "", fs)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(workdir, "locales"), cfg.InputDir)
	assert.Equal(t, filepath.Join(workdir, "gen"), cfg.OutputDir)
	assert.Equal(t, ModeDual, cfg.OutputMode)
	assert.Equal(t, "translation", cfg.ExcludeKey)
	assert.Equal(t, TargetTypeScript, cfg.Target)
}

func TestResolveConfigFileFallback(t *testing.T) {
	workdir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(workdir, "locales"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(workdir, "gen"), 0o755))
	file := `{"input":"locales","output":"gen","outputMode":"dual","noEmit":true}`
	require.NoError(t, os.WriteFile(filepath.Join(workdir, "rntgen.config.json"), []byte(file), 0o644))

	cfg, err := Resolve(workdir, "", newFlagSet())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(workdir, "locales"), cfg.InputDir)
	assert.Equal(t, ModeDual, cfg.OutputMode)
	assert.True(t, cfg.NoEmit)
}

func TestResolveFlagsTakePrecedenceOverFile(t *testing.T) {
	workdir := t.TempDir()
	for _, dir := range []string{"locales", "gen", "other"} {
		require.NoError(t, os.Mkdir(filepath.Join(workdir, dir), 0o755))
	}
	file := `{"input":"locales","output":"gen","outputMode":"dual"}`
	require.NoError(t, os.WriteFile(filepath.Join(workdir, "rntgen.config.json"), []byte(file), 0o644))

	fs := newFlagSet()
	require.NoError(t, fs.Set("input", "other"))
	require.NoError(t, fs.Set("output-mode", "single"))

	cfg, err := Resolve(workdir, "", fs)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(workdir, "other"), cfg.InputDir)
	assert.Equal(t, filepath.Join(workdir, "gen"), cfg.OutputDir, "unset flag falls back to file")
	assert.Equal(t, ModeSingle, cfg.OutputMode)
}

func TestResolveYAMLConfigFile(t *testing.T) {
	workdir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(workdir, "locales"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(workdir, "gen"), 0o755))
	file := "input: locales\noutput: gen\nexcludeKey: translation\n"
	require.NoError(t, os.WriteFile(filepath.Join(workdir, "rntgen.config.yaml"), []byte(file), 0o644))

	cfg, err := Resolve(workdir, "", newFlagSet())
	require.NoError(t, err)
	assert.Equal(t, "translation", cfg.ExcludeKey)
}

func TestResolveMissingConfiguration(t *testing.T) {
	_, err := Resolve(t.TempDir(), "", newFlagSet())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingConfiguration))
}

func TestResolveDirectoryNotFound(t *testing.T) {
	workdir := t.TempDir()
	fs := newFlagSet()
	require.NoError(t, fs.Set("input", "nope"))
	require.NoError(t, fs.Set("output", "gen"))

	_, err := Resolve(workdir, "", fs)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDirectoryNotFound))
	assert.Contains(t, err.Error(), "nope")
}

func TestResolveInvalidOutputMode(t *testing.T) {
	workdir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(workdir, "locales"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(workdir, "gen"), 0o755))

	fs := newFlagSet()
	require.NoError(t, fs.Set("input", "locales"))
	require.NoError(t, fs.Set("output", "gen"))
	require.NoError(t, fs.Set("output-mode", "triple"))

	_, err := Resolve(workdir, "", fs)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidOutputMode))
}

func TestResolveInvalidTarget(t *testing.T) {
	workdir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(workdir, "locales"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(workdir, "gen"), 0o755))

	fs := newFlagSet()
	require.NoError(t, fs.Set("input", "locales"))
	require.NoError(t, fs.Set("output", "gen"))
	require.NoError(t, fs.Set("target", "rust"))

	_, err := Resolve(workdir, "", fs)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTarget))
}
