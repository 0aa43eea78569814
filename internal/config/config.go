// Package config resolves the generation settings for one run. CLI flags
// take precedence; a discovered rntgen.config.{json,yaml,yml} file supplies
// fallback values for anything the flags left unset. The resolved Config is
// never mutated afterward.
package config

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	// ErrMissingConfiguration means input or output is absent after both
	// flag and config-file resolution.
	ErrMissingConfiguration = errors.New("missing configuration")
	// ErrDirectoryNotFound means a declared input or output directory does
	// not exist on disk.
	ErrDirectoryNotFound = errors.New("directory not found")
	// ErrInvalidOutputMode means the output mode is neither single nor dual.
	ErrInvalidOutputMode = errors.New("invalid output mode")
	// ErrInvalidTarget means the artifact target is neither ts nor go.
	ErrInvalidTarget = errors.New("invalid target")
)

// OutputMode selects how emitted artifacts are split across files.
type OutputMode string

const (
	// ModeSingle emits one file with the type union inlined next to the
	// key constants.
	ModeSingle OutputMode = "single"
	// ModeDual emits a pure type-definition file plus a constant file that
	// re-exports the type.
	ModeDual OutputMode = "dual"
)

// Target selects the artifact language.
type Target string

const (
	// TargetTypeScript emits .ts artifacts.
	TargetTypeScript Target = "ts"
	// TargetGo emits .go artifacts.
	TargetGo Target = "go"
)

// Config holds the fully resolved options for one generation run.
type Config struct {
	InputDir            string
	OutputDir           string
	ExcludeKey          string
	OutputMode          OutputMode
	Target              Target
	DisableESLintQuotes bool
	Format              bool
	NoEmit              bool
}

// configName is the basename viper searches for (rntgen.config.json,
// rntgen.config.yaml, ...).
const configName = "rntgen.config"

// RegisterFlags declares the generation flags on fs. The cmd package calls
// this for the real CLI; tests call it to build flag sets for Resolve.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP("input", "i", "", "directory holding the locale JSON files")
	fs.StringP("output", "o", "", "directory the artifacts are written to")
	fs.String("exclude-key", "", "top-level key to unwrap before traversal")
	fs.String("output-mode", string(ModeSingle), "artifact layout: single or dual")
	fs.String("target", string(TargetTypeScript), "artifact language: ts or go")
	fs.Bool("disable-eslint-quotes", false, "prefix artifacts with a lint-suppression header")
	fs.Bool("format", false, "run the emitted artifacts through a formatter")
	fs.Bool("no-emit", false, "verify committed artifacts instead of writing")
}

// Resolve builds a Config from the given flag set, falling back to a config
// file discovered in workdir (or read from configFile when set explicitly).
// workdir is passed in by the caller; it is never inferred from the binary's
// install location.
func Resolve(workdir, configFile string, fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "read config file %s", configFile)
		}
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(workdir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, errors.Wrap(err, "read config file")
			}
		}
	}

	bindings := map[string]string{
		"input":               "input",
		"output":              "output",
		"excludeKey":          "exclude-key",
		"outputMode":          "output-mode",
		"target":              "target",
		"disableEslintQuotes": "disable-eslint-quotes",
		"format":              "format",
		"noEmit":              "no-emit",
	}
	for key, flag := range bindings {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return Config{}, errors.Wrapf(err, "bind flag %s", flag)
		}
	}

	cfg := Config{
		InputDir:            v.GetString("input"),
		OutputDir:           v.GetString("output"),
		ExcludeKey:          v.GetString("excludeKey"),
		OutputMode:          OutputMode(v.GetString("outputMode")),
		Target:              Target(v.GetString("target")),
		DisableESLintQuotes: v.GetBool("disableEslintQuotes"),
		Format:              v.GetBool("format"),
		NoEmit:              v.GetBool("noEmit"),
	}
	cfg.InputDir = resolvePath(workdir, cfg.InputDir)
	cfg.OutputDir = resolvePath(workdir, cfg.OutputDir)

	return cfg, cfg.validate()
}

func resolvePath(workdir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(workdir, path)
}

func (c Config) validate() error {
	if c.InputDir == "" {
		return errors.Mark(errors.New("input directory is required"), ErrMissingConfiguration)
	}
	if c.OutputDir == "" {
		return errors.Mark(errors.New("output directory is required"), ErrMissingConfiguration)
	}
	for _, dir := range []string{c.InputDir, c.OutputDir} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			return errors.Mark(errors.Newf("directory %s does not exist", dir), ErrDirectoryNotFound)
		}
	}
	switch c.OutputMode {
	case ModeSingle, ModeDual:
	default:
		return errors.Mark(errors.Newf("output mode %q (want single or dual)", c.OutputMode), ErrInvalidOutputMode)
	}
	switch c.Target {
	case TargetTypeScript, TargetGo:
	default:
		return errors.Mark(errors.Newf("target %q (want ts or go)", c.Target), ErrInvalidTarget)
	}
	return nil
}
