// Package generator wires one run of the pipeline: load the translation
// tree, derive paths and mirror, render artifacts, then either write them
// (optionally formatted) or verify them against the committed copies.
package generator

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/MinaFSedrak/RNTranslationGen/internal/bundle"
	"github.com/MinaFSedrak/RNTranslationGen/internal/config"
	"github.com/MinaFSedrak/RNTranslationGen/internal/emit"
	"github.com/MinaFSedrak/RNTranslationGen/internal/formatter"
	"github.com/MinaFSedrak/RNTranslationGen/internal/verify"
)

// Result summarizes a completed run.
type Result struct {
	SourceFile string
	KeyCount   int
	Written    []string
	Verified   bool
}

// Run executes one generation (or verification) pass. All artifact bodies
// are built and formatted in memory before anything touches the output
// directory, so a failure never leaves a half-written artifact behind.
func Run(cfg config.Config, log *zap.SugaredLogger) (*Result, error) {
	tree, source, err := bundle.Load(cfg.InputDir, cfg.ExcludeKey, log)
	if err != nil {
		return nil, err
	}

	paths := tree.Flatten()
	mirror := tree.Mirror()
	log.Debugw("flattened translation tree", "source", source, "keys", len(paths))

	artifacts := emit.Render(paths, mirror, cfg)
	if cfg.Format {
		for i := range artifacts {
			artifacts[i].Body = formatter.Format(artifacts[i].Name, artifacts[i].Body, log)
		}
	}

	result := &Result{
		SourceFile: source,
		KeyCount:   len(paths),
		Written:    make([]string, 0, len(artifacts)),
	}

	if cfg.NoEmit {
		if err := verify.Check(cfg.OutputDir, artifacts, log); err != nil {
			return nil, err
		}
		result.Verified = true
		return result, nil
	}

	if err := writeArtifacts(cfg.OutputDir, artifacts, log); err != nil {
		return nil, err
	}
	for _, artifact := range artifacts {
		result.Written = append(result.Written, filepath.Join(cfg.OutputDir, artifact.Name))
	}
	return result, nil
}

// writeArtifacts lands all artifacts or none of them: every body is first
// written under a temporary name, then the batch is renamed into place.
// A failure while staging removes the temporaries and leaves the committed
// artifacts untouched, so dual-mode output can never end up half fresh and
// half stale.
func writeArtifacts(outputDir string, artifacts []emit.Artifact, log *zap.SugaredLogger) error {
	staged := make([]string, 0, len(artifacts))
	discard := func() {
		for _, tmp := range staged {
			_ = os.Remove(tmp)
		}
	}

	for _, artifact := range artifacts {
		tmp := filepath.Join(outputDir, artifact.Name+".tmp")
		if err := os.WriteFile(tmp, artifact.Body, 0o644); err != nil {
			discard()
			return errors.Wrapf(err, "stage %s", artifact.Name)
		}
		staged = append(staged, tmp)
	}

	for i, artifact := range artifacts {
		path := filepath.Join(outputDir, artifact.Name)
		if err := os.Rename(staged[i], path); err != nil {
			discard()
			return errors.Wrapf(err, "write %s", path)
		}
		log.Debugw("wrote artifact", "path", path, "bytes", len(artifact.Body))
	}
	return nil
}
