// Package emit renders the flattened key paths and the mirror tree into
// source artifacts. Rendering is pure: artifacts are built fully in memory
// so a failing run never leaves a half-written file behind.
package emit

import (
	"github.com/MinaFSedrak/RNTranslationGen/internal/config"
	"github.com/MinaFSedrak/RNTranslationGen/internal/keytree"
)

// Artifact is one emitted file, not yet written to disk.
type Artifact struct {
	Name string
	Body []byte
}

// TypeName is the name of the emitted key type in every target language.
const TypeName = "TranslationKey"

// ConstName is the name of the emitted key-constant structure.
const ConstName = "TranslationKeys"

// Render produces the artifacts for one run. Single mode yields one file
// with the type union inlined; dual mode yields a type-definition file plus
// a constant file re-exporting the type. Path order follows paths exactly;
// the constant structure follows mirror's key order.
func Render(paths []string, mirror *keytree.Tree, cfg config.Config) []Artifact {
	switch cfg.Target {
	case config.TargetGo:
		return renderGo(paths, mirror, cfg)
	default:
		return renderTypeScript(paths, mirror, cfg)
	}
}
