package emit

import (
	"regexp"
	"strings"

	"github.com/MinaFSedrak/RNTranslationGen/internal/config"
	"github.com/MinaFSedrak/RNTranslationGen/internal/keytree"
)

const (
	tsConstFile = "translationKeys.ts"
	tsTypeFile  = "translationKey.type.ts"
)

// tsTypeModule is the import specifier the dual-mode constant file uses to
// re-export the key type.
const tsTypeModule = "./translationKey.type"

func renderTypeScript(paths []string, mirror *keytree.Tree, cfg config.Config) []Artifact {
	union := tsUnion(paths)
	constant := tsConst(mirror)

	if cfg.OutputMode == config.ModeDual {
		var typeFile strings.Builder
		typeFile.WriteString(tsHeader(cfg.DisableESLintQuotes))
		typeFile.WriteString(union)

		var constFile strings.Builder
		constFile.WriteString(tsHeader(cfg.DisableESLintQuotes))
		constFile.WriteString("export type { " + TypeName + " } from '" + tsTypeModule + "';\n\n")
		constFile.WriteString(constant)

		return []Artifact{
			{Name: tsTypeFile, Body: []byte(typeFile.String())},
			{Name: tsConstFile, Body: []byte(constFile.String())},
		}
	}

	var single strings.Builder
	single.WriteString(tsHeader(cfg.DisableESLintQuotes))
	single.WriteString(union)
	single.WriteString("\n")
	single.WriteString(constant)
	return []Artifact{{Name: tsConstFile, Body: []byte(single.String())}}
}

func tsHeader(lintSuppress bool) string {
	var sb strings.Builder
	if lintSuppress {
		sb.WriteString("/* eslint-disable */\n")
	}
	sb.WriteString("// Auto-generated by rntgen - do not edit.\n\n")
	return sb.String()
}

// tsUnion renders the sum type over every dotted path. Zero paths produce a
// never alias so the artifact stays syntactically valid.
func tsUnion(paths []string) string {
	if len(paths) == 0 {
		return "export type " + TypeName + " = never;\n"
	}
	var sb strings.Builder
	sb.WriteString("export type " + TypeName + " =\n")
	for _, path := range paths {
		sb.WriteString("  | " + tsQuote(path))
		sb.WriteString("\n")
	}
	out := sb.String()
	return out[:len(out)-1] + ";\n"
}

func tsConst(mirror *keytree.Tree) string {
	var sb strings.Builder
	sb.WriteString("export const " + ConstName + " = ")
	writeTSObject(&sb, mirror, "")
	sb.WriteString(" as const;\n")
	return sb.String()
}

func writeTSObject(sb *strings.Builder, node *keytree.Tree, indent string) {
	if node.Len() == 0 {
		sb.WriteString("{}")
		return
	}
	sb.WriteString("{\n")
	inner := indent + "  "
	for _, key := range node.Keys() {
		child := node.Child(key)
		sb.WriteString(inner + tsPropertyName(key) + ": ")
		if child.IsLeaf() {
			sb.WriteString(tsQuote(child.Value()))
		} else {
			writeTSObject(sb, child, inner)
		}
		sb.WriteString(",\n")
	}
	sb.WriteString(indent + "}")
}

var tsIdentPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// tsPropertyName quotes keys that are not plain identifiers (e.g. "404" or
// "primary-button").
func tsPropertyName(key string) string {
	if tsIdentPattern.MatchString(key) {
		return key
	}
	return tsQuote(key)
}

var tsEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	"\n", `\n`,
	"\r", `\r`,
)

// tsQuote renders a single-quoted TypeScript string literal, escaping the
// characters that would otherwise terminate or corrupt it. Keys are
// arbitrary strings; sentence-style keys with apostrophes are common.
func tsQuote(s string) string {
	return "'" + tsEscaper.Replace(s) + "'"
}
