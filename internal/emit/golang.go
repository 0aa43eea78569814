package emit

import (
	"strconv"
	"strings"

	"github.com/MinaFSedrak/RNTranslationGen/internal/config"
	"github.com/MinaFSedrak/RNTranslationGen/internal/keytree"
)

const (
	goPackage   = "translationkeys"
	goConstFile = "translationkeys.go"
	goTypeFile  = "translationkey_type.go"
)

func renderGo(paths []string, mirror *keytree.Tree, cfg config.Config) []Artifact {
	typeDecl := "type " + TypeName + " string\n"

	var body strings.Builder
	writeGoConsts(&body, paths)
	writeGoVar(&body, mirror)

	if cfg.OutputMode == config.ModeDual {
		var typeFile strings.Builder
		typeFile.WriteString(goHeader(cfg.DisableESLintQuotes))
		typeFile.WriteString(typeDecl)

		// Dual mode keeps both files in the same package, so the constant
		// file sees the type without an import.
		var constFile strings.Builder
		constFile.WriteString(goHeader(cfg.DisableESLintQuotes))
		constFile.WriteString(body.String())

		return []Artifact{
			{Name: goTypeFile, Body: []byte(typeFile.String())},
			{Name: goConstFile, Body: []byte(constFile.String())},
		}
	}

	var single strings.Builder
	single.WriteString(goHeader(cfg.DisableESLintQuotes))
	single.WriteString(typeDecl)
	single.WriteString("\n")
	single.WriteString(body.String())
	return []Artifact{{Name: goConstFile, Body: []byte(single.String())}}
}

func goHeader(lintSuppress bool) string {
	var sb strings.Builder
	if lintSuppress {
		sb.WriteString("//nolint\n")
	}
	sb.WriteString("// Code generated by rntgen. DO NOT EDIT.\n\n")
	sb.WriteString("package " + goPackage + "\n\n")
	return sb.String()
}

// writeGoConsts emits one typed constant per dotted path, in path order.
// Zero paths emit no const block at all.
func writeGoConsts(sb *strings.Builder, paths []string) {
	if len(paths) == 0 {
		return
	}
	table := newIdentTable()
	sb.WriteString("const (\n")
	for _, path := range paths {
		var name strings.Builder
		for _, segment := range strings.Split(path, keytree.Separator) {
			name.WriteString(exportedIdent(segment))
		}
		sb.WriteString("\t" + table.claim(name.String()) + " " + TypeName + " = " + strconv.Quote(path) + "\n")
	}
	sb.WriteString(")\n\n")
}

func writeGoVar(sb *strings.Builder, mirror *keytree.Tree) {
	if mirror.Len() == 0 {
		sb.WriteString("var " + ConstName + " = struct{}{}\n")
		return
	}
	sb.WriteString("var " + ConstName + " = ")
	sb.WriteString(goStructValue(mirror, ""))
	sb.WriteString("\n")
}

// fieldNames derives the struct field name for each child of node, in key
// order, deduplicating collisions within the node's scope.
func fieldNames(node *keytree.Tree) []string {
	table := newIdentTable()
	names := make([]string, 0, node.Len())
	for _, key := range node.Keys() {
		names = append(names, table.claim(exportedIdent(key)))
	}
	return names
}

// goStructType renders the anonymous struct type mirroring node's shape.
func goStructType(node *keytree.Tree, indent string) string {
	var sb strings.Builder
	sb.WriteString("struct {\n")
	names := fieldNames(node)
	for i, key := range node.Keys() {
		child := node.Child(key)
		if child.IsLeaf() {
			sb.WriteString(indent + "\t" + names[i] + " " + TypeName + "\n")
			continue
		}
		sb.WriteString(indent + "\t" + names[i] + " " + goStructType(child, indent+"\t") + "\n")
	}
	sb.WriteString(indent + "}")
	return sb.String()
}

// goStructValue renders the composite literal for node. Go composite
// literals repeat the anonymous struct type at every level.
func goStructValue(node *keytree.Tree, indent string) string {
	var sb strings.Builder
	sb.WriteString(goStructType(node, indent))
	sb.WriteString("{\n")
	names := fieldNames(node)
	for i, key := range node.Keys() {
		child := node.Child(key)
		if child.IsLeaf() {
			sb.WriteString(indent + "\t" + names[i] + ": " + strconv.Quote(child.Value()) + ",\n")
			continue
		}
		sb.WriteString(indent + "\t" + names[i] + ": " + goStructValue(child, indent+"\t") + ",\n")
	}
	sb.WriteString(indent + "}")
	return sb.String()
}
