package emit

import (
	"strconv"
	"strings"
	"unicode"
)

// exportedIdent turns a key segment into an exported Go identifier.
// Segments are split on any non-alphanumeric rune ("primary-button" →
// "PrimaryButton"); a segment that would start with a digit is prefixed
// with "Key".
func exportedIdent(segment string) string {
	parts := strings.FieldsFunc(segment, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	var sb strings.Builder
	for _, part := range parts {
		runes := []rune(part)
		runes[0] = unicode.ToUpper(runes[0])
		sb.WriteString(string(runes))
	}
	ident := sb.String()
	if ident == "" {
		return "Key"
	}
	if unicode.IsDigit([]rune(ident)[0]) {
		return "Key" + ident
	}
	return ident
}

// identTable hands out identifiers within one scope, suffixing collisions
// with a counter so two distinct keys never share a name.
type identTable struct {
	taken map[string]int
}

func newIdentTable() *identTable {
	return &identTable{taken: make(map[string]int)}
}

func (t *identTable) claim(ident string) string {
	n := t.taken[ident]
	t.taken[ident] = n + 1
	if n == 0 {
		return ident
	}
	return ident + strconv.Itoa(n+1)
}
