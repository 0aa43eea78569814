// Package keytree models a localization bundle as an ordered key tree and
// derives the two views the generator emits: the flat list of dotted key
// paths and the mirror tree whose leaves hold their own path.
package keytree

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// Separator joins key segments into a dotted path.
const Separator = "."

// ErrInvalidKeyName reports a key that cannot take part in dotted-path
// addressing (empty, or containing the separator itself).
var ErrInvalidKeyName = errors.New("invalid translation key name")

// Tree is one node of a keyed translation tree. A leaf carries an opaque
// value; an inner node carries children in document order. Child order is
// significant everywhere downstream — it fixes emission order.
type Tree struct {
	leaf     bool
	value    string
	keys     []string
	children map[string]*Tree
}

// Decode parses a JSON document into a Tree, preserving the order in which
// keys appear in the document. The root must be an object. Any non-object
// value (string, number, bool, null, array) becomes a leaf; leaf content is
// opaque to the generator, only its position matters.
func Decode(data []byte) (*Tree, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, errors.Wrap(err, "read document")
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("document root must be a JSON object")
	}

	root, err := decodeNode(dec)
	if err != nil {
		return nil, err
	}

	if _, err := dec.Token(); err == nil {
		return nil, errors.New("trailing content after document root")
	}
	return root, nil
}

// decodeNode consumes object members up to and including the closing brace.
// The opening brace has already been consumed by the caller.
func decodeNode(dec *json.Decoder) (*Tree, error) {
	n := &Tree{children: make(map[string]*Tree)}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, errors.Wrap(err, "read key")
		}
		key := tok.(string)
		if key == "" {
			return nil, errors.Mark(errors.New("empty key name"), ErrInvalidKeyName)
		}
		if strings.Contains(key, Separator) {
			return nil, errors.Mark(
				errors.Newf("key %q contains the path separator %q", key, Separator),
				ErrInvalidKeyName)
		}

		child, err := decodeValue(dec)
		if err != nil {
			return nil, errors.Wrapf(err, "key %q", key)
		}
		if _, dup := n.children[key]; !dup {
			n.keys = append(n.keys, key)
		}
		n.children[key] = child
	}
	if _, err := dec.Token(); err != nil { // closing '}'
		return nil, errors.Wrap(err, "read end of object")
	}
	return n, nil
}

func decodeValue(dec *json.Decoder) (*Tree, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, errors.Wrap(err, "read value")
	}
	switch v := tok.(type) {
	case json.Delim:
		if v == '{' {
			return decodeNode(dec)
		}
		// Arrays are opaque leaves; skip their contents.
		if err := skipToMatch(dec); err != nil {
			return nil, err
		}
		return &Tree{leaf: true}, nil
	case string:
		return &Tree{leaf: true, value: v}, nil
	case nil:
		return &Tree{leaf: true}, nil
	default:
		return &Tree{leaf: true, value: fmt.Sprint(v)}, nil
	}
}

// skipToMatch consumes tokens until the delimiter that opened the current
// composite (already read by the caller) is balanced again.
func skipToMatch(dec *json.Decoder) error {
	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return errors.Wrap(err, "skip value")
		}
		if delim, ok := tok.(json.Delim); ok {
			switch delim {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
		}
	}
	return nil
}

// IsLeaf reports whether t is a leaf.
func (t *Tree) IsLeaf() bool { return t.leaf }

// Value returns the leaf value. It is empty for inner nodes.
func (t *Tree) Value() string { return t.value }

// Keys returns the node's child keys in document order. Callers must not
// mutate the returned slice.
func (t *Tree) Keys() []string { return t.keys }

// Child returns the subtree under key, or nil if the key is absent.
func (t *Tree) Child(key string) *Tree { return t.children[key] }

// Len returns the number of direct children.
func (t *Tree) Len() int { return len(t.keys) }

// Flatten returns one dotted path per leaf, in depth-first pre-order
// following each node's document key order. An empty tree flattens to an
// empty slice.
func (t *Tree) Flatten() []string {
	paths := make([]string, 0, len(t.keys))
	t.flatten("", &paths)
	return paths
}

func (t *Tree) flatten(prefix string, out *[]string) {
	for _, key := range t.keys {
		path := key
		if prefix != "" {
			path = prefix + Separator + key
		}
		child := t.children[key]
		if child.leaf {
			*out = append(*out, path)
			continue
		}
		child.flatten(path, out)
	}
}

// Mirror returns a tree with the same shape and key order as t where every
// leaf's value is replaced by the dotted path addressing it. For any leaf,
// the mirror value equals the path Flatten produces at that position.
func (t *Tree) Mirror() *Tree {
	return t.mirror("")
}

func (t *Tree) mirror(path string) *Tree {
	if t.leaf {
		return &Tree{leaf: true, value: path}
	}
	m := &Tree{
		keys:     append([]string(nil), t.keys...),
		children: make(map[string]*Tree, len(t.children)),
	}
	for _, key := range t.keys {
		childPath := key
		if path != "" {
			childPath = path + Separator + key
		}
		m.children[key] = t.children[key].mirror(childPath)
	}
	return m
}

// Lookup walks the tree by the segments of a dotted path and returns the
// node it addresses, or nil if any segment is missing.
func (t *Tree) Lookup(path string) *Tree {
	node := t
	for _, segment := range strings.Split(path, Separator) {
		if node == nil || node.leaf {
			return nil
		}
		node = node.children[segment]
	}
	return node
}
