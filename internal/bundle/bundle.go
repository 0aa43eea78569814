// Package bundle locates and loads the localization document that defines
// the key schema. Only the first JSON file in the input directory is
// consulted; additional locale files are assumed to share its shape.
package bundle

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/MinaFSedrak/RNTranslationGen/internal/keytree"
)

var (
	// ErrNoInputFound means the input directory holds no JSON document.
	ErrNoInputFound = errors.New("no translation file found")
	// ErrMalformedInput means the selected document failed to parse.
	ErrMalformedInput = errors.New("malformed translation file")
)

// Load selects the first JSON file in dir (os.ReadDir enumeration order,
// which is sorted by filename), decodes it, and optionally unwraps one
// top-level key. When excludeKey names a child of the root, that child's
// subtree replaces the whole root; when it is absent the root is used
// unchanged. Returns the tree and the path of the file it came from.
func Load(dir, excludeKey string, log *zap.SugaredLogger) (*keytree.Tree, string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, "", errors.Wrapf(err, "read input directory %s", dir)
	}

	var source string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		source = filepath.Join(dir, entry.Name())
		break
	}
	if source == "" {
		return nil, "", errors.Mark(
			errors.Newf("no .json file in %s", dir), ErrNoInputFound)
	}
	log.Debugw("selected translation file", "file", source)

	data, err := os.ReadFile(source)
	if err != nil {
		return nil, "", errors.Wrapf(err, "read %s", source)
	}

	tree, err := keytree.Decode(data)
	if err != nil {
		if errors.Is(err, keytree.ErrInvalidKeyName) {
			return nil, "", errors.Wrapf(err, "load %s", source)
		}
		return nil, "", errors.Mark(errors.Wrapf(err, "parse %s", source), ErrMalformedInput)
	}

	if excludeKey != "" {
		if child := tree.Child(excludeKey); child != nil {
			log.Debugw("unwrapping root key", "key", excludeKey)
			tree = child
		}
	}
	return tree, source, nil
}
