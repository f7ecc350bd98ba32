package input

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// keyConfigFile is the on-disk keymap layout
//
//	[keys]
//	w = "up"
//	s = "down"
//	q = "none"
type keyConfigFile struct {
	Keys map[string]string `toml:"keys"`
}

// LoadKeyConfig parses TOML keymap data into a sparse override KeyTable
// Only keys present in TOML are populated; "none" marks a binding for removal
// Returns error on unknown action names, unknown sections, or parse failure
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var raw keyConfigFile
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, errors.Wrap(err, "keymap parse")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Errorf("keymap: unknown entry %q", undecoded[0].String())
	}

	kt := &KeyTable{Bindings: make(map[string]Key, len(raw.Keys))}
	for keyStr, actionName := range raw.Keys {
		name := strings.ToLower(strings.TrimSpace(keyStr))
		if name == "" {
			return nil, errors.New("[keys] empty key name")
		}
		if name == NameClose {
			return nil, errors.Errorf("[keys] key %q is reserved", keyStr)
		}

		k, ok := ActionByName(strings.ToLower(strings.TrimSpace(actionName)))
		if !ok {
			return nil, errors.Errorf("[keys] key %q: unknown action: %q", keyStr, actionName)
		}
		kt.Bindings[name] = k
	}

	return kt, nil
}

// LoadKeyConfigFile reads and parses a keymap file
func LoadKeyConfigFile(path string) (*KeyTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "keymap read %s", path)
	}
	kt, err := LoadKeyConfig(data)
	if err != nil {
		return nil, errors.Wrapf(err, "keymap %s", path)
	}
	return kt, nil
}

// MergeKeyTable returns a new KeyTable with base values overridden by override entries
// Override entries bound to KeyNone ("none" action) delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}
	for name, k := range override.Bindings {
		if k == KeyNone {
			delete(result.Bindings, name)
		} else {
			result.Bindings[name] = k
		}
	}
	return result
}
