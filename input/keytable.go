package input

import (
	"maps"
	"strings"
)

// KeyTable maps canonical key names to game keys
type KeyTable struct {
	Bindings map[string]Key
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Bindings: map[string]Key{
			NameUp:     KeyUp,
			NameDown:   KeyDown,
			NameSpace:  KeySpace,
			NameEscape: KeyQuit,
			"q":        KeyQuit,
		},
	}
}

// Lookup resolves a key name, case-insensitive; unbound names yield KeyNone
func (kt *KeyTable) Lookup(name string) Key {
	name = strings.ToLower(name)
	if name == NameClose {
		return KeyQuit
	}
	if kt == nil {
		return KeyNone
	}
	return kt.Bindings[name]
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{Bindings: maps.Clone(kt.Bindings)}
}
