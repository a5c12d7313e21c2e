package toml

import "errors"

// KeyKind tags the role a Key node plays in the tree, mirroring the five
// kinds from the C implementation's TomlKeyType.
type KeyKind int

const (
	// KindKey is an intermediate segment of a dotted-key assignment.
	KindKey KeyKind = iota
	// KindTable is an intermediate segment of a table header.
	KindTable
	// KindKeyLeaf is the final segment of a dotted-key assignment; it holds a value.
	KindKeyLeaf
	// KindTableLeaf is the final segment of a table header.
	KindTableLeaf
	// KindArrayTable is the final segment of [[name]]; its value is an array of tables.
	KindArrayTable
)

func (k KeyKind) String() string {
	switch k {
	case KindKey:
		return "Key"
	case KindTable:
		return "Table"
	case KindKeyLeaf:
		return "KeyLeaf"
	case KindTableLeaf:
		return "TableLeaf"
	case KindArrayTable:
		return "ArrayTable"
	default:
		return "?"
	}
}

const noArrayEntry = -1

// Key is a node in the parsed document tree. Every TOML key, table header,
// and array-of-tables header ends up as a Key; leaves additionally carry a
// Value.
type Key struct {
	Kind     KeyKind
	ID       string
	Children map[string]*Key
	Value    *Value

	// idx is the cursor into Value.elems for the most recently opened
	// [[t]] entry of an ArrayTable key. noArrayEntry means "none yet".
	idx int
}

func newKey(kind KeyKind) *Key {
	return &Key{
		Kind:     kind,
		Children: make(map[string]*Key),
		idx:      noArrayEntry,
	}
}

// newRoot creates the root of a document tree. The root behaves like a
// Table: it only ever holds children, never a value of its own.
func newRoot() *Key {
	return newKey(KindTable)
}

// compatibilityMatrix[existing][current] answers the redefinition question:
// given a key that already exists with kind `existing`, is it legal to
// redefine/extend it with a new segment of kind `current`? Expressed as an
// explicit table rather than scattered conditionals, per the design notes.
var compatibilityMatrix = map[KeyKind]map[KeyKind]bool{
	KindKey: {
		KindKey:   true,
		KindTable: true,
	},
	KindTable: {
		KindKey:        true,
		KindTable:      true,
		KindTableLeaf:  true, // allowed once; addSubkey mutates existing->TableLeaf
		KindArrayTable: false,
	},
	KindKeyLeaf: {
		// no redefinition of a KeyLeaf is ever allowed
	},
	KindTableLeaf: {
		KindKey:   true,
		KindTable: true,
		// TableLeaf -> TableLeaf is a duplicate table definition: denied
	},
	KindArrayTable: {
		KindTable:      true, // adds a subtable to the currently open entry
		KindArrayTable: true, // appends another entry
	},
}

func keysCompatible(existing, current KeyKind) bool {
	if existing == current && existing != KindKeyLeaf && existing != KindTableLeaf {
		return true
	}
	row, ok := compatibilityMatrix[existing]
	if !ok {
		return false
	}
	return row[current]
}

// hasSubkey returns the existing child named id, or nil.
func (k *Key) hasSubkey(id string) *Key {
	return k.Children[id]
}

// addSubkey inserts subkey under k, applying the redefinition matrix when a
// sibling with the same ID already exists, and dispatching through the
// currently-open array-table entry when k itself is an ArrayTable. It
// mirrors _mytoml_value_add_sub_key.
func (k *Key) addSubkey(sub *Key, tok *tokenizer) (*Key, error) {
	if existing := k.hasSubkey(sub.ID); existing != nil {
		if !keysCompatible(existing.Kind, sub.Kind) {
			return nil, semanticErr(tok, "cannot redefine %q (%s) as %s", existing.ID, existing.Kind, sub.Kind)
		}
		if sub.Kind == KindTableLeaf {
			// Table -> TableLeaf is allowed exactly once; lock it so a
			// second occurrence of the same header is a duplicate-table error.
			existing.Kind = KindTableLeaf
		}
		return existing, nil
	}

	if k.Kind == KindArrayTable {
		entry, err := k.currentEntry(tok)
		if err != nil {
			return nil, err
		}
		return entry.addSubkey(sub, tok)
	}

	if len(k.Children) >= tok.limits.MaxSubkeys {
		return nil, lexicalErr(tok, "too many subkeys under %q (max %d)", k.ID, tok.limits.MaxSubkeys)
	}
	k.Children[sub.ID] = sub
	return sub, nil
}

// currentEntry returns the table key for the array-table entry currently
// being populated (the most recently opened [[t]]).
func (k *Key) currentEntry(tok *tokenizer) (*Key, error) {
	if k.Kind != KindArrayTable || k.Value == nil || k.idx == noArrayEntry {
		return nil, grammarErr(tok, "no open array-table entry for %q", k.ID)
	}
	elems, _ := k.Value.Array()
	if k.idx < 0 || k.idx >= len(elems) {
		return nil, grammarErr(tok, "array-table cursor out of range for %q", k.ID)
	}
	entry, _ := elems[k.idx].Table()
	return entry, nil
}

// openArrayTableEntry appends a new table entry to k's array and advances
// the cursor to it, enforcing the array-length cap.
func (k *Key) openArrayTableEntry(tok *tokenizer) error {
	if k.Value == nil {
		k.Value = newArrayValue()
	}
	elems, _ := k.Value.Array()
	if len(elems) >= tok.limits.MaxArrayLength {
		return lexicalErr(tok, "array table %q exceeds max length %d", k.ID, tok.limits.MaxArrayLength)
	}
	k.Value.elems = append(k.Value.elems, newInlineTableValue(newKey(KindTable)))
	k.idx = len(k.Value.elems) - 1
	return nil
}

// NewTable creates a standalone table node, suitable as the root of a tree
// built up programmatically rather than by parsing.
func NewTable() *Key {
	return newKey(KindTable)
}

// Set installs v at the dotted path under k, creating any intermediate
// tables that don't yet exist. It returns an error if any segment along
// the path is already a leaf. Exported for the builder package and for
// callers assembling a document without a parser.
func (k *Key) Set(path string, v *Value) error {
	tok := newTokenizer(nil, "", DefaultLimits())
	segments, err := splitDottedPath(path)
	if err != nil {
		return err
	}
	leaf, err := resolveDottedKey(k, tok, segments, KindKey, KindKeyLeaf)
	if err != nil {
		return err
	}
	leaf.Value = v
	return nil
}

// SetTable creates (or returns the existing) subtable at the dotted path
// under k.
func (k *Key) SetTable(path string) (*Key, error) {
	tok := newTokenizer(nil, "", DefaultLimits())
	segments, err := splitDottedPath(path)
	if err != nil {
		return nil, err
	}
	return resolveDottedKey(k, tok, segments, KindTable, KindTable)
}

func splitDottedPath(path string) ([]string, error) {
	if path == "" {
		return nil, errors.New("empty key path")
	}
	var segments []string
	start := 0
	for i := 0; i <= len(path); i++ {
		if i == len(path) || path[i] == '.' {
			if i == start {
				return nil, errors.New("empty key segment in path " + path)
			}
			segments = append(segments, path[start:i])
			start = i + 1
		}
	}
	return segments, nil
}

// get returns the direct child of k named id, or k itself when id matches
// k's own ID (matching the "or the root itself if it matches" clause of the
// lookup surface).
func (k *Key) get(id string) *Key {
	if k.ID == id {
		return k
	}
	return k.Children[id]
}
