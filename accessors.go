package toml

import "strings"

// GetKey walks a dotted path of plain (unquoted) segments from root and
// returns the Key at the end of it, or (nil, false) if any segment is
// missing. It is a convenience wrapper over Key.Children for callers that
// don't need the full tree-walk API.
func GetKey(root *Key, path string) (*Key, bool) {
	cur := root
	if path == "" {
		return cur, true
	}
	for _, seg := range strings.Split(path, ".") {
		next := cur.hasSubkey(seg)
		if next == nil {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// GetString resolves path and returns its value as a string.
func GetString(root *Key, path string) (string, bool) {
	k, ok := GetKey(root, path)
	if !ok {
		return "", false
	}
	return k.Value.String()
}

// GetInt64 resolves path and returns its value as an int64. It accepts
// both integer and float TOML values, truncating a float toward zero.
func GetInt64(root *Key, path string) (int64, bool) {
	k, ok := GetKey(root, path)
	if !ok || k.Value == nil {
		return 0, false
	}
	if k.Value.Kind != KindInteger && k.Value.Kind != KindFloat {
		return 0, false
	}
	n, _ := k.Value.Float64()
	return int64(n), true
}

// GetFloat64 resolves path and returns its value as a float64. It accepts
// both integer and float TOML values.
func GetFloat64(root *Key, path string) (float64, bool) {
	k, ok := GetKey(root, path)
	if !ok || k.Value == nil {
		return 0, false
	}
	if k.Value.Kind != KindInteger && k.Value.Kind != KindFloat {
		return 0, false
	}
	return k.Value.Float64()
}

// GetBool resolves path and returns its value as a bool.
func GetBool(root *Key, path string) (bool, bool) {
	k, ok := GetKey(root, path)
	if !ok {
		return false, false
	}
	return k.Value.Bool()
}

// GetArray resolves path and returns its value's elements.
func GetArray(root *Key, path string) ([]*Value, bool) {
	k, ok := GetKey(root, path)
	if !ok {
		return nil, false
	}
	return k.Value.Array()
}

// GetTable resolves path and returns the Key itself when it names a table
// (or inline table), for further traversal via its Children.
func GetTable(root *Key, path string) (*Key, bool) {
	k, ok := GetKey(root, path)
	if !ok {
		return nil, false
	}
	switch k.Kind {
	case KindTable, KindTableLeaf, KindArrayTable, KindKey:
		return k, true
	case KindKeyLeaf:
		if k.Value != nil && k.Value.Kind == KindInlineTable {
			tbl, _ := k.Value.Table()
			return tbl, true
		}
		return nil, false
	default:
		return nil, false
	}
}

// GetDatetime resolves path and returns its value as a DateTime.
func GetDatetime(root *Key, path string) (DateTime, bool) {
	k, ok := GetKey(root, path)
	if !ok {
		return DateTime{}, false
	}
	return k.Value.Datetime()
}
