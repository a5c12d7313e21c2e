// Package builder provides a small fluent API for assembling a TOML
// document tree in code, without parsing one, and for pretty-printing the
// result back to TOML source. It is a thin convenience layer over
// toml.Key/toml.Value, grounded on the tree-then-write shape of the
// teacher's own document-assembly and pretty-printer helpers.
package builder

import (
	"bytes"
	"fmt"
	"sort"

	toml "github.com/djoezeke/mytoml"
)

// Builder accumulates key/value pairs and subtables into a toml.Key tree.
type Builder struct {
	root *toml.Key
	err  error
}

// New starts a fresh, empty document.
func New() *Builder {
	return &Builder{root: toml.NewTable()}
}

// Set installs a scalar, array, or inline-table value at the dotted path,
// creating intermediate tables as needed. Chainable; the first error
// encountered short-circuits later calls and is returned by Build.
func (b *Builder) Set(path string, v *toml.Value) *Builder {
	if b.err != nil {
		return b
	}
	b.err = b.root.Set(path, v)
	return b
}

// Table returns a Builder scoped to the subtable at path, creating it if
// necessary. Writes through the returned Builder mutate the same
// underlying tree.
func (b *Builder) Table(path string) *Builder {
	if b.err != nil {
		return b
	}
	sub, err := b.root.SetTable(path)
	if err != nil {
		b.err = err
		return b
	}
	return &Builder{root: sub}
}

// Build returns the assembled tree, or the first error encountered while
// building it.
func (b *Builder) Build() (*toml.Key, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.root, nil
}

// Pretty renders root as TOML source. It does not round-trip comments or
// source formatting, only the semantic tree: every table gets a header,
// every leaf gets a "key = value" line.
func Pretty(root *toml.Key) (string, error) {
	var buf bytes.Buffer
	if err := writeTable(&buf, root, nil); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func writeTable(buf *bytes.Buffer, k *toml.Key, path []string) error {
	leafNames, tableNames := splitChildren(k)

	for _, name := range leafNames {
		child := k.Children[name]
		fmt.Fprintf(buf, "%s = ", name)
		if err := writeValue(buf, child.Value); err != nil {
			return err
		}
		buf.WriteByte('\n')
	}

	for _, name := range tableNames {
		child := k.Children[name]
		childPath := append(append([]string{}, path...), name)
		if len(leafNames) > 0 || len(path) > 0 {
			buf.WriteByte('\n')
		}
		if child.Kind == toml.KindArrayTable {
			elems, _ := child.Value.Array()
			for _, elem := range elems {
				entry, _ := elem.Table()
				fmt.Fprintf(buf, "[[%s]]\n", joinPath(childPath))
				if err := writeTable(buf, entry, childPath); err != nil {
					return err
				}
			}
			continue
		}
		fmt.Fprintf(buf, "[%s]\n", joinPath(childPath))
		if err := writeTable(buf, child, childPath); err != nil {
			return err
		}
	}
	return nil
}

// splitChildren separates k's direct children into value leaves and
// everything else (tables, array-tables), each sorted for deterministic
// output. TOML makes no ordering guarantee between sibling keys.
func splitChildren(k *toml.Key) (leaves, tables []string) {
	for name, child := range k.Children {
		switch child.Kind {
		case toml.KindKeyLeaf:
			leaves = append(leaves, name)
		default:
			tables = append(tables, name)
		}
	}
	sort.Strings(leaves)
	sort.Strings(tables)
	return leaves, tables
}

func joinPath(path []string) string {
	out := ""
	for i, p := range path {
		if i > 0 {
			out += "."
		}
		out += p
	}
	return out
}

func writeValue(buf *bytes.Buffer, v *toml.Value) error {
	if v == nil {
		return fmt.Errorf("builder: nil value")
	}
	switch v.Kind {
	case toml.KindString:
		s, _ := v.String()
		fmt.Fprintf(buf, "%q", s)
	case toml.KindInteger:
		n, _ := v.Float64()
		fmt.Fprintf(buf, "%d", int64(n))
	case toml.KindFloat:
		n, _ := v.Float64()
		fmt.Fprintf(buf, "%g", n)
	case toml.KindBoolean:
		b, _ := v.Bool()
		fmt.Fprintf(buf, "%t", b)
	case toml.KindArray:
		buf.WriteByte('[')
		elems, _ := v.Array()
		for i, elem := range elems {
			if i > 0 {
				buf.WriteString(", ")
			}
			if err := writeValue(buf, elem); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case toml.KindInlineTable:
		tbl, _ := v.Table()
		buf.WriteByte('{')
		leaves, tables := splitChildren(tbl)
		names := append(append([]string{}, leaves...), tables...)
		sort.Strings(names)
		for i, name := range names {
			if i > 0 {
				buf.WriteString(", ")
			}
			fmt.Fprintf(buf, "%s = ", name)
			if err := writeValue(buf, tbl.Children[name].Value); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("builder: cannot render value of kind %v", v.Kind)
	}
	return nil
}
