package toml

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadStringBasicDocument(t *testing.T) {
	doc := `
title = "TOML Example"

[owner]
name = "Tom"
dob = 1979-05-27T07:32:00Z

[database]
enabled = true
ports = [ 8000, 8001, 8002 ]

[servers.alpha]
ip = "10.0.0.1"

[servers.beta]
ip = "10.0.0.2"
`
	root, err := LoadString(doc)
	require.NoError(t, err)

	title, ok := GetString(root, "title")
	require.True(t, ok)
	require.Equal(t, "TOML Example", title)

	name, ok := GetString(root, "owner.name")
	require.True(t, ok)
	require.Equal(t, "Tom", name)

	enabled, ok := GetBool(root, "database.enabled")
	require.True(t, ok)
	require.True(t, enabled)

	ports, ok := GetArray(root, "database.ports")
	require.True(t, ok)
	require.Len(t, ports, 3)

	alphaIP, ok := GetString(root, "servers.alpha.ip")
	require.True(t, ok)
	require.Equal(t, "10.0.0.1", alphaIP)

	betaIP, ok := GetString(root, "servers.beta.ip")
	require.True(t, ok)
	require.Equal(t, "10.0.0.2", betaIP)
}

func TestLoadStringDottedKeys(t *testing.T) {
	doc := `
name = "Orange"
physical.color = "orange"
physical.shape = "round"
site."google.com" = true
`
	root, err := LoadString(doc)
	require.NoError(t, err)

	color, ok := GetString(root, "physical.color")
	require.True(t, ok)
	require.Equal(t, "orange", color)

	// "google.com" is one quoted segment with a literal dot in it, not two
	// dotted segments, so it must be looked up as a single child name.
	site, ok := GetTable(root, "site")
	require.True(t, ok)
	child := site.hasSubkey("google.com")
	require.NotNil(t, child)
	v, ok := child.Value.Bool()
	require.True(t, ok)
	require.True(t, v)
}

func TestLoadStringArrayOfTables(t *testing.T) {
	doc := `
[[fruit]]
name = "apple"

[fruit.physical]
color = "red"
shape = "round"

[[fruit.variety]]
name = "red delicious"

[[fruit.variety]]
name = "granny smith"

[[fruit]]
name = "banana"

[[fruit.variety]]
name = "plantain"
`
	root, err := LoadString(doc)
	require.NoError(t, err)

	fruitKey, ok := GetKey(root, "fruit")
	require.True(t, ok)
	require.Equal(t, KindArrayTable, fruitKey.Kind)

	elems, ok := fruitKey.Value.Array()
	require.True(t, ok)
	require.Len(t, elems, 2)

	appleTable, ok := elems[0].Table()
	require.True(t, ok)
	name, ok := GetString(appleTable, "name")
	require.True(t, ok)
	require.Equal(t, "apple", name)

	color, ok := GetString(appleTable, "physical.color")
	require.True(t, ok)
	require.Equal(t, "red", color)

	varietyKey, ok := GetKey(appleTable, "variety")
	require.True(t, ok)
	varietyElems, _ := varietyKey.Value.Array()
	require.Len(t, varietyElems, 2)
}

func TestLoadStringInlineTable(t *testing.T) {
	doc := `point = { x = 1, y = 2 }`
	root, err := LoadString(doc)
	require.NoError(t, err)

	pointTable, ok := GetTable(root, "point")
	require.True(t, ok)
	x, ok := GetInt64(pointTable, "x")
	require.True(t, ok)
	require.Equal(t, int64(1), x)
}

func TestLoadStringDuplicateKeyRejected(t *testing.T) {
	doc := "a = 1\na = 2\n"
	_, err := LoadString(doc)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrSemantic)
}

func TestLoadStringTableRedefiningDottedKeyLeafRejected(t *testing.T) {
	doc := "a.b = 1\n[a]\n"
	_, err := LoadString(doc)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrSemantic)

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, 2, pe.Position().Line)
}

func TestLoadStringComments(t *testing.T) {
	doc := "# leading comment\nkey = \"value\" # trailing comment\n"
	root, err := LoadString(doc)
	require.NoError(t, err)
	v, ok := GetString(root, "key")
	require.True(t, ok)
	require.Equal(t, "value", v)
}

func TestDumpJSONRoundtripsScalarTypes(t *testing.T) {
	doc := `
str = "hi"
int = 42
flt = 3.5
bool = true
`
	root, err := LoadString(doc)
	require.NoError(t, err)

	out, err := DumpJSON(root)
	require.NoError(t, err)
	require.Contains(t, string(out), `"type":"string"`)
	require.Contains(t, string(out), `"type":"integer"`)
	require.Contains(t, string(out), `"type":"float"`)
	require.Contains(t, string(out), `"type":"bool"`)
}
