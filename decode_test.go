package fsm // import "github.com/zenyway/fsm"

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const fooBarYAML = `
foo:
  BAR: [bar, foo-BAR]
bar:
  FOO: [foo, bar-FOO]
  BAZ: foo
`

const fooBarJSON = `{
  "foo": { "BAR": ["bar", "foo-BAR"] },
  "bar": { "FOO": ["foo", "bar-FOO"], "BAZ": "foo" }
}`

func TestDecodeYAML(t *testing.T) {

	spec, err := DecodeYAML([]byte(fooBarYAML))
	require.NoError(t, err)
	require.Equal(t, fooBar(), spec)

	machine, err := Compile(spec, "foo")
	require.NoError(t, err)

	bar, payload := machine.Dispatch("BAR")
	require.Equal(t, "bar", bar.State())
	require.Equal(t, "foo-BAR", payload)
}

func TestDecodeYAMLPayloads(t *testing.T) {

	spec, err := DecodeYAML([]byte(`
idle:
  START: [running, {retries: 3, tags: [a, b]}]
  NOOP: [idle, ~]
running:
  STOP: idle
  COUNT: [running, 7]
done:
`))
	require.NoError(t, err)

	require.Equal(t, With("running", map[string]interface{}{
		"retries": 3,
		"tags":    []interface{}{"a", "b"},
	}), spec["idle"]["START"])
	require.Equal(t, To("idle"), spec["idle"]["NOOP"])
	require.Equal(t, To("idle"), spec["running"]["STOP"])
	require.Equal(t, With("running", 7), spec["running"]["COUNT"])

	done, has := spec["done"]
	require.True(t, has)
	require.Empty(t, done)
}

func TestDecodeYAMLErrors(t *testing.T) {

	for _, doc := range []string{
		"foo: [1, 2]",
		"foo:\n  BAR: [bar]\n",
		"foo:\n  BAR: [bar, 1, 2]\n",
		"foo:\n  BAR: {to: bar}\n",
		"foo:\n  BAR: ''\n",
		"foo:\n  BAR: [[x], 1]\n",
	} {
		_, err := DecodeYAML([]byte(doc))
		require.Error(t, err, doc)
	}

	_, err := DecodeYAML([]byte("foo:\n  BAR: [bar]\n"))
	require.Contains(t, err.Error(), `state="foo", command="BAR"`)
}

func TestDecodeJSON(t *testing.T) {

	spec, err := DecodeJSON([]byte(fooBarJSON))
	require.NoError(t, err)
	require.Equal(t, fooBar(), spec)

	spec, err = DecodeJSON([]byte(`{"a": {"GO": ["b", {"n": 1}]}, "b": {}}`))
	require.NoError(t, err)
	require.Equal(t, With("b", map[string]interface{}{"n": float64(1)}), spec["a"]["GO"])
	require.Empty(t, spec["b"])

	for _, doc := range []string{
		`[]`,
		`{"a": {"GO": 1}}`,
		`{"a": {"GO": ["b"]}}`,
		`{"a": {"GO": ["b", 1, 2]}}`,
		`{"a": {"GO": [1, 2]}}`,
		`{"a": {"GO": ""}}`,
		`{"a": {"GO": ["", 2]}}`,
	} {
		_, err := DecodeJSON([]byte(doc))
		require.Error(t, err, doc)
	}
}

func TestLoadFile(t *testing.T) {

	dir, err := ioutil.TempDir("", "fsm")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, ioutil.WriteFile(path, []byte(content), 0644))
		return path
	}

	for _, path := range []string{
		write("spec.yaml", fooBarYAML),
		write("spec.YML", fooBarYAML),
		write("spec.json", fooBarJSON),
	} {
		spec, err := LoadFile(path)
		require.NoError(t, err, path)
		require.Equal(t, fooBar(), spec, path)
	}

	_, err = LoadFile(write("spec.toml", "foo = 1"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported spec format")

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}
