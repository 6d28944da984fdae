package manifest

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const coreListJSON = `{
	"name": "core",
	"packages": [
		{
			"name": "base",
			"description": "Shared helpers",
			"version": "1.0.0",
			"author": "someone",
			"dependencies": [],
			"manifest": {
				"/lib/base.js": "https://example.com/base.js"
			}
		},
		{
			"name": "tool",
			"description": "A tool",
			"version": "0.2.0",
			"author": "someone",
			"dependencies": ["core/base"],
			"manifest": {
				"/bin/tool.js": "https://example.com/tool.js",
				"/bin/tool-helper.js": "https://example.com/helper.js"
			}
		}
	]
}`

func TestParseListJSON(t *testing.T) {
	list, err := ParseList([]byte(coreListJSON))
	require.NoError(t, err)

	assert.Equal(t, "core", list.Name)
	require.Len(t, list.Packages, 2)

	tool := list.Find("tool")
	require.NotNil(t, tool)
	assert.Equal(t, "0.2.0", tool.Version)
	assert.Equal(t, []Reference{"core/base"}, tool.Dependencies)
	assert.Equal(t, []string{"/bin/tool-helper.js", "/bin/tool.js"}, tool.Manifest.Paths())
	assert.Equal(t, Reference("core/tool"), list.Reference(tool))
	assert.Nil(t, list.Find("missing"))
}

func TestParseListYAML(t *testing.T) {
	data := []byte(`
name: extras
packages:
  - name: hack
    version: "2.1.0"
    dependencies:
      - core/base
    manifest:
      hack.js: https://example.com/hack.js
`)

	list, err := ParseList(data)
	require.NoError(t, err)

	assert.Equal(t, "extras", list.Name)
	require.Len(t, list.Packages, 1)
	assert.Equal(t, "https://example.com/hack.js", list.Packages[0].Manifest["hack.js"])
}

func TestParseListMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not a record", "{{{ nope"},
		{"empty", ""},
		{"missing name", `{"packages": []}`},
		{"missing packages", `{"name": "core"}`},
		{"slash in list name", `{"name": "co/re", "packages": []}`},
		{"slash in package name", `{"name": "core", "packages": [{"name": "a/b"}]}`},
		{"package without name", `{"name": "core", "packages": [{"version": "1.0.0"}]}`},
		{"non-string manifest url", `{"name": "core", "packages": [{"name": "a", "manifest": {"/a.js": 3}}]}`},
		{"duplicate package", `{"name": "core", "packages": [{"name": "a"}, {"name": "a"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseList([]byte(tt.data))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedRecord), "error %v should wrap ErrMalformedRecord", err)
		})
	}
}

func TestParseListAcceptsSpacedNames(t *testing.T) {
	list, err := ParseList([]byte(`{"name": "my scripts", "packages": [{"name": "auto hack"}]}`))
	require.NoError(t, err)
	assert.Equal(t, "my scripts", list.Name)

	ref := list.Reference(list.Packages[0])
	assert.Equal(t, Reference("my scripts/auto hack"), ref)
	assert.True(t, ref.Valid())
}

func TestMarshalListRoundTrip(t *testing.T) {
	list, err := ParseList([]byte(coreListJSON))
	require.NoError(t, err)

	data, err := MarshalList(list)
	require.NoError(t, err)

	again, err := ParseList(data)
	require.NoError(t, err)
	assert.Equal(t, list, again)
}
