package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "jsxx.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadGlobals(t *testing.T) {
	path := writeTempConfig(t, `{
		"globals": [
			{"name": "Host", "additional_headers": ["runtime/global_host.hpp"], "factory": "create_host_global()"}
		]
	}`)

	globals, err := LoadGlobals(path)
	require.NoError(t, err)
	require.Len(t, globals, 1)
	require.Equal(t, "Host", globals[0].Name)
	require.Equal(t, []string{"runtime/global_host.hpp"}, globals[0].AdditionalHeaders)
	require.Equal(t, "create_host_global()", globals[0].Factory)
}

func TestLoadGlobalsRequiresNameAndFactory(t *testing.T) {
	path := writeTempConfig(t, `{"globals": [{"name": "Host"}]}`)
	_, err := LoadGlobals(path)
	require.Error(t, err)
}

func TestLoadGlobalsMissingFile(t *testing.T) {
	_, err := LoadGlobals(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestSchemaIsValidJSON(t *testing.T) {
	out, err := Schema()
	require.NoError(t, err)
	require.True(t, json.Valid([]byte(out)))
	require.Contains(t, out, "globals")
}
