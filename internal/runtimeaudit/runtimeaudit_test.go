package runtimeaudit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/surma/jsxx-go/internal/translator"
)

func TestCheckNoDrift(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "runtime"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "runtime", "global_io.hpp"), nil, 0o644))

	globals := []translator.Global{translator.IOGlobal()}
	report, err := Check(globals, root)
	require.NoError(t, err)
	require.False(t, report.HasDrift())
}

func TestCheckReportsMissingHeader(t *testing.T) {
	root := t.TempDir()

	globals := []translator.Global{translator.IOGlobal(), translator.JSONGlobal()}
	report, err := Check(globals, root)
	require.NoError(t, err)
	require.True(t, report.HasDrift())
	require.ElementsMatch(t, []string{"runtime/global_io.hpp", "runtime/global_json.hpp"}, report.MissingHeaders)
}
