package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// resetRootCmdFlags restores every rootCmd flag to its registered default
// before a test runs. rootCmd is a package-level singleton shared across
// the whole test binary, and pflag does not reset a flag's value when a
// later Execute call simply omits it — without this, a bool flag set by
// one test leaks into the next.
func resetRootCmdFlags(t *testing.T) {
	t.Helper()
	rootCmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}

func TestEmitCppFlagPrintsTranslation(t *testing.T) {
	resetRootCmdFlags(t)
	rootCmd.SetArgs([]string{"--emit-cpp"})
	rootCmd.SetIn(strings.NewReader("let x = 1;"))
	var out bytes.Buffer
	rootCmd.SetOut(&out)

	err := rootCmd.Execute()
	require.NoError(t, err)
	require.Contains(t, out.String(), "int main() {")
}

func TestPrintSchemaFlag(t *testing.T) {
	resetRootCmdFlags(t)
	rootCmd.SetArgs([]string{"--print-schema"})
	rootCmd.SetIn(strings.NewReader(""))
	var out bytes.Buffer
	rootCmd.SetOut(&out)

	err := rootCmd.Execute()
	require.NoError(t, err)
	require.Contains(t, out.String(), "globals")
}

func TestAuditCommandReportsDrift(t *testing.T) {
	resetRootCmdFlags(t)
	rootCmd.SetArgs([]string{"audit", "--runtime-root", t.TempDir()})
	var out bytes.Buffer
	rootCmd.SetOut(&out)

	err := rootCmd.Execute()
	require.Error(t, err)
	require.Contains(t, out.String(), "drift detected")
}
