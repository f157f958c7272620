package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/surma/jsxx-go/internal/runtimeaudit"
	"github.com/surma/jsxx-go/internal/translator"
)

var errAuditDrift = errors.New("runtime header drift detected")

var auditCmd = &cobra.Command{
	Use:          "audit",
	Short:        "Check the global registry's declared runtime headers against disk",
	RunE:         runAudit,
	SilenceUsage: true,
}

func init() {
	auditCmd.Flags().String("runtime-root", ".", "Repository root containing the runtime/ include tree")
	rootCmd.AddCommand(auditCmd)
}

func runAudit(cmd *cobra.Command, _ []string) error {
	root, _ := cmd.Flags().GetString("runtime-root")

	globals := translator.DefaultGlobals()
	globals = append(globals, translator.WASIGlobal())

	report, err := runtimeaudit.Check(globals, root)
	if err != nil {
		return err
	}
	if !report.HasDrift() {
		cmd.Println("jsxx audit: no drift detected")
		return nil
	}
	cmd.Println("jsxx audit: drift detected")
	for _, h := range report.MissingHeaders {
		cmd.Printf("  missing: %s\n", h)
	}
	return errAuditDrift
}
