package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"shaderlex/internal/lsp"
)

var lspCmd = &cobra.Command{
	Use:          "lsp",
	Short:        "Run the shaderlex language server over stdio",
	SilenceUsage: true,
	RunE:         runLSP,
}

func runLSP(cmd *cobra.Command, _ []string) error {
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	level, _ := cmd.Root().PersistentFlags().GetString("log-level")
	server := lsp.NewServer(lsp.Options{
		MaxDiagnostics: maxDiagnostics,
		Debug:          level == "debug",
	})
	if err := server.RunStdio(); err != nil {
		return fmt.Errorf("lsp: %w", err)
	}
	return nil
}
