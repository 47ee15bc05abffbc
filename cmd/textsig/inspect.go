package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/toyz/textsig/internal/cli"
	"github.com/toyz/textsig/internal/utils"
)

func newInspectCmd() *cobra.Command {
	cfg := cli.DefaultConfig()
	var format string

	cmd := &cobra.Command{
		Use:   "inspect [paths...]",
		Short: "Report the doc and text signature of every exposed callable",
		Long: `Scan Rust sources (.rs) and manifests (*.textsig.yaml) and print the
__doc__ and __text_signature__ of every exposed callable.

Paths may be files, directories or Go-style recursive patterns:
  ./...              Scan the current directory and all subdirectories
  ./src/...          Scan src and all its subdirectories
  ./src/lib.rs       Inspect one file

Exits with status 1 when any declaration is invalid.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				cfg.Paths = args
			}
			cfg.Format = cli.OutputFormat(format)
			cfg.Verbose = verboseFlag
			cfg.Quiet = quietFlag
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runInspect(cmd, cfg)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(cli.FormatText), "Output format: text or json")
	cmd.Flags().BoolVar(&cfg.InternalDoc, "internal-doc", false, "Also report the combined name(sig)\\n--\\n\\ndoc string")
	cmd.Flags().BoolVar(&cfg.IncludeTypes, "types", true, "Report #[pyclass] types")
	cmd.Flags().Int64Var(&cfg.MaxFileSize, "max-file-size", cfg.MaxFileSize, "Largest source file to read, in bytes")

	return cmd
}

func runInspect(cmd *cobra.Command, cfg cli.Config) error {
	diagnostics := utils.NewDiagnosticSystem(cfg.DiagnosticLevel())
	diagnostics.Header("inspecting declarations")

	inspector := cli.NewInspector(cfg, diagnostics)
	report, err := inspector.Run(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch cfg.Format {
	case cli.FormatJSON:
		err = report.WriteJSON(out)
	default:
		err = report.WriteText(out, cfg.InternalDoc)
	}
	if err != nil {
		return err
	}

	diagnostics.Summary("Inspection complete", map[string]interface{}{
		"Files":     len(report.Files),
		"Callables": report.CallableCount(),
		"Errors":    report.ErrorCount(),
	})

	if !report.HasErrors() {
		diagnostics.Success("every declaration is valid")
		return nil
	}

	if diagnostics.Level() >= utils.DiagnosticError {
		cli.NewDiagnosticReporter(cfg.Verbose, os.Stderr).ReportReport(report)
	}
	diagnostics.Error("%d declaration errors", report.ErrorCount())
	diagnostics.Indent()
	for _, f := range report.Files {
		if len(f.Errors) > 0 {
			diagnostics.List("%s (%d)", f.File, len(f.Errors))
		}
	}
	diagnostics.Unindent()

	return errDeclarations
}
