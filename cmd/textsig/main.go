package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

// errDeclarations signals a finished run that found declaration errors
var errDeclarations = fmt.Errorf("declaration errors found")

var (
	verboseFlag bool
	quietFlag   bool
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "textsig",
		Short: "Synthesize __doc__ and __text_signature__ for pyo3 bindings",
		Long: `textsig reads pyo3 Rust sources and textsig manifests and reports the
__doc__ and __text_signature__ strings each exposed function, method and
class would carry at runtime.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}

	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output and detailed error reporting")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "Only show errors and final results")

	rootCmd.AddCommand(newInspectCmd())
	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newMCPCmd())

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if err != errDeclarations {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}
