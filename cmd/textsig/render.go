package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/toyz/textsig/internal/cli"
	"github.com/toyz/textsig/internal/errors"
)

func newRenderCmd() *cobra.Command {
	var (
		req           cli.RenderRequest
		textSignature string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one text signature from flags",
		Long: `Render the __text_signature__ for a single callable described by flags.
Prints None when the signature is suppressed.

Examples:
  textsig render --signature "(a, /, b = None, *, c = 5)"
  textsig render --role instance --names a,b,c
  textsig render --role class --text-signature '($cls, c)'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("text-signature") {
				req.TextSignature = &textSignature
			}

			text, ok, err := cli.RenderSignature(req)
			if err != nil {
				if te := errors.AsTextsigError(err); !quietFlag {
					cli.NewDiagnosticReporter(verboseFlag, cmd.ErrOrStderr()).ReportError(te)
				}
				return errDeclarations
			}
			if !ok {
				text = "None"
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
			return err
		},
	}

	cmd.Flags().StringVar(&req.Role, "role", "free", "Calling convention: free, module, instance, class or static")
	cmd.Flags().StringVar(&req.Signature, "signature", "", "Declared parameter list, e.g. \"(a, /, b = None, *, c = 5)\"")
	cmd.Flags().StringVar(&textSignature, "text-signature", "", "Explicit text signature override")
	cmd.Flags().BoolVar(&req.Suppress, "no-text-signature", false, "Suppress the signature")
	cmd.Flags().StringSliceVar(&req.Names, "names", nil, "Bare parameter names, used when nothing else is declared")

	return cmd
}
