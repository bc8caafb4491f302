package cli

import (
	"github.com/spf13/cobra"

	"xdgkit/internal/scripts"
)

func newOpenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open { file | URL }",
		Short: "Open a file or URL in the user's preferred application",
		Args:  cobra.ExactArgs(1),
		RunE:  runOpen,
	}
}

func runOpen(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	res, err := client.Open(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return emitResult(cmd, scripts.Open, res)
}
