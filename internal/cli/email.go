package cli

import (
	"github.com/spf13/cobra"

	"xdgkit/internal/scripts"
	"xdgkit/pkg/xdg"
)

var emailMsg xdg.Email

func newEmailCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "email [mailto-uri | address...]",
		Short: "Open the user's preferred email composer",
		RunE:  runEmail,
	}

	cmd.Flags().BoolVar(&emailMsg.UTF8, "utf8", false, "Indicate utf-8 encoded arguments")
	cmd.Flags().StringVar(&emailMsg.CC, "cc", "", "CC address")
	cmd.Flags().StringVar(&emailMsg.BCC, "bcc", "", "BCC address")
	cmd.Flags().StringVar(&emailMsg.Subject, "subject", "", "Subject text")
	cmd.Flags().StringVar(&emailMsg.Body, "body", "", "Body text")
	cmd.Flags().StringVar(&emailMsg.Attach, "attach", "", "File to attach")

	return cmd
}

func runEmail(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	msg := emailMsg
	msg.Recipients = args
	res, err := client.ComposeEmail(cmd.Context(), msg)
	if err != nil {
		return err
	}
	return emitResult(cmd, scripts.Email, res)
}
