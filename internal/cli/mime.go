package cli

import (
	"github.com/spf13/cobra"

	"xdgkit/internal/scripts"
	"xdgkit/pkg/xdg"
)

var (
	mimeMode     string
	mimeNoVendor bool
)

func newMimeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mime",
		Short: "Query and install MIME type information",
	}

	query := &cobra.Command{
		Use:   "query { filetype FILE | default MIMETYPE }",
		Short: "Query file types and default applications",
		Args:  cobra.ExactArgs(2),
		RunE:  runMimeQuery,
	}

	setDefault := &cobra.Command{
		Use:   "default APPLICATION MIMETYPE...",
		Short: "Make an application the default handler for MIME types",
		Args:  cobra.MinimumNArgs(2),
		RunE:  runMimeDefault,
	}

	install := &cobra.Command{
		Use:   "install MIMETYPES-FILE",
		Short: "Add file type descriptions to the desktop environment",
		Args:  cobra.ExactArgs(1),
		RunE:  runMimeInstall,
	}
	install.Flags().StringVar(&mimeMode, "mode", "", "Installation mode (user or system)")
	install.Flags().BoolVar(&mimeNoVendor, "novendor", false, "Skip the vendor prefix check")

	uninstall := &cobra.Command{
		Use:   "uninstall MIMETYPES-FILE",
		Short: "Remove previously added file type descriptions",
		Args:  cobra.ExactArgs(1),
		RunE:  runMimeUninstall,
	}
	uninstall.Flags().StringVar(&mimeMode, "mode", "", "Uninstallation mode (user or system)")

	cmd.AddCommand(query)
	cmd.AddCommand(setDefault)
	cmd.AddCommand(install)
	cmd.AddCommand(uninstall)
	return cmd
}

func runMimeQuery(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	var res xdg.Result
	switch args[0] {
	case "filetype":
		res, err = client.MimeQueryFiletype(cmd.Context(), args[1])
	case "default":
		res, err = client.MimeQueryDefault(cmd.Context(), args[1])
	default:
		return cmd.Usage()
	}
	if err != nil {
		return err
	}
	return emitResult(cmd, scripts.Mime, res)
}

func runMimeDefault(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	res, err := client.MimeSetDefault(cmd.Context(), args[0], args[1:]...)
	if err != nil {
		return err
	}
	return emitResult(cmd, scripts.Mime, res)
}

func runMimeInstall(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	opts := xdg.MimeInstallOptions{Mode: mimeMode, NoVendor: mimeNoVendor}
	res, err := client.MimeInstall(cmd.Context(), opts, args[0])
	if err != nil {
		return err
	}
	return emitResult(cmd, scripts.Mime, res)
}

func runMimeUninstall(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	res, err := client.MimeUninstall(cmd.Context(), mimeMode, args[0])
	if err != nil {
		return err
	}
	return emitResult(cmd, scripts.Mime, res)
}
