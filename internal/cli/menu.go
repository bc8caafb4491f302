package cli

import (
	"github.com/spf13/cobra"

	"xdgkit/internal/scripts"
	"xdgkit/pkg/xdg"
)

var (
	menuMode     string
	menuNoUpdate bool
	menuNoVendor bool
)

func newMenuCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Install desktop menu items",
	}

	install := &cobra.Command{
		Use:   "install FILE...",
		Short: "Install directory and desktop files into the desktop menu",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runMenuInstall,
	}
	install.Flags().StringVar(&menuMode, "mode", "", "Installation mode (user or system)")
	install.Flags().BoolVar(&menuNoUpdate, "noupdate", false, "Skip the desktop database refresh")
	install.Flags().BoolVar(&menuNoVendor, "novendor", false, "Skip the vendor prefix check")

	uninstall := &cobra.Command{
		Use:   "uninstall FILE...",
		Short: "Remove directory and desktop files from the desktop menu",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runMenuUninstall,
	}
	uninstall.Flags().StringVar(&menuMode, "mode", "", "Uninstallation mode (user or system)")
	uninstall.Flags().BoolVar(&menuNoUpdate, "noupdate", false, "Skip the desktop database refresh")

	forceupdate := &cobra.Command{
		Use:   "forceupdate",
		Short: "Force a refresh of the desktop menu databases",
		Args:  cobra.NoArgs,
		RunE:  runMenuForceUpdate,
	}
	forceupdate.Flags().StringVar(&menuMode, "mode", "", "Mode (user or system)")

	cmd.AddCommand(install)
	cmd.AddCommand(uninstall)
	cmd.AddCommand(forceupdate)
	return cmd
}

func runMenuInstall(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	opts := xdg.DesktopMenuInstallOptions{
		NoUpdate: menuNoUpdate,
		NoVendor: menuNoVendor,
		Mode:     menuMode,
	}
	res, err := client.DesktopMenuInstall(cmd.Context(), opts, args...)
	if err != nil {
		return err
	}
	return emitResult(cmd, scripts.DesktopMenu, res)
}

func runMenuUninstall(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	res, err := client.DesktopMenuUninstall(cmd.Context(), menuNoUpdate, menuMode, args...)
	if err != nil {
		return err
	}
	return emitResult(cmd, scripts.DesktopMenu, res)
}

func runMenuForceUpdate(cmd *cobra.Command, _ []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	res, err := client.DesktopMenuForceUpdate(cmd.Context(), menuMode)
	if err != nil {
		return err
	}
	return emitResult(cmd, scripts.DesktopMenu, res)
}
