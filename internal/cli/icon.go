package cli

import (
	"github.com/spf13/cobra"

	"xdgkit/internal/scripts"
	"xdgkit/pkg/xdg"
)

var (
	iconNoVendor bool
	iconRes      xdg.IconResourceOptions
)

func newIconCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "icon",
		Short: "Install icons on the desktop",
	}

	install := &cobra.Command{
		Use:   "install FILE",
		Short: "Place a file on the user's desktop",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			res, err := client.DesktopIconInstall(cmd.Context(), iconNoVendor, args[0])
			if err != nil {
				return err
			}
			return emitResult(cmd, scripts.DesktopIcon, res)
		},
	}
	install.Flags().BoolVar(&iconNoVendor, "novendor", false, "Skip the vendor prefix check")

	uninstall := &cobra.Command{
		Use:   "uninstall FILE",
		Short: "Remove a file from the user's desktop",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			res, err := client.DesktopIconUninstall(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return emitResult(cmd, scripts.DesktopIcon, res)
		},
	}

	cmd.AddCommand(install)
	cmd.AddCommand(uninstall)
	return cmd
}

func newIconResourceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "icon-resource",
		Short: "Install icon resources",
	}

	install := &cobra.Command{
		Use:   "install ICON-FILE [ICON-NAME]",
		Short: "Install an icon into the desktop icon system",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			iconName := ""
			if len(args) == 2 {
				iconName = args[1]
			}
			res, err := client.IconResourceInstall(cmd.Context(), iconRes, args[0], iconName)
			if err != nil {
				return err
			}
			return emitResult(cmd, scripts.IconResource, res)
		},
	}
	addIconResourceFlags(install, true)

	uninstall := &cobra.Command{
		Use:   "uninstall ICON-NAME",
		Short: "Remove an icon from the desktop icon system",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			res, err := client.IconResourceUninstall(cmd.Context(), iconRes, args[0])
			if err != nil {
				return err
			}
			return emitResult(cmd, scripts.IconResource, res)
		},
	}
	addIconResourceFlags(uninstall, false)

	forceupdate := &cobra.Command{
		Use:   "forceupdate",
		Short: "Force a refresh of the icon caches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			res, err := client.IconResourceForceUpdate(cmd.Context(), iconRes.Theme, iconRes.Mode)
			if err != nil {
				return err
			}
			return emitResult(cmd, scripts.IconResource, res)
		},
	}
	forceupdate.Flags().StringVar(&iconRes.Theme, "theme", "", "Icon theme")
	forceupdate.Flags().StringVar(&iconRes.Mode, "mode", "", "Mode (user or system)")

	cmd.AddCommand(install)
	cmd.AddCommand(uninstall)
	cmd.AddCommand(forceupdate)
	return cmd
}

func addIconResourceFlags(cmd *cobra.Command, install bool) {
	cmd.Flags().IntVar(&iconRes.Size, "size", 48, "Icon size in pixels")
	cmd.Flags().StringVar(&iconRes.Theme, "theme", "", "Icon theme (default hicolor)")
	cmd.Flags().StringVar(&iconRes.Context, "context", "", "Icon context (default apps)")
	cmd.Flags().StringVar(&iconRes.Mode, "mode", "", "Mode (user or system)")
	cmd.Flags().BoolVar(&iconRes.NoUpdate, "noupdate", false, "Skip the icon cache refresh")
	if install {
		cmd.Flags().BoolVar(&iconRes.NoVendor, "novendor", false, "Skip the vendor prefix check")
	}
}
