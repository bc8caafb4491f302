package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"xdgkit/internal/scripts"
	"xdgkit/pkg/xdg"
)

func newScreenSaverCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "screensaver",
		Short: "Control the screensaver",
	}

	cmd.AddCommand(newScreenSaverWindowCmd("suspend", "Inhibit the screensaver on behalf of a window"))
	cmd.AddCommand(newScreenSaverWindowCmd("resume", "Lift a suspension requested for a window"))
	cmd.AddCommand(newScreenSaverSimpleCmd("activate", "Turn the screensaver on immediately"))
	cmd.AddCommand(newScreenSaverSimpleCmd("lock", "Lock the screen immediately"))
	cmd.AddCommand(newScreenSaverSimpleCmd("reset", "Turn the screensaver off"))
	cmd.AddCommand(newScreenSaverSimpleCmd("status", "Report whether the screensaver is enabled"))

	return cmd
}

func newScreenSaverWindowCmd(action, short string) *cobra.Command {
	return &cobra.Command{
		Use:   action + " WINDOW-ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			windowID, err := strconv.ParseUint(args[0], 0, 64)
			if err != nil {
				return fmt.Errorf("parse window id %q: %w", args[0], err)
			}
			client, err := newClient()
			if err != nil {
				return err
			}

			var res xdg.Result
			if action == "suspend" {
				res, err = client.ScreenSaverSuspend(cmd.Context(), windowID)
			} else {
				res, err = client.ScreenSaverResume(cmd.Context(), windowID)
			}
			if err != nil {
				return err
			}
			return emitResult(cmd, scripts.ScreenSaver, res)
		},
	}
}

func newScreenSaverSimpleCmd(action, short string) *cobra.Command {
	return &cobra.Command{
		Use:   action,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			var res xdg.Result
			switch action {
			case "activate":
				res, err = client.ScreenSaverActivate(cmd.Context())
			case "lock":
				res, err = client.ScreenSaverLock(cmd.Context())
			case "reset":
				res, err = client.ScreenSaverReset(cmd.Context())
			default:
				res, err = client.ScreenSaverStatus(cmd.Context())
			}
			if err != nil {
				return err
			}
			return emitResult(cmd, scripts.ScreenSaver, res)
		},
	}
}
