package cli

import (
	"github.com/spf13/cobra"

	"xdgkit/internal/scripts"
)

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Get and set desktop environment settings",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get PROPERTY",
		Short: "Read a setting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			res, err := client.SettingsGet(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return emitResult(cmd, scripts.Settings, res)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "check PROPERTY VALUE",
		Short: "Check whether a value is the current one",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			res, err := client.SettingsCheck(cmd.Context(), args[0], "", args[1])
			if err != nil {
				return err
			}
			return emitResult(cmd, scripts.Settings, res)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set PROPERTY VALUE",
		Short: "Change a setting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			res, err := client.SettingsSet(cmd.Context(), args[0], "", args[1])
			if err != nil {
				return err
			}
			return emitResult(cmd, scripts.Settings, res)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List known properties",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			res, err := client.SettingsList(cmd.Context())
			if err != nil {
				return err
			}
			return emitResult(cmd, scripts.Settings, res)
		},
	})

	return cmd
}
