package main

import (
	"fmt"

	"github.com/sigweihq/kanawallet/pkg/constants"
	"github.com/spf13/cobra"
)

func newStatusCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Report whether the extension is reachable through the bridge",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render(string(constants.WalletName)+" wallet"))
			printField(cmd, "Website", constants.WalletURL)
			printField(cmd, "Bridge", o.config.Bridge.URL)

			adapter, cleanup, err := o.openAdapter(cmd.Context())
			if err != nil {
				o.logger.Debug("extension detection failed", "error", err)
				fmt.Fprintln(out, warningStyle.Render("extension not detected"))
				return nil
			}
			defer cleanup()

			printField(cmd, "State", string(adapter.ReadyState()))
			fmt.Fprintln(out, successStyle.Render("extension installed"))
			return nil
		},
	}
}
