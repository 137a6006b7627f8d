package main

import (
	"fmt"

	"github.com/sigweihq/kanawallet/pkg/utils"
	"github.com/sigweihq/kanawallet/pkg/walletadapter"
	"github.com/spf13/cobra"
)

func newConnectCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "connect",
		Short: "Connect the wallet and print the active account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, cleanup, err := o.connect(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			printAccount(cmd, adapter)
			return nil
		},
	}
}

func newDisconnectCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "disconnect",
		Short: "Connect, then revoke the wallet connection",
		Long: `Revokes the wallet connection for this bridge.

kanactl keeps no session between runs, so the wallet is connected first. If
the site is not already approved the extension will ask for approval before
the connection is revoked.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, cleanup, err := o.connect(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			address := adapter.PublicAccount().Address
			if err := adapter.Disconnect(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("disconnected "+utils.ShortAddress(address)))
			return nil
		},
	}
}

func printAccount(cmd *cobra.Command, adapter walletadapter.Adapter) {
	account := adapter.PublicAccount()
	fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("connected"))
	address := account.Address
	if normalized, err := utils.NormalizeAddress(address); err == nil {
		address = normalized
	}
	printField(cmd, "Address", address)
	printField(cmd, "Public key", account.PublicKey)
	printField(cmd, "Auth key", account.AuthKey)
	printField(cmd, "Network", adapter.Network().Name)
}
