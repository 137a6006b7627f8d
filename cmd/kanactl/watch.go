package main

import (
	"fmt"
	"time"

	"github.com/sigweihq/kanawallet/pkg/utils"
	"github.com/sigweihq/kanawallet/pkg/walletadapter"
	"github.com/spf13/cobra"
)

func newWatchCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Connect and stream account and network changes until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			adapter, cleanup, err := o.connect(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			events := make(chan walletadapter.Event, 16)
			sub := adapter.Subscribe(events)
			defer sub.Unsubscribe()

			if err := adapter.OnAccountChange(ctx); err != nil {
				return err
			}
			if err := adapter.OnNetworkChange(ctx); err != nil {
				return err
			}

			printAccount(cmd, adapter)
			out := cmd.OutOrStdout()
			for {
				select {
				case ev := <-events:
					stamp := labelStyle.Render(time.Now().Format(time.TimeOnly))
					switch ev := ev.(type) {
					case walletadapter.AccountChangeEvent:
						fmt.Fprintln(out, stamp+valueStyle.Render("account "+utils.ShortAddress(adapter.PublicAccount().Address)+" "+ev.PublicKey))
					case walletadapter.NetworkChangeEvent:
						fmt.Fprintln(out, stamp+valueStyle.Render("network "+ev.Network))
					case walletadapter.ErrorEvent:
						fmt.Fprintln(out, stamp+errorStyle.Render(ev.Err.Error()))
					case walletadapter.DisconnectEvent:
						fmt.Fprintln(out, stamp+warningStyle.Render("disconnected"))
						return nil
					}
				case <-ctx.Done():
					return nil
				case err := <-sub.Err():
					return err
				}
			}
		},
	}
}
