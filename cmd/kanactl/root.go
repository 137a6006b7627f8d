package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/sigweihq/kanawallet/pkg/bridge"
	"github.com/sigweihq/kanawallet/pkg/config"
	"github.com/sigweihq/kanawallet/pkg/constants"
	"github.com/sigweihq/kanawallet/pkg/kana"
	"github.com/sigweihq/kanawallet/pkg/utils"
	"github.com/sigweihq/kanawallet/pkg/walletadapter"
	"github.com/spf13/cobra"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Width(12)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
)

// options are shared by every subcommand
type options struct {
	configPath string
	bridgeURL  string
	token      string
	wallet     string
	verbose    bool

	config config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	o := &options{}

	cmd := &cobra.Command{
		Use:   "kanactl",
		Short: "Talk to the Kana wallet extension through its bridge",
		Long: `kanactl drives the Kana (Aptos) wallet extension over a JSON-RPC bridge.

It detects the extension, connects, signs messages and transactions and
streams account and network changes.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.load(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&o.configPath, "config", "", "config file (default is $HOME/.config/kanactl/config.yaml)")
	cmd.PersistentFlags().StringVar(&o.bridgeURL, "bridge", "", "bridge URL, overrides the config file")
	cmd.PersistentFlags().StringVar(&o.token, "token", "", "bridge bearer token, overrides the config file")
	cmd.PersistentFlags().StringVar(&o.wallet, "wallet", string(constants.WalletName), "wallet adapter to use")
	cmd.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "enable debug logging")

	cmd.SetVersionTemplate(`{{printf "kanactl version %s\n" .Version}}`)

	cmd.AddCommand(newStatusCmd(o))
	cmd.AddCommand(newConnectCmd(o))
	cmd.AddCommand(newDisconnectCmd(o))
	cmd.AddCommand(newSignMessageCmd(o))
	cmd.AddCommand(newSignTransactionCmd(o))
	cmd.AddCommand(newWatchCmd(o))
	cmd.AddCommand(newConfigCmd(o))

	return cmd
}

// load reads the config file and applies flag overrides
func (o *options) load(cmd *cobra.Command) error {
	c, err := config.Load(o.configPath)
	if err != nil {
		return err
	}

	if o.bridgeURL != "" {
		if err := utils.ValidateBridgeURL(o.bridgeURL); err != nil {
			return err
		}
		c.Bridge.URL = o.bridgeURL
	}
	if o.token != "" {
		c.Bridge.Token = o.token
	}

	level, err := config.ParseLevel(c.LogLevel)
	if err != nil {
		return err
	}
	if o.verbose {
		level = slog.LevelDebug
	}

	o.config = c
	o.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	return nil
}

// openAdapter builds the wallet adapters on top of the configured bridge,
// selects the one named by --wallet and waits for its extension
func (o *options) openAdapter(ctx context.Context) (walletadapter.Adapter, func(), error) {
	host := bridge.NewHost(&bridge.Config{
		URL:    o.config.Bridge.URL,
		Token:  o.config.Bridge.Token,
		Logger: o.logger,
	})
	kanaAdapter := kana.NewAdapter(&kana.Config{
		Host:         host,
		Timeout:      o.config.Timeout,
		PollInterval: o.config.PollInterval,
		Logger:       o.logger,
	})
	cleanup := func() {
		kanaAdapter.Close()
		host.Close()
	}

	wallets := walletadapter.NewRegistry()
	wallets.Register(kanaAdapter)

	adapter, err := wallets.Get(walletadapter.WalletName(o.wallet))
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	if err := waitReady(ctx, adapter, o.config.Timeout); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("%s extension not detected at %s: %w", adapter.Name(), o.config.Bridge.URL, err)
	}
	return adapter, cleanup, nil
}

// connect opens an adapter and connects the wallet
func (o *options) connect(ctx context.Context) (walletadapter.Adapter, func(), error) {
	adapter, cleanup, err := o.openAdapter(ctx)
	if err != nil {
		return nil, nil, err
	}
	if err := adapter.Connect(ctx); err != nil {
		cleanup()
		return nil, nil, err
	}
	return adapter, cleanup, nil
}

// waitReady blocks until the adapter reports the extension as installed
func waitReady(ctx context.Context, adapter walletadapter.Adapter, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = constants.DefaultTimeout
	}

	events := make(chan walletadapter.Event, 4)
	sub := adapter.Subscribe(events)
	defer sub.Unsubscribe()

	if adapter.ReadyState() == walletadapter.ReadyStateInstalled {
		return nil
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case ev := <-events:
			if change, ok := ev.(walletadapter.ReadyStateChangeEvent); ok && change.State == walletadapter.ReadyStateInstalled {
				return nil
			}
		case <-timer.C:
			return fmt.Errorf("timed out after %s", timeout)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// printField writes an aligned "label value" line
func printField(cmd *cobra.Command, label, value string) {
	if value == "" {
		value = "-"
	}
	fmt.Fprintln(cmd.OutOrStdout(), labelStyle.Render(label)+valueStyle.Render(value))
}
