package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/sigweihq/kanawallet/pkg/types"
	"github.com/sigweihq/kanawallet/pkg/utils"
	"github.com/spf13/cobra"
)

func newSignMessageCmd(o *options) *cobra.Command {
	payload := &types.SignMessagePayload{}

	cmd := &cobra.Command{
		Use:   "sign-message",
		Short: "Ask the wallet to sign an arbitrary message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if payload.Nonce == "" {
				payload.Nonce = utils.NewNonce()
			}

			adapter, cleanup, err := o.connect(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			response, err := adapter.SignMessage(cmd.Context(), payload)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), response)
		},
	}

	cmd.Flags().StringVarP(&payload.Message, "message", "m", "", "message to sign")
	cmd.Flags().StringVar(&payload.Nonce, "nonce", "", "nonce to include (default: current time in nanoseconds)")
	cmd.Flags().BoolVar(&payload.Address, "address", false, "include the account address in the signed message")
	cmd.Flags().BoolVar(&payload.Application, "application", false, "include the application in the signed message")
	cmd.Flags().BoolVar(&payload.ChainID, "chain-id", false, "include the chain id in the signed message")
	_ = cmd.MarkFlagRequired("message")

	return cmd
}

func newSignTransactionCmd(o *options) *cobra.Command {
	var (
		submit      bool
		optionsPath string
	)

	cmd := &cobra.Command{
		Use:   "sign-transaction <payload.json|->",
		Short: "Sign, or sign and submit, an entry function payload",
		Long: `Reads an Aptos entry function payload as JSON and asks the wallet to sign it.
With --submit the wallet also submits it and the pending transaction hash is
printed, otherwise the signed transaction bytes are printed as hex.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var tx types.TransactionPayload
			if err := readJSON(cmd.InOrStdin(), args[0], &tx); err != nil {
				return fmt.Errorf("failed to read payload: %w", err)
			}

			var opts *types.TransactionOptions
			if optionsPath != "" {
				opts = &types.TransactionOptions{}
				if err := readJSON(cmd.InOrStdin(), optionsPath, opts); err != nil {
					return fmt.Errorf("failed to read options: %w", err)
				}
			}

			adapter, cleanup, err := o.connect(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			if submit {
				pending, err := adapter.SignAndSubmitTransaction(cmd.Context(), &tx, opts)
				if err != nil {
					return err
				}
				hash, err := utils.NormalizeHash(pending.Hash)
				if err != nil {
					return fmt.Errorf("wallet returned %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), hash)
				return nil
			}

			signed, err := adapter.SignTransaction(cmd.Context(), &tx, opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hexutil.Encode(signed))
			return nil
		},
	}

	cmd.Flags().BoolVar(&submit, "submit", false, "submit the transaction after signing")
	cmd.Flags().StringVar(&optionsPath, "options", "", "JSON file with transaction options (gas, expiration, ...)")

	return cmd
}

// readJSON decodes the file at path, or stdin when path is "-"
func readJSON(stdin io.Reader, path string, v any) error {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
