package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"genkey/internal/crypto"
)

func mnemonicCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mnemonic",
		Short: "Print a new 24 word BIP-39 mnemonic for --mnemonic",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := crypto.NewMnemonic()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), m)
			return err
		},
	}
}
