package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vaultpass/passforge/internal/crypto"
)

func newHashPassphraseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-passphrase",
		Short: "Read an operator passphrase from stdin and print its argon2id hash",
		Long: `Reads one line from standard input and prints the argon2id PHC string to use
as OPERATOR_PASSPHRASE_HASH for the settings API.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := bufio.NewReader(cmd.InOrStdin())
			line, err := reader.ReadString('\n')
			if err != nil && line == "" {
				return errors.New("no passphrase on stdin")
			}

			hash, err := crypto.HashPassphrase(crypto.SecureSource(), strings.TrimRight(line, "\r\n"))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List policy presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range crypto.Presets {
				fmt.Fprintf(cmd.OutOrStdout(), "%-14s %s\n", p.Key, dimColor.Sprint(p.Description))
			}
			return nil
		},
	}
}

func newWordListsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "wordlists",
		Short: "List available word lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, id := range a.lists.IDs() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %d words\n", id, a.lists.Size(id))
			}
			return nil
		},
	}
}
