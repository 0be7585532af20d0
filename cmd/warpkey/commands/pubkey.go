package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func pubkeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pubkey",
		Short: "Read a private key on stdin and print its public key",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := io.ReadAll(os.Stdin)
			if err != nil {
				return err
			}
			pair, err := appCtx.Keys.FromPrivateKey(strings.TrimSpace(string(raw)))
			if err != nil {
				return err
			}
			fmt.Println(pair.PublicKey)
			return nil
		},
	}
}
