package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/theyusa/Rebecca-sub000/internal/domain"
)

func generateCmd() *cobra.Command {
	var (
		fromKey string
		asJSON  bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a WireGuard key pair",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				pair domain.KeyPair
				err  error
			)
			if fromKey != "" {
				pair, err = appCtx.Keys.FromPrivateKey(fromKey)
			} else {
				pair, err = appCtx.Keys.Generate()
			}
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(pair)
			}
			fmt.Printf("PrivateKey: %s\nPublicKey:  %s\n", pair.PrivateKey, pair.PublicKey)
			return nil
		},
	}
	cmd.Flags().StringVarP(&fromKey, "from", "f", "", "existing base64 private key to re-derive instead of fresh entropy")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the key pair as JSON")
	return cmd
}
