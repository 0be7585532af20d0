package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theyusa/Rebecca-sub000/internal/domain"
)

func registerCmd() *cobra.Command {
	var fromKey string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Enroll a key pair with the registration API and store the account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}

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

			account, err := appCtx.Registrar.Register(pair)
			if err != nil {
				return err
			}
			if err := appCtx.Accounts.SaveAccount(passphrase, account); err != nil {
				return err
			}

			fmt.Printf("Device registered.\nAccount ID: %s\nPublic key: %s\n", account.ID, pair.PublicKey)
			if account.AddressV4 != "" {
				fmt.Printf("Address v4: %s\n", account.AddressV4)
			}
			if account.AddressV6 != "" {
				fmt.Printf("Address v6: %s\n", account.AddressV6)
			}
			fmt.Println(`Run "warpkey config" to print the WireGuard profile.`)
			return nil
		},
	}
	cmd.Flags().StringVarP(&fromKey, "from", "f", "", "enroll an existing base64 private key instead of generating one")
	return cmd
}
