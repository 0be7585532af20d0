package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/theyusa/Rebecca-sub000/internal/store"
	"github.com/theyusa/Rebecca-sub000/internal/wgconf"
)

func configCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Render the stored account as a wg-quick profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			account, err := appCtx.Accounts.LoadAccount(passphrase)
			if errors.Is(err, store.ErrNoAccount) {
				return fmt.Errorf(`no account on file; run "warpkey register" first`)
			}
			if err != nil {
				return err
			}

			profile := wgconf.Render(account)
			if output == "" {
				fmt.Print(profile)
				return nil
			}
			return os.WriteFile(output, []byte(profile), 0o600)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the profile to a file instead of stdout")
	return cmd
}
