package commands

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/theyusa/Rebecca-sub000/internal/app"
)

const defaultAPIURL = "https://api.cloudflareclient.com/v0a2158"

var (
	home       string
	passphrase string
	apiURL     string
	logLevel   string
	timeout    time.Duration

	appCtx *app.App
)

func Execute() error {
	root := &cobra.Command{
		Use:   "warpkey",
		Short: "WireGuard key generation and WARP device registration",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".warpkey")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			var err error
			appCtx, err = app.New(app.Config{
				Home:     home,
				APIURL:   apiURL,
				LogLevel: logLevel,
				Timeout:  timeout,
			})
			if err != nil {
				return err
			}
			appCtx.Log.Debug().Str("home", home).Str("api", apiURL).Msg("app ready")
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.warpkey)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting the account file")
	root.PersistentFlags().StringVar(&apiURL, "api", defaultAPIURL, "registration API base URL")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "HTTP timeout for API calls")

	root.AddCommand(generateCmd(), pubkeyCmd(), registerCmd(), configCmd(), versionCmd())
	return root.Execute()
}
