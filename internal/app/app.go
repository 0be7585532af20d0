package app

import (
	"crypto/rand"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/theyusa/Rebecca-sub000/internal/domain"
	"github.com/theyusa/Rebecca-sub000/internal/services/keypair"
	"github.com/theyusa/Rebecca-sub000/internal/store"
	"github.com/theyusa/Rebecca-sub000/internal/warp"
)

// App bundles the services, store and client for the CLI.
type App struct {
	Log       zerolog.Logger
	Keys      domain.KeypairService
	Registrar domain.Registrar
	Accounts  domain.AccountStore
	HTTP      *http.Client
}

// New constructs the dependency graph from cfg.
func New(cfg Config) (*App, error) {
	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	// Ensure an HTTP client is available for outbound calls.
	httpClient := cfg.HTTP
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &App{
		Log:       log,
		Keys:      keypair.New(rand.Reader),
		Registrar: warp.NewClient(cfg.APIURL, httpClient, log.With().Str("component", "warp").Logger()),
		Accounts:  store.NewFileStore(cfg.Home),
		HTTP:      httpClient,
	}, nil
}
