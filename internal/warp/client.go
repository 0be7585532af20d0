package warp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/theyusa/Rebecca-sub000/internal/crypto"
	"github.com/theyusa/Rebecca-sub000/internal/domain"
)

// Client talks JSON over HTTP to a WARP-style registration API.
type Client struct {
	Base string
	HTTP *http.Client

	log zerolog.Logger
}

// NewClient returns a registration client for the API rooted at base.
// Timeouts and proxies come from hc; pass nil for http.DefaultClient.
func NewClient(base string, hc *http.Client, log zerolog.Logger) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{
		Base: strings.TrimRight(base, "/"),
		HTTP: hc,
		log:  log,
	}
}

// Register enrolls the pair's public key and returns the resulting account
// record, with the private key folded in for local storage. The private key
// is never part of the request.
func (c *Client) Register(pair domain.KeyPair) (domain.Account, error) {
	pub, err := crypto.KeyFromBase64(pair.PublicKey)
	if err != nil {
		return domain.Account{}, fmt.Errorf("public key not sendable: %w", err)
	}
	c.log.Debug().
		Str("fp", crypto.Fingerprint(pub[:])).
		Str("url", c.Base+"/reg").
		Msg("registering public key")

	in := RegisterRequest{
		Key:    pair.PublicKey,
		TOS:    time.Now().UTC().Format(time.RFC3339),
		Model:  "PC",
		Type:   "Linux",
		Locale: "en_US",
	}
	var out RegisterResponse
	if err := c.post("/reg", in, &out); err != nil {
		return domain.Account{}, err
	}
	if out.ID == "" || out.Token == "" {
		return domain.Account{}, fmt.Errorf("registration response missing id or token")
	}

	account := domain.Account{
		ID:         out.ID,
		Token:      out.Token,
		License:    out.Account.License,
		ClientID:   out.Config.ClientID,
		PrivateKey: pair.PrivateKey,
		AddressV4:  out.Config.Interface.Addresses.V4,
		AddressV6:  out.Config.Interface.Addresses.V6,
		CreatedUTC: time.Now().Unix(),
	}
	if len(out.Config.Peers) > 0 {
		account.PeerPublicKey = out.Config.Peers[0].PublicKey
		account.PeerEndpoint = out.Config.Peers[0].Endpoint.Host
	}

	c.log.Info().
		Str("id", account.ID).
		Str("peer", account.PeerEndpoint).
		Msg("device registered")
	return account, nil
}

func (c *Client) post(path string, in any, out any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	req, err := http.NewRequest(http.MethodPost, c.Base+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "warpkey")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("warp post %s: %s", path, resp.Status)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// Compile-time assertion that Client implements domain.Registrar.
var _ domain.Registrar = (*Client)(nil)
