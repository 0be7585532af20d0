package main

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"flag"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/theyusa/Rebecca-sub000/internal/crypto"
	"github.com/theyusa/Rebecca-sub000/internal/services/keypair"
	"github.com/theyusa/Rebecca-sub000/internal/warp"
)

// registration is what the stub remembers about an enrolled device.
type registration struct {
	ID   string
	Key  string
	TOS  string
	Seen time.Time
}

type memoryStore struct {
	mu   sync.RWMutex
	regs map[string]registration
}

func newMemoryStore() *memoryStore {
	return &memoryStore{regs: make(map[string]registration)}
}

func randomHex(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b)
}

func randomB64(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return base64.StdEncoding.EncodeToString(b)
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	endpoint := flag.String("endpoint", "engage.example.com:2408", "peer endpoint handed to clients")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		With().Timestamp().Logger()

	// One server-side pair for the lifetime of the stub; every registration
	// gets its public half as the peer key.
	serverPair, err := keypair.New(rand.Reader).Generate()
	if err != nil {
		log.Fatal().Err(err).Msg("generate peer key")
	}
	log.Info().Str("peer_public_key", serverPair.PublicKey).Msg("stub peer key ready")

	ms := newMemoryStore()

	http.HandleFunc("/reg", func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req warp.RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		pub, err := crypto.KeyFromBase64(req.Key)
		if err != nil {
			http.Error(w, "key must be base64 of 32 bytes", http.StatusBadRequest)
			return
		}

		reg := registration{
			ID:   "t." + randomHex(6),
			Key:  req.Key,
			TOS:  req.TOS,
			Seen: time.Now().UTC(),
		}
		ms.mu.Lock()
		ms.regs[reg.ID] = reg
		total := len(ms.regs)
		ms.mu.Unlock()

		log.Info().
			Str("id", reg.ID).
			Str("fp", crypto.Fingerprint(pub[:])).
			Int("total", total).
			Msg("registered device")

		resp := warp.RegisterResponse{
			ID:    reg.ID,
			Token: randomHex(16),
		}
		resp.Account.License = "lic-" + randomHex(4)
		resp.Config.ClientID = randomB64(3)
		resp.Config.Peers = []warp.Peer{{
			PublicKey: serverPair.PublicKey,
			Endpoint:  warp.Endpoint{Host: *endpoint},
		}}
		resp.Config.Interface.Addresses = warp.Addresses{
			V4: "172.16.0.2",
			V6: "2606:4700:110:8f81:d551:a0:532e:a2b3",
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	})

	log.Info().Str("addr", *addr).Msg("registration stub listening")
	if err := http.ListenAndServe(*addr, nil); err != nil {
		log.Fatal().Err(err).Msg("serve")
	}
}
