package store

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"sync"

	"github.com/theyusa/Rebecca-sub000/internal/crypto"
	"github.com/theyusa/Rebecca-sub000/internal/domain"
)

const accountFile = "account.enc"

// ErrNoAccount is returned when no registration has been stored yet.
var ErrNoAccount = errors.New("store: no account on file")

// FileStore persists the device registration encrypted under a passphrase.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore returns a FileStore rooted at dir.
func NewFileStore(dir string) *FileStore { return &FileStore{dir: dir} }

// SaveAccount seals the account record and atomically replaces any previous
// file. The plaintext serialization is wiped once sealed.
func (s *FileStore) SaveAccount(passphrase string, a domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(a)
	if err != nil {
		return err
	}
	N, r, p := scryptParamsDefault()
	sealed, err := encrypt(passphrase, raw, N, r, p)
	crypto.Wipe(raw)
	if err != nil {
		return err
	}
	return writeFile(filepath.Join(s.dir, accountFile), sealed, 0o600)
}

// LoadAccount reads and opens the stored registration. ErrNoAccount means
// nothing has been saved under this directory yet.
func (s *FileStore) LoadAccount(passphrase string) (domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sealed, err := readFile(filepath.Join(s.dir, accountFile))
	if err != nil {
		return domain.Account{}, err
	}
	if sealed == nil {
		return domain.Account{}, ErrNoAccount
	}
	raw, err := decrypt(passphrase, sealed)
	if err != nil {
		return domain.Account{}, err
	}
	defer crypto.Wipe(raw)

	var a domain.Account
	if err := json.Unmarshal(raw, &a); err != nil {
		return domain.Account{}, err
	}
	return a, nil
}

// Compile-time assertion that FileStore implements domain.AccountStore.
var _ domain.AccountStore = (*FileStore)(nil)
