package store_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/theyusa/Rebecca-sub000/internal/domain"
	"github.com/theyusa/Rebecca-sub000/internal/store"
)

func sampleAccount() domain.Account {
	return domain.Account{
		ID:            "t.1a2b3c",
		Token:         "tok-98765",
		License:       "lic-aaaa-bbbb",
		ClientID:      "dGVzdA==",
		PrivateKey:    "yAnz5TF+lXXJte14tji3zlMNq+hd2rYUIgJBgB3fBmk=",
		PeerPublicKey: "bmXOC+F1FxEMF9dyiK2H5/1SUtzH0JuVo51h2wPfgyo=",
		PeerEndpoint:  "engage.example.com:2408",
		AddressV4:     "172.16.0.2",
		AddressV6:     "2606:4700:110:8949:fed0:c2d5:a13f:41f2",
		CreatedUTC:    1724300000,
	}
}

func TestAccount_SaveLoad_OK(t *testing.T) {
	home := t.TempDir()
	pass := "correct horse"

	var accounts domain.AccountStore = store.NewFileStore(home)

	want := sampleAccount()
	if err := accounts.SaveAccount(pass, want); err != nil {
		t.Fatalf("save account: %v", err)
	}

	got, err := accounts.LoadAccount(pass)
	if err != nil {
		t.Fatalf("load account: %v", err)
	}
	if got != want {
		t.Fatalf("mismatch after load:\n got %+v\nwant %+v", got, want)
	}
}

func TestAccount_WrongPassphrase_Fails(t *testing.T) {
	home := t.TempDir()
	var accounts domain.AccountStore = store.NewFileStore(home)

	if err := accounts.SaveAccount("correct", sampleAccount()); err != nil {
		t.Fatalf("save account: %v", err)
	}
	if _, err := accounts.LoadAccount("wrong"); err == nil {
		t.Fatal("expected error with wrong passphrase")
	}
}

func TestAccount_Missing_Fails(t *testing.T) {
	var accounts domain.AccountStore = store.NewFileStore(t.TempDir())
	if _, err := accounts.LoadAccount("any"); !errors.Is(err, store.ErrNoAccount) {
		t.Fatalf("got %v, want ErrNoAccount", err)
	}
}

func TestAccount_Overwrite_OK(t *testing.T) {
	home := t.TempDir()
	pass := "pass"
	var accounts domain.AccountStore = store.NewFileStore(home)

	first := sampleAccount()
	if err := accounts.SaveAccount(pass, first); err != nil {
		t.Fatalf("save first: %v", err)
	}

	second := first
	second.ID = "t.d4e5f6"
	second.Token = "tok-rotated"
	if err := accounts.SaveAccount(pass, second); err != nil {
		t.Fatalf("save second: %v", err)
	}

	got, err := accounts.LoadAccount(pass)
	if err != nil {
		t.Fatalf("load account: %v", err)
	}
	if got != second {
		t.Fatalf("overwrite not effective: got %+v", got)
	}
}

// A blob one version ahead of what this build writes must be refused before
// any key derivation, not fed to the AEAD.
func TestAccount_FutureVersion_Fails(t *testing.T) {
	home := t.TempDir()
	var accounts domain.AccountStore = store.NewFileStore(home)

	blob := `{"v": 2, "salt": "c2FsdHNhbHRzYWx0c2FsdA==", "scrypt_N": 4, "scrypt_r": 1, "scrypt_p": 1, "cipher": "AAAA"}`
	path := filepath.Join(home, "account.enc")
	if err := os.WriteFile(path, []byte(blob), 0o600); err != nil {
		t.Fatalf("write blob: %v", err)
	}

	_, err := accounts.LoadAccount("any")
	if err == nil || !strings.Contains(err.Error(), "unsupported account file version") {
		t.Fatalf("got %v, want unsupported version error", err)
	}
}

func TestAccount_CorruptedFile_Fails(t *testing.T) {
	home := t.TempDir()
	pass := "pass"
	var accounts domain.AccountStore = store.NewFileStore(home)

	if err := accounts.SaveAccount(pass, sampleAccount()); err != nil {
		t.Fatalf("save account: %v", err)
	}
	path := filepath.Join(home, "account.enc")
	if err := os.WriteFile(path, []byte("{not an envelope"), 0o600); err != nil {
		t.Fatalf("corrupt file: %v", err)
	}
	if _, err := accounts.LoadAccount(pass); err == nil {
		t.Fatal("expected error for corrupted store file")
	}
}
