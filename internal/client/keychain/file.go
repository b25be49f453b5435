package keychain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/dmitrijs2005/pencilkeeper/internal/cryptox"
	"github.com/dmitrijs2005/pencilkeeper/internal/filex"
)

// ErrCorrupt is returned by Load when the token file exists but cannot be
// decoded or decrypted.
var ErrCorrupt = errors.New("token file corrupt")

// fileRecord is the on-disk layout. Token is set for plaintext files;
// Salt/Nonce/Ciphertext for sealed ones.
type fileRecord struct {
	Token      string `json:"token,omitempty"`
	Salt       []byte `json:"salt,omitempty"`
	Nonce      []byte `json:"nonce,omitempty"`
	Ciphertext []byte `json:"ciphertext,omitempty"`
}

// FileStore keeps the token in a 0600 JSON file. With a non-empty passphrase
// the token is sealed with AES-GCM under an argon2id-derived key.
type FileStore struct {
	path       string
	passphrase []byte

	mu sync.Mutex
	// derived key cache, keyed by salt; argon2id is too slow to run per request
	salt []byte
	key  []byte
}

func NewFileStore(path string, passphrase string) *FileStore {
	var pp []byte
	if passphrase != "" {
		pp = []byte(passphrase)
	}
	return &FileStore{path: path, passphrase: pp}
}

func (f *FileStore) Path() string { return f.path }

func (f *FileStore) SaveToken(token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	rec := fileRecord{Token: token}
	if f.passphrase != nil {
		if f.salt == nil {
			f.salt = cryptox.NewSalt()
			f.key = cryptox.DeriveKey(f.passphrase, f.salt)
		}
		ct, nonce, err := cryptox.Seal(f.key, []byte(token))
		if err != nil {
			return fmt.Errorf("seal token: %w", err)
		}
		rec = fileRecord{Salt: f.salt, Nonce: nonce, Ciphertext: ct}
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return filex.WriteFileAtomic(f.path, data, 0o600)
}

// Load reads the token. A missing file is ("", nil).
func (f *FileStore) Load() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	var rec fileRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	if rec.Ciphertext == nil {
		return rec.Token, nil
	}
	if f.passphrase == nil {
		return "", fmt.Errorf("%w: sealed token but no passphrase configured", ErrCorrupt)
	}

	if !bytes.Equal(f.salt, rec.Salt) {
		f.salt = rec.Salt
		f.key = cryptox.DeriveKey(f.passphrase, rec.Salt)
	}
	pt, err := cryptox.Open(f.key, rec.Nonce, rec.Ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return string(pt), nil
}

// GetToken treats an unreadable file the same as a missing one: the next
// request goes out unauthenticated and the server rejects it.
func (f *FileStore) GetToken() (string, bool) {
	token, err := f.Load()
	if err != nil || token == "" {
		return "", false
	}
	return token, true
}

func (f *FileStore) DeleteToken() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (f *FileStore) HasToken() bool {
	_, ok := f.GetToken()
	return ok
}
