// Package keystore persists key pairs on disk, encrypted with a
// passphrase-derived key.
package keystore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"

	"sagecrypto/crypto"
	"sagecrypto/memzero"
)

const keyFileExt = ".key"

// ErrNotFound is returned when no key is stored under the given name.
var ErrNotFound = errors.New("key not found")

// record is the plaintext payload sealed into the envelope.
type record struct {
	Algorithm string `json:"algorithm"`
	Private   []byte `json:"private"`
	Public    []byte `json:"public"`
	KeyID     string `json:"key_id"`
	CreatedAt int64  `json:"created_at"`
}

// Store keeps one encrypted file per named key under dir.
type Store struct {
	dir string
	mu  sync.Mutex
}

// New returns a store rooted at dir. The directory is created on first
// Save.
func New(dir string) *Store { return &Store{dir: dir} }

// Save seals kp under name. An existing key of the same name is
// overwritten.
func (s *Store) Save(passphrase, name string, kp *crypto.KeyPair) error {
	if err := checkName(name); err != nil {
		return err
	}
	priv, pub, err := kp.ExportRaw()
	if err != nil {
		return err
	}
	defer memzero.Zero(priv)

	raw, err := json.Marshal(record{
		Algorithm: kp.Algorithm().String(),
		Private:   priv,
		Public:    pub,
		KeyID:     kp.KeyID(),
		CreatedAt: time.Now().Unix(),
	})
	if err != nil {
		return err
	}
	defer memzero.Zero(raw)

	N, r, p := scryptParamsDefault()
	blob, err := encrypt(passphrase, raw, N, r, p)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	return writeFileAtomic(s.keyPath(name), blob, 0o600)
}

// Load opens the key stored under name.
func (s *Store) Load(passphrase, name string) (*crypto.KeyPair, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	s.mu.Lock()
	blob, err := os.ReadFile(s.keyPath(name))
	s.mu.Unlock()
	if errors.Is(err, os.ErrNotExist) {
		return nil, errors.Wrapf(ErrNotFound, "%q", name)
	}
	if err != nil {
		return nil, err
	}

	raw, err := decrypt(passphrase, blob)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(raw)

	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, errors.Wrap(err, "decoding key record")
	}
	defer memzero.Zero(rec.Private)

	alg, err := crypto.ParseAlgorithm(rec.Algorithm)
	if err != nil {
		return nil, err
	}
	return crypto.Import(alg, rec.Private, rec.Public)
}

// List returns the stored key names, sorted by the filesystem.
func (s *Store) List() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), keyFileExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), keyFileExt))
	}
	return names, nil
}

func (s *Store) keyPath(name string) string {
	return filepath.Join(s.dir, name+keyFileExt)
}

// checkName rejects names that would escape the store directory.
func checkName(name string) error {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return errors.Wrapf(crypto.ErrInvalidArgument, "bad key name %q", name)
	}
	return nil
}

// writeFileAtomic writes via a temp file then rename.
func writeFileAtomic(path string, data []byte, mode os.FileMode) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, mode); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
