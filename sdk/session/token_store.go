package session

import (
	"io/ioutil"
	"os"
	"path"
	"strings"
	"sync"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"

	"github.com/hearthhq/hearth/internal/file"
)

// TokenStore persists the bearer token across process restarts. The token is
// an opaque string; the store performs no validation and knows nothing about
// expiry. An absent token is reported as ("", nil).
type TokenStore interface {
	Get() (string, error)
	Set(token string) error
	Remove() error
}

// fileTokenStore keeps the raw token string as the only persisted piece of
// session state, in a file under the user's Hearth home directory. The profile
// is deliberately NOT cached; it is re-fetched on every hydration.
type fileTokenStore struct {
	dir string
}

// NewFileTokenStore returns a TokenStore backed by ~/.hearth/token.
func NewFileTokenStore() (TokenStore, error) {
	homeDir, err := homedir.Dir()
	if err != nil {
		return nil, errors.Wrap(err, "error locating user's home directory")
	}
	return &fileTokenStore{dir: path.Join(homeDir, ".hearth")}, nil
}

// NewFileTokenStoreAt returns a TokenStore rooted at the specified directory
// instead of the user's home. Used by tests.
func NewFileTokenStoreAt(dir string) TokenStore {
	return &fileTokenStore{dir: dir}
}

func (f *fileTokenStore) tokenFile() string {
	return path.Join(f.dir, "token")
}

func (f *fileTokenStore) Get() (string, error) {
	if !file.Exists(f.tokenFile()) {
		return "", nil
	}
	tokenBytes, err := ioutil.ReadFile(f.tokenFile())
	if err != nil {
		return "", errors.Wrapf(
			err,
			"error reading token file at %s",
			f.tokenFile(),
		)
	}
	return strings.TrimSpace(string(tokenBytes)), nil
}

func (f *fileTokenStore) Set(token string) error {
	if _, err := os.Stat(f.dir); err != nil {
		if !os.IsNotExist(err) {
			return errors.Wrapf(
				err,
				"error checking for existence of hearth home at %s",
				f.dir,
			)
		}
		if err = os.MkdirAll(f.dir, 0755); err != nil {
			return errors.Wrapf(
				err,
				"error creating hearth home at %s",
				f.dir,
			)
		}
	}
	if err := ioutil.WriteFile(
		f.tokenFile(),
		[]byte(token),
		0600,
	); err != nil {
		return errors.Wrapf(err, "error writing to %s", f.tokenFile())
	}
	return nil
}

func (f *fileTokenStore) Remove() error {
	if !file.Exists(f.tokenFile()) {
		return nil
	}
	if err := os.Remove(f.tokenFile()); err != nil {
		return errors.Wrap(err, "error deleting token")
	}
	return nil
}

// memoryTokenStore is an in-process TokenStore for tests and for embedders
// that do not want durable credentials.
type memoryTokenStore struct {
	mu    sync.RWMutex
	token string
}

// NewMemoryTokenStore returns a TokenStore that holds the token in memory
// only.
func NewMemoryTokenStore() TokenStore {
	return &memoryTokenStore{}
}

func (m *memoryTokenStore) Get() (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token, nil
}

func (m *memoryTokenStore) Set(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *memoryTokenStore) Remove() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}
