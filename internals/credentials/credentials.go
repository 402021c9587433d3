package credentials

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	pkgerrors "github.com/pkg/errors"
	"github.com/zalando/go-keyring"
)

var (
	keyringService = "mcprofile"
	keyringUser    = "data"
	dataFile       = "data.json"
)

// ErrMalformed is returned when the stored value is not a {"token": string} object
var ErrMalformed = errors.New("stored credential data is malformed")

// Data is the single persisted slot
type Data struct {
	Token string `json:"token"`
}

// Store persists the raw pasted token. It is loaded once with New
// and rewritten on every change (last write wins).
type Store struct {
	mu            sync.Mutex
	globalDir     string
	NoKeyRingMode bool
	data          Data
}

// New creates a new Store and loads existing data. A malformed stored value
// is reported but the store is still usable (and empty).
func New(globalDir string) (*Store, error) {
	store := &Store{globalDir: globalDir}
	err := store.load()
	return store, err
}

// NewFileStore creates a Store that never uses the OS keyring
func NewFileStore(globalDir string) (*Store, error) {
	store := &Store{globalDir: globalDir, NoKeyRingMode: true}
	err := store.load()
	return store, err
}

// Data returns a copy of the stored data
func (s *Store) Data() Data {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data
}

// Token returns the stored raw token (may be empty)
func (s *Store) Token() string {
	return s.Data().Token
}

// SetToken sets the token and persists it
func (s *Store) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data := Data{Token: token}
	if err := s.persist(data); err != nil {
		return err
	}
	s.data = data
	return nil
}

// Clear removes the stored data
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.NoKeyRingMode {
		err := os.Remove(filepath.Join(s.globalDir, dataFile))
		if err != nil && !os.IsNotExist(err) {
			return err
		}
	} else {
		err := keyring.Delete(keyringService, keyringUser)
		if err != nil && err != keyring.ErrNotFound {
			return err
		}
	}
	s.data = Data{}
	return nil
}

// load tries to find existing data
func (s *Store) load() error {
	if s.NoKeyRingMode {
		return s.loadFromFile()
	}

	raw, err := keyring.Get(keyringService, keyringUser)
	switch err {
	case nil:
		return s.decode([]byte(raw))
	case keyring.ErrNotFound:
		// nothing stored (yet) is fine
		return nil
	default:
		// no usable keyring, use plain files instead
		s.NoKeyRingMode = true
		return s.loadFromFile()
	}
}

func (s *Store) loadFromFile() error {
	raw, err := os.ReadFile(filepath.Join(s.globalDir, dataFile))
	switch {
	case err == nil:
		return s.decode(raw)
	case os.IsNotExist(err):
		// no file is fine
		return nil
	default:
		return pkgerrors.Wrap(err, "could not read credential file")
	}
}

// decode strictly parses raw into the data slot
func (s *Store) decode(raw []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return pkgerrors.Wrap(ErrMalformed, err.Error())
	}
	token, ok := fields["token"]
	if !ok {
		return pkgerrors.Wrap(ErrMalformed, `field "token" is missing`)
	}
	data := Data{}
	if string(token) == "null" || json.Unmarshal(token, &data.Token) != nil {
		return pkgerrors.Wrap(ErrMalformed, `field "token" must be a string`)
	}
	s.data = data
	return nil
}

func (s *Store) persist(data Data) error {
	blob, err := json.Marshal(data)
	if err != nil {
		return err
	}
	if s.NoKeyRingMode {
		return s.writeFile(blob)
	}
	return keyring.Set(keyringService, keyringUser, string(blob))
}

// writeFile writes the data file to the global dir
func (s *Store) writeFile(content []byte) error {
	if err := os.MkdirAll(s.globalDir, 0700); err != nil {
		return pkgerrors.Wrap(err, "could not create config dir")
	}
	return os.WriteFile(filepath.Join(s.globalDir, dataFile), content, 0600)
}
