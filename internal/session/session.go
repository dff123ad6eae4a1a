package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"conecta/internal/domain/users"
)

// Key is the name the sanitized user is stored under.
const Key = "conecta-user"

// Store persists the sanitized user between runs of a client. Only id, name
// and email are written; the secret never is.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath places the session file under the user's config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "conecta", Key+".json"), nil
}

// Load returns the remembered user, or nil when nobody is logged in. A
// corrupt file is treated as logged out.
func (s *Store) Load() (*users.Public, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var u users.Public
	if err := json.Unmarshal(raw, &u); err != nil || u.Email == "" {
		return nil, nil
	}
	return &u, nil
}

func (s *Store) Save(u users.Public) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	raw, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o600)
}

func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

type Authenticator interface {
	Login(ctx context.Context, email, password string) (users.Public, error)
}

// Session is the authenticated state of a running client. It is loaded from
// the Store once on start and written back on login and logout.
type Session struct {
	mu    sync.RWMutex
	store *Store
	user  *users.Public
}

func Open(store *Store) (*Session, error) {
	u, err := store.Load()
	if err != nil {
		return nil, err
	}
	return &Session{store: store, user: u}, nil
}

// Current returns a copy of the logged-in user, or nil.
func (s *Session) Current() *users.Public {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Login authenticates and remembers the user. A failed login forgets any
// previously remembered user.
func (s *Session) Login(ctx context.Context, auth Authenticator, email, password string) (users.Public, error) {
	u, err := auth.Login(ctx, email, password)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.user = nil
		if clearErr := s.store.Clear(); clearErr != nil {
			return users.Public{}, fmt.Errorf("%w (clearing session: %v)", err, clearErr)
		}
		return users.Public{}, err
	}
	if err := s.store.Save(u); err != nil {
		return users.Public{}, err
	}
	s.user = &u
	return u, nil
}

func (s *Session) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	return s.store.Clear()
}
