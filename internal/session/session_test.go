package session

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"conecta/internal/domain/users"
)

type fakeAuth struct {
	user users.Public
	err  error
}

func (f fakeAuth) Login(context.Context, string, string) (users.Public, error) {
	return f.user, f.err
}

func newStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "nested", Key+".json"))
}

func TestStoreRoundTrip(t *testing.T) {
	store := newStore(t)

	u, err := store.Load()
	if err != nil || u != nil {
		t.Fatalf("Load on empty store = %v, %v; want nil, nil", u, err)
	}

	want := users.Public{ID: 3, Name: "Ana", Email: "ana@example.com"}
	if err := store.Save(want); err != nil {
		t.Fatal(err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || *got != want {
		t.Errorf("Load = %+v, want %+v", got, want)
	}

	if err := store.Clear(); err != nil {
		t.Fatal(err)
	}
	if err := store.Clear(); err != nil {
		t.Errorf("Clear twice: %v", err)
	}
}

func TestStoreCorruptFileIsLoggedOut(t *testing.T) {
	store := newStore(t)
	if err := os.MkdirAll(filepath.Dir(store.path), 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(store.path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	u, err := store.Load()
	if err != nil || u != nil {
		t.Errorf("Load(corrupt) = %v, %v; want nil, nil", u, err)
	}
}

func TestSessionLifecycle(t *testing.T) {
	store := newStore(t)
	s, err := Open(store)
	if err != nil {
		t.Fatal(err)
	}
	if s.Current() != nil {
		t.Fatal("new session should be logged out")
	}

	ana := users.Public{ID: 1, Name: "Ana", Email: "ana@example.com"}
	if _, err := s.Login(context.Background(), fakeAuth{user: ana}, "ana@example.com", "x"); err != nil {
		t.Fatal(err)
	}
	if got := s.Current(); got == nil || *got != ana {
		t.Fatalf("Current = %+v", got)
	}

	raw, err := os.ReadFile(store.path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(raw), "senha") || strings.Contains(string(raw), "password") {
		t.Errorf("session file leaks secret fields: %s", raw)
	}

	// A restarted client sees the same user.
	restarted, err := Open(store)
	if err != nil {
		t.Fatal(err)
	}
	if got := restarted.Current(); got == nil || got.Email != ana.Email {
		t.Errorf("restarted Current = %+v", got)
	}

	loginErr := errors.New("401")
	if _, err := restarted.Login(context.Background(), fakeAuth{err: loginErr}, "ana@example.com", "bad"); !errors.Is(err, loginErr) {
		t.Fatalf("err = %v", err)
	}
	if restarted.Current() != nil {
		t.Error("failed login must clear the session")
	}
	if u, _ := store.Load(); u != nil {
		t.Error("failed login must clear the stored user")
	}

	if _, err := s.Login(context.Background(), fakeAuth{user: ana}, "", ""); err != nil {
		t.Fatal(err)
	}
	if err := s.Logout(); err != nil {
		t.Fatal(err)
	}
	if s.Current() != nil {
		t.Error("logout must clear the session")
	}
}
