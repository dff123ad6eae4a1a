package users

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestPasswordSetCompare(t *testing.T) {
	var p password
	if err := p.Set("segredo123"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if string(p.Hash()) == "segredo123" {
		t.Fatal("hash must not equal the plaintext")
	}
	if err := p.Compare("segredo123"); err != nil {
		t.Errorf("Compare(correct) = %v, want nil", err)
	}
	if err := p.Compare("outra"); !errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("Compare(wrong) = %v, want ErrPasswordMismatch", err)
	}
}

func TestPasswordFromStoredHash(t *testing.T) {
	var original password
	if err := original.Set("abc123"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	var loaded password
	loaded.SetHash(original.Hash())
	if err := loaded.Compare("abc123"); err != nil {
		t.Errorf("Compare after SetHash = %v", err)
	}
}

func TestUserJSONNeverCarriesSecret(t *testing.T) {
	u := &User{ID: 7, Name: "Ana", Email: "ana@example.com"}
	if err := u.Password.Set("segredo123"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	for _, v := range []any{u, u.Public()} {
		b, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		s := string(b)
		if strings.Contains(s, "segredo") || strings.Contains(strings.ToLower(s), "password") || strings.Contains(s, "senha") {
			t.Errorf("secret leaked in %s", s)
		}
	}

	if got := u.Public(); got != (Public{ID: 7, Name: "Ana", Email: "ana@example.com"}) {
		t.Errorf("Public() = %+v", got)
	}
}
