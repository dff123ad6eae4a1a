package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

// fakeAPI serves the endpoints the client uses with in-memory data.
type fakeAPI struct {
	mu      sync.Mutex
	reviews []map[string]any
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["senha"] != "segredo" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "Senha incorreta."})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"id": 1, "name": "Ana", "email": body["email"]})
	})
	mux.HandleFunc("POST /api/avaliar", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		f.mu.Lock()
		f.reviews = append([]map[string]any{{
			"Rating":    body["rating"],
			"Review":    body["review"],
			"UserEmail": body["userEmail"],
			"CriadoEm":  time.Now().UTC().Format(time.RFC3339),
		}}, f.reviews...)
		f.mu.Unlock()
		json.NewEncoder(w).Encode(map[string]string{"message": "Avaliação registrada com sucesso!"})
	})
	mux.HandleFunc("GET /api/avaliacoes", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		list := f.reviews
		if list == nil {
			list = []map[string]any{}
		}
		json.NewEncoder(w).Encode(list)
	})
	return mux
}

func runCLI(t *testing.T, args []string, stdin string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), err
}

func TestParseFlags(t *testing.T) {
	t.Setenv("CONECTA_API_URL", "http://env.example")

	cfg, err := parseFlags([]string{"-session", "/tmp/s.json", "reviews", "P"}, io.Discard)
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if cfg.APIURL != "http://env.example" || cfg.Command != "reviews" || len(cfg.Args) != 1 {
		t.Errorf("unexpected config %+v", cfg)
	}

	cfg, err = parseFlags([]string{"-api", "http://flag.example", "-session", "/tmp/s.json", "whoami"}, io.Discard)
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if cfg.APIURL != "http://flag.example" {
		t.Errorf("flag should win over env, got %q", cfg.APIURL)
	}

	if _, err := parseFlags([]string{"-session", "/tmp/s.json"}, io.Discard); !errors.Is(err, errNoCommand) {
		t.Errorf("expected errNoCommand, got %v", err)
	}
}

func TestLoginReviewLogout(t *testing.T) {
	api := &fakeAPI{}
	srv := httptest.NewServer(api.handler())
	defer srv.Close()

	base := []string{"-api", srv.URL, "-session", filepath.Join(t.TempDir(), "session.json")}
	cmd := func(args ...string) []string { return append(append([]string{}, base...), args...) }

	if _, err := runCLI(t, cmd("review", "-rating", "4", "P"), ""); err == nil {
		t.Fatal("review without login should fail")
	}

	out, err := runCLI(t, cmd("login", "ana@example.com", "segredo"), "")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !strings.Contains(out, "Ana") {
		t.Errorf("unexpected login output %q", out)
	}

	out, _ = runCLI(t, cmd("whoami"), "")
	if !strings.Contains(out, "ana@example.com") {
		t.Errorf("session not restored: %q", out)
	}

	if _, err := runCLI(t, cmd("review", "-rating", "5", "-comment", "Rampa ótima", "P", "Farmácia"), ""); err != nil {
		t.Fatalf("review: %v", err)
	}
	if _, err := runCLI(t, cmd("review", "-rating", "3", "P"), ""); err != nil {
		t.Fatalf("review: %v", err)
	}

	out, err = runCLI(t, cmd("reviews", "P"), "")
	if err != nil {
		t.Fatalf("reviews: %v", err)
	}
	if !strings.Contains(out, "Média 4.0 (2 avaliações)") {
		t.Errorf("unexpected summary %q", out)
	}

	if _, err := runCLI(t, cmd("logout"), ""); err != nil {
		t.Fatalf("logout: %v", err)
	}
	out, _ = runCLI(t, cmd("whoami"), "")
	if !strings.Contains(out, "não autenticado") {
		t.Errorf("expected logged out, got %q", out)
	}
}

func TestFailedLoginClearsSession(t *testing.T) {
	api := &fakeAPI{}
	srv := httptest.NewServer(api.handler())
	defer srv.Close()

	base := []string{"-api", srv.URL, "-session", filepath.Join(t.TempDir(), "session.json")}
	cmd := func(args ...string) []string { return append(append([]string{}, base...), args...) }

	if _, err := runCLI(t, cmd("login", "ana@example.com", "segredo"), ""); err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, err := runCLI(t, cmd("login", "ana@example.com", "errada"), ""); err == nil {
		t.Fatal("expected failed login")
	}

	out, _ := runCLI(t, cmd("whoami"), "")
	if !strings.Contains(out, "não autenticado") {
		t.Errorf("failed login should clear the session, got %q", out)
	}
}

func TestVoiceCommands(t *testing.T) {
	args := []string{"-session", filepath.Join(t.TempDir(), "session.json"), "voice"}

	out, err := runCLI(t, args, "aumentar fonte\nalto contraste\nblá blá\nir para mapa\n")
	if err != nil {
		t.Fatalf("voice: %v", err)
	}
	if !strings.Contains(out, "navigate mapa") {
		t.Errorf("missing navigation in %q", out)
	}
	if !strings.HasSuffix(out, "fonte=110 contraste=true\n") {
		t.Errorf("unexpected final settings in %q", out)
	}
}
