// Command conecta is a terminal client for the Conecta Portão API. It keeps
// the logged in user in a local session file and drives the review view.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"conecta/internal/accessibility"
	"conecta/internal/apiclient"
	"conecta/internal/reviewview"
	"conecta/internal/session"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "erro:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	client := apiclient.New(cfg.APIURL, cfg.Timeout)

	sess, err := session.Open(session.NewStore(cfg.SessionPath))
	if err != nil {
		return fmt.Errorf("open session: %w", err)
	}

	switch cfg.Command {
	case "signup":
		if len(cfg.Args) != 3 {
			return errors.New("usage: signup <nome> <email> <senha>")
		}
		if err := client.Signup(ctx, cfg.Args[0], cfg.Args[1], cfg.Args[2]); err != nil {
			return err
		}
		fmt.Fprintln(stdout, "Usuário cadastrado com sucesso!")
		return nil

	case "login":
		if len(cfg.Args) != 2 {
			return errors.New("usage: login <email> <senha>")
		}
		user, err := sess.Login(ctx, client, cfg.Args[0], cfg.Args[1])
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Olá, %s!\n", user.Name)
		return nil

	case "logout":
		return sess.Logout()

	case "whoami":
		if u := sess.Current(); u != nil {
			fmt.Fprintf(stdout, "%s <%s>\n", u.Name, u.Email)
			return nil
		}
		fmt.Fprintln(stdout, "não autenticado")
		return nil

	case "reviews":
		if len(cfg.Args) == 0 {
			return errors.New("usage: reviews <poiId> [name]")
		}
		place := reviewview.Place{ID: cfg.Args[0]}
		if len(cfg.Args) > 1 {
			place.Name = cfg.Args[1]
		}
		view := reviewview.New(client, sess)
		if err := view.Select(ctx, place); err != nil {
			return err
		}
		printSnapshot(stdout, view.Snapshot())
		return nil

	case "review":
		rf, err := parseReviewFlags(cfg.Args, stderr)
		if err != nil {
			return err
		}
		view := reviewview.New(client, sess)
		if err := view.Select(ctx, reviewview.Place{ID: rf.PlaceID, Name: rf.Name}); err != nil {
			return err
		}
		view.SetDraft(rf.Rating, rf.Comment)
		if err := view.Submit(ctx); err != nil {
			return err
		}
		fmt.Fprintln(stdout, "Avaliação registrada com sucesso!")
		printSnapshot(stdout, view.Snapshot())
		return nil

	case "voice":
		src := newLineSource(ctx, stdin)
		final := accessibility.Run(ctx, src, accessibility.DefaultSettings(), func(a accessibility.Action, s accessibility.Settings) {
			if a.Target != "" {
				fmt.Fprintf(stdout, "%s %s\n", a.Kind, a.Target)
				return
			}
			fmt.Fprintf(stdout, "%s fonte=%d contraste=%t\n", a.Kind, s.FontSize, s.HighContrast)
		})
		fmt.Fprintf(stdout, "fonte=%d contraste=%t\n", final.FontSize, final.HighContrast)
		return nil
	}

	return fmt.Errorf("unknown command %q", cfg.Command)
}

func printSnapshot(w io.Writer, snap reviewview.Snapshot) {
	if snap.Summary.Count == 0 {
		fmt.Fprintln(w, "Nenhuma avaliação ainda.")
		return
	}
	fmt.Fprintf(w, "Média %.1f (%d avaliações)\n", snap.Summary.Average, snap.Summary.Count)
	for _, r := range snap.Reviews {
		comment := ""
		if r.Review != nil {
			comment = *r.Review
		}
		fmt.Fprintf(w, "%d★ %s %s %s\n", r.Rating, r.UserEmail, r.CriadoEm.Format("02/01/2006"), comment)
	}
}

// lineSource turns each input line into a recognized command.
type lineSource struct {
	ch chan string
}

func newLineSource(ctx context.Context, r io.Reader) *lineSource {
	src := &lineSource{ch: make(chan string)}
	go func() {
		defer close(src.ch)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case src.ch <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return src
}

func (s *lineSource) Commands() <-chan string {
	return s.ch
}
