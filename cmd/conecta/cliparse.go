package main

import (
	"errors"
	"flag"
	"io"
	"os"
	"time"

	"conecta/internal/session"
)

const defaultAPIURL = "http://localhost:8080"

type cliConfig struct {
	APIURL      string
	SessionPath string
	Timeout     time.Duration
	Command     string
	Args        []string
}

var errNoCommand = errors.New("command required: signup, login, logout, whoami, reviews, review or voice")

// parseFlags reads global flags, falling back to CONECTA_API_URL and the
// default session location.
func parseFlags(args []string, stderr io.Writer) (cliConfig, error) {
	var cfg cliConfig

	fs := flag.NewFlagSet("conecta", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&cfg.APIURL, "api", "", "API base URL (or CONECTA_API_URL)")
	fs.StringVar(&cfg.SessionPath, "session", "", "Session file")
	fs.DurationVar(&cfg.Timeout, "timeout", 15*time.Second, "Request timeout")

	if err := fs.Parse(args); err != nil {
		return cliConfig{}, err
	}

	if cfg.APIURL == "" {
		cfg.APIURL = os.Getenv("CONECTA_API_URL")
	}
	if cfg.APIURL == "" {
		cfg.APIURL = defaultAPIURL
	}

	if cfg.SessionPath == "" {
		path, err := session.DefaultPath()
		if err != nil {
			return cliConfig{}, err
		}
		cfg.SessionPath = path
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return cliConfig{}, errNoCommand
	}
	cfg.Command = rest[0]
	cfg.Args = rest[1:]

	return cfg, nil
}

type reviewFlags struct {
	Rating  int
	Comment string
	PlaceID string
	Name    string
}

func parseReviewFlags(args []string, stderr io.Writer) (reviewFlags, error) {
	var rf reviewFlags

	fs := flag.NewFlagSet("review", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&rf.Rating, "rating", 0, "Rating from 1 to 5")
	fs.StringVar(&rf.Comment, "comment", "", "Optional comment")

	if err := fs.Parse(args); err != nil {
		return reviewFlags{}, err
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return reviewFlags{}, errors.New("usage: review -rating N [-comment text] <poiId> [name]")
	}
	rf.PlaceID = rest[0]
	if len(rest) > 1 {
		rf.Name = rest[1]
	}
	return rf, nil
}
