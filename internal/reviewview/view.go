// Package reviewview holds the client-side review panel of the map: it loads
// the reviews of the selected place, derives the rating summary and applies
// new submissions locally without waiting for a re-fetch.
package reviewview

import (
	"context"
	"errors"
	"sync"
	"time"

	"conecta/internal/apiclient"
	"conecta/internal/domain/reviews"
	"conecta/internal/domain/users"
)

type State int

const (
	Idle State = iota
	Loading
	Loaded
	Submitting
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Submitting:
		return "submitting"
	}
	return "unknown"
}

var (
	ErrNotAuthenticated = errors.New("login required to submit a review")
	ErrNoPlaceSelected  = errors.New("no place selected")
	ErrBusy             = errors.New("a review submission is already in flight")
	ErrMissingRating    = errors.New("rating is required")
	// ErrStale is returned when the selection changed while a request was in
	// flight; its result was discarded.
	ErrStale = errors.New("selection changed; response discarded")
)

type Client interface {
	ListReviews(ctx context.Context, placeID string) ([]reviews.Listing, error)
	SubmitReview(ctx context.Context, in apiclient.ReviewInput) error
}

// SessionSource reports the authenticated user, or nil.
type SessionSource interface {
	Current() *users.Public
}

type Place struct {
	ID   string
	Name string
}

type Summary struct {
	Average float64
	Count   int
}

// Draft is the pending input of the review form. Rating 0 means unset.
type Draft struct {
	Rating  int
	Comment string
}

// Snapshot is a copy of the view for rendering.
type Snapshot struct {
	State   State
	Place   *Place
	Reviews []reviews.Listing
	Summary Summary
	Draft   Draft
	Err     error
}

type View struct {
	mu      sync.Mutex
	client  Client
	session SessionSource
	now     func() time.Time

	state   State
	place   *Place
	reviews []reviews.Listing
	summary Summary
	draft   Draft
	err     error
	gen     uint64

	// settled is the last Idle or Loaded view. A failed fetch falls back to
	// it; transient states are never restored.
	settled saved
}

func New(client Client, session SessionSource) *View {
	return &View{client: client, session: session, now: time.Now}
}

// Summarize computes the mean rating rounded to one decimal and the count.
func Summarize(list []reviews.Listing) Summary {
	if len(list) == 0 {
		return Summary{}
	}
	total := 0
	for _, r := range list {
		total += r.Rating
	}
	return Summary{
		Average: reviews.RoundAverage(float64(total) / float64(len(list))),
		Count:   len(list),
	}
}

func (v *View) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()

	snap := Snapshot{
		State:   v.state,
		Summary: v.summary,
		Draft:   v.draft,
		Err:     v.err,
		Reviews: append([]reviews.Listing(nil), v.reviews...),
	}
	if v.place != nil {
		p := *v.place
		snap.Place = &p
	}
	return snap
}

// Select loads the reviews of p. If the fetch fails the view returns to the
// last loaded selection, or to Idle when there is none; if the selection changes before the response arrives the
// response is dropped and ErrStale returned.
func (v *View) Select(ctx context.Context, p Place) error {
	v.mu.Lock()
	v.gen++
	gen := v.gen
	v.state = Loading
	v.place = &p
	v.reviews = nil
	v.summary = Summary{}
	v.err = nil
	v.mu.Unlock()

	list, err := v.client.ListReviews(ctx, p.ID)

	v.mu.Lock()
	defer v.mu.Unlock()

	if v.gen != gen {
		return ErrStale
	}
	if err != nil {
		v.restoreLocked(v.settled)
		v.err = err
		return err
	}
	v.setLoadedLocked(list)
	return nil
}

// Refresh re-fetches the selected place. The server list replaces the local
// one, including reviews added optimistically.
func (v *View) Refresh(ctx context.Context) error {
	v.mu.Lock()
	if v.place == nil {
		v.mu.Unlock()
		return ErrNoPlaceSelected
	}
	p := *v.place
	v.mu.Unlock()

	return v.Select(ctx, p)
}

func (v *View) Deselect() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.gen++
	v.state = Idle
	v.place = nil
	v.reviews = nil
	v.summary = Summary{}
	v.err = nil
	v.settled = saved{state: Idle}
}

func (v *View) SetDraft(rating int, comment string) {
	v.mu.Lock()
	v.draft = Draft{Rating: rating, Comment: comment}
	v.mu.Unlock()
}

// Submit posts the draft for the selected place. On success the review is
// prepended locally and the draft reset; on failure nothing changes except
// the reported error.
func (v *View) Submit(ctx context.Context) error {
	user := v.session.Current()
	if user == nil {
		return ErrNotAuthenticated
	}

	v.mu.Lock()
	switch {
	case v.place == nil:
		v.mu.Unlock()
		return ErrNoPlaceSelected
	case v.state == Submitting:
		v.mu.Unlock()
		return ErrBusy
	case v.draft.Rating == 0:
		v.mu.Unlock()
		return ErrMissingRating
	}
	gen := v.gen
	place := *v.place
	draft := v.draft
	prevState := v.state
	v.state = Submitting
	v.mu.Unlock()

	err := v.client.SubmitReview(ctx, apiclient.ReviewInput{
		PoiID:     place.ID,
		PoiName:   place.Name,
		UserEmail: user.Email,
		Rating:    draft.Rating,
		Review:    draft.Comment,
	})

	v.mu.Lock()
	defer v.mu.Unlock()

	if v.gen != gen {
		// The place changed mid-flight; the review was stored but belongs to
		// a list that is no longer shown.
		return err
	}
	v.state = prevState
	if err != nil {
		v.err = err
		return err
	}

	v.reviews = prepend(v.reviews, newListing(draft, user.Email, v.now()))
	v.summary = Summarize(v.reviews)
	v.draft = Draft{}
	v.state = Loaded
	v.err = nil
	v.settled = v.saveLocked()
	return nil
}

func newListing(d Draft, email string, at time.Time) reviews.Listing {
	l := reviews.Listing{Rating: d.Rating, UserEmail: email, CriadoEm: at}
	if d.Comment != "" {
		c := d.Comment
		l.Review = &c
	}
	return l
}

func prepend(list []reviews.Listing, l reviews.Listing) []reviews.Listing {
	out := make([]reviews.Listing, 0, len(list)+1)
	out = append(out, l)
	return append(out, list...)
}

type saved struct {
	state   State
	place   *Place
	reviews []reviews.Listing
	summary Summary
}

func (v *View) saveLocked() saved {
	return saved{state: v.state, place: v.place, reviews: v.reviews, summary: v.summary}
}

func (v *View) restoreLocked(s saved) {
	v.state, v.place, v.reviews, v.summary = s.state, s.place, s.reviews, s.summary
}

func (v *View) setLoadedLocked(list []reviews.Listing) {
	if list == nil {
		list = []reviews.Listing{}
	}
	v.reviews = list
	v.summary = Summarize(list)
	v.state = Loaded
	v.err = nil
	v.settled = v.saveLocked()
}
