package reviewview

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"conecta/internal/apiclient"
	"conecta/internal/domain/reviews"
	"conecta/internal/domain/users"
)

type fakeClient struct {
	mu        sync.Mutex
	byPlace   map[string][]reviews.Listing
	listErr   error
	submitErr error
	submitted []apiclient.ReviewInput
	// gate, when set, blocks ListReviews for the given place until closed.
	gate map[string]chan struct{}
	// submitGate, when set, blocks SubmitReview until closed.
	submitGate chan struct{}
}

func (f *fakeClient) ListReviews(ctx context.Context, placeID string) ([]reviews.Listing, error) {
	f.mu.Lock()
	g := f.gate[placeID]
	f.mu.Unlock()
	if g != nil {
		<-g
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]reviews.Listing(nil), f.byPlace[placeID]...), nil
}

func (f *fakeClient) SubmitReview(ctx context.Context, in apiclient.ReviewInput) error {
	f.mu.Lock()
	g := f.submitGate
	f.mu.Unlock()
	if g != nil {
		<-g
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitErr != nil {
		return f.submitErr
	}
	f.submitted = append(f.submitted, in)
	return nil
}

type fixedSession struct{ user *users.Public }

func (s fixedSession) Current() *users.Public { return s.user }

var ana = &users.Public{ID: 1, Name: "Ana", Email: "ana@example.com"}

func (f *fakeClient) setListErr(err error) {
	f.mu.Lock()
	f.listErr = err
	f.mu.Unlock()
}

func waitForState(t *testing.T, v *View, want State) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for v.Snapshot().State != want {
		if time.Now().After(deadline) {
			t.Fatalf("view never reached %s", want)
		}
		time.Sleep(time.Millisecond)
	}
}

func listing(rating int, at time.Time) reviews.Listing {
	return reviews.Listing{Rating: rating, UserEmail: "x@example.com", CriadoEm: at}
}

func TestSummarize(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name string
		in   []reviews.Listing
		want Summary
	}{
		{"empty", nil, Summary{}},
		{"five and three", []reviews.Listing{listing(3, now), listing(5, now)}, Summary{Average: 4.0, Count: 2}},
		{"rounds to one decimal", []reviews.Listing{listing(5, now), listing(4, now), listing(4, now)}, Summary{Average: 4.3, Count: 3}},
	}
	for _, tt := range tests {
		if got := Summarize(tt.in); got != tt.want {
			t.Errorf("%s: Summarize = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestSelectLoadsReviewsAndSummary(t *testing.T) {
	now := time.Now()
	c := &fakeClient{byPlace: map[string][]reviews.Listing{
		"P": {listing(3, now), listing(5, now.Add(-time.Minute))},
	}}
	v := New(c, fixedSession{})

	if s := v.Snapshot(); s.State != Idle || s.Place != nil {
		t.Fatalf("initial snapshot = %+v", s)
	}

	if err := v.Select(context.Background(), Place{ID: "P", Name: "Praça"}); err != nil {
		t.Fatal(err)
	}

	s := v.Snapshot()
	if s.State != Loaded || s.Place == nil || s.Place.ID != "P" {
		t.Fatalf("snapshot = %+v", s)
	}
	if s.Summary != (Summary{Average: 4.0, Count: 2}) {
		t.Errorf("summary = %+v, want 4.0 / 2", s.Summary)
	}

	if err := v.Select(context.Background(), Place{ID: "empty"}); err != nil {
		t.Fatal(err)
	}
	s = v.Snapshot()
	if s.State != Loaded || len(s.Reviews) != 0 || s.Summary != (Summary{}) {
		t.Errorf("empty place snapshot = %+v", s)
	}
}

func TestSelectFailureRestoresPreviousSelection(t *testing.T) {
	c := &fakeClient{byPlace: map[string][]reviews.Listing{"P": {listing(4, time.Now())}}}
	v := New(c, fixedSession{})
	if err := v.Select(context.Background(), Place{ID: "P"}); err != nil {
		t.Fatal(err)
	}

	boom := errors.New("network down")
	c.listErr = boom
	if err := v.Select(context.Background(), Place{ID: "Q"}); !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}

	s := v.Snapshot()
	if s.Place == nil || s.Place.ID != "P" || s.State != Loaded || len(s.Reviews) != 1 {
		t.Errorf("previous selection not restored: %+v", s)
	}
	if !errors.Is(s.Err, boom) {
		t.Errorf("snapshot error = %v", s.Err)
	}
}

func TestStaleResponseIsDiscarded(t *testing.T) {
	gate := make(chan struct{})
	c := &fakeClient{
		byPlace: map[string][]reviews.Listing{
			"slow": {listing(1, time.Now())},
			"fast": {listing(5, time.Now())},
		},
		gate: map[string]chan struct{}{"slow": gate},
	}
	v := New(c, fixedSession{})

	errc := make(chan error, 1)
	go func() { errc <- v.Select(context.Background(), Place{ID: "slow"}) }()

	// Wait until the slow selection has been registered.
	deadline := time.Now().Add(time.Second)
	for v.Snapshot().State != Loading {
		if time.Now().After(deadline) {
			t.Fatal("slow selection never started")
		}
		time.Sleep(time.Millisecond)
	}

	if err := v.Select(context.Background(), Place{ID: "fast"}); err != nil {
		t.Fatal(err)
	}
	close(gate)

	if err := <-errc; !errors.Is(err, ErrStale) {
		t.Errorf("slow Select err = %v, want ErrStale", err)
	}

	s := v.Snapshot()
	if s.Place.ID != "fast" || len(s.Reviews) != 1 || s.Reviews[0].Rating != 5 {
		t.Errorf("stale response overwrote newer selection: %+v", s)
	}
}

func TestFailedSelectDuringFetchSettlesToIdle(t *testing.T) {
	gate := make(chan struct{})
	c := &fakeClient{
		byPlace: map[string][]reviews.Listing{"slow": {listing(1, time.Now())}},
		gate:    map[string]chan struct{}{"slow": gate},
	}
	v := New(c, fixedSession{})

	errc := make(chan error, 1)
	go func() { errc <- v.Select(context.Background(), Place{ID: "slow"}) }()
	waitForState(t, v, Loading)

	boom := errors.New("boom")
	c.setListErr(boom)
	if err := v.Select(context.Background(), Place{ID: "fast"}); !errors.Is(err, boom) {
		t.Fatalf("fast Select err = %v", err)
	}
	close(gate)

	if err := <-errc; !errors.Is(err, ErrStale) {
		t.Errorf("slow Select err = %v, want ErrStale", err)
	}

	s := v.Snapshot()
	if s.State != Idle || s.Place != nil || len(s.Reviews) != 0 {
		t.Errorf("view left in a transient state: %+v", s)
	}
}

func TestFailedSelectDuringSubmitDoesNotBlockSubmits(t *testing.T) {
	gate := make(chan struct{})
	c := &fakeClient{
		byPlace:    map[string][]reviews.Listing{"P": {listing(4, time.Now())}},
		submitGate: gate,
	}
	v := New(c, fixedSession{user: ana})
	if err := v.Select(context.Background(), Place{ID: "P"}); err != nil {
		t.Fatal(err)
	}
	v.SetDraft(5, "")

	errc := make(chan error, 1)
	go func() { errc <- v.Submit(context.Background()) }()
	waitForState(t, v, Submitting)

	c.setListErr(errors.New("network down"))
	if err := v.Select(context.Background(), Place{ID: "Q"}); err == nil {
		t.Fatal("expected Select to fail")
	}
	close(gate)

	if err := <-errc; err != nil {
		t.Fatalf("Submit err = %v", err)
	}

	s := v.Snapshot()
	if s.State != Loaded || s.Place == nil || s.Place.ID != "P" {
		t.Fatalf("expected the loaded selection back, got %+v", s)
	}

	v.SetDraft(3, "")
	if err := v.Submit(context.Background()); err != nil {
		t.Errorf("next Submit err = %v", err)
	}
}

func TestSubmitPrependsOptimistically(t *testing.T) {
	old := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := &fakeClient{byPlace: map[string][]reviews.Listing{"P": {listing(5, old)}}}
	v := New(c, fixedSession{user: ana})
	submittedAt := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	v.now = func() time.Time { return submittedAt }

	if err := v.Select(context.Background(), Place{ID: "P", Name: "Praça"}); err != nil {
		t.Fatal(err)
	}
	v.SetDraft(3, "Calçada irregular")

	if err := v.Submit(context.Background()); err != nil {
		t.Fatal(err)
	}

	if len(c.submitted) != 1 {
		t.Fatalf("submitted = %d", len(c.submitted))
	}
	got := c.submitted[0]
	want := apiclient.ReviewInput{PoiID: "P", PoiName: "Praça", UserEmail: ana.Email, Rating: 3, Review: "Calçada irregular"}
	if got != want {
		t.Errorf("submitted %+v, want %+v", got, want)
	}

	s := v.Snapshot()
	if len(s.Reviews) != 2 || s.Reviews[0].Rating != 3 || !s.Reviews[0].CriadoEm.Equal(submittedAt) {
		t.Fatalf("new review not prepended: %+v", s.Reviews)
	}
	if s.Reviews[0].Review == nil || *s.Reviews[0].Review != "Calçada irregular" {
		t.Errorf("comment = %v", s.Reviews[0].Review)
	}
	if s.Summary != (Summary{Average: 4.0, Count: 2}) {
		t.Errorf("summary = %+v", s.Summary)
	}
	if s.Draft != (Draft{}) {
		t.Errorf("draft not reset: %+v", s.Draft)
	}
	if s.State != Loaded {
		t.Errorf("state = %s", s.State)
	}
}

func TestSubmitFailureLeavesStateUnchanged(t *testing.T) {
	c := &fakeClient{byPlace: map[string][]reviews.Listing{"P": {listing(5, time.Now())}}}
	v := New(c, fixedSession{user: ana})
	if err := v.Select(context.Background(), Place{ID: "P"}); err != nil {
		t.Fatal(err)
	}
	v.SetDraft(2, "ruim")

	boom := &apiclient.APIError{StatusCode: 500, Message: "db down"}
	c.submitErr = boom
	if err := v.Submit(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}

	s := v.Snapshot()
	if len(s.Reviews) != 1 || s.Summary.Count != 1 {
		t.Errorf("reviews changed after failure: %+v", s.Reviews)
	}
	if s.Draft != (Draft{Rating: 2, Comment: "ruim"}) {
		t.Errorf("draft should be kept for retry: %+v", s.Draft)
	}
	if s.State != Loaded {
		t.Errorf("state = %s, want loaded", s.State)
	}
}

func TestSubmitPreconditions(t *testing.T) {
	c := &fakeClient{}

	anon := New(c, fixedSession{})
	if err := anon.Submit(context.Background()); !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("anonymous Submit err = %v", err)
	}

	v := New(c, fixedSession{user: ana})
	if err := v.Submit(context.Background()); !errors.Is(err, ErrNoPlaceSelected) {
		t.Errorf("no place Submit err = %v", err)
	}

	if err := v.Select(context.Background(), Place{ID: "P"}); err != nil {
		t.Fatal(err)
	}
	if err := v.Submit(context.Background()); !errors.Is(err, ErrMissingRating) {
		t.Errorf("unset rating Submit err = %v", err)
	}
	if len(c.submitted) != 0 {
		t.Errorf("nothing should have been submitted, got %d", len(c.submitted))
	}
}

func TestRefreshServerWins(t *testing.T) {
	c := &fakeClient{byPlace: map[string][]reviews.Listing{"P": {listing(5, time.Now())}}}
	v := New(c, fixedSession{user: ana})
	if err := v.Select(context.Background(), Place{ID: "P"}); err != nil {
		t.Fatal(err)
	}
	v.SetDraft(1, "")
	if err := v.Submit(context.Background()); err != nil {
		t.Fatal(err)
	}
	if v.Snapshot().Summary.Count != 2 {
		t.Fatal("optimistic review missing")
	}

	// The server never recorded the review (e.g. another replica); the
	// refreshed list is authoritative.
	if err := v.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}
	if s := v.Snapshot(); s.Summary != (Summary{Average: 5, Count: 1}) {
		t.Errorf("after refresh summary = %+v", s.Summary)
	}
}

func TestDeselectClearsReviews(t *testing.T) {
	c := &fakeClient{byPlace: map[string][]reviews.Listing{"P": {listing(5, time.Now())}}}
	v := New(c, fixedSession{})
	if err := v.Select(context.Background(), Place{ID: "P"}); err != nil {
		t.Fatal(err)
	}

	v.Deselect()

	s := v.Snapshot()
	if s.State != Idle || s.Place != nil || len(s.Reviews) != 0 || s.Summary != (Summary{}) {
		t.Errorf("after Deselect snapshot = %+v", s)
	}
	if err := v.Refresh(context.Background()); !errors.Is(err, ErrNoPlaceSelected) {
		t.Errorf("Refresh without place err = %v", err)
	}
}
