package adminsession

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
)

type cardDraft struct {
	Title string
	Link  string
}

func TestSession_SubmitCreate_Success(t *testing.T) {
	var created []cardDraft
	refreshed := 0
	session := New(Config[cardDraft]{
		Validate: func(d cardDraft) error {
			if d.Title == "" {
				return errors.New("title required")
			}
			return nil
		},
		SubmitCreate: func(_ context.Context, d cardDraft) error {
			created = append(created, d)
			return nil
		},
		Refresh: func(context.Context) error {
			refreshed++
			return nil
		},
	})

	if err := session.StartCreate(cardDraft{}); err != nil {
		t.Fatalf("start create: %v", err)
	}
	if err := session.UpdateDraft(func(d *cardDraft) { d.Title = "Alpha" }); err != nil {
		t.Fatalf("update draft: %v", err)
	}
	if err := session.Submit(context.Background()); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if len(created) != 1 || created[0].Title != "Alpha" {
		t.Fatalf("unexpected create calls: %+v", created)
	}
	if refreshed != 1 {
		t.Fatalf("expected one refresh, got %d", refreshed)
	}
	if session.State() != StateIdle {
		t.Fatalf("expected idle, got %s", session.State())
	}
}

func TestSession_Submit_ValidationFailsFast(t *testing.T) {
	submits := 0
	session := New(Config[cardDraft]{
		Validate: func(d cardDraft) error {
			if d.Title == "" {
				return errors.New("title required")
			}
			return nil
		},
		SubmitCreate: func(context.Context, cardDraft) error {
			submits++
			return nil
		},
	})

	if err := session.StartCreate(cardDraft{Link: "https://x"}); err != nil {
		t.Fatalf("start create: %v", err)
	}
	if err := session.Submit(context.Background()); err == nil {
		t.Fatal("expected validation error")
	}

	if submits != 0 {
		t.Fatalf("submit func should not run on invalid draft, ran %d times", submits)
	}
	if session.State() != StateCreating {
		t.Fatalf("expected session to stay open, got %s", session.State())
	}
	if draft, ok := session.Draft(); !ok || draft.Link != "https://x" {
		t.Fatalf("draft lost: %+v ok=%v", draft, ok)
	}
}

func TestSession_Submit_FailureKeepsDraft(t *testing.T) {
	submitErr := errors.New("backend down")
	session := New(Config[cardDraft]{
		SubmitUpdate: func(context.Context, uuid.UUID, cardDraft) error {
			return submitErr
		},
	})

	id := uuid.New()
	if err := session.StartEdit(id, cardDraft{Title: "Alpha"}); err != nil {
		t.Fatalf("start edit: %v", err)
	}
	if err := session.Submit(context.Background()); !errors.Is(err, submitErr) {
		t.Fatalf("expected submit error, got %v", err)
	}

	if session.State() != StateEditing {
		t.Fatalf("expected editing after failure, got %s", session.State())
	}
	if !errors.Is(session.Err(), submitErr) {
		t.Fatalf("expected retained error, got %v", session.Err())
	}
	if draft, ok := session.Draft(); !ok || draft.Title != "Alpha" {
		t.Fatalf("draft lost after failure: %+v", draft)
	}
	if got, ok := session.EditingID(); !ok || got != id {
		t.Fatalf("editing id lost: %v", got)
	}
}

func TestSession_Submit_OverlapRejected(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	session := New(Config[cardDraft]{
		SubmitCreate: func(context.Context, cardDraft) error {
			close(started)
			<-release
			return nil
		},
	})

	if err := session.StartCreate(cardDraft{Title: "Alpha"}); err != nil {
		t.Fatalf("start create: %v", err)
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := session.Submit(context.Background()); err != nil {
			t.Errorf("first submit: %v", err)
		}
	}()

	<-started
	if err := session.Submit(context.Background()); !errors.Is(err, ErrSubmitInFlight) {
		t.Fatalf("expected ErrSubmitInFlight, got %v", err)
	}
	if err := session.UpdateDraft(func(*cardDraft) {}); !errors.Is(err, ErrSubmitInFlight) {
		t.Fatalf("expected ErrSubmitInFlight on draft change, got %v", err)
	}
	if err := session.Cancel(); !errors.Is(err, ErrSubmitInFlight) {
		t.Fatalf("expected ErrSubmitInFlight on cancel, got %v", err)
	}

	close(release)
	wg.Wait()

	if session.State() != StateIdle {
		t.Fatalf("expected idle after submit finished, got %s", session.State())
	}
}

func TestSession_Cancel_DiscardsDraft(t *testing.T) {
	session := New(Config[cardDraft]{})

	if err := session.StartCreate(cardDraft{Title: "Alpha"}); err != nil {
		t.Fatalf("start create: %v", err)
	}
	if err := session.Cancel(); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	if session.State() != StateIdle {
		t.Fatalf("expected idle, got %s", session.State())
	}
	if _, ok := session.Draft(); ok {
		t.Fatal("expected no draft after cancel")
	}
}

func TestSession_UpdateDraft_RequiresOpenDialog(t *testing.T) {
	session := New(Config[cardDraft]{})

	err := session.UpdateDraft(func(*cardDraft) {})
	if !errors.Is(err, ErrNotEditing) {
		t.Fatalf("expected ErrNotEditing, got %v", err)
	}
}
