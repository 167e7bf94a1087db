package hero

import (
	"context"
	"errors"
	"testing"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/fomolabs/fomo-cms/internal/validation"
)

func seedButtons(t *testing.T, svc Service, labels ...string) []*Button {
	t.Helper()
	created := make([]*Button, 0, len(labels))
	for _, label := range labels {
		button, err := svc.CreateButton(context.Background(), CreateButtonInput{
			Label: label,
			URL:   "https://fomo.example/" + label,
		})
		if err != nil {
			t.Fatalf("seed button %q: %v", label, err)
		}
		created = append(created, button)
	}
	return created
}

func TestService_CreateButton_Validates(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	_, err := svc.CreateButton(context.Background(), CreateButtonInput{URL: "https://fomo.example"})
	var verrs ozzo.Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validation errors, got %v", err)
	}
	if _, ok := verrs["label"]; !ok {
		t.Fatalf("expected label issue, got %v", verrs)
	}
}

func TestService_CreateButton_FourthActiveRejected(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	seedButtons(t, svc, "join", "explore", "buy")

	_, err := svc.CreateButton(context.Background(), CreateButtonInput{
		Label: "extra",
		URL:   "https://fomo.example/extra",
	})
	var capErr *validation.CapacityError
	if !errors.As(err, &capErr) {
		t.Fatalf("expected CapacityError, got %v", err)
	}
	if capErr.Limit != 3 {
		t.Fatalf("expected limit 3, got %d", capErr.Limit)
	}

	records, _ := repo.List(context.Background())
	if len(records) != 3 {
		t.Fatalf("expected no write past capacity, got %d buttons", len(records))
	}
}

func TestService_CreateButton_InactivePastCapAllowed(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	seedButtons(t, svc, "join", "explore", "buy")

	inactive := false
	button, err := svc.CreateButton(context.Background(), CreateButtonInput{
		Label:    "later",
		URL:      "https://fomo.example/later",
		IsActive: &inactive,
	})
	if err != nil {
		t.Fatalf("create inactive: %v", err)
	}
	if button.IsActive {
		t.Fatal("expected inactive button")
	}
}

func TestService_UpdateButton_ActivationRespectsCap(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	seedButtons(t, svc, "join", "explore", "buy")

	inactive := false
	parked, err := svc.CreateButton(context.Background(), CreateButtonInput{
		Label:    "parked",
		URL:      "https://fomo.example/parked",
		IsActive: &inactive,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	active := true
	_, err = svc.UpdateButton(context.Background(), UpdateButtonInput{
		ID:       parked.ID,
		IsActive: &active,
	})
	var capErr *validation.CapacityError
	if !errors.As(err, &capErr) {
		t.Fatalf("expected CapacityError on activation, got %v", err)
	}
}

func TestService_UpdateButton_ActiveStaysActive(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	created := seedButtons(t, svc, "join", "explore", "buy")

	// Re-submitting is_active=true for an already-active button is not a
	// capacity violation.
	active := true
	label := "join us"
	updated, err := svc.UpdateButton(context.Background(), UpdateButtonInput{
		ID:       created[0].ID,
		Label:    &label,
		IsActive: &active,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Label != "join us" {
		t.Fatalf("unexpected label %q", updated.Label)
	}
}

func TestService_ListActiveButtons(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	created := seedButtons(t, svc, "join", "explore")

	off := false
	if _, err := svc.UpdateButton(context.Background(), UpdateButtonInput{
		ID:       created[0].ID,
		IsActive: &off,
	}); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	active, err := svc.ListActiveButtons(context.Background())
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(active) != 1 || active[0].ID != created[1].ID {
		t.Fatalf("unexpected active set: %d", len(active))
	}
}
