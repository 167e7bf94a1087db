package roadmap

import (
	"context"
	"errors"
	"testing"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/fomolabs/fomo-cms/internal/i18n"
	"github.com/fomolabs/fomo-cms/internal/ordering"
)

func seedTasks(t *testing.T, svc Service, names ...string) []*Task {
	t.Helper()
	created := make([]*Task, 0, len(names))
	for _, name := range names {
		task, err := svc.CreateTask(context.Background(), CreateTaskInput{
			Name:     i18n.NewText(name, name),
			Category: "q3",
		})
		if err != nil {
			t.Fatalf("seed task %q: %v", name, err)
		}
		created = append(created, task)
	}
	return created
}

func TestService_CreateTask_DefaultsStatus(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	task, err := svc.CreateTask(context.Background(), CreateTaskInput{
		Name: i18n.Text{EN: "Launch beta"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if task.Status != StatusProgress {
		t.Fatalf("expected default status progress, got %q", task.Status)
	}
}

func TestService_CreateTask_RejectsUnknownStatus(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	_, err := svc.CreateTask(context.Background(), CreateTaskInput{
		Name:   i18n.Text{EN: "Launch beta"},
		Status: Status("paused"),
	})
	var verrs ozzo.Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validation errors, got %v", err)
	}
	if _, ok := verrs["status"]; !ok {
		t.Fatalf("expected status issue, got %v", verrs)
	}
}

func TestService_UpdateTask_TogglesStatus(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	created := seedTasks(t, svc, "ship")

	done := StatusDone
	updated, err := svc.UpdateTask(context.Background(), UpdateTaskInput{
		ID:     created[0].ID,
		Status: &done,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != StatusDone {
		t.Fatalf("expected status done, got %q", updated.Status)
	}
}

func TestService_ReorderTasks_FullSetRequired(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	created := seedTasks(t, svc, "a", "b", "c")

	_, err := svc.ReorderTasks(context.Background(), []ordering.Update{
		{ID: created[0].ID, Order: 2},
		{ID: created[1].ID, Order: 0},
	})
	if err == nil {
		t.Fatal("expected partial submission to be rejected")
	}

	got, err := svc.ReorderTasks(context.Background(), []ordering.Update{
		{ID: created[0].ID, Order: 2},
		{ID: created[1].ID, Order: 0},
		{ID: created[2].ID, Order: 1},
	})
	if err != nil {
		t.Fatalf("reorder: %v", err)
	}
	if got[0].ID != created[1].ID || got[1].ID != created[2].ID || got[2].ID != created[0].ID {
		t.Fatal("unexpected order after reorder")
	}
}

func TestService_ListTasksByCategory(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	seedTasks(t, svc, "a", "b")

	if _, err := svc.CreateTask(context.Background(), CreateTaskInput{
		Name:     i18n.Text{EN: "later"},
		Category: "q4",
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.ListTasksByCategory(context.Background(), "q4")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].Name.EN != "later" {
		t.Fatalf("unexpected q4 tasks: %d", len(got))
	}
}
