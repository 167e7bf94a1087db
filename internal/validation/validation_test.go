package validation

import (
	"errors"
	"fmt"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

func TestIssuesFlattensNestedErrors(t *testing.T) {
	err := validation.Errors{
		"title": validation.NewError("title.required", "title is required"),
		"links": validation.Errors{
			"url": validation.NewError("url.invalid", "url must be absolute"),
		},
	}

	issues := Issues(err)
	if len(issues) != 2 {
		t.Fatalf("expected 2 issues, got %d", len(issues))
	}
	if issues["title"] != "title is required" {
		t.Fatalf("unexpected title issue: %q", issues["title"])
	}
	if issues["links.url"] != "url must be absolute" {
		t.Fatalf("unexpected nested issue: %q", issues["links.url"])
	}
}

func TestIssuesIgnoresOtherErrors(t *testing.T) {
	if got := Issues(errors.New("boom")); got != nil {
		t.Fatalf("expected nil for non-validation error, got %v", got)
	}
	if got := Issues(nil); got != nil {
		t.Fatalf("expected nil for nil error, got %v", got)
	}
}

func TestCapacityError(t *testing.T) {
	base := &CapacityError{Resource: "hero buttons", Limit: 3}
	wrapped := fmt.Errorf("saving: %w", base)

	if !IsCapacity(wrapped) {
		t.Fatal("expected wrapped capacity error to match")
	}
	if IsCapacity(errors.New("other")) {
		t.Fatal("unexpected capacity match")
	}

	var capErr *CapacityError
	if !errors.As(wrapped, &capErr) || capErr.Limit != 3 {
		t.Fatalf("expected limit 3, got %+v", capErr)
	}
}
