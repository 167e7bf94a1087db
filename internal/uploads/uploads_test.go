package uploads

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestService_Save_StoresUnderUUIDName(t *testing.T) {
	svc, err := NewService(t.TempDir())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	url, err := svc.Save(context.Background(), "image/png", strings.NewReader("not-really-a-png"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.HasPrefix(url, URLPrefix) || !strings.HasSuffix(url, ".png") {
		t.Fatalf("unexpected url %q", url)
	}

	name := strings.TrimPrefix(url, URLPrefix)
	data, err := os.ReadFile(filepath.Join(svc.Dir(), name))
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(data) != "not-really-a-png" {
		t.Fatalf("stored content mismatch: %q", data)
	}
}

func TestService_Save_RejectsUnsupportedType(t *testing.T) {
	svc, err := NewService(t.TempDir())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, err = svc.Save(context.Background(), "application/pdf", strings.NewReader("%PDF"))
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
}

func TestService_Save_RejectsOversizeBody(t *testing.T) {
	dir := t.TempDir()
	svc, err := NewService(dir, WithMaxBytes(8))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, err = svc.Save(context.Background(), "image/jpeg", strings.NewReader("way more than eight bytes"))
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected partial file removed, found %d entries", len(entries))
	}
}
