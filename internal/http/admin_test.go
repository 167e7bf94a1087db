package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/fomolabs/fomo-cms/internal/cards"
	"github.com/fomolabs/fomo-cms/internal/hero"
	"github.com/fomolabs/fomo-cms/internal/i18n"
	"github.com/fomolabs/fomo-cms/internal/sections"
)

func TestAdminAPI_CardLifecycle(t *testing.T) {
	mux := setupAdminAPI(t)

	createBody := map[string]any{
		"title":     map[string]any{"en": "Analytics", "ru": "Аналитика"},
		"link":      "https://fomo.example/analytics",
		"image_url": "https://img.fomo.example/analytics.png",
	}
	createResp := doJSONRequest(t, mux, http.MethodPost, "/api/admin/cards", createBody, http.StatusCreated)

	var created cards.Card
	decodeJSONBody(t, createResp, &created)
	if created.ID == uuid.Nil {
		t.Fatalf("expected created card id")
	}
	if created.Position != 0 {
		t.Fatalf("expected first card at position 0 got %d", created.Position)
	}

	secondResp := doJSONRequest(t, mux, http.MethodPost, "/api/admin/cards", map[string]any{
		"title":     map[string]any{"en": "Signals"},
		"link":      "https://fomo.example/signals",
		"image_url": "https://img.fomo.example/signals.png",
	}, http.StatusCreated)
	var second cards.Card
	decodeJSONBody(t, secondResp, &second)

	listResp := doJSONRequest(t, mux, http.MethodGet, "/api/admin/cards", nil, http.StatusOK)
	var list listResponse[*cards.Card]
	decodeJSONBody(t, listResp, &list)
	if len(list.Items) != 2 {
		t.Fatalf("expected 2 cards got %d", len(list.Items))
	}

	reorderBody := map[string]any{
		"items": []map[string]any{
			{"id": second.ID.String(), "order": 0},
			{"id": created.ID.String(), "order": 1},
		},
	}
	reorderResp := doJSONRequest(t, mux, http.MethodPost, "/api/admin/cards/reorder", reorderBody, http.StatusOK)
	var reordered listResponse[*cards.Card]
	decodeJSONBody(t, reorderResp, &reordered)
	if reordered.Items[0].ID != second.ID {
		t.Fatalf("expected reordered first card %s got %s", second.ID, reordered.Items[0].ID)
	}

	doJSONRequest(t, mux, http.MethodDelete, "/api/admin/cards/"+created.ID.String(), nil, http.StatusNoContent)
	doJSONRequest(t, mux, http.MethodGet, "/api/admin/cards/"+created.ID.String(), nil, http.StatusNotFound)
}

func TestAdminAPI_CardReorderRejectsPartialSet(t *testing.T) {
	mux := setupAdminAPI(t)

	var ids []string
	for _, title := range []string{"One", "Two", "Three"} {
		resp := doJSONRequest(t, mux, http.MethodPost, "/api/admin/cards", map[string]any{
			"title":     map[string]any{"en": title},
			"link":      "https://fomo.example/" + title,
			"image_url": "https://img.fomo.example/card.png",
		}, http.StatusCreated)
		var card cards.Card
		decodeJSONBody(t, resp, &card)
		ids = append(ids, card.ID.String())
	}

	partial := map[string]any{
		"items": []map[string]any{{"id": ids[0], "order": 0}},
	}
	resp := doJSONRequest(t, mux, http.MethodPost, "/api/admin/cards/reorder", partial, http.StatusBadRequest)
	var body errorResponse
	decodeJSONBody(t, resp, &body)
	if body.Error != "bad_request" {
		t.Fatalf("expected bad_request got %q", body.Error)
	}
}

func TestAdminAPI_CardValidationFailure(t *testing.T) {
	mux := setupAdminAPI(t)

	resp := doJSONRequest(t, mux, http.MethodPost, "/api/admin/cards", map[string]any{
		"title": map[string]any{},
	}, http.StatusUnprocessableEntity)
	var body errorResponse
	decodeJSONBody(t, resp, &body)
	if body.Error != "validation_failed" {
		t.Fatalf("expected validation_failed got %q", body.Error)
	}
	if _, ok := body.Issues["title"]; !ok {
		t.Fatalf("expected a title issue, got %v", body.Issues)
	}
}

func TestAdminAPI_HeroButtonCapacity(t *testing.T) {
	mux := setupAdminAPI(t)

	for _, label := range []string{"Launch", "Docs", "Discord"} {
		doJSONRequest(t, mux, http.MethodPost, "/api/admin/hero/buttons", map[string]any{
			"label": label,
			"url":   "https://fomo.example/" + label,
		}, http.StatusCreated)
	}

	resp := doJSONRequest(t, mux, http.MethodPost, "/api/admin/hero/buttons", map[string]any{
		"label": "One Too Many",
		"url":   "https://fomo.example/extra",
	}, http.StatusUnprocessableEntity)
	var body errorResponse
	decodeJSONBody(t, resp, &body)
	if body.Error != "capacity_exceeded" {
		t.Fatalf("expected capacity_exceeded got %q", body.Error)
	}

	// Inactive buttons are not counted against the render cap.
	inactive := false
	doJSONRequest(t, mux, http.MethodPost, "/api/admin/hero/buttons", map[string]any{
		"label":     "Backup",
		"url":       "https://fomo.example/backup",
		"is_active": inactive,
	}, http.StatusCreated)
}

func TestAdminAPI_SettingsRoundTrip(t *testing.T) {
	mux := setupAdminAPI(t)

	getResp := doJSONRequest(t, mux, http.MethodGet, "/api/admin/settings/community", nil, http.StatusOK)
	var before sections.CommunitySettings
	decodeJSONBody(t, getResp, &before)
	if before.Title.Resolve(i18n.LanguageEN) == "" {
		t.Fatalf("expected default community title, got %+v", before.Title)
	}

	patchResp := doJSONRequest(t, mux, http.MethodPut, "/api/admin/settings/community", map[string]any{
		"title": map[string]any{"en": "Join the crowd"},
	}, http.StatusOK)
	var after sections.CommunitySettings
	decodeJSONBody(t, patchResp, &after)
	if after.Title.Resolve(i18n.LanguageEN) != "Join the crowd" {
		t.Fatalf("expected patched community title, got %+v", after.Title)
	}
}

func TestAdminAPI_FooterSectionReorder(t *testing.T) {
	mux := setupAdminAPI(t)

	getResp := doJSONRequest(t, mux, http.MethodGet, "/api/admin/settings/footer", nil, http.StatusOK)
	var footer sections.FooterSettings
	decodeJSONBody(t, getResp, &footer)
	if len(footer.NavigationSections) < 2 {
		t.Fatalf("expected default footer sections, got %d", len(footer.NavigationSections))
	}

	items := make([]map[string]any, len(footer.NavigationSections))
	for i, section := range footer.NavigationSections {
		items[i] = map[string]any{
			"id":    section.ID.String(),
			"order": len(footer.NavigationSections) - 1 - i,
		}
	}
	resp := doJSONRequest(t, mux, http.MethodPost, "/api/admin/settings/footer/sections/reorder", map[string]any{
		"items": items,
	}, http.StatusOK)
	var reordered sections.FooterSettings
	decodeJSONBody(t, resp, &reordered)
	if reordered.NavigationSections[0].ID != footer.NavigationSections[len(footer.NavigationSections)-1].ID {
		t.Fatalf("expected last section to move first")
	}
	for i, section := range reordered.NavigationSections {
		if section.Order != i {
			t.Fatalf("expected dense orders, section %d has order %d", i, section.Order)
		}
	}
}

func TestAdminAPI_UnconfiguredServiceIs503(t *testing.T) {
	api := NewAdminAPI()
	mux := http.NewServeMux()
	if err := api.Register(mux); err != nil {
		t.Fatalf("register api: %v", err)
	}

	resp := doJSONRequest(t, mux, http.MethodGet, "/api/admin/cards", nil, http.StatusServiceUnavailable)
	var body errorResponse
	decodeJSONBody(t, resp, &body)
	if body.Error != "service_unavailable" {
		t.Fatalf("expected service_unavailable got %q", body.Error)
	}
}

func setupAdminAPI(t *testing.T) *http.ServeMux {
	t.Helper()

	api := NewAdminAPI(
		WithCardService(cards.NewService(cards.NewMemoryRepository())),
		WithHeroService(hero.NewService(hero.NewMemoryRepository())),
		WithSectionService(sections.NewService(sections.NewMemoryStore())),
	)
	mux := http.NewServeMux()
	if err := api.Register(mux); err != nil {
		t.Fatalf("register api: %v", err)
	}
	return mux
}

func doJSONRequest(t *testing.T, mux *http.ServeMux, method, path string, body any, wantStatus int) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != wantStatus {
		t.Fatalf("expected status %d got %d (%s)", wantStatus, rec.Code, rec.Body.String())
	}
	return rec
}

func decodeJSONBody(t *testing.T, rec *httptest.ResponseRecorder, target any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), target); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}
