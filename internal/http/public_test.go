package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fomolabs/fomo-cms/internal/analytics"
	"github.com/fomolabs/fomo-cms/internal/auth"
	"github.com/fomolabs/fomo-cms/internal/cards"
	"github.com/fomolabs/fomo-cms/internal/evolution"
	"github.com/fomolabs/fomo-cms/internal/faq"
	"github.com/fomolabs/fomo-cms/internal/hero"
	"github.com/fomolabs/fomo-cms/internal/navigation"
	"github.com/fomolabs/fomo-cms/internal/partners"
	"github.com/fomolabs/fomo-cms/internal/roadmap"
	"github.com/fomolabs/fomo-cms/internal/sections"
	"github.com/fomolabs/fomo-cms/internal/site"
	"github.com/fomolabs/fomo-cms/internal/team"
)

func setupPublicAPI(t *testing.T) (*http.ServeMux, analytics.Service) {
	t.Helper()

	projector := site.NewProjector(site.Services{
		Navigation: navigation.NewService(navigation.NewMemoryRepository()),
		Sections:   sections.NewService(sections.NewMemoryStore()),
		Hero:       hero.NewService(hero.NewMemoryRepository()),
		Cards:      cards.NewService(cards.NewMemoryRepository()),
		Roadmap:    roadmap.NewService(roadmap.NewMemoryRepository()),
		Evolution:  evolution.NewService(evolution.NewMemoryLevelRepository(), evolution.NewMemoryBadgeRepository()),
		Team:       team.NewService(team.NewMemoryRepository()),
		Partners:   partners.NewService(partners.NewMemoryRepository()),
		FAQ:        faq.NewService(faq.NewMemoryRepository()),
	})
	tracker := analytics.NewService(analytics.NewMemoryRepository())

	api := NewPublicAPI(
		WithProjector(projector),
		WithTracker(tracker),
		WithAuth(auth.NewService("hunter2", "test-secret", time.Hour)),
	)
	mux := http.NewServeMux()
	if err := api.Register(mux); err != nil {
		t.Fatalf("register api: %v", err)
	}
	return mux, tracker
}

func TestPublicAPI_SitePayload(t *testing.T) {
	mux, _ := setupPublicAPI(t)

	resp := doJSONRequest(t, mux, http.MethodGet, "/api/site?lang=en", nil, http.StatusOK)
	var view site.View
	decodeJSONBody(t, resp, &view)

	if view.Hero.Badge == "" {
		t.Fatalf("expected default hero badge text")
	}
	if view.FAQ != nil {
		t.Fatalf("expected FAQ section omitted when empty, got %+v", view.FAQ)
	}
	if view.Cards.Placeholder == "" {
		t.Fatalf("expected cards placeholder when collection is empty")
	}
}

func TestPublicAPI_PartnersPagination(t *testing.T) {
	mux, _ := setupPublicAPI(t)

	resp := doJSONRequest(t, mux, http.MethodGet, "/api/site/partners?category=partners&page=1", nil, http.StatusOK)
	var view site.PartnersView
	decodeJSONBody(t, resp, &view)
	if view.Page != 1 {
		t.Fatalf("expected page 1 got %d", view.Page)
	}
	if view.Placeholder == "" {
		t.Fatalf("expected placeholder for empty partner grid")
	}
}

func TestPublicAPI_TrackAndLogin(t *testing.T) {
	mux, tracker := setupPublicAPI(t)

	doJSONRequest(t, mux, http.MethodPost, "/api/analytics/track", map[string]any{
		"session_id": "sess-1",
		"event_type": "pageview",
		"page_url":   "/",
	}, http.StatusCreated)

	stats, err := tracker.Stats(context.Background(), 30)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.PageViews != 1 {
		t.Fatalf("expected 1 pageview got %d", stats.PageViews)
	}

	badResp := doJSONRequest(t, mux, http.MethodPost, "/api/analytics/track", map[string]any{
		"event_type": "pageview",
	}, http.StatusUnprocessableEntity)
	var badBody errorResponse
	decodeJSONBody(t, badResp, &badBody)
	if badBody.Error != "validation_failed" {
		t.Fatalf("expected validation_failed got %q", badBody.Error)
	}

	loginResp := doJSONRequest(t, mux, http.MethodPost, "/api/admin/login", map[string]any{
		"password": "hunter2",
	}, http.StatusOK)
	var tokenBody map[string]string
	decodeJSONBody(t, loginResp, &tokenBody)
	if tokenBody["token"] == "" {
		t.Fatalf("expected a token")
	}

	doJSONRequest(t, mux, http.MethodGet, "/api/admin/verify", nil, http.StatusUnauthorized)

	verifyReq := httptest.NewRequest(http.MethodGet, "/api/admin/verify", nil)
	verifyReq.Header.Set("Authorization", "Bearer "+tokenBody["token"])
	verifyRec := httptest.NewRecorder()
	mux.ServeHTTP(verifyRec, verifyReq)
	if verifyRec.Code != http.StatusOK {
		t.Fatalf("expected verify 200 got %d (%s)", verifyRec.Code, verifyRec.Body.String())
	}

	doJSONRequest(t, mux, http.MethodPost, "/api/admin/login", map[string]any{
		"password": "wrong",
	}, http.StatusUnauthorized)
}
