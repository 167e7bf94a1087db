package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
)

const chromeOnWindows = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
const safariOnIPhone = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1"

func TestParseUserAgent(t *testing.T) {
	cases := []struct {
		name    string
		ua      string
		device  DeviceType
		browser string
		os      string
	}{
		{"chrome on windows", chromeOnWindows, DeviceDesktop, "Chrome", "Windows"},
		{"safari on iphone", safariOnIPhone, DeviceMobile, "Safari", "iOS"},
		{"ipad", "Mozilla/5.0 (iPad; CPU OS 16_0 like Mac OS X) AppleWebKit/605.1.15 Safari/604.1", DeviceTablet, "Safari", "iOS"},
		{"empty", "", DeviceDesktop, "Unknown", "Unknown"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			info := ParseUserAgent(tc.ua)
			if info.Device != tc.device || info.Browser != tc.browser || info.OS != tc.os {
				t.Fatalf("got %+v", info)
			}
		})
	}
}

func TestClassifyReferrer(t *testing.T) {
	cases := []struct {
		referrer string
		source   TrafficSource
		detail   string
	}{
		{"", SourceDirect, "Direct"},
		{"https://www.google.com/search?q=fomo", SourceSearch, "Google"},
		{"https://news.ycombinator.com/item?id=1", SourceReferral, "news.ycombinator.com"},
	}
	for _, tc := range cases {
		source, detail := ClassifyReferrer(tc.referrer)
		if source != tc.source || detail != tc.detail {
			t.Fatalf("referrer %q: got %s/%s", tc.referrer, source, detail)
		}
	}
}

func TestService_Track_RequiresSession(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	_, err := svc.Track(context.Background(), TrackInput{EventType: EventPageview})
	var verrs ozzo.Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validation errors, got %v", err)
	}
}

func TestService_Track_MarksReturningVisitor(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	first, err := svc.Track(context.Background(), TrackInput{
		SessionID: "s1",
		EventType: EventPageview,
		UserAgent: chromeOnWindows,
	})
	if err != nil {
		t.Fatalf("track first: %v", err)
	}
	if !first.IsNewVisitor || first.IsReturning {
		t.Fatalf("first pageview should be new: %+v", first)
	}

	second, err := svc.Track(context.Background(), TrackInput{
		SessionID: "s1",
		EventType: EventPageview,
	})
	if err != nil {
		t.Fatalf("track second: %v", err)
	}
	if second.IsNewVisitor || !second.IsReturning {
		t.Fatalf("second pageview should be returning: %+v", second)
	}
}

func TestService_Stats_Aggregates(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	track := func(input TrackInput) {
		t.Helper()
		if _, err := svc.Track(ctx, input); err != nil {
			t.Fatalf("track: %v", err)
		}
	}
	track(TrackInput{SessionID: "s1", EventType: EventPageview, UserAgent: chromeOnWindows, SessionDuration: 30})
	track(TrackInput{SessionID: "s1", EventType: EventClick, ButtonID: "cta"})
	track(TrackInput{SessionID: "s2", EventType: EventPageview, UserAgent: safariOnIPhone, Referrer: "https://www.google.com/search?q=fomo", SessionDuration: 90})
	track(TrackInput{SessionID: "s2", EventType: EventConversion, ConversionType: "signup"})

	stats, err := svc.Stats(ctx, 30)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.PageViews != 2 || stats.UniqueSessions != 2 {
		t.Fatalf("pageviews %d sessions %d", stats.PageViews, stats.UniqueSessions)
	}
	if stats.ButtonClicks != 1 || stats.Conversions != 1 {
		t.Fatalf("clicks %d conversions %d", stats.ButtonClicks, stats.Conversions)
	}
	if stats.ConversionRate != 50 {
		t.Fatalf("conversion rate %v", stats.ConversionRate)
	}
	if stats.AvgSessionDuration != 60 {
		t.Fatalf("avg duration %d", stats.AvgSessionDuration)
	}
	// Events without a user agent default to desktop.
	if stats.MobileVisitors != 1 || stats.DesktopVisitors != 3 {
		t.Fatalf("device split desktop=%d mobile=%d", stats.DesktopVisitors, stats.MobileVisitors)
	}
	if stats.SearchTraffic != 1 {
		t.Fatalf("search traffic %d", stats.SearchTraffic)
	}
	if len(stats.DetailedSources) == 0 || stats.DetailedSources[0].Source != "Direct" {
		t.Fatalf("detailed sources %+v", stats.DetailedSources)
	}
}

func TestService_Stats_PeriodWindow(t *testing.T) {
	repo := NewMemoryRepository()
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	clock := now
	svc := NewService(repo, WithClock(func() time.Time { return clock }))
	ctx := context.Background()

	clock = now.AddDate(0, 0, -40)
	if _, err := svc.Track(ctx, TrackInput{SessionID: "old", EventType: EventPageview}); err != nil {
		t.Fatalf("track old: %v", err)
	}
	clock = now.AddDate(0, 0, -3)
	if _, err := svc.Track(ctx, TrackInput{SessionID: "recent", EventType: EventPageview}); err != nil {
		t.Fatalf("track recent: %v", err)
	}
	clock = now

	month, err := svc.Stats(ctx, 30)
	if err != nil {
		t.Fatalf("stats 30: %v", err)
	}
	if month.PageViews != 1 {
		t.Fatalf("expected only recent event in 30d window, got %d", month.PageViews)
	}

	quarter, err := svc.Stats(ctx, 90)
	if err != nil {
		t.Fatalf("stats 90: %v", err)
	}
	if quarter.PageViews != 2 {
		t.Fatalf("expected both events in 90d window, got %d", quarter.PageViews)
	}
}

func TestService_Clear(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	if _, err := svc.Track(ctx, TrackInput{SessionID: "s1", EventType: EventPageview}); err != nil {
		t.Fatalf("track: %v", err)
	}
	deleted, err := svc.Clear(ctx)
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if deleted != 1 {
		t.Fatalf("expected 1 deleted, got %d", deleted)
	}

	stats, err := svc.Stats(ctx, 30)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.PageViews != 0 {
		t.Fatalf("expected empty stats, got %d pageviews", stats.PageViews)
	}
}
