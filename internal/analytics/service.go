package analytics

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/fomolabs/fomo-cms/internal/logging"
	"github.com/fomolabs/fomo-cms/pkg/interfaces"
)

const topBreakdownSize = 10

// Service records visitor events and aggregates them for the admin
// dashboard.
type Service interface {
	Track(ctx context.Context, input TrackInput) (*Event, error)
	Stats(ctx context.Context, periodDays int) (Stats, error)
	Clear(ctx context.Context) (int, error)
}

// TrackInput is the raw event as submitted by the public page. Device,
// browser, OS and traffic source are derived server-side.
type TrackInput struct {
	SessionID       string    `json:"session_id"`
	EventType       EventType `json:"event_type"`
	PageURL         string    `json:"page_url,omitempty"`
	PageTitle       string    `json:"page_title,omitempty"`
	ButtonID        string    `json:"button_id,omitempty"`
	ButtonText      string    `json:"button_text,omitempty"`
	UserAgent       string    `json:"user_agent,omitempty"`
	Referrer        string    `json:"referrer,omitempty"`
	IPAddress       string    `json:"-"`
	SessionDuration int       `json:"session_duration,omitempty"`
	ConversionType  string    `json:"conversion_type,omitempty"`
	ConversionValue float64   `json:"conversion_value,omitempty"`
}

// ServiceOption configures analytics service behaviour.
type ServiceOption func(*service)

func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

func WithIDGenerator(generator func() uuid.UUID) ServiceOption {
	return func(s *service) {
		if generator != nil {
			s.newID = generator
		}
	}
}

func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

type service struct {
	repo   Repository
	now    func() time.Time
	newID  func() uuid.UUID
	logger interfaces.Logger
}

// NewService constructs an analytics service instance.
func NewService(repo Repository, opts ...ServiceOption) Service {
	s := &service{repo: repo, now: time.Now, newID: uuid.New, logger: logging.NoOp()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Track(ctx context.Context, input TrackInput) (*Event, error) {
	errs := ozzo.Errors{}
	if strings.TrimSpace(input.SessionID) == "" {
		errs["session_id"] = ozzo.NewError("analytics.session_required", "session id is required")
	}
	if strings.TrimSpace(string(input.EventType)) == "" {
		errs["event_type"] = ozzo.NewError("analytics.event_type_required", "event type is required")
	}
	if len(errs) > 0 {
		return nil, errs
	}

	info := ParseUserAgent(input.UserAgent)
	source, detail := ClassifyReferrer(input.Referrer)

	returning, err := s.repo.HasPageview(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	event := &Event{
		ID:              s.newID(),
		SessionID:       input.SessionID,
		EventType:       input.EventType,
		PageURL:         input.PageURL,
		PageTitle:       input.PageTitle,
		ButtonID:        input.ButtonID,
		ButtonTxt:       input.ButtonText,
		UserAgent:       input.UserAgent,
		DeviceType:      info.Device,
		Browser:         info.Browser,
		OS:              info.OS,
		IPAddress:       input.IPAddress,
		Referrer:        input.Referrer,
		TrafficSource:   source,
		SourceDetail:    detail,
		Timestamp:       s.now(),
		SessionDuration: input.SessionDuration,
		IsNewVisitor:    !returning,
		IsReturning:     returning,
		ConversionType:  input.ConversionType,
		ConversionValue: input.ConversionValue,
	}
	return s.repo.Insert(ctx, event)
}

// Stats aggregates everything tracked in the last periodDays days. An
// out-of-range period falls back to 30 days.
func (s *service) Stats(ctx context.Context, periodDays int) (Stats, error) {
	if periodDays <= 0 {
		periodDays = 30
	}
	since := s.now().AddDate(0, 0, -periodDays)

	events, err := s.repo.ListSince(ctx, since)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{
		TopCountries:    []NamedCount{},
		TopCities:       []NamedCount{},
		DetailedSources: []SourceCount{},
	}
	if len(events) == 0 {
		return stats, nil
	}

	sessions := make(map[string]struct{})
	var durations []int
	countries := make(map[string]int)
	cities := make(map[string]int)
	devices := make(map[DeviceType]int)
	sources := make(map[TrafficSource]int)
	details := make(map[string]int)

	for _, event := range events {
		if event.SessionID != "" {
			sessions[event.SessionID] = struct{}{}
		}
		switch event.EventType {
		case EventPageview:
			stats.PageViews++
			if event.IsNewVisitor {
				stats.NewVisitors++
			}
			if event.IsReturning {
				stats.ReturningVisitors++
			}
		case EventClick:
			stats.ButtonClicks++
		case EventConversion:
			stats.Conversions++
		}
		if event.SessionDuration > 0 {
			durations = append(durations, event.SessionDuration)
		}
		device := event.DeviceType
		if device == "" {
			device = DeviceDesktop
		}
		devices[device]++
		if event.Country != "" && event.Country != "Unknown" {
			countries[event.Country]++
		}
		if event.City != "" && event.City != "Unknown" {
			cities[event.City]++
		}
		source := event.TrafficSource
		if source == "" {
			source = SourceDirect
		}
		sources[source]++
		detail := event.SourceDetail
		if detail == "" {
			detail = "Direct"
		}
		details[detail]++
	}

	stats.UniqueSessions = len(sessions)
	if stats.UniqueSessions > 0 {
		stats.ConversionRate = percent(stats.Conversions, stats.UniqueSessions)
	}
	if len(durations) > 0 {
		total := 0
		for _, d := range durations {
			total += d
		}
		stats.AvgSessionDuration = total / len(durations)
	}

	if visitors := stats.NewVisitors + stats.ReturningVisitors; visitors > 0 {
		stats.NewVisitorsPercent = percent(stats.NewVisitors, visitors)
		stats.ReturningVisitorsPercent = percent(stats.ReturningVisitors, visitors)
	}

	if total := len(events); total > 0 {
		stats.DesktopVisitors = devices[DeviceDesktop]
		stats.MobileVisitors = devices[DeviceMobile]
		stats.TabletVisitors = devices[DeviceTablet]
		stats.DesktopPercent = percent(stats.DesktopVisitors, total)
		stats.MobilePercent = percent(stats.MobileVisitors, total)
		stats.TabletPercent = percent(stats.TabletVisitors, total)

		stats.DirectTraffic = sources[SourceDirect]
		stats.ReferralTraffic = sources[SourceReferral]
		stats.SearchTraffic = sources[SourceSearch]
		stats.DirectPercent = percent(stats.DirectTraffic, total)
		stats.ReferralPercent = percent(stats.ReferralTraffic, total)
		stats.SearchPercent = percent(stats.SearchTraffic, total)

		stats.DetailedSources = topSources(details, total)
	}

	stats.TopCountries = topCounts(countries)
	stats.TopCities = topCounts(cities)
	return stats, nil
}

func (s *service) Clear(ctx context.Context) (int, error) {
	count, err := s.repo.Clear(ctx)
	if err != nil {
		return 0, err
	}
	s.logger.Info("analytics data cleared", "deleted", count)
	return count, nil
}

func percent(part, total int) float64 {
	return math.Round(float64(part)/float64(total)*100*100) / 100
}

func topCounts(counts map[string]int) []NamedCount {
	out := make([]NamedCount, 0, len(counts))
	for name, count := range counts {
		out = append(out, NamedCount{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > topBreakdownSize {
		out = out[:topBreakdownSize]
	}
	return out
}

func topSources(counts map[string]int, total int) []SourceCount {
	out := make([]SourceCount, 0, len(counts))
	for source, count := range counts {
		out = append(out, SourceCount{Source: source, Count: count, Percent: percent(count, total)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Source < out[j].Source
	})
	if len(out) > topBreakdownSize {
		out = out[:topBreakdownSize]
	}
	return out
}
