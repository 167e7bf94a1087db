package analytics

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// EventType classifies tracked events. Anything else is stored as-is and
// only the three known types feed the aggregate counters.
type EventType string

const (
	EventPageview   EventType = "pageview"
	EventClick      EventType = "click"
	EventConversion EventType = "conversion"
)

type DeviceType string

const (
	DeviceDesktop DeviceType = "desktop"
	DeviceMobile  DeviceType = "mobile"
	DeviceTablet  DeviceType = "tablet"
)

type TrafficSource string

const (
	SourceDirect   TrafficSource = "direct"
	SourceReferral TrafficSource = "referral"
	SourceSearch   TrafficSource = "search"
)

// Event is one tracked visitor interaction.
type Event struct {
	bun.BaseModel `bun:"table:analytics_events,alias:ae"`

	ID        uuid.UUID `bun:",pk,type:uuid" json:"id"`
	SessionID string    `bun:"session_id,notnull" json:"session_id"`
	EventType EventType `bun:"event_type,notnull" json:"event_type"`
	PageURL   string    `bun:"page_url" json:"page_url,omitempty"`
	PageTitle string    `bun:"page_title" json:"page_title,omitempty"`
	ButtonID  string    `bun:"button_id" json:"button_id,omitempty"`
	ButtonTxt string    `bun:"button_text" json:"button_text,omitempty"`

	UserAgent  string     `bun:"user_agent" json:"user_agent,omitempty"`
	DeviceType DeviceType `bun:"device_type" json:"device_type,omitempty"`
	Browser    string     `bun:"browser" json:"browser,omitempty"`
	OS         string     `bun:"os" json:"os,omitempty"`

	Country   string `bun:"country" json:"country,omitempty"`
	City      string `bun:"city" json:"city,omitempty"`
	IPAddress string `bun:"ip_address" json:"ip_address,omitempty"`

	Referrer      string        `bun:"referrer" json:"referrer,omitempty"`
	TrafficSource TrafficSource `bun:"traffic_source" json:"traffic_source,omitempty"`
	SourceDetail  string        `bun:"source_detail" json:"source_detail,omitempty"`

	Timestamp       time.Time `bun:"timestamp,nullzero,default:current_timestamp" json:"timestamp"`
	SessionDuration int       `bun:"session_duration" json:"session_duration,omitempty"`

	IsNewVisitor bool `bun:"is_new_visitor,notnull" json:"is_new_visitor"`
	IsReturning  bool `bun:"is_returning,notnull" json:"is_returning"`

	ConversionType  string  `bun:"conversion_type" json:"conversion_type,omitempty"`
	ConversionValue float64 `bun:"conversion_value" json:"conversion_value,omitempty"`
}

// NamedCount is one slice of a ranked breakdown (country, city).
type NamedCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// SourceCount is one traffic source with its share of the total.
type SourceCount struct {
	Source  string  `json:"source"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// Stats is the aggregated analytics view for one period.
type Stats struct {
	PageViews          int     `json:"page_views"`
	UniqueSessions     int     `json:"unique_sessions"`
	ButtonClicks       int     `json:"button_clicks"`
	Conversions        int     `json:"conversions"`
	ConversionRate     float64 `json:"conversion_rate"`
	AvgSessionDuration int     `json:"avg_session_duration"`

	NewVisitors              int     `json:"new_visitors"`
	ReturningVisitors        int     `json:"returning_visitors"`
	NewVisitorsPercent       float64 `json:"new_visitors_percent"`
	ReturningVisitorsPercent float64 `json:"returning_visitors_percent"`

	DesktopVisitors int     `json:"desktop_visitors"`
	MobileVisitors  int     `json:"mobile_visitors"`
	TabletVisitors  int     `json:"tablet_visitors"`
	DesktopPercent  float64 `json:"desktop_percent"`
	MobilePercent   float64 `json:"mobile_percent"`
	TabletPercent   float64 `json:"tablet_percent"`

	TopCountries []NamedCount `json:"top_countries"`
	TopCities    []NamedCount `json:"top_cities"`

	DirectTraffic   int           `json:"direct_traffic"`
	ReferralTraffic int           `json:"referral_traffic"`
	SearchTraffic   int           `json:"search_traffic"`
	DirectPercent   float64       `json:"direct_percent"`
	ReferralPercent float64       `json:"referral_percent"`
	SearchPercent   float64       `json:"search_percent"`
	DetailedSources []SourceCount `json:"detailed_sources"`
}
