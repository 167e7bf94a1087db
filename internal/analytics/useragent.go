package analytics

import (
	"net/url"
	"strings"
)

// ClientInfo is what we can tell about a visitor from the UA string alone.
type ClientInfo struct {
	Device  DeviceType
	Browser string
	OS      string
}

// ParseUserAgent classifies a raw user agent string. The classification is
// substring-based and intentionally coarse: the admin dashboard only splits
// visitors into desktop/mobile/tablet and a handful of browser families.
func ParseUserAgent(raw string) ClientInfo {
	info := ClientInfo{Device: DeviceDesktop, Browser: "Unknown", OS: "Unknown"}
	if raw == "" {
		return info
	}
	ua := strings.ToLower(raw)

	switch {
	case strings.Contains(ua, "ipad") || strings.Contains(ua, "tablet"):
		info.Device = DeviceTablet
	case strings.Contains(ua, "mobile") || strings.Contains(ua, "iphone") ||
		(strings.Contains(ua, "android") && !strings.Contains(ua, "tablet")):
		info.Device = DeviceMobile
	}

	// Order matters: Chrome-derived agents also claim Safari, Edge also
	// claims Chrome.
	switch {
	case strings.Contains(ua, "edg/") || strings.Contains(ua, "edge/"):
		info.Browser = "Edge"
	case strings.Contains(ua, "opr/") || strings.Contains(ua, "opera"):
		info.Browser = "Opera"
	case strings.Contains(ua, "chrome/") || strings.Contains(ua, "crios/"):
		info.Browser = "Chrome"
	case strings.Contains(ua, "firefox/") || strings.Contains(ua, "fxios/"):
		info.Browser = "Firefox"
	case strings.Contains(ua, "safari/"):
		info.Browser = "Safari"
	case strings.Contains(ua, "msie") || strings.Contains(ua, "trident/"):
		info.Browser = "Internet Explorer"
	}

	switch {
	case strings.Contains(ua, "windows"):
		info.OS = "Windows"
	case strings.Contains(ua, "iphone") || strings.Contains(ua, "ipad"):
		info.OS = "iOS"
	case strings.Contains(ua, "mac os x") || strings.Contains(ua, "macintosh"):
		info.OS = "macOS"
	case strings.Contains(ua, "android"):
		info.OS = "Android"
	case strings.Contains(ua, "linux"):
		info.OS = "Linux"
	}

	return info
}

var searchEngines = []string{"google", "bing", "yahoo", "duckduckgo", "yandex", "baidu"}

// ClassifyReferrer maps a referrer URL to a traffic source bucket plus a
// human-readable detail (search engine name or referring domain).
func ClassifyReferrer(referrer string) (TrafficSource, string) {
	if strings.TrimSpace(referrer) == "" {
		return SourceDirect, "Direct"
	}

	lowered := strings.ToLower(referrer)
	for _, engine := range searchEngines {
		if strings.Contains(lowered, engine) {
			return SourceSearch, strings.ToUpper(engine[:1]) + engine[1:]
		}
	}

	if parsed, err := url.Parse(referrer); err == nil && parsed.Host != "" {
		return SourceReferral, parsed.Host
	}
	return SourceReferral, referrer
}
