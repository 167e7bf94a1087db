package http

import (
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/fomolabs/fomo-cms/internal/analytics"
	"github.com/fomolabs/fomo-cms/internal/auth"
	"github.com/fomolabs/fomo-cms/internal/i18n"
	"github.com/fomolabs/fomo-cms/internal/logging"
	"github.com/fomolabs/fomo-cms/internal/partners"
	"github.com/fomolabs/fomo-cms/internal/site"
	"github.com/fomolabs/fomo-cms/pkg/interfaces"
)

// PublicAPI serves the unauthenticated surface: the rendered site payload,
// event tracking, and the admin login exchange.
type PublicAPI struct {
	basePath  string
	logger    interfaces.Logger
	projector *site.Projector
	analytics analytics.Service
	auth      *auth.Service
}

// PublicOption customizes the public API.
type PublicOption func(*PublicAPI)

func WithPublicBasePath(basePath string) PublicOption {
	return func(api *PublicAPI) {
		if basePath != "" {
			api.basePath = basePath
		}
	}
}

func WithPublicLogger(logger interfaces.Logger) PublicOption {
	return func(api *PublicAPI) {
		if logger != nil {
			api.logger = logger
		}
	}
}

func WithProjector(projector *site.Projector) PublicOption {
	return func(api *PublicAPI) {
		if projector != nil {
			api.projector = projector
		}
	}
}

func WithTracker(service analytics.Service) PublicOption {
	return func(api *PublicAPI) {
		if service != nil {
			api.analytics = service
		}
	}
}

func WithAuth(service *auth.Service) PublicOption {
	return func(api *PublicAPI) {
		if service != nil {
			api.auth = service
		}
	}
}

// NewPublicAPI builds the public API with the provided options.
func NewPublicAPI(opts ...PublicOption) *PublicAPI {
	api := &PublicAPI{
		basePath: "/api",
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		opt(api)
	}
	return api
}

// Register attaches all public routes to the mux.
func (api *PublicAPI) Register(mux *http.ServeMux) error {
	if mux == nil {
		return fmt.Errorf("http: mux is required")
	}

	base := api.basePath
	mux.HandleFunc("GET "+joinPath(base, "site"), api.handleSite)
	mux.HandleFunc("GET "+joinPath(base, "site/partners"), api.handleSitePartners)
	mux.HandleFunc("POST "+joinPath(base, "analytics/track"), api.handleTrack)
	mux.HandleFunc("POST "+joinPath(base, "admin/login"), api.handleLogin)
	mux.HandleFunc("GET "+joinPath(base, "admin/verify"), api.handleVerify)

	return nil
}

func requestLanguage(r *http.Request) i18n.Language {
	switch strings.ToLower(strings.TrimSpace(r.URL.Query().Get("lang"))) {
	case string(i18n.LanguageRU):
		return i18n.LanguageRU
	default:
		return i18n.LanguageEN
	}
}

func (api *PublicAPI) handleSite(w http.ResponseWriter, r *http.Request) {
	if api.projector == nil {
		serviceUnavailable(w)
		return
	}

	view := api.projector.Build(r.Context(), requestLanguage(r))
	writeJSON(w, http.StatusOK, view)
}

// handleSitePartners renders one page of the partners grid. The filter state
// is rebuilt from the query on every request so the endpoint stays stateless.
func (api *PublicAPI) handleSitePartners(w http.ResponseWriter, r *http.Request) {
	if api.projector == nil {
		serviceUnavailable(w)
		return
	}

	filter := site.NewPartnerFilter()
	if category := strings.TrimSpace(r.URL.Query().Get("category")); category != "" {
		filter.SetCategory(partners.Category(category))
	}
	filter.SetSearch(strings.TrimSpace(r.URL.Query().Get("search")))
	filter.SetPage(parseIntQuery(r.URL.Query().Get("page"), 1))

	view := api.projector.Partners(r.Context(), requestLanguage(r), filter)
	writeJSON(w, http.StatusOK, view)
}

func (api *PublicAPI) handleTrack(w http.ResponseWriter, r *http.Request) {
	if api.analytics == nil {
		serviceUnavailable(w)
		return
	}

	var input analytics.TrackInput
	if err := decodeJSON(r, &input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}

	if input.UserAgent == "" {
		input.UserAgent = r.UserAgent()
	}
	if input.Referrer == "" {
		input.Referrer = r.Referer()
	}
	input.IPAddress = clientIP(r)

	event, err := api.analytics.Track(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": event.ID.String()})
}

type loginPayload struct {
	Password string `json:"password"`
}

func (api *PublicAPI) handleLogin(w http.ResponseWriter, r *http.Request) {
	if api.auth == nil {
		serviceUnavailable(w)
		return
	}

	var payload loginPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}

	token, err := api.auth.Login(payload.Password)
	if err != nil {
		api.logger.Warn("admin login rejected", "remote", r.RemoteAddr)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (api *PublicAPI) handleVerify(w http.ResponseWriter, r *http.Request) {
	if api.auth == nil {
		serviceUnavailable(w)
		return
	}

	token, ok := auth.BearerToken(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized", Message: "missing bearer token"})
		return
	}
	if err := api.auth.Verify(token); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"valid": true})
}

// clientIP prefers the forwarding headers set by the reverse proxy and falls
// back to the socket peer address.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return strings.TrimSpace(realIP)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
