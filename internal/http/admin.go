// Package http exposes the admin and public JSON APIs over net/http.
package http

import (
	"fmt"
	"net/http"

	"github.com/fomolabs/fomo-cms/internal/analytics"
	"github.com/fomolabs/fomo-cms/internal/cards"
	"github.com/fomolabs/fomo-cms/internal/evolution"
	"github.com/fomolabs/fomo-cms/internal/faq"
	"github.com/fomolabs/fomo-cms/internal/hero"
	"github.com/fomolabs/fomo-cms/internal/logging"
	"github.com/fomolabs/fomo-cms/internal/navigation"
	"github.com/fomolabs/fomo-cms/internal/partners"
	"github.com/fomolabs/fomo-cms/internal/roadmap"
	"github.com/fomolabs/fomo-cms/internal/sections"
	"github.com/fomolabs/fomo-cms/internal/team"
	"github.com/fomolabs/fomo-cms/internal/uploads"
	"github.com/fomolabs/fomo-cms/pkg/interfaces"
)

// AdminAPI wires the content management endpoints onto a ServeMux. Every
// handler assumes the mux is already protected by the auth middleware.
type AdminAPI struct {
	basePath string
	logger   interfaces.Logger

	cardService       cards.Service
	teamService       team.Service
	partnerService    partners.Service
	faqService        faq.Service
	roadmapService    roadmap.Service
	evolutionService  evolution.Service
	heroService       hero.Service
	navigationService navigation.Service
	sectionService    sections.Service
	analyticsService  analytics.Service
	uploadService     *uploads.Service
}

// AdminOption customizes the admin API.
type AdminOption func(*AdminAPI)

// WithAdminBasePath overrides the default /api/admin prefix.
func WithAdminBasePath(basePath string) AdminOption {
	return func(api *AdminAPI) {
		if basePath != "" {
			api.basePath = basePath
		}
	}
}

// WithAdminLogger sets the request logger.
func WithAdminLogger(logger interfaces.Logger) AdminOption {
	return func(api *AdminAPI) {
		if logger != nil {
			api.logger = logger
		}
	}
}

func WithCardService(service cards.Service) AdminOption {
	return func(api *AdminAPI) {
		if service != nil {
			api.cardService = service
		}
	}
}

func WithTeamService(service team.Service) AdminOption {
	return func(api *AdminAPI) {
		if service != nil {
			api.teamService = service
		}
	}
}

func WithPartnerService(service partners.Service) AdminOption {
	return func(api *AdminAPI) {
		if service != nil {
			api.partnerService = service
		}
	}
}

func WithFAQService(service faq.Service) AdminOption {
	return func(api *AdminAPI) {
		if service != nil {
			api.faqService = service
		}
	}
}

func WithRoadmapService(service roadmap.Service) AdminOption {
	return func(api *AdminAPI) {
		if service != nil {
			api.roadmapService = service
		}
	}
}

func WithEvolutionService(service evolution.Service) AdminOption {
	return func(api *AdminAPI) {
		if service != nil {
			api.evolutionService = service
		}
	}
}

func WithHeroService(service hero.Service) AdminOption {
	return func(api *AdminAPI) {
		if service != nil {
			api.heroService = service
		}
	}
}

func WithNavigationService(service navigation.Service) AdminOption {
	return func(api *AdminAPI) {
		if service != nil {
			api.navigationService = service
		}
	}
}

func WithSectionService(service sections.Service) AdminOption {
	return func(api *AdminAPI) {
		if service != nil {
			api.sectionService = service
		}
	}
}

func WithAnalyticsService(service analytics.Service) AdminOption {
	return func(api *AdminAPI) {
		if service != nil {
			api.analyticsService = service
		}
	}
}

func WithUploadService(service *uploads.Service) AdminOption {
	return func(api *AdminAPI) {
		if service != nil {
			api.uploadService = service
		}
	}
}

// NewAdminAPI builds the admin API with the provided options.
func NewAdminAPI(opts ...AdminOption) *AdminAPI {
	api := &AdminAPI{
		basePath: "/api/admin",
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		opt(api)
	}
	return api
}

// Register attaches all admin routes to the mux.
func (api *AdminAPI) Register(mux *http.ServeMux) error {
	if mux == nil {
		return fmt.Errorf("http: mux is required")
	}

	base := api.basePath

	api.registerCardRoutes(mux, base)
	api.registerTeamRoutes(mux, base)
	api.registerPartnerRoutes(mux, base)
	api.registerFAQRoutes(mux, base)
	api.registerRoadmapRoutes(mux, base)
	api.registerEvolutionRoutes(mux, base)
	api.registerHeroRoutes(mux, base)
	api.registerNavigationRoutes(mux, base)
	api.registerSectionRoutes(mux, base)
	api.registerAnalyticsRoutes(mux, base)
	api.registerUploadRoutes(mux, base)

	return nil
}

func serviceUnavailable(w http.ResponseWriter) {
	writeJSON(w, http.StatusServiceUnavailable, errorResponse{
		Error:   "service_unavailable",
		Message: "this feature is not configured",
	})
}
