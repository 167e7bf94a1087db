package http

import (
	"net/http"
)

func (api *AdminAPI) registerAnalyticsRoutes(mux *http.ServeMux, base string) {
	root := joinPath(base, "analytics")

	mux.HandleFunc("GET "+root+"/stats", api.handleAnalyticsStats)
	mux.HandleFunc("DELETE "+root, api.handleAnalyticsClear)
}

func (api *AdminAPI) handleAnalyticsStats(w http.ResponseWriter, r *http.Request) {
	if api.analyticsService == nil {
		serviceUnavailable(w)
		return
	}

	period := parseIntQuery(r.URL.Query().Get("period"), 30)
	stats, err := api.analyticsService.Stats(r.Context(), period)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (api *AdminAPI) handleAnalyticsClear(w http.ResponseWriter, r *http.Request) {
	if api.analyticsService == nil {
		serviceUnavailable(w)
		return
	}

	deleted, err := api.analyticsService.Clear(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	api.logger.Info("analytics events cleared", "deleted", deleted)
	writeJSON(w, http.StatusOK, map[string]int{"deleted": deleted})
}
