package http

import (
	"net/http"

	"github.com/fomolabs/fomo-cms/internal/sections"
)

func (api *AdminAPI) registerSectionRoutes(mux *http.ServeMux, base string) {
	root := joinPath(base, "settings")

	mux.HandleFunc("GET "+root+"/hero", api.handleGetHeroSettings)
	mux.HandleFunc("PUT "+root+"/hero", api.handleUpdateHeroSettings)
	mux.HandleFunc("GET "+root+"/about", api.handleGetAboutSettings)
	mux.HandleFunc("PUT "+root+"/about", api.handleUpdateAboutSettings)
	mux.HandleFunc("GET "+root+"/platform", api.handleGetPlatformSettings)
	mux.HandleFunc("PUT "+root+"/platform", api.handleUpdatePlatformSettings)
	mux.HandleFunc("GET "+root+"/community", api.handleGetCommunitySettings)
	mux.HandleFunc("PUT "+root+"/community", api.handleUpdateCommunitySettings)
	mux.HandleFunc("GET "+root+"/roadmap", api.handleGetRoadmapSettings)
	mux.HandleFunc("PUT "+root+"/roadmap", api.handleUpdateRoadmapSettings)

	mux.HandleFunc("GET "+root+"/footer", api.handleGetFooterSettings)
	mux.HandleFunc("PUT "+root+"/footer", api.handleUpdateFooterSettings)
	mux.HandleFunc("POST "+root+"/footer/sections/reorder", api.handleReorderFooterSections)
	mux.HandleFunc("DELETE "+root+"/footer/sections/{id}", api.handleDeleteFooterSection)
	mux.HandleFunc("POST "+root+"/footer/sections/{id}/links/reorder", api.handleReorderFooterLinks)
}

func (api *AdminAPI) handleGetHeroSettings(w http.ResponseWriter, r *http.Request) {
	if api.sectionService == nil {
		serviceUnavailable(w)
		return
	}

	settings, err := api.sectionService.GetHero(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (api *AdminAPI) handleUpdateHeroSettings(w http.ResponseWriter, r *http.Request) {
	if api.sectionService == nil {
		serviceUnavailable(w)
		return
	}

	var patch sections.HeroPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}

	settings, err := api.sectionService.UpdateHero(r.Context(), patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (api *AdminAPI) handleGetAboutSettings(w http.ResponseWriter, r *http.Request) {
	if api.sectionService == nil {
		serviceUnavailable(w)
		return
	}

	settings, err := api.sectionService.GetAbout(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (api *AdminAPI) handleUpdateAboutSettings(w http.ResponseWriter, r *http.Request) {
	if api.sectionService == nil {
		serviceUnavailable(w)
		return
	}

	var patch sections.AboutPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}

	settings, err := api.sectionService.UpdateAbout(r.Context(), patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (api *AdminAPI) handleGetPlatformSettings(w http.ResponseWriter, r *http.Request) {
	if api.sectionService == nil {
		serviceUnavailable(w)
		return
	}

	settings, err := api.sectionService.GetPlatform(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (api *AdminAPI) handleUpdatePlatformSettings(w http.ResponseWriter, r *http.Request) {
	if api.sectionService == nil {
		serviceUnavailable(w)
		return
	}

	var patch sections.PlatformPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}

	settings, err := api.sectionService.UpdatePlatform(r.Context(), patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (api *AdminAPI) handleGetCommunitySettings(w http.ResponseWriter, r *http.Request) {
	if api.sectionService == nil {
		serviceUnavailable(w)
		return
	}

	settings, err := api.sectionService.GetCommunity(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (api *AdminAPI) handleUpdateCommunitySettings(w http.ResponseWriter, r *http.Request) {
	if api.sectionService == nil {
		serviceUnavailable(w)
		return
	}

	var patch sections.CommunityPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}

	settings, err := api.sectionService.UpdateCommunity(r.Context(), patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (api *AdminAPI) handleGetRoadmapSettings(w http.ResponseWriter, r *http.Request) {
	if api.sectionService == nil {
		serviceUnavailable(w)
		return
	}

	settings, err := api.sectionService.GetRoadmap(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (api *AdminAPI) handleUpdateRoadmapSettings(w http.ResponseWriter, r *http.Request) {
	if api.sectionService == nil {
		serviceUnavailable(w)
		return
	}

	var patch sections.RoadmapPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}

	settings, err := api.sectionService.UpdateRoadmap(r.Context(), patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (api *AdminAPI) handleGetFooterSettings(w http.ResponseWriter, r *http.Request) {
	if api.sectionService == nil {
		serviceUnavailable(w)
		return
	}

	settings, err := api.sectionService.GetFooter(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (api *AdminAPI) handleUpdateFooterSettings(w http.ResponseWriter, r *http.Request) {
	if api.sectionService == nil {
		serviceUnavailable(w)
		return
	}

	var patch sections.FooterPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}

	settings, err := api.sectionService.UpdateFooter(r.Context(), patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (api *AdminAPI) handleReorderFooterSections(w http.ResponseWriter, r *http.Request) {
	if api.sectionService == nil {
		serviceUnavailable(w)
		return
	}

	var payload reorderPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}

	settings, err := api.sectionService.ReorderFooterSections(r.Context(), payload.Items)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (api *AdminAPI) handleReorderFooterLinks(w http.ResponseWriter, r *http.Request) {
	if api.sectionService == nil {
		serviceUnavailable(w)
		return
	}

	sectionID, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid section id"})
		return
	}

	var payload reorderPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}

	settings, err := api.sectionService.ReorderFooterLinks(r.Context(), sectionID, payload.Items)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (api *AdminAPI) handleDeleteFooterSection(w http.ResponseWriter, r *http.Request) {
	if api.sectionService == nil {
		serviceUnavailable(w)
		return
	}

	sectionID, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid section id"})
		return
	}

	settings, err := api.sectionService.DeleteFooterSection(r.Context(), sectionID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}
