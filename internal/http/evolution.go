package http

import (
	"net/http"

	"github.com/fomolabs/fomo-cms/internal/evolution"
)

func (api *AdminAPI) registerEvolutionRoutes(mux *http.ServeMux, base string) {
	levels := joinPath(base, "evolution/levels")
	mux.HandleFunc("GET "+levels, api.handleListLevels)
	mux.HandleFunc("POST "+levels, api.handleCreateLevel)
	mux.HandleFunc("POST "+levels+"/reorder", api.handleReorderLevels)
	mux.HandleFunc("GET "+levels+"/{id}", api.handleGetLevel)
	mux.HandleFunc("PUT "+levels+"/{id}", api.handleUpdateLevel)
	mux.HandleFunc("DELETE "+levels+"/{id}", api.handleDeleteLevel)
	mux.HandleFunc("POST "+levels+"/{id}/move", api.handleMoveLevel)

	badges := joinPath(base, "evolution/badges")
	mux.HandleFunc("GET "+badges, api.handleListBadges)
	mux.HandleFunc("POST "+badges, api.handleCreateBadge)
	mux.HandleFunc("POST "+badges+"/reorder", api.handleReorderBadges)
	mux.HandleFunc("GET "+badges+"/{id}", api.handleGetBadge)
	mux.HandleFunc("PUT "+badges+"/{id}", api.handleUpdateBadge)
	mux.HandleFunc("DELETE "+badges+"/{id}", api.handleDeleteBadge)
	mux.HandleFunc("POST "+badges+"/{id}/move", api.handleMoveBadge)
}

func (api *AdminAPI) handleListLevels(w http.ResponseWriter, r *http.Request) {
	if api.evolutionService == nil {
		serviceUnavailable(w)
		return
	}

	items, err := api.evolutionService.ListLevels(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[*evolution.Level]{Items: items})
}

func (api *AdminAPI) handleCreateLevel(w http.ResponseWriter, r *http.Request) {
	if api.evolutionService == nil {
		serviceUnavailable(w)
		return
	}

	var input evolution.CreateLevelInput
	if err := decodeJSON(r, &input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}

	level, err := api.evolutionService.CreateLevel(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, level)
}

func (api *AdminAPI) handleGetLevel(w http.ResponseWriter, r *http.Request) {
	if api.evolutionService == nil {
		serviceUnavailable(w)
		return
	}

	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid level id"})
		return
	}

	level, err := api.evolutionService.GetLevel(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, level)
}

func (api *AdminAPI) handleUpdateLevel(w http.ResponseWriter, r *http.Request) {
	if api.evolutionService == nil {
		serviceUnavailable(w)
		return
	}

	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid level id"})
		return
	}

	var input evolution.UpdateLevelInput
	if err := decodeJSON(r, &input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}
	input.ID = id

	level, err := api.evolutionService.UpdateLevel(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, level)
}

func (api *AdminAPI) handleDeleteLevel(w http.ResponseWriter, r *http.Request) {
	if api.evolutionService == nil {
		serviceUnavailable(w)
		return
	}

	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid level id"})
		return
	}

	if err := api.evolutionService.DeleteLevel(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (api *AdminAPI) handleReorderLevels(w http.ResponseWriter, r *http.Request) {
	if api.evolutionService == nil {
		serviceUnavailable(w)
		return
	}

	var payload reorderPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}

	items, err := api.evolutionService.ReorderLevels(r.Context(), payload.Items)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[*evolution.Level]{Items: items})
}

func (api *AdminAPI) handleMoveLevel(w http.ResponseWriter, r *http.Request) {
	if api.evolutionService == nil {
		serviceUnavailable(w)
		return
	}

	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid level id"})
		return
	}

	var payload movePayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}

	items, err := api.evolutionService.MoveLevel(r.Context(), id, payload.Direction)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[*evolution.Level]{Items: items})
}

func (api *AdminAPI) handleListBadges(w http.ResponseWriter, r *http.Request) {
	if api.evolutionService == nil {
		serviceUnavailable(w)
		return
	}

	items, err := api.evolutionService.ListBadges(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[*evolution.Badge]{Items: items})
}

func (api *AdminAPI) handleCreateBadge(w http.ResponseWriter, r *http.Request) {
	if api.evolutionService == nil {
		serviceUnavailable(w)
		return
	}

	var input evolution.CreateBadgeInput
	if err := decodeJSON(r, &input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}

	badge, err := api.evolutionService.CreateBadge(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, badge)
}

func (api *AdminAPI) handleGetBadge(w http.ResponseWriter, r *http.Request) {
	if api.evolutionService == nil {
		serviceUnavailable(w)
		return
	}

	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid badge id"})
		return
	}

	badge, err := api.evolutionService.GetBadge(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, badge)
}

func (api *AdminAPI) handleUpdateBadge(w http.ResponseWriter, r *http.Request) {
	if api.evolutionService == nil {
		serviceUnavailable(w)
		return
	}

	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid badge id"})
		return
	}

	var input evolution.UpdateBadgeInput
	if err := decodeJSON(r, &input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}
	input.ID = id

	badge, err := api.evolutionService.UpdateBadge(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, badge)
}

func (api *AdminAPI) handleDeleteBadge(w http.ResponseWriter, r *http.Request) {
	if api.evolutionService == nil {
		serviceUnavailable(w)
		return
	}

	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid badge id"})
		return
	}

	if err := api.evolutionService.DeleteBadge(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (api *AdminAPI) handleReorderBadges(w http.ResponseWriter, r *http.Request) {
	if api.evolutionService == nil {
		serviceUnavailable(w)
		return
	}

	var payload reorderPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}

	items, err := api.evolutionService.ReorderBadges(r.Context(), payload.Items)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[*evolution.Badge]{Items: items})
}

func (api *AdminAPI) handleMoveBadge(w http.ResponseWriter, r *http.Request) {
	if api.evolutionService == nil {
		serviceUnavailable(w)
		return
	}

	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid badge id"})
		return
	}

	var payload movePayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}

	items, err := api.evolutionService.MoveBadge(r.Context(), id, payload.Direction)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[*evolution.Badge]{Items: items})
}
