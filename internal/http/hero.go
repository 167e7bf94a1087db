package http

import (
	"net/http"

	"github.com/fomolabs/fomo-cms/internal/hero"
)

func (api *AdminAPI) registerHeroRoutes(mux *http.ServeMux, base string) {
	root := joinPath(base, "hero/buttons")

	mux.HandleFunc("GET "+root, api.handleListButtons)
	mux.HandleFunc("POST "+root, api.handleCreateButton)
	mux.HandleFunc("POST "+root+"/reorder", api.handleReorderButtons)
	mux.HandleFunc("GET "+root+"/{id}", api.handleGetButton)
	mux.HandleFunc("PUT "+root+"/{id}", api.handleUpdateButton)
	mux.HandleFunc("DELETE "+root+"/{id}", api.handleDeleteButton)
	mux.HandleFunc("POST "+root+"/{id}/move", api.handleMoveButton)
}

func (api *AdminAPI) handleListButtons(w http.ResponseWriter, r *http.Request) {
	if api.heroService == nil {
		serviceUnavailable(w)
		return
	}

	var (
		items []*hero.Button
		err   error
	)
	if active, ok := parseBoolQuery(r, "active"); ok && active {
		items, err = api.heroService.ListActiveButtons(r.Context())
	} else {
		items, err = api.heroService.ListButtons(r.Context())
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[*hero.Button]{Items: items})
}

func (api *AdminAPI) handleCreateButton(w http.ResponseWriter, r *http.Request) {
	if api.heroService == nil {
		serviceUnavailable(w)
		return
	}

	var input hero.CreateButtonInput
	if err := decodeJSON(r, &input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}

	button, err := api.heroService.CreateButton(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, button)
}

func (api *AdminAPI) handleGetButton(w http.ResponseWriter, r *http.Request) {
	if api.heroService == nil {
		serviceUnavailable(w)
		return
	}

	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid button id"})
		return
	}

	button, err := api.heroService.GetButton(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, button)
}

func (api *AdminAPI) handleUpdateButton(w http.ResponseWriter, r *http.Request) {
	if api.heroService == nil {
		serviceUnavailable(w)
		return
	}

	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid button id"})
		return
	}

	var input hero.UpdateButtonInput
	if err := decodeJSON(r, &input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}
	input.ID = id

	button, err := api.heroService.UpdateButton(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, button)
}

func (api *AdminAPI) handleDeleteButton(w http.ResponseWriter, r *http.Request) {
	if api.heroService == nil {
		serviceUnavailable(w)
		return
	}

	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid button id"})
		return
	}

	if err := api.heroService.DeleteButton(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (api *AdminAPI) handleReorderButtons(w http.ResponseWriter, r *http.Request) {
	if api.heroService == nil {
		serviceUnavailable(w)
		return
	}

	var payload reorderPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}

	items, err := api.heroService.ReorderButtons(r.Context(), payload.Items)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[*hero.Button]{Items: items})
}

func (api *AdminAPI) handleMoveButton(w http.ResponseWriter, r *http.Request) {
	if api.heroService == nil {
		serviceUnavailable(w)
		return
	}

	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid button id"})
		return
	}

	var payload movePayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}

	items, err := api.heroService.MoveButton(r.Context(), id, payload.Direction)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[*hero.Button]{Items: items})
}
