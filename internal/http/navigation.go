package http

import (
	"net/http"

	"github.com/fomolabs/fomo-cms/internal/navigation"
)

func (api *AdminAPI) registerNavigationRoutes(mux *http.ServeMux, base string) {
	root := joinPath(base, "navigation")

	mux.HandleFunc("GET "+root, api.handleListNavigationItems)
	mux.HandleFunc("POST "+root, api.handleCreateNavigationItem)
	mux.HandleFunc("POST "+root+"/reorder", api.handleReorderNavigationItems)
	mux.HandleFunc("GET "+root+"/{id}", api.handleGetNavigationItem)
	mux.HandleFunc("PUT "+root+"/{id}", api.handleUpdateNavigationItem)
	mux.HandleFunc("DELETE "+root+"/{id}", api.handleDeleteNavigationItem)
	mux.HandleFunc("POST "+root+"/{id}/move", api.handleMoveNavigationItem)
}

func (api *AdminAPI) handleListNavigationItems(w http.ResponseWriter, r *http.Request) {
	if api.navigationService == nil {
		serviceUnavailable(w)
		return
	}

	var (
		items []*navigation.Item
		err   error
	)
	if active, ok := parseBoolQuery(r, "active"); ok && active {
		items, err = api.navigationService.ListActiveItems(r.Context())
	} else {
		items, err = api.navigationService.ListItems(r.Context())
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[*navigation.Item]{Items: items})
}

func (api *AdminAPI) handleCreateNavigationItem(w http.ResponseWriter, r *http.Request) {
	if api.navigationService == nil {
		serviceUnavailable(w)
		return
	}

	var input navigation.CreateItemInput
	if err := decodeJSON(r, &input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}

	item, err := api.navigationService.CreateItem(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (api *AdminAPI) handleGetNavigationItem(w http.ResponseWriter, r *http.Request) {
	if api.navigationService == nil {
		serviceUnavailable(w)
		return
	}

	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid navigation id"})
		return
	}

	item, err := api.navigationService.GetItem(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (api *AdminAPI) handleUpdateNavigationItem(w http.ResponseWriter, r *http.Request) {
	if api.navigationService == nil {
		serviceUnavailable(w)
		return
	}

	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid navigation id"})
		return
	}

	var input navigation.UpdateItemInput
	if err := decodeJSON(r, &input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}
	input.ID = id

	item, err := api.navigationService.UpdateItem(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (api *AdminAPI) handleDeleteNavigationItem(w http.ResponseWriter, r *http.Request) {
	if api.navigationService == nil {
		serviceUnavailable(w)
		return
	}

	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid navigation id"})
		return
	}

	if err := api.navigationService.DeleteItem(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (api *AdminAPI) handleReorderNavigationItems(w http.ResponseWriter, r *http.Request) {
	if api.navigationService == nil {
		serviceUnavailable(w)
		return
	}

	var payload reorderPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}

	items, err := api.navigationService.ReorderItems(r.Context(), payload.Items)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[*navigation.Item]{Items: items})
}

func (api *AdminAPI) handleMoveNavigationItem(w http.ResponseWriter, r *http.Request) {
	if api.navigationService == nil {
		serviceUnavailable(w)
		return
	}

	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid navigation id"})
		return
	}

	var payload movePayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}

	items, err := api.navigationService.MoveItem(r.Context(), id, payload.Direction)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[*navigation.Item]{Items: items})
}
