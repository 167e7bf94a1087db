package http

import (
	"net/http"

	"github.com/fomolabs/fomo-cms/internal/faq"
)

func (api *AdminAPI) registerFAQRoutes(mux *http.ServeMux, base string) {
	root := joinPath(base, "faq")

	mux.HandleFunc("GET "+root, api.handleListFAQItems)
	mux.HandleFunc("POST "+root, api.handleCreateFAQItem)
	mux.HandleFunc("POST "+root+"/reorder", api.handleReorderFAQItems)
	mux.HandleFunc("GET "+root+"/{id}", api.handleGetFAQItem)
	mux.HandleFunc("PUT "+root+"/{id}", api.handleUpdateFAQItem)
	mux.HandleFunc("DELETE "+root+"/{id}", api.handleDeleteFAQItem)
	mux.HandleFunc("POST "+root+"/{id}/move", api.handleMoveFAQItem)
}

func (api *AdminAPI) handleListFAQItems(w http.ResponseWriter, r *http.Request) {
	if api.faqService == nil {
		serviceUnavailable(w)
		return
	}

	items, err := api.faqService.ListItems(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[*faq.Item]{Items: items})
}

func (api *AdminAPI) handleCreateFAQItem(w http.ResponseWriter, r *http.Request) {
	if api.faqService == nil {
		serviceUnavailable(w)
		return
	}

	var input faq.CreateItemInput
	if err := decodeJSON(r, &input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}

	item, err := api.faqService.CreateItem(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (api *AdminAPI) handleGetFAQItem(w http.ResponseWriter, r *http.Request) {
	if api.faqService == nil {
		serviceUnavailable(w)
		return
	}

	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid faq id"})
		return
	}

	item, err := api.faqService.GetItem(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (api *AdminAPI) handleUpdateFAQItem(w http.ResponseWriter, r *http.Request) {
	if api.faqService == nil {
		serviceUnavailable(w)
		return
	}

	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid faq id"})
		return
	}

	var input faq.UpdateItemInput
	if err := decodeJSON(r, &input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}
	input.ID = id

	item, err := api.faqService.UpdateItem(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (api *AdminAPI) handleDeleteFAQItem(w http.ResponseWriter, r *http.Request) {
	if api.faqService == nil {
		serviceUnavailable(w)
		return
	}

	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid faq id"})
		return
	}

	if err := api.faqService.DeleteItem(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (api *AdminAPI) handleReorderFAQItems(w http.ResponseWriter, r *http.Request) {
	if api.faqService == nil {
		serviceUnavailable(w)
		return
	}

	var payload reorderPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}

	items, err := api.faqService.ReorderItems(r.Context(), payload.Items)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[*faq.Item]{Items: items})
}

func (api *AdminAPI) handleMoveFAQItem(w http.ResponseWriter, r *http.Request) {
	if api.faqService == nil {
		serviceUnavailable(w)
		return
	}

	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid faq id"})
		return
	}

	var payload movePayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}

	items, err := api.faqService.MoveItem(r.Context(), id, payload.Direction)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[*faq.Item]{Items: items})
}
