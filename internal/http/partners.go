package http

import (
	"net/http"
	"strings"

	"github.com/fomolabs/fomo-cms/internal/ordering"
	"github.com/fomolabs/fomo-cms/internal/partners"
)

// partnerReorderPayload scopes a full-set reorder to one category. Ordering is
// tracked per category, so the submission must cover that category exactly.
type partnerReorderPayload struct {
	Category partners.Category `json:"category"`
	Items    []ordering.Update `json:"items"`
}

func (api *AdminAPI) registerPartnerRoutes(mux *http.ServeMux, base string) {
	root := joinPath(base, "partners")

	mux.HandleFunc("GET "+root, api.handleListPartners)
	mux.HandleFunc("POST "+root, api.handleCreatePartner)
	mux.HandleFunc("POST "+root+"/reorder", api.handleReorderPartners)
	mux.HandleFunc("GET "+root+"/{id}", api.handleGetPartner)
	mux.HandleFunc("PUT "+root+"/{id}", api.handleUpdatePartner)
	mux.HandleFunc("DELETE "+root+"/{id}", api.handleDeletePartner)
	mux.HandleFunc("POST "+root+"/{id}/move", api.handleMovePartner)
}

func (api *AdminAPI) handleListPartners(w http.ResponseWriter, r *http.Request) {
	if api.partnerService == nil {
		serviceUnavailable(w)
		return
	}

	var (
		items []*partners.Partner
		err   error
	)
	if category := strings.TrimSpace(r.URL.Query().Get("category")); category != "" {
		items, err = api.partnerService.ListPartnersByCategory(r.Context(), partners.Category(category))
	} else {
		items, err = api.partnerService.ListPartners(r.Context())
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[*partners.Partner]{Items: items})
}

func (api *AdminAPI) handleCreatePartner(w http.ResponseWriter, r *http.Request) {
	if api.partnerService == nil {
		serviceUnavailable(w)
		return
	}

	var input partners.CreatePartnerInput
	if err := decodeJSON(r, &input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}

	partner, err := api.partnerService.CreatePartner(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, partner)
}

func (api *AdminAPI) handleGetPartner(w http.ResponseWriter, r *http.Request) {
	if api.partnerService == nil {
		serviceUnavailable(w)
		return
	}

	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid partner id"})
		return
	}

	partner, err := api.partnerService.GetPartner(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, partner)
}

func (api *AdminAPI) handleUpdatePartner(w http.ResponseWriter, r *http.Request) {
	if api.partnerService == nil {
		serviceUnavailable(w)
		return
	}

	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid partner id"})
		return
	}

	var input partners.UpdatePartnerInput
	if err := decodeJSON(r, &input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}
	input.ID = id

	partner, err := api.partnerService.UpdatePartner(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, partner)
}

func (api *AdminAPI) handleDeletePartner(w http.ResponseWriter, r *http.Request) {
	if api.partnerService == nil {
		serviceUnavailable(w)
		return
	}

	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid partner id"})
		return
	}

	if err := api.partnerService.DeletePartner(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (api *AdminAPI) handleReorderPartners(w http.ResponseWriter, r *http.Request) {
	if api.partnerService == nil {
		serviceUnavailable(w)
		return
	}

	var payload partnerReorderPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}

	items, err := api.partnerService.ReorderPartners(r.Context(), payload.Category, payload.Items)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[*partners.Partner]{Items: items})
}

func (api *AdminAPI) handleMovePartner(w http.ResponseWriter, r *http.Request) {
	if api.partnerService == nil {
		serviceUnavailable(w)
		return
	}

	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid partner id"})
		return
	}

	var payload movePayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}

	items, err := api.partnerService.MovePartner(r.Context(), id, payload.Direction)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[*partners.Partner]{Items: items})
}
