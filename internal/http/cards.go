package http

import (
	"net/http"

	"github.com/fomolabs/fomo-cms/internal/cards"
	"github.com/fomolabs/fomo-cms/internal/ordering"
)

type reorderPayload struct {
	Items []ordering.Update `json:"items"`
}

type movePayload struct {
	Direction ordering.Direction `json:"direction"`
}

type listResponse[T any] struct {
	Items []T `json:"items"`
}

func (api *AdminAPI) registerCardRoutes(mux *http.ServeMux, base string) {
	root := joinPath(base, "cards")

	mux.HandleFunc("GET "+root, api.handleListCards)
	mux.HandleFunc("POST "+root, api.handleCreateCard)
	mux.HandleFunc("POST "+root+"/reorder", api.handleReorderCards)
	mux.HandleFunc("GET "+root+"/{id}", api.handleGetCard)
	mux.HandleFunc("PUT "+root+"/{id}", api.handleUpdateCard)
	mux.HandleFunc("DELETE "+root+"/{id}", api.handleDeleteCard)
	mux.HandleFunc("POST "+root+"/{id}/move", api.handleMoveCard)
}

func (api *AdminAPI) handleListCards(w http.ResponseWriter, r *http.Request) {
	if api.cardService == nil {
		serviceUnavailable(w)
		return
	}

	items, err := api.cardService.ListCards(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[*cards.Card]{Items: items})
}

func (api *AdminAPI) handleCreateCard(w http.ResponseWriter, r *http.Request) {
	if api.cardService == nil {
		serviceUnavailable(w)
		return
	}

	var input cards.CreateCardInput
	if err := decodeJSON(r, &input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}

	card, err := api.cardService.CreateCard(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, card)
}

func (api *AdminAPI) handleGetCard(w http.ResponseWriter, r *http.Request) {
	if api.cardService == nil {
		serviceUnavailable(w)
		return
	}

	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid card id"})
		return
	}

	card, err := api.cardService.GetCard(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, card)
}

func (api *AdminAPI) handleUpdateCard(w http.ResponseWriter, r *http.Request) {
	if api.cardService == nil {
		serviceUnavailable(w)
		return
	}

	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid card id"})
		return
	}

	var input cards.UpdateCardInput
	if err := decodeJSON(r, &input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}
	input.ID = id

	card, err := api.cardService.UpdateCard(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, card)
}

func (api *AdminAPI) handleDeleteCard(w http.ResponseWriter, r *http.Request) {
	if api.cardService == nil {
		serviceUnavailable(w)
		return
	}

	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid card id"})
		return
	}

	if err := api.cardService.DeleteCard(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (api *AdminAPI) handleReorderCards(w http.ResponseWriter, r *http.Request) {
	if api.cardService == nil {
		serviceUnavailable(w)
		return
	}

	var payload reorderPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}

	items, err := api.cardService.ReorderCards(r.Context(), payload.Items)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[*cards.Card]{Items: items})
}

func (api *AdminAPI) handleMoveCard(w http.ResponseWriter, r *http.Request) {
	if api.cardService == nil {
		serviceUnavailable(w)
		return
	}

	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid card id"})
		return
	}

	var payload movePayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}

	items, err := api.cardService.MoveCard(r.Context(), id, payload.Direction)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[*cards.Card]{Items: items})
}
