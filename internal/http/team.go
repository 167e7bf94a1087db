package http

import (
	"net/http"
	"strings"

	"github.com/fomolabs/fomo-cms/internal/team"
)

func (api *AdminAPI) registerTeamRoutes(mux *http.ServeMux, base string) {
	root := joinPath(base, "team")

	mux.HandleFunc("GET "+root, api.handleListMembers)
	mux.HandleFunc("POST "+root, api.handleCreateMember)
	mux.HandleFunc("POST "+root+"/reorder", api.handleReorderMembers)
	mux.HandleFunc("GET "+root+"/{id}", api.handleGetMember)
	mux.HandleFunc("PUT "+root+"/{id}", api.handleUpdateMember)
	mux.HandleFunc("DELETE "+root+"/{id}", api.handleDeleteMember)
	mux.HandleFunc("POST "+root+"/{id}/move", api.handleMoveMember)
}

func (api *AdminAPI) handleListMembers(w http.ResponseWriter, r *http.Request) {
	if api.teamService == nil {
		serviceUnavailable(w)
		return
	}

	var (
		items []*team.Member
		err   error
	)
	if memberType := strings.TrimSpace(r.URL.Query().Get("type")); memberType != "" {
		items, err = api.teamService.ListMembersByType(r.Context(), team.MemberType(memberType))
	} else {
		items, err = api.teamService.ListMembers(r.Context())
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[*team.Member]{Items: items})
}

func (api *AdminAPI) handleCreateMember(w http.ResponseWriter, r *http.Request) {
	if api.teamService == nil {
		serviceUnavailable(w)
		return
	}

	var input team.CreateMemberInput
	if err := decodeJSON(r, &input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}

	member, err := api.teamService.CreateMember(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, member)
}

func (api *AdminAPI) handleGetMember(w http.ResponseWriter, r *http.Request) {
	if api.teamService == nil {
		serviceUnavailable(w)
		return
	}

	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid member id"})
		return
	}

	member, err := api.teamService.GetMember(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, member)
}

func (api *AdminAPI) handleUpdateMember(w http.ResponseWriter, r *http.Request) {
	if api.teamService == nil {
		serviceUnavailable(w)
		return
	}

	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid member id"})
		return
	}

	var input team.UpdateMemberInput
	if err := decodeJSON(r, &input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}
	input.ID = id

	member, err := api.teamService.UpdateMember(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, member)
}

func (api *AdminAPI) handleDeleteMember(w http.ResponseWriter, r *http.Request) {
	if api.teamService == nil {
		serviceUnavailable(w)
		return
	}

	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid member id"})
		return
	}

	if err := api.teamService.DeleteMember(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (api *AdminAPI) handleReorderMembers(w http.ResponseWriter, r *http.Request) {
	if api.teamService == nil {
		serviceUnavailable(w)
		return
	}

	var payload reorderPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}

	items, err := api.teamService.ReorderMembers(r.Context(), payload.Items)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[*team.Member]{Items: items})
}

func (api *AdminAPI) handleMoveMember(w http.ResponseWriter, r *http.Request) {
	if api.teamService == nil {
		serviceUnavailable(w)
		return
	}

	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid member id"})
		return
	}

	var payload movePayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}

	items, err := api.teamService.MoveMember(r.Context(), id, payload.Direction)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[*team.Member]{Items: items})
}
