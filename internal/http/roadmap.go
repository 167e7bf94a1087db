package http

import (
	"net/http"
	"strings"

	"github.com/fomolabs/fomo-cms/internal/roadmap"
)

func (api *AdminAPI) registerRoadmapRoutes(mux *http.ServeMux, base string) {
	root := joinPath(base, "roadmap/tasks")

	mux.HandleFunc("GET "+root, api.handleListTasks)
	mux.HandleFunc("POST "+root, api.handleCreateTask)
	mux.HandleFunc("POST "+root+"/reorder", api.handleReorderTasks)
	mux.HandleFunc("GET "+root+"/{id}", api.handleGetTask)
	mux.HandleFunc("PUT "+root+"/{id}", api.handleUpdateTask)
	mux.HandleFunc("DELETE "+root+"/{id}", api.handleDeleteTask)
	mux.HandleFunc("POST "+root+"/{id}/move", api.handleMoveTask)
}

func (api *AdminAPI) handleListTasks(w http.ResponseWriter, r *http.Request) {
	if api.roadmapService == nil {
		serviceUnavailable(w)
		return
	}

	var (
		items []*roadmap.Task
		err   error
	)
	if category := strings.TrimSpace(r.URL.Query().Get("category")); category != "" {
		items, err = api.roadmapService.ListTasksByCategory(r.Context(), category)
	} else {
		items, err = api.roadmapService.ListTasks(r.Context())
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[*roadmap.Task]{Items: items})
}

func (api *AdminAPI) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	if api.roadmapService == nil {
		serviceUnavailable(w)
		return
	}

	var input roadmap.CreateTaskInput
	if err := decodeJSON(r, &input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}

	task, err := api.roadmapService.CreateTask(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, task)
}

func (api *AdminAPI) handleGetTask(w http.ResponseWriter, r *http.Request) {
	if api.roadmapService == nil {
		serviceUnavailable(w)
		return
	}

	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid task id"})
		return
	}

	task, err := api.roadmapService.GetTask(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (api *AdminAPI) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	if api.roadmapService == nil {
		serviceUnavailable(w)
		return
	}

	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid task id"})
		return
	}

	var input roadmap.UpdateTaskInput
	if err := decodeJSON(r, &input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}
	input.ID = id

	task, err := api.roadmapService.UpdateTask(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (api *AdminAPI) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	if api.roadmapService == nil {
		serviceUnavailable(w)
		return
	}

	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid task id"})
		return
	}

	if err := api.roadmapService.DeleteTask(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (api *AdminAPI) handleReorderTasks(w http.ResponseWriter, r *http.Request) {
	if api.roadmapService == nil {
		serviceUnavailable(w)
		return
	}

	var payload reorderPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}

	items, err := api.roadmapService.ReorderTasks(r.Context(), payload.Items)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[*roadmap.Task]{Items: items})
}

func (api *AdminAPI) handleMoveTask(w http.ResponseWriter, r *http.Request) {
	if api.roadmapService == nil {
		serviceUnavailable(w)
		return
	}

	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid task id"})
		return
	}

	var payload movePayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}

	items, err := api.roadmapService.MoveTask(r.Context(), id, payload.Direction)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[*roadmap.Task]{Items: items})
}
