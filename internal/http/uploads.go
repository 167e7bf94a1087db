package http

import (
	"errors"
	"net/http"

	"github.com/fomolabs/fomo-cms/internal/uploads"
)

func (api *AdminAPI) registerUploadRoutes(mux *http.ServeMux, base string) {
	mux.HandleFunc("POST "+joinPath(base, "uploads"), api.handleUpload)
}

// handleUpload streams the request body straight to disk. The body is the
// raw image; the Content-Type header selects the stored extension.
func (api *AdminAPI) handleUpload(w http.ResponseWriter, r *http.Request) {
	if api.uploadService == nil {
		serviceUnavailable(w)
		return
	}
	defer r.Body.Close()

	url, err := api.uploadService.Save(r.Context(), r.Header.Get("Content-Type"), r.Body)
	if err != nil {
		if errors.Is(err, uploads.ErrTooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "too_large", Message: err.Error()})
			return
		}
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"url": url})
}
