package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/fomolabs/fomo-cms/internal/auth"
	"github.com/fomolabs/fomo-cms/internal/cards"
	"github.com/fomolabs/fomo-cms/internal/evolution"
	"github.com/fomolabs/fomo-cms/internal/faq"
	"github.com/fomolabs/fomo-cms/internal/hero"
	"github.com/fomolabs/fomo-cms/internal/navigation"
	"github.com/fomolabs/fomo-cms/internal/ordering"
	"github.com/fomolabs/fomo-cms/internal/partners"
	"github.com/fomolabs/fomo-cms/internal/roadmap"
	"github.com/fomolabs/fomo-cms/internal/sections"
	"github.com/fomolabs/fomo-cms/internal/team"
	"github.com/fomolabs/fomo-cms/internal/uploads"
	"github.com/fomolabs/fomo-cms/internal/validation"
)

type errorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Issues  map[string]string `json:"issues,omitempty"`
}

func joinPath(base, suffix string) string {
	trimmedBase := strings.TrimSpace(base)
	trimmedSuffix := strings.TrimSpace(suffix)
	if trimmedBase == "" {
		if trimmedSuffix == "" {
			return "/"
		}
		return "/" + strings.Trim(trimmedSuffix, "/")
	}
	baseClean := "/" + strings.Trim(trimmedBase, "/")
	if trimmedSuffix == "" {
		return baseClean
	}
	return baseClean + "/" + strings.Trim(trimmedSuffix, "/")
}

func decodeJSON(r *http.Request, target any) error {
	if r == nil || r.Body == nil {
		return io.EOF
	}
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()
	return decoder.Decode(target)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	if w == nil {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	status, payload := mapError(err)
	writeJSON(w, status, payload)
}

func mapError(err error) (int, errorResponse) {
	if err == nil {
		return http.StatusInternalServerError, errorResponse{Error: "unknown_error"}
	}

	if isNotFound(err) {
		return http.StatusNotFound, errorResponse{Error: "not_found", Message: err.Error()}
	}

	var capacityErr *validation.CapacityError
	if errors.As(err, &capacityErr) {
		return http.StatusUnprocessableEntity, errorResponse{
			Error:   "capacity_exceeded",
			Message: capacityErr.Error(),
		}
	}

	var validationErrs ozzo.Errors
	if errors.As(err, &validationErrs) {
		return http.StatusUnprocessableEntity, errorResponse{
			Error:   "validation_failed",
			Message: "one or more fields are invalid",
			Issues:  validation.Issues(validationErrs),
		}
	}

	if errors.Is(err, ordering.ErrBadSubmission) {
		return http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()}
	}

	if errors.Is(err, auth.ErrInvalidCredentials) || errors.Is(err, auth.ErrInvalidToken) {
		return http.StatusUnauthorized, errorResponse{Error: "unauthorized", Message: err.Error()}
	}

	if errors.Is(err, uploads.ErrUnsupportedType) || errors.Is(err, uploads.ErrTooLarge) {
		return http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()}
	}

	return http.StatusInternalServerError, errorResponse{Error: "internal_error", Message: err.Error()}
}

// isNotFound matches the per-package not-found error types. Each collection
// owns its own type, so the mapping enumerates them.
func isNotFound(err error) bool {
	var (
		cardErr      *cards.NotFoundError
		teamErr      *team.NotFoundError
		partnerErr   *partners.NotFoundError
		faqErr       *faq.NotFoundError
		roadmapErr   *roadmap.NotFoundError
		evolutionErr *evolution.NotFoundError
		heroErr      *hero.NotFoundError
		navErr       *navigation.NotFoundError
		sectionErr   *sections.NotFoundError
	)
	return errors.As(err, &cardErr) ||
		errors.As(err, &teamErr) ||
		errors.As(err, &partnerErr) ||
		errors.As(err, &faqErr) ||
		errors.As(err, &roadmapErr) ||
		errors.As(err, &evolutionErr) ||
		errors.As(err, &heroErr) ||
		errors.As(err, &navErr) ||
		errors.As(err, &sectionErr)
}

func parseUUID(value string) (uuid.UUID, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return uuid.Nil, errors.New("uuid required")
	}
	return uuid.Parse(trimmed)
}

func parseBoolQuery(r *http.Request, name string) (value bool, ok bool) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return false, false
	}
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return parsed, true
}

func parseIntQuery(value string, defaultValue int) int {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(trimmed)
	if err != nil {
		return defaultValue
	}
	return parsed
}
