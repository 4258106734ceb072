package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/bnema/bangsearch/internal/application/usecase"
	"github.com/bnema/bangsearch/internal/logging"
)

const maxBodyBytes = 1 << 20

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// writeUseCaseError maps use case errors onto status codes.
func writeUseCaseError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidShortcut):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, usecase.ErrShortcutNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		logging.FromContext(r.Context()).Error().Err(err).Msg("override operation failed")
		writeError(w, http.StatusInternalServerError, "failed to update shortcuts")
	}
}

func (h *handler) getOverrides(w http.ResponseWriter, r *http.Request) {
	overrides, err := h.overrides.Get(r.Context())
	if err != nil {
		writeUseCaseError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, overrides)
}

func (h *handler) putOverrides(w http.ResponseWriter, r *http.Request) {
	var body map[string]string
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	saved, err := h.overrides.Replace(r.Context(), usecase.ReplaceInput{Shortcuts: body})
	if err != nil {
		writeUseCaseError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

type addOverrideRequest struct {
	Token    string `json:"token"`
	Template string `json:"template"`
}

func (h *handler) addOverride(w http.ResponseWriter, r *http.Request) {
	var req addOverrideRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sc, err := h.overrides.Add(r.Context(), usecase.AddShortcutInput{Token: req.Token, Template: req.Template})
	if err != nil {
		writeUseCaseError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, sc)
}

func (h *handler) deleteOverride(w http.ResponseWriter, r *http.Request) {
	token, err := url.PathUnescape(chi.URLParam(r, "token"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid token")
		return
	}

	if err := h.overrides.Delete(r.Context(), token); err != nil {
		writeUseCaseError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
