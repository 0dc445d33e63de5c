// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-name-keeper/internal/logger"
	"github.com/MKhiriev/go-name-keeper/internal/utils"
	"github.com/MKhiriev/go-name-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listNames(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	entries, err := h.services.NamesService.List(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listNames").Msg("error listing names")
		writeError(w, err)
		return
	}
	if entries == nil {
		entries = []models.NameEntry{}
	}

	if _, err = utils.WriteJSON(w, entries, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.listNames").Msg("error writing response")
	}
}

func (h *Handler) createName(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	request, err := h.decodeNameRequest(w, r)
	if err != nil {
		log.Debug().Err(err).Str("func", "*Handler.createName").Msg("bad request body")
		writeError(w, err)
		return
	}

	created, err := h.services.NamesService.Create(r.Context(), request)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createName").Msg("error creating name")
		writeError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, created, http.StatusCreated); err != nil {
		log.Err(err).Str("func", "*Handler.createName").Msg("error writing response")
	}
}

func (h *Handler) updateName(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := entryIDParam(r)

	request, err := h.decodeNameRequest(w, r)
	if err != nil {
		log.Debug().Err(err).Str("func", "*Handler.updateName").Msg("bad request body")
		writeError(w, err)
		return
	}

	updated, err := h.services.NamesService.Update(r.Context(), id, request)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateName").Str("id", id.String()).Msg("error updating name")
		writeError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, updated, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.updateName").Msg("error writing response")
	}
}

func (h *Handler) deleteName(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := entryIDParam(r)

	if err := h.services.NamesService.Delete(r.Context(), id); err != nil {
		log.Err(err).Str("func", "*Handler.deleteName").Str("id", id.String()).Msg("error deleting name")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// entryIDParam returns the unescaped {id} path segment.
func entryIDParam(r *http.Request) models.EntryID {
	raw := chi.URLParam(r, "id")
	if id, err := url.PathUnescape(raw); err == nil {
		return models.EntryID(id)
	}
	return models.EntryID(raw)
}

func (h *Handler) decodeNameRequest(w http.ResponseWriter, r *http.Request) (models.NameRequest, error) {
	var request models.NameRequest

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := decoder.Decode(&request); err != nil {
		return models.NameRequest{}, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	if err := h.validate.Struct(request); err != nil {
		return models.NameRequest{}, fmt.Errorf("%w: texto is required", ErrInvalidRequestBody)
	}

	return request, nil
}
