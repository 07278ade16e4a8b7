package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/work-notes/internal/logger"
	"github.com/MKhiriev/work-notes/internal/utils"
	"github.com/MKhiriev/work-notes/models"
)

func (h *Handler) apiListNotes(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	page, err := h.notes.Query(r.Context(), queryParamsFromRequest(r))
	if err != nil {
		log.Err(err).Str("func", "*Handler.apiListNotes").Msg("error querying notes")
		h.writeAPIError(w, r, err)
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

func (h *Handler) apiGetNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	name := noteName(r)

	note, err := h.notes.Get(r.Context(), name)
	if err != nil {
		log.Err(err).Str("func", "*Handler.apiGetNote").Str("name", name).Msg("error reading note")
		h.writeAPIError(w, r, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) apiSaveNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.SaveRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxFormBytes)).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.apiSaveNote").Msg("Invalid JSON was passed")
		h.writeAPIError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	result, err := h.notes.Save(r.Context(), req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.apiSaveNote").Msg("note was not saved")
		h.writeAPIError(w, r, err)
		return
	}

	status := http.StatusCreated
	if result.Overwritten {
		status = http.StatusOK
	}
	utils.WriteJSON(w, result, status)
}

func (h *Handler) apiDeleteNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	name := noteName(r)

	if err := h.notes.Delete(r.Context(), name); err != nil {
		log.Err(err).Str("func", "*Handler.apiDeleteNote").Str("name", name).Msg("note was not deleted")
		h.writeAPIError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeAPIError(w http.ResponseWriter, r *http.Request, err error) {
	if _, werr := utils.WriteError(w, messageFromError(err), statusFromError(err)); werr != nil {
		logger.FromRequest(r).Err(werr).Str("func", "*Handler.writeAPIError").Send()
	}
}
