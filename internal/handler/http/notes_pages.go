package http

import (
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/work-notes/internal/config"
	"github.com/MKhiriev/work-notes/internal/logger"
	"github.com/MKhiriev/work-notes/models"
)

// maxFormBytes bounds a note submitted through a form or the API.
const maxFormBytes = 10 << 20

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	params := queryParamsFromRequest(r)
	page, err := h.notes.Query(r.Context(), params)
	if err != nil {
		log.Err(err).Str("func", "*Handler.index").Msg("error querying notes")
		h.renderError(w, r, err)
		return
	}

	data := h.newViewData(r, "index", "")
	data.Query = params
	data.Page = page
	data.Flash = flashFromQuery(r.URL.Query())
	h.render(w, r, http.StatusOK, data)
}

func (h *Handler) newNoteForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, h.newViewData(r, "new", "New note"))
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		log.Err(err).Str("func", "*Handler.createNote").Msg("error parsing form")
		h.renderError(w, r, fmt.Errorf("%w: %w", ErrInvalidForm, err))
		return
	}

	req := models.SaveRequest{
		Date: r.PostForm.Get("date"),
		From: r.PostForm.Get("from_date"),
		To:   r.PostForm.Get("to_date"),
		Text: r.PostForm.Get("filename"),
		Body: r.PostForm.Get("notes"),
	}

	result, err := h.notes.Save(r.Context(), req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createNote").Msg("note was not saved")

		data := h.newViewData(r, "new", "New note")
		data.Form = req
		status := statusFromError(err)
		data.Flash = &flash{Message: result.Message}
		if data.Flash.Message == "" || status == http.StatusInternalServerError {
			data.Flash.Message = messageFromError(err)
		}
		h.render(w, r, status, data)
		return
	}

	values := url.Values{"saved": {result.Name}}
	if result.Overwritten {
		values.Set("replaced", "1")
	}
	http.Redirect(w, r, "/?"+values.Encode(), http.StatusSeeOther)
}

func (h *Handler) viewNote(w http.ResponseWriter, r *http.Request) {
	note, ok := h.loadNote(w, r, "*Handler.viewNote")
	if !ok {
		return
	}

	data := h.newViewData(r, "view", note.Name)
	data.Note = note
	if r.URL.Query().Get("saved") != "" {
		data.Flash = &flash{OK: true, Message: "Saved " + note.Name}
	}
	h.render(w, r, http.StatusOK, data)
}

func (h *Handler) editNoteForm(w http.ResponseWriter, r *http.Request) {
	note, ok := h.loadNote(w, r, "*Handler.editNoteForm")
	if !ok {
		return
	}

	data := h.newViewData(r, "edit", "Edit "+note.Name)
	data.Note = note
	h.render(w, r, http.StatusOK, data)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	name := noteName(r)

	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		log.Err(err).Str("func", "*Handler.updateNote").Msg("error parsing form")
		h.renderError(w, r, fmt.Errorf("%w: %w", ErrInvalidForm, err))
		return
	}

	result, err := h.notes.Update(r.Context(), name, r.PostForm.Get("notes"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateNote").Str("name", name).Msg("note was not updated")
		h.renderError(w, r, err)
		return
	}

	http.Redirect(w, r, "/notes/"+url.PathEscape(result.Name)+"?saved=1", http.StatusSeeOther)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	name := noteName(r)

	if err := h.notes.Delete(r.Context(), name); err != nil {
		log.Err(err).Str("func", "*Handler.deleteNote").Str("name", name).Msg("note was not deleted")
		h.renderError(w, r, err)
		return
	}

	http.Redirect(w, r, "/?"+url.Values{"deleted": {name}}.Encode(), http.StatusSeeOther)
}

func (h *Handler) downloadNote(w http.ResponseWriter, r *http.Request) {
	note, ok := h.loadNote(w, r, "*Handler.downloadNote")
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": note.Name}))
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(note.Body))
}

// loadNote fetches the note named in the URL or renders the error page.
func (h *Handler) loadNote(w http.ResponseWriter, r *http.Request, fn string) (models.Note, bool) {
	name := noteName(r)
	note, err := h.notes.Get(r.Context(), name)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", fn).Str("name", name).Msg("error reading note")
		h.renderError(w, r, err)
		return models.Note{}, false
	}
	return note, true
}

func (h *Handler) newViewData(r *http.Request, content, title string) viewData {
	info := h.appInfo.GetAppInfo(r.Context())
	return viewData{
		Title:           title,
		ContentTemplate: content,
		Strict:          info.Variant == config.VariantStrict,
		Version:         info.Version,
		Today:           time.Now().Format(time.DateOnly),
	}
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, data viewData) {
	if err := h.templates.RenderPage(w, status, data); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.render").Send()
	}
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	data := h.newViewData(r, "error", http.StatusText(statusFromError(err)))
	data.Flash = &flash{Message: messageFromError(err)}
	h.render(w, r, statusFromError(err), data)
}

func flashFromQuery(values url.Values) *flash {
	if name := values.Get("saved"); name != "" {
		msg := "Saved " + name
		if values.Get("replaced") != "" {
			msg += " (replaced the existing note)"
		}
		return &flash{OK: true, Message: msg}
	}
	if name := values.Get("deleted"); name != "" {
		return &flash{OK: true, Message: "Deleted " + name}
	}
	return nil
}

func queryParamsFromRequest(r *http.Request) models.QueryParams {
	values := r.URL.Query()
	page, err := strconv.Atoi(values.Get("page"))
	if err != nil {
		page = 1
	}
	return models.QueryParams{
		Search: values.Get("q"),
		From:   values.Get("from"),
		To:     values.Get("to"),
		Page:   page,
	}
}

// noteName returns the {name} URL parameter. chi matches on the escaped
// path when one is present, so it is unescaped here.
func noteName(r *http.Request) string {
	name := chi.URLParam(r, "name")
	if r.URL.RawPath == "" {
		return name
	}
	unescaped, err := url.PathUnescape(name)
	if err != nil {
		return name
	}
	return unescaped
}
