package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	if h.auth != nil {
		router.Use(h.withAuth)
	}
	router.Use(middleware.Compress(5))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// pages
	router.Group(func(r chi.Router) {
		r.Get("/", h.index)
		r.Get("/new", h.newNoteForm)
		r.Post("/new", h.createNote)
		r.Get("/notes/{name}", h.viewNote)
		r.Get("/notes/{name}/edit", h.editNoteForm)
		r.Post("/notes/{name}/edit", h.updateNote)
		r.Post("/notes/{name}/delete", h.deleteNote)
		r.Get("/download/{name}", h.downloadNote)
	})

	// JSON API used by notesctl
	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getServerVersion)
		r.Get("/notes", h.apiListNotes)
		r.Post("/notes", h.apiSaveNote)
		r.Get("/notes/{name}", h.apiGetNote)
		r.Delete("/notes/{name}", h.apiDeleteNote)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
