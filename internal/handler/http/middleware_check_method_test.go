// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// buildRouter creates a minimal chi.Mux for tests without Handler.Init().
func buildRouter() *chi.Mux {
	router := chi.NewRouter()

	router.Get("/notes/{name}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Post("/notes/{name}/delete", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusSeeOther)
	})
	router.Route("/api", func(r chi.Router) {
		r.Get("/notes", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		r.Delete("/notes/{name}", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{name: "registered GET with param", method: http.MethodGet, path: "/notes/2025-01-15.txt", wantStatus: http.StatusOK},
		{name: "registered POST", method: http.MethodPost, path: "/notes/2025-01-15.txt/delete", wantStatus: http.StatusSeeOther},
		{name: "POST on GET-only route", method: http.MethodPost, path: "/notes/2025-01-15.txt", wantStatus: http.StatusNotFound},
		{name: "GET on POST-only route", method: http.MethodGet, path: "/notes/a.txt/delete", wantStatus: http.StatusNotFound},
		{name: "subrouter registered", method: http.MethodDelete, path: "/api/notes/a.txt", wantStatus: http.StatusNoContent},
		{name: "subrouter wrong method", method: http.MethodPut, path: "/api/notes", wantStatus: http.StatusNotFound},
		{name: "unknown path", method: http.MethodGet, path: "/nope", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestCheckHTTPMethod_DirectCallWithRegisteredMethod(t *testing.T) {
	router := buildRouter()

	rr := httptest.NewRecorder()
	CheckHTTPMethod(router)(rr, httptest.NewRequest(http.MethodGet, "/notes/a.txt", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
}
