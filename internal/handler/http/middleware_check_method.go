// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns a handler meant for [chi.Mux.MethodNotAllowed].
//
// Chi answers 405 when a path matches a route but the method is not
// registered. This handler answers 404 instead so unsupported methods do
// not reveal which routes exist. When the method does match (the handler
// was invoked directly) the request is passed on to the router.
//
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.RawPath
		if path == "" {
			path = r.URL.Path
		}

		if !router.Match(chi.NewRouteContext(), r.Method, path) {
			http.NotFound(w, r)
			return
		}

		router.ServeHTTP(w, r)
	}
}
