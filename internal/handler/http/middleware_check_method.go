// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
// A known path requested with an unregistered method gets 404 instead of
// chi's 405, so the route stays hidden. Only exact pattern matches are
// considered.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, route := range router.Routes() {
			if route.Pattern != r.URL.Path {
				continue
			}
			if _, ok := route.Handlers[r.Method]; ok {
				router.ServeHTTP(w, r)
				return
			}
			break
		}

		http.NotFound(w, r)
	}
}
