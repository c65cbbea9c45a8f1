// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// responseWriter decorates [http.ResponseWriter] to record the status code
// and the number of body bytes written, for the access log.
//
// WriteHeader is forwarded to the underlying writer exactly once; later calls
// are ignored.
type responseWriter struct {
	http.ResponseWriter

	status      int
	wroteHeader bool
	size        int
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write implicitly sends [http.StatusOK] when no header was written yet.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}
