// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func gunzip(t *testing.T, data []byte) string {
	t.Helper()
	zr, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer zr.Close()
	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(out)
}

func TestGZip_Response(t *testing.T) {
	tests := []struct {
		name           string
		acceptEncoding string
		contentType    string
		body           string
		wantGzipped    bool
	}{
		{
			name:           "json is compressed",
			acceptEncoding: "gzip",
			contentType:    "application/json",
			body:           `{"payload":"https://example.com"}`,
			wantGzipped:    true,
		},
		{
			name:           "svg is compressed",
			acceptEncoding: "deflate, gzip, br",
			contentType:    svgContentType,
			body:           strings.Repeat(`<path d="M0 0h1v1H0z"/>`, 100),
			wantGzipped:    true,
		},
		{
			name:           "plain text with quality values",
			acceptEncoding: "gzip;q=1.0, identity;q=0.5",
			contentType:    "text/plain",
			body:           "1.0.0",
			wantGzipped:    true,
		},
		{
			name:           "png passes through",
			acceptEncoding: "gzip",
			contentType:    "image/png",
			body:           "\x89PNG\r\n\x1a\n",
		},
		{
			name:           "webp passes through",
			acceptEncoding: "gzip",
			contentType:    "image/webp",
			body:           "RIFF....WEBP",
		},
		{
			name:        "client without gzip support",
			contentType: "application/json",
			body:        `{"payload":"x"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", tt.contentType)
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(tt.body))
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			rec := httptest.NewRecorder()
			withGZip(next).ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			if tt.wantGzipped {
				assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
				assert.Equal(t, tt.body, gunzip(t, rec.Body.Bytes()))
				return
			}
			assert.Empty(t, rec.Header().Get("Content-Encoding"))
			assert.Equal(t, tt.body, rec.Body.String())
		})
	}
}

func TestGZip_ImplicitHeaderDetectsContentType(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("plain text body"))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rec, req)

	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	assert.Equal(t, "plain text body", gunzip(t, rec.Body.Bytes()))
}

func TestGZip_NoBodyLeavesResponseEmpty(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Zero(t, rec.Body.Len())
}

func TestGZip_Request(t *testing.T) {
	tests := []struct {
		name            string
		contentEncoding string
		body            []byte
		compress        bool
		wantStatus      int
	}{
		{
			name:            "gzipped body is decoded",
			contentEncoding: "gzip",
			body:            []byte(`{"mode":"url"}`),
			compress:        true,
			wantStatus:      http.StatusOK,
		},
		{
			name:            "multiple content encodings",
			contentEncoding: "gzip, deflate",
			body:            []byte(`{"mode":"wifi"}`),
			compress:        true,
			wantStatus:      http.StatusOK,
		},
		{
			name:            "invalid gzip data",
			contentEncoding: "gzip",
			body:            []byte("not gzipped data"),
			wantStatus:      http.StatusBadRequest,
		},
		{
			name:       "plain body untouched",
			body:       []byte(`{"mode":"contact"}`),
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				require.NoError(t, r.Body.Close())
				assert.Equal(t, string(tt.body), string(got))
				assert.Empty(t, r.Header.Get("Content-Encoding"))
				w.WriteHeader(http.StatusOK)
			})

			body := tt.body
			if tt.compress {
				body = gzipBytes(t, tt.body)
			}
			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
			if tt.contentEncoding != "" {
				req.Header.Set("Content-Encoding", tt.contentEncoding)
			}
			rec := httptest.NewRecorder()
			withGZip(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestIsCompressible(t *testing.T) {
	assert.True(t, isCompressible("application/json"))
	assert.True(t, isCompressible("text/plain; charset=utf-8"))
	assert.True(t, isCompressible(svgContentType))
	assert.False(t, isCompressible("image/png"))
	assert.False(t, isCompressible("image/jpeg"))
	assert.False(t, isCompressible(""))
}
