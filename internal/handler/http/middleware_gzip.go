package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

var gzipWriterPool = sync.Pool{
	New: func() any {
		w := gzip.NewWriter(nil)
		return w
	},
}

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// compressibleTypes are the response media types worth compressing. Raster
// exports are already compressed and pass through untouched.
var compressibleTypes = []string{
	"application/json",
	"image/svg+xml",
	"text/",
}

func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		acceptEncoding := req.Header.Get("Accept-Encoding")
		supportsGzip := strings.Contains(acceptEncoding, "gzip")

		contentEncoding := req.Header.Get("Content-Encoding")
		isGzipRequest := strings.Contains(contentEncoding, "gzip")

		if isGzipRequest && req.Body != nil {
			gzipReader := gzipReaderPool.Get().(*gzip.Reader)
			if err := gzipReader.Reset(req.Body); err != nil {
				gzipReaderPool.Put(gzipReader)
				http.Error(w, "Invalid gzip data", http.StatusBadRequest)
				return
			}

			req.Body = &wrappedReadCloser{
				Reader: gzipReader,
				OnClose: func() {
					gzipReader.Close()
					gzipReaderPool.Put(gzipReader)
				},
			}
			req.Header.Del("Content-Encoding")
		}

		if !supportsGzip {
			next.ServeHTTP(w, req)
			return
		}

		gzipRW := &gzipResponseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(gzipRW, req)

		gzipRW.Close()
	})
}

type wrappedReadCloser struct {
	io.Reader
	OnClose func()
}

func (w *wrappedReadCloser) Close() error {
	if w.OnClose != nil {
		w.OnClose()
	}
	return nil
}

// gzipResponseWriter decides on the first WriteHeader or Write whether the
// response is compressed, based on the Content-Type set by the handler.
type gzipResponseWriter struct {
	http.ResponseWriter
	gzipWriter  *gzip.Writer
	wroteHeader bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	if statusCode != http.StatusNoContent && isCompressible(w.Header().Get("Content-Type")) {
		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Del("Content-Length")
		w.Header().Add("Vary", "Accept-Encoding")

		w.gzipWriter = gzipWriterPool.Get().(*gzip.Writer)
		w.gzipWriter.Reset(w.ResponseWriter)
	}

	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		if w.Header().Get("Content-Type") == "" {
			w.Header().Set("Content-Type", http.DetectContentType(data))
		}
		w.WriteHeader(http.StatusOK)
	}

	if w.gzipWriter == nil {
		return w.ResponseWriter.Write(data)
	}
	return w.gzipWriter.Write(data)
}

func (w *gzipResponseWriter) Close() error {
	if w.gzipWriter == nil {
		return nil
	}

	err := w.gzipWriter.Close()
	gzipWriterPool.Put(w.gzipWriter)
	w.gzipWriter = nil
	return err
}

func isCompressible(contentType string) bool {
	for _, t := range compressibleTypes {
		if strings.HasPrefix(contentType, t) {
			return true
		}
	}
	return false
}
