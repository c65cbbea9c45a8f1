// Package http implements the HTTP transport layer of the qry-share server.
//
// It exposes route wiring, request handlers, and middleware for the payload,
// preview and export endpoints. Request tracing, access logging and response
// compression are handled in this package before requests are delegated to
// the service layer.
package http
