// Package server wires and runs the qry-share HTTP server.
//
// It owns the server lifecycle: startup, signal handling, and graceful
// shutdown that lets in-flight exports finish.
package server
