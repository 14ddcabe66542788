// Package http implements the HTTP transport layer of the catalog server.
//
// It exposes the peer protocol used by other catalog instances during a
// sync, the local control endpoints that start and poll sync jobs, and the
// catalog API. Peer authentication, request tracing, access logging,
// response compression, and change push integrity checks are handled in this
// package before requests are delegated to the service layer.
package http
