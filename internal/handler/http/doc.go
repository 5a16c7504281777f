// Package http implements the HTTP transport layer of the favorites API.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as request tracing, access logging, CORS,
// response compression, and request deadlines are handled in this package
// before requests are delegated to the service layer. Every error leaves the
// package as the JSON envelope {"error": "..."}.
package http
