// Package api is a typed client for the dashboard backend: the auth endpoints
// (token obtain, refresh, register) and the CRUD resources.
//
// Resource calls go through the gateway and therefore carry the bearer
// credential and recover from an expired access credential transparently.
// Login and Register go over the base transport, they must never be
// intercepted. Any non-2xx response surfaces as *Error.
package api
