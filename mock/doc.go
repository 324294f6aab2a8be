// Package mock provides an in-process fake of the dashboard backend: JWT
// token obtain/refresh endpoints, sign-up, and the CRUD resources, all
// protected by bearer access tokens.
//
// Tests use it to drive the gateway through real expiry and refresh
// sequences; the CLI serves it for local development.
package mock
