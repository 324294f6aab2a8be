// Package session defines the credential store shared by the request gateway
// and the route guard.
//
// A store is a flat string key-value map, the same shape a browser's local
// storage has. The credential pair lives under two fixed keys, AccessTokenKey
// and RefreshTokenKey. It ships with an in-memory implementation for tests and
// a file implementation (any viant/afs URL) so a CLI session survives restarts.
package session
