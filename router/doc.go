// Package router holds the static dashboard route table, the route access
// guard and a navigator that applies guard decisions.
//
// The guard is a pure decision over route metadata and credential presence.
// Router also receives the gateway's session-invalidated signal and performs
// the forced navigation to the login route.
package router
