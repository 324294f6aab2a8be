// Package gateway implements the authenticated request gateway.
//
// The RoundTripper attaches the stored bearer credential to every outbound
// call. When the backend rejects a call with 401 Unauthorized it exchanges
// the refresh credential for a new access credential on a separate,
// non-intercepted channel and replays the original call exactly once. When
// the exchange fails both credentials are removed and the configured Listener
// receives a session-invalidated signal.
//
// The RoundTripper can be installed on any http.Client:
//
//	rt, _ := gateway.New(gateway.WithStore(store), gateway.WithRefreshURL(refreshURL))
//	client := &http.Client{Transport: rt}
package gateway
