// Package leadsdesk provides a client for the leads and property dealings
// admin API.
//
// NewClient wires the pieces together from a config.Config: a credential
// store (file-backed by default), the authenticated request gateway, the
// router whose guard reads the same store, and the typed API client. When a
// credential refresh fails the gateway clears the store and the router is
// moved to the login route.
//
// Example:
//
//	cfg, _ := config.Load("")
//	cli, _ := leadsdesk.NewClient(cfg)
//	_, _ = cli.API.Login(ctx, "admin", "secret")
//	leads, _ := cli.API.Leads.List(ctx)
package leadsdesk
