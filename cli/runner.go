package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/jessevdk/go-flags"
	"github.com/viant/leadsdesk"
	"github.com/viant/leadsdesk/api"
	"github.com/viant/leadsdesk/config"
	"github.com/viant/leadsdesk/logger"
	"github.com/viant/leadsdesk/mock"
	"github.com/viant/leadsdesk/router"
	"github.com/viant/leadsdesk/session"
	"io"
	"net/http"
	"os"
	"time"
)

var resources = map[string]bool{
	"leads": true, "followups": true, "meetings": true, "quotations": true,
	"deals": true, "users": true, "activities": true,
}

func Run(args []string) error {
	return RunWithWriter(context.Background(), args, os.Stdout)
}

// RunWithWriter parses args and runs the selected command, writing results to w.
func RunWithWriter(ctx context.Context, args []string, w io.Writer) error {
	options := &Options{}
	parser := flags.NewParser(options, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.ParseArgs(args); err != nil {
		return err
	}
	if parser.Active == nil {
		return fmt.Errorf("command was not specified")
	}
	cfg, err := config.Load(options.Config)
	if err != nil {
		return err
	}
	options.apply(cfg)
	log := logger.New(&cfg.Logger, nil)

	if parser.Active.Name == "mock" {
		return serveMock(&options.Mock, log)
	}

	client, err := leadsdesk.NewClient(cfg, leadsdesk.WithLogger(log))
	if err != nil {
		return err
	}
	switch parser.Active.Name {
	case "login":
		if _, err = client.API.Login(ctx, options.Login.Username, options.Login.Password); err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, "logged in")
		return err
	case "logout":
		if err = client.API.Logout(ctx); err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, "logged out")
		return err
	case "status":
		return status(ctx, client, cfg, w)
	case "list":
		return call(ctx, client, http.MethodGet, options.List.Args.Resource, "", w)
	case "get":
		return call(ctx, client, http.MethodGet, options.Get.Args.Resource, options.Get.Args.ID, w)
	case "delete":
		return call(ctx, client, http.MethodDelete, options.Delete.Args.Resource, options.Delete.Args.ID, w)
	case "navigate":
		return navigate(ctx, client, options.Navigate.Args.Path, w)
	}
	return fmt.Errorf("unsupported command: %v", parser.Active.Name)
}

func (o *Options) apply(cfg *config.Config) {
	if o.URL != "" {
		cfg.API.BaseURL = o.URL
	}
	if o.Session != "" {
		cfg.Session.StoreURL = o.Session
	}
	if o.LogLevel != "" {
		cfg.Logger.Level = o.LogLevel
	}
}

type sessionStatus struct {
	Store         string     `json:"store"`
	Authenticated bool       `json:"authenticated"`
	UserID        any        `json:"userId,omitempty"`
	Expiry        *time.Time `json:"expiry,omitempty"`
}

func status(ctx context.Context, client *leadsdesk.Client, cfg *config.Config, w io.Writer) error {
	token, err := session.Token(ctx, client.Store)
	if err != nil {
		return err
	}
	out := &sessionStatus{Store: cfg.Session.StoreURL, Authenticated: token != nil}
	if token != nil {
		if claims, err := api.ParseClaims(token.AccessToken); err == nil {
			out.UserID = claims.UserID
			if claims.ExpiresAt != nil {
				expiry := claims.ExpiresAt.Time
				out.Expiry = &expiry
			}
		}
	}
	return printJSON(w, out)
}

func call(ctx context.Context, client *leadsdesk.Client, method, resource, id string, w io.Writer) error {
	if !resources[resource] {
		return fmt.Errorf("unknown resource: %v", resource)
	}
	path := resource + "/"
	if id != "" {
		path += id + "/"
	}
	var out json.RawMessage
	if err := client.API.Do(ctx, method, path, nil, &out); err != nil {
		return err
	}
	if len(out) == 0 {
		return nil
	}
	return printJSON(w, out)
}

func navigate(ctx context.Context, client *leadsdesk.Client, path string, w io.Writer) error {
	route, ok := client.Router.Lookup(path)
	if !ok {
		return fmt.Errorf("%w: %v", router.ErrRouteNotFound, path)
	}
	decision := client.Router.Guard().Evaluate(ctx, route, nil)
	final, err := client.Router.Push(ctx, path)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%v -> %v (%v)\n", route.Path, decision, final.Name)
	return err
}

func serveMock(options *MockCommand, log logger.Logger) error {
	backend, err := mock.New()
	if err != nil {
		return err
	}
	backend.AddUser(options.Username, options.Password, "")
	log.Info().Str("addr", options.Addr).Str("user", options.Username).Msg("serving fake backend")
	server := &http.Server{Addr: options.Addr, Handler: backend, ReadHeaderTimeout: 10 * time.Second}
	return server.ListenAndServe()
}

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
