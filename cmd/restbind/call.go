package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"net/http"
	"os"
	"slices"
	"strings"

	"github.com/broady/restbind"
	"github.com/broady/restbind/middleware"
)

type CallCmd struct {
	Service   string   `arg:"" help:"Service name."`
	Resource  string   `arg:"" help:"Resource name, e.g. objects or accounts.containers.tags."`
	Operation string   `arg:"" help:"Operation name."`
	Params    []string `arg:"" optional:"" sep:"none" help:"Parameters as name=value. Repeat a name to pass several values."`

	Body   string `help:"JSON request body read from a file, or - for standard input." short:"b"`
	Doc    string `help:"Read the service from this document instead of the built-in services." type:"existingfile"`
	DryRun bool   `help:"Print the HTTP request instead of sending it." name:"dry-run"`
	All    bool   `help:"Follow pageToken and print every page."`
}

func (c *CallCmd) Run(a *app) error {
	ctx := context.Background()

	src, err := resolve(ctx, c.Doc, c.Service)
	if err != nil {
		return err
	}
	params, err := parseParams(c.Params)
	if err != nil {
		return err
	}
	if c.Body != "" {
		body, err := a.readBody(c.Body)
		if err != nil {
			return err
		}
		params[restbind.PostBody] = body
	}

	transport := a.transport(src.spec)
	var invoker restbind.Invoker = transport
	if c.DryRun {
		invoker = dryRun(transport, a.out)
	}
	svc, err := src.newService(invoker)
	if err != nil {
		return err
	}
	svc.WithLogger(a.logger).WithInterceptor(middleware.LoggingInterceptor(a.logger))
	if a.cfg.QuotaUser != "" {
		svc.WithInterceptor(middleware.QuotaUser(a.cfg.QuotaUser))
	}
	if a.cfg.APIKey != "" {
		svc.WithInterceptor(middleware.APIKey(a.cfg.APIKey))
	}

	if !c.All {
		res, err := svc.Call(ctx, c.Resource, c.Operation, params)
		if err != nil || c.DryRun {
			return err
		}
		return a.printJSON(res)
	}

	op, err := src.spec.Lookup(c.Resource, c.Operation)
	if err != nil {
		return err
	}
	if _, ok := src.spec.Parameter(op, "pageToken"); !ok {
		return fmt.Errorf("%s is not paginated", op.ID)
	}
	pages := restbind.Pages(ctx, func(ctx context.Context, token string) (dynamicPage, error) {
		p := maps.Clone(params)
		if token != "" {
			p["pageToken"] = token
		}
		res, err := svc.Call(ctx, c.Resource, c.Operation, p)
		return dynamicPage{res}, err
	})
	for page, err := range pages {
		if err != nil {
			return err
		}
		if c.DryRun {
			continue
		}
		if err := a.printJSON(page.value); err != nil {
			return err
		}
	}
	return nil
}

// parseParams turns name=value arguments into call parameters. A name given
// more than once becomes a list.
func parseParams(args []string) (restbind.Params, error) {
	params := restbind.Params{}
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("parameter %q: want name=value", arg)
		}
		switch prev := params[name].(type) {
		case nil:
			params[name] = value
		case string:
			params[name] = []string{prev, value}
		case []string:
			params[name] = append(prev, value)
		}
	}
	return params, nil
}

func (a *app) readBody(path string) (json.RawMessage, error) {
	var raw []byte
	var err error
	if path == "-" {
		raw, err = io.ReadAll(a.in)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if !json.Valid(raw) {
		return nil, fmt.Errorf("read body: %s is not valid JSON", path)
	}
	return json.RawMessage(raw), nil
}

// transport builds the HTTP transport for spec from the configuration.
func (a *app) transport(spec *restbind.ServiceSpec) *restbind.HTTPTransport {
	client := &http.Client{Timeout: a.cfg.Timeout}
	t := restbind.NewHTTPTransport(a.cfg.BaseURLFor(spec.Name, spec.BaseURL()), client).
		WithUserAgent(a.cfg.UserAgent+"/"+Version()).
		WithRetries(a.cfg.Retries, a.cfg.Backoff).
		WithLogger(a.logger)
	if a.cfg.Token != "" {
		t.WithBearerToken(a.cfg.Token)
	}
	return t
}

func (a *app) printJSON(v any) error {
	if v == nil {
		return nil
	}
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// dryRun returns an invoker that prints each request instead of sending it.
// Credentials are left out.
func dryRun(t *restbind.HTTPTransport, w io.Writer) restbind.Invoker {
	return restbind.InvokerFunc(func(ctx context.Context, op *restbind.OperationSpec, params restbind.Params, out any) error {
		req, err := t.NewRequest(ctx, op, params)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s %s\n", req.Method, req.URL)
		for _, k := range slices.Sorted(maps.Keys(req.Header)) {
			if k == "Authorization" {
				continue
			}
			for _, v := range req.Header[k] {
				fmt.Fprintf(w, "%s: %s\n", k, v)
			}
		}
		if req.Body != nil {
			body, err := io.ReadAll(req.Body)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "\n%s\n", body)
		}
		return nil
	})
}

// dynamicPage adapts a [restbind.Service.Call] result to [restbind.Pager].
type dynamicPage struct {
	value any
}

func (p dynamicPage) ContinuationToken() string {
	switch v := p.value.(type) {
	case restbind.Pager:
		return v.ContinuationToken()
	case map[string]any:
		token, _ := v["nextPageToken"].(string)
		return token
	}
	return ""
}
