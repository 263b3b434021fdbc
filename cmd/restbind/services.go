package main

import (
	"context"
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/broady/restbind"
	"github.com/broady/restbind/discovery"
	"github.com/broady/restbind/model"
	"github.com/broady/restbind/openapi"
	"github.com/broady/restbind/services/adsense"
	"github.com/broady/restbind/services/adsensehost"
	"github.com/broady/restbind/services/sqladmin"
	"github.com/broady/restbind/services/storage"
	"github.com/broady/restbind/services/tagmanager"
)

// source is a service the CLI can describe and call.
type source struct {
	spec *restbind.ServiceSpec

	// models is nil for services loaded from a document.
	models *model.Registry

	newService func(restbind.Invoker) (*restbind.Service, error)
}

type builtin struct {
	spec     func() (*restbind.ServiceSpec, error)
	models   func() *model.Registry
	document func() []byte
	service  func(restbind.Invoker) (*restbind.Service, error)
}

var builtins = map[string]builtin{
	"adsense": {
		spec: adsense.Spec, models: adsense.Models, document: adsense.Document,
		service: func(inv restbind.Invoker) (*restbind.Service, error) {
			s, err := adsense.New(inv)
			if err != nil {
				return nil, err
			}
			return s.Service, nil
		},
	},
	"adsensehost": {
		spec: adsensehost.Spec, models: adsensehost.Models, document: adsensehost.Document,
		service: func(inv restbind.Invoker) (*restbind.Service, error) {
			s, err := adsensehost.New(inv)
			if err != nil {
				return nil, err
			}
			return s.Service, nil
		},
	},
	"sqladmin": {
		spec: sqladmin.Spec, models: sqladmin.Models, document: sqladmin.Document,
		service: func(inv restbind.Invoker) (*restbind.Service, error) {
			s, err := sqladmin.New(inv)
			if err != nil {
				return nil, err
			}
			return s.Service, nil
		},
	},
	"storage": {
		spec: storage.Spec, models: storage.Models, document: storage.Document,
		service: func(inv restbind.Invoker) (*restbind.Service, error) {
			s, err := storage.New(inv)
			if err != nil {
				return nil, err
			}
			return s.Service, nil
		},
	},
	"tagmanager": {
		spec: tagmanager.Spec, models: tagmanager.Models, document: tagmanager.Document,
		service: func(inv restbind.Invoker) (*restbind.Service, error) {
			s, err := tagmanager.New(inv)
			if err != nil {
				return nil, err
			}
			return s.Service, nil
		},
	},
}

func builtinNames() []string {
	return slices.Sorted(maps.Keys(builtins))
}

func builtinSource(name string) (*source, error) {
	b, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("unknown service %q (built in: %v; use --doc for others)", name, builtinNames())
	}
	spec, err := b.spec()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &source{spec: spec, models: b.models(), newService: b.service}, nil
}

// loadDocument parses a Discovery document or an OpenAPI 2/3 document.
func loadDocument(ctx context.Context, path string) (*restbind.ServiceSpec, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var spec *restbind.ServiceSpec
	if discovery.LooksLikeDiscovery(raw) {
		spec, err = discovery.Parse(raw)
	} else {
		spec, err = openapi.Parse(ctx, raw)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return spec, nil
}

func documentSource(ctx context.Context, path string) (*source, error) {
	spec, err := loadDocument(ctx, path)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &source{
		spec: spec,
		newService: func(inv restbind.Invoker) (*restbind.Service, error) {
			v, err := model.NewValidator(spec.Models)
			if err != nil {
				return nil, err
			}
			return restbind.NewService(spec, inv).WithBodyValidator(v), nil
		},
	}, nil
}

// resolve returns the service named by a command: the document at doc when it
// is set, otherwise the built-in service called name.
func resolve(ctx context.Context, doc, name string) (*source, error) {
	if doc == "" {
		return builtinSource(name)
	}
	src, err := documentSource(ctx, doc)
	if err != nil {
		return nil, err
	}
	if name != "" && name != src.spec.Name {
		return nil, fmt.Errorf("%s describes service %q, not %q", doc, src.spec.Name, name)
	}
	return src, nil
}
