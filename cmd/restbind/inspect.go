package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"text/tabwriter"

	"golang.org/x/sync/errgroup"

	"github.com/broady/restbind"
	"github.com/broady/restbind/discovery"
	"github.com/broady/restbind/model"
)

type CheckCmd struct {
	Docs []string `arg:"" optional:"" sep:"none" help:"Discovery or OpenAPI documents. Without arguments the built-in services are checked."`
}

func (c *CheckCmd) Run(a *app) error {
	ctx := context.Background()
	var failed int

	report := func(label string, spec *restbind.ServiceSpec, err error) {
		if err == nil {
			err = spec.Validate()
		}
		if err != nil {
			failed++
			fmt.Fprintf(a.out, "FAIL %s: %v\n", label, err)
			return
		}
		var ops int
		for _, r := range spec.Resources {
			ops += len(r.Operations)
		}
		fmt.Fprintf(a.out, "ok   %s: %s %s, %d resources, %d operations, %d models\n",
			label, spec.Name, spec.Version, len(spec.Resources), ops, len(spec.Models))
	}

	type result struct {
		label string
		spec  *restbind.ServiceSpec
		err   error
	}
	var results []result
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	if len(c.Docs) == 0 {
		names := builtinNames()
		results = make([]result, len(names))
		for i, name := range names {
			g.Go(func() error {
				b := builtins[name]
				spec, err := discovery.Parse(b.document())
				if err == nil {
					err = conformModels(spec, b.models())
				}
				results[i] = result{name, spec, err}
				return nil
			})
		}
	} else {
		results = make([]result, len(c.Docs))
		for i, path := range c.Docs {
			g.Go(func() error {
				spec, err := loadDocument(ctx, path)
				results[i] = result{path, spec, err}
				return nil
			})
		}
	}
	_ = g.Wait()

	for _, r := range results {
		report(r.label, r.spec, r.err)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed", failed, len(results))
	}
	return nil
}

// conformModels checks every registered Go model against its schema.
func conformModels(spec *restbind.ServiceSpec, models *model.Registry) error {
	var errs []error
	for _, name := range models.Names() {
		schema, ok := spec.Models[name]
		if !ok {
			errs = append(errs, fmt.Errorf("model %s has no schema", name))
			continue
		}
		typ, err := models.Describe(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := model.Conform(typ, schema); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

type OpsCmd struct {
	Docs    []string `arg:"" optional:"" sep:"none" help:"Discovery or OpenAPI documents. Without arguments the built-in services are listed."`
	Service string   `help:"Only list operations of this service." short:"s"`
	JSON    bool     `help:"Print JSON instead of a table." name:"json"`
}

func (c *OpsCmd) Run(a *app) error {
	ctx := context.Background()

	var specs []*restbind.ServiceSpec
	if len(c.Docs) == 0 {
		for _, name := range builtinNames() {
			src, err := builtinSource(name)
			if err != nil {
				return err
			}
			specs = append(specs, src.spec)
		}
	}
	for _, path := range c.Docs {
		src, err := documentSource(ctx, path)
		if err != nil {
			return err
		}
		specs = append(specs, src.spec)
	}

	reg, err := restbind.NewRegistry(specs...)
	if err != nil {
		return err
	}
	var ops []restbind.ExportedOperation
	for _, op := range reg.ExportOperations() {
		if c.Service == "" || op.Service == c.Service {
			ops = append(ops, op)
		}
	}
	if c.Service != "" && len(ops) == 0 {
		return fmt.Errorf("no operations for service %q", c.Service)
	}

	if c.JSON {
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(ops)
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tMETHOD\tPATH\tREQUIRED")
	for _, op := range ops {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", op.ID, op.HTTPMethod, op.Path, joinOrDash(op.Required))
	}
	return tw.Flush()
}

func joinOrDash(values []string) string {
	if len(values) == 0 {
		return "-"
	}
	return strings.Join(values, ",")
}

type SchemaCmd struct {
	Service string `arg:"" help:"Service name."`
	Model   string `arg:"" help:"Model (schema) name."`
	Doc     string `help:"Read the service from this document instead of the built-in services." type:"existingfile"`
	Go      bool   `help:"Reflect the schema from the Go model type instead of the API description." name:"go"`
}

func (c *SchemaCmd) Run(a *app) error {
	src, err := resolve(context.Background(), c.Doc, c.Service)
	if err != nil {
		return err
	}

	var doc any
	if c.Go {
		if src.models == nil {
			return fmt.Errorf("--go needs a built-in service")
		}
		v, ok := src.models.New(c.Model)
		if !ok {
			return fmt.Errorf("service %s has no Go model %q", src.spec.Name, c.Model)
		}
		doc = model.JSONSchema(v)
	} else {
		s, ok := src.spec.Models[c.Model]
		if !ok {
			return fmt.Errorf("service %s has no model %q", src.spec.Name, c.Model)
		}
		doc = s.JSONSchema(src.spec.Models)
	}

	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
