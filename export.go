package restbind

import (
	"slices"
	"strings"
)

// ExportedOperation is a flat description of one declared operation, used for
// listings and tooling.
type ExportedOperation struct {
	Service      string   `json:"service"`
	Resource     string   `json:"resource"`
	Operation    string   `json:"operation"`
	ID           string   `json:"id"`
	HTTPMethod   string   `json:"httpMethod"`
	Path         string   `json:"path"`
	Required     []string `json:"required,omitempty"`
	Optional     []string `json:"optional,omitempty"`
	RequestType  string   `json:"requestType,omitempty"`
	ResponseType string   `json:"responseType,omitempty"`
}

// ExportOperations returns every operation of every service, sorted by
// service, resource and operation name.
func (r *Registry) ExportOperations() []ExportedOperation {
	var out []ExportedOperation
	for _, s := range r.Services() {
		out = append(out, s.ExportOperations()...)
	}
	return out
}

// ExportOperations returns the operations of s sorted by resource and
// operation name.
func (s *ServiceSpec) ExportOperations() []ExportedOperation {
	var out []ExportedOperation
	for _, res := range s.Resources {
		for _, op := range res.Operations {
			e := ExportedOperation{
				Service:      s.Name,
				Resource:     res.Name,
				Operation:    op.Name,
				ID:           op.ID,
				HTTPMethod:   op.HTTPMethod,
				Path:         op.Path,
				RequestType:  op.RequestType,
				ResponseType: op.ResponseType,
			}
			for _, p := range op.Parameters {
				if p.Required {
					e.Required = append(e.Required, p.Name)
				} else {
					e.Optional = append(e.Optional, p.Name)
				}
			}
			out = append(out, e)
		}
	}
	slices.SortFunc(out, func(a, b ExportedOperation) int {
		if c := strings.Compare(a.Resource, b.Resource); c != 0 {
			return c
		}
		return strings.Compare(a.Operation, b.Operation)
	})
	return out
}
