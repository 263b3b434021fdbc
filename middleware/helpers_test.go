package middleware

import (
	"context"
	"sync"

	"github.com/broady/restbind"
)

func newNotesSpec() *restbind.ServiceSpec {
	return &restbind.ServiceSpec{
		Name:        "notes",
		RootURL:     "https://notes.example.com/",
		ServicePath: "v1/",
		Parameters: []*restbind.ParameterSpec{
			{Name: "key", Location: restbind.LocationQuery, Type: restbind.TypeString},
			{Name: "quotaUser", Location: restbind.LocationQuery, Type: restbind.TypeString},
			{Name: "prettyPrint", Location: restbind.LocationQuery, Type: restbind.TypeBoolean},
		},
		Resources: []*restbind.ResourceSpec{{
			Name: "notes",
			Operations: []*restbind.OperationSpec{
				{
					Name:       "get",
					ID:         "notes.notes.get",
					Path:       "notes/{id}",
					HTTPMethod: "GET",
					Parameters: []*restbind.ParameterSpec{
						{Name: "id", Location: restbind.LocationPath, Type: restbind.TypeString, Required: true},
						{Name: "label", Location: restbind.LocationQuery, Type: restbind.TypeString, Repeated: true},
					},
				},
			},
		}},
	}
}

type paramsRecorder struct {
	mu    sync.Mutex
	calls []restbind.Params
	err   error
}

func (r *paramsRecorder) Invoke(ctx context.Context, op *restbind.OperationSpec, params restbind.Params, out any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, params)
	return r.err
}

func (r *paramsRecorder) last() restbind.Params {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.calls) == 0 {
		return nil
	}
	return r.calls[len(r.calls)-1]
}
