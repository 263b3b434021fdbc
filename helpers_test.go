package restbind

import (
	"context"
	"sync"

	"github.com/broady/restbind/model"
)

// Widget is the model used by the test service.
type Widget struct {
	ID     string   `json:"id,omitempty"`
	Name   string   `json:"name,omitempty" validate:"required"`
	Color  string   `json:"color,omitempty" validate:"omitempty,oneof=red green blue"`
	Tags   []string `json:"tags,omitempty"`
	Weight int64    `json:"weight,omitempty,string"`
}

// WidgetList is a page of widgets.
type WidgetList struct {
	Items         []*Widget `json:"items,omitempty"`
	NextPageToken string    `json:"nextPageToken,omitempty"`
}

func (l *WidgetList) ContinuationToken() string {
	if l == nil {
		return ""
	}
	return l.NextPageToken
}

func (*WidgetList) CollectionKey() string { return "items" }

// newWidgetSpec returns a small service: widgets.{get,list,insert,delete,move}
// and widgets.parts.get with a reserved placeholder.
func newWidgetSpec() *ServiceSpec {
	return &ServiceSpec{
		Name:        "widgets",
		Version:     "v1",
		RootURL:     "https://widgets.example.com/",
		ServicePath: "widgets/v1/",
		Parameters: []*ParameterSpec{
			{Name: "fields", Location: LocationQuery, Type: TypeString},
			{Name: "prettyPrint", Location: LocationQuery, Type: TypeBoolean},
		},
		Resources: []*ResourceSpec{
			{
				Name: "widgets",
				Operations: []*OperationSpec{
					{
						Name:         "get",
						ID:           "widgets.widgets.get",
						Path:         "widgets/{id}",
						HTTPMethod:   "GET",
						ResponseType: "Widget",
						Parameters: []*ParameterSpec{
							{Name: "id", Location: LocationPath, Type: TypeString, Required: true},
							{Name: "projection", Location: LocationQuery, Type: TypeString, Enum: []string{"full", "noAcl"}},
						},
					},
					{
						Name:         "list",
						ID:           "widgets.widgets.list",
						Path:         "widgets",
						HTTPMethod:   "GET",
						ResponseType: "WidgetList",
						Parameters: []*ParameterSpec{
							{Name: "project", Location: LocationQuery, Type: TypeString, Required: true},
							{Name: "maxResults", Location: LocationQuery, Type: TypeInteger},
							{Name: "pageToken", Location: LocationQuery, Type: TypeString},
							{Name: "sort", Location: LocationQuery, Type: TypeString, Repeated: true},
							{Name: "withParts", Location: LocationQuery, Type: TypeBoolean},
						},
					},
					{
						Name:         "insert",
						ID:           "widgets.widgets.insert",
						Path:         "widgets",
						HTTPMethod:   "POST",
						RequestType:  "Widget",
						ResponseType: "Widget",
						Parameters: []*ParameterSpec{
							{Name: "project", Location: LocationQuery, Type: TypeString, Required: true},
						},
					},
					{
						Name:       "delete",
						ID:         "widgets.widgets.delete",
						Path:       "widgets/{id}",
						HTTPMethod: "DELETE",
						Parameters: []*ParameterSpec{
							{Name: "id", Location: LocationPath, Type: TypeString, Required: true},
						},
					},
				},
			},
			{
				Name: "widgets.parts",
				Operations: []*OperationSpec{
					{
						Name:         "get",
						ID:           "widgets.widgets.parts.get",
						Path:         "widgets/{id}/parts/{+part}",
						HTTPMethod:   "GET",
						ResponseType: "Widget",
						Parameters: []*ParameterSpec{
							{Name: "id", Location: LocationPath, Type: TypeString, Required: true},
							{Name: "part", Location: LocationPath, Type: TypeString, Required: true},
						},
					},
				},
			},
		},
		Models: map[string]*model.Schema{
			"Widget": {
				Name: "Widget",
				Properties: []model.Property{
					{WireName: "color", Type: "string"},
					{WireName: "id", Type: "string"},
					{WireName: "name", Type: "string"},
					{WireName: "tags", Type: "string", Repeated: true},
					{WireName: "weight", Type: "string", Format: "int64"},
				},
			},
			"WidgetList": {
				Name: "WidgetList",
				Properties: []model.Property{
					{WireName: "items", Type: "object", Ref: "Widget", Repeated: true},
					{WireName: "nextPageToken", Type: "string"},
				},
				CollectionKey: "items",
			},
		},
	}
}

func newWidgetModels() *model.Registry {
	return model.NewRegistry().
		Add("Widget", Widget{}).
		Add("WidgetList", WidgetList{})
}

// recordedCall is one invocation seen by a recordingInvoker.
type recordedCall struct {
	Op     *OperationSpec
	Params Params
	Info   *CallInfo
}

// recordingInvoker records every call and answers with respond.
type recordingInvoker struct {
	mu      sync.Mutex
	calls   []recordedCall
	respond func(op *OperationSpec, params Params, out any) error
}

func (r *recordingInvoker) Invoke(ctx context.Context, op *OperationSpec, params Params, out any) error {
	info, _ := CallFromContext(ctx)
	r.mu.Lock()
	r.calls = append(r.calls, recordedCall{Op: op, Params: params, Info: info})
	r.mu.Unlock()
	if r.respond != nil {
		return r.respond(op, params, out)
	}
	return nil
}

func (r *recordingInvoker) Calls() []recordedCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]recordedCall(nil), r.calls...)
}

// newWidgetService returns a bound widget service and its invoker.
func newWidgetService(respond func(op *OperationSpec, params Params, out any) error) (*Service, *recordingInvoker) {
	inv := &recordingInvoker{respond: respond}
	svc := NewService(newWidgetSpec(), inv).WithModels(newWidgetModels())
	return svc, inv
}
