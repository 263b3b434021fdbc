// Package storage binds the Cloud Storage JSON API (v1): buckets, objects,
// their access controls and object change notifications.
//
// Operations are declared by the embedded Discovery document. This package adds
// the Go models and one typed method per operation:
//
//	svc, err := storage.NewHTTP(client)
//	if err != nil {
//	    return err
//	}
//	for page, err := range svc.Objects.ListPages(ctx, "photos", &storage.ObjectsListOptions{Prefix: "2024/"}) {
//	    if err != nil {
//	        return err
//	    }
//	    for _, obj := range page.Items {
//	        fmt.Println(obj.Name, obj.Size)
//	    }
//	}
//
// Optional scalars are pointers, so a zero value can still be sent. An object is
// created only if it does not exist yet with:
//
//	obj, err := svc.Objects.Insert(ctx, "photos", &storage.Object{Name: "a.jpg"},
//	    &storage.ObjectsInsertOptions{IfGenerationMatch: restbind.Ptr[int64](0)})
//
// Media upload and download are not supported; Objects.Insert stores metadata
// only.
package storage

import (
	_ "embed"
	"net/http"
	"sync"

	"github.com/broady/restbind"
	"github.com/broady/restbind/discovery"
	"github.com/broady/restbind/model"
)

// OAuth 2.0 scopes used by this API.
const (
	// View and manage your data across Google Cloud Platform services.
	CloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

	// View your data across Google Cloud Platform services.
	CloudPlatformReadOnlyScope = "https://www.googleapis.com/auth/cloud-platform.read-only"

	// Manage your data and permissions in Google Cloud Storage.
	DevstorageFullControlScope = "https://www.googleapis.com/auth/devstorage.full_control"

	// View your data in Google Cloud Storage.
	DevstorageReadOnlyScope = "https://www.googleapis.com/auth/devstorage.read_only"

	// Manage your data in Google Cloud Storage.
	DevstorageReadWriteScope = "https://www.googleapis.com/auth/devstorage.read_write"
)

//go:embed storage-api.json
var document []byte

var loadSpec = sync.OnceValues(func() (*restbind.ServiceSpec, error) {
	return discovery.Parse(document)
})

var loadValidator = sync.OnceValues(func() (*model.Validator, error) {
	s, err := loadSpec()
	if err != nil {
		return nil, err
	}
	return model.NewValidator(s.Models)
})

// Document returns the embedded Discovery document.
func Document() []byte {
	return append([]byte(nil), document...)
}

// Spec returns the service spec parsed from the embedded Discovery document.
// The document is parsed once; the result is shared and must not be modified.
func Spec() (*restbind.ServiceSpec, error) {
	return loadSpec()
}

// Models returns the Go types of the API's models, keyed by schema name.
func Models() *model.Registry {
	return models()
}

// Service is a typed client for the Cloud Storage JSON API.
type Service struct {
	*restbind.Service

	BucketAccessControls        *BucketAccessControlsService
	Buckets                     *BucketsService
	Channels                    *ChannelsService
	DefaultObjectAccessControls *DefaultObjectAccessControlsService
	ObjectAccessControls        *ObjectAccessControlsService
	Objects                     *ObjectsService
}

// New returns a client that sends calls through invoker. Request bodies are
// checked against the registered models and, for dynamic calls, against the
// document's schemas.
func New(invoker restbind.Invoker) (*Service, error) {
	s, err := loadSpec()
	if err != nil {
		return nil, err
	}
	v, err := loadValidator()
	if err != nil {
		return nil, err
	}
	return newService(restbind.NewService(s, invoker).
		WithModels(models()).
		WithBodyValidator(v)), nil
}

// NewHTTP returns a client for the production endpoint. client is expected to
// add credentials; nil means http.DefaultClient.
func NewHTTP(client *http.Client) (*Service, error) {
	s, err := loadSpec()
	if err != nil {
		return nil, err
	}
	return New(restbind.NewHTTPTransport(s.BaseURL(), client))
}
