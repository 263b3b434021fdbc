// Package adsensehost binds the AdSense Host API (v4.1).
package adsensehost

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
	// View and manage your AdSense host data and associated accounts.
	AdsensehostScope = "https://www.googleapis.com/auth/adsensehost"
)

//go:embed adsensehost-api.json
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

// Service is a typed client for the AdSense Host API.
type Service struct {
	*restbind.Service

	Accounts            *AccountsService
	Adclients           *AdclientsService
	Associationsessions *AssociationsessionsService
	Customchannels      *CustomchannelsService
	Reports             *ReportsService
	Urlchannels         *UrlchannelsService
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
