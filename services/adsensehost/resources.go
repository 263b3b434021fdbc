package adsensehost

import (
	"context"
	"iter"

	"github.com/broady/restbind"
)

func newService(s *restbind.Service) *Service {
	return &Service{
		Service:             s,
		Accounts:            newAccountsService(s),
		Adclients:           newAdclientsService(s),
		Associationsessions: newAssociationsessionsService(s),
		Customchannels:      newCustomchannelsService(s),
		Reports:             newReportsService(s),
		Urlchannels:         newUrlchannelsService(s),
	}
}

// AccountsService calls the operations of the accounts resource.
type AccountsService struct {
	r *restbind.Resource

	Adclients *AccountsAdclientsService
	Adunits   *AccountsAdunitsService
	Reports   *AccountsReportsService
}

func newAccountsService(s *restbind.Service) *AccountsService {
	return &AccountsService{
		r:         s.MustResource("accounts"),
		Adclients: newAccountsAdclientsService(s),
		Adunits:   newAccountsAdunitsService(s),
		Reports:   newAccountsReportsService(s),
	}
}

// Get gets information about the selected associated AdSense account.
func (s *AccountsService) Get(ctx context.Context, accountID string) (*Account, error) {
	return restbind.Call[Account](ctx, s.r, "get", restbind.Params{"accountId": accountID}, nil)
}

// List lists hosted accounts associated with this AdSense account by ad
// client id.
func (s *AccountsService) List(ctx context.Context, filterAdClientID []string) (*Accounts, error) {
	return restbind.Call[Accounts](ctx, s.r, "list", restbind.Params{"filterAdClientId": filterAdClientID}, nil)
}

// AccountsAdclientsService calls the operations of the accounts.adclients
// resource.
type AccountsAdclientsService struct {
	r *restbind.Resource
}

func newAccountsAdclientsService(s *restbind.Service) *AccountsAdclientsService {
	return &AccountsAdclientsService{
		r: s.MustResource("accounts.adclients"),
	}
}

// Get gets information about one of the ad clients in the specified
// publisher's AdSense account.
func (s *AccountsAdclientsService) Get(ctx context.Context, accountID, adClientID string) (*AdClient, error) {
	return restbind.Call[AdClient](ctx, s.r, "get", restbind.Params{"accountId": accountID, "adClientId": adClientID}, nil)
}

// List lists all hosted ad clients in the specified hosted account.
func (s *AccountsAdclientsService) List(ctx context.Context, accountID string, opts *AccountsAdclientsListOptions) (*AdClients, error) {
	return restbind.Call[AdClients](ctx, s.r, "list", restbind.Params{"accountId": accountID}, opts)
}

// ListPages iterates over every page of List, starting at opts.PageToken.
func (s *AccountsAdclientsService) ListPages(ctx context.Context, accountID string, opts *AccountsAdclientsListOptions) iter.Seq2[*AdClients, error] {
	return restbind.Pages(ctx, func(ctx context.Context, token string) (*AdClients, error) {
		var o AccountsAdclientsListOptions
		if opts != nil {
			o = *opts
		}
		if token != "" {
			o.PageToken = token
		}
		return s.List(ctx, accountID, &o)
	})
}

// AccountsAdunitsService calls the operations of the accounts.adunits
// resource.
type AccountsAdunitsService struct {
	r *restbind.Resource
}

func newAccountsAdunitsService(s *restbind.Service) *AccountsAdunitsService {
	return &AccountsAdunitsService{
		r: s.MustResource("accounts.adunits"),
	}
}

// Delete deletes the specified ad unit from the specified publisher AdSense
// account.
func (s *AccountsAdunitsService) Delete(ctx context.Context, accountID, adClientID, adUnitID string) (*AdUnit, error) {
	return restbind.Call[AdUnit](ctx, s.r, "delete", restbind.Params{
		"accountId":  accountID,
		"adClientId": adClientID,
		"adUnitId":   adUnitID,
	}, nil)
}

// Get gets the specified host ad unit in this AdSense account.
func (s *AccountsAdunitsService) Get(ctx context.Context, accountID, adClientID, adUnitID string) (*AdUnit, error) {
	return restbind.Call[AdUnit](ctx, s.r, "get", restbind.Params{
		"accountId":  accountID,
		"adClientId": adClientID,
		"adUnitId":   adUnitID,
	}, nil)
}

// GetAdCode gets ad code for the specified ad unit, attaching the specified
// host custom channels.
func (s *AccountsAdunitsService) GetAdCode(ctx context.Context, accountID, adClientID, adUnitID string, opts *AccountsAdunitsGetAdCodeOptions) (*AdCode, error) {
	return restbind.Call[AdCode](ctx, s.r, "getAdCode", restbind.Params{
		"accountId":  accountID,
		"adClientId": adClientID,
		"adUnitId":   adUnitID,
	}, opts)
}

// Insert inserts the supplied ad unit into the specified publisher AdSense
// account.
func (s *AccountsAdunitsService) Insert(ctx context.Context, accountID, adClientID string, body *AdUnit) (*AdUnit, error) {
	return restbind.Call[AdUnit](ctx, s.r, "insert", restbind.Params{
		"accountId":       accountID,
		"adClientId":      adClientID,
		restbind.PostBody: body,
	}, nil)
}

// List lists all ad units in the specified publisher's AdSense account.
func (s *AccountsAdunitsService) List(ctx context.Context, accountID, adClientID string, opts *AccountsAdunitsListOptions) (*AdUnits, error) {
	return restbind.Call[AdUnits](ctx, s.r, "list", restbind.Params{"accountId": accountID, "adClientId": adClientID}, opts)
}

// ListPages iterates over every page of List, starting at opts.PageToken.
func (s *AccountsAdunitsService) ListPages(ctx context.Context, accountID, adClientID string, opts *AccountsAdunitsListOptions) iter.Seq2[*AdUnits, error] {
	return restbind.Pages(ctx, func(ctx context.Context, token string) (*AdUnits, error) {
		var o AccountsAdunitsListOptions
		if opts != nil {
			o = *opts
		}
		if token != "" {
			o.PageToken = token
		}
		return s.List(ctx, accountID, adClientID, &o)
	})
}

// Patch updates the supplied ad unit in the specified publisher AdSense
// account. This method supports patch semantics.
func (s *AccountsAdunitsService) Patch(ctx context.Context, accountID, adClientID, adUnitID string, body *AdUnit) (*AdUnit, error) {
	return restbind.Call[AdUnit](ctx, s.r, "patch", restbind.Params{
		"accountId":       accountID,
		"adClientId":      adClientID,
		"adUnitId":        adUnitID,
		restbind.PostBody: body,
	}, nil)
}

// Update updates the supplied ad unit in the specified publisher AdSense
// account.
func (s *AccountsAdunitsService) Update(ctx context.Context, accountID, adClientID string, body *AdUnit) (*AdUnit, error) {
	return restbind.Call[AdUnit](ctx, s.r, "update", restbind.Params{
		"accountId":       accountID,
		"adClientId":      adClientID,
		restbind.PostBody: body,
	}, nil)
}

// AccountsReportsService calls the operations of the accounts.reports
// resource.
type AccountsReportsService struct {
	r *restbind.Resource
}

func newAccountsReportsService(s *restbind.Service) *AccountsReportsService {
	return &AccountsReportsService{
		r: s.MustResource("accounts.reports"),
	}
}

// Generate generates an AdSense report based on the report request sent in
// the query parameters.
func (s *AccountsReportsService) Generate(ctx context.Context, accountID, startDate, endDate string, opts *AccountsReportsGenerateOptions) (*Report, error) {
	return restbind.Call[Report](ctx, s.r, "generate", restbind.Params{
		"accountId": accountID,
		"startDate": startDate,
		"endDate":   endDate,
	}, opts)
}

// AdclientsService calls the operations of the adclients resource.
type AdclientsService struct {
	r *restbind.Resource
}

func newAdclientsService(s *restbind.Service) *AdclientsService {
	return &AdclientsService{
		r: s.MustResource("adclients"),
	}
}

// Get gets information about one of the ad clients in the Host AdSense
// account.
func (s *AdclientsService) Get(ctx context.Context, adClientID string) (*AdClient, error) {
	return restbind.Call[AdClient](ctx, s.r, "get", restbind.Params{"adClientId": adClientID}, nil)
}

// List lists all host ad clients in this AdSense account.
func (s *AdclientsService) List(ctx context.Context, opts *AdclientsListOptions) (*AdClients, error) {
	return restbind.Call[AdClients](ctx, s.r, "list", nil, opts)
}

// ListPages iterates over every page of List, starting at opts.PageToken.
func (s *AdclientsService) ListPages(ctx context.Context, opts *AdclientsListOptions) iter.Seq2[*AdClients, error] {
	return restbind.Pages(ctx, func(ctx context.Context, token string) (*AdClients, error) {
		var o AdclientsListOptions
		if opts != nil {
			o = *opts
		}
		if token != "" {
			o.PageToken = token
		}
		return s.List(ctx, &o)
	})
}

// AssociationsessionsService calls the operations of the associationsessions
// resource.
type AssociationsessionsService struct {
	r *restbind.Resource
}

func newAssociationsessionsService(s *restbind.Service) *AssociationsessionsService {
	return &AssociationsessionsService{
		r: s.MustResource("associationsessions"),
	}
}

// Start creates an association session for initiating an association with an
// AdSense user.
func (s *AssociationsessionsService) Start(ctx context.Context, productCode []string, websiteURL string, opts *AssociationsessionsStartOptions) (*AssociationSession, error) {
	return restbind.Call[AssociationSession](ctx, s.r, "start", restbind.Params{"productCode": productCode, "websiteUrl": websiteURL}, opts)
}

// Verify verifies an association session after the association callback
// returns from AdSense signup.
func (s *AssociationsessionsService) Verify(ctx context.Context, token string) (*AssociationSession, error) {
	return restbind.Call[AssociationSession](ctx, s.r, "verify", restbind.Params{"token": token}, nil)
}

// CustomchannelsService calls the operations of the customchannels resource.
type CustomchannelsService struct {
	r *restbind.Resource
}

func newCustomchannelsService(s *restbind.Service) *CustomchannelsService {
	return &CustomchannelsService{
		r: s.MustResource("customchannels"),
	}
}

// Delete deletes a specific custom channel from the host AdSense account.
func (s *CustomchannelsService) Delete(ctx context.Context, adClientID, customChannelID string) (*CustomChannel, error) {
	return restbind.Call[CustomChannel](ctx, s.r, "delete", restbind.Params{"adClientId": adClientID, "customChannelId": customChannelID}, nil)
}

// Get gets a specific custom channel from the host AdSense account.
func (s *CustomchannelsService) Get(ctx context.Context, adClientID, customChannelID string) (*CustomChannel, error) {
	return restbind.Call[CustomChannel](ctx, s.r, "get", restbind.Params{"adClientId": adClientID, "customChannelId": customChannelID}, nil)
}

// Insert adds a new custom channel to the host AdSense account.
func (s *CustomchannelsService) Insert(ctx context.Context, adClientID string, body *CustomChannel) (*CustomChannel, error) {
	return restbind.Call[CustomChannel](ctx, s.r, "insert", restbind.Params{"adClientId": adClientID, restbind.PostBody: body}, nil)
}

// List lists all host custom channels in this AdSense account.
func (s *CustomchannelsService) List(ctx context.Context, adClientID string, opts *CustomchannelsListOptions) (*CustomChannels, error) {
	return restbind.Call[CustomChannels](ctx, s.r, "list", restbind.Params{"adClientId": adClientID}, opts)
}

// ListPages iterates over every page of List, starting at opts.PageToken.
func (s *CustomchannelsService) ListPages(ctx context.Context, adClientID string, opts *CustomchannelsListOptions) iter.Seq2[*CustomChannels, error] {
	return restbind.Pages(ctx, func(ctx context.Context, token string) (*CustomChannels, error) {
		var o CustomchannelsListOptions
		if opts != nil {
			o = *opts
		}
		if token != "" {
			o.PageToken = token
		}
		return s.List(ctx, adClientID, &o)
	})
}

// Patch updates a custom channel in the host AdSense account. This method
// supports patch semantics.
func (s *CustomchannelsService) Patch(ctx context.Context, adClientID, customChannelID string, body *CustomChannel) (*CustomChannel, error) {
	return restbind.Call[CustomChannel](ctx, s.r, "patch", restbind.Params{
		"adClientId":      adClientID,
		"customChannelId": customChannelID,
		restbind.PostBody: body,
	}, nil)
}

// Update updates a custom channel in the host AdSense account.
func (s *CustomchannelsService) Update(ctx context.Context, adClientID string, body *CustomChannel) (*CustomChannel, error) {
	return restbind.Call[CustomChannel](ctx, s.r, "update", restbind.Params{"adClientId": adClientID, restbind.PostBody: body}, nil)
}

// ReportsService calls the operations of the reports resource.
type ReportsService struct {
	r *restbind.Resource
}

func newReportsService(s *restbind.Service) *ReportsService {
	return &ReportsService{
		r: s.MustResource("reports"),
	}
}

// Generate generates an AdSense report based on the report request sent in
// the query parameters.
func (s *ReportsService) Generate(ctx context.Context, startDate, endDate string, opts *ReportsGenerateOptions) (*Report, error) {
	return restbind.Call[Report](ctx, s.r, "generate", restbind.Params{"startDate": startDate, "endDate": endDate}, opts)
}

// UrlchannelsService calls the operations of the urlchannels resource.
type UrlchannelsService struct {
	r *restbind.Resource
}

func newUrlchannelsService(s *restbind.Service) *UrlchannelsService {
	return &UrlchannelsService{
		r: s.MustResource("urlchannels"),
	}
}

// Delete deletes a URL channel from the host AdSense account.
func (s *UrlchannelsService) Delete(ctx context.Context, adClientID, urlChannelID string) (*UrlChannel, error) {
	return restbind.Call[UrlChannel](ctx, s.r, "delete", restbind.Params{"adClientId": adClientID, "urlChannelId": urlChannelID}, nil)
}

// Insert adds a new URL channel to the host AdSense account.
func (s *UrlchannelsService) Insert(ctx context.Context, adClientID string, body *UrlChannel) (*UrlChannel, error) {
	return restbind.Call[UrlChannel](ctx, s.r, "insert", restbind.Params{"adClientId": adClientID, restbind.PostBody: body}, nil)
}

// List lists all host URL channels in the host AdSense account.
func (s *UrlchannelsService) List(ctx context.Context, adClientID string, opts *UrlchannelsListOptions) (*UrlChannels, error) {
	return restbind.Call[UrlChannels](ctx, s.r, "list", restbind.Params{"adClientId": adClientID}, opts)
}

// ListPages iterates over every page of List, starting at opts.PageToken.
func (s *UrlchannelsService) ListPages(ctx context.Context, adClientID string, opts *UrlchannelsListOptions) iter.Seq2[*UrlChannels, error] {
	return restbind.Pages(ctx, func(ctx context.Context, token string) (*UrlChannels, error) {
		var o UrlchannelsListOptions
		if opts != nil {
			o = *opts
		}
		if token != "" {
			o.PageToken = token
		}
		return s.List(ctx, adClientID, &o)
	})
}

// AccountsAdclientsListOptions holds the optional parameters of
// AccountsAdclientsService.List.
type AccountsAdclientsListOptions struct {
	// A continuation token, used to page through ad clients.
	PageToken string `schema:"pageToken,omitempty"`

	// The maximum number of ad clients to include in the response, used for
	// paging.
	MaxResults *int64 `schema:"maxResults,omitempty"`
}

// AccountsAdunitsGetAdCodeOptions holds the optional parameters of
// AccountsAdunitsService.GetAdCode.
type AccountsAdunitsGetAdCodeOptions struct {
	// Host custom channel to attach to the ad code.
	HostCustomChannelID []string `schema:"hostCustomChannelId,omitempty"`
}

// AccountsAdunitsListOptions holds the optional parameters of
// AccountsAdunitsService.List.
type AccountsAdunitsListOptions struct {
	// Whether to include inactive ad units.
	IncludeInactive *bool `schema:"includeInactive,omitempty"`

	// A continuation token, used to page through ad units.
	PageToken string `schema:"pageToken,omitempty"`

	// The maximum number of ad units to include in the response, used for
	// paging.
	MaxResults *int64 `schema:"maxResults,omitempty"`
}

// AccountsReportsGenerateOptions holds the optional parameters of
// AccountsReportsService.Generate.
type AccountsReportsGenerateOptions struct {
	// The name of a dimension or metric to sort the resulting report on,
	// optionally prefixed with "+" to sort ascending or "-" to sort descending.
	Sort []string `schema:"sort,omitempty"`

	// Optional locale to use for translating report output to a local language.
	Locale string `schema:"locale,omitempty"`

	// Numeric columns to include in the report.
	Metric []string `schema:"metric,omitempty"`

	// The maximum number of rows of report data to return.
	MaxResults *int64 `schema:"maxResults,omitempty"`

	// Filters to be run on the report.
	Filter []string `schema:"filter,omitempty"`

	// Index of the first row of report data to return.
	StartIndex *int64 `schema:"startIndex,omitempty"`

	// Dimensions to base the report on.
	Dimension []string `schema:"dimension,omitempty"`
}

// AdclientsListOptions holds the optional parameters of
// AdclientsService.List.
type AdclientsListOptions struct {
	// A continuation token, used to page through ad clients.
	PageToken string `schema:"pageToken,omitempty"`

	// The maximum number of ad clients to include in the response, used for
	// paging.
	MaxResults *int64 `schema:"maxResults,omitempty"`
}

// AssociationsessionsStartOptions holds the optional parameters of
// AssociationsessionsService.Start.
type AssociationsessionsStartOptions struct {
	// The locale of the user's hosted website.
	WebsiteLocale string `schema:"websiteLocale,omitempty"`

	// The preferred locale of the user.
	UserLocale string `schema:"userLocale,omitempty"`
}

// CustomchannelsListOptions holds the optional parameters of
// CustomchannelsService.List.
type CustomchannelsListOptions struct {
	// A continuation token, used to page through custom channels.
	PageToken string `schema:"pageToken,omitempty"`

	// The maximum number of custom channels to include in the response, used
	// for paging.
	MaxResults *int64 `schema:"maxResults,omitempty"`
}

// ReportsGenerateOptions holds the optional parameters of
// ReportsService.Generate.
type ReportsGenerateOptions struct {
	// The name of a dimension or metric to sort the resulting report on,
	// optionally prefixed with "+" to sort ascending or "-" to sort descending.
	Sort []string `schema:"sort,omitempty"`

	// Optional locale to use for translating report output to a local language.
	Locale string `schema:"locale,omitempty"`

	// Numeric columns to include in the report.
	Metric []string `schema:"metric,omitempty"`

	// The maximum number of rows of report data to return.
	MaxResults *int64 `schema:"maxResults,omitempty"`

	// Filters to be run on the report.
	Filter []string `schema:"filter,omitempty"`

	// Index of the first row of report data to return.
	StartIndex *int64 `schema:"startIndex,omitempty"`

	// Dimensions to base the report on.
	Dimension []string `schema:"dimension,omitempty"`
}

// UrlchannelsListOptions holds the optional parameters of
// UrlchannelsService.List.
type UrlchannelsListOptions struct {
	// A continuation token, used to page through URL channels.
	PageToken string `schema:"pageToken,omitempty"`

	// The maximum number of URL channels to include in the response, used for
	// paging.
	MaxResults *int64 `schema:"maxResults,omitempty"`
}
