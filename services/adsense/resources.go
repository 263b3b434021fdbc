package adsense

import (
	"context"
	"iter"

	"github.com/broady/restbind"
)

func newService(s *restbind.Service) *Service {
	return &Service{
		Service:        s,
		Accounts:       newAccountsService(s),
		Adclients:      newAdclientsService(s),
		Adunits:        newAdunitsService(s),
		Alerts:         newAlertsService(s),
		Customchannels: newCustomchannelsService(s),
		Metadata:       newMetadataService(s),
		Payments:       newPaymentsService(s),
		Reports:        newReportsService(s),
		Savedadstyles:  newSavedadstylesService(s),
		Urlchannels:    newUrlchannelsService(s),
	}
}

// AccountsService calls the operations of the accounts resource.
type AccountsService struct {
	r *restbind.Resource

	Adclients      *AccountsAdclientsService
	Adunits        *AccountsAdunitsService
	Alerts         *AccountsAlertsService
	Customchannels *AccountsCustomchannelsService
	Payments       *AccountsPaymentsService
	Reports        *AccountsReportsService
	Savedadstyles  *AccountsSavedadstylesService
	Urlchannels    *AccountsUrlchannelsService
}

func newAccountsService(s *restbind.Service) *AccountsService {
	return &AccountsService{
		r:              s.MustResource("accounts"),
		Adclients:      newAccountsAdclientsService(s),
		Adunits:        newAccountsAdunitsService(s),
		Alerts:         newAccountsAlertsService(s),
		Customchannels: newAccountsCustomchannelsService(s),
		Payments:       newAccountsPaymentsService(s),
		Reports:        newAccountsReportsService(s),
		Savedadstyles:  newAccountsSavedadstylesService(s),
		Urlchannels:    newAccountsUrlchannelsService(s),
	}
}

// Get gets information about the selected AdSense account.
func (s *AccountsService) Get(ctx context.Context, accountID string, opts *AccountsGetOptions) (*Account, error) {
	return restbind.Call[Account](ctx, s.r, "get", restbind.Params{"accountId": accountID}, opts)
}

// List lists all accounts available to this AdSense account.
func (s *AccountsService) List(ctx context.Context, opts *AccountsListOptions) (*Accounts, error) {
	return restbind.Call[Accounts](ctx, s.r, "list", nil, opts)
}

// ListPages iterates over every page of List, starting at opts.PageToken.
func (s *AccountsService) ListPages(ctx context.Context, opts *AccountsListOptions) iter.Seq2[*Accounts, error] {
	return restbind.Pages(ctx, func(ctx context.Context, token string) (*Accounts, error) {
		var o AccountsListOptions
		if opts != nil {
			o = *opts
		}
		if token != "" {
			o.PageToken = token
		}
		return s.List(ctx, &o)
	})
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

// List lists all ad clients in the specified account.
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

	Customchannels *AccountsAdunitsCustomchannelsService
}

func newAccountsAdunitsService(s *restbind.Service) *AccountsAdunitsService {
	return &AccountsAdunitsService{
		r:              s.MustResource("accounts.adunits"),
		Customchannels: newAccountsAdunitsCustomchannelsService(s),
	}
}

// Get gets the specified ad unit in the specified ad client for the
// specified account.
func (s *AccountsAdunitsService) Get(ctx context.Context, accountID, adClientID, adUnitID string) (*AdUnit, error) {
	return restbind.Call[AdUnit](ctx, s.r, "get", restbind.Params{
		"accountId":  accountID,
		"adClientId": adClientID,
		"adUnitId":   adUnitID,
	}, nil)
}

// GetAdCode gets ad code for the specified ad unit.
func (s *AccountsAdunitsService) GetAdCode(ctx context.Context, accountID, adClientID, adUnitID string) (*AdCode, error) {
	return restbind.Call[AdCode](ctx, s.r, "getAdCode", restbind.Params{
		"accountId":  accountID,
		"adClientId": adClientID,
		"adUnitId":   adUnitID,
	}, nil)
}

// List lists all ad units in the specified ad client for the specified
// account.
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

// AccountsAdunitsCustomchannelsService calls the operations of the
// accounts.adunits.customchannels resource.
type AccountsAdunitsCustomchannelsService struct {
	r *restbind.Resource
}

func newAccountsAdunitsCustomchannelsService(s *restbind.Service) *AccountsAdunitsCustomchannelsService {
	return &AccountsAdunitsCustomchannelsService{
		r: s.MustResource("accounts.adunits.customchannels"),
	}
}

// List lists all custom channels which the specified ad unit belongs to.
func (s *AccountsAdunitsCustomchannelsService) List(ctx context.Context, accountID, adClientID, adUnitID string, opts *AccountsAdunitsCustomchannelsListOptions) (*CustomChannels, error) {
	return restbind.Call[CustomChannels](ctx, s.r, "list", restbind.Params{
		"accountId":  accountID,
		"adClientId": adClientID,
		"adUnitId":   adUnitID,
	}, opts)
}

// ListPages iterates over every page of List, starting at opts.PageToken.
func (s *AccountsAdunitsCustomchannelsService) ListPages(ctx context.Context, accountID, adClientID, adUnitID string, opts *AccountsAdunitsCustomchannelsListOptions) iter.Seq2[*CustomChannels, error] {
	return restbind.Pages(ctx, func(ctx context.Context, token string) (*CustomChannels, error) {
		var o AccountsAdunitsCustomchannelsListOptions
		if opts != nil {
			o = *opts
		}
		if token != "" {
			o.PageToken = token
		}
		return s.List(ctx, accountID, adClientID, adUnitID, &o)
	})
}

// AccountsAlertsService calls the operations of the accounts.alerts
// resource.
type AccountsAlertsService struct {
	r *restbind.Resource
}

func newAccountsAlertsService(s *restbind.Service) *AccountsAlertsService {
	return &AccountsAlertsService{
		r: s.MustResource("accounts.alerts"),
	}
}

// Delete dismisses (delete) the specified alert from the specified publisher
// AdSense account.
func (s *AccountsAlertsService) Delete(ctx context.Context, accountID, alertID string) error {
	return restbind.Exec(ctx, s.r, "delete", restbind.Params{"accountId": accountID, "alertId": alertID}, nil)
}

// List lists the alerts for the specified AdSense account.
func (s *AccountsAlertsService) List(ctx context.Context, accountID string, opts *AccountsAlertsListOptions) (*Alerts, error) {
	return restbind.Call[Alerts](ctx, s.r, "list", restbind.Params{"accountId": accountID}, opts)
}

// AccountsCustomchannelsService calls the operations of the
// accounts.customchannels resource.
type AccountsCustomchannelsService struct {
	r *restbind.Resource

	Adunits *AccountsCustomchannelsAdunitsService
}

func newAccountsCustomchannelsService(s *restbind.Service) *AccountsCustomchannelsService {
	return &AccountsCustomchannelsService{
		r:       s.MustResource("accounts.customchannels"),
		Adunits: newAccountsCustomchannelsAdunitsService(s),
	}
}

// Get gets the specified custom channel from the specified ad client for the
// specified account.
func (s *AccountsCustomchannelsService) Get(ctx context.Context, accountID, adClientID, customChannelID string) (*CustomChannel, error) {
	return restbind.Call[CustomChannel](ctx, s.r, "get", restbind.Params{
		"accountId":       accountID,
		"adClientId":      adClientID,
		"customChannelId": customChannelID,
	}, nil)
}

// List lists all custom channels in the specified ad client for the
// specified account.
func (s *AccountsCustomchannelsService) List(ctx context.Context, accountID, adClientID string, opts *AccountsCustomchannelsListOptions) (*CustomChannels, error) {
	return restbind.Call[CustomChannels](ctx, s.r, "list", restbind.Params{"accountId": accountID, "adClientId": adClientID}, opts)
}

// ListPages iterates over every page of List, starting at opts.PageToken.
func (s *AccountsCustomchannelsService) ListPages(ctx context.Context, accountID, adClientID string, opts *AccountsCustomchannelsListOptions) iter.Seq2[*CustomChannels, error] {
	return restbind.Pages(ctx, func(ctx context.Context, token string) (*CustomChannels, error) {
		var o AccountsCustomchannelsListOptions
		if opts != nil {
			o = *opts
		}
		if token != "" {
			o.PageToken = token
		}
		return s.List(ctx, accountID, adClientID, &o)
	})
}

// AccountsCustomchannelsAdunitsService calls the operations of the
// accounts.customchannels.adunits resource.
type AccountsCustomchannelsAdunitsService struct {
	r *restbind.Resource
}

func newAccountsCustomchannelsAdunitsService(s *restbind.Service) *AccountsCustomchannelsAdunitsService {
	return &AccountsCustomchannelsAdunitsService{
		r: s.MustResource("accounts.customchannels.adunits"),
	}
}

// List lists all ad units in the specified custom channel.
func (s *AccountsCustomchannelsAdunitsService) List(ctx context.Context, accountID, adClientID, customChannelID string, opts *AccountsCustomchannelsAdunitsListOptions) (*AdUnits, error) {
	return restbind.Call[AdUnits](ctx, s.r, "list", restbind.Params{
		"accountId":       accountID,
		"adClientId":      adClientID,
		"customChannelId": customChannelID,
	}, opts)
}

// ListPages iterates over every page of List, starting at opts.PageToken.
func (s *AccountsCustomchannelsAdunitsService) ListPages(ctx context.Context, accountID, adClientID, customChannelID string, opts *AccountsCustomchannelsAdunitsListOptions) iter.Seq2[*AdUnits, error] {
	return restbind.Pages(ctx, func(ctx context.Context, token string) (*AdUnits, error) {
		var o AccountsCustomchannelsAdunitsListOptions
		if opts != nil {
			o = *opts
		}
		if token != "" {
			o.PageToken = token
		}
		return s.List(ctx, accountID, adClientID, customChannelID, &o)
	})
}

// AccountsPaymentsService calls the operations of the accounts.payments
// resource.
type AccountsPaymentsService struct {
	r *restbind.Resource
}

func newAccountsPaymentsService(s *restbind.Service) *AccountsPaymentsService {
	return &AccountsPaymentsService{
		r: s.MustResource("accounts.payments"),
	}
}

// List lists the payments for the specified AdSense account.
func (s *AccountsPaymentsService) List(ctx context.Context, accountID string) (*Payments, error) {
	return restbind.Call[Payments](ctx, s.r, "list", restbind.Params{"accountId": accountID}, nil)
}

// AccountsReportsService calls the operations of the accounts.reports
// resource.
type AccountsReportsService struct {
	r *restbind.Resource

	Saved *AccountsReportsSavedService
}

func newAccountsReportsService(s *restbind.Service) *AccountsReportsService {
	return &AccountsReportsService{
		r:     s.MustResource("accounts.reports"),
		Saved: newAccountsReportsSavedService(s),
	}
}

// Generate generates an AdSense report based on the report request sent in
// the query parameters.
func (s *AccountsReportsService) Generate(ctx context.Context, accountID, startDate, endDate string, opts *AccountsReportsGenerateOptions) (*AdsenseReportsGenerateResponse, error) {
	return restbind.Call[AdsenseReportsGenerateResponse](ctx, s.r, "generate", restbind.Params{
		"accountId": accountID,
		"startDate": startDate,
		"endDate":   endDate,
	}, opts)
}

// AccountsReportsSavedService calls the operations of the
// accounts.reports.saved resource.
type AccountsReportsSavedService struct {
	r *restbind.Resource
}

func newAccountsReportsSavedService(s *restbind.Service) *AccountsReportsSavedService {
	return &AccountsReportsSavedService{
		r: s.MustResource("accounts.reports.saved"),
	}
}

// Generate generates an AdSense report based on the saved report ID sent in
// the query parameters.
func (s *AccountsReportsSavedService) Generate(ctx context.Context, accountID, savedReportID string, opts *AccountsReportsSavedGenerateOptions) (*AdsenseReportsGenerateResponse, error) {
	return restbind.Call[AdsenseReportsGenerateResponse](ctx, s.r, "generate", restbind.Params{"accountId": accountID, "savedReportId": savedReportID}, opts)
}

// List lists all saved reports in the specified AdSense account.
func (s *AccountsReportsSavedService) List(ctx context.Context, accountID string, opts *AccountsReportsSavedListOptions) (*SavedReports, error) {
	return restbind.Call[SavedReports](ctx, s.r, "list", restbind.Params{"accountId": accountID}, opts)
}

// ListPages iterates over every page of List, starting at opts.PageToken.
func (s *AccountsReportsSavedService) ListPages(ctx context.Context, accountID string, opts *AccountsReportsSavedListOptions) iter.Seq2[*SavedReports, error] {
	return restbind.Pages(ctx, func(ctx context.Context, token string) (*SavedReports, error) {
		var o AccountsReportsSavedListOptions
		if opts != nil {
			o = *opts
		}
		if token != "" {
			o.PageToken = token
		}
		return s.List(ctx, accountID, &o)
	})
}

// AccountsSavedadstylesService calls the operations of the
// accounts.savedadstyles resource.
type AccountsSavedadstylesService struct {
	r *restbind.Resource
}

func newAccountsSavedadstylesService(s *restbind.Service) *AccountsSavedadstylesService {
	return &AccountsSavedadstylesService{
		r: s.MustResource("accounts.savedadstyles"),
	}
}

// Get lists a specific saved ad style for the specified account.
func (s *AccountsSavedadstylesService) Get(ctx context.Context, accountID, savedAdStyleID string) (*SavedAdStyle, error) {
	return restbind.Call[SavedAdStyle](ctx, s.r, "get", restbind.Params{"accountId": accountID, "savedAdStyleId": savedAdStyleID}, nil)
}

// List lists all saved ad styles in the specified account.
func (s *AccountsSavedadstylesService) List(ctx context.Context, accountID string, opts *AccountsSavedadstylesListOptions) (*SavedAdStyles, error) {
	return restbind.Call[SavedAdStyles](ctx, s.r, "list", restbind.Params{"accountId": accountID}, opts)
}

// ListPages iterates over every page of List, starting at opts.PageToken.
func (s *AccountsSavedadstylesService) ListPages(ctx context.Context, accountID string, opts *AccountsSavedadstylesListOptions) iter.Seq2[*SavedAdStyles, error] {
	return restbind.Pages(ctx, func(ctx context.Context, token string) (*SavedAdStyles, error) {
		var o AccountsSavedadstylesListOptions
		if opts != nil {
			o = *opts
		}
		if token != "" {
			o.PageToken = token
		}
		return s.List(ctx, accountID, &o)
	})
}

// AccountsUrlchannelsService calls the operations of the
// accounts.urlchannels resource.
type AccountsUrlchannelsService struct {
	r *restbind.Resource
}

func newAccountsUrlchannelsService(s *restbind.Service) *AccountsUrlchannelsService {
	return &AccountsUrlchannelsService{
		r: s.MustResource("accounts.urlchannels"),
	}
}

// List lists all URL channels in the specified ad client for the specified
// account.
func (s *AccountsUrlchannelsService) List(ctx context.Context, accountID, adClientID string, opts *AccountsUrlchannelsListOptions) (*UrlChannels, error) {
	return restbind.Call[UrlChannels](ctx, s.r, "list", restbind.Params{"accountId": accountID, "adClientId": adClientID}, opts)
}

// ListPages iterates over every page of List, starting at opts.PageToken.
func (s *AccountsUrlchannelsService) ListPages(ctx context.Context, accountID, adClientID string, opts *AccountsUrlchannelsListOptions) iter.Seq2[*UrlChannels, error] {
	return restbind.Pages(ctx, func(ctx context.Context, token string) (*UrlChannels, error) {
		var o AccountsUrlchannelsListOptions
		if opts != nil {
			o = *opts
		}
		if token != "" {
			o.PageToken = token
		}
		return s.List(ctx, accountID, adClientID, &o)
	})
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

// List lists all ad clients in this AdSense account.
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

// AdunitsService calls the operations of the adunits resource.
type AdunitsService struct {
	r *restbind.Resource

	Customchannels *AdunitsCustomchannelsService
}

func newAdunitsService(s *restbind.Service) *AdunitsService {
	return &AdunitsService{
		r:              s.MustResource("adunits"),
		Customchannels: newAdunitsCustomchannelsService(s),
	}
}

// Get gets the specified ad unit in the specified ad client.
func (s *AdunitsService) Get(ctx context.Context, adClientID, adUnitID string) (*AdUnit, error) {
	return restbind.Call[AdUnit](ctx, s.r, "get", restbind.Params{"adClientId": adClientID, "adUnitId": adUnitID}, nil)
}

// GetAdCode gets ad code for the specified ad unit.
func (s *AdunitsService) GetAdCode(ctx context.Context, adClientID, adUnitID string) (*AdCode, error) {
	return restbind.Call[AdCode](ctx, s.r, "getAdCode", restbind.Params{"adClientId": adClientID, "adUnitId": adUnitID}, nil)
}

// List lists all ad units in the specified ad client for this AdSense
// account.
func (s *AdunitsService) List(ctx context.Context, adClientID string, opts *AdunitsListOptions) (*AdUnits, error) {
	return restbind.Call[AdUnits](ctx, s.r, "list", restbind.Params{"adClientId": adClientID}, opts)
}

// ListPages iterates over every page of List, starting at opts.PageToken.
func (s *AdunitsService) ListPages(ctx context.Context, adClientID string, opts *AdunitsListOptions) iter.Seq2[*AdUnits, error] {
	return restbind.Pages(ctx, func(ctx context.Context, token string) (*AdUnits, error) {
		var o AdunitsListOptions
		if opts != nil {
			o = *opts
		}
		if token != "" {
			o.PageToken = token
		}
		return s.List(ctx, adClientID, &o)
	})
}

// AdunitsCustomchannelsService calls the operations of the
// adunits.customchannels resource.
type AdunitsCustomchannelsService struct {
	r *restbind.Resource
}

func newAdunitsCustomchannelsService(s *restbind.Service) *AdunitsCustomchannelsService {
	return &AdunitsCustomchannelsService{
		r: s.MustResource("adunits.customchannels"),
	}
}

// List lists all custom channels which the specified ad unit belongs to.
func (s *AdunitsCustomchannelsService) List(ctx context.Context, adClientID, adUnitID string, opts *AdunitsCustomchannelsListOptions) (*CustomChannels, error) {
	return restbind.Call[CustomChannels](ctx, s.r, "list", restbind.Params{"adClientId": adClientID, "adUnitId": adUnitID}, opts)
}

// ListPages iterates over every page of List, starting at opts.PageToken.
func (s *AdunitsCustomchannelsService) ListPages(ctx context.Context, adClientID, adUnitID string, opts *AdunitsCustomchannelsListOptions) iter.Seq2[*CustomChannels, error] {
	return restbind.Pages(ctx, func(ctx context.Context, token string) (*CustomChannels, error) {
		var o AdunitsCustomchannelsListOptions
		if opts != nil {
			o = *opts
		}
		if token != "" {
			o.PageToken = token
		}
		return s.List(ctx, adClientID, adUnitID, &o)
	})
}

// AlertsService calls the operations of the alerts resource.
type AlertsService struct {
	r *restbind.Resource
}

func newAlertsService(s *restbind.Service) *AlertsService {
	return &AlertsService{
		r: s.MustResource("alerts"),
	}
}

// Delete dismisses (delete) the specified alert from the publisher's AdSense
// account.
func (s *AlertsService) Delete(ctx context.Context, alertID string) error {
	return restbind.Exec(ctx, s.r, "delete", restbind.Params{"alertId": alertID}, nil)
}

// List lists the alerts for this AdSense account.
func (s *AlertsService) List(ctx context.Context, opts *AlertsListOptions) (*Alerts, error) {
	return restbind.Call[Alerts](ctx, s.r, "list", nil, opts)
}

// CustomchannelsService calls the operations of the customchannels resource.
type CustomchannelsService struct {
	r *restbind.Resource

	Adunits *CustomchannelsAdunitsService
}

func newCustomchannelsService(s *restbind.Service) *CustomchannelsService {
	return &CustomchannelsService{
		r:       s.MustResource("customchannels"),
		Adunits: newCustomchannelsAdunitsService(s),
	}
}

// Get gets the specified custom channel from the specified ad client.
func (s *CustomchannelsService) Get(ctx context.Context, adClientID, customChannelID string) (*CustomChannel, error) {
	return restbind.Call[CustomChannel](ctx, s.r, "get", restbind.Params{"adClientId": adClientID, "customChannelId": customChannelID}, nil)
}

// List lists all custom channels in the specified ad client for this AdSense
// account.
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

// CustomchannelsAdunitsService calls the operations of the
// customchannels.adunits resource.
type CustomchannelsAdunitsService struct {
	r *restbind.Resource
}

func newCustomchannelsAdunitsService(s *restbind.Service) *CustomchannelsAdunitsService {
	return &CustomchannelsAdunitsService{
		r: s.MustResource("customchannels.adunits"),
	}
}

// List lists all ad units in the specified custom channel.
func (s *CustomchannelsAdunitsService) List(ctx context.Context, adClientID, customChannelID string, opts *CustomchannelsAdunitsListOptions) (*AdUnits, error) {
	return restbind.Call[AdUnits](ctx, s.r, "list", restbind.Params{"adClientId": adClientID, "customChannelId": customChannelID}, opts)
}

// ListPages iterates over every page of List, starting at opts.PageToken.
func (s *CustomchannelsAdunitsService) ListPages(ctx context.Context, adClientID, customChannelID string, opts *CustomchannelsAdunitsListOptions) iter.Seq2[*AdUnits, error] {
	return restbind.Pages(ctx, func(ctx context.Context, token string) (*AdUnits, error) {
		var o CustomchannelsAdunitsListOptions
		if opts != nil {
			o = *opts
		}
		if token != "" {
			o.PageToken = token
		}
		return s.List(ctx, adClientID, customChannelID, &o)
	})
}

// MetadataService groups the metadata resources.
type MetadataService struct {
	Dimensions *MetadataDimensionsService
	Metrics    *MetadataMetricsService
}

func newMetadataService(s *restbind.Service) *MetadataService {
	return &MetadataService{
		Dimensions: newMetadataDimensionsService(s),
		Metrics:    newMetadataMetricsService(s),
	}
}

// MetadataDimensionsService calls the operations of the metadata.dimensions
// resource.
type MetadataDimensionsService struct {
	r *restbind.Resource
}

func newMetadataDimensionsService(s *restbind.Service) *MetadataDimensionsService {
	return &MetadataDimensionsService{
		r: s.MustResource("metadata.dimensions"),
	}
}

// List lists the metadata for the dimensions available to this AdSense
// account.
func (s *MetadataDimensionsService) List(ctx context.Context) (*Metadata, error) {
	return restbind.Call[Metadata](ctx, s.r, "list", nil, nil)
}

// MetadataMetricsService calls the operations of the metadata.metrics
// resource.
type MetadataMetricsService struct {
	r *restbind.Resource
}

func newMetadataMetricsService(s *restbind.Service) *MetadataMetricsService {
	return &MetadataMetricsService{
		r: s.MustResource("metadata.metrics"),
	}
}

// List lists the metadata for the metrics available to this AdSense account.
func (s *MetadataMetricsService) List(ctx context.Context) (*Metadata, error) {
	return restbind.Call[Metadata](ctx, s.r, "list", nil, nil)
}

// PaymentsService calls the operations of the payments resource.
type PaymentsService struct {
	r *restbind.Resource
}

func newPaymentsService(s *restbind.Service) *PaymentsService {
	return &PaymentsService{
		r: s.MustResource("payments"),
	}
}

// List lists the payments for this AdSense account.
func (s *PaymentsService) List(ctx context.Context) (*Payments, error) {
	return restbind.Call[Payments](ctx, s.r, "list", nil, nil)
}

// ReportsService calls the operations of the reports resource.
type ReportsService struct {
	r *restbind.Resource

	Saved *ReportsSavedService
}

func newReportsService(s *restbind.Service) *ReportsService {
	return &ReportsService{
		r:     s.MustResource("reports"),
		Saved: newReportsSavedService(s),
	}
}

// Generate generates an AdSense report based on the report request sent in
// the query parameters.
func (s *ReportsService) Generate(ctx context.Context, startDate, endDate string, opts *ReportsGenerateOptions) (*AdsenseReportsGenerateResponse, error) {
	return restbind.Call[AdsenseReportsGenerateResponse](ctx, s.r, "generate", restbind.Params{"startDate": startDate, "endDate": endDate}, opts)
}

// ReportsSavedService calls the operations of the reports.saved resource.
type ReportsSavedService struct {
	r *restbind.Resource
}

func newReportsSavedService(s *restbind.Service) *ReportsSavedService {
	return &ReportsSavedService{
		r: s.MustResource("reports.saved"),
	}
}

// Generate generates an AdSense report based on the saved report ID sent in
// the query parameters.
func (s *ReportsSavedService) Generate(ctx context.Context, savedReportID string, opts *ReportsSavedGenerateOptions) (*AdsenseReportsGenerateResponse, error) {
	return restbind.Call[AdsenseReportsGenerateResponse](ctx, s.r, "generate", restbind.Params{"savedReportId": savedReportID}, opts)
}

// List lists all saved reports in this AdSense account.
func (s *ReportsSavedService) List(ctx context.Context, opts *ReportsSavedListOptions) (*SavedReports, error) {
	return restbind.Call[SavedReports](ctx, s.r, "list", nil, opts)
}

// ListPages iterates over every page of List, starting at opts.PageToken.
func (s *ReportsSavedService) ListPages(ctx context.Context, opts *ReportsSavedListOptions) iter.Seq2[*SavedReports, error] {
	return restbind.Pages(ctx, func(ctx context.Context, token string) (*SavedReports, error) {
		var o ReportsSavedListOptions
		if opts != nil {
			o = *opts
		}
		if token != "" {
			o.PageToken = token
		}
		return s.List(ctx, &o)
	})
}

// SavedadstylesService calls the operations of the savedadstyles resource.
type SavedadstylesService struct {
	r *restbind.Resource
}

func newSavedadstylesService(s *restbind.Service) *SavedadstylesService {
	return &SavedadstylesService{
		r: s.MustResource("savedadstyles"),
	}
}

// Get gets a specific saved ad style from the user's account.
func (s *SavedadstylesService) Get(ctx context.Context, savedAdStyleID string) (*SavedAdStyle, error) {
	return restbind.Call[SavedAdStyle](ctx, s.r, "get", restbind.Params{"savedAdStyleId": savedAdStyleID}, nil)
}

// List lists all saved ad styles in the user's account.
func (s *SavedadstylesService) List(ctx context.Context, opts *SavedadstylesListOptions) (*SavedAdStyles, error) {
	return restbind.Call[SavedAdStyles](ctx, s.r, "list", nil, opts)
}

// ListPages iterates over every page of List, starting at opts.PageToken.
func (s *SavedadstylesService) ListPages(ctx context.Context, opts *SavedadstylesListOptions) iter.Seq2[*SavedAdStyles, error] {
	return restbind.Pages(ctx, func(ctx context.Context, token string) (*SavedAdStyles, error) {
		var o SavedadstylesListOptions
		if opts != nil {
			o = *opts
		}
		if token != "" {
			o.PageToken = token
		}
		return s.List(ctx, &o)
	})
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

// List lists all URL channels in the specified ad client for this AdSense
// account.
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

// AccountsGetOptions holds the optional parameters of AccountsService.Get.
type AccountsGetOptions struct {
	// Whether the tree of sub accounts should be returned.
	Tree *bool `schema:"tree,omitempty"`
}

// AccountsListOptions holds the optional parameters of AccountsService.List.
type AccountsListOptions struct {
	// A continuation token, used to page through accounts.
	PageToken string `schema:"pageToken,omitempty"`

	// The maximum number of accounts to include in the response, used for
	// paging.
	MaxResults *int64 `schema:"maxResults,omitempty"`
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

// AccountsAdunitsCustomchannelsListOptions holds the optional parameters of
// AccountsAdunitsCustomchannelsService.List.
type AccountsAdunitsCustomchannelsListOptions struct {
	// A continuation token, used to page through custom channels.
	PageToken string `schema:"pageToken,omitempty"`

	// The maximum number of custom channels to include in the response, used
	// for paging.
	MaxResults *int64 `schema:"maxResults,omitempty"`
}

// AccountsAlertsListOptions holds the optional parameters of
// AccountsAlertsService.List.
type AccountsAlertsListOptions struct {
	// The locale to use for translating alert messages.
	Locale string `schema:"locale,omitempty"`
}

// AccountsCustomchannelsListOptions holds the optional parameters of
// AccountsCustomchannelsService.List.
type AccountsCustomchannelsListOptions struct {
	// A continuation token, used to page through custom channels.
	PageToken string `schema:"pageToken,omitempty"`

	// The maximum number of custom channels to include in the response, used
	// for paging.
	MaxResults *int64 `schema:"maxResults,omitempty"`
}

// AccountsCustomchannelsAdunitsListOptions holds the optional parameters of
// AccountsCustomchannelsAdunitsService.List.
type AccountsCustomchannelsAdunitsListOptions struct {
	// Whether to include inactive ad units.
	IncludeInactive *bool `schema:"includeInactive,omitempty"`

	// The maximum number of ad units to include in the response, used for
	// paging.
	MaxResults *int64 `schema:"maxResults,omitempty"`

	// A continuation token, used to page through ad units.
	PageToken string `schema:"pageToken,omitempty"`
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

	// Optional currency to use when reporting on monetary metrics.
	Currency string `schema:"currency,omitempty"`

	// Index of the first row of report data to return.
	StartIndex *int64 `schema:"startIndex,omitempty"`

	// Whether the report should be generated in the AdSense account's local
	// timezone.
	UseTimezoneReporting *bool `schema:"useTimezoneReporting,omitempty"`

	// Dimensions to base the report on.
	Dimension []string `schema:"dimension,omitempty"`
}

// AccountsReportsSavedGenerateOptions holds the optional parameters of
// AccountsReportsSavedService.Generate.
type AccountsReportsSavedGenerateOptions struct {
	// Optional locale to use for translating report output to a local language.
	Locale string `schema:"locale,omitempty"`

	// Index of the first row of report data to return.
	StartIndex *int64 `schema:"startIndex,omitempty"`

	// The maximum number of rows of report data to return.
	MaxResults *int64 `schema:"maxResults,omitempty"`
}

// AccountsReportsSavedListOptions holds the optional parameters of
// AccountsReportsSavedService.List.
type AccountsReportsSavedListOptions struct {
	// A continuation token, used to page through saved reports.
	PageToken string `schema:"pageToken,omitempty"`

	// The maximum number of saved reports to include in the response, used for
	// paging.
	MaxResults *int64 `schema:"maxResults,omitempty"`
}

// AccountsSavedadstylesListOptions holds the optional parameters of
// AccountsSavedadstylesService.List.
type AccountsSavedadstylesListOptions struct {
	// A continuation token, used to page through saved ad styles.
	PageToken string `schema:"pageToken,omitempty"`

	// The maximum number of saved ad styles to include in the response, used
	// for paging.
	MaxResults *int64 `schema:"maxResults,omitempty"`
}

// AccountsUrlchannelsListOptions holds the optional parameters of
// AccountsUrlchannelsService.List.
type AccountsUrlchannelsListOptions struct {
	// A continuation token, used to page through URL channels.
	PageToken string `schema:"pageToken,omitempty"`

	// The maximum number of URL channels to include in the response, used for
	// paging.
	MaxResults *int64 `schema:"maxResults,omitempty"`
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

// AdunitsListOptions holds the optional parameters of AdunitsService.List.
type AdunitsListOptions struct {
	// Whether to include inactive ad units.
	IncludeInactive *bool `schema:"includeInactive,omitempty"`

	// A continuation token, used to page through ad units.
	PageToken string `schema:"pageToken,omitempty"`

	// The maximum number of ad units to include in the response, used for
	// paging.
	MaxResults *int64 `schema:"maxResults,omitempty"`
}

// AdunitsCustomchannelsListOptions holds the optional parameters of
// AdunitsCustomchannelsService.List.
type AdunitsCustomchannelsListOptions struct {
	// A continuation token, used to page through custom channels.
	PageToken string `schema:"pageToken,omitempty"`

	// The maximum number of custom channels to include in the response, used
	// for paging.
	MaxResults *int64 `schema:"maxResults,omitempty"`
}

// AlertsListOptions holds the optional parameters of AlertsService.List.
type AlertsListOptions struct {
	// The locale to use for translating alert messages.
	Locale string `schema:"locale,omitempty"`
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

// CustomchannelsAdunitsListOptions holds the optional parameters of
// CustomchannelsAdunitsService.List.
type CustomchannelsAdunitsListOptions struct {
	// Whether to include inactive ad units.
	IncludeInactive *bool `schema:"includeInactive,omitempty"`

	// A continuation token, used to page through ad units.
	PageToken string `schema:"pageToken,omitempty"`

	// The maximum number of ad units to include in the response, used for
	// paging.
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

	// Optional currency to use when reporting on monetary metrics.
	Currency string `schema:"currency,omitempty"`

	// Index of the first row of report data to return.
	StartIndex *int64 `schema:"startIndex,omitempty"`

	// Whether the report should be generated in the AdSense account's local
	// timezone.
	UseTimezoneReporting *bool `schema:"useTimezoneReporting,omitempty"`

	// Dimensions to base the report on.
	Dimension []string `schema:"dimension,omitempty"`

	// Accounts upon which to report.
	AccountID []string `schema:"accountId,omitempty"`
}

// ReportsSavedGenerateOptions holds the optional parameters of
// ReportsSavedService.Generate.
type ReportsSavedGenerateOptions struct {
	// Optional locale to use for translating report output to a local language.
	Locale string `schema:"locale,omitempty"`

	// Index of the first row of report data to return.
	StartIndex *int64 `schema:"startIndex,omitempty"`

	// The maximum number of rows of report data to return.
	MaxResults *int64 `schema:"maxResults,omitempty"`
}

// ReportsSavedListOptions holds the optional parameters of
// ReportsSavedService.List.
type ReportsSavedListOptions struct {
	// A continuation token, used to page through saved reports.
	PageToken string `schema:"pageToken,omitempty"`

	// The maximum number of saved reports to include in the response, used for
	// paging.
	MaxResults *int64 `schema:"maxResults,omitempty"`
}

// SavedadstylesListOptions holds the optional parameters of
// SavedadstylesService.List.
type SavedadstylesListOptions struct {
	// A continuation token, used to page through saved ad styles.
	PageToken string `schema:"pageToken,omitempty"`

	// The maximum number of saved ad styles to include in the response, used
	// for paging.
	MaxResults *int64 `schema:"maxResults,omitempty"`
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
