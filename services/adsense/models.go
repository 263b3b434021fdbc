package adsense

import (
	"sync"

	"github.com/broady/restbind/model"
)

// Account is an AdSense account. Sub-accounts nest recursively.
type Account struct {
	CreationTime *int64     `json:"creation_time,omitempty,string"`
	ID           string     `json:"id,omitempty"`
	Kind         string     `json:"kind,omitempty"`
	Name         string     `json:"name,omitempty"`
	Premium      *bool      `json:"premium,omitempty"`
	SubAccounts  []*Account `json:"subAccounts,omitempty"`
	Timezone     string     `json:"timezone,omitempty"`
}

type Accounts struct {
	Etag          string     `json:"etag,omitempty"`
	Items         []*Account `json:"items,omitempty"`
	Kind          string     `json:"kind,omitempty"`
	NextPageToken string     `json:"nextPageToken,omitempty"`
}

// ContinuationToken returns the token of the next page.
func (a *Accounts) ContinuationToken() string {
	if a == nil {
		return ""
	}
	return a.NextPageToken
}

func (a *Accounts) CollectionKey() string {
	return "items"
}

type AdClient struct {
	ArcOptIn          *bool  `json:"arcOptIn,omitempty"`
	ArcReviewMode     string `json:"arcReviewMode,omitempty"`
	ID                string `json:"id,omitempty"`
	Kind              string `json:"kind,omitempty"`
	ProductCode       string `json:"productCode,omitempty"`
	SupportsReporting *bool  `json:"supportsReporting,omitempty"`
}

type AdClients struct {
	Etag          string      `json:"etag,omitempty"`
	Items         []*AdClient `json:"items,omitempty"`
	Kind          string      `json:"kind,omitempty"`
	NextPageToken string      `json:"nextPageToken,omitempty"`
}

func (a *AdClients) ContinuationToken() string {
	if a == nil {
		return ""
	}
	return a.NextPageToken
}

func (a *AdClients) CollectionKey() string {
	return "items"
}

type AdCode struct {
	AdCode string `json:"adCode,omitempty"`
	Kind   string `json:"kind,omitempty"`
}

type AdStyle struct {
	Colors  *AdStyleColors `json:"colors,omitempty"`
	Corners string         `json:"corners,omitempty"`
	Font    *AdStyleFont   `json:"font,omitempty"`
	Kind    string         `json:"kind,omitempty"`
}

type AdStyleColors struct {
	Background string `json:"background,omitempty"`
	Border     string `json:"border,omitempty"`
	Text       string `json:"text,omitempty"`
	Title      string `json:"title,omitempty"`
	URL        string `json:"url,omitempty"`
}

type AdStyleFont struct {
	Family string `json:"family,omitempty"`
	Size   string `json:"size,omitempty"`
}

type AdUnit struct {
	Code                     string                          `json:"code,omitempty"`
	ContentAdsSettings       *AdUnitContentAdsSettings       `json:"contentAdsSettings,omitempty"`
	CustomStyle              *AdStyle                        `json:"customStyle,omitempty"`
	FeedAdsSettings          *AdUnitFeedAdsSettings          `json:"feedAdsSettings,omitempty"`
	ID                       string                          `json:"id,omitempty"`
	Kind                     string                          `json:"kind,omitempty"`
	MobileContentAdsSettings *AdUnitMobileContentAdsSettings `json:"mobileContentAdsSettings,omitempty"`
	Name                     string                          `json:"name,omitempty"`
	SavedStyleID             string                          `json:"savedStyleId,omitempty"`
	Status                   string                          `json:"status,omitempty"`
}

type AdUnitContentAdsSettings struct {
	BackupOption *AdUnitContentAdsSettingsBackupOption `json:"backupOption,omitempty"`
	Size         string                                `json:"size,omitempty"`
	Type         string                                `json:"type,omitempty"`
}

type AdUnitContentAdsSettingsBackupOption struct {
	Color string `json:"color,omitempty"`
	Type  string `json:"type,omitempty"`
	URL   string `json:"url,omitempty"`
}

type AdUnitFeedAdsSettings struct {
	AdPosition       string `json:"adPosition,omitempty"`
	Frequency        *int64 `json:"frequency,omitempty"`
	MinimumWordCount *int64 `json:"minimumWordCount,omitempty"`
	Type             string `json:"type,omitempty"`
}

type AdUnitMobileContentAdsSettings struct {
	MarkupLanguage    string `json:"markupLanguage,omitempty"`
	ScriptingLanguage string `json:"scriptingLanguage,omitempty"`
	Size              string `json:"size,omitempty"`
	Type              string `json:"type,omitempty"`
}

type AdUnits struct {
	Etag          string    `json:"etag,omitempty"`
	Items         []*AdUnit `json:"items,omitempty"`
	Kind          string    `json:"kind,omitempty"`
	NextPageToken string    `json:"nextPageToken,omitempty"`
}

func (a *AdUnits) ContinuationToken() string {
	if a == nil {
		return ""
	}
	return a.NextPageToken
}

func (a *AdUnits) CollectionKey() string {
	return "items"
}

// AdsenseReportsGenerateResponse is a generated report. Each row holds one
// value per header.
type AdsenseReportsGenerateResponse struct {
	Averages         []string                                 `json:"averages,omitempty"`
	EndDate          string                                   `json:"endDate,omitempty"`
	Headers          []*AdsenseReportsGenerateResponseHeaders `json:"headers,omitempty"`
	Kind             string                                   `json:"kind,omitempty"`
	Rows             [][]string                               `json:"rows,omitempty"`
	StartDate        string                                   `json:"startDate,omitempty"`
	TotalMatchedRows *int64                                   `json:"totalMatchedRows,omitempty,string"`
	Totals           []string                                 `json:"totals,omitempty"`
	Warnings         []string                                 `json:"warnings,omitempty"`
}

type AdsenseReportsGenerateResponseHeaders struct {
	Currency string `json:"currency,omitempty"`
	Name     string `json:"name,omitempty"`
	Type     string `json:"type,omitempty"`
}

type Alert struct {
	ID            string `json:"id,omitempty"`
	IsDismissible *bool  `json:"isDismissible,omitempty"`
	Kind          string `json:"kind,omitempty"`
	Message       string `json:"message,omitempty"`
	Severity      string `json:"severity,omitempty"`
	Type          string `json:"type,omitempty"`
}

type Alerts struct {
	Items []*Alert `json:"items,omitempty"`
	Kind  string   `json:"kind,omitempty"`
}

func (a *Alerts) CollectionKey() string {
	return "items"
}

type CustomChannel struct {
	Code          string                      `json:"code,omitempty"`
	ID            string                      `json:"id,omitempty"`
	Kind          string                      `json:"kind,omitempty"`
	Name          string                      `json:"name,omitempty"`
	TargetingInfo *CustomChannelTargetingInfo `json:"targetingInfo,omitempty"`
}

type CustomChannelTargetingInfo struct {
	AdsAppearOn  string `json:"adsAppearOn,omitempty"`
	Description  string `json:"description,omitempty"`
	Location     string `json:"location,omitempty"`
	SiteLanguage string `json:"siteLanguage,omitempty"`
}

type CustomChannels struct {
	Etag          string           `json:"etag,omitempty"`
	Items         []*CustomChannel `json:"items,omitempty"`
	Kind          string           `json:"kind,omitempty"`
	NextPageToken string           `json:"nextPageToken,omitempty"`
}

func (c *CustomChannels) ContinuationToken() string {
	if c == nil {
		return ""
	}
	return c.NextPageToken
}

func (c *CustomChannels) CollectionKey() string {
	return "items"
}

type Metadata struct {
	Items []*ReportingMetadataEntry `json:"items,omitempty"`
	Kind  string                    `json:"kind,omitempty"`
}

func (m *Metadata) CollectionKey() string {
	return "items"
}

type Payment struct {
	ID                        string `json:"id,omitempty"`
	Kind                      string `json:"kind,omitempty"`
	PaymentAmount             string `json:"paymentAmount,omitempty"`
	PaymentAmountCurrencyCode string `json:"paymentAmountCurrencyCode,omitempty"`
	PaymentDate               string `json:"paymentDate,omitempty"`
}

type Payments struct {
	Items []*Payment `json:"items,omitempty"`
	Kind  string     `json:"kind,omitempty"`
}

func (p *Payments) CollectionKey() string {
	return "items"
}

type ReportingMetadataEntry struct {
	CompatibleDimensions []string `json:"compatibleDimensions,omitempty"`
	CompatibleMetrics    []string `json:"compatibleMetrics,omitempty"`
	ID                   string   `json:"id,omitempty"`
	Kind                 string   `json:"kind,omitempty"`
	RequiredDimensions   []string `json:"requiredDimensions,omitempty"`
	RequiredMetrics      []string `json:"requiredMetrics,omitempty"`
	SupportedProducts    []string `json:"supportedProducts,omitempty"`
}

type SavedAdStyle struct {
	AdStyle *AdStyle `json:"adStyle,omitempty"`
	ID      string   `json:"id,omitempty"`
	Kind    string   `json:"kind,omitempty"`
	Name    string   `json:"name,omitempty"`
}

type SavedAdStyles struct {
	Etag          string          `json:"etag,omitempty"`
	Items         []*SavedAdStyle `json:"items,omitempty"`
	Kind          string          `json:"kind,omitempty"`
	NextPageToken string          `json:"nextPageToken,omitempty"`
}

func (s *SavedAdStyles) ContinuationToken() string {
	if s == nil {
		return ""
	}
	return s.NextPageToken
}

func (s *SavedAdStyles) CollectionKey() string {
	return "items"
}

type SavedReport struct {
	ID   string `json:"id,omitempty"`
	Kind string `json:"kind,omitempty"`
	Name string `json:"name,omitempty"`
}

type SavedReports struct {
	Etag          string         `json:"etag,omitempty"`
	Items         []*SavedReport `json:"items,omitempty"`
	Kind          string         `json:"kind,omitempty"`
	NextPageToken string         `json:"nextPageToken,omitempty"`
}

func (s *SavedReports) ContinuationToken() string {
	if s == nil {
		return ""
	}
	return s.NextPageToken
}

func (s *SavedReports) CollectionKey() string {
	return "items"
}

type UrlChannel struct {
	ID         string `json:"id,omitempty"`
	Kind       string `json:"kind,omitempty"`
	URLPattern string `json:"urlPattern,omitempty"`
}

type UrlChannels struct {
	Etag          string        `json:"etag,omitempty"`
	Items         []*UrlChannel `json:"items,omitempty"`
	Kind          string        `json:"kind,omitempty"`
	NextPageToken string        `json:"nextPageToken,omitempty"`
}

func (u *UrlChannels) ContinuationToken() string {
	if u == nil {
		return ""
	}
	return u.NextPageToken
}

func (u *UrlChannels) CollectionKey() string {
	return "items"
}

var models = sync.OnceValue(func() *model.Registry {
	return model.NewRegistry().
		Add("Account", Account{}).
		Add("Accounts", Accounts{}).
		Add("AdClient", AdClient{}).
		Add("AdClients", AdClients{}).
		Add("AdCode", AdCode{}).
		Add("AdStyle", AdStyle{}).
		Add("AdStyleColors", AdStyleColors{}).
		Add("AdStyleFont", AdStyleFont{}).
		Add("AdUnit", AdUnit{}).
		Add("AdUnitContentAdsSettings", AdUnitContentAdsSettings{}).
		Add("AdUnitContentAdsSettingsBackupOption", AdUnitContentAdsSettingsBackupOption{}).
		Add("AdUnitFeedAdsSettings", AdUnitFeedAdsSettings{}).
		Add("AdUnitMobileContentAdsSettings", AdUnitMobileContentAdsSettings{}).
		Add("AdUnits", AdUnits{}).
		Add("AdsenseReportsGenerateResponse", AdsenseReportsGenerateResponse{}).
		Add("AdsenseReportsGenerateResponseHeaders", AdsenseReportsGenerateResponseHeaders{}).
		Add("Alert", Alert{}).
		Add("Alerts", Alerts{}).
		Add("CustomChannel", CustomChannel{}).
		Add("CustomChannelTargetingInfo", CustomChannelTargetingInfo{}).
		Add("CustomChannels", CustomChannels{}).
		Add("Metadata", Metadata{}).
		Add("Payment", Payment{}).
		Add("Payments", Payments{}).
		Add("ReportingMetadataEntry", ReportingMetadataEntry{}).
		Add("SavedAdStyle", SavedAdStyle{}).
		Add("SavedAdStyles", SavedAdStyles{}).
		Add("SavedReport", SavedReport{}).
		Add("SavedReports", SavedReports{}).
		Add("UrlChannel", UrlChannel{}).
		Add("UrlChannels", UrlChannels{})
})
