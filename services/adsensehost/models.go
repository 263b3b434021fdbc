package adsensehost

import (
	"sync"

	"github.com/broady/restbind/model"
)

type Account struct {
	ID     string `json:"id,omitempty"`
	Kind   string `json:"kind,omitempty"`
	Name   string `json:"name,omitempty"`
	Status string `json:"status,omitempty"`
}

type Accounts struct {
	Etag  string     `json:"etag,omitempty"`
	Items []*Account `json:"items,omitempty"`
	Kind  string     `json:"kind,omitempty"`
}

func (a *Accounts) CollectionKey() string {
	return "items"
}

type AdClient struct {
	ArcOptIn          *bool  `json:"arcOptIn,omitempty"`
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

// ContinuationToken returns the token of the next page.
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
	ID                       string                          `json:"id,omitempty"`
	Kind                     string                          `json:"kind,omitempty"`
	MobileContentAdsSettings *AdUnitMobileContentAdsSettings `json:"mobileContentAdsSettings,omitempty"`
	Name                     string                          `json:"name,omitempty"`
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

// AssociationSession links a publisher website to a host account.
type AssociationSession struct {
	AccountID     string   `json:"accountId,omitempty"`
	ID            string   `json:"id,omitempty"`
	Kind          string   `json:"kind,omitempty"`
	ProductCodes  []string `json:"productCodes,omitempty"`
	RedirectURL   string   `json:"redirectUrl,omitempty"`
	Status        string   `json:"status,omitempty"`
	UserLocale    string   `json:"userLocale,omitempty"`
	WebsiteLocale string   `json:"websiteLocale,omitempty"`
	WebsiteURL    string   `json:"websiteUrl,omitempty"`
}

type CustomChannel struct {
	Code string `json:"code,omitempty"`
	ID   string `json:"id,omitempty"`
	Kind string `json:"kind,omitempty"`
	Name string `json:"name,omitempty" validate:"omitempty,max=255"`
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

type Report struct {
	Averages         []string         `json:"averages,omitempty"`
	Headers          []*ReportHeaders `json:"headers,omitempty"`
	Kind             string           `json:"kind,omitempty"`
	Rows             [][]string       `json:"rows,omitempty"`
	TotalMatchedRows *int64           `json:"totalMatchedRows,omitempty,string"`
	Totals           []string         `json:"totals,omitempty"`
	Warnings         []string         `json:"warnings,omitempty"`
}

type ReportHeaders struct {
	Currency string `json:"currency,omitempty"`
	Name     string `json:"name,omitempty"`
	Type     string `json:"type,omitempty"`
}

type UrlChannel struct {
	ID         string `json:"id,omitempty"`
	Kind       string `json:"kind,omitempty"`
	URLPattern string `json:"urlPattern,omitempty" validate:"omitempty,max=255"`
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
		Add("AdUnitMobileContentAdsSettings", AdUnitMobileContentAdsSettings{}).
		Add("AdUnits", AdUnits{}).
		Add("AssociationSession", AssociationSession{}).
		Add("CustomChannel", CustomChannel{}).
		Add("CustomChannels", CustomChannels{}).
		Add("Report", Report{}).
		Add("ReportHeaders", ReportHeaders{}).
		Add("UrlChannel", UrlChannel{}).
		Add("UrlChannels", UrlChannels{})
})
