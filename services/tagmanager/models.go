package tagmanager

import (
	"sync"

	"github.com/broady/restbind/model"
)

// Account represents a Google Tag Manager account.
type Account struct {
	AccountID   string `json:"accountId,omitempty"`
	Fingerprint string `json:"fingerprint,omitempty"`
	Name        string `json:"name,omitempty"`
	ShareData   *bool  `json:"shareData,omitempty"`
}

type AccountAccess struct {
	Permission []string `json:"permission,omitempty"`
}

type Condition struct {
	Parameter []*Parameter `json:"parameter,omitempty"`
	Type      string       `json:"type,omitempty"`
}

// Container represents a Google Tag Manager container.
type Container struct {
	AccountID              string   `json:"accountId,omitempty"`
	ContainerID            string   `json:"containerId,omitempty"`
	DomainName             string   `json:"domainName,omitempty"`
	EnabledBuiltInVariable []string `json:"enabledBuiltInVariable,omitempty"`
	Fingerprint            string   `json:"fingerprint,omitempty"`
	Name                   string   `json:"name,omitempty" validate:"required"`
	Notes                  string   `json:"notes,omitempty"`
	PublicID               string   `json:"publicId,omitempty"`
	TimeZoneCountryID      string   `json:"timeZoneCountryId,omitempty"`
	TimeZoneID             string   `json:"timeZoneId,omitempty"`
	UsageContext           []string `json:"usageContext,omitempty"`
}

type ContainerAccess struct {
	ContainerID string   `json:"containerId,omitempty"`
	Permission  []string `json:"permission,omitempty"`
}

type ContainerVersion struct {
	AccountID          string      `json:"accountId,omitempty"`
	Container          *Container  `json:"container,omitempty"`
	ContainerID        string      `json:"containerId,omitempty"`
	ContainerVersionID string      `json:"containerVersionId,omitempty"`
	Deleted            *bool       `json:"deleted,omitempty"`
	Fingerprint        string      `json:"fingerprint,omitempty"`
	Folder             []*Folder   `json:"folder,omitempty"`
	Macro              []*Macro    `json:"macro,omitempty"`
	Name               string      `json:"name,omitempty"`
	Notes              string      `json:"notes,omitempty"`
	Rule               []*Rule     `json:"rule,omitempty"`
	Tag                []*Tag      `json:"tag,omitempty"`
	Trigger            []*Trigger  `json:"trigger,omitempty"`
	Variable           []*Variable `json:"variable,omitempty"`
}

type ContainerVersionHeader struct {
	AccountID          string `json:"accountId,omitempty"`
	ContainerID        string `json:"containerId,omitempty"`
	ContainerVersionID string `json:"containerVersionId,omitempty"`
	Deleted            *bool  `json:"deleted,omitempty"`
	Name               string `json:"name,omitempty"`
	NumMacros          string `json:"numMacros,omitempty"`
	NumRules           string `json:"numRules,omitempty"`
	NumTags            string `json:"numTags,omitempty"`
	NumTriggers        string `json:"numTriggers,omitempty"`
	NumVariables       string `json:"numVariables,omitempty"`
}

type CreateContainerVersionRequestVersionOptions struct {
	Name         string `json:"name,omitempty"`
	Notes        string `json:"notes,omitempty"`
	QuickPreview *bool  `json:"quickPreview,omitempty"`
}

type CreateContainerVersionResponse struct {
	CompilerError    *bool             `json:"compilerError,omitempty"`
	ContainerVersion *ContainerVersion `json:"containerVersion,omitempty"`
}

type Folder struct {
	AccountID   string `json:"accountId,omitempty"`
	ContainerID string `json:"containerId,omitempty"`
	Fingerprint string `json:"fingerprint,omitempty"`
	FolderID    string `json:"folderId,omitempty"`
	Name        string `json:"name,omitempty"`
}

type FolderEntities struct {
	Tag      []*Tag      `json:"tag,omitempty"`
	Trigger  []*Trigger  `json:"trigger,omitempty"`
	Variable []*Variable `json:"variable,omitempty"`
}

func (f *FolderEntities) CollectionKey() string {
	return "tag"
}

type ListAccountUsersResponse struct {
	UserAccess []*UserAccess `json:"userAccess,omitempty"`
}

func (l *ListAccountUsersResponse) CollectionKey() string {
	return "userAccess"
}

type ListAccountsResponse struct {
	Accounts []*Account `json:"accounts,omitempty"`
}

func (l *ListAccountsResponse) CollectionKey() string {
	return "accounts"
}

type ListContainerVersionsResponse struct {
	ContainerVersion       []*ContainerVersion       `json:"containerVersion,omitempty"`
	ContainerVersionHeader []*ContainerVersionHeader `json:"containerVersionHeader,omitempty"`
}

func (l *ListContainerVersionsResponse) CollectionKey() string {
	return "containerVersion"
}

type ListContainersResponse struct {
	Containers []*Container `json:"containers,omitempty"`
}

func (l *ListContainersResponse) CollectionKey() string {
	return "containers"
}

type ListFoldersResponse struct {
	Folders []*Folder `json:"folders,omitempty"`
}

func (l *ListFoldersResponse) CollectionKey() string {
	return "folders"
}

type ListTagsResponse struct {
	Tags []*Tag `json:"tags,omitempty"`
}

func (l *ListTagsResponse) CollectionKey() string {
	return "tags"
}

type ListTriggersResponse struct {
	Triggers []*Trigger `json:"triggers,omitempty"`
}

func (l *ListTriggersResponse) CollectionKey() string {
	return "triggers"
}

type ListVariablesResponse struct {
	Variables []*Variable `json:"variables,omitempty"`
}

func (l *ListVariablesResponse) CollectionKey() string {
	return "variables"
}

type Macro struct {
	AccountID       string       `json:"accountId,omitempty"`
	ContainerID     string       `json:"containerId,omitempty"`
	DisablingRuleID []string     `json:"disablingRuleId,omitempty"`
	EnablingRuleID  []string     `json:"enablingRuleId,omitempty"`
	Fingerprint     string       `json:"fingerprint,omitempty"`
	MacroID         string       `json:"macroId,omitempty"`
	Name            string       `json:"name,omitempty"`
	Notes           string       `json:"notes,omitempty"`
	Parameter       []*Parameter `json:"parameter,omitempty"`
	ParentFolderID  string       `json:"parentFolderId,omitempty"`
	ScheduleEndMs   *int64       `json:"scheduleEndMs,omitempty,string"`
	ScheduleStartMs *int64       `json:"scheduleStartMs,omitempty,string"`
	Type            string       `json:"type,omitempty"`
}

// Parameter represents a Google Tag Manager parameter. List and map
// parameters nest further parameters.
type Parameter struct {
	Key   string       `json:"key,omitempty"`
	List  []*Parameter `json:"list,omitempty"`
	Map   []*Parameter `json:"map,omitempty"`
	Type  string       `json:"type,omitempty"`
	Value string       `json:"value,omitempty"`
}

type PublishContainerVersionResponse struct {
	CompilerError    *bool             `json:"compilerError,omitempty"`
	ContainerVersion *ContainerVersion `json:"containerVersion,omitempty"`
}

type Rule struct {
	AccountID   string       `json:"accountId,omitempty"`
	Condition   []*Condition `json:"condition,omitempty"`
	ContainerID string       `json:"containerId,omitempty"`
	Fingerprint string       `json:"fingerprint,omitempty"`
	Name        string       `json:"name,omitempty"`
	Notes       string       `json:"notes,omitempty"`
	RuleID      string       `json:"ruleId,omitempty"`
}

type SetupTag struct {
	StopOnSetupFailure *bool  `json:"stopOnSetupFailure,omitempty"`
	TagName            string `json:"tagName,omitempty"`
}

// Tag represents a Google Tag Manager tag.
type Tag struct {
	AccountID         string         `json:"accountId,omitempty"`
	BlockingRuleID    []string       `json:"blockingRuleId,omitempty"`
	BlockingTriggerID []string       `json:"blockingTriggerId,omitempty"`
	ContainerID       string         `json:"containerId,omitempty"`
	Fingerprint       string         `json:"fingerprint,omitempty"`
	FiringRuleID      []string       `json:"firingRuleId,omitempty"`
	FiringTriggerID   []string       `json:"firingTriggerId,omitempty"`
	LiveOnly          *bool          `json:"liveOnly,omitempty"`
	Name              string         `json:"name,omitempty" validate:"required"`
	Notes             string         `json:"notes,omitempty"`
	Parameter         []*Parameter   `json:"parameter,omitempty"`
	ParentFolderID    string         `json:"parentFolderId,omitempty"`
	Priority          *Parameter     `json:"priority,omitempty"`
	ScheduleEndMs     *int64         `json:"scheduleEndMs,omitempty,string"`
	ScheduleStartMs   *int64         `json:"scheduleStartMs,omitempty,string"`
	SetupTag          []*SetupTag    `json:"setupTag,omitempty"`
	TagFiringOption   string         `json:"tagFiringOption,omitempty"`
	TagID             string         `json:"tagId,omitempty"`
	TeardownTag       []*TeardownTag `json:"teardownTag,omitempty"`
	Type              string         `json:"type,omitempty" validate:"required"`
}

type TeardownTag struct {
	StopTeardownOnFailure *bool  `json:"stopTeardownOnFailure,omitempty"`
	TagName               string `json:"tagName,omitempty"`
}

type Trigger struct {
	AccountID           string       `json:"accountId,omitempty"`
	AutoEventFilter     []*Condition `json:"autoEventFilter,omitempty"`
	CheckValidation     *Parameter   `json:"checkValidation,omitempty"`
	ContainerID         string       `json:"containerId,omitempty"`
	CustomEventFilter   []*Condition `json:"customEventFilter,omitempty"`
	EnableAllVideos     *Parameter   `json:"enableAllVideos,omitempty"`
	EventName           *Parameter   `json:"eventName,omitempty"`
	Filter              []*Condition `json:"filter,omitempty"`
	Fingerprint         string       `json:"fingerprint,omitempty"`
	Interval            *Parameter   `json:"interval,omitempty"`
	Limit               *Parameter   `json:"limit,omitempty"`
	Name                string       `json:"name,omitempty" validate:"required"`
	ParentFolderID      string       `json:"parentFolderId,omitempty"`
	TriggerID           string       `json:"triggerId,omitempty"`
	Type                string       `json:"type,omitempty" validate:"required"`
	UniqueTriggerID     *Parameter   `json:"uniqueTriggerId,omitempty"`
	VideoPercentageList *Parameter   `json:"videoPercentageList,omitempty"`
	WaitForTags         *Parameter   `json:"waitForTags,omitempty"`
	WaitForTagsTimeout  *Parameter   `json:"waitForTagsTimeout,omitempty"`
}

type UserAccess struct {
	AccountAccess   *AccountAccess     `json:"accountAccess,omitempty"`
	AccountID       string             `json:"accountId,omitempty"`
	ContainerAccess []*ContainerAccess `json:"containerAccess,omitempty"`
	EmailAddress    string             `json:"emailAddress,omitempty" validate:"omitempty,email"`
	PermissionID    string             `json:"permissionId,omitempty"`
}

type Variable struct {
	AccountID          string       `json:"accountId,omitempty"`
	ContainerID        string       `json:"containerId,omitempty"`
	DisablingTriggerID []string     `json:"disablingTriggerId,omitempty"`
	EnablingTriggerID  []string     `json:"enablingTriggerId,omitempty"`
	Fingerprint        string       `json:"fingerprint,omitempty"`
	Name               string       `json:"name,omitempty" validate:"required"`
	Notes              string       `json:"notes,omitempty"`
	Parameter          []*Parameter `json:"parameter,omitempty"`
	ParentFolderID     string       `json:"parentFolderId,omitempty"`
	ScheduleEndMs      *int64       `json:"scheduleEndMs,omitempty,string"`
	ScheduleStartMs    *int64       `json:"scheduleStartMs,omitempty,string"`
	Type               string       `json:"type,omitempty" validate:"required"`
	VariableID         string       `json:"variableId,omitempty"`
}

var models = sync.OnceValue(func() *model.Registry {
	return model.NewRegistry().
		Add("Account", Account{}).
		Add("AccountAccess", AccountAccess{}).
		Add("Condition", Condition{}).
		Add("Container", Container{}).
		Add("ContainerAccess", ContainerAccess{}).
		Add("ContainerVersion", ContainerVersion{}).
		Add("ContainerVersionHeader", ContainerVersionHeader{}).
		Add("CreateContainerVersionRequestVersionOptions", CreateContainerVersionRequestVersionOptions{}).
		Add("CreateContainerVersionResponse", CreateContainerVersionResponse{}).
		Add("Folder", Folder{}).
		Add("FolderEntities", FolderEntities{}).
		Add("ListAccountUsersResponse", ListAccountUsersResponse{}).
		Add("ListAccountsResponse", ListAccountsResponse{}).
		Add("ListContainerVersionsResponse", ListContainerVersionsResponse{}).
		Add("ListContainersResponse", ListContainersResponse{}).
		Add("ListFoldersResponse", ListFoldersResponse{}).
		Add("ListTagsResponse", ListTagsResponse{}).
		Add("ListTriggersResponse", ListTriggersResponse{}).
		Add("ListVariablesResponse", ListVariablesResponse{}).
		Add("Macro", Macro{}).
		Add("Parameter", Parameter{}).
		Add("PublishContainerVersionResponse", PublishContainerVersionResponse{}).
		Add("Rule", Rule{}).
		Add("SetupTag", SetupTag{}).
		Add("Tag", Tag{}).
		Add("TeardownTag", TeardownTag{}).
		Add("Trigger", Trigger{}).
		Add("UserAccess", UserAccess{}).
		Add("Variable", Variable{})
})
