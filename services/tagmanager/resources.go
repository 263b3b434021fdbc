package tagmanager

import (
	"context"

	"github.com/broady/restbind"
)

func newService(s *restbind.Service) *Service {
	return &Service{
		Service:  s,
		Accounts: newAccountsService(s),
	}
}

// AccountsService calls the operations of the accounts resource.
type AccountsService struct {
	r *restbind.Resource

	Containers  *AccountsContainersService
	Permissions *AccountsPermissionsService
}

func newAccountsService(s *restbind.Service) *AccountsService {
	return &AccountsService{
		r:           s.MustResource("accounts"),
		Containers:  newAccountsContainersService(s),
		Permissions: newAccountsPermissionsService(s),
	}
}

// Get gets a GTM Account.
func (s *AccountsService) Get(ctx context.Context, accountID string) (*Account, error) {
	return restbind.Call[Account](ctx, s.r, "get", restbind.Params{"accountId": accountID}, nil)
}

// List lists all GTM Accounts that a user has access to.
func (s *AccountsService) List(ctx context.Context) (*ListAccountsResponse, error) {
	return restbind.Call[ListAccountsResponse](ctx, s.r, "list", nil, nil)
}

// Update updates a GTM Account.
func (s *AccountsService) Update(ctx context.Context, accountID string, body *Account, opts *AccountsUpdateOptions) (*Account, error) {
	return restbind.Call[Account](ctx, s.r, "update", restbind.Params{"accountId": accountID, restbind.PostBody: body}, opts)
}

// AccountsContainersService calls the operations of the accounts.containers
// resource.
type AccountsContainersService struct {
	r *restbind.Resource

	Folders     *AccountsContainersFoldersService
	MoveFolders *AccountsContainersMoveFoldersService
	Tags        *AccountsContainersTagsService
	Triggers    *AccountsContainersTriggersService
	Variables   *AccountsContainersVariablesService
	Versions    *AccountsContainersVersionsService
}

func newAccountsContainersService(s *restbind.Service) *AccountsContainersService {
	return &AccountsContainersService{
		r:           s.MustResource("accounts.containers"),
		Folders:     newAccountsContainersFoldersService(s),
		MoveFolders: newAccountsContainersMoveFoldersService(s),
		Tags:        newAccountsContainersTagsService(s),
		Triggers:    newAccountsContainersTriggersService(s),
		Variables:   newAccountsContainersVariablesService(s),
		Versions:    newAccountsContainersVersionsService(s),
	}
}

// Create creates a Container.
func (s *AccountsContainersService) Create(ctx context.Context, accountID string, body *Container) (*Container, error) {
	return restbind.Call[Container](ctx, s.r, "create", restbind.Params{"accountId": accountID, restbind.PostBody: body}, nil)
}

// Delete deletes a Container.
func (s *AccountsContainersService) Delete(ctx context.Context, accountID, containerID string) error {
	return restbind.Exec(ctx, s.r, "delete", restbind.Params{"accountId": accountID, "containerId": containerID}, nil)
}

// Get gets a Container.
func (s *AccountsContainersService) Get(ctx context.Context, accountID, containerID string) (*Container, error) {
	return restbind.Call[Container](ctx, s.r, "get", restbind.Params{"accountId": accountID, "containerId": containerID}, nil)
}

// List lists all Containers that belongs to a GTM Account.
func (s *AccountsContainersService) List(ctx context.Context, accountID string) (*ListContainersResponse, error) {
	return restbind.Call[ListContainersResponse](ctx, s.r, "list", restbind.Params{"accountId": accountID}, nil)
}

// Update updates a Container.
func (s *AccountsContainersService) Update(ctx context.Context, accountID, containerID string, body *Container, opts *AccountsContainersUpdateOptions) (*Container, error) {
	return restbind.Call[Container](ctx, s.r, "update", restbind.Params{
		"accountId":       accountID,
		"containerId":     containerID,
		restbind.PostBody: body,
	}, opts)
}

// AccountsContainersFoldersService calls the operations of the
// accounts.containers.folders resource.
type AccountsContainersFoldersService struct {
	r *restbind.Resource

	Entities *AccountsContainersFoldersEntitiesService
}

func newAccountsContainersFoldersService(s *restbind.Service) *AccountsContainersFoldersService {
	return &AccountsContainersFoldersService{
		r:        s.MustResource("accounts.containers.folders"),
		Entities: newAccountsContainersFoldersEntitiesService(s),
	}
}

// Create creates a GTM Folder.
func (s *AccountsContainersFoldersService) Create(ctx context.Context, accountID, containerID string, body *Folder) (*Folder, error) {
	return restbind.Call[Folder](ctx, s.r, "create", restbind.Params{
		"accountId":       accountID,
		"containerId":     containerID,
		restbind.PostBody: body,
	}, nil)
}

// Delete deletes a GTM Folder.
func (s *AccountsContainersFoldersService) Delete(ctx context.Context, accountID, containerID, folderID string) error {
	return restbind.Exec(ctx, s.r, "delete", restbind.Params{
		"accountId":   accountID,
		"containerId": containerID,
		"folderId":    folderID,
	}, nil)
}

// Get gets a GTM Folder.
func (s *AccountsContainersFoldersService) Get(ctx context.Context, accountID, containerID, folderID string) (*Folder, error) {
	return restbind.Call[Folder](ctx, s.r, "get", restbind.Params{
		"accountId":   accountID,
		"containerId": containerID,
		"folderId":    folderID,
	}, nil)
}

// List lists all GTM Folders of a Container.
func (s *AccountsContainersFoldersService) List(ctx context.Context, accountID, containerID string) (*ListFoldersResponse, error) {
	return restbind.Call[ListFoldersResponse](ctx, s.r, "list", restbind.Params{"accountId": accountID, "containerId": containerID}, nil)
}

// Update updates a GTM Folder.
func (s *AccountsContainersFoldersService) Update(ctx context.Context, accountID, containerID, folderID string, body *Folder, opts *AccountsContainersFoldersUpdateOptions) (*Folder, error) {
	return restbind.Call[Folder](ctx, s.r, "update", restbind.Params{
		"accountId":       accountID,
		"containerId":     containerID,
		"folderId":        folderID,
		restbind.PostBody: body,
	}, opts)
}

// AccountsContainersFoldersEntitiesService calls the operations of the
// accounts.containers.folders.entities resource.
type AccountsContainersFoldersEntitiesService struct {
	r *restbind.Resource
}

func newAccountsContainersFoldersEntitiesService(s *restbind.Service) *AccountsContainersFoldersEntitiesService {
	return &AccountsContainersFoldersEntitiesService{
		r: s.MustResource("accounts.containers.folders.entities"),
	}
}

// List lists all entities in a GTM Folder.
func (s *AccountsContainersFoldersEntitiesService) List(ctx context.Context, accountID, containerID, folderID string) (*FolderEntities, error) {
	return restbind.Call[FolderEntities](ctx, s.r, "list", restbind.Params{
		"accountId":   accountID,
		"containerId": containerID,
		"folderId":    folderID,
	}, nil)
}

// AccountsContainersMoveFoldersService calls the operations of the
// accounts.containers.move_folders resource.
type AccountsContainersMoveFoldersService struct {
	r *restbind.Resource
}

func newAccountsContainersMoveFoldersService(s *restbind.Service) *AccountsContainersMoveFoldersService {
	return &AccountsContainersMoveFoldersService{
		r: s.MustResource("accounts.containers.move_folders"),
	}
}

// Update moves entities to a GTM Folder.
func (s *AccountsContainersMoveFoldersService) Update(ctx context.Context, accountID, containerID, folderID string, opts *AccountsContainersMoveFoldersUpdateOptions) error {
	return restbind.Exec(ctx, s.r, "update", restbind.Params{
		"accountId":   accountID,
		"containerId": containerID,
		"folderId":    folderID,
	}, opts)
}

// AccountsContainersTagsService calls the operations of the
// accounts.containers.tags resource.
type AccountsContainersTagsService struct {
	r *restbind.Resource
}

func newAccountsContainersTagsService(s *restbind.Service) *AccountsContainersTagsService {
	return &AccountsContainersTagsService{
		r: s.MustResource("accounts.containers.tags"),
	}
}

// Create creates a GTM Tag.
func (s *AccountsContainersTagsService) Create(ctx context.Context, accountID, containerID string, body *Tag) (*Tag, error) {
	return restbind.Call[Tag](ctx, s.r, "create", restbind.Params{
		"accountId":       accountID,
		"containerId":     containerID,
		restbind.PostBody: body,
	}, nil)
}

// Delete deletes a GTM Tag.
func (s *AccountsContainersTagsService) Delete(ctx context.Context, accountID, containerID, tagID string) error {
	return restbind.Exec(ctx, s.r, "delete", restbind.Params{
		"accountId":   accountID,
		"containerId": containerID,
		"tagId":       tagID,
	}, nil)
}

// Get gets a GTM Tag.
func (s *AccountsContainersTagsService) Get(ctx context.Context, accountID, containerID, tagID string) (*Tag, error) {
	return restbind.Call[Tag](ctx, s.r, "get", restbind.Params{
		"accountId":   accountID,
		"containerId": containerID,
		"tagId":       tagID,
	}, nil)
}

// List lists all GTM Tags of a Container.
func (s *AccountsContainersTagsService) List(ctx context.Context, accountID, containerID string) (*ListTagsResponse, error) {
	return restbind.Call[ListTagsResponse](ctx, s.r, "list", restbind.Params{"accountId": accountID, "containerId": containerID}, nil)
}

// Update updates a GTM Tag.
func (s *AccountsContainersTagsService) Update(ctx context.Context, accountID, containerID, tagID string, body *Tag, opts *AccountsContainersTagsUpdateOptions) (*Tag, error) {
	return restbind.Call[Tag](ctx, s.r, "update", restbind.Params{
		"accountId":       accountID,
		"containerId":     containerID,
		"tagId":           tagID,
		restbind.PostBody: body,
	}, opts)
}

// AccountsContainersTriggersService calls the operations of the
// accounts.containers.triggers resource.
type AccountsContainersTriggersService struct {
	r *restbind.Resource
}

func newAccountsContainersTriggersService(s *restbind.Service) *AccountsContainersTriggersService {
	return &AccountsContainersTriggersService{
		r: s.MustResource("accounts.containers.triggers"),
	}
}

// Create creates a GTM Trigger.
func (s *AccountsContainersTriggersService) Create(ctx context.Context, accountID, containerID string, body *Trigger) (*Trigger, error) {
	return restbind.Call[Trigger](ctx, s.r, "create", restbind.Params{
		"accountId":       accountID,
		"containerId":     containerID,
		restbind.PostBody: body,
	}, nil)
}

// Delete deletes a GTM Trigger.
func (s *AccountsContainersTriggersService) Delete(ctx context.Context, accountID, containerID, triggerID string) error {
	return restbind.Exec(ctx, s.r, "delete", restbind.Params{
		"accountId":   accountID,
		"containerId": containerID,
		"triggerId":   triggerID,
	}, nil)
}

// Get gets a GTM Trigger.
func (s *AccountsContainersTriggersService) Get(ctx context.Context, accountID, containerID, triggerID string) (*Trigger, error) {
	return restbind.Call[Trigger](ctx, s.r, "get", restbind.Params{
		"accountId":   accountID,
		"containerId": containerID,
		"triggerId":   triggerID,
	}, nil)
}

// List lists all GTM Triggers of a Container.
func (s *AccountsContainersTriggersService) List(ctx context.Context, accountID, containerID string) (*ListTriggersResponse, error) {
	return restbind.Call[ListTriggersResponse](ctx, s.r, "list", restbind.Params{"accountId": accountID, "containerId": containerID}, nil)
}

// Update updates a GTM Trigger.
func (s *AccountsContainersTriggersService) Update(ctx context.Context, accountID, containerID, triggerID string, body *Trigger, opts *AccountsContainersTriggersUpdateOptions) (*Trigger, error) {
	return restbind.Call[Trigger](ctx, s.r, "update", restbind.Params{
		"accountId":       accountID,
		"containerId":     containerID,
		"triggerId":       triggerID,
		restbind.PostBody: body,
	}, opts)
}

// AccountsContainersVariablesService calls the operations of the
// accounts.containers.variables resource.
type AccountsContainersVariablesService struct {
	r *restbind.Resource
}

func newAccountsContainersVariablesService(s *restbind.Service) *AccountsContainersVariablesService {
	return &AccountsContainersVariablesService{
		r: s.MustResource("accounts.containers.variables"),
	}
}

// Create creates a GTM Variable.
func (s *AccountsContainersVariablesService) Create(ctx context.Context, accountID, containerID string, body *Variable) (*Variable, error) {
	return restbind.Call[Variable](ctx, s.r, "create", restbind.Params{
		"accountId":       accountID,
		"containerId":     containerID,
		restbind.PostBody: body,
	}, nil)
}

// Delete deletes a GTM Variable.
func (s *AccountsContainersVariablesService) Delete(ctx context.Context, accountID, containerID, variableID string) error {
	return restbind.Exec(ctx, s.r, "delete", restbind.Params{
		"accountId":   accountID,
		"containerId": containerID,
		"variableId":  variableID,
	}, nil)
}

// Get gets a GTM Variable.
func (s *AccountsContainersVariablesService) Get(ctx context.Context, accountID, containerID, variableID string) (*Variable, error) {
	return restbind.Call[Variable](ctx, s.r, "get", restbind.Params{
		"accountId":   accountID,
		"containerId": containerID,
		"variableId":  variableID,
	}, nil)
}

// List lists all GTM Variables of a Container.
func (s *AccountsContainersVariablesService) List(ctx context.Context, accountID, containerID string) (*ListVariablesResponse, error) {
	return restbind.Call[ListVariablesResponse](ctx, s.r, "list", restbind.Params{"accountId": accountID, "containerId": containerID}, nil)
}

// Update updates a GTM Variable.
func (s *AccountsContainersVariablesService) Update(ctx context.Context, accountID, containerID, variableID string, body *Variable, opts *AccountsContainersVariablesUpdateOptions) (*Variable, error) {
	return restbind.Call[Variable](ctx, s.r, "update", restbind.Params{
		"accountId":       accountID,
		"containerId":     containerID,
		"variableId":      variableID,
		restbind.PostBody: body,
	}, opts)
}

// AccountsContainersVersionsService calls the operations of the
// accounts.containers.versions resource.
type AccountsContainersVersionsService struct {
	r *restbind.Resource
}

func newAccountsContainersVersionsService(s *restbind.Service) *AccountsContainersVersionsService {
	return &AccountsContainersVersionsService{
		r: s.MustResource("accounts.containers.versions"),
	}
}

// Create creates a Container Version.
func (s *AccountsContainersVersionsService) Create(ctx context.Context, accountID, containerID string, body *CreateContainerVersionRequestVersionOptions) (*CreateContainerVersionResponse, error) {
	return restbind.Call[CreateContainerVersionResponse](ctx, s.r, "create", restbind.Params{
		"accountId":       accountID,
		"containerId":     containerID,
		restbind.PostBody: body,
	}, nil)
}

// Delete deletes a Container Version.
func (s *AccountsContainersVersionsService) Delete(ctx context.Context, accountID, containerID, containerVersionID string) error {
	return restbind.Exec(ctx, s.r, "delete", restbind.Params{
		"accountId":          accountID,
		"containerId":        containerID,
		"containerVersionId": containerVersionID,
	}, nil)
}

// Get gets a Container Version.
func (s *AccountsContainersVersionsService) Get(ctx context.Context, accountID, containerID, containerVersionID string) (*ContainerVersion, error) {
	return restbind.Call[ContainerVersion](ctx, s.r, "get", restbind.Params{
		"accountId":          accountID,
		"containerId":        containerID,
		"containerVersionId": containerVersionID,
	}, nil)
}

// List lists all Container Versions of a GTM Container.
func (s *AccountsContainersVersionsService) List(ctx context.Context, accountID, containerID string, opts *AccountsContainersVersionsListOptions) (*ListContainerVersionsResponse, error) {
	return restbind.Call[ListContainerVersionsResponse](ctx, s.r, "list", restbind.Params{"accountId": accountID, "containerId": containerID}, opts)
}

// Publish publishes a Container Version.
func (s *AccountsContainersVersionsService) Publish(ctx context.Context, accountID, containerID, containerVersionID string, opts *AccountsContainersVersionsPublishOptions) (*PublishContainerVersionResponse, error) {
	return restbind.Call[PublishContainerVersionResponse](ctx, s.r, "publish", restbind.Params{
		"accountId":          accountID,
		"containerId":        containerID,
		"containerVersionId": containerVersionID,
	}, opts)
}

// Restore restores a Container Version. This will overwrite the container's
// current configuration (including its variables, triggers and tags). The
// operation will not have any effect on the version that is being served
// (i.e. the published version).
func (s *AccountsContainersVersionsService) Restore(ctx context.Context, accountID, containerID, containerVersionID string) (*ContainerVersion, error) {
	return restbind.Call[ContainerVersion](ctx, s.r, "restore", restbind.Params{
		"accountId":          accountID,
		"containerId":        containerID,
		"containerVersionId": containerVersionID,
	}, nil)
}

// Undelete undeletes a Container Version.
func (s *AccountsContainersVersionsService) Undelete(ctx context.Context, accountID, containerID, containerVersionID string) (*ContainerVersion, error) {
	return restbind.Call[ContainerVersion](ctx, s.r, "undelete", restbind.Params{
		"accountId":          accountID,
		"containerId":        containerID,
		"containerVersionId": containerVersionID,
	}, nil)
}

// Update updates a Container Version.
func (s *AccountsContainersVersionsService) Update(ctx context.Context, accountID, containerID, containerVersionID string, body *ContainerVersion, opts *AccountsContainersVersionsUpdateOptions) (*ContainerVersion, error) {
	return restbind.Call[ContainerVersion](ctx, s.r, "update", restbind.Params{
		"accountId":          accountID,
		"containerId":        containerID,
		"containerVersionId": containerVersionID,
		restbind.PostBody:    body,
	}, opts)
}

// AccountsPermissionsService calls the operations of the
// accounts.permissions resource.
type AccountsPermissionsService struct {
	r *restbind.Resource
}

func newAccountsPermissionsService(s *restbind.Service) *AccountsPermissionsService {
	return &AccountsPermissionsService{
		r: s.MustResource("accounts.permissions"),
	}
}

// Create creates a user's Account & Container Permissions.
func (s *AccountsPermissionsService) Create(ctx context.Context, accountID string, body *UserAccess) (*UserAccess, error) {
	return restbind.Call[UserAccess](ctx, s.r, "create", restbind.Params{"accountId": accountID, restbind.PostBody: body}, nil)
}

// Delete removes a user from the account, revoking access to it and all of
// its containers.
func (s *AccountsPermissionsService) Delete(ctx context.Context, accountID, permissionID string) error {
	return restbind.Exec(ctx, s.r, "delete", restbind.Params{"accountId": accountID, "permissionId": permissionID}, nil)
}

// Get gets a user's Account & Container Permissions.
func (s *AccountsPermissionsService) Get(ctx context.Context, accountID, permissionID string) (*UserAccess, error) {
	return restbind.Call[UserAccess](ctx, s.r, "get", restbind.Params{"accountId": accountID, "permissionId": permissionID}, nil)
}

// List lists all users that have access to the account along with Account
// and Container Permissions granted to each of them.
func (s *AccountsPermissionsService) List(ctx context.Context, accountID string) (*ListAccountUsersResponse, error) {
	return restbind.Call[ListAccountUsersResponse](ctx, s.r, "list", restbind.Params{"accountId": accountID}, nil)
}

// Update updates a user's Account & Container Permissions.
func (s *AccountsPermissionsService) Update(ctx context.Context, accountID, permissionID string, body *UserAccess) (*UserAccess, error) {
	return restbind.Call[UserAccess](ctx, s.r, "update", restbind.Params{
		"accountId":       accountID,
		"permissionId":    permissionID,
		restbind.PostBody: body,
	}, nil)
}

// AccountsUpdateOptions holds the optional parameters of
// AccountsService.Update.
type AccountsUpdateOptions struct {
	// When provided, this fingerprint must match the fingerprint of the account
	// in storage.
	Fingerprint string `schema:"fingerprint,omitempty"`
}

// AccountsContainersUpdateOptions holds the optional parameters of
// AccountsContainersService.Update.
type AccountsContainersUpdateOptions struct {
	// When provided, this fingerprint must match the fingerprint of the
	// container in storage.
	Fingerprint string `schema:"fingerprint,omitempty"`
}

// AccountsContainersFoldersUpdateOptions holds the optional parameters of
// AccountsContainersFoldersService.Update.
type AccountsContainersFoldersUpdateOptions struct {
	// When provided, this fingerprint must match the fingerprint of the folder
	// in storage.
	Fingerprint string `schema:"fingerprint,omitempty"`
}

// AccountsContainersMoveFoldersUpdateOptions holds the optional parameters
// of AccountsContainersMoveFoldersService.Update.
type AccountsContainersMoveFoldersUpdateOptions struct {
	// The variables to be moved to the folder.
	VariableID []string `schema:"variableId,omitempty"`

	// The tags to be moved to the folder.
	TagID []string `schema:"tagId,omitempty"`

	// The triggers to be moved to the folder.
	TriggerID []string `schema:"triggerId,omitempty"`
}

// AccountsContainersTagsUpdateOptions holds the optional parameters of
// AccountsContainersTagsService.Update.
type AccountsContainersTagsUpdateOptions struct {
	// When provided, this fingerprint must match the fingerprint of the tag in
	// storage.
	Fingerprint string `schema:"fingerprint,omitempty"`
}

// AccountsContainersTriggersUpdateOptions holds the optional parameters of
// AccountsContainersTriggersService.Update.
type AccountsContainersTriggersUpdateOptions struct {
	// When provided, this fingerprint must match the fingerprint of the trigger
	// in storage.
	Fingerprint string `schema:"fingerprint,omitempty"`
}

// AccountsContainersVariablesUpdateOptions holds the optional parameters of
// AccountsContainersVariablesService.Update.
type AccountsContainersVariablesUpdateOptions struct {
	// When provided, this fingerprint must match the fingerprint of the
	// variable in storage.
	Fingerprint string `schema:"fingerprint,omitempty"`
}

// AccountsContainersVersionsListOptions holds the optional parameters of
// AccountsContainersVersionsService.List.
type AccountsContainersVersionsListOptions struct {
	// Retrieve headers only when true.
	Headers *bool `schema:"headers,omitempty"`
}

// AccountsContainersVersionsPublishOptions holds the optional parameters of
// AccountsContainersVersionsService.Publish.
type AccountsContainersVersionsPublishOptions struct {
	// When provided, this fingerprint must match the fingerprint of the
	// container version in storage.
	Fingerprint string `schema:"fingerprint,omitempty"`
}

// AccountsContainersVersionsUpdateOptions holds the optional parameters of
// AccountsContainersVersionsService.Update.
type AccountsContainersVersionsUpdateOptions struct {
	// When provided, this fingerprint must match the fingerprint of the
	// container version in storage.
	Fingerprint string `schema:"fingerprint,omitempty"`
}
