package sqladmin

import (
	"context"
	"iter"

	"github.com/broady/restbind"
)

func newService(s *restbind.Service) *Service {
	return &Service{
		Service:    s,
		BackupRuns: newBackupRunsService(s),
		Databases:  newDatabasesService(s),
		Flags:      newFlagsService(s),
		Instances:  newInstancesService(s),
		Operations: newOperationsService(s),
		SslCerts:   newSslCertsService(s),
		Tiers:      newTiersService(s),
		Users:      newUsersService(s),
	}
}

// BackupRunsService calls the operations of the backupRuns resource.
type BackupRunsService struct {
	r *restbind.Resource
}

func newBackupRunsService(s *restbind.Service) *BackupRunsService {
	return &BackupRunsService{
		r: s.MustResource("backupRuns"),
	}
}

// Delete deletes the backup taken by a backup run.
func (s *BackupRunsService) Delete(ctx context.Context, project, instance string, id int64) (*Operation, error) {
	return restbind.Call[Operation](ctx, s.r, "delete", restbind.Params{
		"project":  project,
		"instance": instance,
		"id":       id,
	}, nil)
}

// Get retrieves a resource containing information about a backup run.
func (s *BackupRunsService) Get(ctx context.Context, project, instance string, id int64) (*BackupRun, error) {
	return restbind.Call[BackupRun](ctx, s.r, "get", restbind.Params{
		"project":  project,
		"instance": instance,
		"id":       id,
	}, nil)
}

// List lists all backup runs associated with a given instance and
// configuration in the reverse chronological order of the enqueued time.
func (s *BackupRunsService) List(ctx context.Context, project, instance string, opts *BackupRunsListOptions) (*BackupRunsListResponse, error) {
	return restbind.Call[BackupRunsListResponse](ctx, s.r, "list", restbind.Params{"project": project, "instance": instance}, opts)
}

// ListPages iterates over every page of List, starting at opts.PageToken.
func (s *BackupRunsService) ListPages(ctx context.Context, project, instance string, opts *BackupRunsListOptions) iter.Seq2[*BackupRunsListResponse, error] {
	return restbind.Pages(ctx, func(ctx context.Context, token string) (*BackupRunsListResponse, error) {
		var o BackupRunsListOptions
		if opts != nil {
			o = *opts
		}
		if token != "" {
			o.PageToken = token
		}
		return s.List(ctx, project, instance, &o)
	})
}

// DatabasesService calls the operations of the databases resource.
type DatabasesService struct {
	r *restbind.Resource
}

func newDatabasesService(s *restbind.Service) *DatabasesService {
	return &DatabasesService{
		r: s.MustResource("databases"),
	}
}

// Delete deletes a resource containing information about a database inside a
// Cloud SQL instance.
func (s *DatabasesService) Delete(ctx context.Context, project, instance, database string) (*Operation, error) {
	return restbind.Call[Operation](ctx, s.r, "delete", restbind.Params{
		"project":  project,
		"instance": instance,
		"database": database,
	}, nil)
}

// Get retrieves a resource containing information about a database inside a
// Cloud SQL instance.
func (s *DatabasesService) Get(ctx context.Context, project, instance, database string) (*Database, error) {
	return restbind.Call[Database](ctx, s.r, "get", restbind.Params{
		"project":  project,
		"instance": instance,
		"database": database,
	}, nil)
}

// Insert inserts a resource containing information about a database inside a
// Cloud SQL instance.
func (s *DatabasesService) Insert(ctx context.Context, project, instance string, body *Database) (*Operation, error) {
	return restbind.Call[Operation](ctx, s.r, "insert", restbind.Params{
		"project":         project,
		"instance":        instance,
		restbind.PostBody: body,
	}, nil)
}

// List lists databases in the specified Cloud SQL instance.
func (s *DatabasesService) List(ctx context.Context, project, instance string) (*DatabasesListResponse, error) {
	return restbind.Call[DatabasesListResponse](ctx, s.r, "list", restbind.Params{"project": project, "instance": instance}, nil)
}

// Patch updates a resource containing information about a database inside a
// Cloud SQL instance. This method supports patch semantics.
func (s *DatabasesService) Patch(ctx context.Context, project, instance, database string, body *Database) (*Operation, error) {
	return restbind.Call[Operation](ctx, s.r, "patch", restbind.Params{
		"project":         project,
		"instance":        instance,
		"database":        database,
		restbind.PostBody: body,
	}, nil)
}

// Update updates a resource containing information about a database inside a
// Cloud SQL instance.
func (s *DatabasesService) Update(ctx context.Context, project, instance, database string, body *Database) (*Operation, error) {
	return restbind.Call[Operation](ctx, s.r, "update", restbind.Params{
		"project":         project,
		"instance":        instance,
		"database":        database,
		restbind.PostBody: body,
	}, nil)
}

// FlagsService calls the operations of the flags resource.
type FlagsService struct {
	r *restbind.Resource
}

func newFlagsService(s *restbind.Service) *FlagsService {
	return &FlagsService{
		r: s.MustResource("flags"),
	}
}

// List lists all available database flags for Google Cloud SQL instances.
func (s *FlagsService) List(ctx context.Context) (*FlagsListResponse, error) {
	return restbind.Call[FlagsListResponse](ctx, s.r, "list", nil, nil)
}

// InstancesService calls the operations of the instances resource.
type InstancesService struct {
	r *restbind.Resource
}

func newInstancesService(s *restbind.Service) *InstancesService {
	return &InstancesService{
		r: s.MustResource("instances"),
	}
}

// Clone creates a Cloud SQL instance as a clone of the source instance.
func (s *InstancesService) Clone(ctx context.Context, project, instance string, body *InstancesCloneRequest) (*Operation, error) {
	return restbind.Call[Operation](ctx, s.r, "clone", restbind.Params{
		"project":         project,
		"instance":        instance,
		restbind.PostBody: body,
	}, nil)
}

// Delete deletes a Cloud SQL instance.
func (s *InstancesService) Delete(ctx context.Context, project, instance string) (*Operation, error) {
	return restbind.Call[Operation](ctx, s.r, "delete", restbind.Params{"project": project, "instance": instance}, nil)
}

// Export exports data from a Cloud SQL instance to a Google Cloud Storage
// bucket as a MySQL dump file.
func (s *InstancesService) Export(ctx context.Context, project, instance string, body *InstancesExportRequest) (*Operation, error) {
	return restbind.Call[Operation](ctx, s.r, "export", restbind.Params{
		"project":         project,
		"instance":        instance,
		restbind.PostBody: body,
	}, nil)
}

// Failover fails over the instance to its failover replica instance.
func (s *InstancesService) Failover(ctx context.Context, project, instance string, body *InstancesFailoverRequest) (*Operation, error) {
	return restbind.Call[Operation](ctx, s.r, "failover", restbind.Params{
		"project":         project,
		"instance":        instance,
		restbind.PostBody: body,
	}, nil)
}

// Get retrieves a resource containing information about a Cloud SQL
// instance.
func (s *InstancesService) Get(ctx context.Context, project, instance string) (*DatabaseInstance, error) {
	return restbind.Call[DatabaseInstance](ctx, s.r, "get", restbind.Params{"project": project, "instance": instance}, nil)
}

// Import imports data into a Cloud SQL instance from a MySQL dump file in
// Google Cloud Storage.
func (s *InstancesService) Import(ctx context.Context, project, instance string, body *InstancesImportRequest) (*Operation, error) {
	return restbind.Call[Operation](ctx, s.r, "import", restbind.Params{
		"project":         project,
		"instance":        instance,
		restbind.PostBody: body,
	}, nil)
}

// Insert creates a new Cloud SQL instance.
func (s *InstancesService) Insert(ctx context.Context, project string, body *DatabaseInstance) (*Operation, error) {
	return restbind.Call[Operation](ctx, s.r, "insert", restbind.Params{"project": project, restbind.PostBody: body}, nil)
}

// List lists instances under a given project in the alphabetical order of
// the instance name.
func (s *InstancesService) List(ctx context.Context, project string, opts *InstancesListOptions) (*InstancesListResponse, error) {
	return restbind.Call[InstancesListResponse](ctx, s.r, "list", restbind.Params{"project": project}, opts)
}

// ListPages iterates over every page of List, starting at opts.PageToken.
func (s *InstancesService) ListPages(ctx context.Context, project string, opts *InstancesListOptions) iter.Seq2[*InstancesListResponse, error] {
	return restbind.Pages(ctx, func(ctx context.Context, token string) (*InstancesListResponse, error) {
		var o InstancesListOptions
		if opts != nil {
			o = *opts
		}
		if token != "" {
			o.PageToken = token
		}
		return s.List(ctx, project, &o)
	})
}

// Patch updates settings of a Cloud SQL instance. Caution: This is not a
// partial update, so you must include values for all the settings that you
// want to retain. For partial updates, use patch.. This method supports
// patch semantics.
func (s *InstancesService) Patch(ctx context.Context, project, instance string, body *DatabaseInstance) (*Operation, error) {
	return restbind.Call[Operation](ctx, s.r, "patch", restbind.Params{
		"project":         project,
		"instance":        instance,
		restbind.PostBody: body,
	}, nil)
}

// PromoteReplica promotes the read replica instance to be a stand-alone
// Cloud SQL instance.
func (s *InstancesService) PromoteReplica(ctx context.Context, project, instance string) (*Operation, error) {
	return restbind.Call[Operation](ctx, s.r, "promoteReplica", restbind.Params{"project": project, "instance": instance}, nil)
}

// ResetSslConfig deletes all client certificates and generates a new server
// SSL certificate for the instance. The changes will not take effect until
// the instance is restarted. Existing instances without a server certificate
// will need to call this once to set a server certificate.
func (s *InstancesService) ResetSslConfig(ctx context.Context, project, instance string) (*Operation, error) {
	return restbind.Call[Operation](ctx, s.r, "resetSslConfig", restbind.Params{"project": project, "instance": instance}, nil)
}

// Restart restarts a Cloud SQL instance.
func (s *InstancesService) Restart(ctx context.Context, project, instance string) (*Operation, error) {
	return restbind.Call[Operation](ctx, s.r, "restart", restbind.Params{"project": project, "instance": instance}, nil)
}

// RestoreBackup restores a backup of a Cloud SQL instance.
func (s *InstancesService) RestoreBackup(ctx context.Context, project, instance string, body *InstancesRestoreBackupRequest) (*Operation, error) {
	return restbind.Call[Operation](ctx, s.r, "restoreBackup", restbind.Params{
		"project":         project,
		"instance":        instance,
		restbind.PostBody: body,
	}, nil)
}

// StartReplica starts the replication in the read replica instance.
func (s *InstancesService) StartReplica(ctx context.Context, project, instance string) (*Operation, error) {
	return restbind.Call[Operation](ctx, s.r, "startReplica", restbind.Params{"project": project, "instance": instance}, nil)
}

// StopReplica stops the replication in the read replica instance.
func (s *InstancesService) StopReplica(ctx context.Context, project, instance string) (*Operation, error) {
	return restbind.Call[Operation](ctx, s.r, "stopReplica", restbind.Params{"project": project, "instance": instance}, nil)
}

// Update updates settings of a Cloud SQL instance. Caution: This is not a
// partial update, so you must include values for all the settings that you
// want to retain. For partial updates, use patch.
func (s *InstancesService) Update(ctx context.Context, project, instance string, body *DatabaseInstance) (*Operation, error) {
	return restbind.Call[Operation](ctx, s.r, "update", restbind.Params{
		"project":         project,
		"instance":        instance,
		restbind.PostBody: body,
	}, nil)
}

// OperationsService calls the operations of the operations resource.
type OperationsService struct {
	r *restbind.Resource
}

func newOperationsService(s *restbind.Service) *OperationsService {
	return &OperationsService{
		r: s.MustResource("operations"),
	}
}

// Get retrieves an instance operation that has been performed on an
// instance.
func (s *OperationsService) Get(ctx context.Context, project, operation string) (*Operation, error) {
	return restbind.Call[Operation](ctx, s.r, "get", restbind.Params{"project": project, "operation": operation}, nil)
}

// List lists all instance operations that have been performed on the given
// Cloud SQL instance in the reverse chronological order of the start time.
func (s *OperationsService) List(ctx context.Context, project, instance string, opts *OperationsListOptions) (*OperationsListResponse, error) {
	return restbind.Call[OperationsListResponse](ctx, s.r, "list", restbind.Params{"project": project, "instance": instance}, opts)
}

// ListPages iterates over every page of List, starting at opts.PageToken.
func (s *OperationsService) ListPages(ctx context.Context, project, instance string, opts *OperationsListOptions) iter.Seq2[*OperationsListResponse, error] {
	return restbind.Pages(ctx, func(ctx context.Context, token string) (*OperationsListResponse, error) {
		var o OperationsListOptions
		if opts != nil {
			o = *opts
		}
		if token != "" {
			o.PageToken = token
		}
		return s.List(ctx, project, instance, &o)
	})
}

// SslCertsService calls the operations of the sslCerts resource.
type SslCertsService struct {
	r *restbind.Resource
}

func newSslCertsService(s *restbind.Service) *SslCertsService {
	return &SslCertsService{
		r: s.MustResource("sslCerts"),
	}
}

// CreateEphemeral generates a short-lived X509 certificate containing the
// provided public key and signed by a private key specific to the target
// instance. Users may use the certificate to authenticate as themselves when
// connecting to the database.
func (s *SslCertsService) CreateEphemeral(ctx context.Context, project, instance string, body *SslCertsCreateEphemeralRequest) (*SslCert, error) {
	return restbind.Call[SslCert](ctx, s.r, "createEphemeral", restbind.Params{
		"project":         project,
		"instance":        instance,
		restbind.PostBody: body,
	}, nil)
}

// Delete deletes the SSL certificate. The change will not take effect until
// the instance is restarted.
func (s *SslCertsService) Delete(ctx context.Context, project, instance, sha1Fingerprint string) (*Operation, error) {
	return restbind.Call[Operation](ctx, s.r, "delete", restbind.Params{
		"project":         project,
		"instance":        instance,
		"sha1Fingerprint": sha1Fingerprint,
	}, nil)
}

// Get retrieves a particular SSL certificate. Does not include the private
// key (required for usage). The private key must be saved from the response
// to initial creation.
func (s *SslCertsService) Get(ctx context.Context, project, instance, sha1Fingerprint string) (*SslCert, error) {
	return restbind.Call[SslCert](ctx, s.r, "get", restbind.Params{
		"project":         project,
		"instance":        instance,
		"sha1Fingerprint": sha1Fingerprint,
	}, nil)
}

// Insert creates an SSL certificate and returns it along with the private
// key and server certificate authority. The new certificate will not be
// usable until the instance is restarted.
func (s *SslCertsService) Insert(ctx context.Context, project, instance string, body *SslCertsInsertRequest) (*SslCertsInsertResponse, error) {
	return restbind.Call[SslCertsInsertResponse](ctx, s.r, "insert", restbind.Params{
		"project":         project,
		"instance":        instance,
		restbind.PostBody: body,
	}, nil)
}

// List lists all of the current SSL certificates for the instance.
func (s *SslCertsService) List(ctx context.Context, project, instance string) (*SslCertsListResponse, error) {
	return restbind.Call[SslCertsListResponse](ctx, s.r, "list", restbind.Params{"project": project, "instance": instance}, nil)
}

// TiersService calls the operations of the tiers resource.
type TiersService struct {
	r *restbind.Resource
}

func newTiersService(s *restbind.Service) *TiersService {
	return &TiersService{
		r: s.MustResource("tiers"),
	}
}

// List lists all available service tiers for Google Cloud SQL, for example
// D1, D2. For related information, see Pricing.
func (s *TiersService) List(ctx context.Context, project string) (*TiersListResponse, error) {
	return restbind.Call[TiersListResponse](ctx, s.r, "list", restbind.Params{"project": project}, nil)
}

// UsersService calls the operations of the users resource.
type UsersService struct {
	r *restbind.Resource
}

func newUsersService(s *restbind.Service) *UsersService {
	return &UsersService{
		r: s.MustResource("users"),
	}
}

// Delete deletes a user from a Cloud SQL instance.
func (s *UsersService) Delete(ctx context.Context, project, instance, host, name string) (*Operation, error) {
	return restbind.Call[Operation](ctx, s.r, "delete", restbind.Params{
		"project":  project,
		"instance": instance,
		"host":     host,
		"name":     name,
	}, nil)
}

// Insert creates a new user in a Cloud SQL instance.
func (s *UsersService) Insert(ctx context.Context, project, instance string, body *User) (*Operation, error) {
	return restbind.Call[Operation](ctx, s.r, "insert", restbind.Params{
		"project":         project,
		"instance":        instance,
		restbind.PostBody: body,
	}, nil)
}

// List lists users in the specified Cloud SQL instance.
func (s *UsersService) List(ctx context.Context, project, instance string) (*UsersListResponse, error) {
	return restbind.Call[UsersListResponse](ctx, s.r, "list", restbind.Params{"project": project, "instance": instance}, nil)
}

// Update updates an existing user in a Cloud SQL instance.
func (s *UsersService) Update(ctx context.Context, project, instance, host, name string, body *User) (*Operation, error) {
	return restbind.Call[Operation](ctx, s.r, "update", restbind.Params{
		"project":         project,
		"instance":        instance,
		"host":            host,
		"name":            name,
		restbind.PostBody: body,
	}, nil)
}

// BackupRunsListOptions holds the optional parameters of
// BackupRunsService.List.
type BackupRunsListOptions struct {
	// Maximum number of backup runs per response.
	MaxResults *int64 `schema:"maxResults,omitempty"`

	// A previously-returned page token representing part of the larger set of
	// results to view.
	PageToken string `schema:"pageToken,omitempty"`
}

// InstancesListOptions holds the optional parameters of
// InstancesService.List.
type InstancesListOptions struct {
	// A previously-returned page token representing part of the larger set of
	// results to view.
	PageToken string `schema:"pageToken,omitempty"`

	// The maximum number of results to return per response.
	MaxResults *int64 `schema:"maxResults,omitempty"`
}

// OperationsListOptions holds the optional parameters of
// OperationsService.List.
type OperationsListOptions struct {
	// Maximum number of operations per response.
	MaxResults *int64 `schema:"maxResults,omitempty"`

	// A previously-returned page token representing part of the larger set of
	// results to view.
	PageToken string `schema:"pageToken,omitempty"`
}
