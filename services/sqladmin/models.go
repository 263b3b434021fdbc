package sqladmin

import (
	"sync"

	"github.com/broady/restbind/model"
)

type AclEntry struct {
	ExpirationTime string `json:"expirationTime,omitempty"`
	Kind           string `json:"kind,omitempty"`
	Name           string `json:"name,omitempty"`
	Value          string `json:"value,omitempty"`
}

type BackupConfiguration struct {
	BinaryLogEnabled *bool  `json:"binaryLogEnabled,omitempty"`
	Enabled          *bool  `json:"enabled,omitempty"`
	Kind             string `json:"kind,omitempty"`
	StartTime        string `json:"startTime,omitempty"`
}

type BackupRun struct {
	EndTime         string          `json:"endTime,omitempty"`
	EnqueuedTime    string          `json:"enqueuedTime,omitempty"`
	Error           *OperationError `json:"error,omitempty"`
	ID              *int64          `json:"id,omitempty,string"`
	Instance        string          `json:"instance,omitempty"`
	Kind            string          `json:"kind,omitempty"`
	SelfLink        string          `json:"selfLink,omitempty"`
	StartTime       string          `json:"startTime,omitempty"`
	Status          string          `json:"status,omitempty"`
	WindowStartTime string          `json:"windowStartTime,omitempty"`
}

type BackupRunsListResponse struct {
	Items         []*BackupRun `json:"items,omitempty"`
	Kind          string       `json:"kind,omitempty"`
	NextPageToken string       `json:"nextPageToken,omitempty"`
}

// ContinuationToken returns the token of the next page.
func (b *BackupRunsListResponse) ContinuationToken() string {
	if b == nil {
		return ""
	}
	return b.NextPageToken
}

func (b *BackupRunsListResponse) CollectionKey() string {
	return "items"
}

type BinLogCoordinates struct {
	BinLogFileName string `json:"binLogFileName,omitempty"`
	BinLogPosition *int64 `json:"binLogPosition,omitempty,string"`
	Kind           string `json:"kind,omitempty"`
}

type CloneContext struct {
	BinLogCoordinates       *BinLogCoordinates `json:"binLogCoordinates,omitempty"`
	DestinationInstanceName string             `json:"destinationInstanceName,omitempty"`
	Kind                    string             `json:"kind,omitempty"`
}

type Database struct {
	Charset   string `json:"charset,omitempty"`
	Collation string `json:"collation,omitempty"`
	Etag      string `json:"etag,omitempty"`
	Instance  string `json:"instance,omitempty"`
	Kind      string `json:"kind,omitempty"`
	Name      string `json:"name,omitempty" validate:"omitempty,max=64"`
	Project   string `json:"project,omitempty"`
	SelfLink  string `json:"selfLink,omitempty"`
}

type DatabaseFlags struct {
	Name  string `json:"name,omitempty"`
	Value string `json:"value,omitempty"`
}

// DatabaseInstance is a Cloud SQL instance resource.
type DatabaseInstance struct {
	CurrentDiskSize            *int64                   `json:"currentDiskSize,omitempty,string"`
	DatabaseVersion            string                   `json:"databaseVersion,omitempty"`
	Etag                       string                   `json:"etag,omitempty"`
	InstanceType               string                   `json:"instanceType,omitempty"`
	IPAddresses                []*IpMapping             `json:"ipAddresses,omitempty"`
	Ipv6Address                string                   `json:"ipv6Address,omitempty"`
	Kind                       string                   `json:"kind,omitempty"`
	MasterInstanceName         string                   `json:"masterInstanceName,omitempty"`
	MaxDiskSize                *int64                   `json:"maxDiskSize,omitempty,string"`
	Name                       string                   `json:"name,omitempty"`
	OnPremisesConfiguration    *OnPremisesConfiguration `json:"onPremisesConfiguration,omitempty"`
	Project                    string                   `json:"project,omitempty"`
	Region                     string                   `json:"region,omitempty"`
	ReplicaConfiguration       *ReplicaConfiguration    `json:"replicaConfiguration,omitempty"`
	ReplicaNames               []string                 `json:"replicaNames,omitempty"`
	SelfLink                   string                   `json:"selfLink,omitempty"`
	ServerCaCert               *SslCert                 `json:"serverCaCert,omitempty"`
	ServiceAccountEmailAddress string                   `json:"serviceAccountEmailAddress,omitempty"`
	Settings                   *Settings                `json:"settings,omitempty"`
	State                      string                   `json:"state,omitempty"`
}

type DatabasesListResponse struct {
	Items []*Database `json:"items,omitempty"`
	Kind  string      `json:"kind,omitempty"`
}

func (d *DatabasesListResponse) CollectionKey() string {
	return "items"
}

type ExportContext struct {
	CsvExportOptions *ExportContextCsvExportOptions `json:"csvExportOptions,omitempty"`
	Databases        []string                       `json:"databases,omitempty"`
	FileType         string                         `json:"fileType,omitempty"`
	Kind             string                         `json:"kind,omitempty"`
	SqlExportOptions *ExportContextSqlExportOptions `json:"sqlExportOptions,omitempty"`
	URI              string                         `json:"uri,omitempty"`
}

type ExportContextCsvExportOptions struct {
	SelectQuery string `json:"selectQuery,omitempty"`
}

type ExportContextSqlExportOptions struct {
	SchemaOnly *bool    `json:"schemaOnly,omitempty"`
	Tables     []string `json:"tables,omitempty"`
}

type FailoverContext struct {
	Kind            string `json:"kind,omitempty"`
	SettingsVersion *int64 `json:"settingsVersion,omitempty,string"`
}

type Flag struct {
	AllowedStringValues []string `json:"allowedStringValues,omitempty"`
	AppliesTo           []string `json:"appliesTo,omitempty"`
	Kind                string   `json:"kind,omitempty"`
	MaxValue            *int64   `json:"maxValue,omitempty,string"`
	MinValue            *int64   `json:"minValue,omitempty,string"`
	Name                string   `json:"name,omitempty"`
	Type                string   `json:"type,omitempty"`
}

type FlagsListResponse struct {
	Items []*Flag `json:"items,omitempty"`
	Kind  string  `json:"kind,omitempty"`
}

func (f *FlagsListResponse) CollectionKey() string {
	return "items"
}

type ImportContext struct {
	CsvImportOptions *ImportContextCsvImportOptions `json:"csvImportOptions,omitempty"`
	Database         string                         `json:"database,omitempty"`
	FileType         string                         `json:"fileType,omitempty"`
	Kind             string                         `json:"kind,omitempty"`
	URI              string                         `json:"uri,omitempty"`
}

type ImportContextCsvImportOptions struct {
	Columns []string `json:"columns,omitempty"`
	Table   string   `json:"table,omitempty"`
}

type InstancesCloneRequest struct {
	CloneContext *CloneContext `json:"cloneContext,omitempty"`
}

type InstancesExportRequest struct {
	ExportContext *ExportContext `json:"exportContext,omitempty"`
}

type InstancesFailoverRequest struct {
	FailoverContext *FailoverContext `json:"failoverContext,omitempty"`
}

type InstancesImportRequest struct {
	ImportContext *ImportContext `json:"importContext,omitempty"`
}

type InstancesListResponse struct {
	Items         []*DatabaseInstance `json:"items,omitempty"`
	Kind          string              `json:"kind,omitempty"`
	NextPageToken string              `json:"nextPageToken,omitempty"`
}

func (i *InstancesListResponse) ContinuationToken() string {
	if i == nil {
		return ""
	}
	return i.NextPageToken
}

func (i *InstancesListResponse) CollectionKey() string {
	return "items"
}

type InstancesRestoreBackupRequest struct {
	RestoreBackupContext *RestoreBackupContext `json:"restoreBackupContext,omitempty"`
}

type IpConfiguration struct {
	AuthorizedNetworks []*AclEntry `json:"authorizedNetworks,omitempty"`
	Ipv4Enabled        *bool       `json:"ipv4Enabled,omitempty"`
	RequireSsl         *bool       `json:"requireSsl,omitempty"`
}

type IpMapping struct {
	IPAddress    string `json:"ipAddress,omitempty"`
	TimeToRetire string `json:"timeToRetire,omitempty"`
}

type LocationPreference struct {
	FollowGaeApplication string `json:"followGaeApplication,omitempty"`
	Kind                 string `json:"kind,omitempty"`
	Zone                 string `json:"zone,omitempty"`
}

type MySqlReplicaConfiguration struct {
	CaCertificate           string `json:"caCertificate,omitempty"`
	ClientCertificate       string `json:"clientCertificate,omitempty"`
	ClientKey               string `json:"clientKey,omitempty"`
	ConnectRetryInterval    *int64 `json:"connectRetryInterval,omitempty"`
	DumpFilePath            string `json:"dumpFilePath,omitempty"`
	Kind                    string `json:"kind,omitempty"`
	MasterHeartbeatPeriod   *int64 `json:"masterHeartbeatPeriod,omitempty,string"`
	Password                string `json:"password,omitempty"`
	SslCipher               string `json:"sslCipher,omitempty"`
	Username                string `json:"username,omitempty"`
	VerifyServerCertificate *bool  `json:"verifyServerCertificate,omitempty"`
}

type OnPremisesConfiguration struct {
	HostPort string `json:"hostPort,omitempty"`
	Kind     string `json:"kind,omitempty"`
}

// Operation is a long-running Cloud SQL operation. Only the fields relevant
// to the operation are populated.
type Operation struct {
	EndTime       string           `json:"endTime,omitempty"`
	Error         *OperationErrors `json:"error,omitempty"`
	ExportContext *ExportContext   `json:"exportContext,omitempty"`
	ImportContext *ImportContext   `json:"importContext,omitempty"`
	InsertTime    string           `json:"insertTime,omitempty"`
	Kind          string           `json:"kind,omitempty"`
	Name          string           `json:"name,omitempty"`
	OperationType string           `json:"operationType,omitempty"`
	SelfLink      string           `json:"selfLink,omitempty"`
	StartTime     string           `json:"startTime,omitempty"`
	Status        string           `json:"status,omitempty"`
	TargetID      string           `json:"targetId,omitempty"`
	TargetLink    string           `json:"targetLink,omitempty"`
	TargetProject string           `json:"targetProject,omitempty"`
	User          string           `json:"user,omitempty"`
}

type OperationError struct {
	Code    string `json:"code,omitempty"`
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message,omitempty"`
}

type OperationErrors struct {
	Errors []*OperationError `json:"errors,omitempty"`
	Kind   string            `json:"kind,omitempty"`
}

type OperationsListResponse struct {
	Items         []*Operation `json:"items,omitempty"`
	Kind          string       `json:"kind,omitempty"`
	NextPageToken string       `json:"nextPageToken,omitempty"`
}

func (o *OperationsListResponse) ContinuationToken() string {
	if o == nil {
		return ""
	}
	return o.NextPageToken
}

func (o *OperationsListResponse) CollectionKey() string {
	return "items"
}

type ReplicaConfiguration struct {
	FailoverTarget            *bool                      `json:"failoverTarget,omitempty"`
	Kind                      string                     `json:"kind,omitempty"`
	MysqlReplicaConfiguration *MySqlReplicaConfiguration `json:"mysqlReplicaConfiguration,omitempty"`
}

type RestoreBackupContext struct {
	BackupRunID *int64 `json:"backupRunId,omitempty,string"`
	InstanceID  string `json:"instanceId,omitempty"`
	Kind        string `json:"kind,omitempty"`
}

type Settings struct {
	ActivationPolicy            string               `json:"activationPolicy,omitempty"`
	AuthorizedGaeApplications   []string             `json:"authorizedGaeApplications,omitempty"`
	BackupConfiguration         *BackupConfiguration `json:"backupConfiguration,omitempty"`
	CrashSafeReplicationEnabled *bool                `json:"crashSafeReplicationEnabled,omitempty"`
	DataDiskSizeGb              *int64               `json:"dataDiskSizeGb,omitempty,string"`
	DatabaseFlags               []*DatabaseFlags     `json:"databaseFlags,omitempty"`
	DatabaseReplicationEnabled  *bool                `json:"databaseReplicationEnabled,omitempty"`
	IPConfiguration             *IpConfiguration     `json:"ipConfiguration,omitempty"`
	Kind                        string               `json:"kind,omitempty"`
	LocationPreference          *LocationPreference  `json:"locationPreference,omitempty"`
	PricingPlan                 string               `json:"pricingPlan,omitempty"`
	ReplicationType             string               `json:"replicationType,omitempty"`
	SettingsVersion             *int64               `json:"settingsVersion,omitempty,string"`
	Tier                        string               `json:"tier,omitempty"`
}

type SslCert struct {
	Cert             string `json:"cert,omitempty"`
	CertSerialNumber string `json:"certSerialNumber,omitempty"`
	CommonName       string `json:"commonName,omitempty"`
	CreateTime       string `json:"createTime,omitempty"`
	ExpirationTime   string `json:"expirationTime,omitempty"`
	Instance         string `json:"instance,omitempty"`
	Kind             string `json:"kind,omitempty"`
	SelfLink         string `json:"selfLink,omitempty"`
	Sha1Fingerprint  string `json:"sha1Fingerprint,omitempty"`
}

type SslCertDetail struct {
	CertInfo       *SslCert `json:"certInfo,omitempty"`
	CertPrivateKey string   `json:"certPrivateKey,omitempty"`
}

// SslCertsCreateEphemeralRequest is the body of SslCerts.CreateEphemeral.
// The public key travels as "public_key" on the wire.
type SslCertsCreateEphemeralRequest struct {
	PublicKey string `json:"public_key,omitempty" validate:"required"`
}

type SslCertsInsertRequest struct {
	CommonName string `json:"commonName,omitempty" validate:"required"`
}

type SslCertsInsertResponse struct {
	ClientCert   *SslCertDetail `json:"clientCert,omitempty"`
	Kind         string         `json:"kind,omitempty"`
	ServerCaCert *SslCert       `json:"serverCaCert,omitempty"`
}

type SslCertsListResponse struct {
	Items []*SslCert `json:"items,omitempty"`
	Kind  string     `json:"kind,omitempty"`
}

func (s *SslCertsListResponse) CollectionKey() string {
	return "items"
}

// Tier is a Cloud SQL service tier. Its wire names keep the API casing
// ("RAM", "DiskQuota").
type Tier struct {
	DiskQuota *int64   `json:"DiskQuota,omitempty,string"`
	RAM       *int64   `json:"RAM,omitempty,string"`
	Kind      string   `json:"kind,omitempty"`
	Region    []string `json:"region,omitempty"`
	Tier      string   `json:"tier,omitempty"`
}

func (t *Tier) CollectionKey() string {
	return "region"
}

type TiersListResponse struct {
	Items []*Tier `json:"items,omitempty"`
	Kind  string  `json:"kind,omitempty"`
}

func (t *TiersListResponse) CollectionKey() string {
	return "items"
}

type User struct {
	Etag     string `json:"etag,omitempty"`
	Host     string `json:"host,omitempty"`
	Instance string `json:"instance,omitempty"`
	Kind     string `json:"kind,omitempty"`
	Name     string `json:"name,omitempty" validate:"omitempty,max=16"`
	Password string `json:"password,omitempty"`
	Project  string `json:"project,omitempty"`
}

type UsersListResponse struct {
	Items         []*User `json:"items,omitempty"`
	Kind          string  `json:"kind,omitempty"`
	NextPageToken string  `json:"nextPageToken,omitempty"`
}

func (u *UsersListResponse) ContinuationToken() string {
	if u == nil {
		return ""
	}
	return u.NextPageToken
}

func (u *UsersListResponse) CollectionKey() string {
	return "items"
}

var models = sync.OnceValue(func() *model.Registry {
	return model.NewRegistry().
		Add("AclEntry", AclEntry{}).
		Add("BackupConfiguration", BackupConfiguration{}).
		Add("BackupRun", BackupRun{}).
		Add("BackupRunsListResponse", BackupRunsListResponse{}).
		Add("BinLogCoordinates", BinLogCoordinates{}).
		Add("CloneContext", CloneContext{}).
		Add("Database", Database{}).
		Add("DatabaseFlags", DatabaseFlags{}).
		Add("DatabaseInstance", DatabaseInstance{}).
		Add("DatabasesListResponse", DatabasesListResponse{}).
		Add("ExportContext", ExportContext{}).
		Add("ExportContextCsvExportOptions", ExportContextCsvExportOptions{}).
		Add("ExportContextSqlExportOptions", ExportContextSqlExportOptions{}).
		Add("FailoverContext", FailoverContext{}).
		Add("Flag", Flag{}).
		Add("FlagsListResponse", FlagsListResponse{}).
		Add("ImportContext", ImportContext{}).
		Add("ImportContextCsvImportOptions", ImportContextCsvImportOptions{}).
		Add("InstancesCloneRequest", InstancesCloneRequest{}).
		Add("InstancesExportRequest", InstancesExportRequest{}).
		Add("InstancesFailoverRequest", InstancesFailoverRequest{}).
		Add("InstancesImportRequest", InstancesImportRequest{}).
		Add("InstancesListResponse", InstancesListResponse{}).
		Add("InstancesRestoreBackupRequest", InstancesRestoreBackupRequest{}).
		Add("IpConfiguration", IpConfiguration{}).
		Add("IpMapping", IpMapping{}).
		Add("LocationPreference", LocationPreference{}).
		Add("MySqlReplicaConfiguration", MySqlReplicaConfiguration{}).
		Add("OnPremisesConfiguration", OnPremisesConfiguration{}).
		Add("Operation", Operation{}).
		Add("OperationError", OperationError{}).
		Add("OperationErrors", OperationErrors{}).
		Add("OperationsListResponse", OperationsListResponse{}).
		Add("ReplicaConfiguration", ReplicaConfiguration{}).
		Add("RestoreBackupContext", RestoreBackupContext{}).
		Add("Settings", Settings{}).
		Add("SslCert", SslCert{}).
		Add("SslCertDetail", SslCertDetail{}).
		Add("SslCertsCreateEphemeralRequest", SslCertsCreateEphemeralRequest{}).
		Add("SslCertsInsertRequest", SslCertsInsertRequest{}).
		Add("SslCertsInsertResponse", SslCertsInsertResponse{}).
		Add("SslCertsListResponse", SslCertsListResponse{}).
		Add("Tier", Tier{}).
		Add("TiersListResponse", TiersListResponse{}).
		Add("User", User{}).
		Add("UsersListResponse", UsersListResponse{})
})
