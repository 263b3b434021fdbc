package storage

import (
	"sync"

	"github.com/broady/restbind/model"
)

// Bucket is a Cloud Storage bucket.
type Bucket struct {
	Acl              []*BucketAccessControl `json:"acl,omitempty"`
	Cors             []*BucketCors          `json:"cors,omitempty"`
	DefaultObjectAcl []*ObjectAccessControl `json:"defaultObjectAcl,omitempty"`
	Etag             string                 `json:"etag,omitempty"`
	ID               string                 `json:"id,omitempty"`
	Kind             string                 `json:"kind,omitempty"`
	Lifecycle        *BucketLifecycle       `json:"lifecycle,omitempty"`
	Location         string                 `json:"location,omitempty"`
	Logging          *BucketLogging         `json:"logging,omitempty"`
	Metageneration   *int64                 `json:"metageneration,omitempty,string"`
	Name             string                 `json:"name,omitempty"`
	Owner            *BucketOwner           `json:"owner,omitempty"`
	ProjectNumber    *uint64                `json:"projectNumber,omitempty,string"`
	SelfLink         string                 `json:"selfLink,omitempty"`
	StorageClass     string                 `json:"storageClass,omitempty"`
	TimeCreated      string                 `json:"timeCreated,omitempty"`
	Updated          string                 `json:"updated,omitempty"`
	Versioning       *BucketVersioning      `json:"versioning,omitempty"`
	Website          *BucketWebsite         `json:"website,omitempty"`
}

// BucketAccessControl is an access-control entry on a bucket.
type BucketAccessControl struct {
	Bucket      string                          `json:"bucket,omitempty"`
	Domain      string                          `json:"domain,omitempty"`
	Email       string                          `json:"email,omitempty"`
	Entity      string                          `json:"entity,omitempty"`
	EntityID    string                          `json:"entityId,omitempty"`
	Etag        string                          `json:"etag,omitempty"`
	ID          string                          `json:"id,omitempty"`
	Kind        string                          `json:"kind,omitempty"`
	ProjectTeam *BucketAccessControlProjectTeam `json:"projectTeam,omitempty"`
	Role        string                          `json:"role,omitempty"`
	SelfLink    string                          `json:"selfLink,omitempty"`
}

type BucketAccessControlProjectTeam struct {
	ProjectNumber string `json:"projectNumber,omitempty"`
	Team          string `json:"team,omitempty"`
}

type BucketAccessControls struct {
	Items []*BucketAccessControl `json:"items,omitempty"`
	Kind  string                 `json:"kind,omitempty"`
}

func (b *BucketAccessControls) CollectionKey() string {
	return "items"
}

type BucketCors struct {
	MaxAgeSeconds  *int64   `json:"maxAgeSeconds,omitempty"`
	Method         []string `json:"method,omitempty"`
	Origin         []string `json:"origin,omitempty"`
	ResponseHeader []string `json:"responseHeader,omitempty"`
}

type BucketLifecycle struct {
	Rule []*BucketLifecycleRule `json:"rule,omitempty"`
}

type BucketLifecycleRule struct {
	Action    *BucketLifecycleRuleAction    `json:"action,omitempty"`
	Condition *BucketLifecycleRuleCondition `json:"condition,omitempty"`
}

type BucketLifecycleRuleAction struct {
	Type string `json:"type,omitempty"`
}

type BucketLifecycleRuleCondition struct {
	Age              *int64 `json:"age,omitempty"`
	CreatedBefore    string `json:"createdBefore,omitempty"`
	IsLive           *bool  `json:"isLive,omitempty"`
	NumNewerVersions *int64 `json:"numNewerVersions,omitempty"`
}

type BucketLogging struct {
	LogBucket       string `json:"logBucket,omitempty"`
	LogObjectPrefix string `json:"logObjectPrefix,omitempty"`
}

type BucketOwner struct {
	Entity   string `json:"entity,omitempty"`
	EntityID string `json:"entityId,omitempty"`
}

type BucketVersioning struct {
	Enabled *bool `json:"enabled,omitempty"`
}

type BucketWebsite struct {
	MainPageSuffix string `json:"mainPageSuffix,omitempty"`
	NotFoundPage   string `json:"notFoundPage,omitempty"`
}

type Buckets struct {
	Items         []*Bucket `json:"items,omitempty"`
	Kind          string    `json:"kind,omitempty"`
	NextPageToken string    `json:"nextPageToken,omitempty"`
}

// ContinuationToken returns the token of the next page.
func (b *Buckets) ContinuationToken() string {
	if b == nil {
		return ""
	}
	return b.NextPageToken
}

func (b *Buckets) CollectionKey() string {
	return "items"
}

// Channel is a notification channel opened by Objects.WatchAll and closed by
// Channels.Stop.
type Channel struct {
	Address     string            `json:"address,omitempty"`
	Expiration  *int64            `json:"expiration,omitempty,string"`
	ID          string            `json:"id,omitempty"`
	Kind        string            `json:"kind,omitempty"`
	Params      map[string]string `json:"params,omitempty"`
	Payload     *bool             `json:"payload,omitempty"`
	ResourceID  string            `json:"resourceId,omitempty"`
	ResourceURI string            `json:"resourceUri,omitempty"`
	Token       string            `json:"token,omitempty"`
	Type        string            `json:"type,omitempty"`
}

// ComposeRequest lists the source objects concatenated by Objects.Compose.
type ComposeRequest struct {
	Destination   *Object                        `json:"destination,omitempty"`
	Kind          string                         `json:"kind,omitempty"`
	SourceObjects []*ComposeRequestSourceObjects `json:"sourceObjects,omitempty" validate:"required,dive"`
}

type ComposeRequestSourceObjects struct {
	Generation          *int64                                          `json:"generation,omitempty,string"`
	Name                string                                          `json:"name,omitempty" validate:"required"`
	ObjectPreconditions *ComposeRequestSourceObjectsObjectPreconditions `json:"objectPreconditions,omitempty"`
}

type ComposeRequestSourceObjectsObjectPreconditions struct {
	IfGenerationMatch *int64 `json:"ifGenerationMatch,omitempty,string"`
}

// Object is the metadata of a stored object.
type Object struct {
	Acl                []*ObjectAccessControl `json:"acl,omitempty"`
	Bucket             string                 `json:"bucket,omitempty"`
	CacheControl       string                 `json:"cacheControl,omitempty"`
	ComponentCount     *int64                 `json:"componentCount,omitempty"`
	ContentDisposition string                 `json:"contentDisposition,omitempty"`
	ContentEncoding    string                 `json:"contentEncoding,omitempty"`
	ContentLanguage    string                 `json:"contentLanguage,omitempty"`
	ContentType        string                 `json:"contentType,omitempty"`
	Crc32c             string                 `json:"crc32c,omitempty"`
	Etag               string                 `json:"etag,omitempty"`
	Generation         *int64                 `json:"generation,omitempty,string"`
	ID                 string                 `json:"id,omitempty"`
	Kind               string                 `json:"kind,omitempty"`
	Md5Hash            string                 `json:"md5Hash,omitempty"`
	MediaLink          string                 `json:"mediaLink,omitempty"`
	Metadata           map[string]string      `json:"metadata,omitempty"`
	Metageneration     *int64                 `json:"metageneration,omitempty,string"`
	Name               string                 `json:"name,omitempty"`
	Owner              *ObjectOwner           `json:"owner,omitempty"`
	SelfLink           string                 `json:"selfLink,omitempty"`
	Size               *uint64                `json:"size,omitempty,string"`
	StorageClass       string                 `json:"storageClass,omitempty"`
	TimeCreated        string                 `json:"timeCreated,omitempty"`
	TimeDeleted        string                 `json:"timeDeleted,omitempty"`
	Updated            string                 `json:"updated,omitempty"`
}

// ObjectAccessControl is an access-control entry on an object, or a default
// entry applied to new objects in a bucket.
type ObjectAccessControl struct {
	Bucket      string                          `json:"bucket,omitempty"`
	Domain      string                          `json:"domain,omitempty"`
	Email       string                          `json:"email,omitempty"`
	Entity      string                          `json:"entity,omitempty"`
	EntityID    string                          `json:"entityId,omitempty"`
	Etag        string                          `json:"etag,omitempty"`
	Generation  *int64                          `json:"generation,omitempty,string"`
	ID          string                          `json:"id,omitempty"`
	Kind        string                          `json:"kind,omitempty"`
	Object      string                          `json:"object,omitempty"`
	ProjectTeam *ObjectAccessControlProjectTeam `json:"projectTeam,omitempty"`
	Role        string                          `json:"role,omitempty"`
	SelfLink    string                          `json:"selfLink,omitempty"`
}

type ObjectAccessControlProjectTeam struct {
	ProjectNumber string `json:"projectNumber,omitempty"`
	Team          string `json:"team,omitempty"`
}

type ObjectAccessControls struct {
	Items []*ObjectAccessControl `json:"items,omitempty"`
	Kind  string                 `json:"kind,omitempty"`
}

func (o *ObjectAccessControls) CollectionKey() string {
	return "items"
}

type ObjectOwner struct {
	Entity   string `json:"entity,omitempty"`
	EntityID string `json:"entityId,omitempty"`
}

type Objects struct {
	Items         []*Object `json:"items,omitempty"`
	Kind          string    `json:"kind,omitempty"`
	NextPageToken string    `json:"nextPageToken,omitempty"`
	Prefixes      []string  `json:"prefixes,omitempty"`
}

func (o *Objects) ContinuationToken() string {
	if o == nil {
		return ""
	}
	return o.NextPageToken
}

func (o *Objects) CollectionKey() string {
	return "items"
}

// RewriteResponse reports the progress of a rewrite. Calls are repeated with
// RewriteToken until Done is set.
type RewriteResponse struct {
	Done                *bool   `json:"done,omitempty"`
	Kind                string  `json:"kind,omitempty"`
	ObjectSize          *uint64 `json:"objectSize,omitempty,string"`
	Resource            *Object `json:"resource,omitempty"`
	RewriteToken        string  `json:"rewriteToken,omitempty"`
	TotalBytesRewritten *uint64 `json:"totalBytesRewritten,omitempty,string"`
}

var models = sync.OnceValue(func() *model.Registry {
	return model.NewRegistry().
		Add("Bucket", Bucket{}).
		Add("BucketAccessControl", BucketAccessControl{}).
		Add("BucketAccessControlProjectTeam", BucketAccessControlProjectTeam{}).
		Add("BucketAccessControls", BucketAccessControls{}).
		Add("BucketCors", BucketCors{}).
		Add("BucketLifecycle", BucketLifecycle{}).
		Add("BucketLifecycleRule", BucketLifecycleRule{}).
		Add("BucketLifecycleRuleAction", BucketLifecycleRuleAction{}).
		Add("BucketLifecycleRuleCondition", BucketLifecycleRuleCondition{}).
		Add("BucketLogging", BucketLogging{}).
		Add("BucketOwner", BucketOwner{}).
		Add("BucketVersioning", BucketVersioning{}).
		Add("BucketWebsite", BucketWebsite{}).
		Add("Buckets", Buckets{}).
		Add("Channel", Channel{}).
		Add("ComposeRequest", ComposeRequest{}).
		Add("ComposeRequestSourceObjects", ComposeRequestSourceObjects{}).
		Add("ComposeRequestSourceObjectsObjectPreconditions", ComposeRequestSourceObjectsObjectPreconditions{}).
		Add("Object", Object{}).
		Add("ObjectAccessControl", ObjectAccessControl{}).
		Add("ObjectAccessControlProjectTeam", ObjectAccessControlProjectTeam{}).
		Add("ObjectAccessControls", ObjectAccessControls{}).
		Add("ObjectOwner", ObjectOwner{}).
		Add("Objects", Objects{}).
		Add("RewriteResponse", RewriteResponse{})
})
