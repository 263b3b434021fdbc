package storage

import (
	"context"
	"iter"

	"github.com/broady/restbind"
)

func newService(s *restbind.Service) *Service {
	return &Service{
		Service:                     s,
		BucketAccessControls:        newBucketAccessControlsService(s),
		Buckets:                     newBucketsService(s),
		Channels:                    newChannelsService(s),
		DefaultObjectAccessControls: newDefaultObjectAccessControlsService(s),
		ObjectAccessControls:        newObjectAccessControlsService(s),
		Objects:                     newObjectsService(s),
	}
}

// BucketAccessControlsService calls the operations of the
// bucketAccessControls resource.
type BucketAccessControlsService struct {
	r *restbind.Resource
}

func newBucketAccessControlsService(s *restbind.Service) *BucketAccessControlsService {
	return &BucketAccessControlsService{
		r: s.MustResource("bucketAccessControls"),
	}
}

// Delete permanently deletes the ACL entry for the specified entity on the
// specified bucket.
func (s *BucketAccessControlsService) Delete(ctx context.Context, bucket, entity string) error {
	return restbind.Exec(ctx, s.r, "delete", restbind.Params{"bucket": bucket, "entity": entity}, nil)
}

// Get returns the ACL entry for the specified entity on the specified
// bucket.
func (s *BucketAccessControlsService) Get(ctx context.Context, bucket, entity string) (*BucketAccessControl, error) {
	return restbind.Call[BucketAccessControl](ctx, s.r, "get", restbind.Params{"bucket": bucket, "entity": entity}, nil)
}

// Insert creates a new ACL entry on the specified bucket.
func (s *BucketAccessControlsService) Insert(ctx context.Context, bucket string, body *BucketAccessControl) (*BucketAccessControl, error) {
	return restbind.Call[BucketAccessControl](ctx, s.r, "insert", restbind.Params{"bucket": bucket, restbind.PostBody: body}, nil)
}

// List retrieves ACL entries on the specified bucket.
func (s *BucketAccessControlsService) List(ctx context.Context, bucket string) (*BucketAccessControls, error) {
	return restbind.Call[BucketAccessControls](ctx, s.r, "list", restbind.Params{"bucket": bucket}, nil)
}

// Patch updates an ACL entry on the specified bucket. This method supports
// patch semantics.
func (s *BucketAccessControlsService) Patch(ctx context.Context, bucket, entity string, body *BucketAccessControl) (*BucketAccessControl, error) {
	return restbind.Call[BucketAccessControl](ctx, s.r, "patch", restbind.Params{
		"bucket":          bucket,
		"entity":          entity,
		restbind.PostBody: body,
	}, nil)
}

// Update updates an ACL entry on the specified bucket.
func (s *BucketAccessControlsService) Update(ctx context.Context, bucket, entity string, body *BucketAccessControl) (*BucketAccessControl, error) {
	return restbind.Call[BucketAccessControl](ctx, s.r, "update", restbind.Params{
		"bucket":          bucket,
		"entity":          entity,
		restbind.PostBody: body,
	}, nil)
}

// BucketsService calls the operations of the buckets resource.
type BucketsService struct {
	r *restbind.Resource
}

func newBucketsService(s *restbind.Service) *BucketsService {
	return &BucketsService{
		r: s.MustResource("buckets"),
	}
}

// Delete permanently deletes an empty bucket.
func (s *BucketsService) Delete(ctx context.Context, bucket string, opts *BucketsDeleteOptions) error {
	return restbind.Exec(ctx, s.r, "delete", restbind.Params{"bucket": bucket}, opts)
}

// Get returns metadata for the specified bucket.
func (s *BucketsService) Get(ctx context.Context, bucket string, opts *BucketsGetOptions) (*Bucket, error) {
	return restbind.Call[Bucket](ctx, s.r, "get", restbind.Params{"bucket": bucket}, opts)
}

// Insert creates a new bucket.
func (s *BucketsService) Insert(ctx context.Context, project string, body *Bucket, opts *BucketsInsertOptions) (*Bucket, error) {
	return restbind.Call[Bucket](ctx, s.r, "insert", restbind.Params{"project": project, restbind.PostBody: body}, opts)
}

// List retrieves a list of buckets for a given project.
func (s *BucketsService) List(ctx context.Context, project string, opts *BucketsListOptions) (*Buckets, error) {
	return restbind.Call[Buckets](ctx, s.r, "list", restbind.Params{"project": project}, opts)
}

// ListPages iterates over every page of List, starting at opts.PageToken.
func (s *BucketsService) ListPages(ctx context.Context, project string, opts *BucketsListOptions) iter.Seq2[*Buckets, error] {
	return restbind.Pages(ctx, func(ctx context.Context, token string) (*Buckets, error) {
		var o BucketsListOptions
		if opts != nil {
			o = *opts
		}
		if token != "" {
			o.PageToken = token
		}
		return s.List(ctx, project, &o)
	})
}

// Patch updates a bucket. This method supports patch semantics.
func (s *BucketsService) Patch(ctx context.Context, bucket string, body *Bucket, opts *BucketsPatchOptions) (*Bucket, error) {
	return restbind.Call[Bucket](ctx, s.r, "patch", restbind.Params{"bucket": bucket, restbind.PostBody: body}, opts)
}

// Update updates a bucket.
func (s *BucketsService) Update(ctx context.Context, bucket string, body *Bucket, opts *BucketsUpdateOptions) (*Bucket, error) {
	return restbind.Call[Bucket](ctx, s.r, "update", restbind.Params{"bucket": bucket, restbind.PostBody: body}, opts)
}

// ChannelsService calls the operations of the channels resource.
type ChannelsService struct {
	r *restbind.Resource
}

func newChannelsService(s *restbind.Service) *ChannelsService {
	return &ChannelsService{
		r: s.MustResource("channels"),
	}
}

// Stop stops watching resources through this channel
func (s *ChannelsService) Stop(ctx context.Context, body *Channel) error {
	return restbind.Exec(ctx, s.r, "stop", restbind.Params{restbind.PostBody: body}, nil)
}

// DefaultObjectAccessControlsService calls the operations of the
// defaultObjectAccessControls resource.
type DefaultObjectAccessControlsService struct {
	r *restbind.Resource
}

func newDefaultObjectAccessControlsService(s *restbind.Service) *DefaultObjectAccessControlsService {
	return &DefaultObjectAccessControlsService{
		r: s.MustResource("defaultObjectAccessControls"),
	}
}

// Delete permanently deletes the default object ACL entry for the specified
// entity on the specified bucket.
func (s *DefaultObjectAccessControlsService) Delete(ctx context.Context, bucket, entity string) error {
	return restbind.Exec(ctx, s.r, "delete", restbind.Params{"bucket": bucket, "entity": entity}, nil)
}

// Get returns the default object ACL entry for the specified entity on the
// specified bucket.
func (s *DefaultObjectAccessControlsService) Get(ctx context.Context, bucket, entity string) (*ObjectAccessControl, error) {
	return restbind.Call[ObjectAccessControl](ctx, s.r, "get", restbind.Params{"bucket": bucket, "entity": entity}, nil)
}

// Insert creates a new default object ACL entry on the specified bucket.
func (s *DefaultObjectAccessControlsService) Insert(ctx context.Context, bucket string, body *ObjectAccessControl) (*ObjectAccessControl, error) {
	return restbind.Call[ObjectAccessControl](ctx, s.r, "insert", restbind.Params{"bucket": bucket, restbind.PostBody: body}, nil)
}

// List retrieves default object ACL entries on the specified bucket.
func (s *DefaultObjectAccessControlsService) List(ctx context.Context, bucket string, opts *DefaultObjectAccessControlsListOptions) (*ObjectAccessControls, error) {
	return restbind.Call[ObjectAccessControls](ctx, s.r, "list", restbind.Params{"bucket": bucket}, opts)
}

// Patch updates a default object ACL entry on the specified bucket. This
// method supports patch semantics.
func (s *DefaultObjectAccessControlsService) Patch(ctx context.Context, bucket, entity string, body *ObjectAccessControl) (*ObjectAccessControl, error) {
	return restbind.Call[ObjectAccessControl](ctx, s.r, "patch", restbind.Params{
		"bucket":          bucket,
		"entity":          entity,
		restbind.PostBody: body,
	}, nil)
}

// Update updates a default object ACL entry on the specified bucket.
func (s *DefaultObjectAccessControlsService) Update(ctx context.Context, bucket, entity string, body *ObjectAccessControl) (*ObjectAccessControl, error) {
	return restbind.Call[ObjectAccessControl](ctx, s.r, "update", restbind.Params{
		"bucket":          bucket,
		"entity":          entity,
		restbind.PostBody: body,
	}, nil)
}

// ObjectAccessControlsService calls the operations of the
// objectAccessControls resource.
type ObjectAccessControlsService struct {
	r *restbind.Resource
}

func newObjectAccessControlsService(s *restbind.Service) *ObjectAccessControlsService {
	return &ObjectAccessControlsService{
		r: s.MustResource("objectAccessControls"),
	}
}

// Delete permanently deletes the ACL entry for the specified entity on the
// specified object.
func (s *ObjectAccessControlsService) Delete(ctx context.Context, bucket, object, entity string, opts *ObjectAccessControlsDeleteOptions) error {
	return restbind.Exec(ctx, s.r, "delete", restbind.Params{
		"bucket": bucket,
		"object": object,
		"entity": entity,
	}, opts)
}

// Get returns the ACL entry for the specified entity on the specified
// object.
func (s *ObjectAccessControlsService) Get(ctx context.Context, bucket, object, entity string, opts *ObjectAccessControlsGetOptions) (*ObjectAccessControl, error) {
	return restbind.Call[ObjectAccessControl](ctx, s.r, "get", restbind.Params{
		"bucket": bucket,
		"object": object,
		"entity": entity,
	}, opts)
}

// Insert creates a new ACL entry on the specified object.
func (s *ObjectAccessControlsService) Insert(ctx context.Context, bucket, object string, body *ObjectAccessControl, opts *ObjectAccessControlsInsertOptions) (*ObjectAccessControl, error) {
	return restbind.Call[ObjectAccessControl](ctx, s.r, "insert", restbind.Params{
		"bucket":          bucket,
		"object":          object,
		restbind.PostBody: body,
	}, opts)
}

// List retrieves ACL entries on the specified object.
func (s *ObjectAccessControlsService) List(ctx context.Context, bucket, object string, opts *ObjectAccessControlsListOptions) (*ObjectAccessControls, error) {
	return restbind.Call[ObjectAccessControls](ctx, s.r, "list", restbind.Params{"bucket": bucket, "object": object}, opts)
}

// Patch updates an ACL entry on the specified object. This method supports
// patch semantics.
func (s *ObjectAccessControlsService) Patch(ctx context.Context, bucket, object, entity string, body *ObjectAccessControl, opts *ObjectAccessControlsPatchOptions) (*ObjectAccessControl, error) {
	return restbind.Call[ObjectAccessControl](ctx, s.r, "patch", restbind.Params{
		"bucket":          bucket,
		"object":          object,
		"entity":          entity,
		restbind.PostBody: body,
	}, opts)
}

// Update updates an ACL entry on the specified object.
func (s *ObjectAccessControlsService) Update(ctx context.Context, bucket, object, entity string, body *ObjectAccessControl, opts *ObjectAccessControlsUpdateOptions) (*ObjectAccessControl, error) {
	return restbind.Call[ObjectAccessControl](ctx, s.r, "update", restbind.Params{
		"bucket":          bucket,
		"object":          object,
		"entity":          entity,
		restbind.PostBody: body,
	}, opts)
}

// ObjectsService calls the operations of the objects resource.
type ObjectsService struct {
	r *restbind.Resource
}

func newObjectsService(s *restbind.Service) *ObjectsService {
	return &ObjectsService{
		r: s.MustResource("objects"),
	}
}

// Compose concatenates a list of existing objects into a new object in the
// same bucket.
func (s *ObjectsService) Compose(ctx context.Context, destinationBucket, destinationObject string, body *ComposeRequest, opts *ObjectsComposeOptions) (*Object, error) {
	return restbind.Call[Object](ctx, s.r, "compose", restbind.Params{
		"destinationBucket": destinationBucket,
		"destinationObject": destinationObject,
		restbind.PostBody:   body,
	}, opts)
}

// Copy copies a source object to a destination object. Optionally overrides
// metadata.
func (s *ObjectsService) Copy(ctx context.Context, sourceBucket, sourceObject, destinationBucket, destinationObject string, body *Object, opts *ObjectsCopyOptions) (*Object, error) {
	return restbind.Call[Object](ctx, s.r, "copy", restbind.Params{
		"sourceBucket":      sourceBucket,
		"sourceObject":      sourceObject,
		"destinationBucket": destinationBucket,
		"destinationObject": destinationObject,
		restbind.PostBody:   body,
	}, opts)
}

// Delete deletes an object and its metadata. Deletions are permanent if
// versioning is not enabled for the bucket, or if the generation parameter
// is used.
func (s *ObjectsService) Delete(ctx context.Context, bucket, object string, opts *ObjectsDeleteOptions) error {
	return restbind.Exec(ctx, s.r, "delete", restbind.Params{"bucket": bucket, "object": object}, opts)
}

// Get retrieves an object or its metadata.
func (s *ObjectsService) Get(ctx context.Context, bucket, object string, opts *ObjectsGetOptions) (*Object, error) {
	return restbind.Call[Object](ctx, s.r, "get", restbind.Params{"bucket": bucket, "object": object}, opts)
}

// Insert stores a new object and metadata.
func (s *ObjectsService) Insert(ctx context.Context, bucket string, body *Object, opts *ObjectsInsertOptions) (*Object, error) {
	return restbind.Call[Object](ctx, s.r, "insert", restbind.Params{"bucket": bucket, restbind.PostBody: body}, opts)
}

// List retrieves a list of objects matching the criteria.
func (s *ObjectsService) List(ctx context.Context, bucket string, opts *ObjectsListOptions) (*Objects, error) {
	return restbind.Call[Objects](ctx, s.r, "list", restbind.Params{"bucket": bucket}, opts)
}

// ListPages iterates over every page of List, starting at opts.PageToken.
func (s *ObjectsService) ListPages(ctx context.Context, bucket string, opts *ObjectsListOptions) iter.Seq2[*Objects, error] {
	return restbind.Pages(ctx, func(ctx context.Context, token string) (*Objects, error) {
		var o ObjectsListOptions
		if opts != nil {
			o = *opts
		}
		if token != "" {
			o.PageToken = token
		}
		return s.List(ctx, bucket, &o)
	})
}

// Patch updates an object's metadata. This method supports patch semantics.
func (s *ObjectsService) Patch(ctx context.Context, bucket, object string, body *Object, opts *ObjectsPatchOptions) (*Object, error) {
	return restbind.Call[Object](ctx, s.r, "patch", restbind.Params{
		"bucket":          bucket,
		"object":          object,
		restbind.PostBody: body,
	}, opts)
}

// Rewrite rewrites a source object to a destination object. Optionally
// overrides metadata.
func (s *ObjectsService) Rewrite(ctx context.Context, sourceBucket, sourceObject, destinationBucket, destinationObject string, body *Object, opts *ObjectsRewriteOptions) (*RewriteResponse, error) {
	return restbind.Call[RewriteResponse](ctx, s.r, "rewrite", restbind.Params{
		"sourceBucket":      sourceBucket,
		"sourceObject":      sourceObject,
		"destinationBucket": destinationBucket,
		"destinationObject": destinationObject,
		restbind.PostBody:   body,
	}, opts)
}

// Update updates an object's metadata.
func (s *ObjectsService) Update(ctx context.Context, bucket, object string, body *Object, opts *ObjectsUpdateOptions) (*Object, error) {
	return restbind.Call[Object](ctx, s.r, "update", restbind.Params{
		"bucket":          bucket,
		"object":          object,
		restbind.PostBody: body,
	}, opts)
}

// WatchAll watches for changes on all objects in a bucket.
func (s *ObjectsService) WatchAll(ctx context.Context, bucket string, body *Channel, opts *ObjectsWatchAllOptions) (*Channel, error) {
	return restbind.Call[Channel](ctx, s.r, "watchAll", restbind.Params{"bucket": bucket, restbind.PostBody: body}, opts)
}

// BucketsDeleteOptions holds the optional parameters of
// BucketsService.Delete.
type BucketsDeleteOptions struct {
	// If set, only deletes the bucket if its metageneration matches this value.
	IfMetagenerationMatch *int64 `schema:"ifMetagenerationMatch,omitempty"`

	// If set, only deletes the bucket if its metageneration does not match this
	// value.
	IfMetagenerationNotMatch *int64 `schema:"ifMetagenerationNotMatch,omitempty"`
}

// BucketsGetOptions holds the optional parameters of BucketsService.Get.
type BucketsGetOptions struct {
	// Makes the return of the bucket metadata conditional on whether the
	// bucket's current metageneration matches the given value.
	IfMetagenerationMatch *int64 `schema:"ifMetagenerationMatch,omitempty"`

	// Makes the return of the bucket metadata conditional on whether the
	// bucket's current metageneration does not match the given value.
	IfMetagenerationNotMatch *int64 `schema:"ifMetagenerationNotMatch,omitempty"`

	// Set of properties to return.
	Projection string `schema:"projection,omitempty"`
}

// BucketsInsertOptions holds the optional parameters of
// BucketsService.Insert.
type BucketsInsertOptions struct {
	// Apply a predefined set of access controls to this bucket.
	PredefinedAcl string `schema:"predefinedAcl,omitempty"`

	// Set of properties to return.
	Projection string `schema:"projection,omitempty"`

	// Apply a predefined set of default object access controls to this bucket.
	PredefinedDefaultObjectAcl string `schema:"predefinedDefaultObjectAcl,omitempty"`
}

// BucketsListOptions holds the optional parameters of BucketsService.List.
type BucketsListOptions struct {
	// A previously-returned page token representing part of the larger set of
	// results to view.
	PageToken string `schema:"pageToken,omitempty"`

	// Filter results to buckets whose names begin with this prefix.
	Prefix string `schema:"prefix,omitempty"`

	// Set of properties to return.
	Projection string `schema:"projection,omitempty"`

	// Maximum number of buckets to return.
	MaxResults *int64 `schema:"maxResults,omitempty"`
}

// BucketsPatchOptions holds the optional parameters of BucketsService.Patch.
type BucketsPatchOptions struct {
	// Set of properties to return.
	Projection string `schema:"projection,omitempty"`

	// Makes the return of the bucket metadata conditional on whether the
	// bucket's current metageneration matches the given value.
	IfMetagenerationMatch *int64 `schema:"ifMetagenerationMatch,omitempty"`

	// Apply a predefined set of default object access controls to this bucket.
	PredefinedDefaultObjectAcl string `schema:"predefinedDefaultObjectAcl,omitempty"`

	// Apply a predefined set of access controls to this bucket.
	PredefinedAcl string `schema:"predefinedAcl,omitempty"`

	// Makes the return of the bucket metadata conditional on whether the
	// bucket's current metageneration does not match the given value.
	IfMetagenerationNotMatch *int64 `schema:"ifMetagenerationNotMatch,omitempty"`
}

// BucketsUpdateOptions holds the optional parameters of
// BucketsService.Update.
type BucketsUpdateOptions struct {
	// Set of properties to return.
	Projection string `schema:"projection,omitempty"`

	// Makes the return of the bucket metadata conditional on whether the
	// bucket's current metageneration matches the given value.
	IfMetagenerationMatch *int64 `schema:"ifMetagenerationMatch,omitempty"`

	// Apply a predefined set of default object access controls to this bucket.
	PredefinedDefaultObjectAcl string `schema:"predefinedDefaultObjectAcl,omitempty"`

	// Apply a predefined set of access controls to this bucket.
	PredefinedAcl string `schema:"predefinedAcl,omitempty"`

	// Makes the return of the bucket metadata conditional on whether the
	// bucket's current metageneration does not match the given value.
	IfMetagenerationNotMatch *int64 `schema:"ifMetagenerationNotMatch,omitempty"`
}

// DefaultObjectAccessControlsListOptions holds the optional parameters of
// DefaultObjectAccessControlsService.List.
type DefaultObjectAccessControlsListOptions struct {
	// If present, only return default ACL listing if the bucket's current
	// metageneration matches this value.
	IfMetagenerationMatch *int64 `schema:"ifMetagenerationMatch,omitempty"`

	// If present, only return default ACL listing if the bucket's current
	// metageneration does not match the given value.
	IfMetagenerationNotMatch *int64 `schema:"ifMetagenerationNotMatch,omitempty"`
}

// ObjectAccessControlsDeleteOptions holds the optional parameters of
// ObjectAccessControlsService.Delete.
type ObjectAccessControlsDeleteOptions struct {
	// If present, selects a specific revision of this object (as opposed to the
	// latest version, the default).
	Generation *int64 `schema:"generation,omitempty"`
}

// ObjectAccessControlsGetOptions holds the optional parameters of
// ObjectAccessControlsService.Get.
type ObjectAccessControlsGetOptions struct {
	// If present, selects a specific revision of this object (as opposed to the
	// latest version, the default).
	Generation *int64 `schema:"generation,omitempty"`
}

// ObjectAccessControlsInsertOptions holds the optional parameters of
// ObjectAccessControlsService.Insert.
type ObjectAccessControlsInsertOptions struct {
	// If present, selects a specific revision of this object (as opposed to the
	// latest version, the default).
	Generation *int64 `schema:"generation,omitempty"`
}

// ObjectAccessControlsListOptions holds the optional parameters of
// ObjectAccessControlsService.List.
type ObjectAccessControlsListOptions struct {
	// If present, selects a specific revision of this object (as opposed to the
	// latest version, the default).
	Generation *int64 `schema:"generation,omitempty"`
}

// ObjectAccessControlsPatchOptions holds the optional parameters of
// ObjectAccessControlsService.Patch.
type ObjectAccessControlsPatchOptions struct {
	// If present, selects a specific revision of this object (as opposed to the
	// latest version, the default).
	Generation *int64 `schema:"generation,omitempty"`
}

// ObjectAccessControlsUpdateOptions holds the optional parameters of
// ObjectAccessControlsService.Update.
type ObjectAccessControlsUpdateOptions struct {
	// If present, selects a specific revision of this object (as opposed to the
	// latest version, the default).
	Generation *int64 `schema:"generation,omitempty"`
}

// ObjectsComposeOptions holds the optional parameters of
// ObjectsService.Compose.
type ObjectsComposeOptions struct {
	// Makes the operation conditional on whether the object's current
	// generation matches the given value.
	IfGenerationMatch *int64 `schema:"ifGenerationMatch,omitempty"`

	// Makes the operation conditional on whether the object's current
	// metageneration matches the given value.
	IfMetagenerationMatch *int64 `schema:"ifMetagenerationMatch,omitempty"`

	// Apply a predefined set of access controls to the destination object.
	DestinationPredefinedAcl string `schema:"destinationPredefinedAcl,omitempty"`
}

// ObjectsCopyOptions holds the optional parameters of ObjectsService.Copy.
type ObjectsCopyOptions struct {
	// Makes the operation conditional on whether the source object's generation
	// does not match the given value.
	IfSourceGenerationNotMatch *int64 `schema:"ifSourceGenerationNotMatch,omitempty"`

	// Makes the operation conditional on whether the destination object's
	// current generation does not match the given value.
	IfGenerationNotMatch *int64 `schema:"ifGenerationNotMatch,omitempty"`

	// Makes the operation conditional on whether the source object's current
	// metageneration does not match the given value.
	IfSourceMetagenerationNotMatch *int64 `schema:"ifSourceMetagenerationNotMatch,omitempty"`

	// Makes the operation conditional on whether the destination object's
	// current metageneration matches the given value.
	IfMetagenerationMatch *int64 `schema:"ifMetagenerationMatch,omitempty"`

	// If present, selects a specific revision of the source object (as opposed
	// to the latest version, the default).
	SourceGeneration *int64 `schema:"sourceGeneration,omitempty"`

	// Apply a predefined set of access controls to the destination object.
	DestinationPredefinedAcl string `schema:"destinationPredefinedAcl,omitempty"`

	// Makes the operation conditional on whether the source object's generation
	// matches the given value.
	IfSourceGenerationMatch *int64 `schema:"ifSourceGenerationMatch,omitempty"`

	// Makes the operation conditional on whether the source object's current
	// metageneration matches the given value.
	IfSourceMetagenerationMatch *int64 `schema:"ifSourceMetagenerationMatch,omitempty"`

	// Makes the operation conditional on whether the destination object's
	// current generation matches the given value.
	IfGenerationMatch *int64 `schema:"ifGenerationMatch,omitempty"`

	// Makes the operation conditional on whether the destination object's
	// current metageneration does not match the given value.
	IfMetagenerationNotMatch *int64 `schema:"ifMetagenerationNotMatch,omitempty"`

	// Set of properties to return.
	Projection string `schema:"projection,omitempty"`
}

// ObjectsDeleteOptions holds the optional parameters of
// ObjectsService.Delete.
type ObjectsDeleteOptions struct {
	// Makes the operation conditional on whether the object's current
	// generation does not match the given value.
	IfGenerationNotMatch *int64 `schema:"ifGenerationNotMatch,omitempty"`

	// If present, permanently deletes a specific revision of this object (as
	// opposed to the latest version, the default).
	Generation *int64 `schema:"generation,omitempty"`

	// Makes the operation conditional on whether the object's current
	// metageneration matches the given value.
	IfMetagenerationMatch *int64 `schema:"ifMetagenerationMatch,omitempty"`

	// Makes the operation conditional on whether the object's current
	// generation matches the given value.
	IfGenerationMatch *int64 `schema:"ifGenerationMatch,omitempty"`

	// Makes the operation conditional on whether the object's current
	// metageneration does not match the given value.
	IfMetagenerationNotMatch *int64 `schema:"ifMetagenerationNotMatch,omitempty"`
}

// ObjectsGetOptions holds the optional parameters of ObjectsService.Get.
type ObjectsGetOptions struct {
	// Makes the operation conditional on whether the object's generation does
	// not match the given value.
	IfGenerationNotMatch *int64 `schema:"ifGenerationNotMatch,omitempty"`

	// If present, selects a specific revision of this object (as opposed to the
	// latest version, the default).
	Generation *int64 `schema:"generation,omitempty"`

	// Makes the operation conditional on whether the object's current
	// metageneration matches the given value.
	IfMetagenerationMatch *int64 `schema:"ifMetagenerationMatch,omitempty"`

	// Makes the operation conditional on whether the object's generation
	// matches the given value.
	IfGenerationMatch *int64 `schema:"ifGenerationMatch,omitempty"`

	// Makes the operation conditional on whether the object's current
	// metageneration does not match the given value.
	IfMetagenerationNotMatch *int64 `schema:"ifMetagenerationNotMatch,omitempty"`

	// Set of properties to return.
	Projection string `schema:"projection,omitempty"`
}

// ObjectsInsertOptions holds the optional parameters of
// ObjectsService.Insert.
type ObjectsInsertOptions struct {
	// Apply a predefined set of access controls to this object.
	PredefinedAcl string `schema:"predefinedAcl,omitempty"`

	// Set of properties to return.
	Projection string `schema:"projection,omitempty"`

	// Makes the operation conditional on whether the object's current
	// generation does not match the given value.
	IfGenerationNotMatch *int64 `schema:"ifGenerationNotMatch,omitempty"`

	// Makes the operation conditional on whether the object's current
	// metageneration matches the given value.
	IfMetagenerationMatch *int64 `schema:"ifMetagenerationMatch,omitempty"`

	// If set, sets the contentEncoding property of the final object to this
	// value.
	ContentEncoding string `schema:"contentEncoding,omitempty"`

	// Makes the operation conditional on whether the object's current
	// generation matches the given value.
	IfGenerationMatch *int64 `schema:"ifGenerationMatch,omitempty"`

	// Makes the operation conditional on whether the object's current
	// metageneration does not match the given value.
	IfMetagenerationNotMatch *int64 `schema:"ifMetagenerationNotMatch,omitempty"`

	// Name of the object.
	Name string `schema:"name,omitempty"`
}

// ObjectsListOptions holds the optional parameters of ObjectsService.List.
type ObjectsListOptions struct {
	// Set of properties to return.
	Projection string `schema:"projection,omitempty"`

	// If true, lists all versions of an object as distinct results.
	Versions *bool `schema:"versions,omitempty"`

	// Filter results to objects whose names begin with this prefix.
	Prefix string `schema:"prefix,omitempty"`

	// Maximum number of items plus prefixes to return.
	MaxResults *int64 `schema:"maxResults,omitempty"`

	// A previously-returned page token representing part of the larger set of
	// results to view.
	PageToken string `schema:"pageToken,omitempty"`

	// Returns results in a directory-like mode.
	Delimiter string `schema:"delimiter,omitempty"`
}

// ObjectsPatchOptions holds the optional parameters of ObjectsService.Patch.
type ObjectsPatchOptions struct {
	// Apply a predefined set of access controls to this object.
	PredefinedAcl string `schema:"predefinedAcl,omitempty"`

	// Makes the operation conditional on whether the object's current
	// generation does not match the given value.
	IfGenerationNotMatch *int64 `schema:"ifGenerationNotMatch,omitempty"`

	// If present, selects a specific revision of this object (as opposed to the
	// latest version, the default).
	Generation *int64 `schema:"generation,omitempty"`

	// Makes the operation conditional on whether the object's current
	// metageneration matches the given value.
	IfMetagenerationMatch *int64 `schema:"ifMetagenerationMatch,omitempty"`

	// Makes the operation conditional on whether the object's current
	// generation matches the given value.
	IfGenerationMatch *int64 `schema:"ifGenerationMatch,omitempty"`

	// Makes the operation conditional on whether the object's current
	// metageneration does not match the given value.
	IfMetagenerationNotMatch *int64 `schema:"ifMetagenerationNotMatch,omitempty"`

	// Set of properties to return.
	Projection string `schema:"projection,omitempty"`
}

// ObjectsRewriteOptions holds the optional parameters of
// ObjectsService.Rewrite.
type ObjectsRewriteOptions struct {
	// Makes the operation conditional on whether the source object's generation
	// does not match the given value.
	IfSourceGenerationNotMatch *int64 `schema:"ifSourceGenerationNotMatch,omitempty"`

	// Makes the operation conditional on whether the destination object's
	// current generation does not match the given value.
	IfGenerationNotMatch *int64 `schema:"ifGenerationNotMatch,omitempty"`

	// Include this field (from the previous rewrite response) on each rewrite
	// request after the first one, until the rewrite response 'done' flag is
	// true.
	RewriteToken string `schema:"rewriteToken,omitempty"`

	// Makes the operation conditional on whether the source object's current
	// metageneration does not match the given value.
	IfSourceMetagenerationNotMatch *int64 `schema:"ifSourceMetagenerationNotMatch,omitempty"`

	// Makes the operation conditional on whether the destination object's
	// current metageneration matches the given value.
	IfMetagenerationMatch *int64 `schema:"ifMetagenerationMatch,omitempty"`

	// If present, selects a specific revision of the source object (as opposed
	// to the latest version, the default).
	SourceGeneration *int64 `schema:"sourceGeneration,omitempty"`

	// Apply a predefined set of access controls to the destination object.
	DestinationPredefinedAcl string `schema:"destinationPredefinedAcl,omitempty"`

	// Makes the operation conditional on whether the source object's generation
	// matches the given value.
	IfSourceGenerationMatch *int64 `schema:"ifSourceGenerationMatch,omitempty"`

	// The maximum number of bytes that will be rewritten per rewrite request.
	MaxBytesRewrittenPerCall *int64 `schema:"maxBytesRewrittenPerCall,omitempty"`

	// Makes the operation conditional on whether the source object's current
	// metageneration matches the given value.
	IfSourceMetagenerationMatch *int64 `schema:"ifSourceMetagenerationMatch,omitempty"`

	// Makes the operation conditional on whether the destination object's
	// current generation matches the given value.
	IfGenerationMatch *int64 `schema:"ifGenerationMatch,omitempty"`

	// Makes the operation conditional on whether the destination object's
	// current metageneration does not match the given value.
	IfMetagenerationNotMatch *int64 `schema:"ifMetagenerationNotMatch,omitempty"`

	// Set of properties to return.
	Projection string `schema:"projection,omitempty"`
}

// ObjectsUpdateOptions holds the optional parameters of
// ObjectsService.Update.
type ObjectsUpdateOptions struct {
	// Apply a predefined set of access controls to this object.
	PredefinedAcl string `schema:"predefinedAcl,omitempty"`

	// Makes the operation conditional on whether the object's current
	// generation does not match the given value.
	IfGenerationNotMatch *int64 `schema:"ifGenerationNotMatch,omitempty"`

	// If present, selects a specific revision of this object (as opposed to the
	// latest version, the default).
	Generation *int64 `schema:"generation,omitempty"`

	// Makes the operation conditional on whether the object's current
	// metageneration matches the given value.
	IfMetagenerationMatch *int64 `schema:"ifMetagenerationMatch,omitempty"`

	// Makes the operation conditional on whether the object's current
	// generation matches the given value.
	IfGenerationMatch *int64 `schema:"ifGenerationMatch,omitempty"`

	// Makes the operation conditional on whether the object's current
	// metageneration does not match the given value.
	IfMetagenerationNotMatch *int64 `schema:"ifMetagenerationNotMatch,omitempty"`

	// Set of properties to return.
	Projection string `schema:"projection,omitempty"`
}

// ObjectsWatchAllOptions holds the optional parameters of
// ObjectsService.WatchAll.
type ObjectsWatchAllOptions struct {
	// Set of properties to return.
	Projection string `schema:"projection,omitempty"`

	// If true, lists all versions of an object as distinct results.
	Versions *bool `schema:"versions,omitempty"`

	// Filter results to objects whose names begin with this prefix.
	Prefix string `schema:"prefix,omitempty"`

	// Maximum number of items plus prefixes to return.
	MaxResults *int64 `schema:"maxResults,omitempty"`

	// A previously-returned page token representing part of the larger set of
	// results to view.
	PageToken string `schema:"pageToken,omitempty"`

	// Returns results in a directory-like mode.
	Delimiter string `schema:"delimiter,omitempty"`
}
