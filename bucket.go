package s3bucket

import (
	"context"
	"io"
)

// PutOptions defines the optional arguments to Put.
//
// The zero value (or a nil pointer) means:
// guess the mimetype from the key,
// attach no user metadata,
// and let the service pick the default ACL.
type PutOptions struct {
	// Mimetype is sent as the Content-Type of the object.
	//
	// If empty, the mimetype is guessed from the key's extension,
	// falling back to the implementation's default
	// (usually "application/octet-stream").
	Mimetype string

	// Metadata is the user metadata to attach to the object.
	//
	// It's sent as one prefixed header per entry,
	// and returned in ObjectInfo.Metadata on Get and Info.
	Metadata map[string]string

	// ACL is the canned ACL to apply to the object (e.g. "public-read").
	//
	// If empty, no ACL header is sent.
	ACL string
}

// Bucket defines the interface for a remote storage bucket.
//
// Implementations must be safe for concurrent use.
type Bucket interface {
	// Put stores an object under key, overwriting any previous object.
	//
	// data is read fully before the upload starts.
	// If data is also an io.Closer,
	// it's the caller's responsibility to close it after Put returns.
	//
	// opts could be nil, which means all defaults.
	Put(ctx context.Context, key Key, data io.Reader, opts *PutOptions) error

	// Get retrieves the object stored under key.
	//
	// If the key does not exist, it returns a NoSuchKeyError.
	//
	// It never returns both nil object and nil err.
	//
	// It's the caller's responsibility to close the Object returned.
	Get(ctx context.Context, key Key) (*Object, error)

	// Info retrieves the metadata of the object stored under key,
	// without downloading its content.
	//
	// If the key does not exist, it returns a NoSuchKeyError.
	Info(ctx context.Context, key Key) (*ObjectInfo, error)

	// Delete deletes the object stored under key.
	//
	// If the key does not exist,
	// it returns a NoSuchKeyError,
	// unless the implementation is configured to treat deletes as idempotent.
	Delete(ctx context.Context, key Key) error

	// Contains reports whether an object is stored under key.
	//
	// An error is returned only for failures other than the key being absent.
	Contains(ctx context.Context, key Key) (bool, error)
}
