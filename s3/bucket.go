package s3

import (
	"context"
	"io"
	"io/ioutil"
	"net/http"

	"github.com/fishy/wrapreader"
	"github.com/pkg/errors"

	"github.com/fishy/s3bucket"
)

// Make sure *Bucket satisfies s3bucket.Bucket interface.
var _ s3bucket.Bucket = (*Bucket)(nil)

// Bucket is a handle to a remote bucket, bound to a credential pair and an
// endpoint.
//
// It's immutable after Open and safe for concurrent use.
type Bucket struct {
	name string
	opts Options
}

// Open creates a handle to the named bucket.
//
// Open performs no network traffic;
// the bucket is not required to exist until the first operation
// (or see PutBucket).
func Open(name string, opts Options) *Bucket {
	return &Bucket{
		name: name,
		opts: opts,
	}
}

// Name returns the bucket name.
func (b *Bucket) Name() string {
	return b.name
}

// Put stores an object under key.
//
// data is read fully before the request is sent,
// as its MD5 participates in the request signature.
func (b *Bucket) Put(
	ctx context.Context,
	key s3bucket.Key,
	data io.Reader,
	opts *s3bucket.PutOptions,
) error {
	if err := key.Validate(); err != nil {
		return err
	}
	if opts == nil {
		opts = new(s3bucket.PutOptions)
	}
	body, err := ioutil.ReadAll(data)
	if err != nil {
		return errors.Wrapf(err, "s3: reading content for %q", key)
	}

	headers := make(http.Header)
	mimetype := opts.Mimetype
	if mimetype == "" {
		mimetype = guessMimetype(key, b.opts.GetDefaultMimetype())
	}
	headers.Set("Content-Type", mimetype)
	for name, value := range opts.Metadata {
		headers.Set(b.opts.GetMetadataPrefix()+name, value)
	}
	if opts.ACL != "" {
		headers.Set("x-amz-acl", opts.ACL)
	}

	req, err := b.newRequest(ctx, http.MethodPut, key, nil, body, headers)
	if err != nil {
		return err
	}
	resp, err := b.do(req)
	if err != nil {
		return err
	}
	if resp.StatusCode/100 != 2 {
		return b.interpretError(resp, key)
	}
	return drain(resp)
}

// Get retrieves the object stored under key.
//
// The returned Object's body yields exactly Info.Size bytes.
// It's the caller's responsibility to close it.
func (b *Bucket) Get(ctx context.Context, key s3bucket.Key) (*s3bucket.Object, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}
	req, err := b.newRequest(ctx, http.MethodGet, key, nil, nil, nil)
	if err != nil {
		return nil, err
	}
	resp, err := b.do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode/100 != 2 {
		return nil, b.interpretError(resp, key)
	}
	info := parseInfo(b.opts.GetMetadataPrefix(), resp)
	body := io.ReadCloser(resp.Body)
	if info.Size >= 0 {
		body = wrapreader.Wrap(io.LimitReader(resp.Body, info.Size), resp.Body)
	}
	return &s3bucket.Object{
		ReadCloser: body,
		Info:       info,
	}, nil
}

// Info retrieves the metadata of the object stored under key,
// without downloading its content.
func (b *Bucket) Info(ctx context.Context, key s3bucket.Key) (*s3bucket.ObjectInfo, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}
	req, err := b.newRequest(ctx, http.MethodHead, key, nil, nil, nil)
	if err != nil {
		return nil, err
	}
	resp, err := b.do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode/100 != 2 {
		return nil, b.interpretError(resp, key)
	}
	info := parseInfo(b.opts.GetMetadataPrefix(), resp)
	if err := drain(resp); err != nil {
		return nil, err
	}
	return &info, nil
}

// Delete deletes the object stored under key.
//
// When the key does not exist,
// it returns a NoSuchKeyError,
// or nil if the options set idempotent delete.
func (b *Bucket) Delete(ctx context.Context, key s3bucket.Key) error {
	if err := key.Validate(); err != nil {
		return err
	}
	return b.deleteResource(ctx, key)
}

// Contains reports whether an object is stored under key.
func (b *Bucket) Contains(ctx context.Context, key s3bucket.Key) (bool, error) {
	_, err := b.Info(ctx, key)
	if err == nil {
		return true, nil
	}
	if s3bucket.IsNoSuchKeyError(err) {
		return false, nil
	}
	return false, err
}

// CopyOptions defines the optional arguments to Copy.
type CopyOptions struct {
	// Mimetype is the Content-Type of the new object.
	// If empty, it's guessed from the destination key.
	Mimetype string

	// Metadata, when non-nil, replaces the user metadata on the copy.
	// When nil, the source object's metadata is carried over.
	Metadata map[string]string

	// ACL is the canned ACL for the new object.
	// ACLs are never copied from the source.
	ACL string
}

// Copy copies the object at source (on "<bucket>/<key>" format,
// possibly in another bucket under the same credentials) to key.
func (b *Bucket) Copy(
	ctx context.Context,
	source string,
	key s3bucket.Key,
	opts *CopyOptions,
) error {
	if err := key.Validate(); err != nil {
		return err
	}
	if opts == nil {
		opts = new(CopyOptions)
	}

	headers := make(http.Header)
	mimetype := opts.Mimetype
	if mimetype == "" {
		mimetype = guessMimetype(key, b.opts.GetDefaultMimetype())
	}
	headers.Set("Content-Type", mimetype)
	headers.Set("x-amz-copy-source", source)
	if opts.Metadata != nil {
		headers.Set("x-amz-metadata-directive", "REPLACE")
		for name, value := range opts.Metadata {
			headers.Set(b.opts.GetMetadataPrefix()+name, value)
		}
	} else {
		headers.Set("x-amz-metadata-directive", "COPY")
	}
	if opts.ACL != "" {
		headers.Set("x-amz-acl", opts.ACL)
	}

	req, err := b.newRequest(ctx, http.MethodPut, key, nil, nil, headers)
	if err != nil {
		return err
	}
	resp, err := b.do(req)
	if err != nil {
		return err
	}
	if resp.StatusCode/100 != 2 {
		return b.interpretError(resp, key)
	}
	return drain(resp)
}

// PutBucket creates the bucket itself.
//
// acl is the canned ACL for the bucket, or empty for the service default.
func (b *Bucket) PutBucket(ctx context.Context, acl string) error {
	headers := make(http.Header)
	if acl != "" {
		headers.Set("x-amz-acl", acl)
	}
	req, err := b.newRequest(ctx, http.MethodPut, "", nil, nil, headers)
	if err != nil {
		return err
	}
	resp, err := b.do(req)
	if err != nil {
		return err
	}
	if resp.StatusCode/100 != 2 {
		return b.interpretError(resp, "")
	}
	return drain(resp)
}

// DeleteBucket deletes the bucket itself.
//
// Most services reject this unless the bucket is empty.
func (b *Bucket) DeleteBucket(ctx context.Context) error {
	return b.deleteResource(ctx, "")
}

func (b *Bucket) deleteResource(ctx context.Context, key s3bucket.Key) error {
	req, err := b.newRequest(ctx, http.MethodDelete, key, nil, nil, nil)
	if err != nil {
		return err
	}
	resp, err := b.do(req)
	if err != nil {
		return err
	}
	if resp.StatusCode/100 != 2 {
		err := b.interpretError(resp, key)
		if s3bucket.IsNoSuchKeyError(err) && b.opts.IsIdempotentDelete() {
			return nil
		}
		return err
	}
	return drain(resp)
}

// drain consumes and closes a response body so the underlying connection can
// be reused.
func drain(resp *http.Response) error {
	if _, err := io.Copy(ioutil.Discard, resp.Body); err != nil {
		resp.Body.Close()
		return &s3bucket.TransientError{Err: errors.Wrap(err, "draining response")}
	}
	return resp.Body.Close()
}
