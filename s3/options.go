package s3

import (
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Default options values.
const (
	DefaultEndpoint       = "https://s3.amazonaws.com"
	DefaultMetadataPrefix = "x-amz-meta-"
	DefaultMimetype       = "application/octet-stream"
)

// HTTPClient is the transport collaborator that executes the constructed
// requests.
//
// *http.Client satisfies it.
// Implementations must return either a non-nil response or an error;
// any error returned here is surfaced to callers as a TransientError.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Options defines a read-only view of options used by a Bucket.
type Options interface {
	// GetAccessKey returns the access key id used in Authorization headers
	// and presigned URLs.
	GetAccessKey() string

	// GetSecretKey returns the secret key used to sign requests.
	GetSecretKey() string

	// GetEndpoint returns the base URL of the service,
	// without a trailing slash.
	GetEndpoint() string

	// GetHTTPClient returns the transport used to execute requests.
	GetHTTPClient() HTTPClient

	// GetLogger returns the logger to be used by the Bucket.
	//
	// If it returns nil, nothing will be logged.
	GetLogger() logrus.FieldLogger

	// GetMetadataPrefix returns the header prefix under which user metadata
	// is sent and received, e.g. "x-amz-meta-".
	//
	// It must be lowercase and start with "x-amz-" or the service's
	// equivalent extension prefix, as prefixed headers participate in the
	// request signature.
	GetMetadataPrefix() string

	// GetDefaultMimetype returns the Content-Type used when none is given
	// and none can be guessed from the key.
	GetDefaultMimetype() string

	// IsIdempotentDelete returns whether deleting an absent key is treated
	// as success (true) or as a NoSuchKeyError (false).
	IsIdempotentDelete() bool

	// Now returns the current time.
	//
	// It's used for the Date header and presigned URL expiry.
	// Tests inject a fixed clock here to make signing deterministic.
	Now() time.Time
}

// OptionsBuilder defines a read-write view of options used by a Bucket.
type OptionsBuilder interface {
	Options

	// Build builds the read-only view of the options.
	Build() Options

	// SetEndpoint sets the base URL of the service.
	//
	// A trailing slash is stripped.
	SetEndpoint(endpoint string) OptionsBuilder

	// SetHTTPClient sets the transport used to execute requests.
	SetHTTPClient(client HTTPClient) OptionsBuilder

	// SetLogger sets the logger used by the Bucket.
	SetLogger(logger logrus.FieldLogger) OptionsBuilder

	// SetMetadataPrefix sets the header prefix for user metadata.
	SetMetadataPrefix(prefix string) OptionsBuilder

	// SetDefaultMimetype sets the fallback Content-Type.
	SetDefaultMimetype(mimetype string) OptionsBuilder

	// SetIdempotentDelete sets whether deleting an absent key succeeds.
	SetIdempotentDelete(idempotent bool) OptionsBuilder

	// SetNowFunc sets the clock.
	SetNowFunc(now func() time.Time) OptionsBuilder
}

type options struct {
	accessKey        string
	secretKey        string
	endpoint         string
	client           HTTPClient
	logger           logrus.FieldLogger
	prefix           string
	mimetype         string
	idempotentDelete bool
	now              func() time.Time
}

// NewDefaultOptions creates the default options with the given credentials.
func NewDefaultOptions(accessKey, secretKey string) OptionsBuilder {
	return &options{
		accessKey: accessKey,
		secretKey: secretKey,
		endpoint:  DefaultEndpoint,
		client:    http.DefaultClient,
		logger:    nil,
		prefix:    DefaultMetadataPrefix,
		mimetype:  DefaultMimetype,
		now:       time.Now,
	}
}

func (opt *options) GetAccessKey() string {
	return opt.accessKey
}

func (opt *options) GetSecretKey() string {
	return opt.secretKey
}

func (opt *options) GetEndpoint() string {
	return opt.endpoint
}

func (opt *options) GetHTTPClient() HTTPClient {
	return opt.client
}

func (opt *options) GetLogger() logrus.FieldLogger {
	return opt.logger
}

func (opt *options) GetMetadataPrefix() string {
	return opt.prefix
}

func (opt *options) GetDefaultMimetype() string {
	return opt.mimetype
}

func (opt *options) IsIdempotentDelete() bool {
	return opt.idempotentDelete
}

func (opt *options) Now() time.Time {
	return opt.now()
}

func (opt *options) Build() Options {
	return opt
}

func (opt *options) SetEndpoint(endpoint string) OptionsBuilder {
	opt.endpoint = strings.TrimSuffix(endpoint, "/")
	return opt
}

func (opt *options) SetHTTPClient(client HTTPClient) OptionsBuilder {
	opt.client = client
	return opt
}

func (opt *options) SetLogger(logger logrus.FieldLogger) OptionsBuilder {
	opt.logger = logger
	return opt
}

func (opt *options) SetMetadataPrefix(prefix string) OptionsBuilder {
	opt.prefix = strings.ToLower(prefix)
	return opt
}

func (opt *options) SetDefaultMimetype(mimetype string) OptionsBuilder {
	opt.mimetype = mimetype
	return opt
}

func (opt *options) SetIdempotentDelete(idempotent bool) OptionsBuilder {
	opt.idempotentDelete = idempotent
	return opt
}

func (opt *options) SetNowFunc(now func() time.Time) OptionsBuilder {
	opt.now = now
	return opt
}
