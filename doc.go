// Package s3bucket defines the interface for a dictionary-like client to an
// S3-compatible object storage service,
// along with the shared types and errors used by implementations.
//
// The actual HTTP client implementation is in the s3 subpackage.
// An in-memory implementation of the service itself,
// suitable for tests, is in the fakes3 subpackage.
package s3bucket
