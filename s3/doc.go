// Package s3 implements s3bucket.Bucket against an S3-compatible HTTP
// service.
//
// Every operation maps onto a single HTTP request,
// signed with the HMAC-SHA1 canonical-string scheme from the sign package.
// The package keeps no state between calls and never retries;
// a Bucket is immutable after Open and safe for concurrent use.
package s3
