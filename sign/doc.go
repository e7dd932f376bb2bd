// Package sign implements the canonical-string construction and HMAC-SHA1
// signing used to authenticate requests against S3-compatible services.
//
// Everything in this package is a pure function:
// the same inputs (including the credential) always yield the same output.
// The exact bytes of the canonical string matter —
// if they differ from what the service computes on its side,
// the request is rejected with an authentication failure
// no matter how correct the signing key is.
package sign
