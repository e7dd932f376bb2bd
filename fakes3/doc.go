// Package fakes3 provides an in-memory, S3-compatible HTTP handler for
// testing clients without network access to a real service.
//
// It implements object PUT/GET/HEAD/DELETE, object copy, bucket
// creation/deletion and bucket listing,
// and verifies the Authorization header of every request by recomputing the
// canonical string on the server side,
// so a client test passing against it also proves the client's
// canonicalization is correct bit-for-bit.
//
// Typical use:
//
//	server := httptest.NewServer(fakes3.New(accessKey, secretKey))
//	defer server.Close()
//	opts := s3.NewDefaultOptions(accessKey, secretKey).
//		SetEndpoint(server.URL).
//		Build()
package fakes3
