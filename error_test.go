package s3bucket_test

import (
	"io"
	"testing"

	"github.com/pkg/errors"

	"github.com/fishy/s3bucket"
)

func TestIsNoSuchKeyError(t *testing.T) {
	err := error(&s3bucket.NoSuchKeyError{Key: "foo"})
	if !s3bucket.IsNoSuchKeyError(err) {
		t.Errorf("%v should be NoSuchKeyError", err)
	}
	if s3bucket.IsNoSuchKeyError(io.EOF) {
		t.Errorf("%v should not be NoSuchKeyError", io.EOF)
	}
	if s3bucket.IsNoSuchKeyError(nil) {
		t.Error("nil should not be NoSuchKeyError")
	}

	wrapped := errors.Wrap(err, "extra context")
	if !s3bucket.IsNoSuchKeyError(wrapped) {
		t.Errorf("%v should still be NoSuchKeyError after wrapping", wrapped)
	}
}

func TestIsTransientError(t *testing.T) {
	err := error(&s3bucket.TransientError{StatusCode: 500})
	if !s3bucket.IsTransientError(err) {
		t.Errorf("%v should be TransientError", err)
	}
	if s3bucket.IsNoSuchKeyError(err) {
		t.Errorf("%v should not be NoSuchKeyError", err)
	}

	cause := io.ErrUnexpectedEOF
	err = &s3bucket.TransientError{Err: cause}
	if !s3bucket.IsTransientError(err) {
		t.Errorf("%v should be TransientError", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("%v should unwrap to %v", err, cause)
	}
}

func TestErrorMessages(t *testing.T) {
	for _, c := range []struct {
		err    error
		expect string
	}{
		{
			err:    &s3bucket.InvalidKeyError{Key: "", Reason: "empty key"},
			expect: `s3bucket: invalid key "": empty key`,
		},
		{
			err:    &s3bucket.NoSuchKeyError{Key: "foo"},
			expect: `s3bucket: no such key: "foo"`,
		},
		{
			err:    &s3bucket.AuthError{StatusCode: 403},
			expect: "s3bucket: authentication rejected (http 403)",
		},
		{
			err:    &s3bucket.TransientError{StatusCode: 503},
			expect: "s3bucket: transient failure: http 503",
		},
		{
			err: &s3bucket.ResponseError{
				StatusCode: 418,
				Status:     "418 I'm a teapot",
				Message:    "nope",
			},
			expect: "s3bucket: unexpected response: 418 I'm a teapot: nope",
		},
	} {
		if actual := c.err.Error(); actual != c.expect {
			t.Errorf("Error() expected %q, got %q", c.expect, actual)
		}
	}
}
