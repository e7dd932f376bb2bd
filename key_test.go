package s3bucket_test

import (
	"strings"
	"testing"

	"github.com/fishy/s3bucket"
)

func TestValidateGood(t *testing.T) {
	keys := []s3bucket.Key{
		"foo",
		"my file",
		"test/foo",
		"åder",
		s3bucket.Key(strings.Repeat("k", s3bucket.MaxKeyLength)),
	}
	for _, key := range keys {
		if err := key.Validate(); err != nil {
			t.Errorf("(%q).Validate() expected nil, got %v", key, err)
		}
	}
}

func TestValidateBad(t *testing.T) {
	keys := []s3bucket.Key{
		"",
		s3bucket.Key(strings.Repeat("k", s3bucket.MaxKeyLength+1)),
		s3bucket.Key([]byte{0xff, 0xfe, 0xfd}),
		"/leading-slash",
		"nul\x00byte",
	}
	for _, key := range keys {
		err := key.Validate()
		if err == nil {
			t.Errorf("(%q).Validate() expected an error, got nil", key)
			continue
		}
		if !s3bucket.IsInvalidKeyError(err) {
			t.Errorf("(%q).Validate() expected InvalidKeyError, got %v", key, err)
		}
	}
}

func TestString(t *testing.T) {
	expect := "foobar"
	key := s3bucket.Key(expect)
	actual := key.String()
	if expect != actual {
		t.Errorf("(%v).String() expected %q, got %q", key, expect, actual)
	}
}
