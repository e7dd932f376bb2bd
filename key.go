package s3bucket

import (
	"strings"
	"unicode/utf8"
)

// MaxKeyLength is the maximum length of a Key, in bytes.
//
// It matches the limit imposed by S3-compatible services.
const MaxKeyLength = 1024

// Key is the name identifying an object within a bucket.
//
// Keys are opaque UTF-8 strings.
// Uniqueness scope is per bucket.
type Key string

func (key Key) String() string {
	return string(key)
}

// Validate checks the key against the service's naming rules.
//
// It returns an InvalidKeyError describing the first violation found,
// or nil if the key is valid.
//
// Implementations call Validate before sending any request,
// so an invalid key never reaches the wire.
func (key Key) Validate() error {
	switch {
	case len(key) == 0:
		return &InvalidKeyError{Key: key, Reason: "empty key"}
	case len(key) > MaxKeyLength:
		return &InvalidKeyError{Key: key, Reason: "key longer than 1024 bytes"}
	case !utf8.ValidString(string(key)):
		return &InvalidKeyError{Key: key, Reason: "key is not valid UTF-8"}
	case strings.HasPrefix(string(key), "/"):
		return &InvalidKeyError{Key: key, Reason: "key begins with '/'"}
	case strings.ContainsRune(string(key), '\x00'):
		return &InvalidKeyError{Key: key, Reason: "key contains NUL byte"}
	}
	return nil
}
