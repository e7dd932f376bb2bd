package s3

import (
	"net/url"
	"strconv"
	"time"

	"github.com/fishy/s3bucket"
	"github.com/fishy/s3bucket/sign"
)

// DefaultPresignExpire is the validity period used by PresignedURLFor when
// expire is zero.
const DefaultPresignExpire = 5 * time.Minute

// URLFor returns the public URL for key.
//
// The URL only works for objects readable without credentials
// (e.g. stored with a "public-read" ACL).
func (b *Bucket) URLFor(key s3bucket.Key) string {
	return b.opts.GetEndpoint() + sign.CanonicalResource(b.name, string(key))
}

// PresignedURLFor returns a query-string authenticated URL for key.
//
// The URL grants temporary read access to the object without exposing the
// secret key, and stops working once expire has passed.
func (b *Bucket) PresignedURLFor(key s3bucket.Key, expire time.Duration) string {
	if expire <= 0 {
		expire = DefaultPresignExpire
	}
	expires := strconv.FormatInt(b.opts.Now().Add(expire).Unix(), 10)

	// No trailing newline after the resource, same as in header signing.
	descriptor := "GET\n\n\n" + expires + "\n" +
		sign.CanonicalResource(b.name, string(key))

	query := make(url.Values)
	query.Set("AWSAccessKeyId", b.opts.GetAccessKey())
	query.Set("Expires", expires)
	query.Set("Signature", sign.Signature(b.opts.GetSecretKey(), descriptor))
	return b.URLFor(key) + "?" + query.Encode()
}
