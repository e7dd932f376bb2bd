package sign

import (
	"crypto/hmac"
	"crypto/md5"
	"crypto/sha1"
	"encoding/base64"
	"net/http"
	"sort"
	"strings"
)

// AmzHeaderPrefix is the prefix of the extension headers that participate in
// the canonical string.
const AmzHeaderPrefix = "x-amz-"

const upperhex = "0123456789ABCDEF"

// URLQuote percent-encodes a URL path part the way the service expects it
// inside the canonical resource.
//
// Every byte outside [A-Za-z0-9_.~-] is encoded, except '/',
// which is kept as the path separator.
// The input is treated as UTF-8.
func URLQuote(value string) string {
	var sb strings.Builder
	for i := 0; i < len(value); i++ {
		c := value[i]
		switch {
		case c >= 'a' && c <= 'z',
			c >= 'A' && c <= 'Z',
			c >= '0' && c <= '9',
			c == '_', c == '.', c == '~', c == '-', c == '/':
			sb.WriteByte(c)
		default:
			sb.WriteByte('%')
			sb.WriteByte(upperhex[c>>4])
			sb.WriteByte(upperhex[c&0xf])
		}
	}
	return sb.String()
}

// ContentMD5 computes the Content-MD5 header value of a request body:
// the MD5 digest in base64.
func ContentMD5(data []byte) string {
	sum := md5.Sum(data)
	return base64.StdEncoding.EncodeToString(sum[:])
}

// CanonicalizeAmz canonicalizes the x-amz-* headers:
// names lowercased and sorted,
// repeated values joined with commas,
// one "name:value\n" line per header.
//
// Headers without the x-amz- prefix are ignored.
func CanonicalizeAmz(headers http.Header) string {
	grouped := make(map[string][]string)
	for name, values := range headers {
		name = strings.ToLower(name)
		if !strings.HasPrefix(name, AmzHeaderPrefix) {
			continue
		}
		grouped[name] = append(grouped[name], values...)
	}
	names := make([]string, 0, len(grouped))
	for name := range grouped {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	for _, name := range names {
		sb.WriteString(name)
		sb.WriteString(":")
		sb.WriteString(strings.Join(grouped[name], ","))
		sb.WriteString("\n")
	}
	return sb.String()
}

// CanonicalResource builds the canonical resource path for a bucket and an
// optional key, both URL-quoted.
func CanonicalResource(bucket, key string) string {
	res := "/" + URLQuote(bucket) + "/"
	if key != "" {
		res += URLQuote(key)
	}
	return res
}

// StringToSign assembles the exact byte sequence to be signed for a request:
//
//	METHOD\n
//	Content-MD5\n
//	Content-Type\n
//	Date\n
//	<canonicalized x-amz-* headers><canonical resource>
//
// resource must already be canonical (see CanonicalResource),
// with any subresource (e.g. "?acl") appended by the caller.
func StringToSign(method string, headers http.Header, resource string) string {
	return strings.Join([]string{
		method,
		headers.Get("Content-MD5"),
		headers.Get("Content-Type"),
		headers.Get("Date"),
	}, "\n") + "\n" + CanonicalizeAmz(headers) + resource
}

// Signature signs a string-to-sign with the secret key:
// HMAC-SHA1, base64 encoded.
func Signature(secretKey, stringToSign string) string {
	hasher := hmac.New(sha1.New, []byte(secretKey))
	hasher.Write([]byte(stringToSign))
	return base64.StdEncoding.EncodeToString(hasher.Sum(nil))
}

// Authorization builds the full Authorization header value for a request.
func Authorization(accessKey, secretKey, stringToSign string) string {
	return "AWS " + accessKey + ":" + Signature(secretKey, stringToSign)
}
