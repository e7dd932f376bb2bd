package s3

import (
	"bytes"
	"context"
	"encoding/xml"
	"io"
	"io/ioutil"
	"mime"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/fishy/s3bucket"
	"github.com/fishy/s3bucket/sign"
)

// maxErrorBody is the number of body bytes read when looking for the
// service's error message.
const maxErrorBody = 8 << 10

// newRequest constructs a fully signed request:
// method, URL, Content-MD5, Date, Authorization, and the given headers.
//
// key could be empty for bucket-level operations.
// Query args do not participate in the signature.
func (b *Bucket) newRequest(
	ctx context.Context,
	method string,
	key s3bucket.Key,
	query url.Values,
	body []byte,
	headers http.Header,
) (*http.Request, error) {
	if headers == nil {
		headers = make(http.Header)
	}
	if body != nil && headers.Get("Content-MD5") == "" {
		headers.Set("Content-MD5", sign.ContentMD5(body))
	}
	if headers.Get("Date") == "" {
		headers.Set("Date", b.opts.Now().UTC().Format(http.TimeFormat))
	}

	resource := sign.CanonicalResource(b.name, string(key))
	stringToSign := sign.StringToSign(method, headers, resource)
	headers.Set("Authorization", sign.Authorization(
		b.opts.GetAccessKey(),
		b.opts.GetSecretKey(),
		stringToSign,
	))

	urlStr := b.opts.GetEndpoint() + resource
	if len(query) > 0 {
		urlStr += "?" + query.Encode()
	}
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, urlStr, reader)
	if err != nil {
		return nil, errors.Wrapf(err, "s3: constructing %s %s", method, urlStr)
	}
	for name, values := range headers {
		for _, value := range values {
			req.Header.Add(name, value)
		}
	}
	if body != nil {
		req.ContentLength = int64(len(body))
	}
	return req, nil
}

// do executes a request through the configured transport.
//
// Transport-level failures are returned as TransientError,
// since the caller cannot tell them apart from a lost response.
func (b *Bucket) do(req *http.Request) (*http.Response, error) {
	started := time.Now()
	resp, err := b.opts.GetHTTPClient().Do(req)
	if err != nil {
		return nil, &s3bucket.TransientError{
			Err: errors.Wrapf(err, "%s %s", req.Method, req.URL.Path),
		}
	}
	if logger := b.opts.GetLogger(); logger != nil {
		logger.WithFields(logrus.Fields{
			"method": req.Method,
			"path":   req.URL.Path,
			"status": resp.StatusCode,
			"took":   time.Since(started),
		}).Debug("s3: request")
	}
	return resp, nil
}

// interpretError classifies a non-2xx response into a typed error.
//
// It consumes and closes the response body.
func (b *Bucket) interpretError(resp *http.Response, key s3bucket.Key) error {
	defer resp.Body.Close()
	message := extractMessage(resp.Body)
	switch {
	case resp.StatusCode == http.StatusUnauthorized,
		resp.StatusCode == http.StatusForbidden:
		return &s3bucket.AuthError{
			StatusCode: resp.StatusCode,
			Message:    message,
		}
	case resp.StatusCode == http.StatusNotFound:
		return &s3bucket.NoSuchKeyError{Key: key}
	case resp.StatusCode >= 500:
		return &s3bucket.TransientError{StatusCode: resp.StatusCode}
	default:
		return &s3bucket.ResponseError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Message:    message,
		}
	}
}

type errorDocument struct {
	XMLName xml.Name `xml:"Error"`
	Code    string   `xml:"Code"`
	Message string   `xml:"Message"`
}

// extractMessage tries to read the human-readable message out of the
// service's XML error document.
//
// It returns an empty string when the body is empty or not such a document.
func extractMessage(body io.Reader) string {
	data, err := ioutil.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil {
		return ""
	}
	var doc errorDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return ""
	}
	const limit = 100
	if len(doc.Message) > limit {
		return doc.Message[:limit] + "..."
	}
	return doc.Message
}

// parseInfo builds ObjectInfo from the response headers of a Get or Info.
func parseInfo(prefix string, resp *http.Response) s3bucket.ObjectInfo {
	info := s3bucket.ObjectInfo{
		Mimetype: resp.Header.Get("Content-Type"),
		Size:     resp.ContentLength,
		Headers:  resp.Header.Clone(),
		Metadata: make(map[string]string),
	}
	if t, err := http.ParseTime(resp.Header.Get("Last-Modified")); err == nil {
		info.Modify = t
	}
	if t, err := http.ParseTime(resp.Header.Get("Date")); err == nil {
		info.Date = t
	}
	for name, values := range resp.Header {
		name = strings.ToLower(name)
		if strings.HasPrefix(name, prefix) && len(values) > 0 {
			info.Metadata[strings.TrimPrefix(name, prefix)] = values[0]
		}
	}
	return info
}

// guessMimetype guesses a mimetype from the key's extension.
func guessMimetype(key s3bucket.Key, fallback string) string {
	ext := filepath.Ext(string(key))
	if ext == "" {
		return fallback
	}
	if ext == ".jpg" {
		ext = ".jpeg"
	}
	if mimetype := mime.TypeByExtension(strings.ToLower(ext)); mimetype != "" {
		return mimetype
	}
	return fallback
}
