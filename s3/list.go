package s3

import (
	"context"
	"encoding/xml"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/fishy/s3bucket"
)

// ListOptions defines the optional arguments to List.
//
// The zero value (or a nil pointer) lists the whole bucket,
// up to the service's page size.
type ListOptions struct {
	// Prefix restricts the listing to keys starting with Prefix.
	Prefix string

	// Marker restricts the listing to keys lexicographically after Marker.
	//
	// Set it to the last key of the previous page to continue a listing.
	Marker string

	// Limit caps the number of entries returned.
	// Zero means the service default.
	Limit int

	// Delimiter groups keys sharing a prefix up to the delimiter,
	// the way "/" turns a flat listing into directories.
	Delimiter string
}

// ObjectEntry is one entry of a bucket listing.
type ObjectEntry struct {
	Key    s3bucket.Key
	Modify time.Time
	ETag   string
	Size   int64
}

// ListResult is one page of a bucket listing.
type ListResult struct {
	Entries []ObjectEntry

	// IsTruncated reports whether more entries exist past this page.
	// Continue with Marker set to the last entry's key.
	IsTruncated bool
}

type listBucketResult struct {
	XMLName     xml.Name `xml:"ListBucketResult"`
	IsTruncated bool     `xml:"IsTruncated"`
	Contents    []struct {
		Key          string `xml:"Key"`
		LastModified string `xml:"LastModified"`
		ETag         string `xml:"ETag"`
		Size         int64  `xml:"Size"`
	} `xml:"Contents"`
}

// List lists the contents of the bucket.
func (b *Bucket) List(ctx context.Context, opts *ListOptions) (*ListResult, error) {
	if opts == nil {
		opts = new(ListOptions)
	}
	query := make(url.Values)
	if opts.Prefix != "" {
		query.Set("prefix", opts.Prefix)
	}
	if opts.Marker != "" {
		query.Set("marker", opts.Marker)
	}
	if opts.Limit > 0 {
		query.Set("max-keys", strconv.Itoa(opts.Limit))
	}
	if opts.Delimiter != "" {
		query.Set("delimiter", opts.Delimiter)
	}

	req, err := b.newRequest(ctx, http.MethodGet, "", query, nil, nil)
	if err != nil {
		return nil, err
	}
	resp, err := b.do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode/100 != 2 {
		return nil, b.interpretError(resp, "")
	}
	defer resp.Body.Close()

	data, err := ioutil.ReadAll(io.LimitReader(resp.Body, maxListBody))
	if err != nil {
		return nil, &s3bucket.TransientError{
			Err: errors.Wrap(err, "reading listing"),
		}
	}
	var parsed listBucketResult
	if err := xml.Unmarshal(data, &parsed); err != nil {
		return nil, &s3bucket.ResponseError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Message:    "malformed listing: " + err.Error(),
		}
	}

	result := &ListResult{
		Entries:     make([]ObjectEntry, 0, len(parsed.Contents)),
		IsTruncated: parsed.IsTruncated,
	}
	for _, content := range parsed.Contents {
		entry := ObjectEntry{
			Key:  s3bucket.Key(content.Key),
			ETag: content.ETag,
			Size: content.Size,
		}
		if t, err := time.Parse(time.RFC3339, content.LastModified); err == nil {
			entry.Modify = t
		}
		result.Entries = append(result.Entries, entry)
	}
	return result, nil
}

// maxListBody caps how much of a listing response is read into memory.
const maxListBody = 16 << 20
