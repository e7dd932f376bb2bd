package s3bucket

import (
	"io"
	"net/http"
	"time"
)

// ObjectInfo is the metadata of a stored object,
// derived entirely from the response headers of a Get or Info operation.
type ObjectInfo struct {
	// Mimetype is the Content-Type the service returned.
	Mimetype string

	// Size is the byte length of the object content.
	//
	// For a successful Get, it always equals the total number of bytes
	// readable from the Object's body.
	Size int64

	// Modify is the last modification time of the object (Last-Modified).
	Modify time.Time

	// Date is the timestamp of the response (Date).
	Date time.Time

	// Headers is a snapshot of the raw response headers.
	Headers http.Header

	// Metadata is the user metadata attached at Put time,
	// with the service's header prefix stripped.
	Metadata map[string]string
}

// Object pairs the content of a retrieved object with its metadata.
//
// The content is readable exactly once through the embedded ReadCloser,
// and yields exactly Info.Size bytes.
//
// The caller owns the Object and must close it.
type Object struct {
	io.ReadCloser

	Info ObjectInfo
}
