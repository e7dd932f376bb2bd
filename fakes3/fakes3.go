package fakes3

import (
	"crypto/md5"
	"crypto/subtle"
	"encoding/hex"
	"encoding/xml"
	"fmt"
	"io/ioutil"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/fishy/rowlock"

	"github.com/fishy/s3bucket/sign"
)

const metadataPrefix = "x-amz-meta-"

// Make sure *Server satisfies http.Handler interface.
var _ http.Handler = (*Server)(nil)

type storedObject struct {
	data     []byte
	mimetype string
	metadata map[string]string
	modify   time.Time
}

func (o *storedObject) etag() string {
	sum := md5.Sum(o.data)
	return `"` + hex.EncodeToString(sum[:]) + `"`
}

// Server is an in-memory S3-compatible service.
//
// It's safe for concurrent use.
// Object mutations take a per-key row lock,
// so concurrent writes to the same key behave last-writer-wins,
// like the real service.
type Server struct {
	accessKey string
	secretKey string

	mu      sync.RWMutex
	buckets map[string]map[string]*storedObject

	locks *rowlock.RowLock
}

// New creates a Server accepting requests signed with the given credentials.
func New(accessKey, secretKey string) *Server {
	return &Server{
		accessKey: accessKey,
		secretKey: secretKey,
		buckets:   make(map[string]map[string]*storedObject),
		locks:     rowlock.NewRowLock(rowlock.MutexNewLocker),
	}
}

// CreateBucket creates a bucket directly, bypassing HTTP.
//
// It's a test convenience so that object tests don't have to issue a
// PutBucket first.
func (s *Server) CreateBucket(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.buckets[name]; !ok {
		s.buckets[name] = make(map[string]*storedObject)
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resource := r.URL.EscapedPath()
	if err := s.checkAuth(r, resource); err != "" {
		writeError(w, http.StatusForbidden, "AccessDenied", err)
		return
	}

	trimmed := strings.TrimPrefix(r.URL.Path, "/")
	slash := strings.Index(trimmed, "/")
	var bucket, key string
	if slash < 0 {
		bucket = trimmed
	} else {
		bucket = trimmed[:slash]
		key = trimmed[slash+1:]
	}
	if bucket == "" {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "no bucket in path")
		return
	}

	if key == "" {
		s.serveBucket(w, r, bucket)
	} else {
		s.serveObject(w, r, bucket, key)
	}
}

// checkAuth verifies either the Authorization header or the query-string
// authentication, and returns a non-empty reason on failure.
func (s *Server) checkAuth(r *http.Request, resource string) string {
	if sig := r.URL.Query().Get("Signature"); sig != "" {
		if r.Method != http.MethodGet {
			return "query-string authentication is GET only"
		}
		if r.URL.Query().Get("AWSAccessKeyId") != s.accessKey {
			return "unknown access key"
		}
		expires := r.URL.Query().Get("Expires")
		deadline, err := strconv.ParseInt(expires, 10, 64)
		if err != nil {
			return "malformed Expires"
		}
		if time.Now().Unix() > deadline {
			return "request has expired"
		}
		descriptor := "GET\n\n\n" + expires + "\n" + resource
		if !sigEqual(sig, sign.Signature(s.secretKey, descriptor)) {
			return "signature mismatch"
		}
		return ""
	}

	if r.Header.Get("Date") == "" {
		return "missing Date header"
	}
	expect := sign.Authorization(
		s.accessKey,
		s.secretKey,
		sign.StringToSign(r.Method, r.Header, resource),
	)
	if !sigEqual(r.Header.Get("Authorization"), expect) {
		return "signature mismatch"
	}
	return ""
}

func sigEqual(actual, expect string) bool {
	return subtle.ConstantTimeCompare([]byte(actual), []byte(expect)) == 1
}

func (s *Server) serveBucket(w http.ResponseWriter, r *http.Request, bucket string) {
	switch r.Method {
	case http.MethodPut:
		s.CreateBucket(bucket)
		w.WriteHeader(http.StatusOK)

	case http.MethodDelete:
		s.mu.Lock()
		defer s.mu.Unlock()
		objects, ok := s.buckets[bucket]
		if !ok {
			writeError(w, http.StatusNotFound, "NoSuchBucket", "no such bucket: "+bucket)
			return
		}
		if len(objects) > 0 {
			writeError(w, http.StatusConflict, "BucketNotEmpty", "bucket not empty: "+bucket)
			return
		}
		delete(s.buckets, bucket)
		w.WriteHeader(http.StatusNoContent)

	case http.MethodGet:
		s.serveList(w, r, bucket)

	default:
		writeError(w, http.StatusMethodNotAllowed, "MethodNotAllowed", r.Method)
	}
}

func (s *Server) serveList(w http.ResponseWriter, r *http.Request, bucket string) {
	prefix := r.URL.Query().Get("prefix")
	marker := r.URL.Query().Get("marker")
	limit := 1000
	if v := r.URL.Query().Get("max-keys"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	s.mu.RLock()
	objects, ok := s.buckets[bucket]
	if !ok {
		s.mu.RUnlock()
		writeError(w, http.StatusNotFound, "NoSuchBucket", "no such bucket: "+bucket)
		return
	}
	keys := make([]string, 0, len(objects))
	for key := range objects {
		if strings.HasPrefix(key, prefix) && key > marker {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	truncated := false
	if len(keys) > limit {
		keys = keys[:limit]
		truncated = true
	}

	type contents struct {
		Key          string `xml:"Key"`
		LastModified string `xml:"LastModified"`
		ETag         string `xml:"ETag"`
		Size         int64  `xml:"Size"`
	}
	result := struct {
		XMLName     xml.Name   `xml:"ListBucketResult"`
		IsTruncated bool       `xml:"IsTruncated"`
		Contents    []contents `xml:"Contents"`
	}{
		IsTruncated: truncated,
	}
	for _, key := range keys {
		obj := objects[key]
		result.Contents = append(result.Contents, contents{
			Key:          key,
			LastModified: obj.modify.UTC().Format("2006-01-02T15:04:05.000Z"),
			ETag:         obj.etag(),
			Size:         int64(len(obj.data)),
		})
	}
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "application/xml")
	data, err := xml.Marshal(result)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "InternalError", err.Error())
		return
	}
	w.Write(data)
}

func (s *Server) serveObject(w http.ResponseWriter, r *http.Request, bucket, key string) {
	row := bucket + "/" + key

	switch r.Method {
	case http.MethodPut:
		s.locks.Lock(row)
		defer s.locks.Unlock(row)
		if source := r.Header.Get("x-amz-copy-source"); source != "" {
			s.copyObject(w, r, bucket, key, source)
			return
		}
		data, err := ioutil.ReadAll(r.Body)
		if err != nil {
			writeError(w, http.StatusBadRequest, "IncompleteBody", err.Error())
			return
		}
		if md5Header := r.Header.Get("Content-MD5"); md5Header != "" {
			if md5Header != sign.ContentMD5(data) {
				writeError(w, http.StatusBadRequest, "BadDigest", "Content-MD5 mismatch")
				return
			}
		}
		obj := &storedObject{
			data:     data,
			mimetype: r.Header.Get("Content-Type"),
			metadata: requestMetadata(r.Header),
			modify:   time.Now(),
		}
		if s.storeObject(bucket, key, obj) {
			w.Header().Set("ETag", obj.etag())
			w.WriteHeader(http.StatusOK)
		} else {
			writeError(w, http.StatusNotFound, "NoSuchBucket", "no such bucket: "+bucket)
		}

	case http.MethodGet, http.MethodHead:
		s.mu.RLock()
		obj := s.lookupObject(bucket, key)
		s.mu.RUnlock()
		if obj == nil {
			writeError(w, http.StatusNotFound, "NoSuchKey", "no such key: "+key)
			return
		}
		h := w.Header()
		h.Set("Content-Type", obj.mimetype)
		h.Set("Content-Length", strconv.Itoa(len(obj.data)))
		h.Set("Last-Modified", obj.modify.UTC().Format(http.TimeFormat))
		h.Set("Date", time.Now().UTC().Format(http.TimeFormat))
		h.Set("ETag", obj.etag())
		for name, value := range obj.metadata {
			h.Set(metadataPrefix+name, value)
		}
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodGet {
			w.Write(obj.data)
		}

	case http.MethodDelete:
		s.locks.Lock(row)
		defer s.locks.Unlock(row)
		s.mu.Lock()
		defer s.mu.Unlock()
		objects, ok := s.buckets[bucket]
		if !ok || objects[key] == nil {
			writeError(w, http.StatusNotFound, "NoSuchKey", "no such key: "+key)
			return
		}
		delete(objects, key)
		w.WriteHeader(http.StatusNoContent)

	default:
		writeError(w, http.StatusMethodNotAllowed, "MethodNotAllowed", r.Method)
	}
}

func (s *Server) copyObject(w http.ResponseWriter, r *http.Request, bucket, key, source string) {
	source = strings.TrimPrefix(source, "/")
	slash := strings.Index(source, "/")
	if slash <= 0 {
		writeError(w, http.StatusBadRequest, "InvalidArgument", "malformed copy source")
		return
	}
	srcBucket, srcKey := source[:slash], source[slash+1:]

	s.mu.Lock()
	defer s.mu.Unlock()
	src := s.lookupObject(srcBucket, srcKey)
	if src == nil {
		writeError(w, http.StatusNotFound, "NoSuchKey", "no such source: "+source)
		return
	}
	objects, ok := s.buckets[bucket]
	if !ok {
		writeError(w, http.StatusNotFound, "NoSuchBucket", "no such bucket: "+bucket)
		return
	}

	obj := &storedObject{
		data:     append([]byte(nil), src.data...),
		mimetype: r.Header.Get("Content-Type"),
		modify:   time.Now(),
	}
	if r.Header.Get("x-amz-metadata-directive") == "REPLACE" {
		obj.metadata = requestMetadata(r.Header)
	} else {
		obj.metadata = make(map[string]string, len(src.metadata))
		for name, value := range src.metadata {
			obj.metadata[name] = value
		}
	}
	objects[key] = obj
	w.WriteHeader(http.StatusOK)
}

func (s *Server) storeObject(bucket, key string, obj *storedObject) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	objects, ok := s.buckets[bucket]
	if !ok {
		return false
	}
	objects[key] = obj
	return true
}

// lookupObject requires s.mu held.
func (s *Server) lookupObject(bucket, key string) *storedObject {
	objects, ok := s.buckets[bucket]
	if !ok {
		return nil
	}
	return objects[key]
}

func requestMetadata(headers http.Header) map[string]string {
	metadata := make(map[string]string)
	for name, values := range headers {
		name = strings.ToLower(name)
		if strings.HasPrefix(name, metadataPrefix) && len(values) > 0 {
			metadata[strings.TrimPrefix(name, metadataPrefix)] = values[0]
		}
	}
	return metadata
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(status)
	fmt.Fprintf(
		w,
		"<Error><Code>%s</Code><Message>%s</Message></Error>",
		code,
		message,
	)
}
