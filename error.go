package s3bucket

import (
	"errors"
	"fmt"
)

// Make sure all error types satisfy error interface.
var (
	_ error = (*InvalidKeyError)(nil)
	_ error = (*AuthError)(nil)
	_ error = (*NoSuchKeyError)(nil)
	_ error = (*TransientError)(nil)
	_ error = (*ResponseError)(nil)
)

// InvalidKeyError is the error returned when a key fails local validation.
//
// No request is sent to the service when this error is returned.
type InvalidKeyError struct {
	Key    Key
	Reason string
}

func (err *InvalidKeyError) Error() string {
	return fmt.Sprintf("s3bucket: invalid key %q: %s", err.Key, err.Reason)
}

// IsInvalidKeyError checks whether a given error is InvalidKeyError.
func IsInvalidKeyError(err error) bool {
	var target *InvalidKeyError
	return errors.As(err, &target)
}

// AuthError is the error returned when the service rejects the request
// signature or the credentials lack permission (HTTP 401/403).
type AuthError struct {
	StatusCode int
	Message    string
}

func (err *AuthError) Error() string {
	if err.Message == "" {
		return fmt.Sprintf("s3bucket: authentication rejected (http %d)", err.StatusCode)
	}
	return fmt.Sprintf(
		"s3bucket: authentication rejected (http %d): %s",
		err.StatusCode,
		err.Message,
	)
}

// IsAuthError checks whether a given error is AuthError.
func IsAuthError(err error) bool {
	var target *AuthError
	return errors.As(err, &target)
}

// NoSuchKeyError is the error returned by Get, Info and Delete
// when the key (or the bucket itself) does not exist.
type NoSuchKeyError struct {
	Key Key
}

func (err *NoSuchKeyError) Error() string {
	return fmt.Sprintf("s3bucket: no such key: %q", err.Key)
}

// IsNoSuchKeyError checks whether a given error is NoSuchKeyError.
func IsNoSuchKeyError(err error) bool {
	var target *NoSuchKeyError
	return errors.As(err, &target)
}

// TransientError is the error returned on server-side failures (HTTP 5xx)
// and on transport-level failures (connection error, timeout).
//
// Operations that failed with a TransientError are safe to retry.
// This library never retries on its own;
// retry policy belongs to the caller.
type TransientError struct {
	// StatusCode is the HTTP status code, or 0 for transport-level failures.
	StatusCode int

	// Err is the underlying transport error, if any.
	Err error
}

func (err *TransientError) Error() string {
	if err.Err != nil {
		return fmt.Sprintf("s3bucket: transient failure: %v", err.Err)
	}
	return fmt.Sprintf("s3bucket: transient failure: http %d", err.StatusCode)
}

func (err *TransientError) Unwrap() error {
	return err.Err
}

// IsTransientError checks whether a given error is TransientError.
func IsTransientError(err error) bool {
	var target *TransientError
	return errors.As(err, &target)
}

// ResponseError is the error returned when the service responds with a
// status code this library does not recognize.
//
// It is not safe to assume the operation did not take effect.
type ResponseError struct {
	StatusCode int
	Status     string

	// Message is extracted from the <Message> element of the service's
	// error document, if any, truncated to a reasonable length.
	Message string
}

func (err *ResponseError) Error() string {
	if err.Message == "" {
		return fmt.Sprintf("s3bucket: unexpected response: %s", err.Status)
	}
	return fmt.Sprintf("s3bucket: unexpected response: %s: %s", err.Status, err.Message)
}

// IsResponseError checks whether a given error is ResponseError.
func IsResponseError(err error) bool {
	var target *ResponseError
	return errors.As(err, &target)
}
