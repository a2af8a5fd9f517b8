package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind categorizes a request failure. Validation and decode kinds are
// client-attributable; encoding and internal kinds are not.
type Kind string

const (
	KindMissingImage     Kind = "missing_image"
	KindPayloadTooLarge  Kind = "payload_too_large"
	KindInvalidSize      Kind = "invalid_size_format"
	KindInvalidQuality   Kind = "invalid_quality"
	KindUnsupportedImage Kind = "unsupported_image"
	KindEncodingFailed   Kind = "encoding_failed"
	KindInternal         Kind = "internal"
)

type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func (e *Error) StatusCode() int {
	switch e.Kind {
	case KindEncodingFailed, KindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

func MissingImage() *Error {
	return &Error{Kind: KindMissingImage, Message: "image data not provided in 'image' field"}
}

func PayloadTooLarge(maxBytes int64) *Error {
	return &Error{Kind: KindPayloadTooLarge, Message: fmt.Sprintf("image exceeds the maximum allowed size of %d bytes", maxBytes)}
}

func InvalidSizeFormat(raw string) *Error {
	return &Error{Kind: KindInvalidSize, Message: fmt.Sprintf("invalid size %q, use 'WIDTHxHEIGHT'", raw)}
}

func InvalidQuality(raw string) *Error {
	return &Error{Kind: KindInvalidQuality, Message: fmt.Sprintf("quality %q must be between 0.0 and 100.0", raw)}
}

func UnsupportedImage(cause error) *Error {
	return &Error{Kind: KindUnsupportedImage, Message: "input image must be PNG, JPEG or WebP", Cause: cause}
}

func EncodingFailed(cause error) *Error {
	return &Error{Kind: KindEncodingFailed, Message: "failed to encode image to WebP format", Cause: cause}
}

func Internal(cause error) *Error {
	return &Error{Kind: KindInternal, Message: "internal server error", Cause: cause}
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}
