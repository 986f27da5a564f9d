package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Upload & Input-Validation Errors
var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file too large")
	ErrTooManyFiles        = errors.New("too many files")
	ErrInvalidImage        = errors.New("invalid image data")
	ErrInvalidCredentials  = errors.New("invalid credentials")
)

// Storage Errors
var (
	ErrRemoteUnavailable = errors.New("remote backend unavailable")
	ErrStorageRead       = errors.New("durable storage read failed")
	ErrStorageWrite      = errors.New("durable storage write failed")
)

func NewUnsupportedFileTypeError(mediaType string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrUnsupportedFileType,
		Details:    fmt.Sprintf("Please select a valid image file (JPEG, PNG, or WebP), got %s", mediaType),
		Field:      "type",
	}
}

func NewFileTooLargeError(size, maxSize int64) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrFileTooLarge,
		Details:    fmt.Sprintf("Image size must be less than %dMB, got %d bytes", maxSize/(1024*1024), size),
		Field:      "size",
	}
}

// NewSingleFileError reports a multi-file submission against a single-image field.
func NewSingleFileError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrTooManyFiles,
		Details:    "Please select only one image",
		Field:      "files",
	}
}

func NewTooManyFilesError(maxFiles int) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrTooManyFiles,
		Details:    fmt.Sprintf("Please select maximum %d images", maxFiles),
		Field:      "files",
	}
}

func NewInvalidImageError(name string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrInvalidImage,
		Details:    fmt.Sprintf("Could not decode image %q", name),
		Cause:      cause,
		Field:      "data",
	}
}

func NewInvalidCredentialsError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrInvalidCredentials,
		Details:    "Invalid credentials",
	}
}

func NewStorageReadError(key string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrStorageRead,
		Details:    fmt.Sprintf("Failed to read key %q from durable storage", key),
		Cause:      cause,
	}
}

func NewStorageWriteError(key string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrStorageWrite,
		Details:    fmt.Sprintf("Failed to write key %q to durable storage", key),
		Cause:      cause,
	}
}

func NewRemoteUnavailableError(operation string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusServiceUnavailable,
		err:        ErrRemoteUnavailable,
		Details:    fmt.Sprintf("Remote backend failed during %s", operation),
		Cause:      cause,
	}
}

// Validation Error Type Checkers
func IsUnsupportedFileTypeError(err error) bool {
	return errors.Is(err, ErrUnsupportedFileType)
}

func IsFileTooLargeError(err error) bool {
	return errors.Is(err, ErrFileTooLarge)
}

func IsTooManyFilesError(err error) bool {
	return errors.Is(err, ErrTooManyFiles)
}

func IsInvalidImageError(err error) bool {
	return errors.Is(err, ErrInvalidImage)
}

func IsInvalidCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}
