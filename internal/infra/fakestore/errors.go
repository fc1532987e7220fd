package fakestore

import (
	"errors"
	"fmt"
	"net/http"

	"storefront/internal/repository"
)

// リモートが2xx以外を返した
type StatusError struct {
	Method string
	Path   string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.Path, e.Code)
}

func (e *StatusError) HTTPStatus() int {
	return e.Code
}

// 404はrepository.ErrNotFoundとして扱える
func (e *StatusError) Is(target error) bool {
	return target == repository.ErrNotFound && e.Code == http.StatusNotFound
}

// 応答JSONが壊れている、または必須フィールドが無い
type DecodeError struct {
	Path  string
	Field string
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("decode %s: field %q: %v", e.Path, e.Field, e.Err)
	}
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

var (
	errMissing    = errors.New("missing")
	errOutOfRange = errors.New("out of range")
)

func missing(path, field string) *DecodeError {
	return &DecodeError{Path: path, Field: field, Err: errMissing}
}

func outOfRange(path, field string) *DecodeError {
	return &DecodeError{Path: path, Field: field, Err: errOutOfRange}
}
