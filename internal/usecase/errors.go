package usecase

import (
	"errors"
	"fmt"
)

var (
	//画面IDが無い、または種類が違う
	ErrScreenNotFound = errors.New("screen not found")
	//おすすめ商品IDが無い
	ErrOfferNotFound = errors.New("offer not found")
	//未実装（注文確定など）
	ErrNotImplemented = errors.New("not implemented")
)

// HTTPステータスと利用者向けメッセージを持つエラー。Err は元の原因。
type HTTPError struct {
	Status  int
	Message string
	Err     error
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

func NewHTTPError(status int, message string, cause error) error {
	return &HTTPError{
		Status:  status,
		Message: message,
		Err:     cause,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}
