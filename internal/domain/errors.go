package domain

import "errors"

// 业务错误基类，transport 层据此映射 HTTP 状态码
var (
	ErrUnauthenticated = errors.New("invalid authentication credentials") // 401
	ErrForbidden       = errors.New("not enough permissions")             // 403
	ErrNotFound        = errors.New("not found")                          // 404
	ErrAlreadyExists   = errors.New("already exists")                     // 400
	ErrInvalid         = errors.New("invalid request")                    // 400
)

// Error 带自定义提示语的业务错误，errors.Is 仍按 Kind 匹配
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Unwrap() error { return e.Kind }

func E(kind error, msg string) error { return &Error{Kind: kind, Message: msg} }
