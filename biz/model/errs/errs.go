package errs

import (
	"fmt"
	"net/http"
)

type Error interface {
	Error() string
	Code() int32
	Msg() string
	SetErr(err error) Error
	SetMsg(msg string) Error
}

type bizError struct {
	code int32
	msg  string
}

func (bizErr *bizError) Error() string {
	return fmt.Sprintf("%d:%s", bizErr.code, bizErr.msg)
}

func (bizErr *bizError) Code() int32 {
	return bizErr.code
}

func (bizErr *bizError) Msg() string {
	return bizErr.msg
}

func (bizErr *bizError) SetErr(err error) Error {
	return New(bizErr.Code(), err.Error())
}

func (bizErr *bizError) SetMsg(msg string) Error {
	return New(bizErr.Code(), msg)
}

func New(code int32, msg string) Error {
	return &bizError{
		code: code,
		msg:  msg,
	}
}

func ErrorEqual(err1, err2 Error) bool {
	if err1 == nil && err2 == nil {
		return true
	}

	if err1 == nil || err2 == nil {
		return false
	}

	return err1.Code() == err2.Code()
}

var (
	Success        = New(0, "success")
	ServerError    = New(1_0001, "internal server error")
	ParamError     = New(1_0002, "param error")
	Unauthorized   = New(1_0003, "user unauthorized")
	Forbidden      = New(1_0004, "operation forbidden")
	TooManyRequest = New(1_0005, "too many request")
	RequestBlocked = New(1_0006, "request is blocked")

	// InvalidCredentials covers both unknown email and wrong password so
	// login failures cannot be used to probe which accounts exist.
	InvalidCredentials = New(2_0001, "email or password incorrect")
	UserNotFound       = New(2_0002, "user not found")
	EmailDuplicated    = New(2_0003, "email already registered")
	LoginReachLimit    = New(2_0004, "login reach limit")
)

// HTTPStatus maps a business error to the status the boundary responds with.
func HTTPStatus(bizErr Error) int {
	if bizErr == nil {
		return http.StatusOK
	}

	switch bizErr.Code() {
	case Success.Code():
		return http.StatusOK
	case ParamError.Code(), EmailDuplicated.Code():
		return http.StatusBadRequest
	case Unauthorized.Code(), InvalidCredentials.Code():
		return http.StatusUnauthorized
	case Forbidden.Code(), RequestBlocked.Code(), LoginReachLimit.Code():
		return http.StatusForbidden
	case UserNotFound.Code():
		return http.StatusNotFound
	case TooManyRequest.Code():
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
