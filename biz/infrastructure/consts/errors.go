package consts

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Errno struct {
	err        error
	code       codes.Code
	httpStatus int
	detail     string
}

// GRPCStatus 实现 GRPCStatus 方法
func (en *Errno) GRPCStatus() *status.Status {
	return status.New(en.code, en.err.Error())
}

// 实现 Error 方法
func (en *Errno) Error() string {
	return en.err.Error()
}

// Code 返回错误码
func (en *Errno) Code() codes.Code {
	return en.code
}

// HTTPStatus 返回显式指定的 HTTP 状态码, 0 表示按 code 映射
func (en *Errno) HTTPStatus() int {
	return en.httpStatus
}

// Detail 返回附加的错误详情 (上游透传用)
func (en *Errno) Detail() string {
	return en.detail
}

// NewErrno 创建自定义错误
func NewErrno(code codes.Code, err error) *Errno {
	return &Errno{
		err:  err,
		code: code,
	}
}

// NewErrnoWithStatus 创建携带显式 HTTP 状态码的错误 (目录代理透传上游状态)
func NewErrnoWithStatus(httpStatus int, err error) *Errno {
	return &Errno{
		err:        err,
		code:       codes.Unknown,
		httpStatus: httpStatus,
	}
}

// WithDetail 返回附加详情后的副本
func (en *Errno) WithDetail(detail string) *Errno {
	return &Errno{
		err:        en.err,
		code:       en.code,
		httpStatus: en.httpStatus,
		detail:     detail,
	}
}

// 认证与权限
var (
	ErrMissingAuth  = NewErrno(codes.Unauthenticated, errors.New("Missing Authorization header"))
	ErrInvalidToken = NewErrno(codes.Unauthenticated, errors.New("Invalid or expired token"))
	ErrForbidden    = NewErrno(codes.PermissionDenied, errors.New("Forbidden"))
)

// 参数校验
var (
	ErrNameRequired     = NewErrno(codes.InvalidArgument, errors.New("name is required"))
	ErrDueDateRequired  = NewErrno(codes.InvalidArgument, errors.New("dueDate is required"))
	ErrUsernameRequired = NewErrno(codes.InvalidArgument, errors.New("githubUsername is required"))
	ErrInvalidUsername  = NewErrno(codes.InvalidArgument, errors.New("Invalid username"))
	ErrInviteMismatch   = NewErrno(codes.InvalidArgument, errors.New("Invite does not belong to this assignment"))
	ErrMaxGroupSize     = NewErrno(codes.InvalidArgument, errors.New("maxGroupSize must be an integer"))
	ErrAlreadyInvited   = NewErrno(codes.AlreadyExists, errors.New("Student already invited"))
)

// 数据库相关错误
var (
	ErrNotFound              = NewErrno(codes.NotFound, errors.New("Not found"))
	ErrDatabaseNotConfigured = NewErrno(codes.Unavailable, errors.New("Database not configured"))
)

// 目录代理 (GitHub) 相关错误
var (
	ErrGithubUnavailable  = NewErrnoWithStatus(502, errors.New("GitHub API unavailable"))
	ErrGithubUserNotFound = NewErrno(codes.NotFound, errors.New("User not found on GitHub"))
)
