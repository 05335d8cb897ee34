package domain

import (
	"errors"
	"fmt"
)

// ErrorKind 请求处理失败的分类，决定 HTTP 状态码与指标标签
type ErrorKind string

const (
	InvalidPublicKey       ErrorKind = "InvalidPublicKey"
	InvalidSecretKey       ErrorKind = "InvalidSecretKey"
	InvalidSignatureFormat ErrorKind = "InvalidSignatureFormat"
	InvalidBase64          ErrorKind = "InvalidBase64"
	InvalidBase58          ErrorKind = "InvalidBase58"
	InstructionBuildFailed ErrorKind = "InstructionBuildFailed"
	MissingField           ErrorKind = "MissingField"
	InvalidRequest         ErrorKind = "InvalidRequest"
	InvalidAmount          ErrorKind = "InvalidAmount"
	InternalError          ErrorKind = "InternalError"
)

// Error 带分类的请求错误，Msg 原样返回给调用方
type Error struct {
	Kind  ErrorKind
	Msg   string
	Cause error
}

func NewError(kind ErrorKind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Wrap 附带底层原因，Cause 只用于日志，不会暴露给调用方
func Wrap(kind ErrorKind, msg string, cause error) *Error {
	return &Error{Kind: kind, Msg: msg, Cause: cause}
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// IsClientError 是否由调用方输入引起
func (k ErrorKind) IsClientError() bool {
	return k != InstructionBuildFailed && k != InternalError
}

// KindOf 提取错误分类；非 *Error 的错误视为内部错误
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return InternalError
}

// MessageOf 返回对调用方可见的错误文本
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Msg
	}
	return "Internal server error"
}
